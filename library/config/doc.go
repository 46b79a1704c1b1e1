// Package config loads the loan manager settings from YAML.
//
// Every key is optional; missing keys keep the values of Default(). Unknown keys are rejected.
//
//	loan_period_days: 14
//	fine_rates:
//	  student: "0.10"
//	  guest: "0.25"
//	retry:
//	  max_attempts: 6
//	  base_delay: 10ms
//	log_level: info
//
// Faculty members are never fined, so there is no faculty rate.
package config
