package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/AntonStoeckl/library-loans-go/library/core"
	"github.com/AntonStoeckl/library-loans-go/library/loanmanager"
	"github.com/AntonStoeckl/library-loans-go/library/shell"
)

var (
	ErrReadingConfig         = errors.New("reading config failed")
	ErrParsingConfig         = errors.New("parsing config failed")
	ErrInvalidLoanPeriodDays = errors.New("loan_period_days must be at least 1")
	ErrInvalidFineRate       = errors.New("fine rate is not a decimal number")
	ErrInvalidRetry          = errors.New("retry settings are invalid")
	ErrInvalidLogLevel       = errors.New("log_level is invalid")
	ErrInvalidIDFormat       = errors.New("id_format must be short or uuid")
)

const (
	IDFormatShort = "short"
	IDFormatUUID  = "uuid"
)

type Config struct {
	LoanPeriodDays int       `yaml:"loan_period_days"`
	FineRates      FineRates `yaml:"fine_rates"`
	Retry          Retry     `yaml:"retry"`
	LogLevel       string    `yaml:"log_level"`
	IDFormat       string    `yaml:"id_format"`
}

// FineRates are per-day rates as decimal strings, e.g. "0.10".
type FineRates struct {
	Student string `yaml:"student"`
	Guest   string `yaml:"guest"`
}

type Retry struct {
	MaxAttempts int           `yaml:"max_attempts"`
	BaseDelay   time.Duration `yaml:"base_delay"`
}

// Default returns the standard settings: 14 days, 0.10 for students, 0.25 for guests, 6 attempts,
// 8-character ids.
func Default() Config {
	return Config{
		LoanPeriodDays: 14,
		FineRates: FineRates{
			Student: "0.10",
			Guest:   "0.25",
		},
		Retry: Retry{
			MaxAttempts: 6,
			BaseDelay:   10 * time.Millisecond,
		},
		LogLevel: "info",
		IDFormat: IDFormatShort,
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Join(ErrReadingConfig, err)
	}

	return Parse(data)
}

// Parse decodes YAML on top of Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.LoanPeriodDays < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidLoanPeriodDays, c.LoanPeriodDays)
	}

	if _, err := c.FinePolicy(); err != nil {
		return err
	}

	if c.Retry.MaxAttempts < 1 || c.Retry.BaseDelay < 0 {
		return fmt.Errorf("%w: max_attempts %d, base_delay %s", ErrInvalidRetry, c.Retry.MaxAttempts, c.Retry.BaseDelay)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	if _, err := c.IDGenerator(); err != nil {
		return err
	}

	return nil
}

// FinePolicy builds the fine policy from the configured rates.
func (c Config) FinePolicy() (core.FinePolicy, error) {
	student, err := decimal.NewFromString(c.FineRates.Student)
	if err != nil {
		return core.FinePolicy{}, fmt.Errorf("%w: student %q", ErrInvalidFineRate, c.FineRates.Student)
	}

	guest, err := decimal.NewFromString(c.FineRates.Guest)
	if err != nil {
		return core.FinePolicy{}, fmt.Errorf("%w: guest %q", ErrInvalidFineRate, c.FineRates.Guest)
	}

	return core.NewFinePolicy(student, guest)
}

func (c Config) LoanPeriod() time.Duration {
	return time.Duration(c.LoanPeriodDays) * 24 * time.Hour
}

// SlogLevel parses log_level as debug, info, warn or error.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return level, nil
}

// IDGenerator returns the generator for member and loan ids: short (8 characters) or uuid.
func (c Config) IDGenerator() (core.IDGenerator, error) {
	switch c.IDFormat {
	case IDFormatShort:
		return core.ShortIDGenerator{}, nil
	case IDFormatUUID:
		return core.UUIDGenerator{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidIDFormat, c.IDFormat)
	}
}

func (c Config) RetryOptions() []shell.RetryOption {
	return []shell.RetryOption{
		shell.WithMaxAttempts(c.Retry.MaxAttempts),
		shell.WithBaseDelay(c.Retry.BaseDelay),
	}
}

// ManagerOptions turns the settings into loanmanager options.
func (c Config) ManagerOptions() ([]loanmanager.Option, error) {
	policy, err := c.FinePolicy()
	if err != nil {
		return nil, err
	}

	ids, err := c.IDGenerator()
	if err != nil {
		return nil, err
	}

	return []loanmanager.Option{
		loanmanager.WithLoanPeriod(c.LoanPeriod()),
		loanmanager.WithFinePolicy(policy),
		loanmanager.WithIDGenerator(ids),
		loanmanager.WithRetryOptions(c.RetryOptions()...),
	}, nil
}
