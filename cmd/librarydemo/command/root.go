// Package command holds the cobra commands of librarydemo.
package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-loans-go/library/config"
)

type rootFlags struct {
	configPath string
	logLevel   string
	telemetry  bool
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "librarydemo",
		Short: "Catalog and loan lifecycle of a small library",
		Long: `librarydemo drives the loan manager through a scripted session:
it sets up a catalog and members, lends and returns items, shows a rejected
loan and a failed return, assesses a fine for a late return and searches the
catalog. All state lives in an in-memory loan ledger.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "YAML config file (defaults apply without one)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "overrides log_level of the config: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&flags.telemetry, "telemetry", false, "record OpenTelemetry spans and metrics and print a metrics summary")

	rootCmd.AddCommand(newDemoCommand(flags))

	return rootCmd
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (f *rootFlags) loadConfig() (config.Config, error) {
	cfg := config.Default()

	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("config.Load(%q): %w", f.configPath, err)
		}

		cfg = loaded
	}

	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel

		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}

	return cfg, nil
}
