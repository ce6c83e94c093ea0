// Package cmd implements the tarifa CLI commands.
package cmd

import (
	"io"
	"os"

	"github.com/theirongolddev/tarifa/internal/config"
	"github.com/theirongolddev/tarifa/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagLogLevel string
	flagLogFile  string
)

var rootCmd = &cobra.Command{
	Use:   "tarifa",
	Short: "Freelance rate calculator",
	Long: "Work out an hourly rate, a daily rate and a project price from your income goal,\n" +
		"billable hours, time off, expenses and taxes, then copy a ready-made proposal.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error or off (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (overrides config)")
}

// newLogger builds the file logger, letting flags override the config.
// A bad [logging] section only costs the log: it is reported on errOut and
// logging is turned off. Bad --log-level or --log-file values are errors.
func newLogger(cfg config.Config, errOut io.Writer) (*zap.Logger, error) {
	level := cfg.Logging.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	file := cfg.Logging.File
	if flagLogFile != "" {
		file = flagLogFile
	}

	logger, err := logging.New(level, file)
	if err == nil {
		return logger, nil
	}
	if flagLogLevel != "" || flagLogFile != "" {
		return nil, err
	}
	pterm.Warning.WithWriter(errOut).Printfln("Logging disabled: %v", err)
	return zap.NewNop(), nil
}
