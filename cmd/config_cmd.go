package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/tarifa/internal/cli"
	"github.com/theirongolddev/tarifa/internal/config"
	"github.com/theirongolddev/tarifa/internal/logging"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	d := cfg.Defaults
	fmt.Fprintln(out, "  [Defaults]")
	fmt.Fprintf(out, "    Annual goal:         %s\n", cli.FormatInput(d.AnnualGoal))
	fmt.Fprintf(out, "    Billable hours/day:  %s\n", cli.FormatInput(d.BillableHoursPerDay))
	fmt.Fprintf(out, "    Vacation days/year:  %s\n", cli.FormatInput(d.VacationDaysPerYear))
	fmt.Fprintf(out, "    Monthly expenses:    %s\n", cli.FormatInput(d.MonthlyExpenses))
	fmt.Fprintf(out, "    Tax rate (%%):        %s\n", cli.FormatInput(d.TaxRatePercent))
	fmt.Fprintf(out, "    Project hours:       %s\n", cli.FormatInput(d.ProjectHours))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", cfg.Appearance.Theme)
	if env := os.Getenv("TARIFA_THEME"); env != "" {
		fmt.Fprintf(out, "    Override: %s (TARIFA_THEME)\n", env)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Clipboard]")
	fmt.Fprintf(out, "    Mode: %s\n", cfg.Clipboard.Mode)
	fmt.Fprintln(out)

	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = logging.DefaultPath() + " (default)"
	}
	fmt.Fprintln(out, "  [Logging]")
	fmt.Fprintf(out, "    Level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "    File:  %s\n", logFile)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `tarifa setup` to reconfigure.")
	return nil
}
