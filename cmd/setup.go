package cmd

import (
	"github.com/theirongolddev/tarifa/internal/config"
	"github.com/theirongolddev/tarifa/internal/tui"
	"github.com/theirongolddev/tarifa/internal/tui/theme"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		pterm.Warning.Printfln("Could not read %s, starting from defaults: %v", config.Path(), err)
	}
	theme.SetActive(config.GetTheme(cfg))

	if _, err := tui.RunSetup(cfg); err != nil {
		return err
	}

	pterm.Success.Printfln("Saved to %s", config.Path())
	pterm.Info.Println("Run `tarifa setup` anytime to reconfigure.")
	return nil
}
