package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/tarifa/internal/clipboard"
	"github.com/theirongolddev/tarifa/internal/config"
	"github.com/theirongolddev/tarifa/internal/tui"
	"github.com/theirongolddev/tarifa/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runTUI(_ *cobra.Command, _ []string) error {
	// A broken config still starts the calculator with defaults.
	cfg, cfgErr := config.Load()

	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfgErr != nil {
		logger.Warn("loading config, using defaults", zap.Error(cfgErr))
	}

	theme.SetActive(config.GetTheme(cfg))

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	// OSC 52 goes to stderr; Bubble Tea owns stdout.
	clip, err := clipboard.New(cfg.Clipboard.Mode, os.Stderr)
	if err != nil {
		logger.Warn("invalid clipboard mode, using auto", zap.Error(err))
		clip, _ = clipboard.New(clipboard.ModeAuto, os.Stderr)
	}

	needSetup := !config.Exists()
	logger.Info("starting calculator",
		zap.String("theme", theme.Active.Name),
		zap.String("clipboard", cfg.Clipboard.Mode),
		zap.Bool("first_run", needSetup),
	)

	app := tui.NewApp(tui.Options{
		Config:        cfg,
		Clipboard:     clip,
		ClipboardTerm: os.Stderr,
		Logger:        logger,
		NeedSetup:     needSetup,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
