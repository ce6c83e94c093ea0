package tui

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/tarifa/internal/clipboard"
	"github.com/theirongolddev/tarifa/internal/config"
	"github.com/theirongolddev/tarifa/internal/pricing"
	"github.com/theirongolddev/tarifa/internal/tui/components"
	"github.com/theirongolddev/tarifa/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"
)

// setupValues holds the first-run form answers. Numbers stay text until saved.
type setupValues struct {
	Theme         string
	ClipboardMode string
	AnnualGoal    string
	BillableHours string
	VacationDays  string
	Expenses      string
	TaxRate       string
}

func newSetupValues(cfg config.Config) *setupValues {
	d := cfg.Defaults
	themeName := cfg.Appearance.Theme
	if !theme.Valid(themeName) {
		themeName = theme.FlexokiDark.Name
	}
	mode := cfg.Clipboard.Mode
	if mode == "" {
		mode = clipboard.ModeAuto
	}
	return &setupValues{
		Theme:         themeName,
		ClipboardMode: mode,
		AnnualGoal:    inputText(d.AnnualGoal),
		BillableHours: inputText(d.BillableHoursPerDay),
		VacationDays:  inputText(d.VacationDaysPerYear),
		Expenses:      inputText(d.MonthlyExpenses),
		TaxRate:       inputText(d.TaxRatePercent),
	}
}

// validateNumber accepts empty text or anything ParseInput understands.
func validateNumber(s string) error {
	if s == "" || pricing.ParseInput(s) != nil {
		return nil
	}
	return errors.New("introduce un número, por ejemplo 1500 o 12,5")
}

func newSetupForm(vals *setupValues) *huh.Form {
	names := theme.Names()
	themeOpts := make([]huh.Option[string], 0, len(names))
	for _, name := range names {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	numberInput := func(title, placeholder string, v *string) *huh.Input {
		return huh.NewInput().
			Title(title).
			Placeholder(placeholder).
			Validate(validateNumber).
			Value(v)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Bienvenido a tarifa").
				Description("Vamos a guardar unos valores por defecto.\nPuedes dejar cualquier campo vacío y cambiarlo luego con `tarifa setup`."),

			huh.NewSelect[string]().
				Title("Tema de color").
				Options(themeOpts...).
				Value(&vals.Theme),

			huh.NewSelect[string]().
				Title("Portapapeles").
				Description("auto prueba el del sistema y recurre a OSC 52 en sesiones remotas.").
				Options(
					huh.NewOption("auto", clipboard.ModeAuto),
					huh.NewOption("sistema", clipboard.ModeSystem),
					huh.NewOption("OSC 52 (terminal)", clipboard.ModeOSC52),
				).
				Value(&vals.ClipboardMode),
		),
		huh.NewGroup(
			numberInput(fieldSpecs[fieldAnnualGoal].label, fieldSpecs[fieldAnnualGoal].placeholder, &vals.AnnualGoal),
			numberInput(fieldSpecs[fieldBillableHours].label, fieldSpecs[fieldBillableHours].placeholder, &vals.BillableHours),
			numberInput(fieldSpecs[fieldVacationDays].label, fieldSpecs[fieldVacationDays].placeholder, &vals.VacationDays),
			numberInput(fieldSpecs[fieldExpenses].label, fieldSpecs[fieldExpenses].placeholder, &vals.Expenses),
			numberInput(fieldSpecs[fieldTaxRate].label, fieldSpecs[fieldTaxRate].placeholder, &vals.TaxRate),
		).Title("Valores por defecto"),
	).WithTheme(huh.ThemeCharm())
}

// apply copies the answers onto cfg. Project hours are per quote and left alone.
func (v *setupValues) apply(cfg *config.Config) {
	cfg.Appearance.Theme = v.Theme
	cfg.Clipboard.Mode = v.ClipboardMode
	cfg.Defaults.AnnualGoal = pricing.ParseInput(v.AnnualGoal)
	cfg.Defaults.BillableHoursPerDay = pricing.ParseInput(v.BillableHours)
	cfg.Defaults.VacationDaysPerYear = pricing.ParseInput(v.VacationDays)
	cfg.Defaults.MonthlyExpenses = pricing.ParseInput(v.Expenses)
	cfg.Defaults.TaxRatePercent = pricing.ParseInput(v.TaxRate)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.setupForm = nil
		flashCmd := a.saveSetupConfig()
		return a, tea.Batch(flashCmd, textinput.Blink)
	case huh.StateAborted:
		a.setupForm = nil
		return a, textinput.Blink
	}

	return a, cmd
}

// saveSetupConfig persists the form answers and applies them to the running app.
func (a *App) saveSetupConfig() tea.Cmd {
	a.setupVals.apply(&a.cfg)
	theme.SetActive(a.cfg.Appearance.Theme)

	if clip, err := clipboard.New(a.cfg.Clipboard.Mode, a.clipTerm); err == nil {
		a.clip = clip
	}

	a.defaults = a.cfg.Defaults.Inputs()
	projectHours := a.fields[fieldProjectHours].Value()
	a.fillFields(a.defaults)
	a.fields[fieldProjectHours].SetValue(projectHours)
	a.recompute()

	if err := config.Save(a.cfg); err != nil {
		a.log.Error("saving setup config", zap.Error(err))
		return a.setFlash(components.Flash{Text: "No se pudo guardar la configuración", Error: true})
	}
	a.log.Info("setup config saved", zap.String("path", config.Path()))
	return a.setFlash(components.Flash{Text: "Configuración guardada"})
}

// RunSetup runs the setup form on its own and saves the result.
func RunSetup(cfg config.Config) (config.Config, error) {
	vals := newSetupValues(cfg)
	if err := newSetupForm(vals).Run(); err != nil {
		return cfg, fmt.Errorf("setup form: %w", err)
	}

	vals.apply(&cfg)
	if err := config.Save(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
