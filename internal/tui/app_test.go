package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/theirongolddev/tarifa/internal/clipboard"
	"github.com/theirongolddev/tarifa/internal/config"
	"github.com/theirongolddev/tarifa/internal/pricing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) Write(text string) error {
	f.text = text
	return f.err
}

func scenarioConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Defaults = config.DefaultsConfig{
		AnnualGoal:          pricing.Float(48000),
		BillableHoursPerDay: pricing.Float(5),
		VacationDaysPerYear: pricing.Float(30),
		MonthlyExpenses:     pricing.Float(0),
		TaxRatePercent:      pricing.Float(0),
		ProjectHours:        pricing.Float(10),
	}
	return cfg
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	next, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return next, cmd
}

func TestNewAppPrefillsDefaults(t *testing.T) {
	a := NewApp(Options{Config: scenarioConfig()})

	if got := a.fields[fieldAnnualGoal].Value(); got != "48000" {
		t.Errorf("annual goal field = %q, want 48000", got)
	}
	q := a.Quote()
	if q.Hourly != "28,66\u00a0€" {
		t.Errorf("Hourly = %q", q.Hourly)
	}
	if q.Project != "286,57\u00a0€" {
		t.Errorf("Project = %q", q.Project)
	}
}

func TestTypingRecomputes(t *testing.T) {
	a := NewApp(Options{Config: config.DefaultConfig()})
	if a.Quote().Breakdown.HourlyRate != 0 {
		t.Fatalf("empty form should price at 0, got %v", a.Quote().Breakdown.HourlyRate)
	}

	a, _ = update(t, a, runes("48000"))
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a, _ = update(t, a, runes("5"))
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a, _ = update(t, a, runes("30"))

	if a.focus != fieldVacationDays {
		t.Fatalf("focus = %d, want %d", a.focus, fieldVacationDays)
	}
	if got := a.Quote().Hourly; got != "28,66\u00a0€" {
		t.Errorf("Hourly after typing = %q, want 28,66\u00a0€", got)
	}
}

func TestCommaDecimalInput(t *testing.T) {
	a := NewApp(Options{Config: config.DefaultConfig()})
	a.setFocus(fieldProjectHours)

	a, _ = update(t, a, runes("12,5"))

	if got := a.Inputs().ProjectHours; got == nil || *got != 12.5 {
		t.Fatalf("ProjectHours = %v, want 12.5", got)
	}
	if !strings.Contains(a.Quote().Proposal, "Horas estimadas: 12.5h") {
		t.Errorf("proposal missing raw hours:\n%s", a.Quote().Proposal)
	}
}

func TestLettersNeverReachInputs(t *testing.T) {
	a := NewApp(Options{Config: config.DefaultConfig()})

	a, _ = update(t, a, runes("x"))
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	if got := a.fields[fieldAnnualGoal].Value(); got != "" {
		t.Errorf("field = %q, want empty", got)
	}
}

func TestPasteKeepsNumericRunes(t *testing.T) {
	a := NewApp(Options{Config: config.DefaultConfig()})

	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("50000\u00a0€"), Paste: true})

	if got := a.fields[fieldAnnualGoal].Value(); got != "50000" {
		t.Errorf("field = %q, want 50000", got)
	}
}

func TestFocusWraps(t *testing.T) {
	a := NewApp(Options{Config: config.DefaultConfig()})

	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyShiftTab})
	if a.focus != fieldCount-1 {
		t.Fatalf("shift+tab from first field: focus = %d, want %d", a.focus, fieldCount-1)
	}
	if !a.fields[fieldCount-1].Focused() || a.fields[0].Focused() {
		t.Error("focus flag not moved")
	}

	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyDown})
	if a.focus != 0 {
		t.Errorf("down from last field: focus = %d, want 0", a.focus)
	}
}

func TestCopyFlashesSuccess(t *testing.T) {
	clip := &fakeClipboard{}
	a := NewApp(Options{Config: scenarioConfig(), Clipboard: clip})

	a, cmd := update(t, a, runes("c"))
	if cmd == nil {
		t.Fatal("c should return a copy command")
	}
	a, expire := update(t, a, cmd())

	if clip.text != a.Quote().Proposal {
		t.Errorf("clipboard got %q, want the proposal", clip.text)
	}
	if a.flash.Text != CopiedMessage || a.flash.Error {
		t.Errorf("flash = %+v, want success message", a.flash)
	}
	if expire == nil {
		t.Fatal("flash should schedule its expiry")
	}

	a, _ = update(t, a, flashExpiredMsg{id: a.flashID})
	if a.flash.Text != "" {
		t.Errorf("flash not cleared: %+v", a.flash)
	}
}

func TestCopyViaTerminalIsNotCalledCopied(t *testing.T) {
	var term bytes.Buffer
	clip := clipboard.Auto{
		Primary:  &fakeClipboard{err: clipboard.ErrUnavailable},
		Fallback: clipboard.OSC52{Out: &term},
	}
	a := NewApp(Options{Config: scenarioConfig(), Clipboard: clip})

	a, cmd := update(t, a, runes("c"))
	a, _ = update(t, a, cmd())

	if term.Len() == 0 {
		t.Fatal("OSC 52 sequence not written")
	}
	if a.flash.Text != SentToTerminalMessage || a.flash.Error {
		t.Errorf("flash = %+v, want %q", a.flash, SentToTerminalMessage)
	}
}

func TestCopyFailureIsShown(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("xclip not found")}
	a := NewApp(Options{Config: scenarioConfig(), Clipboard: clip})

	a, cmd := update(t, a, runes("c"))
	a, _ = update(t, a, cmd())

	if !a.flash.Error || !strings.Contains(a.flash.Text, "xclip not found") {
		t.Errorf("flash = %+v, want the clipboard error", a.flash)
	}
}

func TestCopyWithoutClipboard(t *testing.T) {
	a := NewApp(Options{Config: scenarioConfig()})

	a, cmd := update(t, a, runes("c"))
	a, _ = update(t, a, cmd())

	if !a.flash.Error {
		t.Errorf("flash = %+v, want an error", a.flash)
	}
}

func TestStaleFlashExpiryIsIgnored(t *testing.T) {
	a := NewApp(Options{Config: scenarioConfig(), Clipboard: &fakeClipboard{}})

	a, cmd := update(t, a, runes("c"))
	a, _ = update(t, a, cmd())
	stale := a.flashID
	a, cmd = update(t, a, runes("c"))
	a, _ = update(t, a, cmd())

	a, _ = update(t, a, flashExpiredMsg{id: stale})
	if a.flash.Text == "" {
		t.Error("an older expiry cleared the newer flash")
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	a := NewApp(Options{Config: scenarioConfig()})

	a, _ = update(t, a, runes("9"))
	if got := a.fields[fieldAnnualGoal].Value(); got != "480009" {
		t.Fatalf("field = %q, want 480009", got)
	}

	a, _ = update(t, a, runes("r"))
	if got := a.fields[fieldAnnualGoal].Value(); got != "48000" {
		t.Errorf("after reset field = %q, want 48000", got)
	}
	if got := a.Quote().Hourly; got != "28,66\u00a0€" {
		t.Errorf("after reset Hourly = %q", got)
	}
}

func TestHelpToggle(t *testing.T) {
	a := NewApp(Options{Config: scenarioConfig()})
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})

	a, _ = update(t, a, runes("?"))
	if !a.showHelp || !strings.Contains(a.View(), "Atajos de teclado") {
		t.Fatal("? should open the help overlay")
	}

	a, _ = update(t, a, runes("1"))
	if a.showHelp {
		t.Error("any key should close help")
	}
	if got := a.fields[fieldAnnualGoal].Value(); got != "48000" {
		t.Errorf("closing keystroke leaked into the field: %q", got)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		runes("q"),
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		a := NewApp(Options{Config: scenarioConfig()})
		_, cmd := update(t, a, msg)
		if cmd == nil {
			t.Errorf("%s: no command", msg)
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", msg)
		}
	}
}

func TestViewMainShowsResults(t *testing.T) {
	for _, width := range []int{90, 140, 200} {
		a := NewApp(Options{Config: scenarioConfig()})
		a, _ = update(t, a, tea.WindowSizeMsg{Width: width, Height: 60})

		view := a.View()
		for _, want := range []string{
			"Precio / Hora",
			"Precio / Jornada (8h)",
			"Precio Proyecto",
			"286,57\u00a0€",
			"Configuración",
			"Desglose",
			"Presupuesto Rápido",
		} {
			if !strings.Contains(view, want) {
				t.Errorf("width %d: view missing %q", width, want)
			}
		}

		if h := lipgloss.Height(view); h != 60 {
			t.Errorf("width %d: view height = %d, want 60", width, h)
		}
	}
}

func TestViewWarnsWithoutBillableHours(t *testing.T) {
	a := NewApp(Options{Config: config.DefaultConfig()})
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 140, Height: 60})

	if !strings.Contains(a.View(), "Sin horas facturables") {
		t.Error("missing no-billable-hours warning")
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := NewApp(Options{Config: scenarioConfig()})
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 60, Height: 20})

	if !strings.Contains(a.View(), "al menos 80 columnas") {
		t.Errorf("narrow view = %q", a.View())
	}
}

func TestSetupFormStartsOnFirstRun(t *testing.T) {
	a := NewApp(Options{Config: config.DefaultConfig(), NeedSetup: true})
	if a.setupForm == nil {
		t.Fatal("NeedSetup should start the setup form")
	}

	_, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit during setup")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c during setup did not quit")
	}

	if b := NewApp(Options{Config: config.DefaultConfig()}); b.setupForm != nil {
		t.Error("setup form started without NeedSetup")
	}
}

func TestSetupValuesApply(t *testing.T) {
	vals := newSetupValues(config.DefaultConfig())
	if vals.Theme != "flexoki-dark" || vals.ClipboardMode != "auto" {
		t.Fatalf("unexpected initial values %+v", vals)
	}

	vals.Theme = "tokyo-night"
	vals.ClipboardMode = "osc52"
	vals.AnnualGoal = "60000"
	vals.TaxRate = "21,5"

	cfg := scenarioConfig()
	vals.apply(&cfg)

	if cfg.Appearance.Theme != "tokyo-night" || cfg.Clipboard.Mode != "osc52" {
		t.Errorf("appearance/clipboard not applied: %+v", cfg)
	}
	if cfg.Defaults.AnnualGoal == nil || *cfg.Defaults.AnnualGoal != 60000 {
		t.Errorf("AnnualGoal = %v", cfg.Defaults.AnnualGoal)
	}
	if cfg.Defaults.TaxRatePercent == nil || *cfg.Defaults.TaxRatePercent != 21.5 {
		t.Errorf("TaxRatePercent = %v", cfg.Defaults.TaxRatePercent)
	}
	if cfg.Defaults.BillableHoursPerDay != nil {
		t.Errorf("empty answer should clear the default, got %v", *cfg.Defaults.BillableHoursPerDay)
	}
	if cfg.Defaults.ProjectHours == nil || *cfg.Defaults.ProjectHours != 10 {
		t.Error("project hours default should be left alone")
	}
}

func TestValidateNumber(t *testing.T) {
	for _, ok := range []string{"", "1500", "12,5", "12.5"} {
		if err := validateNumber(ok); err != nil {
			t.Errorf("validateNumber(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"abc", "12€"} {
		if err := validateNumber(bad); err == nil {
			t.Errorf("validateNumber(%q) should fail", bad)
		}
	}
}
