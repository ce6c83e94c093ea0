// Package tui provides the interactive Bubble Tea calculator for tarifa.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/tarifa/internal/cli"
	"github.com/theirongolddev/tarifa/internal/clipboard"
	"github.com/theirongolddev/tarifa/internal/config"
	"github.com/theirongolddev/tarifa/internal/pricing"
	"github.com/theirongolddev/tarifa/internal/tui/components"
	"github.com/theirongolddev/tarifa/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Calculator fields, in display order.
const (
	fieldAnnualGoal = iota
	fieldBillableHours
	fieldVacationDays
	fieldExpenses
	fieldTaxRate
	fieldProjectHours
	fieldCount
)

type fieldSpec struct {
	label       string
	placeholder string
}

var fieldSpecs = [fieldCount]fieldSpec{
	{"Meta de Ingresos Anuales (€)", "Ej: 50000"},
	{"Horas Facturables por Día", "Ej: 5"},
	{"Días No Facturables (Total Anual)", "Ej: 30"},
	{"Gastos Operativos Mensuales (€)", "Ej: 200"},
	{"Impuestos (%)", "Ej: 20"},
	{"Horas Estimadas del Proyecto", "Ej: 40"},
}

// CopiedMessage is flashed after the proposal reaches the clipboard.
const CopiedMessage = "¡Propuesta copiada al portapapeles!"

// SentToTerminalMessage is flashed when only an OSC 52 sequence could be sent.
const SentToTerminalMessage = "Propuesta enviada al terminal (OSC 52)"

const (
	minTerminalWidth = 80
	compactWidth     = 110
	maxContentWidth  = 160
	minContentHeight = 5

	flashDuration  = 3 * time.Second
	inputCharLimit = 24
)

// errNoClipboard is reported when the app was started without a clipboard writer.
var errNoClipboard = errors.New("no clipboard configured")

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	target clipboard.Target
	err    error
}

// flashExpiredMsg clears the flash with the matching id.
type flashExpiredMsg struct {
	id int
}

// Options configures a new App.
type Options struct {
	Config    config.Config
	Clipboard clipboard.Writer
	// ClipboardTerm receives OSC 52 sequences when the clipboard is rebuilt after setup.
	ClipboardTerm io.Writer
	Logger        *zap.Logger
	NeedSetup     bool
}

// App is the root Bubble Tea model.
type App struct {
	cfg      config.Config
	defaults pricing.Inputs
	clip     clipboard.Writer
	clipTerm io.Writer
	log      *zap.Logger

	// Fixed-size so value copies of App never share input state.
	fields [fieldCount]textinput.Model
	focus  int
	quote  pricing.Quote

	// UI state
	width    int
	height   int
	showHelp bool
	flash    components.Flash
	flashID  int

	// First-run setup (huh form). setupVals is shared with the form's bindings.
	setupForm *huh.Form
	setupVals *setupValues
}

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	a := App{
		cfg:      opts.Config,
		defaults: opts.Config.Defaults.Inputs(),
		clip:     opts.Clipboard,
		clipTerm: opts.ClipboardTerm,
		log:      logger,
	}

	for i := range a.fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = fieldSpecs[i].placeholder
		ti.CharLimit = inputCharLimit
		a.fields[i] = ti
	}
	a.fields[0].Focus()
	a.fillFields(a.defaults)

	if opts.NeedSetup {
		a.setupVals = newSetupValues(opts.Config)
		a.setupForm = newSetupForm(a.setupVals)
	}

	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.setupForm != nil {
		return a.setupForm.Init()
	}
	return textinput.Blink
}

// Quote returns the quote for the current field values.
func (a App) Quote() pricing.Quote {
	return a.quote
}

// Inputs parses the current field values.
func (a App) Inputs() pricing.Inputs {
	return pricing.Inputs{
		AnnualGoal:          pricing.ParseInput(a.fields[fieldAnnualGoal].Value()),
		BillableHoursPerDay: pricing.ParseInput(a.fields[fieldBillableHours].Value()),
		VacationDaysPerYear: pricing.ParseInput(a.fields[fieldVacationDays].Value()),
		MonthlyExpenses:     pricing.ParseInput(a.fields[fieldExpenses].Value()),
		TaxRatePercent:      pricing.ParseInput(a.fields[fieldTaxRate].Value()),
		ProjectHours:        pricing.ParseInput(a.fields[fieldProjectHours].Value()),
	}
}

func (a *App) recompute() {
	a.quote = pricing.NewQuote(a.Inputs())
	a.log.Debug("recomputed quote",
		zap.Float64("hourly_rate", a.quote.Breakdown.HourlyRate),
		zap.Float64("project_price", a.quote.Breakdown.ProjectPrice),
	)
}

func (a *App) fillFields(in pricing.Inputs) {
	vals := [fieldCount]*float64{
		in.AnnualGoal,
		in.BillableHoursPerDay,
		in.VacationDaysPerYear,
		in.MonthlyExpenses,
		in.TaxRatePercent,
		in.ProjectHours,
	}
	for i, v := range vals {
		a.fields[i].SetValue(inputText(v))
	}
}

// inputText renders a default value the way a user would type it.
func inputText(v *float64) string {
	if v == nil {
		return ""
	}
	return strings.ReplaceAll(strconv.FormatFloat(*v, 'f', -1, 64), ".", ",")
}

func (a *App) setFocus(i int) tea.Cmd {
	i = (i%fieldCount + fieldCount) % fieldCount
	a.fields[a.focus].Blur()
	a.focus = i
	return a.fields[i].Focus()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case copiedMsg:
		if msg.err != nil {
			a.log.Warn("copying proposal", zap.Error(msg.err))
			return a, a.setFlash(components.Flash{Text: "Error al copiar: " + msg.err.Error(), Error: true})
		}
		a.log.Info("proposal copied",
			zap.Float64("project_price", a.quote.Breakdown.ProjectPrice),
			zap.Bool("osc52", msg.target == clipboard.TargetTerminal),
		)
		if msg.target == clipboard.TargetTerminal {
			return a, a.setFlash(components.Flash{Text: SentToTerminalMessage})
		}
		return a, a.setFlash(components.Flash{Text: CopiedMessage})

	case flashExpiredMsg:
		if msg.id == a.flashID {
			a.flash = components.Flash{}
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		return a.updateKey(msg)
	}

	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Cursor blink and other input-internal messages.
	var cmd tea.Cmd
	a.fields[a.focus], cmd = a.fields[a.focus].Update(msg)
	return a, cmd
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return a, tea.Quit
	case "tab", "down", "enter":
		return a, a.setFocus(a.focus + 1)
	case "shift+tab", "up":
		return a, a.setFocus(a.focus - 1)
	}

	if msg.Type == tea.KeySpace {
		return a, nil
	}

	if msg.Type == tea.KeyRunes {
		numeric := numericRunes(msg.Runes)
		if len(numeric) != len(msg.Runes) {
			if !msg.Paste && len(msg.Runes) == 1 {
				return a.runCommand(msg.Runes[0])
			}
			if len(numeric) == 0 {
				return a, nil
			}
			// Pasted text keeps only its numeric characters.
			msg.Runes = numeric
		}
	}

	var cmd tea.Cmd
	a.fields[a.focus], cmd = a.fields[a.focus].Update(msg)
	a.recompute()
	return a, cmd
}

func (a App) runCommand(r rune) (tea.Model, tea.Cmd) {
	switch r {
	case 'c':
		if a.clip == nil {
			return a, func() tea.Msg { return copiedMsg{err: errNoClipboard} }
		}
		return a, copyCmd(a.clip, a.quote.Proposal)
	case 'r':
		a.fillFields(a.defaults)
		a.recompute()
		return a, a.setFocus(0)
	case '?':
		a.showHelp = true
		return a, nil
	case 'q':
		return a, tea.Quit
	}
	return a, nil
}

func isNumericRune(r rune) bool {
	return (r >= '0' && r <= '9') || strings.ContainsRune(".,-+eE", r)
}

func numericRunes(rs []rune) []rune {
	out := make([]rune, 0, len(rs))
	for _, r := range rs {
		if isNumericRune(r) {
			out = append(out, r)
		}
	}
	return out
}

func (a *App) setFlash(f components.Flash) tea.Cmd {
	a.flashID++
	a.flash = f
	id := a.flashID
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{id: id}
	})
}

// copyCmd writes text to the clipboard off the update loop.
func copyCmd(w clipboard.Writer, text string) tea.Cmd {
	return func() tea.Msg {
		target, err := clipboard.Copy(w, text)
		return copiedMsg{target: target, err: err}
	}
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal demasiado estrecha (%d columnas)\n\n  tarifa necesita al menos %d columnas.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.KeyHint).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Atajos de teclado"))
	b.WriteString("\n\n")

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Campos", []struct{ key, desc string }{
			{"Tab ↓ Enter", "Campo siguiente"},
			{"⇧Tab ↑", "Campo anterior"},
			{"0-9 , .", "Escribir valor"},
		}},
		{"Acciones", []struct{ key, desc string }{
			{"c", "Copiar propuesta"},
			{"r", "Restaurar valores por defecto"},
			{"?", "Mostrar / ocultar ayuda"},
			{"q Esc", "Salir"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Pulsa cualquier tecla para cerrar"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	headerRowStyle := lipgloss.NewStyle().Background(t.Surface).Width(w)

	header := headerRowStyle.Render(
		titleStyle.Render(" ◈ tarifa") +
			subtitleStyle.Render(" · Define tu valor y genera una propuesta justa."))

	statusBar := components.RenderStatusBar(w, "[c]opiar  [r]estaurar  [?]ayuda  [q]salir", a.flash)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	content := a.renderContent(cw)
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderContent(cw int) string {
	q := a.quote
	b := q.Breakdown

	metrics := components.MetricCardRow([]components.Metric{
		{Label: "Precio / Hora", Value: q.Hourly, Detail: "base " + pricing.FormatCurrency(b.BaseHourlyRate)},
		{Label: "Precio / Jornada (8h)", Value: q.Daily, Detail: fmt.Sprintf("%d h × %s", pricing.HoursPerDay, q.Hourly)},
		{Label: "Precio Proyecto", Value: q.Project, Detail: cli.FormatHours(b.ProjectHours)},
	}, cw)

	var middle string
	if a.isCompactLayout() {
		middle = lipgloss.JoinVertical(lipgloss.Left,
			a.renderConfigCard(cw),
			a.renderBreakdownCard(cw))
	} else {
		widths := components.LayoutRow(cw, 2)
		middle = components.CardRow([]string{
			a.renderConfigCard(widths[0]),
			a.renderBreakdownCard(widths[1]),
		})
	}

	proposal := components.ContentCard("Generar Propuesta", a.renderProposal(), cw)

	return lipgloss.JoinVertical(lipgloss.Left, metrics, middle, proposal)
}

func (a App) renderConfigCard(outerWidth int) string {
	t := theme.Active
	inner := components.CardInnerWidth(outerWidth)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	focusLabelStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	labelW := 0
	for _, fs := range fieldSpecs {
		labelW = max(labelW, lipgloss.Width(fs.label))
	}
	// Narrow cards stack the input under its label.
	stacked := inner < labelW+14

	var sb strings.Builder
	for i, ti := range a.fields {
		marker, ls := "  ", labelStyle
		if i == a.focus {
			marker, ls = "▸ ", focusLabelStyle
		}

		ti.TextStyle = lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
		ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

		if stacked {
			ti.Width = max(inner-4, 4)
			sb.WriteString(markerStyle.Render(marker) + ls.Render(fieldSpecs[i].label) + "\n")
			sb.WriteString(spaceStyle.Render("    ") + ti.View())
		} else {
			ti.Width = max(inner-labelW-5, 4)
			label := fieldSpecs[i].label + strings.Repeat(" ", labelW-lipgloss.Width(fieldSpecs[i].label))
			sb.WriteString(markerStyle.Render(marker) + ls.Render(label) + spaceStyle.Render(" ") + ti.View())
		}
		if i < fieldCount-1 {
			sb.WriteString("\n")
		}
	}

	return components.FocusCard("Configuración", sb.String(), outerWidth)
}

func (a App) renderBreakdownCard(outerWidth int) string {
	t := theme.Active
	b := a.quote.Breakdown
	inner := components.CardInnerWidth(outerWidth)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	rows := []struct{ label, value string }{
		{"Meta mensual", pricing.FormatCurrency(b.MonthlyGoal)},
		{"Ingresos necesarios / mes", pricing.FormatCurrency(b.RequiredMonthlyIncome)},
		{"Días laborables / año", cli.FormatDays(b.WorkDaysPerYear)},
		{"Días laborables / mes", cli.FormatDays(b.WorkDaysPerMonth)},
		{"Horas facturables / mes", cli.FormatHours(b.MonthlyBillableHours)},
		{"Tarifa base / hora", pricing.FormatCurrency(b.BaseHourlyRate)},
		{"Impuestos", cli.FormatPercent(b.TaxRatePercent)},
	}

	var sb strings.Builder
	for _, r := range rows {
		gap := max(inner-lipgloss.Width(r.label)-lipgloss.Width(r.value), 1)
		sb.WriteString(labelStyle.Render(r.label) + spaceStyle.Render(strings.Repeat(" ", gap)) + valueStyle.Render(r.value))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	const barLabel = "Días facturables"
	barW := max(inner-lipgloss.Width(barLabel)-7, 10)
	sb.WriteString(components.ShareBar(barLabel, b.BillableShare(), lipgloss.Width(barLabel), barW))

	if b.MonthlyBillableHours <= 0 {
		sb.WriteString("\n")
		sb.WriteString(warnStyle.Render("Sin horas facturables: las tarifas quedan en 0."))
	}

	return components.ContentCard("Desglose", sb.String(), outerWidth)
}

func (a App) renderProposal() string {
	t := theme.Active
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	lines := strings.Split(a.quote.Proposal, "\n")
	for i, l := range lines {
		lines[i] = textStyle.Render(l)
	}
	return strings.Join(lines, "\n") + "\n\n" + hintStyle.Render("Pulsa c para copiar la propuesta.")
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
