package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theirongolddev/tarifa/internal/cli"
	"github.com/theirongolddev/tarifa/internal/clipboard"
	"github.com/theirongolddev/tarifa/internal/config"
	"github.com/theirongolddev/tarifa/internal/pricing"
	"github.com/theirongolddev/tarifa/internal/tui/theme"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	flagNoDefaults bool
	flagCopy       bool
	flagFormat     string
)

// quoteFlag binds a numeric calculator input to a string flag. Strings keep
// unparseable values on the same path as empty ones: they count as unset.
type quoteFlag struct {
	name  string
	usage string
	value string
	field func(*pricing.Inputs) **float64
}

var quoteFlags = []*quoteFlag{
	{name: "annual-goal", usage: "Annual income goal (€)", field: func(in *pricing.Inputs) **float64 { return &in.AnnualGoal }},
	{name: "billable-hours", usage: "Billable hours per day", field: func(in *pricing.Inputs) **float64 { return &in.BillableHoursPerDay }},
	{name: "vacation-days", usage: "Non-billable days per year", field: func(in *pricing.Inputs) **float64 { return &in.VacationDaysPerYear }},
	{name: "expenses", usage: "Monthly operating expenses (€)", field: func(in *pricing.Inputs) **float64 { return &in.MonthlyExpenses }},
	{name: "tax-rate", usage: "Tax rate (%)", field: func(in *pricing.Inputs) **float64 { return &in.TaxRatePercent }},
	{name: "project-hours", usage: "Estimated project hours", field: func(in *pricing.Inputs) **float64 { return &in.ProjectHours }},
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a project from flags and print the proposal",
	Example: "  tarifa quote --annual-goal 48000 --billable-hours 5 --vacation-days 30 --project-hours 10\n" +
		"  tarifa quote --project-hours 12,5 --copy\n" +
		"  tarifa quote --format json",
	RunE: runQuote,
}

func init() {
	addQuoteFlags(quoteCmd.Flags())
	rootCmd.AddCommand(quoteCmd)
}

func addQuoteFlags(fs *pflag.FlagSet) {
	for _, f := range quoteFlags {
		fs.StringVar(&f.value, f.name, "", f.usage)
	}
	fs.BoolVar(&flagNoDefaults, "no-defaults", false, "Ignore the [defaults] section of the config")
	fs.BoolVar(&flagCopy, "copy", false, "Copy the proposal to the clipboard")
	fs.StringVarP(&flagFormat, "format", "f", cli.FormatText, "Output format: text, json or yaml")
}

// quoteInputs overlays explicitly set flags onto defaults. It returns the
// names of flags whose value is not a number.
func quoteInputs(flags *pflag.FlagSet, defaults pricing.Inputs) (pricing.Inputs, []string) {
	in := defaults
	var invalid []string
	for _, f := range quoteFlags {
		if !flags.Changed(f.name) {
			continue
		}
		v := pricing.ParseInput(f.value)
		if v == nil && strings.TrimSpace(f.value) != "" {
			invalid = append(invalid, f.name)
		}
		*f.field(&in) = v
	}
	return in, invalid
}

func runQuote(cmd *cobra.Command, _ []string) error {
	switch flagFormat {
	case cli.FormatText, cli.FormatJSON, cli.FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", flagFormat)
	}

	cfg, cfgErr := config.Load()

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Status lines go to stderr so json/yaml output stays clean.
	warn := pterm.Warning.WithWriter(cmd.ErrOrStderr())
	if cfgErr != nil {
		logger.Warn("loading config, using defaults", zap.Error(cfgErr))
		warn.Printfln("Could not read config, using defaults: %v", cfgErr)
	}
	theme.SetActive(config.GetTheme(cfg))

	defaults := cfg.Defaults.Inputs()
	if flagNoDefaults {
		defaults = pricing.Inputs{}
	}
	in, invalid := quoteInputs(cmd.Flags(), defaults)
	for _, name := range invalid {
		warn.Printfln("--%s is not a number, treating it as 0", name)
	}

	q := pricing.NewQuote(in)
	logger.Info("quote",
		zap.Float64("hourly_rate", q.Breakdown.HourlyRate),
		zap.Float64("project_price", q.Breakdown.ProjectPrice),
		zap.String("format", flagFormat),
	)

	out := cmd.OutOrStdout()
	if flagFormat == cli.FormatText {
		renderQuote(out, q)
	} else if err := cli.Encode(out, flagFormat, cli.NewQuoteDocument(q)); err != nil {
		return err
	}

	if !flagCopy {
		return nil
	}

	clip, err := clipboard.New(cfg.Clipboard.Mode, os.Stderr)
	if err != nil {
		return err
	}
	target, err := clipboard.Copy(clip, q.Proposal)
	if err != nil {
		logger.Error("copying proposal", zap.Error(err))
		return fmt.Errorf("copying proposal: %w", err)
	}
	logger.Info("proposal copied", zap.Bool("osc52", target == clipboard.TargetTerminal))
	if target == clipboard.TargetTerminal {
		pterm.Info.WithWriter(cmd.ErrOrStderr()).Println("Propuesta enviada al terminal (OSC 52)")
		return nil
	}
	pterm.Success.WithWriter(cmd.ErrOrStderr()).Println("¡Propuesta copiada al portapapeles!")
	return nil
}

func renderQuote(w io.Writer, q pricing.Quote) {
	b := q.Breakdown
	in := q.Inputs

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("Calculadora de Precio/Hora"))
	fmt.Fprintln(w)

	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   "Configuración",
		Headers: []string{"Dato", "Valor"},
		Rows: [][]string{
			{"Meta de Ingresos Anuales (€)", cli.FormatInput(in.AnnualGoal)},
			{"Horas Facturables por Día", cli.FormatInput(in.BillableHoursPerDay)},
			{"Días No Facturables (Total Anual)", cli.FormatInput(in.VacationDaysPerYear)},
			{"Gastos Operativos Mensuales (€)", cli.FormatInput(in.MonthlyExpenses)},
			{"Impuestos (%)", cli.FormatInput(in.TaxRatePercent)},
			{"Horas Estimadas del Proyecto", cli.FormatInput(in.ProjectHours)},
		},
	}))
	fmt.Fprintln(w)

	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   "Desglose",
		Headers: []string{"Concepto", "Valor"},
		Rows: [][]string{
			{"Meta mensual", pricing.FormatCurrency(b.MonthlyGoal)},
			{"Ingresos necesarios / mes", pricing.FormatCurrency(b.RequiredMonthlyIncome)},
			{"Días laborables / año", cli.FormatDays(b.WorkDaysPerYear)},
			{"Días laborables / mes", cli.FormatDays(b.WorkDaysPerMonth)},
			{"Horas facturables / mes", cli.FormatHours(b.MonthlyBillableHours)},
			{"Tarifa base / hora", pricing.FormatCurrency(b.BaseHourlyRate)},
			{"Impuestos", cli.FormatPercent(b.TaxRatePercent)},
		},
	}))
	fmt.Fprintln(w)

	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   "Resultados Estimados",
		Headers: []string{"Precio", "Importe"},
		Rows: [][]string{
			{"Precio / Hora", q.Hourly},
			{"Precio / Jornada (8h)", q.Daily},
			{"---"},
			{"Precio Proyecto", q.Project},
		},
	}))
	fmt.Fprintln(w)

	if b.MonthlyBillableHours <= 0 {
		fmt.Fprintln(w, "  Sin horas facturables: las tarifas quedan en 0.")
		fmt.Fprintln(w)
	}

	fmt.Fprint(w, cli.RenderBlock("Propuesta", q.Proposal))
	fmt.Fprintln(w)
}
