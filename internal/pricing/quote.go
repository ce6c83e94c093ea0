package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ProposalTemplate is the copyable quote text. Verbs: hourly rate, project hours, project price.
const ProposalTemplate = `Presupuesto Rápido

Tarifa por hora: %s
Horas estimadas: %sh

*************************************
TOTAL PROYECTO: %s
*************************************

*Presupuesto válido por 15 días.`

// Quote is the full calculator output for one set of inputs.
type Quote struct {
	Inputs    Inputs
	Breakdown Breakdown
	Hourly    string
	Daily     string
	Project   string
	Proposal  string
}

// NewQuote calculates and formats a quote. It is rebuilt from scratch on every call.
func NewQuote(in Inputs) Quote {
	b := Calculate(in)
	return Quote{
		Inputs:    in,
		Breakdown: b,
		Hourly:    FormatCurrency(b.HourlyRate),
		Daily:     FormatCurrency(b.DailyRate),
		Project:   FormatCurrency(b.ProjectPrice),
		Proposal:  Proposal(b),
	}
}

// Proposal renders the proposal text for a breakdown.
func Proposal(b Breakdown) string {
	return fmt.Sprintf(ProposalTemplate,
		FormatCurrency(b.HourlyRate),
		formatRawHours(b.ProjectHours),
		FormatCurrency(b.ProjectPrice),
	)
}

// formatRawHours prints hours as entered: shortest form, "." separator, no
// grouping. Magnitudes from 1e21 up and below 1e-6 switch to exponent form
// with an unpadded exponent ("1e+21", "1.5e-7").
func formatRawHours(h float64) string {
	if h == 0 {
		return "0"
	}
	if abs := math.Abs(h); abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(h, 'f', -1, 64)
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(h, 'e', -1, 64), "e")
	return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}
