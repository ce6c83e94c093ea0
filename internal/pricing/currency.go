package pricing

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	thousandsSep = "."
	decimalSep   = ","
	// Intl es-ES puts a no-break space between amount and symbol.
	currencySuffix = "\u00a0€"
)

// FormatCurrency renders an amount as euros in the es-ES convention, e.g. "1.234,56\u00a0€".
// All monetary output goes through here.
func FormatCurrency(amount float64) string {
	return FormatNumber(amount, 2) + currencySuffix
}

// FormatNumber renders v with the given number of decimals, "." thousands
// grouping and "," as decimal separator. Values that round to zero never carry a sign.
func FormatNumber(v float64, places int32) string {
	switch {
	case math.IsNaN(v):
		v = 0
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	d := decimal.NewFromFloat(v).Round(places)

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	fixed := d.Abs().StringFixed(places)

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	out := sign + groupThousands(intPart)
	if places > 0 {
		out += decimalSep + fracPart
	}
	return out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(thousandsSep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
