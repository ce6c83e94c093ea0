// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"github.com/theirongolddev/tarifa/internal/pricing"
)

// FormatHours formats an hour count with one decimal, e.g. 139.58 -> "139,6 h".
func FormatHours(h float64) string {
	return pricing.FormatNumber(h, 1) + " h"
}

// FormatDays formats a day count, dropping decimals when whole.
// e.g., 335 -> "335 días", 27.9166 -> "27,92 días"
func FormatDays(d float64) string {
	if d == float64(int64(d)) {
		return pricing.FormatNumber(d, 0) + " días"
	}
	return pricing.FormatNumber(d, 2) + " días"
}

// FormatPercent formats a percentage value (already x100), e.g. 21 -> "21 %".
func FormatPercent(p float64) string {
	if p == float64(int64(p)) {
		return pricing.FormatNumber(p, 0) + " %"
	}
	return pricing.FormatNumber(p, 1) + " %"
}

// FormatInput renders an optional input for display; unset shows "-".
func FormatInput(v *float64) string {
	if v == nil {
		return "-"
	}
	if *v == float64(int64(*v)) {
		return pricing.FormatNumber(*v, 0)
	}
	return pricing.FormatNumber(*v, 2)
}
