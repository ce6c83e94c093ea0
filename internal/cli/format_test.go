package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theirongolddev/tarifa/internal/pricing"
)

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "139,6 h", FormatHours(139.58333))
	assert.Equal(t, "0,0 h", FormatHours(0))
}

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "335 días", FormatDays(335))
	assert.Equal(t, "27,92 días", FormatDays(27.916666))
	assert.Equal(t, "-35 días", FormatDays(-35))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "21 %", FormatPercent(21))
	assert.Equal(t, "12,5 %", FormatPercent(12.5))
}

func TestFormatInput(t *testing.T) {
	assert.Equal(t, "-", FormatInput(nil))
	assert.Equal(t, "48.000", FormatInput(pricing.Float(48000)))
	assert.Equal(t, "7,25", FormatInput(pricing.Float(7.25)))
}
