package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/tarifa/internal/pricing"
)

func sampleQuote() pricing.Quote {
	return pricing.NewQuote(pricing.Inputs{
		AnnualGoal:          pricing.Float(48000),
		BillableHoursPerDay: pricing.Float(5),
		VacationDaysPerYear: pricing.Float(30),
		ProjectHours:        pricing.Float(10),
	})
}

func TestEncode_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, NewQuoteDocument(sampleQuote())))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	inputs := decoded["inputs"].(map[string]any)
	assert.InDelta(t, 48000, inputs["annual_goal"], 1e-9)
	assert.NotContains(t, inputs, "tax_rate_percent", "unset inputs are omitted")

	formatted := decoded["formatted"].(map[string]any)
	assert.Equal(t, "28,66\u00a0€", formatted["hourly"])
	assert.Contains(t, decoded["proposal"], "TOTAL PROYECTO: 286,57\u00a0€")
}

func TestEncode_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatYAML, NewQuoteDocument(sampleQuote())))

	var decoded struct {
		Breakdown struct {
			HourlyRate float64 `yaml:"hourly_rate"`
			DailyRate  float64 `yaml:"daily_rate"`
		} `yaml:"breakdown"`
		Proposal string `yaml:"proposal"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.InDelta(t, decoded.Breakdown.HourlyRate*8, decoded.Breakdown.DailyRate, 1e-9)
	assert.Equal(t, sampleQuote().Proposal, decoded.Proposal)
}

func TestEncode_UnknownFormat(t *testing.T) {
	err := Encode(&bytes.Buffer{}, "xml", struct{}{})
	assert.Error(t, err)
}
