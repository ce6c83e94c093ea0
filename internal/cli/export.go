package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/theirongolddev/tarifa/internal/pricing"

	"gopkg.in/yaml.v3"
)

// Output formats for `tarifa quote`.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// QuoteDocument is the machine-readable form of a quote.
type QuoteDocument struct {
	Inputs    pricing.Inputs    `json:"inputs" yaml:"inputs"`
	Breakdown pricing.Breakdown `json:"breakdown" yaml:"breakdown"`
	Formatted FormattedAmounts  `json:"formatted" yaml:"formatted"`
	Proposal  string            `json:"proposal" yaml:"proposal"`
}

// FormattedAmounts holds the currency strings shown to the user.
type FormattedAmounts struct {
	Hourly  string `json:"hourly" yaml:"hourly"`
	Daily   string `json:"daily" yaml:"daily"`
	Project string `json:"project" yaml:"project"`
}

// NewQuoteDocument converts a quote for export.
func NewQuoteDocument(q pricing.Quote) QuoteDocument {
	return QuoteDocument{
		Inputs:    q.Inputs,
		Breakdown: q.Breakdown,
		Formatted: FormattedAmounts{
			Hourly:  q.Hourly,
			Daily:   q.Daily,
			Project: q.Project,
		},
		Proposal: q.Proposal,
	}
}

// Encode writes v as JSON or YAML. Text output is rendered by the caller.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
