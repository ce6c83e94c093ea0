// Package pricing derives freelance rates and a quote from the calculator inputs.
package pricing

import (
	"math"
	"strconv"
	"strings"
)

// Inputs holds the raw calculator fields. A nil field has not been provided yet.
type Inputs struct {
	AnnualGoal          *float64 `json:"annual_goal,omitempty" yaml:"annual_goal,omitempty"`
	BillableHoursPerDay *float64 `json:"billable_hours_per_day,omitempty" yaml:"billable_hours_per_day,omitempty"`
	VacationDaysPerYear *float64 `json:"vacation_days_per_year,omitempty" yaml:"vacation_days_per_year,omitempty"`
	MonthlyExpenses     *float64 `json:"monthly_expenses,omitempty" yaml:"monthly_expenses,omitempty"`
	TaxRatePercent      *float64 `json:"tax_rate_percent,omitempty" yaml:"tax_rate_percent,omitempty"`
	ProjectHours        *float64 `json:"project_hours,omitempty" yaml:"project_hours,omitempty"`
}

// Values is Inputs with every field coerced to a usable number.
type Values struct {
	AnnualGoal          float64
	BillableHoursPerDay float64
	VacationDaysPerYear float64
	MonthlyExpenses     float64
	TaxRatePercent      float64
	ProjectHours        float64
}

// Sanitized replaces unset and non-finite fields with 0.
func (in Inputs) Sanitized() Values {
	return Values{
		AnnualGoal:          orZero(in.AnnualGoal),
		BillableHoursPerDay: orZero(in.BillableHoursPerDay),
		VacationDaysPerYear: orZero(in.VacationDaysPerYear),
		MonthlyExpenses:     orZero(in.MonthlyExpenses),
		TaxRatePercent:      orZero(in.TaxRatePercent),
		ProjectHours:        orZero(in.ProjectHours),
	}
}

func orZero(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	// Collapse -0 so it never leaks into the proposal.
	if *v == 0 {
		return 0
	}
	return *v
}

// ParseInput reads a text field. Both "12.5" and "12,5" are accepted.
// Empty or unparseable text yields nil, never an error.
func ParseInput(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Float returns a pointer to v, for building Inputs literals.
func Float(v float64) *float64 {
	return &v
}
