package pricing

const (
	// DaysPerYear is the calendar basis for billable days.
	DaysPerYear = 365
	// MonthsPerYear spreads annual figures over months.
	MonthsPerYear = 12
	// HoursPerDay is the fixed length of a billed day. It deliberately ignores
	// BillableHoursPerDay.
	HoursPerDay = 8
)

// Breakdown holds every value derived from one set of inputs.
type Breakdown struct {
	MonthlyGoal           float64 `json:"monthly_goal" yaml:"monthly_goal"`
	RequiredMonthlyIncome float64 `json:"required_monthly_income" yaml:"required_monthly_income"`
	WorkDaysPerYear       float64 `json:"work_days_per_year" yaml:"work_days_per_year"`
	WorkDaysPerMonth      float64 `json:"work_days_per_month" yaml:"work_days_per_month"`
	MonthlyBillableHours  float64 `json:"monthly_billable_hours" yaml:"monthly_billable_hours"`
	BaseHourlyRate        float64 `json:"base_hourly_rate" yaml:"base_hourly_rate"`
	TaxRatePercent        float64 `json:"tax_rate_percent" yaml:"tax_rate_percent"`
	HourlyRate            float64 `json:"hourly_rate" yaml:"hourly_rate"`
	DailyRate             float64 `json:"daily_rate" yaml:"daily_rate"`
	ProjectHours          float64 `json:"project_hours" yaml:"project_hours"`
	ProjectPrice          float64 `json:"project_price" yaml:"project_price"`
}

// Calculate runs the pricing formulas over the sanitized inputs.
func Calculate(in Inputs) Breakdown {
	v := in.Sanitized()

	monthlyGoal := v.AnnualGoal / MonthsPerYear
	required := monthlyGoal + v.MonthlyExpenses

	workDaysPerYear := DaysPerYear - v.VacationDaysPerYear
	workDaysPerMonth := workDaysPerYear / MonthsPerYear
	monthlyHours := workDaysPerMonth * v.BillableHoursPerDay

	// No billable hours means no rate, not a division by zero.
	baseRate := 0.0
	if monthlyHours > 0 {
		baseRate = required / monthlyHours
	}
	hourly := baseRate * (1 + v.TaxRatePercent/100)

	return Breakdown{
		MonthlyGoal:           monthlyGoal,
		RequiredMonthlyIncome: required,
		WorkDaysPerYear:       workDaysPerYear,
		WorkDaysPerMonth:      workDaysPerMonth,
		MonthlyBillableHours:  monthlyHours,
		BaseHourlyRate:        baseRate,
		TaxRatePercent:        v.TaxRatePercent,
		HourlyRate:            hourly,
		DailyRate:             hourly * HoursPerDay,
		ProjectHours:          v.ProjectHours,
		ProjectPrice:          hourly * v.ProjectHours,
	}
}

// BillableShare returns the fraction of the calendar year left for billing, clamped to [0, 1].
func (b Breakdown) BillableShare() float64 {
	share := b.WorkDaysPerYear / DaysPerYear
	if share < 0 {
		return 0
	}
	if share > 1 {
		return 1
	}
	return share
}
