package api

import (
	"github.com/shopspring/decimal"
	"github.com/warp/shift-pay/payroll"
)

// =============================================================================
// REQUEST DTOs
// =============================================================================

// CalculationRequest is the body of POST /api/calculations and the input of
// a sample scenario. Shift fields stay raw so the engine can tell an unset
// field from a non-numeric one.
type CalculationRequest struct {
	HourlyWage     int                  `json:"hourly_wage" validate:"required,gt=0"`
	OvernightStays int                  `json:"overnight_stays" validate:"gte=0"`
	Shifts         []payroll.ShiftInput `json:"shifts" validate:"required,min=1"`
	Period         *PeriodRef           `json:"period,omitempty"`
}

// PeriodRef names a payroll period by its target month.
type PeriodRef struct {
	Year  int `json:"year" validate:"required,gte=1"`
	Month int `json:"month" validate:"required,min=1,max=12"`
}

// ShiftBreakdownRequest is the body of POST /api/shifts/breakdown.
type ShiftBreakdownRequest struct {
	HourlyWage int                `json:"hourly_wage" validate:"required,gt=0"`
	Shift      payroll.ShiftInput `json:"shift"`
}

// =============================================================================
// RESPONSE DTOs
// =============================================================================

// Money values are rendered as JSON numbers. Every amount the engine emits
// has at most two decimal places, so float64 is exact enough for display.

// ShiftDTO is one shift of a calculation with its breakdown.
type ShiftDTO struct {
	Index     int    `json:"index"`
	Date      string `json:"date,omitempty"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	TimeRange string `json:"time_range"`

	SpanMinutes     int `json:"span_minutes"`
	BreakMinutes    int `json:"break_minutes"`
	WorkingMinutes  int `json:"working_minutes"`
	BaseMinutes     int `json:"base_minutes"`
	NightMinutes    int `json:"night_minutes"`
	EarlyMinutes    int `json:"early_minutes"`
	OvertimeMinutes int `json:"overtime_minutes"`

	BaseWage          float64 `json:"base_wage"`
	NightAllowance    float64 `json:"night_allowance"`
	EarlyAllowance    float64 `json:"early_allowance"`
	OvertimeAllowance float64 `json:"overtime_allowance"`
	MealAllowance     float64 `json:"meal_allowance"`
	Transportation    float64 `json:"transportation"`
	Total             float64 `json:"total"`
}

// TotalsDTO is the aggregated pay of a calculation.
type TotalsDTO struct {
	ShiftCount      int `json:"shift_count"`
	WorkingMinutes  int `json:"working_minutes"`
	BaseMinutes     int `json:"base_minutes"`
	NightMinutes    int `json:"night_minutes"`
	EarlyMinutes    int `json:"early_minutes"`
	OvertimeMinutes int `json:"overtime_minutes"`

	BaseWage               float64 `json:"base_wage"`
	NightAllowance         float64 `json:"night_allowance"`
	EarlyAllowance         float64 `json:"early_allowance"`
	OvertimeAllowance      float64 `json:"overtime_allowance"`
	MealAllowance          float64 `json:"meal_allowance"`
	Transportation         float64 `json:"transportation"`
	AccommodationAllowance float64 `json:"accommodation_allowance"`
	NightMealAllowance     float64 `json:"night_meal_allowance"`
	GrossSalary            float64 `json:"gross_salary"`
}

// CalculationResponse is returned by POST /api/calculations.
type CalculationResponse struct {
	ID             string     `json:"calculation_id"`
	HourlyWage     int        `json:"hourly_wage"`
	OvernightStays int        `json:"overnight_stays"`
	Period         *PeriodDTO `json:"period,omitempty"`
	Totals         TotalsDTO  `json:"totals"`
	Shifts         []ShiftDTO `json:"shifts"`

	// Informational; not part of gross salary.
	WorkDaysByMonth map[int]int `json:"work_days_by_month"`
	JobFees         map[int]int `json:"job_fees"`
}

// PeriodDTO describes a payroll period.
type PeriodDTO struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

// JobFeeResponse is returned by GET /api/job-fee.
type JobFeeResponse struct {
	WorkDays int `json:"work_days"`
	Fee      int `json:"fee"`
}

// CalendarResponse is returned by GET /api/calendar/{month}.
type CalendarResponse struct {
	Month int `json:"month"`
	Days  int `json:"days"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// ShiftErrorDetails locates the shift that failed validation.
type ShiftErrorDetails struct {
	Shift   int    `json:"shift"` // 1-based
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// FieldErrorDetails describes one failed struct validation rule.
type FieldErrorDetails struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// =============================================================================
// CONVERSION
// =============================================================================

func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func toShiftDTO(index int, date string, r payroll.ShiftResult) ShiftDTO {
	b := r.Breakdown
	return ShiftDTO{
		Index:             index,
		Date:              date,
		Month:             r.Shift.Month,
		Day:               r.Shift.Day,
		TimeRange:         r.Shift.TimeRange(),
		SpanMinutes:       b.SpanMinutes,
		BreakMinutes:      b.BreakMinutes,
		WorkingMinutes:    b.WorkingMinutes,
		BaseMinutes:       b.BaseMinutes,
		NightMinutes:      b.NightMinutes,
		EarlyMinutes:      b.EarlyMinutes,
		OvertimeMinutes:   b.OvertimeMinutes,
		BaseWage:          money(b.BaseWage),
		NightAllowance:    money(b.NightAllowance),
		EarlyAllowance:    money(b.EarlyAllowance),
		OvertimeAllowance: money(b.OvertimeAllowance),
		MealAllowance:     money(b.MealAllowance),
		Transportation:    money(b.Transportation),
		Total:             money(b.Total()),
	}
}

func toTotalsDTO(t payroll.PeriodTotals) TotalsDTO {
	return TotalsDTO{
		ShiftCount:             t.ShiftCount,
		WorkingMinutes:         t.WorkingMinutes,
		BaseMinutes:            t.BaseMinutes,
		NightMinutes:           t.NightMinutes,
		EarlyMinutes:           t.EarlyMinutes,
		OvertimeMinutes:        t.OvertimeMinutes,
		BaseWage:               money(t.BaseWage),
		NightAllowance:         money(t.NightAllowance),
		EarlyAllowance:         money(t.EarlyAllowance),
		OvertimeAllowance:      money(t.OvertimeAllowance),
		MealAllowance:          money(t.MealAllowance),
		Transportation:         money(t.Transportation),
		AccommodationAllowance: money(t.AccommodationAllowance),
		NightMealAllowance:     money(t.NightMealAllowance),
		GrossSalary:            money(t.GrossSalary),
	}
}

func toPeriodDTO(p payroll.PayrollPeriod) PeriodDTO {
	year, month := p.TargetMonth()
	return PeriodDTO{
		Year:  year,
		Month: int(month),
		Start: p.Start.String(),
		End:   p.End.String(),
		Days:  len(p.Days()),
	}
}
