/*
Package payroll computes itemized pay for hourly shift workers.

PURPOSE:
  Turns raw shift time ranges into a pay breakdown (base wage, night,
  early-morning and overtime differentials, meal allowance, transportation)
  and folds the per-shift breakdowns into payroll-period totals.

KEY CONCEPTS IN THIS FILE (types.go):
  - ShiftRecord: One validated worked interval (date + start/end clock times)
  - Interval: A shift expressed as absolute minutes, midnight wrap resolved
  - PayBreakdown: Per-shift wages and minute buckets
  - PeriodTotals: Aggregated buckets and allowances for a payroll period

PIPELINE:
  ShiftRecord -> NormalizeInterval -> BreakMinutes + ClassifyMinutes
              -> ComputeShiftPay (per shift) -> AggregatePeriod (per period)

ROUNDING:
  Wage-rate allowances are rounded once, at the period level, from the
  summed minute buckets. Per-shift amounts are kept for reporting only.

DESIGN PRINCIPLES:
  1. Pure: every operation is a deterministic function of its inputs
  2. Precision: money uses decimal.Decimal, never float64
  3. Fail fast: a batch is validated before any computation

SEE ALSO:
  - rates.go: All money constants and multipliers
  - aggregate.go: Period aggregation with deferred rounding
  - input.go: Validation of raw collaborator input
*/
package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SHIFT RECORD - Validated input to the engine
// =============================================================================

// ShiftRecord is one worked interval. Year is optional (zero means unknown);
// a year-less record can be placed with PayrollPeriod.DateOf.
type ShiftRecord struct {
	Year        int
	Month       int
	Day         int
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

// Interval returns the normalized absolute-minute interval of the shift.
func (s ShiftRecord) Interval() Interval {
	return NormalizeInterval(s.StartHour, s.StartMinute, s.EndHour, s.EndMinute)
}

// TimeRange formats the clock times as "HH:MM - HH:MM".
func (s ShiftRecord) TimeRange() string {
	return fmt.Sprintf("%02d:%02d - %02d:%02d", s.StartHour, s.StartMinute, s.EndHour, s.EndMinute)
}

// =============================================================================
// INTERVAL - Absolute minute offsets
// =============================================================================

// Interval is a shift in absolute minutes from the start day's midnight.
// End is always greater than Start for a non-empty shift.
type Interval struct {
	Start int
	End   int
}

// Span returns the raw duration in minutes, before any break deduction.
func (iv Interval) Span() int { return iv.End - iv.Start }

// CrossesMidnight reports whether the shift ends on the following day.
func (iv Interval) CrossesMidnight() bool { return iv.End > MinutesPerDay }

// =============================================================================
// MINUTE BUCKETS
// =============================================================================

// Buckets holds the classified minutes of a shift.
type Buckets struct {
	Base  int
	Night int
	Early int
}

// Total returns the number of classified minutes.
func (b Buckets) Total() int { return b.Base + b.Night + b.Early }

// =============================================================================
// PAY BREAKDOWN - Per-shift result
// =============================================================================

// PayBreakdown is the itemized pay for a single shift.
//
// NightAllowance is rounded to two decimal places only; ceiling rounding
// of the wage-rate allowances happens in AggregatePeriod.
type PayBreakdown struct {
	BaseWage          decimal.Decimal
	NightAllowance    decimal.Decimal
	EarlyAllowance    decimal.Decimal
	OvertimeAllowance decimal.Decimal
	MealAllowance     decimal.Decimal
	Transportation    decimal.Decimal

	BaseMinutes     int
	NightMinutes    int
	EarlyMinutes    int
	OvertimeMinutes int

	// Minutes the base wage is paid on: working minutes capped at the
	// regular daily limit.
	RegularMinutes int

	SpanMinutes    int
	BreakMinutes   int
	WorkingMinutes int
}

// Total returns the sum of all monetary fields of the shift.
func (p PayBreakdown) Total() decimal.Decimal {
	return p.BaseWage.
		Add(p.NightAllowance).
		Add(p.EarlyAllowance).
		Add(p.OvertimeAllowance).
		Add(p.MealAllowance).
		Add(p.Transportation)
}

// ShiftResult pairs a shift with its breakdown.
type ShiftResult struct {
	Shift     ShiftRecord
	Breakdown PayBreakdown
}

// =============================================================================
// PERIOD TOTALS - Aggregated result
// =============================================================================

// PeriodTotals is the aggregated pay for all shifts of a calculation.
type PeriodTotals struct {
	HourlyWage     int
	OvernightStays int
	ShiftCount     int

	BaseMinutes     int
	NightMinutes    int
	EarlyMinutes    int
	OvertimeMinutes int
	RegularMinutes  int
	WorkingMinutes  int

	BaseWage          decimal.Decimal
	NightAllowance    decimal.Decimal
	EarlyAllowance    decimal.Decimal
	OvertimeAllowance decimal.Decimal
	MealAllowance     decimal.Decimal
	Transportation    decimal.Decimal

	AccommodationAllowance decimal.Decimal
	NightMealAllowance     decimal.Decimal

	GrossSalary decimal.Decimal

	// Shifts holds the per-shift results in input order.
	Shifts []ShiftResult

	// WorkDaysByMonth counts shifts per calendar month (1-12). It is the
	// input of the job introduction fee and is not part of GrossSalary.
	WorkDaysByMonth map[int]int
}
