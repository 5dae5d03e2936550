/*
shift.go - Per-shift pay calculation

PURPOSE:
  Combines the normalized interval, the break policy and the minute
  classification into a PayBreakdown for one shift.

FORMULAS (wage = hourly wage, minutes / 60 = hours):
  regular   = min(working, RegularDailyMinutes)
  overtime  = max(0, working - RegularDailyMinutes)
  base      = ceil(regular/60 * wage)
  night     = round2(night/60 * wage * NightPremium)     (no ceiling here)
  early     = ceil(early/60 * wage * EarlyPremium)
  overtime  = ceil(overtime/60 * wage * OvertimePremium)
  transport = Transportation (flat)
  meal      = MealAllowance(working, month, day)

SEE ALSO:
  - aggregate.go: The same formulas applied to period-level minute sums
*/
package payroll

import "github.com/shopspring/decimal"

// Calculator applies a rate table. The zero value is not usable; build one
// with NewCalculator or use the package-level functions, which use
// DefaultRates.
type Calculator struct {
	Rates Rates
}

// NewCalculator returns a calculator for the given rates.
func NewCalculator(rates Rates) *Calculator {
	return &Calculator{Rates: rates}
}

var defaultCalculator = NewCalculator(DefaultRates())

// Default returns the calculator backing the package-level functions.
func Default() *Calculator { return defaultCalculator }

// ComputeShiftPay returns the breakdown of one shift given as absolute
// minutes [start, end) with its working minutes already known.
func (c *Calculator) ComputeShiftPay(hourlyWage, start, end, workingMinutes, month, day int) PayBreakdown {
	buckets := ClassifyMinutes(start, end, workingMinutes)
	regular, overtime := c.splitOvertime(workingMinutes)
	span := end - start

	return PayBreakdown{
		BaseWage:          c.baseWage(regular, hourlyWage),
		NightAllowance:    c.nightAllowance(buckets.Night, hourlyWage),
		EarlyAllowance:    c.earlyAllowance(buckets.Early, hourlyWage),
		OvertimeAllowance: c.overtimeAllowance(overtime, hourlyWage),
		MealAllowance:     c.MealAllowance(workingMinutes, month, day),
		Transportation:    c.Rates.Transportation,

		BaseMinutes:     buckets.Base,
		NightMinutes:    buckets.Night,
		EarlyMinutes:    buckets.Early,
		OvertimeMinutes: overtime,
		RegularMinutes:  regular,

		SpanMinutes:    span,
		BreakMinutes:   span - workingMinutes,
		WorkingMinutes: workingMinutes,
	}
}

// PayShift runs the whole per-shift pipeline for a record.
func (c *Calculator) PayShift(hourlyWage int, s ShiftRecord) PayBreakdown {
	iv := s.Interval()
	working := WorkingMinutes(iv.Span())
	return c.ComputeShiftPay(hourlyWage, iv.Start, iv.End, working, s.Month, s.Day)
}

func (c *Calculator) splitOvertime(workingMinutes int) (regular, overtime int) {
	limit := c.Rates.RegularDailyMinutes
	if workingMinutes <= limit {
		return workingMinutes, 0
	}
	return limit, workingMinutes - limit
}

func (c *Calculator) baseWage(minutes, hourlyWage int) decimal.Decimal {
	return minuteRate(minutes, hourlyWage, decimal.NewFromInt(1)).Ceil()
}

// nightAllowance is rounded to cents only; callers aggregating a period
// apply the ceiling themselves.
func (c *Calculator) nightAllowance(minutes, hourlyWage int) decimal.Decimal {
	return minuteRate(minutes, hourlyWage, c.Rates.NightPremium).Round(2)
}

func (c *Calculator) earlyAllowance(minutes, hourlyWage int) decimal.Decimal {
	return minuteRate(minutes, hourlyWage, c.Rates.EarlyPremium).Ceil()
}

func (c *Calculator) overtimeAllowance(minutes, hourlyWage int) decimal.Decimal {
	return minuteRate(minutes, hourlyWage, c.Rates.OvertimePremium).Ceil()
}

// =============================================================================
// PACKAGE-LEVEL ENTRY POINTS (default rates)
// =============================================================================

// ComputeShiftPay computes a shift breakdown with the default rates.
func ComputeShiftPay(hourlyWage, start, end, workingMinutes, month, day int) PayBreakdown {
	return defaultCalculator.ComputeShiftPay(hourlyWage, start, end, workingMinutes, month, day)
}

// PayShift runs the per-shift pipeline with the default rates.
func PayShift(hourlyWage int, s ShiftRecord) PayBreakdown {
	return defaultCalculator.PayShift(hourlyWage, s)
}
