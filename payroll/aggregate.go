/*
aggregate.go - Period aggregation with deferred rounding

PURPOSE:
  Folds every shift of a payroll period into PeriodTotals.

KEY INSIGHT:
  Wage-rate allowances (base, night, early, overtime) are NOT the sum of
  the per-shift amounts. The minute buckets are summed first and the
  formulas of shift.go are applied once to the sums, so ceiling rounding
  happens once per period instead of once per shift.

  Two shifts with 15 early minutes each at 1000/h:
    per shift:  ceil(62.5) + ceil(62.5) = 126
    per period: ceil(30/60 * 1000 * 0.25) = 125

  Meal allowance and transportation are already whole amounts per shift
  and are summed as-is.

GROSS:
  base + night + early + overtime + meal + transportation
       + accommodation (stays * AccommodationPerStay)
       + night meal    (stays * NightMealPerStay)
*/
package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// AggregatePeriod validates the batch and computes its period totals.
// Shift order does not affect the result.
func (c *Calculator) AggregatePeriod(shifts []ShiftRecord, hourlyWage, overnightStays int) (PeriodTotals, error) {
	if err := ValidateParameters(hourlyWage, overnightStays); err != nil {
		return PeriodTotals{}, err
	}
	if len(shifts) == 0 {
		return PeriodTotals{}, ErrNoShifts
	}
	for i, s := range shifts {
		if err := ValidateRecord(i, s); err != nil {
			return PeriodTotals{}, err
		}
	}

	totals := PeriodTotals{
		HourlyWage:      hourlyWage,
		OvernightStays:  overnightStays,
		ShiftCount:      len(shifts),
		MealAllowance:   decimal.Zero,
		Transportation:  decimal.Zero,
		Shifts:          make([]ShiftResult, 0, len(shifts)),
		WorkDaysByMonth: make(map[int]int),
	}

	for _, s := range shifts {
		b := c.PayShift(hourlyWage, s)
		totals.Shifts = append(totals.Shifts, ShiftResult{Shift: s, Breakdown: b})
		totals.WorkDaysByMonth[s.Month]++

		totals.BaseMinutes += b.BaseMinutes
		totals.NightMinutes += b.NightMinutes
		totals.EarlyMinutes += b.EarlyMinutes
		totals.OvertimeMinutes += b.OvertimeMinutes
		totals.RegularMinutes += b.RegularMinutes
		totals.WorkingMinutes += b.WorkingMinutes

		totals.MealAllowance = totals.MealAllowance.Add(b.MealAllowance)
		totals.Transportation = totals.Transportation.Add(b.Transportation)
	}

	totals.BaseWage = c.baseWage(totals.RegularMinutes, hourlyWage)
	totals.NightAllowance = c.nightAllowance(totals.NightMinutes, hourlyWage).Ceil()
	totals.EarlyAllowance = c.earlyAllowance(totals.EarlyMinutes, hourlyWage)
	totals.OvertimeAllowance = c.overtimeAllowance(totals.OvertimeMinutes, hourlyWage)

	stays := decimal.NewFromInt(int64(overnightStays))
	totals.AccommodationAllowance = c.Rates.AccommodationPerStay.Mul(stays)
	totals.NightMealAllowance = c.Rates.NightMealPerStay.Mul(stays)

	totals.GrossSalary = totals.BaseWage.
		Add(totals.NightAllowance).
		Add(totals.EarlyAllowance).
		Add(totals.OvertimeAllowance).
		Add(totals.MealAllowance).
		Add(totals.Transportation).
		Add(totals.AccommodationAllowance).
		Add(totals.NightMealAllowance)

	return totals, nil
}

// CalculatePeriod is AggregatePeriod restricted to one payroll period: every
// shift must fall inside it. Records without a year are placed with DateOf.
func (c *Calculator) CalculatePeriod(period PayrollPeriod, shifts []ShiftRecord, hourlyWage, overnightStays int) (PeriodTotals, error) {
	for i, s := range shifts {
		if err := ValidateRecord(i, s); err != nil {
			return PeriodTotals{}, err
		}
		if !period.Contains(ShiftDate(period, s)) {
			return PeriodTotals{}, &ShiftError{
				Index:  i,
				Month:  s.Month,
				Day:    s.Day,
				Period: period.String(),
				Err:    ErrOutsidePeriod,
			}
		}
	}
	return c.AggregatePeriod(shifts, hourlyWage, overnightStays)
}

// ShiftDate returns the calendar date of a shift, taking the year from the
// record when it has one and from the period otherwise.
func ShiftDate(period PayrollPeriod, s ShiftRecord) Date {
	if s.Year > 0 {
		return NewDate(s.Year, time.Month(s.Month), s.Day)
	}
	return period.DateOf(s.Month, s.Day)
}

// AggregatePeriod computes period totals with the default rates.
func AggregatePeriod(shifts []ShiftRecord, hourlyWage, overnightStays int) (PeriodTotals, error) {
	return defaultCalculator.AggregatePeriod(shifts, hourlyWage, overnightStays)
}

// CalculatePeriod computes period-scoped totals with the default rates.
func CalculatePeriod(period PayrollPeriod, shifts []ShiftRecord, hourlyWage, overnightStays int) (PeriodTotals, error) {
	return defaultCalculator.CalculatePeriod(period, shifts, hourlyWage, overnightStays)
}
