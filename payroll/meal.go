package payroll

import "github.com/shopspring/decimal"

// IsYearEnd reports whether the date falls in the Dec 31 - Jan 3 holiday
// window, which has its own meal allowance.
func IsYearEnd(month, day int) bool {
	return (month == 12 && day == 31) || (month == 1 && day <= 3)
}

// MealAllowance returns the meal allowance for a shift.
//
// Year-end days pay YearEndBase from YearEndMinHours plus YearEndPerHour for
// every full hour beyond it. Ordinary days pay FullDay from FullDayMinHours
// and HalfDay from HalfDayMinHours. Shorter shifts get nothing.
func (c *Calculator) MealAllowance(workingMinutes, month, day int) decimal.Decimal {
	m := c.Rates.Meal

	if IsYearEnd(month, day) {
		threshold := m.YearEndMinHours * MinutesPerHour
		if workingMinutes < threshold {
			return decimal.Zero
		}
		extraHours := (workingMinutes - threshold) / MinutesPerHour
		return m.YearEndBase.Add(m.YearEndPerHour.Mul(decimal.NewFromInt(int64(extraHours))))
	}

	switch {
	case workingMinutes >= m.FullDayMinHours*MinutesPerHour:
		return m.FullDay
	case workingMinutes >= m.HalfDayMinHours*MinutesPerHour:
		return m.HalfDay
	default:
		return decimal.Zero
	}
}

// MealAllowance computes the meal allowance with the default rates.
func MealAllowance(workingMinutes, month, day int) decimal.Decimal {
	return defaultCalculator.MealAllowance(workingMinutes, month, day)
}
