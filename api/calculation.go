package api

import (
	"time"

	"github.com/warp/shift-pay/payroll"
)

// Calculation is a request that passed validation and ran through the engine.
type Calculation struct {
	Totals payroll.PeriodTotals

	// Period is set when the request was scoped to a payroll period.
	Period *payroll.PayrollPeriod
}

// Calculate validates the request (struct rules, then each shift) and
// computes its totals. A request naming a period is computed with
// CalculatePeriod, anything else with AggregatePeriod.
func Calculate(calc *payroll.Calculator, req CalculationRequest) (Calculation, error) {
	if err := validate.Struct(req); err != nil {
		return Calculation{}, err
	}

	records, err := payroll.ValidateShifts(req.Shifts)
	if err != nil {
		return Calculation{}, err
	}

	if req.Period == nil {
		totals, err := calc.AggregatePeriod(records, req.HourlyWage, req.OvernightStays)
		if err != nil {
			return Calculation{}, err
		}
		return Calculation{Totals: totals}, nil
	}

	p := payroll.ResolvePayrollPeriod(req.Period.Year, time.Month(req.Period.Month))
	totals, err := calc.CalculatePeriod(p, records, req.HourlyWage, req.OvernightStays)
	if err != nil {
		return Calculation{}, err
	}
	return Calculation{Totals: totals, Period: &p}, nil
}

// ShiftDate returns the date shown for a calculated shift, or "" when the
// shift has no year and the calculation no period.
func (c Calculation) ShiftDate(s payroll.ShiftRecord) string {
	switch {
	case c.Period != nil:
		return payroll.ShiftDate(*c.Period, s).String()
	case s.Year > 0:
		return payroll.NewDate(s.Year, time.Month(s.Month), s.Day).String()
	}
	return ""
}
