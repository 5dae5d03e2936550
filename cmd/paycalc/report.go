package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/warp/shift-pay/api"
	"github.com/warp/shift-pay/payroll"
)

// printTotals writes a per-shift table followed by the period summary.
func printTotals(out io.Writer, calc *payroll.Calculator, result api.Calculation) error {
	t := result.Totals
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)

	if result.Period != nil {
		fmt.Fprintf(out, "Payroll period %s\n\n", result.Period)
	}

	fmt.Fprintln(w, "#\tDate\tTime\tWork\tNight\tEarly\tOT\tBase\tNight\tEarly\tOT\tMeal\tTransport\t")
	for i, sr := range t.Shifts {
		s, b := sr.Shift, sr.Breakdown
		fmt.Fprintf(w, "%d\t%02d/%02d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			i+1, s.Month, s.Day, s.TimeRange(),
			hm(b.WorkingMinutes), hm(b.NightMinutes), hm(b.EarlyMinutes), hm(b.OvertimeMinutes),
			yen(b.BaseWage), yen(b.NightAllowance), yen(b.EarlyAllowance), yen(b.OvertimeAllowance),
			yen(b.MealAllowance), yen(b.Transportation))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	rows := []struct {
		label string
		value decimal.Decimal
	}{
		{"Base wage", t.BaseWage},
		{"Night allowance", t.NightAllowance},
		{"Early allowance", t.EarlyAllowance},
		{"Overtime allowance", t.OvertimeAllowance},
		{"Meal allowance", t.MealAllowance},
		{"Transportation", t.Transportation},
		{"Accommodation", t.AccommodationAllowance},
		{"Night meal", t.NightMealAllowance},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\n", r.label, yen(r.value))
	}
	fmt.Fprintf(w, "Gross salary\t%s\n", yen(t.GrossSalary))
	if err := w.Flush(); err != nil {
		return err
	}

	months := make([]int, 0, len(t.WorkDaysByMonth))
	for m := range t.WorkDaysByMonth {
		months = append(months, m)
	}
	sort.Ints(months)
	fmt.Fprintln(out)
	for _, m := range months {
		days := t.WorkDaysByMonth[m]
		fmt.Fprintf(out, "Month %d: %d work days, job introduction fee %d\n", m, days, calc.JobIntroductionFee(days))
	}
	return nil
}

func hm(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/payroll.MinutesPerHour, minutes%payroll.MinutesPerHour)
}

// yen prints whole amounts without decimals. Per-shift night allowances
// keep their two decimal places.
func yen(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.String()
	}
	return d.StringFixed(2)
}
