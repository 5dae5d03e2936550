package payroll_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/warp/shift-pay/payroll"
)

func TestResolvePayrollPeriod_January(t *testing.T) {
	// January pays from Dec 16 of the previous year
	p := payroll.ResolvePayrollPeriod(2026, time.January)
	assert.Equal(t, payroll.NewDate(2025, time.December, 16), p.Start)
	assert.Equal(t, payroll.NewDate(2026, time.January, 15), p.End)
}

func TestResolvePayrollPeriod_OtherMonths(t *testing.T) {
	for m := time.February; m <= time.December; m++ {
		p := payroll.ResolvePayrollPeriod(2025, m)
		assert.Equal(t, payroll.NewDate(2025, m-1, 16), p.Start, m.String())
		assert.Equal(t, payroll.NewDate(2025, m, 15), p.End, m.String())
	}
}

func TestPeriodFor(t *testing.T) {
	cases := []struct {
		date payroll.Date
		want payroll.PayrollPeriod
	}{
		{payroll.NewDate(2025, time.October, 15), payroll.ResolvePayrollPeriod(2025, time.October)},
		{payroll.NewDate(2025, time.October, 16), payroll.ResolvePayrollPeriod(2025, time.November)},
		{payroll.NewDate(2025, time.December, 31), payroll.ResolvePayrollPeriod(2026, time.January)},
		{payroll.NewDate(2026, time.January, 1), payroll.ResolvePayrollPeriod(2026, time.January)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, payroll.PeriodFor(tc.date), tc.date.String())
	}
}

func TestPayrollPeriod_ContainsAndDays(t *testing.T) {
	p := payroll.ResolvePayrollPeriod(2025, time.March)

	assert.True(t, p.Contains(payroll.NewDate(2025, time.February, 16)))
	assert.True(t, p.Contains(payroll.NewDate(2025, time.March, 15)))
	assert.False(t, p.Contains(payroll.NewDate(2025, time.February, 15)))
	assert.False(t, p.Contains(payroll.NewDate(2025, time.March, 16)))

	// Feb 16 - Mar 15 2025: 13 + 15 days
	days := p.Days()
	assert.Len(t, days, 28)
	assert.Equal(t, p.Start, days[0])
	assert.Equal(t, p.End, days[len(days)-1])
}

func TestPayrollPeriod_NextPrevious(t *testing.T) {
	p := payroll.ResolvePayrollPeriod(2025, time.December)
	assert.Equal(t, payroll.ResolvePayrollPeriod(2026, time.January), p.Next())
	assert.Equal(t, payroll.ResolvePayrollPeriod(2025, time.November), p.Previous())
	assert.Equal(t, p, p.Next().Previous())

	year, month := p.Next().TargetMonth()
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.January, month)
}

func TestPayrollPeriod_DateOf(t *testing.T) {
	p := payroll.ResolvePayrollPeriod(2026, time.January)
	assert.Equal(t, payroll.NewDate(2025, time.December, 20), p.DateOf(12, 20))
	assert.Equal(t, payroll.NewDate(2026, time.January, 3), p.DateOf(1, 3))
	assert.Equal(t, "[2025-12-16, 2026-01-15]", p.String())
}

func TestDate_StringKeepsFebruary29(t *testing.T) {
	// February always has 29 selectable days, leap year or not
	d := payroll.NewDate(2026, time.February, 29)
	assert.Equal(t, "2026-02-29", d.String())

	// Comparisons still go through the calendar
	assert.True(t, d.Equal(payroll.NewDate(2026, time.March, 1)))
}
