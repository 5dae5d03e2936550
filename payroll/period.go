package payroll

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Calendar day without a time of day
// =============================================================================

// Date is a calendar day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func dateFromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Before(other Date) bool { return d.Time().Before(other.Time()) }
func (d Date) After(other Date) bool  { return d.Time().After(other.Time()) }
func (d Date) Equal(other Date) bool  { return d.Time().Equal(other.Time()) }
func (d Date) AddDays(n int) Date     { return dateFromTime(d.Time().AddDate(0, 0, n)) }

// String formats the stored fields as YYYY-MM-DD without normalizing them,
// so Feb 29 prints as entered even in a non-leap year.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// =============================================================================
// PAYROLL PERIOD - 16th of one month through the 15th of the next
// =============================================================================

const (
	periodStartDay = 16
	periodEndDay   = 15
)

// PayrollPeriod is the unit pay is aggregated over.
type PayrollPeriod struct {
	Start Date
	End   Date
}

// ResolvePayrollPeriod returns the period paid in the target month: from the
// 16th of the previous month (previous year for January) through the 15th of
// the target month.
func ResolvePayrollPeriod(year int, month time.Month) PayrollPeriod {
	startYear, startMonth := year, month-1
	if month == time.January {
		startYear, startMonth = year-1, time.December
	}
	return PayrollPeriod{
		Start: NewDate(startYear, startMonth, periodStartDay),
		End:   NewDate(year, month, periodEndDay),
	}
}

// PeriodFor returns the payroll period that contains the date.
func PeriodFor(d Date) PayrollPeriod {
	if d.Day < periodStartDay {
		return ResolvePayrollPeriod(d.Year, d.Month)
	}
	if d.Month == time.December {
		return ResolvePayrollPeriod(d.Year+1, time.January)
	}
	return ResolvePayrollPeriod(d.Year, d.Month+1)
}

// TargetMonth returns the year and month the period is paid in.
func (p PayrollPeriod) TargetMonth() (int, time.Month) {
	return p.End.Year, p.End.Month
}

// Contains returns true if the date is within [Start, End].
func (p PayrollPeriod) Contains(d Date) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// DateOf places a year-less month/day inside the period: the start month
// takes the start year, anything else the end year.
func (p PayrollPeriod) DateOf(month, day int) Date {
	m := time.Month(month)
	if m == p.Start.Month {
		return NewDate(p.Start.Year, m, day)
	}
	return NewDate(p.End.Year, m, day)
}

// Days returns every date of the period in order.
func (p PayrollPeriod) Days() []Date {
	var days []Date
	for d := p.Start; !d.After(p.End); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// Next returns the following payroll period.
func (p PayrollPeriod) Next() PayrollPeriod {
	return PeriodFor(p.End.AddDays(1))
}

// Previous returns the preceding payroll period.
func (p PayrollPeriod) Previous() PayrollPeriod {
	return PeriodFor(p.Start.AddDays(-1))
}

func (p PayrollPeriod) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
