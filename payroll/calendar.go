package payroll

// monthLengths is the day table used for input validation. February is
// fixed at 29: there is no leap-year check.
var monthLengths = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of selectable days of a month (1-12),
// or 0 for a month outside that range.
func DaysInMonth(month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return monthLengths[month-1]
}
