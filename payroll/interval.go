package payroll

// =============================================================================
// TIME INTERVAL NORMALIZATION
// =============================================================================

const (
	MinutesPerHour = 60
	MinutesPerDay  = 24 * MinutesPerHour
)

// ToMinutes converts a clock time to minutes since midnight.
func ToMinutes(hour, minute int) int {
	return hour*MinutesPerHour + minute
}

// NormalizeInterval converts start/end clock times into absolute minutes.
// An end before the start means the shift crosses midnight, so a day is
// added to the end. Range checking of hour and minute is the caller's job
// (see ValidateShifts).
func NormalizeInterval(startHour, startMinute, endHour, endMinute int) Interval {
	start := ToMinutes(startHour, startMinute)
	end := ToMinutes(endHour, endMinute)
	if end < start {
		end += MinutesPerDay
	}
	return Interval{Start: start, End: end}
}
