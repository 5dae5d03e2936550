package payroll

// =============================================================================
// MINUTE CLASSIFIER - Night / early / base buckets
// =============================================================================

// Bucket boundaries, as hours of the day.
const (
	nightStartHour = 22
	nightEndHour   = 5
	earlyEndHour   = 8
)

// The classification walk skips a fixed one-hour window starting three hours
// into the shift, but only for shifts with at least six working hours.
//
// The window is always 60 minutes, whatever BreakMinutes deducts for the
// same shift, so the classified total can differ from WorkingMinutes
// (a 22:00-06:00 shift classifies 420 minutes but works 435).
const (
	classifyBreakOffset  = 180
	classifyBreakLength  = 60
	classifyBreakMinWork = 360
)

// ClassifyMinutes buckets every minute of [start, end), minus the fixed
// break window, by the hour of day it falls in:
//
//	[22:00, 05:00)  night
//	[05:00, 08:00)  early
//	otherwise       base
func ClassifyMinutes(start, end, workingMinutes int) Buckets {
	skipFrom, skipTo := -1, -1
	if workingMinutes >= classifyBreakMinWork {
		skipFrom = start + classifyBreakOffset
		skipTo = skipFrom + classifyBreakLength
	}

	var b Buckets
	for m := start; m < end; m++ {
		if m >= skipFrom && m < skipTo {
			continue
		}
		switch hour := (m / MinutesPerHour) % 24; {
		case hour >= nightStartHour || hour < nightEndHour:
			b.Night++
		case hour < earlyEndHour:
			b.Early++
		default:
			b.Base++
		}
	}
	return b
}
