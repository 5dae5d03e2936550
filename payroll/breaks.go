package payroll

// =============================================================================
// BREAK DEDUCTION POLICY
// =============================================================================

// breakTier is one row of the break table: spans up to MaxSpan minutes
// (inclusive) get Break minutes deducted.
type breakTier struct {
	MaxSpan int
	Break   int
}

// breakTiers must stay ordered by MaxSpan. Spans above the last tier get
// longBreak.
var breakTiers = []breakTier{
	{MaxSpan: 270, Break: 0},  // up to 4h30
	{MaxSpan: 390, Break: 30}, // up to 6h30
	{MaxSpan: 525, Break: 45}, // up to 8h45
}

const longBreak = 60

// BreakMinutes returns the break deducted from a shift of the given span.
// This is the authoritative break rule for official working time.
func BreakMinutes(spanMinutes int) int {
	for _, tier := range breakTiers {
		if spanMinutes <= tier.MaxSpan {
			return tier.Break
		}
	}
	return longBreak
}

// WorkingMinutes returns the span minus its break deduction.
func WorkingMinutes(spanMinutes int) int {
	return spanMinutes - BreakMinutes(spanMinutes)
}
