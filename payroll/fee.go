package payroll

// JobIntroductionFee returns the job introduction fee for a month with the
// given number of work days: a flat fee from FlatFromDays days on, PerDay
// per day below that. It is not part of the pay pipeline.
func (c *Calculator) JobIntroductionFee(workDaysInMonth int) int {
	f := c.Rates.Fee
	if workDaysInMonth >= f.FlatFromDays {
		return f.Flat
	}
	return workDaysInMonth * f.PerDay
}

// JobIntroductionFee computes the fee with the default rates.
func JobIntroductionFee(workDaysInMonth int) int {
	return defaultCalculator.JobIntroductionFee(workDaysInMonth)
}
