package payroll

import "github.com/shopspring/decimal"

// =============================================================================
// RATES - Every money constant used by the engine
// =============================================================================

// Rates is the rule table the engine computes with.
// DefaultRates returns the standard table; factory.ParseRates builds
// custom tables from JSON.
type Rates struct {
	// Premium multipliers applied to the hourly wage.
	NightPremium    decimal.Decimal
	EarlyPremium    decimal.Decimal
	OvertimePremium decimal.Decimal

	// Flat amounts.
	Transportation       decimal.Decimal // per shift
	AccommodationPerStay decimal.Decimal
	NightMealPerStay     decimal.Decimal

	// Working minutes paid at the regular rate before overtime starts.
	RegularDailyMinutes int

	Meal MealRates
	Fee  FeeRates
}

// MealRates drives MealAllowance.
type MealRates struct {
	FullDay         decimal.Decimal // ordinary day, 8h or more
	HalfDay         decimal.Decimal // ordinary day, 4h up to 8h
	YearEndBase     decimal.Decimal // Dec 31 - Jan 3, 4h or more
	YearEndPerHour  decimal.Decimal // per full hour beyond YearEndMinHours
	HalfDayMinHours int
	FullDayMinHours int
	YearEndMinHours int
}

// FeeRates drives JobIntroductionFee.
type FeeRates struct {
	Flat         int
	PerDay       int
	FlatFromDays int
}

// DefaultRates returns the standard rule table.
func DefaultRates() Rates {
	return Rates{
		NightPremium:         decimal.RequireFromString("0.46"),
		EarlyPremium:         decimal.RequireFromString("0.25"),
		OvertimePremium:      decimal.RequireFromString("1.25"),
		Transportation:       decimal.NewFromInt(700),
		AccommodationPerStay: decimal.NewFromInt(850),
		NightMealPerStay:     decimal.NewFromInt(350),
		RegularDailyMinutes:  480,
		Meal: MealRates{
			FullDay:         decimal.NewFromInt(300),
			HalfDay:         decimal.NewFromInt(150),
			YearEndBase:     decimal.NewFromInt(1600),
			YearEndPerHour:  decimal.NewFromInt(400),
			HalfDayMinHours: 4,
			FullDayMinHours: 8,
			YearEndMinHours: 4,
		},
		Fee: FeeRates{
			Flat:         2130,
			PerDay:       710,
			FlatFromDays: 3,
		},
	}
}

// minuteRate returns minutes/60 * wage * multiplier, unrounded.
// The product is formed before dividing so whole-hour results stay exact,
// and entirely in decimal so no wage can overflow it.
func minuteRate(minutes, hourlyWage int, multiplier decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).
		Mul(decimal.NewFromInt(int64(hourlyWage))).
		Mul(multiplier).
		Div(decimal.NewFromInt(MinutesPerHour))
}
