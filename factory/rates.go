/*
Package factory provides JSON to Go rate table conversion.

PURPOSE:
  Converts JSON rate definitions into payroll.Rates. Premiums, flat
  allowances and the meal and fee rules can be changed without code
  changes; any field left out keeps its payroll.DefaultRates value.

JSON SCHEMA:
  {
    "name": "standard",
    "night_premium": "0.46",
    "early_premium": "0.25",
    "overtime_premium": "1.25",
    "transportation": 700,
    "accommodation_per_stay": 850,
    "night_meal_per_stay": 350,
    "regular_daily_minutes": 480,
    "meal": {
      "full_day": 300, "half_day": 150,
      "year_end_base": 1600, "year_end_per_hour": 400,
      "half_day_min_hours": 4, "full_day_min_hours": 8, "year_end_min_hours": 4
    },
    "job_fee": {"flat": 2130, "per_day": 710, "flat_from_days": 3}
  }

  Money and multipliers accept JSON numbers or decimal strings.

USAGE:
  f := factory.NewRateFactory()
  rates, err := f.LoadFile("rates.json")
  calc := payroll.NewCalculator(rates)

SEE ALSO:
  - payroll/rates.go: Rates type and defaults
*/
package factory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/warp/shift-pay/payroll"
)

// ErrInvalidRates is returned when a rate table fails validation.
var ErrInvalidRates = errors.New("invalid rate table")

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// RatesJSON is the JSON representation of a rate table.
type RatesJSON struct {
	Name                 string           `json:"name,omitempty"`
	NightPremium         *decimal.Decimal `json:"night_premium,omitempty"`
	EarlyPremium         *decimal.Decimal `json:"early_premium,omitempty"`
	OvertimePremium      *decimal.Decimal `json:"overtime_premium,omitempty"`
	Transportation       *decimal.Decimal `json:"transportation,omitempty"`
	AccommodationPerStay *decimal.Decimal `json:"accommodation_per_stay,omitempty"`
	NightMealPerStay     *decimal.Decimal `json:"night_meal_per_stay,omitempty"`
	RegularDailyMinutes  *int             `json:"regular_daily_minutes,omitempty"`
	Meal                 *MealJSON        `json:"meal,omitempty"`
	JobFee               *FeeJSON         `json:"job_fee,omitempty"`
}

// MealJSON represents the meal allowance rule.
type MealJSON struct {
	FullDay         *decimal.Decimal `json:"full_day,omitempty"`
	HalfDay         *decimal.Decimal `json:"half_day,omitempty"`
	YearEndBase     *decimal.Decimal `json:"year_end_base,omitempty"`
	YearEndPerHour  *decimal.Decimal `json:"year_end_per_hour,omitempty"`
	HalfDayMinHours *int             `json:"half_day_min_hours,omitempty"`
	FullDayMinHours *int             `json:"full_day_min_hours,omitempty"`
	YearEndMinHours *int             `json:"year_end_min_hours,omitempty"`
}

// FeeJSON represents the job introduction fee rule.
type FeeJSON struct {
	Flat         *int `json:"flat,omitempty"`
	PerDay       *int `json:"per_day,omitempty"`
	FlatFromDays *int `json:"flat_from_days,omitempty"`
}

// =============================================================================
// RATE FACTORY
// =============================================================================

// RateFactory converts JSON rate tables to payroll.Rates.
type RateFactory struct{}

// NewRateFactory creates a new rate factory.
func NewRateFactory() *RateFactory {
	return &RateFactory{}
}

// ParseRates parses a JSON string into Rates.
func (f *RateFactory) ParseRates(jsonStr string) (payroll.Rates, error) {
	var rj RatesJSON
	if err := json.Unmarshal([]byte(jsonStr), &rj); err != nil {
		return payroll.Rates{}, fmt.Errorf("failed to parse rates JSON: %w", err)
	}
	return f.FromJSON(rj)
}

// LoadFile reads and parses a rate table file.
func (f *RateFactory) LoadFile(path string) (payroll.Rates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return payroll.Rates{}, fmt.Errorf("failed to read rates file: %w", err)
	}
	return f.ParseRates(string(data))
}

// Calculator returns a calculator for the rate table at path, or for the
// default rates when path is empty.
func (f *RateFactory) Calculator(path string) (*payroll.Calculator, error) {
	if path == "" {
		return payroll.Default(), nil
	}
	rates, err := f.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return payroll.NewCalculator(rates), nil
}

// FromJSON overlays RatesJSON on the default rates and validates the result.
func (f *RateFactory) FromJSON(rj RatesJSON) (payroll.Rates, error) {
	r := payroll.DefaultRates()

	setDecimal(&r.NightPremium, rj.NightPremium)
	setDecimal(&r.EarlyPremium, rj.EarlyPremium)
	setDecimal(&r.OvertimePremium, rj.OvertimePremium)
	setDecimal(&r.Transportation, rj.Transportation)
	setDecimal(&r.AccommodationPerStay, rj.AccommodationPerStay)
	setDecimal(&r.NightMealPerStay, rj.NightMealPerStay)
	setInt(&r.RegularDailyMinutes, rj.RegularDailyMinutes)

	if m := rj.Meal; m != nil {
		setDecimal(&r.Meal.FullDay, m.FullDay)
		setDecimal(&r.Meal.HalfDay, m.HalfDay)
		setDecimal(&r.Meal.YearEndBase, m.YearEndBase)
		setDecimal(&r.Meal.YearEndPerHour, m.YearEndPerHour)
		setInt(&r.Meal.HalfDayMinHours, m.HalfDayMinHours)
		setInt(&r.Meal.FullDayMinHours, m.FullDayMinHours)
		setInt(&r.Meal.YearEndMinHours, m.YearEndMinHours)
	}

	if fee := rj.JobFee; fee != nil {
		setInt(&r.Fee.Flat, fee.Flat)
		setInt(&r.Fee.PerDay, fee.PerDay)
		setInt(&r.Fee.FlatFromDays, fee.FlatFromDays)
	}

	if err := validateRates(r); err != nil {
		return payroll.Rates{}, err
	}
	return r, nil
}

// ToJSON converts Rates to a fully populated RatesJSON.
func (f *RateFactory) ToJSON(r payroll.Rates) RatesJSON {
	return RatesJSON{
		NightPremium:         decimalPtr(r.NightPremium),
		EarlyPremium:         decimalPtr(r.EarlyPremium),
		OvertimePremium:      decimalPtr(r.OvertimePremium),
		Transportation:       decimalPtr(r.Transportation),
		AccommodationPerStay: decimalPtr(r.AccommodationPerStay),
		NightMealPerStay:     decimalPtr(r.NightMealPerStay),
		RegularDailyMinutes:  intPtr(r.RegularDailyMinutes),
		Meal: &MealJSON{
			FullDay:         decimalPtr(r.Meal.FullDay),
			HalfDay:         decimalPtr(r.Meal.HalfDay),
			YearEndBase:     decimalPtr(r.Meal.YearEndBase),
			YearEndPerHour:  decimalPtr(r.Meal.YearEndPerHour),
			HalfDayMinHours: intPtr(r.Meal.HalfDayMinHours),
			FullDayMinHours: intPtr(r.Meal.FullDayMinHours),
			YearEndMinHours: intPtr(r.Meal.YearEndMinHours),
		},
		JobFee: &FeeJSON{
			Flat:         intPtr(r.Fee.Flat),
			PerDay:       intPtr(r.Fee.PerDay),
			FlatFromDays: intPtr(r.Fee.FlatFromDays),
		},
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

func validateRates(r payroll.Rates) error {
	money := []struct {
		name  string
		value decimal.Decimal
	}{
		{"night_premium", r.NightPremium},
		{"early_premium", r.EarlyPremium},
		{"overtime_premium", r.OvertimePremium},
		{"transportation", r.Transportation},
		{"accommodation_per_stay", r.AccommodationPerStay},
		{"night_meal_per_stay", r.NightMealPerStay},
		{"meal.full_day", r.Meal.FullDay},
		{"meal.half_day", r.Meal.HalfDay},
		{"meal.year_end_base", r.Meal.YearEndBase},
		{"meal.year_end_per_hour", r.Meal.YearEndPerHour},
	}
	for _, m := range money {
		if m.value.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidRates, m.name)
		}
	}

	if r.RegularDailyMinutes <= 0 {
		return fmt.Errorf("%w: regular_daily_minutes must be positive", ErrInvalidRates)
	}
	if r.Meal.HalfDayMinHours < 0 || r.Meal.FullDayMinHours < r.Meal.HalfDayMinHours {
		return fmt.Errorf("%w: meal hours must satisfy 0 <= half_day_min_hours <= full_day_min_hours", ErrInvalidRates)
	}
	if r.Meal.YearEndMinHours < 0 {
		return fmt.Errorf("%w: meal.year_end_min_hours must not be negative", ErrInvalidRates)
	}
	if r.Fee.Flat < 0 || r.Fee.PerDay < 0 || r.Fee.FlatFromDays < 0 {
		return fmt.Errorf("%w: job_fee values must not be negative", ErrInvalidRates)
	}
	return nil
}

func setDecimal(dst *decimal.Decimal, src *decimal.Decimal) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }
func intPtr(i int) *int                            { return &i }
