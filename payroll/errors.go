/*
errors.go - Error types for the pay engine

PURPOSE:
  All error types in one place. The calculation functions are total over
  well-formed input; every error here comes from validation, which runs
  once per batch before any pay is computed.

ERROR CATEGORIES:
  1. ErrIncompleteShift - a time or date field was never set
  2. ErrInvalidNumber   - a field is non-numeric or out of range
  3. ErrInvalidDate     - the day does not exist in the month
  4. ErrOutsidePeriod   - the shift is outside the requested payroll period

USAGE:
  totals, err := payroll.AggregatePeriod(shifts, 1200, 1)
  var se *payroll.ShiftError
  if errors.As(err, &se) {
      fmt.Println("fix shift", se.Index+1)
  }
*/
package payroll

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrIncompleteShift is returned when one or more shift fields are unset.
	ErrIncompleteShift = errors.New("incomplete shift")

	// ErrInvalidNumber is returned when a required numeric field is
	// non-numeric or outside its range.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInvalidDate is returned when the day exceeds DaysInMonth(month).
	ErrInvalidDate = errors.New("invalid date")

	// ErrOutsidePeriod is returned by CalculatePeriod for a shift whose date
	// is not inside the payroll period.
	ErrOutsidePeriod = errors.New("shift outside payroll period")

	// ErrNoShifts is returned when a calculation batch is empty.
	ErrNoShifts = errors.New("no shifts to calculate")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ShiftError locates a validation failure inside a batch.
type ShiftError struct {
	Index  int    // zero-based position in the batch
	Field  string // offending field, empty for day and period errors
	Month  int
	Day    int
	MaxDay int    // set for ErrInvalidDate
	Period string // set for ErrOutsidePeriod
	Err    error
}

func (e *ShiftError) Error() string {
	n := e.Index + 1
	switch {
	case errors.Is(e.Err, ErrIncompleteShift):
		return fmt.Sprintf("shift %d: %v: %s is not set", n, e.Err, e.Field)
	case errors.Is(e.Err, ErrInvalidDate) && e.MaxDay == 0:
		return fmt.Sprintf("shift %d: %v: no month %d", n, e.Err, e.Month)
	case errors.Is(e.Err, ErrInvalidDate):
		return fmt.Sprintf("shift %d: %v: %d/%d (month %d has %d days)", n, e.Err, e.Month, e.Day, e.Month, e.MaxDay)
	case errors.Is(e.Err, ErrOutsidePeriod):
		return fmt.Sprintf("shift %d: %d/%d is outside payroll period %s", n, e.Month, e.Day, e.Period)
	default:
		return fmt.Sprintf("shift %d: %v in %s", n, e.Err, e.Field)
	}
}

func (e *ShiftError) Unwrap() error {
	return e.Err
}

// ParameterError reports an invalid batch-level parameter such as the
// hourly wage or the number of overnight stays.
type ParameterError struct {
	Name  string
	Value int
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid number: %s = %d", e.Name, e.Value)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidNumber
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
// Nothing in this package is transient, so nothing is retryable.
func IsClientError(err error) bool {
	return errors.Is(err, ErrIncompleteShift) ||
		errors.Is(err, ErrInvalidNumber) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrOutsidePeriod) ||
		errors.Is(err, ErrNoShifts)
}
