/*
input.go - Validation of raw shift input

PURPOSE:
  The collaborator that gathers shifts (a form, an HTTP client, a file)
  hands over values that may be unset or non-numeric. ShiftInput keeps
  that distinction so validation can report the right error kind.

VALIDATION ORDER (per shift, first violation aborts the batch):
  1. every date and time field is set          -> ErrIncompleteShift
  2. every set field is numeric                -> ErrInvalidNumber
  3. month is 1-12, day within DaysInMonth      -> ErrInvalidDate
  4. hour in [0, 24], minute in [0, 59]         -> ErrInvalidNumber
*/
package payroll

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// =============================================================================
// FIELD - A numeric input that may be unset or malformed
// =============================================================================

// FieldState tells whether a Field holds a usable number.
type FieldState int

const (
	FieldUnset FieldState = iota
	FieldNumber
	FieldInvalid
)

// Field is a numeric input value. It decodes from a JSON number or a
// numeric string; null and "" leave it unset, anything else marks it
// invalid and keeps the raw text.
type Field struct {
	Value int
	State FieldState
	Raw   string
}

// Num returns a set Field.
func Num(v int) Field { return Field{Value: v, State: FieldNumber} }

// ParseField interprets a raw string the way JSON strings are decoded.
func ParseField(s string) Field {
	s = strings.TrimSpace(s)
	if s == "" {
		return Field{}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Field{State: FieldInvalid, Raw: s}
	}
	return Num(n)
}

func (f Field) IsSet() bool { return f.State != FieldUnset }

func (f *Field) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = Field{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = ParseField(s)
		return nil
	}
	*f = ParseField(string(b))
	return nil
}

func (f Field) MarshalJSON() ([]byte, error) {
	switch f.State {
	case FieldNumber:
		return []byte(strconv.Itoa(f.Value)), nil
	case FieldInvalid:
		return json.Marshal(f.Raw)
	default:
		return []byte("null"), nil
	}
}

// =============================================================================
// SHIFT INPUT
// =============================================================================

// ShiftInput is an unvalidated shift as supplied by the collaborator.
type ShiftInput struct {
	Year        Field `json:"year"`
	Month       Field `json:"month"`
	Day         Field `json:"day"`
	StartHour   Field `json:"start_hour"`
	StartMinute Field `json:"start_minute"`
	EndHour     Field `json:"end_hour"`
	EndMinute   Field `json:"end_minute"`
}

type namedField struct {
	name  string
	field Field
}

// required lists the fields that must be set, in display order.
func (in ShiftInput) required() []namedField {
	return []namedField{
		{"month", in.Month},
		{"day", in.Day},
		{"start_hour", in.StartHour},
		{"start_minute", in.StartMinute},
		{"end_hour", in.EndHour},
		{"end_minute", in.EndMinute},
	}
}

// Record validates the input as shift number index of a batch.
func (in ShiftInput) Record(index int) (ShiftRecord, error) {
	fields := in.required()
	for _, nf := range fields {
		if !nf.field.IsSet() {
			return ShiftRecord{}, &ShiftError{Index: index, Field: nf.name, Err: ErrIncompleteShift}
		}
	}
	for _, nf := range append(fields, namedField{"year", in.Year}) {
		if nf.field.State == FieldInvalid {
			return ShiftRecord{}, &ShiftError{Index: index, Field: nf.name, Err: ErrInvalidNumber}
		}
	}

	rec := ShiftRecord{
		Year:        in.Year.Value,
		Month:       in.Month.Value,
		Day:         in.Day.Value,
		StartHour:   in.StartHour.Value,
		StartMinute: in.StartMinute.Value,
		EndHour:     in.EndHour.Value,
		EndMinute:   in.EndMinute.Value,
	}
	if err := ValidateRecord(index, rec); err != nil {
		return ShiftRecord{}, err
	}
	return rec, nil
}

// ValidateShifts converts a batch of inputs into records. The first
// violation aborts the whole batch.
func ValidateShifts(inputs []ShiftInput) ([]ShiftRecord, error) {
	if len(inputs) == 0 {
		return nil, ErrNoShifts
	}
	records := make([]ShiftRecord, 0, len(inputs))
	for i, in := range inputs {
		rec, err := in.Record(i)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// ValidateRecord checks the ranges of an already numeric record.
func ValidateRecord(index int, s ShiftRecord) error {
	maxDay := DaysInMonth(s.Month)
	if maxDay == 0 {
		return &ShiftError{Index: index, Field: "month", Month: s.Month, Day: s.Day, Err: ErrInvalidDate}
	}
	if s.Day < 1 || s.Day > maxDay {
		return &ShiftError{Index: index, Month: s.Month, Day: s.Day, MaxDay: maxDay, Err: ErrInvalidDate}
	}
	if s.Year < 0 {
		return &ShiftError{Index: index, Field: "year", Month: s.Month, Day: s.Day, Err: ErrInvalidNumber}
	}

	clock := []struct {
		name  string
		value int
		max   int
	}{
		{"start_hour", s.StartHour, 24},
		{"start_minute", s.StartMinute, 59},
		{"end_hour", s.EndHour, 24},
		{"end_minute", s.EndMinute, 59},
	}
	for _, c := range clock {
		if c.value < 0 || c.value > c.max {
			return &ShiftError{Index: index, Field: c.name, Month: s.Month, Day: s.Day, Err: ErrInvalidNumber}
		}
	}
	return nil
}

// ValidateParameters checks the batch-level inputs of a calculation.
func ValidateParameters(hourlyWage, overnightStays int) error {
	if hourlyWage <= 0 {
		return &ParameterError{Name: "hourly_wage", Value: hourlyWage}
	}
	if overnightStays < 0 {
		return &ParameterError{Name: "overnight_stays", Value: overnightStays}
	}
	return nil
}
