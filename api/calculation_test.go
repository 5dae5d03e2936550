package api

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/shift-pay/payroll"
)

func TestCalculate_WithoutPeriod(t *testing.T) {
	// GIVEN: A year-less day shift and no period
	req := CalculationRequest{
		HourlyWage: 1200,
		Shifts:     []payroll.ShiftInput{shift(10, 15, 9, 0, 18, 0)},
	}

	// WHEN: Calculating
	result, err := Calculate(payroll.Default(), req)

	// THEN: Plain aggregation, no date to show
	require.NoError(t, err)
	assert.Nil(t, result.Period)
	assert.True(t, decimal.NewFromInt(9600).Equal(result.Totals.BaseWage))
	assert.Equal(t, "", result.ShiftDate(result.Totals.Shifts[0].Shift))
}

func TestCalculate_WithPeriod(t *testing.T) {
	req := CalculationRequest{
		HourlyWage: 1200,
		Period:     &PeriodRef{Year: 2026, Month: 1},
		Shifts:     []payroll.ShiftInput{shift(12, 20, 9, 0, 18, 0)},
	}

	result, err := Calculate(payroll.Default(), req)

	require.NoError(t, err)
	require.NotNil(t, result.Period)
	assert.Equal(t, "[2025-12-16, 2026-01-15]", result.Period.String())
	assert.Equal(t, "2025-12-20", result.ShiftDate(result.Totals.Shifts[0].Shift))
}

func TestCalculate_PeriodScopingRejectsOutsideShift(t *testing.T) {
	req := CalculationRequest{
		HourlyWage: 1200,
		Period:     &PeriodRef{Year: 2026, Month: 1},
		Shifts:     []payroll.ShiftInput{shift(1, 16, 9, 0, 18, 0)},
	}

	_, err := Calculate(payroll.Default(), req)

	assert.ErrorIs(t, err, payroll.ErrOutsidePeriod)
}

func TestCalculate_StructRulesRunFirst(t *testing.T) {
	// GIVEN: A zero wage and a broken shift
	req := CalculationRequest{Shifts: []payroll.ShiftInput{{}}}

	_, err := Calculate(payroll.Default(), req)

	// THEN: The request rules reject it before shift validation
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.NotErrorIs(t, err, payroll.ErrIncompleteShift)
}
