package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/shift-pay/payroll"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func shift(month, day, startH, startM, endH, endM int) payroll.ShiftRecord {
	return payroll.ShiftRecord{
		Month:       month,
		Day:         day,
		StartHour:   startH,
		StartMinute: startM,
		EndHour:     endH,
		EndMinute:   endM,
	}
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, context ...string) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s %v", want, got.String(), context)
}

// =============================================================================
// NORMALIZATION
// =============================================================================

func TestNormalizeInterval_SameDay(t *testing.T) {
	iv := payroll.NormalizeInterval(9, 0, 18, 0)
	assert.Equal(t, payroll.Interval{Start: 540, End: 1080}, iv)
	assert.Equal(t, 540, iv.Span())
	assert.False(t, iv.CrossesMidnight())
}

func TestNormalizeInterval_WrapsMidnight(t *testing.T) {
	iv := payroll.NormalizeInterval(22, 0, 6, 0)
	assert.Equal(t, payroll.Interval{Start: 1320, End: 1800}, iv)
	assert.Equal(t, 480, iv.Span())
	assert.True(t, iv.CrossesMidnight())
}

func TestNormalizeInterval_EndAtTwentyFour(t *testing.T) {
	iv := payroll.NormalizeInterval(18, 0, 24, 0)
	assert.Equal(t, 1440, iv.End)
	assert.Equal(t, 360, iv.Span())
}

// =============================================================================
// BREAK POLICY
// =============================================================================

func TestBreakMinutes_Tiers(t *testing.T) {
	cases := []struct {
		span int
		want int
	}{
		{0, 0},
		{240, 0},
		{270, 0},
		{271, 30},
		{390, 30},
		{391, 45},
		{480, 45},
		{525, 45},
		{526, 60},
		{540, 60},
		{900, 60},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, payroll.BreakMinutes(tc.span), "span %d", tc.span)
	}
}

func TestBreakMinutes_MonotonicAndBounded(t *testing.T) {
	allowed := map[int]bool{0: true, 30: true, 45: true, 60: true}
	prev := 0
	for span := 0; span <= 2*payroll.MinutesPerDay; span++ {
		got := payroll.BreakMinutes(span)
		require.True(t, allowed[got], "span %d gave break %d", span, got)
		require.GreaterOrEqual(t, got, prev, "break decreased at span %d", span)
		prev = got
	}
}

// =============================================================================
// MINUTE CLASSIFICATION
// =============================================================================

func TestClassifyMinutes_DaytimeNoBreakWindow(t *testing.T) {
	// 10:00-14:00, 4h worked: no skip window
	b := payroll.ClassifyMinutes(600, 840, 240)
	assert.Equal(t, payroll.Buckets{Base: 240}, b)
}

func TestClassifyMinutes_SkipsFixedHourAfterThreeHours(t *testing.T) {
	// 09:00-18:00 works 480: 12:00-13:00 is skipped
	b := payroll.ClassifyMinutes(540, 1080, 480)
	assert.Equal(t, payroll.Buckets{Base: 480}, b)
	assert.Equal(t, 540-60, b.Total())
}

func TestClassifyMinutes_SkipWindowIgnoresBreakTier(t *testing.T) {
	// GIVEN: 22:00-06:00, break tier 45, working 435
	// WHEN: classifying
	// THEN: a full 60 minutes (01:00-02:00) is skipped, leaving 420 classified
	iv := payroll.NormalizeInterval(22, 0, 6, 0)
	b := payroll.ClassifyMinutes(iv.Start, iv.End, 435)

	assert.Equal(t, 360, b.Night)
	assert.Equal(t, 60, b.Early)
	assert.Equal(t, 0, b.Base)
	assert.Equal(t, 420, b.Total())
}

func TestClassifyMinutes_NoSkipBelowSixWorkingHours(t *testing.T) {
	// 04:00-09:45 spans 345, works 315
	b := payroll.ClassifyMinutes(240, 585, 315)
	assert.Equal(t, 60, b.Night)
	assert.Equal(t, 180, b.Early)
	assert.Equal(t, 105, b.Base)
	assert.Equal(t, 345, b.Total())
}

func TestClassifyMinutes_SkipStartsAtExactlySixWorkingHours(t *testing.T) {
	// GIVEN: 09:00-15:30 spans 390, break tier 30, works exactly 360
	require.Equal(t, 360, payroll.WorkingMinutes(390))

	// WHEN: classifying
	b := payroll.ClassifyMinutes(540, 930, 360)

	// THEN: 12:00-13:00 is skipped
	assert.Equal(t, payroll.Buckets{Base: 330}, b)
}

func TestClassifyMinutes_NoSkipOneMinuteBelowSixHours(t *testing.T) {
	// GIVEN: 09:00-15:29 spans 389, works 359
	require.Equal(t, 359, payroll.WorkingMinutes(389))

	// THEN: every minute is classified
	b := payroll.ClassifyMinutes(540, 929, 359)
	assert.Equal(t, payroll.Buckets{Base: 389}, b)
}

// =============================================================================
// SHIFT PAY - Reference scenarios
// =============================================================================

func TestPayShift_DayShift(t *testing.T) {
	// GIVEN: wage 1200, 09:00-18:00 on Oct 15
	// THEN: span 540, break 60, 8h worked, no differentials
	b := payroll.PayShift(1200, shift(10, 15, 9, 0, 18, 0))

	assert.Equal(t, 540, b.SpanMinutes)
	assert.Equal(t, 60, b.BreakMinutes)
	assert.Equal(t, 480, b.WorkingMinutes)
	assert.Equal(t, 0, b.OvertimeMinutes)
	assertMoney(t, "9600", b.BaseWage)
	assertMoney(t, "0", b.NightAllowance)
	assertMoney(t, "0", b.EarlyAllowance)
	assertMoney(t, "0", b.OvertimeAllowance)
	assertMoney(t, "300", b.MealAllowance)
	assertMoney(t, "700", b.Transportation)
}

func TestPayShift_NightShiftAcrossMidnight(t *testing.T) {
	// GIVEN: wage 1200, 22:00-06:00 on Oct 16
	// THEN: break 45 but the classification skips 60
	b := payroll.PayShift(1200, shift(10, 16, 22, 0, 6, 0))

	assert.Equal(t, 480, b.SpanMinutes)
	assert.Equal(t, 45, b.BreakMinutes)
	assert.Equal(t, 435, b.WorkingMinutes)
	assert.Equal(t, 360, b.NightMinutes)
	assert.Equal(t, 60, b.EarlyMinutes)
	assert.Equal(t, 0, b.BaseMinutes)
	assertMoney(t, "8700", b.BaseWage)
	assertMoney(t, "3312", b.NightAllowance)
	assertMoney(t, "300", b.EarlyAllowance)
	assertMoney(t, "0", b.OvertimeAllowance)
	assertMoney(t, "150", b.MealAllowance)
	assertMoney(t, "700", b.Transportation)
}

func TestPayShift_NightAllowanceKeepsCents(t *testing.T) {
	// 22:00-22:07 at 1000: 7/60 * 1000 * 0.46 = 53.666.. -> 53.67, no ceiling
	b := payroll.PayShift(1000, shift(3, 1, 22, 0, 22, 7))
	assert.Equal(t, 7, b.NightMinutes)
	assertMoney(t, "53.67", b.NightAllowance)
}

func TestPayShift_Overtime(t *testing.T) {
	// 08:00-19:00: span 660, break 60, 600 worked, 120 overtime
	b := payroll.PayShift(1200, shift(10, 20, 8, 0, 19, 0))

	assert.Equal(t, 600, b.WorkingMinutes)
	assert.Equal(t, 480, b.RegularMinutes)
	assert.Equal(t, 120, b.OvertimeMinutes)
	assertMoney(t, "9600", b.BaseWage)
	assertMoney(t, "3000", b.OvertimeAllowance)
	assertMoney(t, "300", b.MealAllowance)
}

func TestPayShift_DaytimeShiftHasOnlyBaseWage(t *testing.T) {
	// Any shift inside [08:00, 22:00) without a break pays wage * hours
	for _, s := range []payroll.ShiftRecord{
		shift(5, 1, 8, 0, 12, 0),
		shift(5, 1, 13, 15, 17, 30),
		shift(5, 1, 18, 0, 22, 0),
	} {
		b := payroll.PayShift(1100, s)
		assert.Equal(t, 0, b.NightMinutes, s.TimeRange())
		assert.Equal(t, 0, b.EarlyMinutes, s.TimeRange())
		assert.Equal(t, 0, b.BreakMinutes, s.TimeRange())
		want := decimal.NewFromInt(1100 * int64(b.WorkingMinutes)).Div(decimal.NewFromInt(60)).Ceil()
		assertMoney(t, want.String(), b.BaseWage, s.TimeRange())
	}
}

func TestComputeShiftPay_Idempotent(t *testing.T) {
	iv := payroll.NormalizeInterval(22, 0, 6, 0)
	first := payroll.ComputeShiftPay(1200, iv.Start, iv.End, 435, 10, 16)
	second := payroll.ComputeShiftPay(1200, iv.Start, iv.End, 435, 10, 16)
	assert.Equal(t, first, second)
}

func TestCalculator_CustomRates(t *testing.T) {
	rates := payroll.DefaultRates()
	rates.Transportation = decimal.NewFromInt(500)
	rates.NightPremium = decimal.RequireFromString("0.5")
	calc := payroll.NewCalculator(rates)

	b := calc.PayShift(1000, shift(10, 16, 22, 0, 6, 0))
	assertMoney(t, "500", b.Transportation)
	assertMoney(t, "3000", b.NightAllowance) // 6h * 1000 * 0.5
}
