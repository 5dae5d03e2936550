/*
scenarios_test.go - Unit tests for sample scenarios

PURPOSE:
	Runs every built-in scenario through the API and checks the totals
	against hand-computed values, so the samples double as integration
	tests of the whole pipeline.
*/
package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_List(t *testing.T) {
	srv := newTestServer(t, RouterOptions{})

	rec := srv.do(http.MethodGet, "/api/scenarios", "")

	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]ScenarioSummary](t, rec)
	ids := make([]string, 0, len(list))
	for _, s := range list {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"sample", "night-shift", "year-end"}, ids)
}

func TestScenario_GetReturnsRequest(t *testing.T) {
	srv := newTestServer(t, RouterOptions{})

	rec := srv.do(http.MethodGet, "/api/scenarios/sample", "")

	require.Equal(t, http.StatusOK, rec.Code)
	s := decode[Scenario](t, rec)
	assert.Equal(t, 1200, s.Request.HourlyWage)
	require.Len(t, s.Request.Shifts, 3)
	assert.Equal(t, 22, s.Request.Shifts[1].StartHour.Value)
	assert.False(t, s.Request.Shifts[1].Year.IsSet())
}

func TestScenario_Unknown(t *testing.T) {
	srv := newTestServer(t, RouterOptions{})

	assert.Equal(t, http.StatusNotFound, srv.do(http.MethodGet, "/api/scenarios/nope", "").Code)
	assert.Equal(t, http.StatusNotFound, srv.do(http.MethodPost, "/api/scenarios/nope/calculate", "").Code)
}

func TestScenario_Sample(t *testing.T) {
	// GIVEN: The sample scenario
	srv := newTestServer(t, RouterOptions{})

	// WHEN: Running it
	rec := srv.do(http.MethodPost, "/api/scenarios/sample/calculate", "")

	// THEN: It matches POST /api/calculations with the same body
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[CalculationResponse](t, rec)
	assert.Equal(t, 36162.0, resp.Totals.GrossSalary)

	direct := decode[CalculationResponse](t, srv.do(http.MethodPost, "/api/calculations", sampleBody))
	assert.Equal(t, direct.Totals, resp.Totals)
}

func TestScenario_NightShift(t *testing.T) {
	// GIVEN: Five 22:00-06:00 shifts at 1,100/h, two stays, December 2025 period
	srv := newTestServer(t, RouterOptions{})

	rec := srv.do(http.MethodPost, "/api/scenarios/night-shift/calculate", "")

	// THEN: 5 x 435 regular minutes, 5 x 360 night and 5 x 60 early minutes
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[CalculationResponse](t, rec)

	require.NotNil(t, resp.Period)
	assert.Equal(t, "2025-11-16", resp.Period.Start)
	assert.Equal(t, "2025-12-01", resp.Shifts[0].Date)

	assert.Equal(t, 1800, resp.Totals.NightMinutes)
	assert.Equal(t, 300, resp.Totals.EarlyMinutes)
	assert.Equal(t, 39875.0, resp.Totals.BaseWage)
	assert.Equal(t, 15180.0, resp.Totals.NightAllowance)
	assert.Equal(t, 1375.0, resp.Totals.EarlyAllowance)
	assert.Equal(t, 750.0, resp.Totals.MealAllowance)
	assert.Equal(t, 1700.0, resp.Totals.AccommodationAllowance)
	assert.Equal(t, 700.0, resp.Totals.NightMealAllowance)
	assert.Equal(t, 63080.0, resp.Totals.GrossSalary)
}

func TestScenario_YearEnd(t *testing.T) {
	// GIVEN: Dec 31 (8h working) and Jan 2 (5h30 working)
	srv := newTestServer(t, RouterOptions{})

	rec := srv.do(http.MethodPost, "/api/scenarios/year-end/calculate", "")

	// THEN: 1600+4x400 and 1600+1x400 meal allowance
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[CalculationResponse](t, rec)
	assert.Equal(t, 3200.0, resp.Shifts[0].MealAllowance)
	assert.Equal(t, 2000.0, resp.Shifts[1].MealAllowance)
	assert.Equal(t, 5200.0, resp.Totals.MealAllowance)
	assert.Equal(t, map[int]int{12: 1, 1: 1}, resp.WorkDaysByMonth)
}

func TestScenario_AllScenariosCalculate(t *testing.T) {
	srv := newTestServer(t, RouterOptions{})

	for _, s := range scenarios {
		t.Run(s.ID, func(t *testing.T) {
			rec := srv.do(http.MethodPost, "/api/scenarios/"+s.ID+"/calculate", "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var resp CalculationResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Len(t, resp.Shifts, len(s.Request.Shifts))
			assert.Positive(t, resp.Totals.GrossSalary)
		})
	}
}
