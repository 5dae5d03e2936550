/*
scenarios.go - Sample calculation inputs for demos and smoke tests

PURPOSE:

	Provides ready-made calculation requests that exercise the main pay
	rules. They are plain inputs: running one goes through exactly the same
	path as POST /api/calculations.

AVAILABLE SCENARIOS:

	sample:      Day, overnight and early-morning shifts with one stay
	night-shift: A week of 22:00-06:00 shifts with two stays
	year-end:    Shifts on Dec 31 and Jan 2 (year-end meal allowance)

USAGE VIA API:

	GET  /api/scenarios/sample
	POST /api/scenarios/sample/calculate

ADDING NEW SCENARIOS:
 1. Add an entry to the 'scenarios' slice
 2. Build its shifts with the shift() helper

SEE ALSO:
  - handlers.go: calculate, shared with POST /api/calculations
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/warp/shift-pay/payroll"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

// Scenario is a named sample calculation request.
type Scenario struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Request     CalculationRequest `json:"request"`
}

// ScenarioSummary is a scenario without its request body.
type ScenarioSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var scenarios = []Scenario{
	{
		ID:          "sample",
		Name:        "Sample month",
		Description: "Day shift, overnight shift and early-morning shift at 1,200/h with one overnight stay",
		Request: CalculationRequest{
			HourlyWage:     1200,
			OvernightStays: 1,
			Shifts: []payroll.ShiftInput{
				shift(10, 15, 9, 0, 18, 0),
				shift(10, 16, 22, 0, 6, 0),
				shift(10, 31, 6, 0, 15, 0),
			},
		},
	},
	{
		ID:          "night-shift",
		Name:        "Night shift week",
		Description: "Five 22:00-06:00 shifts at 1,100/h with two overnight stays, scoped to the December 2025 period",
		Request: CalculationRequest{
			HourlyWage:     1100,
			OvernightStays: 2,
			Period:         &PeriodRef{Year: 2025, Month: 12},
			Shifts: []payroll.ShiftInput{
				shift(12, 1, 22, 0, 6, 0),
				shift(12, 2, 22, 0, 6, 0),
				shift(12, 3, 22, 0, 6, 0),
				shift(12, 4, 22, 0, 6, 0),
				shift(12, 5, 22, 0, 6, 0),
			},
		},
	},
	{
		ID:          "year-end",
		Name:        "Year-end shifts",
		Description: "Shifts on Dec 31 and Jan 2 at 1,300/h; both earn the year-end meal allowance",
		Request: CalculationRequest{
			HourlyWage: 1300,
			Shifts: []payroll.ShiftInput{
				shift(12, 31, 9, 0, 18, 0),
				shift(1, 2, 10, 0, 16, 0),
			},
		},
	},
}

func shift(month, day, startHour, startMinute, endHour, endMinute int) payroll.ShiftInput {
	return payroll.ShiftInput{
		Month:       payroll.Num(month),
		Day:         payroll.Num(day),
		StartHour:   payroll.Num(startHour),
		StartMinute: payroll.Num(startMinute),
		EndHour:     payroll.Num(endHour),
		EndMinute:   payroll.Num(endMinute),
	}
}

func findScenario(id string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns all available scenarios.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	out := make([]ScenarioSummary, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, ScenarioSummary{ID: s.ID, Name: s.Name, Description: s.Description})
	}
	writeJSON(w, http.StatusOK, out)
}

// GetScenario returns one scenario including its request.
// GET /api/scenarios/{id}
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	s, ok := findScenario(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "scenario not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// CalculateScenario runs a scenario's request.
// POST /api/scenarios/{id}/calculate
func (h *Handler) CalculateScenario(w http.ResponseWriter, r *http.Request) {
	s, ok := findScenario(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "scenario not found", nil)
		return
	}

	resp, err := h.calculate(s.Request)
	if err != nil {
		h.writeCalculationError(w, r, err)
		return
	}

	h.Log.WithField("scenario", s.ID).
		WithField("calculation_id", resp.ID).
		Info("scenario calculated")
	writeJSON(w, http.StatusOK, resp)
}
