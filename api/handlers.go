/*
handlers.go - HTTP API handlers for the pay breakdown engine

PURPOSE:
  Exposes the payroll engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to the payroll package.

ENDPOINTS:
  Calculations:
    POST   /api/calculations           Period totals for a batch of shifts
    POST   /api/shifts/breakdown       Breakdown of a single shift

  Reference data:
    GET    /api/periods/{year}/{month} Payroll period paid in a month
    GET    /api/job-fee?work_days=N    Job introduction fee
    GET    /api/calendar/{month}       Days in a month
    GET    /api/rates                  Active rate table

  Scenarios:
    GET    /api/scenarios              List sample inputs
    GET    /api/scenarios/{id}         Get one sample input
    POST   /api/scenarios/{id}/calculate Run a sample input

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Calc: payroll.Calculator bound to the active rate table
  - RateFactory: renders the rate table as JSON
  - Log: structured logger
  The engine is pure, so handlers share no mutable state.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed JSON, failed validation (body locates the shift/field)
  - 404: Unknown scenario
  - 429: Rate limited (see server.go)
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Sample inputs
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/warp/shift-pay/factory"
	"github.com/warp/shift-pay/payroll"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Calc        *payroll.Calculator
	RateFactory *factory.RateFactory
	Log         logrus.FieldLogger

	newID func() string
}

// NewHandler creates a handler computing with the given calculator.
func NewHandler(calc *payroll.Calculator, log logrus.FieldLogger) *Handler {
	return &Handler{
		Calc:        calc,
		RateFactory: factory.NewRateFactory(),
		Log:         log,
		newID:       uuid.NewString,
	}
}

// =============================================================================
// CALCULATION HANDLERS
// =============================================================================

// CreateCalculation computes period totals for a batch of shifts.
// POST /api/calculations
func (h *Handler) CreateCalculation(w http.ResponseWriter, r *http.Request) {
	var req CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.calculate(req)
	if err != nil {
		h.writeCalculationError(w, r, err)
		return
	}

	h.Log.WithFields(logrus.Fields{
		"calculation_id": resp.ID,
		"request_id":     middleware.GetReqID(r.Context()),
		"shifts":         resp.Totals.ShiftCount,
		"gross_salary":   resp.Totals.GrossSalary,
	}).Info("calculation completed")

	writeJSON(w, http.StatusOK, resp)
}

// calculate runs Calculate and renders the result.
func (h *Handler) calculate(req CalculationRequest) (CalculationResponse, error) {
	result, err := Calculate(h.Calc, req)
	if err != nil {
		return CalculationResponse{}, err
	}
	totals := result.Totals

	resp := CalculationResponse{
		ID:              h.newID(),
		HourlyWage:      totals.HourlyWage,
		OvernightStays:  totals.OvernightStays,
		Totals:          toTotalsDTO(totals),
		Shifts:          make([]ShiftDTO, 0, len(totals.Shifts)),
		WorkDaysByMonth: totals.WorkDaysByMonth,
		JobFees:         make(map[int]int, len(totals.WorkDaysByMonth)),
	}
	if result.Period != nil {
		dto := toPeriodDTO(*result.Period)
		resp.Period = &dto
	}
	for i, sr := range totals.Shifts {
		resp.Shifts = append(resp.Shifts, toShiftDTO(i+1, result.ShiftDate(sr.Shift), sr))
	}
	for month, days := range totals.WorkDaysByMonth {
		resp.JobFees[month] = h.Calc.JobIntroductionFee(days)
	}
	return resp, nil
}

// ShiftBreakdown reports the pay of a single shift.
// POST /api/shifts/breakdown
func (h *Handler) ShiftBreakdown(w http.ResponseWriter, r *http.Request) {
	var req ShiftBreakdownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := validate.Struct(req); err != nil {
		h.writeCalculationError(w, r, err)
		return
	}

	rec, err := req.Shift.Record(0)
	if err != nil {
		h.writeCalculationError(w, r, err)
		return
	}

	result := payroll.ShiftResult{Shift: rec, Breakdown: h.Calc.PayShift(req.HourlyWage, rec)}
	writeJSON(w, http.StatusOK, toShiftDTO(1, "", result))
}

// =============================================================================
// REFERENCE DATA HANDLERS
// =============================================================================

// GetPeriod returns the payroll period paid in the given month.
// GET /api/periods/{year}/{month}
func (h *Handler) GetPeriod(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 {
		writeError(w, http.StatusBadRequest, "invalid year", err)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "invalid month", err)
		return
	}

	writeJSON(w, http.StatusOK, toPeriodDTO(payroll.ResolvePayrollPeriod(year, time.Month(month))))
}

// GetJobFee returns the job introduction fee for a number of work days.
// GET /api/job-fee?work_days=N
func (h *Handler) GetJobFee(w http.ResponseWriter, r *http.Request) {
	days, err := strconv.Atoi(r.URL.Query().Get("work_days"))
	if err != nil || days < 0 {
		writeError(w, http.StatusBadRequest, "work_days must be a non-negative integer", err)
		return
	}
	writeJSON(w, http.StatusOK, JobFeeResponse{WorkDays: days, Fee: h.Calc.JobIntroductionFee(days)})
}

// GetCalendar returns the number of days in a month.
// GET /api/calendar/{month}
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	days := payroll.DaysInMonth(month)
	if err != nil || days == 0 {
		writeError(w, http.StatusBadRequest, "invalid month", err)
		return
	}
	writeJSON(w, http.StatusOK, CalendarResponse{Month: month, Days: days})
}

// GetRates returns the rate table the server computes with.
// GET /api/rates
func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.RateFactory.ToJSON(h.Calc.Rates))
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeCalculationError maps validation and engine errors to responses.
func (h *Handler) writeCalculationError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verrs    validator.ValidationErrors
		shiftErr *payroll.ShiftError
		paramErr *payroll.ParameterError
	)

	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Code:    "invalid_request",
			Details: fieldErrors(verrs),
		})
	case errors.As(err, &shiftErr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: "invalid shift",
			Code:  errorCode(err),
			Details: ShiftErrorDetails{
				Shift:   shiftErr.Index + 1,
				Field:   shiftErr.Field,
				Message: shiftErr.Error(),
			},
		})
	case errors.As(err, &paramErr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "invalid parameter",
			Code:    errorCode(err),
			Details: []FieldErrorDetails{{Field: paramErr.Name, Rule: "range"}},
		})
	case payroll.IsClientError(err):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: errorCode(err)})
	default:
		h.Log.WithError(err).
			WithField("request_id", middleware.GetReqID(r.Context())).
			Error("calculation failed")
		writeError(w, http.StatusInternalServerError, "calculation failed", nil)
	}
}

// errorCode returns a stable machine-readable code for an engine error.
func errorCode(err error) string {
	switch {
	case errors.Is(err, payroll.ErrIncompleteShift):
		return "incomplete_shift"
	case errors.Is(err, payroll.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, payroll.ErrOutsidePeriod):
		return "outside_period"
	case errors.Is(err, payroll.ErrNoShifts):
		return "no_shifts"
	case errors.Is(err, payroll.ErrInvalidNumber):
		return "invalid_number"
	}
	return ""
}
