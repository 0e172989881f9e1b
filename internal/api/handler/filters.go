package handler

import (
	"net/http"

	"github.com/ZA87447/Dashboard-bot/internal/api/middleware"
	"github.com/ZA87447/Dashboard-bot/internal/api/response"
	"github.com/ZA87447/Dashboard-bot/internal/api/validation"
	"github.com/ZA87447/Dashboard-bot/internal/dashboard"
	"github.com/ZA87447/Dashboard-bot/internal/market"
)

// FiltersHandler serves the selector options: the independent country and
// tire-size selectors, and the dependent competitor selector.
type FiltersHandler struct {
	table *market.Table
}

// NewFiltersHandler creates a new FiltersHandler over the loaded table.
func NewFiltersHandler(table *market.Table) *FiltersHandler {
	return &FiltersHandler{table: table}
}

type filtersData struct {
	Countries []string `json:"countries"`
	TireSizes []string `json:"tireSizes"`
}

// List handles GET /filters. Options are the distinct column values in
// dataset order.
func (h *FiltersHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	data := filtersData{
		Countries: h.table.Countries(),
		TireSizes: h.table.TireSizes(),
	}
	response.Success(w, http.StatusOK, data, requestID)
}

type competitorsData struct {
	Competitors []string `json:"competitors"`
}

// Competitors handles GET /filters/competitors. The options are exactly
// the brands of the current top-10 ranking, so a competitor outside that
// set cannot be selected through the UI.
func (h *FiltersHandler) Competitors(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	q := validation.SelectionQuery{
		Country:  r.URL.Query().Get("country"),
		TireSize: r.URL.Query().Get("tireSize"),
	}
	if fieldErrors := validation.ValidateSelectionQuery(q); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	data := competitorsData{
		Competitors: dashboard.CompetitorOptions(h.table, q.Country, q.TireSize),
	}
	response.Success(w, http.StatusOK, data, requestID)
}
