package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ZA87447/Dashboard-bot/internal/api/middleware"
	"github.com/ZA87447/Dashboard-bot/internal/api/response"
	"github.com/ZA87447/Dashboard-bot/internal/api/validation"
	"github.com/ZA87447/Dashboard-bot/internal/dashboard"
	"github.com/ZA87447/Dashboard-bot/internal/market"
)

// DashboardHandler serves the computed view model. The table is loaded
// once at startup and passed in; every request recomputes the full view
// from it.
type DashboardHandler struct {
	table *market.Table
}

// NewDashboardHandler creates a new DashboardHandler over the loaded table.
func NewDashboardHandler(table *market.Table) *DashboardHandler {
	return &DashboardHandler{table: table}
}

// Get handles GET /dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	view, ok := h.render(w, r, requestID)
	if !ok {
		return
	}

	response.Success(w, http.StatusOK, view, requestID)
}

// render parses and validates the selection query and computes the view.
// On failure it writes the error response and returns ok=false.
func (h *DashboardHandler) render(w http.ResponseWriter, r *http.Request, requestID string) (*dashboard.View, bool) {
	query := r.URL.Query()
	q := validation.SelectionQuery{
		Country:  query.Get("country"),
		TireSize: query.Get("tireSize"),
	}
	if fieldErrors := validation.ValidateSelectionQuery(q); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return nil, false
	}

	sel := dashboard.Selections{
		Country:    q.Country,
		TireSize:   q.TireSize,
		Competitor: query.Get("competitor"),
	}

	view, err := dashboard.Render(h.table, sel)
	if err != nil {
		if errors.Is(err, dashboard.ErrUnknownCompetitor) {
			response.Err(w, http.StatusBadRequest, "UNKNOWN_COMPETITOR", "Competitor is not in the current top-10 ranking", requestID)
			return nil, false
		}
		slog.Error("failed to render dashboard", "error", err, "country", sel.Country, "tireSize", sel.TireSize)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render dashboard", requestID)
		return nil, false
	}

	return view, true
}
