package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ZA87447/Dashboard-bot/internal/api/middleware"
	"github.com/ZA87447/Dashboard-bot/internal/api/response"
	"github.com/ZA87447/Dashboard-bot/internal/chartsvg"
)

// ChartHandler serves individual dashboard charts rendered as SVG. It
// reuses the dashboard handler's query parsing so the images always match
// the JSON view for the same selections.
type ChartHandler struct {
	dashboard *DashboardHandler
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(d *DashboardHandler) *ChartHandler {
	return &ChartHandler{dashboard: d}
}

// Get handles GET /dashboard/charts/{name}.svg.
func (h *ChartHandler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	name := chi.URLParam(r, "name")

	view, ok := h.dashboard.render(w, r, requestID)
	if !ok {
		return
	}

	var svg []byte
	var err error
	switch name {
	case "sales":
		svg, err = chartsvg.Bar(view.Sales)
	case "competitors":
		svg, err = chartsvg.Bar(view.CompetitorSales)
	case "brands":
		svg, err = chartsvg.Pie(view.BrandShare)
	case "patterns":
		svg, err = chartsvg.Pie(view.PatternSales)
	default:
		response.Err(w, http.StatusNotFound, "NOT_FOUND", "Unknown chart", requestID)
		return
	}
	if err != nil {
		slog.Error("failed to render chart", "error", err, "chart", name)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render chart", requestID)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(svg); err != nil {
		slog.Error("failed to write chart response", "error", err, "chart", name)
	}
}
