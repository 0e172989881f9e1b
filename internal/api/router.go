package api

import (
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/go-chi/chi/v5"

	"github.com/ZA87447/Dashboard-bot/internal/api/handler"
	"github.com/ZA87447/Dashboard-bot/internal/api/middleware"
	"github.com/ZA87447/Dashboard-bot/internal/market"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Table   *market.Table
	Dataset handler.DatasetInfo
	Version string
}

// NewRouter creates and configures a Chi router with all middleware and
// routes. The table is the immutable dataset loaded at startup.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.Dataset, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	filtersHandler := handler.NewFiltersHandler(deps.Table)
	r.Route("/filters", func(r chi.Router) {
		r.Get("/", filtersHandler.List)
		r.Get("/competitors", filtersHandler.Competitors)
	})

	dashboardHandler := handler.NewDashboardHandler(deps.Table)
	chartHandler := handler.NewChartHandler(dashboardHandler)
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/", dashboardHandler.Get)
		r.Get("/charts/{name}.svg", chartHandler.Get)
	})

	return r
}
