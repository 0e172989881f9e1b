package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/ZA87447/Dashboard-bot/internal/market"
)

// --- Helpers ---

func makeRequest(path string, params map[string]string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req, w
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err, "failed to parse response body")
	return env
}

func ptr(s string) *string { return &s }

// sampleTable is the dataset every handler test renders from: one US
// selection with two competitors, one DE selection with one.
func sampleTable() *market.Table {
	return market.NewTable([]market.Record{
		{
			Country: "US", TireSize: "P225/65R17",
			IndustrySales: 1000, GoodyearSales: 200, BrandShare: 0.2,
			CompetitorBrand: "A", CompetitorSales: 300, CompetitorShare: 0.3,
			BrandName: ptr("A"), Pattern: "AX-1", PatternSales: 180,
			Fitments: ptr("Sedan 2024"),
		},
		{
			Country: "US", TireSize: "P225/65R17",
			IndustrySales: 1000, GoodyearSales: 200, BrandShare: 0.2,
			CompetitorBrand: "B", CompetitorSales: 150, CompetitorShare: 0.15,
			BrandName: ptr("B"), Pattern: "BX-1", PatternSales: 150,
		},
		{
			Country: "DE", TireSize: "205/55R16",
			IndustrySales: 500, GoodyearSales: 50, BrandShare: 0.1,
			CompetitorBrand: "Z", CompetitorSales: 400, CompetitorShare: 0.8,
			Pattern: "ZX-1", PatternSales: 400,
		},
	})
}
