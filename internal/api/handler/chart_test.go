package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ZA87447/Dashboard-bot/internal/api/handler"
)

func newChartHandler() *handler.ChartHandler {
	return handler.NewChartHandler(handler.NewDashboardHandler(sampleTable()))
}

// ===== GET /dashboard/charts/{name}.svg =====

func TestChartGet_RendersSVG(t *testing.T) {
	t.Parallel()

	h := newChartHandler()

	for _, name := range []string{"sales", "competitors", "brands", "patterns"} {
		req, w := makeRequest("/dashboard/charts/"+name+".svg?country=US&tireSize=P225%2F65R17",
			map[string]string{"name": name})
		h.Get(w, req)

		assert.Equal(t, http.StatusOK, w.Code, name)
		assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"), name)
		assert.Contains(t, w.Body.String(), "<svg", name)
	}
}

func TestChartGet_EmptySelectionPlaceholder(t *testing.T) {
	t.Parallel()

	h := newChartHandler()

	req, w := makeRequest("/dashboard/charts/sales.svg?country=FR&tireSize=S",
		map[string]string{"name": "sales"})
	h.Get(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "no data for this selection")
}

func TestChartGet_UnknownChart(t *testing.T) {
	t.Parallel()

	h := newChartHandler()

	req, w := makeRequest("/dashboard/charts/bogus.svg?country=US&tireSize=P225%2F65R17",
		map[string]string{"name": "bogus"})
	h.Get(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errObj["code"])
}

func TestChartGet_MissingSelections(t *testing.T) {
	t.Parallel()

	h := newChartHandler()

	req, w := makeRequest("/dashboard/charts/sales.svg", map[string]string{"name": "sales"})
	h.Get(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
