package handler

import (
	"net/http"
	"time"

	"github.com/ZA87447/Dashboard-bot/internal/api/middleware"
	"github.com/ZA87447/Dashboard-bot/internal/api/response"
)

// DatasetInfo describes the loaded dataset for the health endpoint.
type DatasetInfo struct {
	Source   string
	Rows     int
	LoadedAt time.Time
}

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	dataset DatasetInfo
	version string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(dataset DatasetInfo, version string) *HealthHandler {
	return &HealthHandler{dataset: dataset, version: version}
}

type datasetStatus struct {
	Source   string `json:"source"`
	Rows     int    `json:"rows"`
	LoadedAt string `json:"loadedAt"`
}

type healthData struct {
	Status  string        `json:"status"`
	Version string        `json:"version"`
	Dataset datasetStatus `json:"dataset"`
}

// ServeHTTP handles the health check request. The dataset is loaded before
// the server starts, so a running process is healthy by construction.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	data := healthData{
		Status:  "healthy",
		Version: h.version,
		Dataset: datasetStatus{
			Source:   h.dataset.Source,
			Rows:     h.dataset.Rows,
			LoadedAt: h.dataset.LoadedAt.UTC().Format(time.RFC3339),
		},
	}

	response.Success(w, http.StatusOK, data, requestID)
}
