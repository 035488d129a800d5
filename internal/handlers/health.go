package handlers

import (
	"net/http"
	"time"

	"github.com/sbilibin2017/freelance-tracker/internal/models"
)

// NewHealthHandler returns an HTTP handler for the liveness probe.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func NewHealthHandler(now func() time.Time) http.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.HealthResponse{
			Status:    "OK",
			Timestamp: now().UTC().Format(time.RFC3339Nano),
		})
	}
}
