package handlers

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/freelance-tracker/internal/logger"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
)

// DashboardStatser computes the dashboard statistics.
type DashboardStatser interface {
	Stats(ctx context.Context, email string) (*models.DashboardStats, error)
}

// DefaultersGetter lists clients without recent work.
type DefaultersGetter interface {
	Defaulters(ctx context.Context, email string) (*models.DefaultersResponse, error)
}

// DueDatesGetter returns recent entries and recently active clients.
type DueDatesGetter interface {
	DueDates(ctx context.Context, email string) (*models.DueDates, error)
}

// NewDashboardStatsHandler returns an HTTP handler for the dashboard statistics.
// @Summary Dashboard statistics
// @Description Hours today, in the last 7 and 30 days, and client and entry counts
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Failure 401 {object} models.ErrorResponse "Authentication required"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/dashboard/stats [get]
// @Security UserEmail
func NewDashboardStatsHandler(svc DashboardStatser, emailGetter EmailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireEmail(w, r, emailGetter)
		if !ok {
			return
		}

		stats, err := svc.Stats(r.Context(), email)
		if err != nil {
			logger.Log.Errorw("dashboard stats failed", "email", email, "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

// NewDefaultersHandler returns an HTTP handler for clients without work in the last 7 days.
// @Summary Defaulters
// @Description Clients with no entry in the last 7 days, never-worked clients first
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DefaultersResponse
// @Failure 401 {object} models.ErrorResponse "Authentication required"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/dashboard/defaulters [get]
// @Security UserEmail
func NewDefaultersHandler(svc DefaultersGetter, emailGetter EmailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireEmail(w, r, emailGetter)
		if !ok {
			return
		}

		resp, err := svc.Defaulters(r.Context(), email)
		if err != nil {
			logger.Log.Errorw("dashboard defaulters failed", "email", email, "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewDueDatesHandler returns an HTTP handler for recent activity.
// @Summary Due dates
// @Description Up to 10 entries of the last 7 days and the 5 most recently active clients
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DueDates
// @Failure 401 {object} models.ErrorResponse "Authentication required"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/dashboard/due-dates [get]
// @Security UserEmail
func NewDueDatesHandler(svc DueDatesGetter, emailGetter EmailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireEmail(w, r, emailGetter)
		if !ok {
			return
		}

		due, err := svc.DueDates(r.Context(), email)
		if err != nil {
			logger.Log.Errorw("dashboard due dates failed", "email", email, "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, due)
	}
}
