package handlers

//go:generate mockgen -source=reports.go -destination=reports_mock.go -package=handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/freelance-tracker/internal/logger"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
	"github.com/sbilibin2017/freelance-tracker/internal/services"
)

// ClientReporter builds the report of one client.
type ClientReporter interface {
	ClientReport(ctx context.Context, email string, clientID int64) (*models.ClientReport, error)
}

// ClientCSVExporter renders the report of one client as CSV.
type ClientCSVExporter interface {
	ExportClientCSV(ctx context.Context, email string, clientID int64) ([]byte, error)
}

func writeReportError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrClientNotFound) {
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}
	logger.Log.Errorw("report request failed", "err", err)
	writeError(w, http.StatusInternalServerError, msgInternalError)
}

// NewClientReportHandler returns an HTTP handler for a client report.
// @Summary Client report
// @Description Client details, its entries newest first, total hours and first and last entry dates
// @Tags reports
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} models.ClientReport
// @Failure 404 {object} models.ErrorResponse "Client not found"
// @Router /api/reports/client/{id} [get]
// @Security UserEmail
func NewClientReportHandler(svc ClientReporter, emailGetter EmailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireEmail(w, r, emailGetter)
		if !ok {
			return
		}

		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid client ID")
			return
		}

		report, err := svc.ClientReport(r.Context(), email, id)
		if err != nil {
			writeReportError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// NewExportCSVHandler returns an HTTP handler downloading a client report as CSV.
// @Summary Export client report as CSV
// @Tags reports
// @Produce text/csv
// @Param id path int true "Client ID"
// @Success 200 {file} file
// @Failure 404 {object} models.ErrorResponse "Client not found"
// @Router /api/reports/export/csv/{id} [get]
// @Security UserEmail
func NewExportCSVHandler(svc ClientCSVExporter, emailGetter EmailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireEmail(w, r, emailGetter)
		if !ok {
			return
		}

		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid client ID")
			return
		}

		data, err := svc.ExportClientCSV(r.Context(), email, id)
		if err != nil {
			writeReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.CSVFilename(id)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
