package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/sbilibin2017/freelance-tracker/internal/logger"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
)

// ReportService builds per-client reports out of the client and work entry readers.
type ReportService struct {
	clients ClientGetter
	entries WorkEntryReader
}

// NewReportService creates a new ReportService.
func NewReportService(clients ClientGetter, entries WorkEntryReader) *ReportService {
	return &ReportService{clients: clients, entries: entries}
}

// ClientReport returns the client, its entries newest first and their totals.
func (svc *ReportService) ClientReport(ctx context.Context, email string, clientID int64) (*models.ClientReport, error) {
	client, err := svc.clients.Get(ctx, email, clientID)
	if err != nil {
		logger.Log.Errorw("failed to get client for report", "email", email, "clientID", clientID, "err", err)
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	entries, err := svc.entries.List(ctx, email, &clientID)
	if err != nil {
		logger.Log.Errorw("failed to list entries for report", "email", email, "clientID", clientID, "err", err)
		return nil, err
	}
	if entries == nil {
		entries = []models.WorkEntryDB{}
	}

	report := &models.ClientReport{
		Client:     *client,
		Entries:    entries,
		EntryCount: len(entries),
	}
	for i := range entries {
		report.TotalHours += entries[i].Hours
		d := entries[i].Date
		if report.FirstEntryDate == nil || d < *report.FirstEntryDate {
			report.FirstEntryDate = &d
		}
		if report.LastEntryDate == nil || d > *report.LastEntryDate {
			report.LastEntryDate = &d
		}
	}
	report.TotalHours = models.RoundHours(report.TotalHours)

	return report, nil
}

// CSVFilename is the attachment name of a client's CSV export.
func CSVFilename(clientID int64) string {
	return fmt.Sprintf("client-%d-report.csv", clientID)
}

// ExportClientCSV renders the client report as CSV with a trailing total row.
func (svc *ReportService) ExportClientCSV(ctx context.Context, email string, clientID int64) ([]byte, error) {
	report, err := svc.ClientReport(ctx, email, clientID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := make([][]string, 0, len(report.Entries)+2)
	records = append(records, []string{"Date", "Hours", "Description"})
	for _, e := range report.Entries {
		desc := ""
		if e.Description != nil {
			desc = *e.Description
		}
		records = append(records, []string{e.Date.String(), formatHours(e.Hours), desc})
	}
	records = append(records, []string{"Total", formatHours(report.TotalHours), ""})

	if err := w.WriteAll(records); err != nil {
		logger.Log.Errorw("failed to write csv", "clientID", clientID, "err", err)
		return nil, err
	}

	return buf.Bytes(), nil
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}
