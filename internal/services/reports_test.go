package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
	"github.com/sbilibin2017/freelance-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_ClientReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClients := services.NewMockClientGetter(ctrl)
	mockEntries := services.NewMockWorkEntryReader(ctrl)
	svc := services.NewReportService(mockClients, mockEntries)
	ctx := context.Background()
	email := "ana@example.com"
	clientID := int64(7)

	mockClients.EXPECT().Get(ctx, email, clientID).Return(&models.ClientDB{ID: 7, Name: "Acme"}, nil)
	mockEntries.EXPECT().List(ctx, email, &clientID).Return([]models.WorkEntryDB{
		{ID: 3, Hours: 1.1, Date: "2026-10-12"},
		{ID: 2, Hours: 2.2, Date: "2026-10-03"},
		{ID: 1, Hours: 0.5, Date: "2026-09-28"},
	}, nil)

	report, err := svc.ClientReport(ctx, email, clientID)
	require.NoError(t, err)

	assert.Equal(t, "Acme", report.Client.Name)
	assert.Equal(t, 3, report.EntryCount)
	assert.Equal(t, 3.8, report.TotalHours)
	assert.Equal(t, models.Date("2026-09-28"), *report.FirstEntryDate)
	assert.Equal(t, models.Date("2026-10-12"), *report.LastEntryDate)
}

func TestReportService_ClientReport_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClients := services.NewMockClientGetter(ctrl)
	svc := services.NewReportService(mockClients, services.NewMockWorkEntryReader(ctrl))

	mockClients.EXPECT().Get(gomock.Any(), "ana@example.com", int64(9)).Return(nil, nil)

	_, err := svc.ClientReport(context.Background(), "ana@example.com", 9)
	assert.ErrorIs(t, err, services.ErrClientNotFound)
}

func TestReportService_ExportClientCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClients := services.NewMockClientGetter(ctrl)
	mockEntries := services.NewMockWorkEntryReader(ctrl)
	svc := services.NewReportService(mockClients, mockEntries)
	clientID := int64(7)

	mockClients.EXPECT().Get(gomock.Any(), "ana@example.com", clientID).Return(&models.ClientDB{ID: 7}, nil)
	mockEntries.EXPECT().List(gomock.Any(), "ana@example.com", &clientID).Return([]models.WorkEntryDB{
		{Hours: 2, Date: "2026-10-12", Description: strPtr("design, review")},
		{Hours: 1.5, Date: "2026-10-10"},
	}, nil)

	out, err := svc.ExportClientCSV(context.Background(), "ana@example.com", clientID)
	require.NoError(t, err)

	assert.Equal(t, "Date,Hours,Description\n"+
		"2026-10-12,2.00,\"design, review\"\n"+
		"2026-10-10,1.50,\n"+
		"Total,3.50,\n", string(out))
	assert.Equal(t, "client-7-report.csv", services.CSVFilename(clientID))
}
