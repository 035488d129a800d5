package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
	"github.com/sbilibin2017/freelance-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func datePtr(d models.Date) *models.Date { return &d }

func TestDashboardService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockDashboardReader(ctrl)
	svc := services.NewDashboardService(mockReader, clock)
	email := "ana@example.com"

	mockReader.EXPECT().SumHoursOn(gomock.Any(), email, models.Date("2026-10-16")).Return(3.5, nil)
	mockReader.EXPECT().SumHoursSince(gomock.Any(), email, models.Date("2026-10-09")).Return(7.25, nil)
	mockReader.EXPECT().SumHoursSince(gomock.Any(), email, models.Date("2026-09-16")).Return(20.0, nil)
	mockReader.EXPECT().CountClients(gomock.Any(), email).Return(int64(3), nil)
	mockReader.EXPECT().CountEntries(gomock.Any(), email).Return(int64(12), nil)

	stats, err := svc.Stats(context.Background(), email)
	require.NoError(t, err)

	assert.Equal(t, models.DashboardStats{
		TimeStats: models.TimeStats{HoursToday: 3.5, HoursThisWeek: 7.25, HoursThisMonth: 20},
		Summary:   models.Summary{TotalClients: 3, TotalEntries: 12},
	}, *stats)
}

func TestDashboardService_Stats_FailsOnAnyRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockDashboardReader(ctrl)
	svc := services.NewDashboardService(mockReader, clock)

	mockReader.EXPECT().SumHoursOn(gomock.Any(), gomock.Any(), gomock.Any()).Return(1.0, nil).AnyTimes()
	mockReader.EXPECT().SumHoursSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(1.0, nil).AnyTimes()
	mockReader.EXPECT().CountClients(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database is locked")).AnyTimes()
	mockReader.EXPECT().CountEntries(gomock.Any(), gomock.Any()).Return(int64(1), nil).AnyTimes()

	stats, err := svc.Stats(context.Background(), "ana@example.com")
	assert.EqualError(t, err, "database is locked")
	assert.Nil(t, stats)
}

func TestDashboardService_Defaulters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockDashboardReader(ctrl)
	svc := services.NewDashboardService(mockReader, clock)
	email := "ana@example.com"

	mockReader.EXPECT().Defaulters(gomock.Any(), email, models.Date("2026-10-09")).Return([]models.DefaulterRow{
		{ID: 4, Name: "Never"},
		{ID: 2, Name: "Stale", LastEntryDate: datePtr("2026-10-05"), TotalHours: 5},
	}, nil)

	resp, err := svc.Defaulters(context.Background(), email)
	require.NoError(t, err)
	require.Equal(t, 2, resp.Count)
	require.Len(t, resp.Defaulters, 2)

	assert.Nil(t, resp.Defaulters[0].LastEntryDate)
	assert.Nil(t, resp.Defaulters[0].DaysSinceLastEntry)

	require.NotNil(t, resp.Defaulters[1].DaysSinceLastEntry)
	assert.Equal(t, 11, *resp.Defaulters[1].DaysSinceLastEntry)
	assert.Equal(t, 5.0, resp.Defaulters[1].TotalHours)
}

func TestDashboardService_Defaulters_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockDashboardReader(ctrl)
	svc := services.NewDashboardService(mockReader, clock)

	mockReader.EXPECT().Defaulters(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	resp, err := svc.Defaulters(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.NotNil(t, resp.Defaulters)
	assert.Zero(t, resp.Count)
}

func TestDashboardService_DueDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockDashboardReader(ctrl)
	svc := services.NewDashboardService(mockReader, clock)
	email := "ana@example.com"

	t.Run("limits and window", func(t *testing.T) {
		mockReader.EXPECT().RecentEntries(gomock.Any(), email, models.Date("2026-10-09"), 10).
			Return([]models.RecentEntry{{ID: 1, ClientName: "Acme"}}, nil)
		mockReader.EXPECT().ClientActivity(gomock.Any(), email, 5).Return(nil, nil)

		due, err := svc.DueDates(context.Background(), email)
		require.NoError(t, err)
		assert.Len(t, due.RecentEntries, 1)
		assert.NotNil(t, due.UpcomingClients)
		assert.Empty(t, due.UpcomingClients)
	})

	t.Run("read error", func(t *testing.T) {
		mockReader.EXPECT().RecentEntries(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error")).AnyTimes()
		mockReader.EXPECT().ClientActivity(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		due, err := svc.DueDates(context.Background(), email)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, due)
	})
}
