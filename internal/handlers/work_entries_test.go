package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
	"github.com/sbilibin2017/freelance-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func testWorkEntry() *models.WorkEntryDB {
	return &models.WorkEntryDB{
		ID:          3,
		ClientID:    7,
		ClientName:  "Acme Corp",
		UserEmail:   testEmail,
		Hours:       2.5,
		Description: strPtr("Sprint planning"),
		Date:        "2026-10-16",
	}
}

func TestListWorkEntriesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWorkEntryLister(ctrl)

	entries := []models.WorkEntryDB{*testWorkEntry()}

	tests := []struct {
		name         string
		target       string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name:   "all entries",
			target: "/api/work-entries",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), testEmail, (*int64)(nil)).Return(entries, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: mustJSON(t, models.WorkEntriesResponse{WorkEntries: entries}),
		},
		{
			name:   "filtered by client",
			target: "/api/work-entries?clientId=7",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), testEmail, int64Ptr(7)).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"workEntries":[]}`,
		},
		{
			name:         "invalid client filter",
			target:       "/api/work-entries?clientId=x",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid client ID"}`,
		},
		{
			name:   "internal error",
			target: "/api/work-entries",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), testEmail, (*int64)(nil)).Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewListWorkEntriesHandler(mockSvc, emailGetter(testEmail)).
				ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestGetWorkEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWorkEntryGetter(ctrl)

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), testEmail, int64(3)).Return(testWorkEntry(), nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/work-entries/3", nil), "id", "3")
		w := httptest.NewRecorder()
		NewGetWorkEntryHandler(mockSvc, emailGetter(testEmail)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, mustJSON(t, models.WorkEntryResponse{WorkEntry: testWorkEntry()}), w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), testEmail, int64(4)).Return(nil, services.ErrWorkEntryNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/work-entries/4", nil), "id", "4")
		w := httptest.NewRecorder()
		NewGetWorkEntryHandler(mockSvc, emailGetter(testEmail)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Work entry not found"}`, w.Body.String())
	})

	t.Run("invalid id", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/work-entries/x", nil), "id", "x")
		w := httptest.NewRecorder()
		NewGetWorkEntryHandler(mockSvc, emailGetter(testEmail)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid work entry ID"}`, w.Body.String())
	})
}

func TestCreateWorkEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWorkEntryCreator(ctrl)

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"clientId":7,"hours":2.5,"description":"Sprint planning","date":"2026-10-16"}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), testEmail, models.WorkEntryInput{
						ClientID:    7,
						Hours:       2.5,
						Description: strPtr("Sprint planning"),
						Date:        "2026-10-16",
					}).
					Return(testWorkEntry(), nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: mustJSON(t, models.WorkEntryResponse{WorkEntry: testWorkEntry()}),
		},
		{
			name:         "missing date",
			body:         `{"clientId":7,"hours":2.5}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Client ID, hours, and date are required"}`,
		},
		{
			name: "hours out of range",
			body: `{"clientId":7,"hours":25,"date":"2026-10-16"}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), testEmail, models.WorkEntryInput{ClientID: 7, Hours: 25, Date: "2026-10-16"}).
					Return(nil, fmt.Errorf("%w: hours must be between 0 and 24", services.ErrInvalidWorkEntry))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid work entry: hours must be between 0 and 24"}`,
		},
		{
			name: "foreign client",
			body: `{"clientId":99,"hours":1,"date":"2026-10-16"}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), testEmail, models.WorkEntryInput{ClientID: 99, Hours: 1, Date: "2026-10-16"}).
					Return(nil, services.ErrClientNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Client not found"}`,
		},
		{
			name:         "invalid JSON",
			body:         `{"hours":"two"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewCreateWorkEntryHandler(mockSvc, emailGetter(testEmail)).
				ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/work-entries", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestUpdateWorkEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWorkEntryUpdater(ctrl)

	date := models.Date("2026-10-15")

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "hours and date",
			body: `{"hours":3,"date":"2026-10-15"}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), testEmail, int64(3), models.WorkEntryPatch{
						Hours: float64Ptr(3),
						Date:  &date,
					}).
					Return(testWorkEntry(), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: mustJSON(t, models.WorkEntryResponse{WorkEntry: testWorkEntry()}),
		},
		{
			name: "move to foreign client",
			body: `{"clientId":99}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), testEmail, int64(3), models.WorkEntryPatch{ClientID: int64Ptr(99)}).
					Return(nil, services.ErrClientNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Client not found"}`,
		},
		{
			name: "missing entry",
			body: `{}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), testEmail, int64(3), models.WorkEntryPatch{}).
					Return(nil, services.ErrWorkEntryNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Work entry not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPut, "/api/work-entries/3", strings.NewReader(tt.body))
			req = withURLParam(req, "id", "3")
			w := httptest.NewRecorder()

			NewUpdateWorkEntryHandler(mockSvc, emailGetter(testEmail)).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestDeleteWorkEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWorkEntryDeleter(ctrl)

	tests := []struct {
		name         string
		mockErr      error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "success",
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Work entry deleted successfully"}`,
		},
		{
			name:         "not found",
			mockErr:      services.ErrWorkEntryNotFound,
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Work entry not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc.EXPECT().Delete(gomock.Any(), testEmail, int64(3)).Return(tt.mockErr)

			req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/work-entries/3", nil), "id", "3")
			w := httptest.NewRecorder()

			NewDeleteWorkEntryHandler(mockSvc, emailGetter(testEmail)).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
