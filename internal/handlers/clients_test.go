package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
	"github.com/sbilibin2017/freelance-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func testClient() *models.ClientDB {
	return &models.ClientDB{
		ID:          7,
		Name:        "Acme Corp",
		Description: strPtr("Website redesign"),
		UserEmail:   testEmail,
	}
}

func TestListClientsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockClientLister(ctrl)

	withStats := []models.ClientWithStats{
		{ClientDB: *testClient(), TotalHours: 12.5, EntryCount: 3},
	}

	tests := []struct {
		name         string
		email        string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name:  "success",
			email: testEmail,
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), testEmail).Return(withStats, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: mustJSON(t, models.ClientsResponse{Clients: withStats}),
		},
		{
			name:  "empty list",
			email: testEmail,
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), testEmail).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"clients":[]}`,
		},
		{
			name:         "unauthenticated",
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Authentication required"}`,
		},
		{
			name:  "internal error",
			email: testEmail,
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), testEmail).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewListClientsHandler(mockSvc, emailGetter(tt.email)).
				ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/clients", nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestGetClientHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockClientGetter(ctrl)

	tests := []struct {
		name         string
		id           string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			id:   "7",
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), testEmail, int64(7)).Return(testClient(), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: mustJSON(t, models.ClientResponse{Client: testClient()}),
		},
		{
			name:         "invalid id",
			id:           "abc",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid client ID"}`,
		},
		{
			name: "not found",
			id:   "8",
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), testEmail, int64(8)).Return(nil, services.ErrClientNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Client not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/clients/"+tt.id, nil), "id", tt.id)
			w := httptest.NewRecorder()

			NewGetClientHandler(mockSvc, emailGetter(testEmail)).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestCreateClientHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockClientCreator(ctrl)

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"name":"Acme Corp","description":"Website redesign"}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), testEmail, models.ClientInput{
						Name:        "Acme Corp",
						Description: strPtr("Website redesign"),
					}).
					Return(testClient(), nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: mustJSON(t, models.ClientResponse{Client: testClient()}),
		},
		{
			name: "missing name",
			body: `{"description":"x"}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), testEmail, models.ClientInput{Description: strPtr("x")}).
					Return(nil, services.ErrInvalidClient)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Client name is required"}`,
		},
		{
			name:         "invalid JSON",
			body:         "{",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewCreateClientHandler(mockSvc, emailGetter(testEmail)).
				ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestUpdateClientHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockClientUpdater(ctrl)

	tests := []struct {
		name         string
		id           string
		body         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "partial update",
			id:   "7",
			body: `{"description":""}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), testEmail, int64(7), models.ClientPatch{Description: strPtr("")}).
					Return(&models.ClientDB{ID: 7, Name: "Acme Corp", UserEmail: testEmail}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: mustJSON(t, models.ClientResponse{Client: &models.ClientDB{ID: 7, Name: "Acme Corp", UserEmail: testEmail}}),
		},
		{
			name: "blank name",
			id:   "7",
			body: `{"name":"  "}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), testEmail, int64(7), models.ClientPatch{Name: strPtr("  ")}).
					Return(nil, services.ErrInvalidClient)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Client name is required"}`,
		},
		{
			name: "not found",
			id:   "9",
			body: `{"name":"Other"}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), testEmail, int64(9), models.ClientPatch{Name: strPtr("Other")}).
					Return(nil, services.ErrClientNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Client not found"}`,
		},
		{
			name:         "invalid id",
			id:           "0",
			body:         `{}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid client ID"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPut, "/api/clients/"+tt.id, strings.NewReader(tt.body))
			req = withURLParam(req, "id", tt.id)
			w := httptest.NewRecorder()

			NewUpdateClientHandler(mockSvc, emailGetter(testEmail)).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestDeleteClientHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockClientDeleter(ctrl)

	tests := []struct {
		name         string
		mockErr      error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "success",
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Client deleted successfully"}`,
		},
		{
			name:         "not found",
			mockErr:      services.ErrClientNotFound,
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Client not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc.EXPECT().Delete(gomock.Any(), testEmail, int64(7)).Return(tt.mockErr)

			req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/clients/7", nil), "id", "7")
			w := httptest.NewRecorder()

			NewDeleteClientHandler(mockSvc, emailGetter(testEmail)).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
