package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmail = "jane@example.com"

func emailGetter(email string) EmailGetter {
	return func(ctx context.Context) (string, bool) {
		return email, email != ""
	}
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestRequireEmail(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		expectedOK bool
		expectedSC int
	}{
		{name: "present", email: testEmail, expectedOK: true, expectedSC: http.StatusOK},
		{name: "missing", email: "", expectedOK: false, expectedSC: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			email, ok := requireEmail(w, r, emailGetter(tt.email))

			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.email, email)
			assert.Equal(t, tt.expectedSC, w.Code)
			if !ok {
				assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String())
			}
		})
	}
}

func TestIDParam(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int64
		wantErr  bool
	}{
		{name: "positive", value: "42", expected: 42},
		{name: "zero", value: "0", wantErr: true},
		{name: "negative", value: "-3", wantErr: true},
		{name: "not a number", value: "abc", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", tt.value)

			id, err := idParam(r, "id")
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}
