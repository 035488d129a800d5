package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/freelance-tracker/internal/models"
)

// EmailGetter returns the authenticated user's email stored in the context.
type EmailGetter func(ctx context.Context) (string, bool)

const (
	msgAuthRequired  = "Authentication required"
	msgInternalError = "Internal server error"
	msgInvalidBody   = "Invalid request body"
)

var errInvalidID = errors.New("invalid id")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// requireEmail writes a 401 and returns false when the request carries no user.
func requireEmail(w http.ResponseWriter, r *http.Request, emailGetter EmailGetter) (string, bool) {
	email, ok := emailGetter(r.Context())
	if !ok || email == "" {
		writeError(w, http.StatusUnauthorized, msgAuthRequired)
		return "", false
	}
	return email, true
}

// idParam parses the positive integer route parameter name.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
