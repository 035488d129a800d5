package handlers

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/freelance-tracker/internal/logger"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
	"github.com/sbilibin2017/freelance-tracker/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email string) (*models.UserDB, error)
}

// UserGetter returns the stored user.
type UserGetter interface {
	Me(ctx context.Context, email string) (*models.UserDB, error)
}

// AccountDeleter removes a user with everything they own.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, email string) error
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Creates the user on first login and returns it. The email is then sent as the x-user-email header.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Valid email is required"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, err := svc.Login(r.Context(), req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidEmail):
				writeError(w, http.StatusBadRequest, "Valid email is required")
			default:
				logger.Log.Errorw("login failed", "err", err)
				writeError(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.LoginResponse{
			Message: "Login successful",
			User:    user,
		})
	}
}

// NewMeHandler returns an HTTP handler for the current user.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} models.ErrorResponse "Authentication required"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /api/auth/me [get]
// @Security UserEmail
func NewMeHandler(svc UserGetter, emailGetter EmailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireEmail(w, r, emailGetter)
		if !ok {
			return
		}

		user, err := svc.Me(r.Context(), email)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, models.UserResponse{User: user})
	}
}

// NewDeleteAccountHandler returns an HTTP handler that deletes the current
// user together with all their clients and work entries.
// @Summary Delete account
// @Tags auth
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} models.ErrorResponse "Authentication required"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /api/auth/me [delete]
// @Security UserEmail
func NewDeleteAccountHandler(svc AccountDeleter, emailGetter EmailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireEmail(w, r, emailGetter)
		if !ok {
			return
		}

		if err := svc.DeleteAccount(r.Context(), email); err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Account deleted successfully"})
	}
}
