package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/freelance-tracker/internal/logger"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
	"github.com/sbilibin2017/freelance-tracker/internal/services"
)

// UserEmailHeader is the header AuthMiddleware reads the caller email from.
const UserEmailHeader = models.UserEmailHeader

// Authenticator defines the minimal interface needed by the middleware
type Authenticator interface {
	Authenticate(ctx context.Context, rawEmail string) (string, error)
}

type userEmailKey struct{}

// WithUserEmail stores the authenticated email in the context.
func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey{}, email)
}

// UserEmailFromContext returns the authenticated email, if any.
func UserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey{}).(string)
	return email, ok && email != ""
}

// AuthMiddleware returns a middleware that resolves the x-user-email header,
// creates the user on first sight and stores the email in the request context.
func AuthMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw := r.Header.Get(UserEmailHeader)
			if raw == "" {
				writeError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			email, err := auth.Authenticate(ctx, raw)
			if err != nil {
				if errors.Is(err, services.ErrInvalidEmail) {
					logger.Log.Warnw("authorization failed", "header", raw, "err", err)
					writeError(w, http.StatusUnauthorized, "Authentication required")
					return
				}
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserEmail(ctx, email)))
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
