package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"net/mail"
	"strings"

	"github.com/sbilibin2017/freelance-tracker/internal/logger"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
)

// Error variables
var (
	ErrInvalidEmail = errors.New("valid email is required")
	ErrUserNotFound = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Ensure(ctx context.Context, email string) error
	Delete(ctx context.Context, email string) error
}

// AuthService handles the header based identity of a user.
type AuthService struct {
	reader UserReader
	writer UserWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
	}
}

// NormalizeEmail trims and lowercases raw and checks it is a bare address.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// Authenticate resolves the raw identity header to a normalized email and
// makes sure the user row exists.
func (svc *AuthService) Authenticate(ctx context.Context, rawEmail string) (string, error) {
	email, err := NormalizeEmail(rawEmail)
	if err != nil {
		return "", err
	}

	if err := svc.writer.Ensure(ctx, email); err != nil {
		logger.Log.Errorw("failed to ensure user", "email", email, "err", err)
		return "", err
	}

	return email, nil
}

// Login authenticates the email and returns the stored user.
func (svc *AuthService) Login(ctx context.Context, rawEmail string) (*models.UserDB, error) {
	email, err := svc.Authenticate(ctx, rawEmail)
	if err != nil {
		return nil, err
	}
	return svc.Me(ctx, email)
}

// Me returns the stored user.
func (svc *AuthService) Me(ctx context.Context, email string) (*models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// DeleteAccount removes the user together with their clients and entries.
func (svc *AuthService) DeleteAccount(ctx context.Context, email string) error {
	if err := svc.writer.Delete(ctx, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		logger.Log.Errorw("failed to delete user", "email", email, "err", err)
		return err
	}
	logger.Log.Infow("user deleted", "email", email)
	return nil
}
