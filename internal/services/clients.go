package services

//go:generate mockgen -source=clients.go -destination=clients_mock.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/sbilibin2017/freelance-tracker/internal/logger"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
)

const maxClientNameLen = 255

var (
	ErrClientNotFound = errors.New("client not found")
	ErrInvalidClient  = errors.New("client name is required")
)

// ClientReader defines read operations for clients.
type ClientReader interface {
	List(ctx context.Context, email string) ([]models.ClientWithStats, error)
	Get(ctx context.Context, email string, id int64) (*models.ClientDB, error)
}

// ClientWriter defines write operations for clients.
type ClientWriter interface {
	Create(ctx context.Context, email string, in models.ClientInput) (*models.ClientDB, error)
	Update(ctx context.Context, email string, id int64, in models.ClientInput) (*models.ClientDB, error)
	Delete(ctx context.Context, email string, id int64) error
}

// ClientService manages the clients of one user.
type ClientService struct {
	reader ClientReader
	writer ClientWriter
}

// NewClientService creates a new ClientService.
func NewClientService(reader ClientReader, writer ClientWriter) *ClientService {
	return &ClientService{reader: reader, writer: writer}
}

func normalizeClient(in models.ClientInput) (models.ClientInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || utf8.RuneCountInString(in.Name) > maxClientNameLen {
		return in, ErrInvalidClient
	}
	if in.Description != nil {
		d := strings.TrimSpace(*in.Description)
		if d == "" {
			in.Description = nil
		} else {
			in.Description = &d
		}
	}
	return in, nil
}

// List returns the user's clients with their aggregate hours.
func (svc *ClientService) List(ctx context.Context, email string) ([]models.ClientWithStats, error) {
	clients, err := svc.reader.List(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to list clients", "email", email, "err", err)
		return nil, err
	}
	return clients, nil
}

// Get returns one client of the user.
func (svc *ClientService) Get(ctx context.Context, email string, id int64) (*models.ClientDB, error) {
	client, err := svc.reader.Get(ctx, email, id)
	if err != nil {
		logger.Log.Errorw("failed to get client", "email", email, "id", id, "err", err)
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	return client, nil
}

// Create validates and stores a new client.
func (svc *ClientService) Create(ctx context.Context, email string, in models.ClientInput) (*models.ClientDB, error) {
	in, err := normalizeClient(in)
	if err != nil {
		return nil, err
	}

	client, err := svc.writer.Create(ctx, email, in)
	if err != nil {
		logger.Log.Errorw("failed to create client", "email", email, "err", err)
		return nil, err
	}
	return client, nil
}

// Update applies the patch on top of the stored client and validates the result.
func (svc *ClientService) Update(ctx context.Context, email string, id int64, patch models.ClientPatch) (*models.ClientDB, error) {
	current, err := svc.Get(ctx, email, id)
	if err != nil {
		return nil, err
	}

	in := models.ClientInput{Name: current.Name, Description: current.Description}
	if patch.Name != nil {
		in.Name = *patch.Name
	}
	if patch.Description != nil {
		in.Description = patch.Description
	}

	in, err = normalizeClient(in)
	if err != nil {
		return nil, err
	}

	client, err := svc.writer.Update(ctx, email, id, in)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		logger.Log.Errorw("failed to update client", "email", email, "id", id, "err", err)
		return nil, err
	}
	return client, nil
}

// Delete removes the client and its work entries.
func (svc *ClientService) Delete(ctx context.Context, email string, id int64) error {
	if err := svc.writer.Delete(ctx, email, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrClientNotFound
		}
		logger.Log.Errorw("failed to delete client", "email", email, "id", id, "err", err)
		return err
	}
	return nil
}
