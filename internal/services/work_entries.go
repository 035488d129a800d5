package services

//go:generate mockgen -source=work_entries.go -destination=work_entries_mock.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/freelance-tracker/internal/logger"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
)

const maxHoursPerEntry = 24

var (
	ErrWorkEntryNotFound = errors.New("work entry not found")
	ErrInvalidWorkEntry  = errors.New("invalid work entry")
)

// WorkEntryReader defines read operations for work entries.
type WorkEntryReader interface {
	List(ctx context.Context, email string, clientID *int64) ([]models.WorkEntryDB, error)
	Get(ctx context.Context, email string, id int64) (*models.WorkEntryDB, error)
}

// WorkEntryWriter defines write operations for work entries.
type WorkEntryWriter interface {
	Create(ctx context.Context, email string, in models.WorkEntryInput) (int64, error)
	Update(ctx context.Context, email string, id int64, in models.WorkEntryInput) error
	Delete(ctx context.Context, email string, id int64) error
}

// ClientGetter looks up one client of a user.
type ClientGetter interface {
	Get(ctx context.Context, email string, id int64) (*models.ClientDB, error)
}

// WorkEntryService manages the work entries of one user.
type WorkEntryService struct {
	reader  WorkEntryReader
	writer  WorkEntryWriter
	clients ClientGetter
}

// NewWorkEntryService creates a new WorkEntryService.
func NewWorkEntryService(reader WorkEntryReader, writer WorkEntryWriter, clients ClientGetter) *WorkEntryService {
	return &WorkEntryService{
		reader:  reader,
		writer:  writer,
		clients: clients,
	}
}

func normalizeWorkEntry(in models.WorkEntryInput) (models.WorkEntryInput, error) {
	if in.ClientID <= 0 {
		return in, fmt.Errorf("%w: client id is required", ErrInvalidWorkEntry)
	}
	if in.Hours <= 0 || in.Hours > maxHoursPerEntry {
		return in, fmt.Errorf("%w: hours must be between 0 and 24", ErrInvalidWorkEntry)
	}
	in.Hours = models.RoundHours(in.Hours)
	if in.Hours <= 0 {
		return in, fmt.Errorf("%w: hours must be between 0 and 24", ErrInvalidWorkEntry)
	}

	date, err := models.ParseDate(string(in.Date))
	if err != nil {
		return in, fmt.Errorf("%w: %s", ErrInvalidWorkEntry, err.Error())
	}
	in.Date = date

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

// ensureClient rejects a client that is missing or owned by someone else.
func (svc *WorkEntryService) ensureClient(ctx context.Context, email string, clientID int64) error {
	client, err := svc.clients.Get(ctx, email, clientID)
	if err != nil {
		logger.Log.Errorw("failed to get client", "email", email, "clientID", clientID, "err", err)
		return err
	}
	if client == nil {
		return ErrClientNotFound
	}
	return nil
}

// List returns the user's entries, optionally only those of one client.
func (svc *WorkEntryService) List(ctx context.Context, email string, clientID *int64) ([]models.WorkEntryDB, error) {
	entries, err := svc.reader.List(ctx, email, clientID)
	if err != nil {
		logger.Log.Errorw("failed to list work entries", "email", email, "err", err)
		return nil, err
	}
	return entries, nil
}

// Get returns one entry of the user.
func (svc *WorkEntryService) Get(ctx context.Context, email string, id int64) (*models.WorkEntryDB, error) {
	entry, err := svc.reader.Get(ctx, email, id)
	if err != nil {
		logger.Log.Errorw("failed to get work entry", "email", email, "id", id, "err", err)
		return nil, err
	}
	if entry == nil {
		return nil, ErrWorkEntryNotFound
	}
	return entry, nil
}

// Create validates the entry, checks the client belongs to the user and
// stores the entry.
func (svc *WorkEntryService) Create(ctx context.Context, email string, in models.WorkEntryInput) (*models.WorkEntryDB, error) {
	in, err := normalizeWorkEntry(in)
	if err != nil {
		return nil, err
	}
	if err := svc.ensureClient(ctx, email, in.ClientID); err != nil {
		return nil, err
	}

	id, err := svc.writer.Create(ctx, email, in)
	if err != nil {
		logger.Log.Errorw("failed to create work entry", "email", email, "err", err)
		return nil, err
	}

	return svc.Get(ctx, email, id)
}

// Update applies the patch on top of the stored entry, validates the result
// and checks the resulting client belongs to the user.
func (svc *WorkEntryService) Update(ctx context.Context, email string, id int64, patch models.WorkEntryPatch) (*models.WorkEntryDB, error) {
	current, err := svc.Get(ctx, email, id)
	if err != nil {
		return nil, err
	}

	in := models.WorkEntryInput{
		ClientID:    current.ClientID,
		Hours:       current.Hours,
		Description: current.Description,
		Date:        current.Date,
	}
	if patch.ClientID != nil {
		in.ClientID = *patch.ClientID
	}
	if patch.Hours != nil {
		in.Hours = *patch.Hours
	}
	if patch.Description != nil {
		in.Description = patch.Description
	}
	if patch.Date != nil {
		in.Date = *patch.Date
	}

	in, err = normalizeWorkEntry(in)
	if err != nil {
		return nil, err
	}
	if err := svc.ensureClient(ctx, email, in.ClientID); err != nil {
		return nil, err
	}

	if err := svc.writer.Update(ctx, email, id, in); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWorkEntryNotFound
		}
		logger.Log.Errorw("failed to update work entry", "email", email, "id", id, "err", err)
		return nil, err
	}

	return svc.Get(ctx, email, id)
}

// Delete removes one entry.
func (svc *WorkEntryService) Delete(ctx context.Context, email string, id int64) error {
	if err := svc.writer.Delete(ctx, email, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrWorkEntryNotFound
		}
		logger.Log.Errorw("failed to delete work entry", "email", email, "id", id, "err", err)
		return err
	}
	return nil
}
