package handlers

//go:generate mockgen -source=work_entries.go -destination=work_entries_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/freelance-tracker/internal/logger"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
	"github.com/sbilibin2017/freelance-tracker/internal/services"
)

// WorkEntryLister lists work entries, optionally of one client.
type WorkEntryLister interface {
	List(ctx context.Context, email string, clientID *int64) ([]models.WorkEntryDB, error)
}

// WorkEntryGetter returns one work entry.
type WorkEntryGetter interface {
	Get(ctx context.Context, email string, id int64) (*models.WorkEntryDB, error)
}

// WorkEntryCreator creates a work entry.
type WorkEntryCreator interface {
	Create(ctx context.Context, email string, in models.WorkEntryInput) (*models.WorkEntryDB, error)
}

// WorkEntryUpdater applies a partial update to a work entry.
type WorkEntryUpdater interface {
	Update(ctx context.Context, email string, id int64, patch models.WorkEntryPatch) (*models.WorkEntryDB, error)
}

// WorkEntryDeleter deletes a work entry.
type WorkEntryDeleter interface {
	Delete(ctx context.Context, email string, id int64) error
}

// writeWorkEntryError maps work entry service errors to HTTP statuses.
func writeWorkEntryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidWorkEntry):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrClientNotFound):
		writeError(w, http.StatusNotFound, "Client not found")
	case errors.Is(err, services.ErrWorkEntryNotFound):
		writeError(w, http.StatusNotFound, "Work entry not found")
	default:
		logger.Log.Errorw("work entry request failed", "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
	}
}

// NewListWorkEntriesHandler returns an HTTP handler listing work entries.
// @Summary List work entries
// @Tags work-entries
// @Produce json
// @Param clientId query int false "Only entries of this client"
// @Success 200 {object} models.WorkEntriesResponse
// @Failure 400 {object} models.ErrorResponse "Invalid client ID"
// @Failure 401 {object} models.ErrorResponse "Authentication required"
// @Router /api/work-entries [get]
// @Security UserEmail
func NewListWorkEntriesHandler(svc WorkEntryLister, emailGetter EmailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireEmail(w, r, emailGetter)
		if !ok {
			return
		}

		var clientID *int64
		if raw := r.URL.Query().Get("clientId"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				writeError(w, http.StatusBadRequest, "Invalid client ID")
				return
			}
			clientID = &id
		}

		entries, err := svc.List(r.Context(), email, clientID)
		if err != nil {
			writeWorkEntryError(w, err)
			return
		}
		if entries == nil {
			entries = []models.WorkEntryDB{}
		}

		writeJSON(w, http.StatusOK, models.WorkEntriesResponse{WorkEntries: entries})
	}
}

// NewGetWorkEntryHandler returns an HTTP handler for one work entry.
// @Summary Get work entry
// @Tags work-entries
// @Produce json
// @Param id path int true "Work entry ID"
// @Success 200 {object} models.WorkEntryResponse
// @Failure 404 {object} models.ErrorResponse "Work entry not found"
// @Router /api/work-entries/{id} [get]
// @Security UserEmail
func NewGetWorkEntryHandler(svc WorkEntryGetter, emailGetter EmailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireEmail(w, r, emailGetter)
		if !ok {
			return
		}

		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid work entry ID")
			return
		}

		entry, err := svc.Get(r.Context(), email, id)
		if err != nil {
			writeWorkEntryError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.WorkEntryResponse{WorkEntry: entry})
	}
}

// NewCreateWorkEntryHandler returns an HTTP handler creating a work entry.
// @Summary Create work entry
// @Description The client must belong to the authenticated user
// @Tags work-entries
// @Accept json
// @Produce json
// @Param request body models.WorkEntryRequest true "Work entry"
// @Success 201 {object} models.WorkEntryResponse
// @Failure 400 {object} models.ErrorResponse "Client ID, hours, and date are required"
// @Failure 404 {object} models.ErrorResponse "Client not found"
// @Router /api/work-entries [post]
// @Security UserEmail
func NewCreateWorkEntryHandler(svc WorkEntryCreator, emailGetter EmailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireEmail(w, r, emailGetter)
		if !ok {
			return
		}

		var req models.WorkEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		if req.ClientID == nil || req.Hours == nil || req.Date == nil {
			writeError(w, http.StatusBadRequest, "Client ID, hours, and date are required")
			return
		}

		entry, err := svc.Create(r.Context(), email, models.WorkEntryInput{
			ClientID:    *req.ClientID,
			Hours:       *req.Hours,
			Description: req.Description,
			Date:        models.Date(*req.Date),
		})
		if err != nil {
			writeWorkEntryError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.WorkEntryResponse{WorkEntry: entry})
	}
}

// NewUpdateWorkEntryHandler returns an HTTP handler updating a work entry.
// @Summary Update work entry
// @Description Omitted fields keep their value
// @Tags work-entries
// @Accept json
// @Produce json
// @Param id path int true "Work entry ID"
// @Param request body models.WorkEntryRequest true "Work entry fields"
// @Success 200 {object} models.WorkEntryResponse
// @Failure 400 {object} models.ErrorResponse "Invalid work entry"
// @Failure 404 {object} models.ErrorResponse "Work entry not found"
// @Router /api/work-entries/{id} [put]
// @Security UserEmail
func NewUpdateWorkEntryHandler(svc WorkEntryUpdater, emailGetter EmailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireEmail(w, r, emailGetter)
		if !ok {
			return
		}

		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid work entry ID")
			return
		}

		var req models.WorkEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		entry, err := svc.Update(r.Context(), email, id, req.Patch())
		if err != nil {
			writeWorkEntryError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.WorkEntryResponse{WorkEntry: entry})
	}
}

// NewDeleteWorkEntryHandler returns an HTTP handler deleting a work entry.
// @Summary Delete work entry
// @Tags work-entries
// @Produce json
// @Param id path int true "Work entry ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse "Work entry not found"
// @Router /api/work-entries/{id} [delete]
// @Security UserEmail
func NewDeleteWorkEntryHandler(svc WorkEntryDeleter, emailGetter EmailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireEmail(w, r, emailGetter)
		if !ok {
			return
		}

		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid work entry ID")
			return
		}

		if err := svc.Delete(r.Context(), email, id); err != nil {
			writeWorkEntryError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Work entry deleted successfully"})
	}
}
