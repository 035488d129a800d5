package handlers

//go:generate mockgen -source=clients.go -destination=clients_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/freelance-tracker/internal/logger"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
	"github.com/sbilibin2017/freelance-tracker/internal/services"
)

// ClientLister lists the user's clients.
type ClientLister interface {
	List(ctx context.Context, email string) ([]models.ClientWithStats, error)
}

// ClientGetter returns one client.
type ClientGetter interface {
	Get(ctx context.Context, email string, id int64) (*models.ClientDB, error)
}

// ClientCreator creates a client.
type ClientCreator interface {
	Create(ctx context.Context, email string, in models.ClientInput) (*models.ClientDB, error)
}

// ClientUpdater applies a partial update to a client.
type ClientUpdater interface {
	Update(ctx context.Context, email string, id int64, patch models.ClientPatch) (*models.ClientDB, error)
}

// ClientDeleter deletes a client and its work entries.
type ClientDeleter interface {
	Delete(ctx context.Context, email string, id int64) error
}

// writeClientError maps client service errors to HTTP statuses.
func writeClientError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidClient):
		writeError(w, http.StatusBadRequest, "Client name is required")
	case errors.Is(err, services.ErrClientNotFound):
		writeError(w, http.StatusNotFound, "Client not found")
	default:
		logger.Log.Errorw("client request failed", "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
	}
}

// NewListClientsHandler returns an HTTP handler listing the user's clients.
// @Summary List clients
// @Description Returns the clients of the user ordered by name, each with total hours and entry count
// @Tags clients
// @Produce json
// @Success 200 {object} models.ClientsResponse
// @Failure 401 {object} models.ErrorResponse "Authentication required"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/clients [get]
// @Security UserEmail
func NewListClientsHandler(svc ClientLister, emailGetter EmailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireEmail(w, r, emailGetter)
		if !ok {
			return
		}

		clients, err := svc.List(r.Context(), email)
		if err != nil {
			writeClientError(w, err)
			return
		}
		if clients == nil {
			clients = []models.ClientWithStats{}
		}

		writeJSON(w, http.StatusOK, models.ClientsResponse{Clients: clients})
	}
}

// NewGetClientHandler returns an HTTP handler for one client.
// @Summary Get client
// @Tags clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} models.ClientResponse
// @Failure 400 {object} models.ErrorResponse "Invalid client ID"
// @Failure 404 {object} models.ErrorResponse "Client not found"
// @Router /api/clients/{id} [get]
// @Security UserEmail
func NewGetClientHandler(svc ClientGetter, emailGetter EmailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireEmail(w, r, emailGetter)
		if !ok {
			return
		}

		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid client ID")
			return
		}

		client, err := svc.Get(r.Context(), email, id)
		if err != nil {
			writeClientError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.ClientResponse{Client: client})
	}
}

// NewCreateClientHandler returns an HTTP handler creating a client.
// @Summary Create client
// @Tags clients
// @Accept json
// @Produce json
// @Param request body models.ClientRequest true "Client"
// @Success 201 {object} models.ClientResponse
// @Failure 400 {object} models.ErrorResponse "Client name is required"
// @Failure 401 {object} models.ErrorResponse "Authentication required"
// @Router /api/clients [post]
// @Security UserEmail
func NewCreateClientHandler(svc ClientCreator, emailGetter EmailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireEmail(w, r, emailGetter)
		if !ok {
			return
		}

		var req models.ClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		in := models.ClientInput{Description: req.Description}
		if req.Name != nil {
			in.Name = *req.Name
		}

		client, err := svc.Create(r.Context(), email, in)
		if err != nil {
			writeClientError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.ClientResponse{Client: client})
	}
}

// NewUpdateClientHandler returns an HTTP handler updating a client.
// @Summary Update client
// @Description Omitted fields keep their value; an empty description clears it
// @Tags clients
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param request body models.ClientRequest true "Client fields"
// @Success 200 {object} models.ClientResponse
// @Failure 400 {object} models.ErrorResponse "Client name is required"
// @Failure 404 {object} models.ErrorResponse "Client not found"
// @Router /api/clients/{id} [put]
// @Security UserEmail
func NewUpdateClientHandler(svc ClientUpdater, emailGetter EmailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireEmail(w, r, emailGetter)
		if !ok {
			return
		}

		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid client ID")
			return
		}

		var req models.ClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		client, err := svc.Update(r.Context(), email, id, models.ClientPatch{
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			writeClientError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.ClientResponse{Client: client})
	}
}

// NewDeleteClientHandler returns an HTTP handler deleting a client.
// @Summary Delete client
// @Description Deletes the client and all of its work entries
// @Tags clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse "Client not found"
// @Router /api/clients/{id} [delete]
// @Security UserEmail
func NewDeleteClientHandler(svc ClientDeleter, emailGetter EmailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := requireEmail(w, r, emailGetter)
		if !ok {
			return
		}

		id, err := idParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid client ID")
			return
		}

		if err := svc.Delete(r.Context(), email, id); err != nil {
			writeClientError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Client deleted successfully"})
	}
}
