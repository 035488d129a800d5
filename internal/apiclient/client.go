// Package apiclient is the typed HTTP client of the tracker API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sbilibin2017/freelance-tracker/internal/logger"
	"github.com/sbilibin2017/freelance-tracker/internal/models"
)

// DefaultTimeout bounds every request made with the default HTTP client.
const DefaultTimeout = 10 * time.Second

// ErrUnauthorized is returned when the server answers 401. The stored
// credentials are already cleared when it is returned.
var ErrUnauthorized = errors.New("authentication required")

// APIError is a non-2xx answer other than 401.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 answer.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// CredentialStore keeps the email of the logged in user between runs.
type CredentialStore interface {
	Email() string
	SetEmail(email string) error
	ClearEmail() error
}

// MemoryCredentials is a CredentialStore that lives for the process only.
type MemoryCredentials struct {
	mu    sync.Mutex
	email string
}

// NewMemoryCredentials returns a store holding email.
func NewMemoryCredentials(email string) *MemoryCredentials {
	return &MemoryCredentials{email: email}
}

func (m *MemoryCredentials) Email() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.email
}

func (m *MemoryCredentials) SetEmail(email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.email = email
	return nil
}

func (m *MemoryCredentials) ClearEmail() error {
	return m.SetEmail("")
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithOnUnauthorized registers a hook run after a 401 cleared the credentials,
// typically sending the user back to the login screen.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// Client talks to the tracker API on behalf of the stored user.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	creds          CredentialStore
	onUnauthorized func()
}

// New creates a Client for the API at baseURL.
func New(baseURL string, creds CredentialStore, opts ...Option) *Client {
	if creds == nil {
		creds = NewMemoryCredentials("")
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		creds:      creds,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoggedIn reports whether an email is stored.
func (c *Client) LoggedIn() bool {
	return c.creds.Email() != ""
}

// Login creates or fetches the user and stores the normalized email.
func (c *Client) Login(ctx context.Context, email string) (*models.UserDB, error) {
	var resp models.LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: email}, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, errors.New("login response carries no user")
	}
	if err := c.creds.SetEmail(resp.User.Email); err != nil {
		return nil, fmt.Errorf("store credentials: %w", err)
	}
	return resp.User, nil
}

// Logout forgets the stored email.
func (c *Client) Logout() error {
	return c.creds.ClearEmail()
}

func (c *Client) CurrentUser(ctx context.Context) (*models.UserDB, error) {
	var resp models.UserResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// DeleteAccount removes the user with all clients and entries, then logs out.
func (c *Client) DeleteAccount(ctx context.Context) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/auth/me", nil, nil); err != nil {
		return err
	}
	return c.creds.ClearEmail()
}

func (c *Client) Clients(ctx context.Context) ([]models.ClientWithStats, error) {
	var resp models.ClientsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/clients", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Clients, nil
}

func (c *Client) GetClient(ctx context.Context, id int64) (*models.ClientDB, error) {
	var resp models.ClientResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/clients/"+itoa(id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Client, nil
}

func (c *Client) CreateClient(ctx context.Context, req models.ClientRequest) (*models.ClientDB, error) {
	var resp models.ClientResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/clients", req, &resp); err != nil {
		return nil, err
	}
	return resp.Client, nil
}

// UpdateClient sends only the non-nil fields of req.
func (c *Client) UpdateClient(ctx context.Context, id int64, req models.ClientRequest) (*models.ClientDB, error) {
	var resp models.ClientResponse
	if err := c.doJSON(ctx, http.MethodPut, "/api/clients/"+itoa(id), req, &resp); err != nil {
		return nil, err
	}
	return resp.Client, nil
}

func (c *Client) DeleteClient(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/clients/"+itoa(id), nil, nil)
}

// WorkEntries lists entries newest first, only those of clientID when set.
func (c *Client) WorkEntries(ctx context.Context, clientID *int64) ([]models.WorkEntryDB, error) {
	path := "/api/work-entries"
	if clientID != nil {
		path += "?" + url.Values{"clientId": {itoa(*clientID)}}.Encode()
	}

	var resp models.WorkEntriesResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.WorkEntries, nil
}

func (c *Client) GetWorkEntry(ctx context.Context, id int64) (*models.WorkEntryDB, error) {
	var resp models.WorkEntryResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/work-entries/"+itoa(id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.WorkEntry, nil
}

func (c *Client) CreateWorkEntry(ctx context.Context, req models.WorkEntryRequest) (*models.WorkEntryDB, error) {
	var resp models.WorkEntryResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/work-entries", req, &resp); err != nil {
		return nil, err
	}
	return resp.WorkEntry, nil
}

func (c *Client) UpdateWorkEntry(ctx context.Context, id int64, req models.WorkEntryRequest) (*models.WorkEntryDB, error) {
	var resp models.WorkEntryResponse
	if err := c.doJSON(ctx, http.MethodPut, "/api/work-entries/"+itoa(id), req, &resp); err != nil {
		return nil, err
	}
	return resp.WorkEntry, nil
}

func (c *Client) DeleteWorkEntry(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/work-entries/"+itoa(id), nil, nil)
}

func (c *Client) ClientReport(ctx context.Context, clientID int64) (*models.ClientReport, error) {
	var resp models.ClientReport
	if err := c.doJSON(ctx, http.MethodGet, "/api/reports/client/"+itoa(clientID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ExportClientCSV downloads the CSV report of a client.
func (c *Client) ExportClientCSV(ctx context.Context, clientID int64) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/api/reports/export/csv/"+itoa(clientID), nil)
}

func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var resp models.DashboardStats
	if err := c.doJSON(ctx, http.MethodGet, "/api/dashboard/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Defaulters(ctx context.Context) (*models.DefaultersResponse, error) {
	var resp models.DefaultersResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/dashboard/defaulters", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DueDates(ctx context.Context) (*models.DueDates, error) {
	var resp models.DueDates
	if err := c.doJSON(ctx, http.MethodGet, "/api/dashboard/due-dates", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	var resp models.HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	data, err := c.do(ctx, method, path, in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// do sends the request with the stored email and returns the raw body of a
// 2xx answer.
func (c *Client) do(ctx context.Context, method, path string, in any) ([]byte, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if email := c.creds.Email(); email != "" {
		req.Header.Set(models.UserEmailHeader, email)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case res.StatusCode == http.StatusUnauthorized:
		if err := c.creds.ClearEmail(); err != nil {
			logger.Log.Errorw("failed to clear credentials", "err", err)
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, ErrUnauthorized
	case res.StatusCode < 200 || res.StatusCode > 299:
		var errRes models.ErrorResponse
		if err := json.Unmarshal(data, &errRes); err != nil || errRes.Error == "" {
			errRes.Error = http.StatusText(res.StatusCode)
		}
		return nil, &APIError{StatusCode: res.StatusCode, Message: errRes.Error}
	}

	return data, nil
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
