package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alexanderramin/checklist/internal/domain"
	"github.com/google/uuid"
)

// Credentials are the login form fields.
type Credentials struct {
	Username string
	Password string
}

// Registration are the register form fields.
type Registration struct {
	Email    string
	Username string
	Password string
}

// Client is the remote checklist API as consumed by this program.
// Authenticated calls take the bearer token explicitly.
type Client interface {
	Login(ctx context.Context, creds Credentials) (string, error)
	Register(ctx context.Context, reg Registration) error

	ListChecklists(ctx context.Context, token string) ([]domain.Checklist, error)
	CreateChecklist(ctx context.Context, token, name string) error
	DeleteChecklist(ctx context.Context, token, checklistID string) error

	ListItems(ctx context.Context, token, checklistID string) ([]domain.Item, error)
	CreateItem(ctx context.Context, token, checklistID, name string) error
	ToggleItem(ctx context.Context, token, checklistID, itemID string) error
	RenameItem(ctx context.Context, token, checklistID, itemID, name string) error
	DeleteItem(ctx context.Context, token, checklistID, itemID string) error
}

// Config configures an HTTP Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// httpClient implements Client over HTTP/JSON.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPClient creates a Client for the API rooted at cfg.BaseURL.
func NewHTTPClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) Login(ctx context.Context, creds Credentials) (string, error) {
	var out envelope[loginData]
	body := loginRequest{Username: creds.Username, Password: creds.Password}
	if err := c.do(ctx, http.MethodPost, "/api/login", "", body, &out); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if out.Data.Token == "" {
		return "", fmt.Errorf("login: %w: missing token", ErrBadResponse)
	}
	return out.Data.Token, nil
}

func (c *httpClient) Register(ctx context.Context, reg Registration) error {
	body := registerRequest{Email: reg.Email, Username: reg.Username, Password: reg.Password}
	if err := c.do(ctx, http.MethodPost, "/api/register", "", body, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func (c *httpClient) ListChecklists(ctx context.Context, token string) ([]domain.Checklist, error) {
	var out envelope[[]checklistDTO]
	if err := c.do(ctx, http.MethodGet, "/api/checklist", token, nil, &out); err != nil {
		return nil, fmt.Errorf("listing checklists: %w", err)
	}
	lists := make([]domain.Checklist, 0, len(out.Data))
	for _, d := range out.Data {
		lists = append(lists, d.toDomain())
	}
	return lists, nil
}

func (c *httpClient) CreateChecklist(ctx context.Context, token, name string) error {
	if err := c.do(ctx, http.MethodPost, "/api/checklist", token, checklistRequest{Name: name}, nil); err != nil {
		return fmt.Errorf("creating checklist: %w", err)
	}
	return nil
}

func (c *httpClient) DeleteChecklist(ctx context.Context, token, checklistID string) error {
	if err := c.do(ctx, http.MethodDelete, checklistPath(checklistID), token, nil, nil); err != nil {
		return fmt.Errorf("deleting checklist %s: %w", checklistID, err)
	}
	return nil
}

func (c *httpClient) ListItems(ctx context.Context, token, checklistID string) ([]domain.Item, error) {
	var out envelope[[]itemDTO]
	if err := c.do(ctx, http.MethodGet, checklistPath(checklistID)+"/item", token, nil, &out); err != nil {
		return nil, fmt.Errorf("listing items of checklist %s: %w", checklistID, err)
	}
	items := make([]domain.Item, 0, len(out.Data))
	for _, d := range out.Data {
		items = append(items, d.toDomain())
	}
	return items, nil
}

func (c *httpClient) CreateItem(ctx context.Context, token, checklistID, name string) error {
	path := checklistPath(checklistID) + "/item"
	if err := c.do(ctx, http.MethodPost, path, token, itemRequest{ItemName: name}, nil); err != nil {
		return fmt.Errorf("creating item: %w", err)
	}
	return nil
}

// ToggleItem flips the completion flag server-side. The request has no body.
func (c *httpClient) ToggleItem(ctx context.Context, token, checklistID, itemID string) error {
	if err := c.do(ctx, http.MethodPut, itemPath(checklistID, itemID), token, nil, nil); err != nil {
		return fmt.Errorf("toggling item %s: %w", itemID, err)
	}
	return nil
}

func (c *httpClient) RenameItem(ctx context.Context, token, checklistID, itemID, name string) error {
	path := checklistPath(checklistID) + "/item/rename/" + url.PathEscape(itemID)
	if err := c.do(ctx, http.MethodPut, path, token, itemRequest{ItemName: name}, nil); err != nil {
		return fmt.Errorf("renaming item %s: %w", itemID, err)
	}
	return nil
}

func (c *httpClient) DeleteItem(ctx context.Context, token, checklistID, itemID string) error {
	if err := c.do(ctx, http.MethodDelete, itemPath(checklistID, itemID), token, nil, nil); err != nil {
		return fmt.Errorf("deleting item %s: %w", itemID, err)
	}
	return nil
}

func checklistPath(checklistID string) string {
	return "/api/checklist/" + url.PathEscape(checklistID)
}

func itemPath(checklistID, itemID string) string {
	return checklistPath(checklistID) + "/item/" + url.PathEscape(itemID)
}

// do sends one request. body is JSON-encoded when non-nil; out, when
// non-nil, receives the decoded 2xx response body. There are no retries.
func (c *httpClient) do(ctx context.Context, method, path, token string, body, out any) error {
	start := time.Now()
	requestID := uuid.NewString()

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	status, err := c.roundTrip(ctx, method, path, token, requestID, body, out)
	if err != nil {
		err = classify(ctx, err)
	}
	c.observer.OnCallComplete(CallEvent{
		Method:    method,
		Path:      path,
		Status:    status,
		LatencyMs: time.Since(start).Milliseconds(),
		RequestID: requestID,
		Err:       err,
	})
	return err
}

func (c *httpClient) roundTrip(ctx context.Context, method, path, token, requestID string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: %v", ErrBadResponse, err)
		}
	}
	return resp.StatusCode, nil
}

// classify maps transport failures onto the package's sentinel errors.
func classify(ctx context.Context, err error) error {
	var statusErr *StatusError
	if errors.As(err, &statusErr) || errors.Is(err, ErrBadResponse) {
		return err
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
