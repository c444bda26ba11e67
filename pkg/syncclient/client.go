// Package syncclient implements the client side of the household state
// sync protocol: load-on-start, optimistic local mutation, and debounced
// whole-document saves.
package syncclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

// State is the controller's authentication state.
type State int

const (
	// StateUnknown is the state before Start has completed.
	StateUnknown State = iota
	// StateUnauthenticated means the server rejected or lost the session.
	StateUnauthenticated
	// StateAuthenticated means the document is loaded and saves are allowed.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

const defaultDebounce = 600 * time.Millisecond

// Client keeps a local copy of the household document and syncs it with
// the server. Mutations apply locally first; saves are debounced so a
// burst of edits produces a single POST. Overlapping saves are not
// serialized beyond the debounce: last write wins on the server.
type Client struct {
	baseURL  string
	http     *http.Client
	debounce time.Duration
	log      *slog.Logger

	mu      sync.Mutex
	state   State
	doc     *domain.Document
	loaded  bool
	loadErr error
	timer   *time.Timer
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. A cookie jar is
// attached if the client has none, since the session lives in a cookie.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithDebounce overrides the save debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(c *Client) { c.debounce = d }
}

// WithLogger sets the logger used for non-fatal sync failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client pointed at the given server base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		debounce: defaultDebounce,
		log:      slog.Default(),
		state:    StateUnknown,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 15 * time.Second}
	}
	if c.http.Jar == nil {
		jar, _ := cookiejar.New(nil)
		c.http.Jar = jar
	}
	return c
}

// Start performs the initial load. A 401 leaves the client
// unauthenticated with no error; any other failure also leaves it
// unauthenticated but records the error for LoadError.
func (c *Client) Start(ctx context.Context) {
	c.load(ctx)
}

// Login authenticates with the household password and, on success, runs
// the load sequence. On rejection the client stays unauthenticated and
// the server's error message is returned.
func (c *Client) Login(ctx context.Context, password string) error {
	body, err := json.Marshal(map[string]string{"password": password})
	if err != nil {
		return fmt.Errorf("encode login request: %w", err)
	}

	resp, err := c.post(ctx, "/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login: %s", readErrorMessage(resp.Body))
	}

	c.load(ctx)
	return nil
}

// Logout cancels any pending save, revokes the session, and discards the
// local document.
func (c *Client) Logout(ctx context.Context) error {
	c.mu.Lock()
	c.stopTimerLocked()
	c.mu.Unlock()

	resp, err := c.post(ctx, "/api/auth/logout", nil)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	resp.Body.Close()

	c.mu.Lock()
	c.doc = nil
	c.loaded = false
	c.state = StateUnauthenticated
	c.mu.Unlock()

	return nil
}

// Mutate applies fn to the local document and, while authenticated,
// schedules (or reschedules) the debounced save. Mutations before the
// first successful load stay local and are never pushed.
func (c *Client) Mutate(fn func(doc *domain.Document)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.doc == nil {
		c.doc = domain.NewDefaultDocument()
		c.doc.EnsureDefaults()
	}
	fn(c.doc)

	if c.state != StateAuthenticated || !c.loaded {
		return
	}

	c.stopTimerLocked()
	c.timer = time.AfterFunc(c.debounce, func() {
		c.flush(context.Background())
	})
}

// Flush cancels the debounce timer and saves immediately. A no-op when
// the client is not authenticated or nothing has been loaded.
func (c *Client) Flush(ctx context.Context) {
	c.mu.Lock()
	c.stopTimerLocked()
	c.mu.Unlock()

	c.flush(ctx)
}

// Document returns a copy of the current local document, or nil when
// nothing is loaded.
func (c *Client) Document() *domain.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.doc == nil {
		return nil
	}
	return c.doc.Clone()
}

// State returns the current authentication state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LoadError returns the error from the last failed load, if any.
func (c *Client) LoadError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadErr
}

// Close cancels any pending save without pushing it.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimerLocked()
}

// stopTimerLocked cancels the pending debounce timer, if any. The
// caller must hold c.mu.
func (c *Client) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Client) load(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/state", nil)
	if err != nil {
		c.setLoadFailed(err)
		return
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.setLoadFailed(err)
		return
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.mu.Lock()
		c.state = StateUnauthenticated
		c.loadErr = nil
		c.mu.Unlock()
	case resp.StatusCode != http.StatusOK:
		c.setLoadFailed(fmt.Errorf("load state: unexpected status %d", resp.StatusCode))
	default:
		var doc domain.Document
		if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
			c.setLoadFailed(fmt.Errorf("decode state: %w", err))
			return
		}
		doc.EnsureDefaults()

		c.mu.Lock()
		c.doc = &doc
		c.loaded = true
		c.loadErr = nil
		c.state = StateAuthenticated
		c.mu.Unlock()
	}
}

func (c *Client) setLoadFailed(err error) {
	c.mu.Lock()
	c.state = StateUnauthenticated
	c.loadErr = fmt.Errorf("%w: %w", domain.ErrLoadFailure, err)
	c.mu.Unlock()
}

// flush pushes the current document. A 401 demotes the client to
// unauthenticated but keeps the document so nothing is lost locally.
// Other failures are logged and dropped: the next mutation reschedules.
func (c *Client) flush(ctx context.Context) {
	c.mu.Lock()
	if c.state != StateAuthenticated || !c.loaded || c.doc == nil {
		c.mu.Unlock()
		return
	}
	snapshot := c.doc.Clone()
	c.mu.Unlock()

	body, err := json.Marshal(snapshot)
	if err != nil {
		c.log.Error("encode document", slog.String("error", err.Error()))
		return
	}

	resp, err := c.post(ctx, "/api/state", bytes.NewReader(body))
	if err != nil {
		saveErr := fmt.Errorf("%w: %w", domain.ErrSaveFailure, err)
		c.log.Error("save state", slog.String("error", saveErr.Error()))
		return
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.mu.Lock()
		c.state = StateUnauthenticated
		c.mu.Unlock()
	case resp.StatusCode != http.StatusOK:
		c.log.Error("save state", slog.String("error", domain.ErrSaveFailure.Error()), slog.Int("status", resp.StatusCode))
	}
}

func (c *Client) post(ctx context.Context, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.http.Do(req)
}

func readErrorMessage(r io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil || payload.Error == "" {
		return "request failed"
	}
	return payload.Error
}
