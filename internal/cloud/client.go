// Package cloud talks to the remote JSON-document progress store: one
// document per learner plus a bulk listing of everyone. The remote is an
// optional mirror of the local store, so callers treat every failure
// here as "document absent" or "push dropped", never as a user error.
package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/oguzk/denizci/internal/identity"
	"github.com/oguzk/denizci/internal/progress"
)

// DefaultTimeout bounds every remote call.
const DefaultTimeout = 5 * time.Second

// ErrUnavailable wraps transport-level failures reaching the remote store.
var ErrUnavailable = errors.New("remote store unavailable")

// StatusError reports a non-success HTTP response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote store returned status %d", e.StatusCode)
}

// Client is an HTTP client for the remote progress store.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL. A nil httpClient
// gets a default one with DefaultTimeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// BaseURL returns the configured remote base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) userURL(name string) string {
	return c.baseURL + "/users/" + identity.EncodeKey(name) + ".json"
}

// Fetch returns the remote record for a learner, or nil when the
// document is absent. The remote may answer a missing document with
// either 404 or a literal JSON null body.
func (c *Client) Fetch(ctx context.Context, name string) (*progress.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userURL(name), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var rec *progress.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode remote record: %w", err)
	}
	return rec, nil
}

// FetchAll returns the full remote listing keyed by decoded learner
// name. An empty store comes back as an empty map. Listing entries
// whose key does not decode are skipped rather than failing the sync.
func (c *Client) FetchAll(ctx context.Context) (map[string]progress.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users.json", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return map[string]progress.Record{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var listing map[string]progress.Record
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("decode remote listing: %w", err)
	}

	records := make(map[string]progress.Record, len(listing))
	for key, rec := range listing {
		name, err := identity.DecodeKey(key)
		if err != nil {
			continue
		}
		records[name] = rec
	}
	return records, nil
}

// Push replaces a learner's remote document with the full record.
func (c *Client) Push(ctx context.Context, name string, rec progress.Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.userURL(name), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{StatusCode: resp.StatusCode}
	}
	return nil
}
