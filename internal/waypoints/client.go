package waypoints

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"homeport/internal/urls"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second
)

// Client talks to the waypoint store's HTTP API. Instances are safe for
// concurrent use; all state is immutable after construction apart from the
// embedded http.Client.
type Client struct {
	// BaseURL is the base URL for the store (e.g., "http://play.example.net:8455")
	BaseURL string

	// Token is the bearer token used to authenticate API calls
	Token string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewClient creates a new waypoint store client.
// baseURL: full base URL (e.g., "http://play.example.net:8455")
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// FetchEntries retrieves the authoritative list of homes for owner.
// The returned slice is a snapshot: the store may change at any time.
func (c *Client) FetchEntries(owner User) ([]Entry, error) {
	var entries []Entry
	if err := c.getJSON(urls.UserHomes(owner.UUID), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FetchPublicEntries retrieves all homes their owners have marked public.
func (c *Client) FetchPublicEntries() ([]Entry, error) {
	var entries []Entry
	if err := c.getJSON(urls.PublicHomes, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FetchWarps retrieves the server-wide warp list.
func (c *Client) FetchWarps() ([]Entry, error) {
	var entries []Entry
	if err := c.getJSON(urls.Warps, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateEntry creates a new home named name for owner at pos. The store
// enforces slot limits and name uniqueness; violations come back as
// validation errors with server wording.
func (c *Client) CreateEntry(owner User, name string, pos Position) (*Entry, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	body := createRequest{Name: NormalizeName(name), Position: pos}
	var entry Entry
	if err := c.postJSON(urls.UserHomes(owner.UUID), body, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteEntry removes entry from the store. Deleting an entry that no longer
// exists (or is not owned) yields a validation error.
func (c *Client) DeleteEntry(entry Entry) error {
	var path string
	switch entry.Kind {
	case KindWarp:
		path = urls.Warp(entry.Name)
	default:
		path = urls.UserHome(entry.Owner.UUID, entry.Name)
	}

	req, err := c.newRequest(http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return NewNetworkError("delete request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return NewValidationError(fmt.Sprintf("%s not found", entry.Name))
	default:
		return c.errorFromResponse(resp)
	}
}

// MaxEntries reports the per-user home slot limit. The limit is live: rank
// changes and purchases on the server side move it between calls, so callers
// must not cache it in session state.
func (c *Client) MaxEntries(user User) (int, error) {
	var info slotInfo
	if err := c.getJSON(urls.UserSlots(user.UUID), &info); err != nil {
		return 0, err
	}
	return info.Max, nil
}

// BeginTeleport requests a timed teleport of user to target. The teleport
// subsystem handles warmup, movement checks, and its own user feedback; a
// refusal surfaces here as a teleport error and nothing else.
func (c *Client) BeginTeleport(user User, target Position) error {
	body := teleportRequest{User: user, Target: target}
	payload, err := json.Marshal(body)
	if err != nil {
		return NewParseError("failed to encode teleport request", err)
	}

	req, err := c.newRequest(http.MethodPost, urls.Teleports, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return NewNetworkError("teleport request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusAccepted || resp.StatusCode == http.StatusOK {
		return nil
	}
	if resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity {
		return NewTeleportError(c.readErrorMessage(resp))
	}
	return c.errorFromResponse(resp)
}

// newRequest builds an authenticated request for path.
func (c *Client) newRequest(method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return nil, NewNetworkError(fmt.Sprintf("failed to create %s request", method), err)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	return req, nil
}

// getJSON performs a GET and decodes the JSON response into out.
func (c *Client) getJSON(path string, out interface{}) error {
	req, err := c.newRequest(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return NewNetworkError("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return c.errorFromResponse(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewNetworkError("failed to read response body", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return NewParseError("failed to parse response", err)
	}
	return nil
}

// postJSON performs a POST with a JSON body and decodes the JSON response.
func (c *Client) postJSON(path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return NewParseError("failed to encode request body", err)
	}
	req, err := c.newRequest(http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return NewNetworkError("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return c.errorFromResponse(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewNetworkError("failed to read response body", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return NewParseError("failed to parse response", err)
	}
	return nil
}

// errorFromResponse maps a non-success HTTP response to the error taxonomy.
// 400/409/422 carry store validation wording worth showing the viewer.
func (c *Client) errorFromResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return NewValidationError(c.readErrorMessage(resp))
	default:
		return NewHTTPError(resp.StatusCode, fmt.Sprintf("unexpected status code: %d", resp.StatusCode))
	}
}

// readErrorMessage extracts the store's error message from a response body,
// falling back to the HTTP status text.
func (c *Client) readErrorMessage(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil {
		var payload apiError
		if json.Unmarshal(data, &payload) == nil && payload.Message != "" {
			return payload.Message
		}
	}
	return http.StatusText(resp.StatusCode)
}
