package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// API is the remote surface the Board synchronizes against. *Client is the
// HTTP implementation; tests substitute their own.
type API interface {
	List(ctx context.Context) ([]Job, error)
	Create(ctx context.Context, j Job) (Job, error)
	CreateBatch(ctx context.Context, jobs []Job) ([]Job, error)
	Update(ctx context.Context, id string, p Patch) (Job, error)
	Delete(ctx context.Context, id string) error
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the HuntBoard applications API. The bearer token is held
// explicitly on the client and attached to every outbound call; there is no
// process-global credential state.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewClient returns a Client for the API at baseURL (e.g.
// "http://localhost:5000") authenticating with token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// WithToken returns a copy of the client using a different bearer token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// List fetches every record owned by the authenticated user.
func (c *Client) List(ctx context.Context) ([]Job, error) {
	var wire []wireApplication
	if err := c.do(ctx, http.MethodGet, "/api/applications", nil, &wire); err != nil {
		return nil, err
	}

	jobs := make([]Job, 0, len(wire))
	for _, w := range wire {
		jobs = append(jobs, fromWire(w))
	}
	return jobs, nil
}

// Create persists one record and returns it with the server-assigned id.
// Any client-side (temporary) id is stripped before sending.
func (c *Client) Create(ctx context.Context, j Job) (Job, error) {
	wj := toWire(j)
	wj.ID = ""

	var created wireApplication
	if err := c.do(ctx, http.MethodPost, "/api/applications", wj, &created); err != nil {
		return Job{}, err
	}
	return fromWire(created), nil
}

// CreateBatch persists an ordered list of records in one request.
func (c *Client) CreateBatch(ctx context.Context, jobs []Job) ([]Job, error) {
	wire := make([]wireApplication, 0, len(jobs))
	for _, j := range jobs {
		wj := toWire(j)
		wj.ID = ""
		wire = append(wire, wj)
	}

	var created []wireApplication
	if err := c.do(ctx, http.MethodPost, "/api/applications", wire, &created); err != nil {
		return nil, err
	}

	out := make([]Job, 0, len(created))
	for _, w := range created {
		out = append(out, fromWire(w))
	}
	return out, nil
}

// Update applies a partial update and returns the updated record.
func (c *Client) Update(ctx context.Context, id string, p Patch) (Job, error) {
	var updated wireApplication
	if err := c.do(ctx, http.MethodPatch, "/api/applications/"+id, toWirePatch(p), &updated); err != nil {
		return Job{}, err
	}
	return fromWire(updated), nil
}

// Delete removes a record.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/applications/"+id, nil, nil)
}

// do issues one JSON request and decodes the response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		buf = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
