package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/shopadmin/internal/logging"
)

// basePath is the versioned prefix all API endpoints live under.
const basePath = "/api/v1"

// Requester is the request surface the services layer depends on. *Client
// implements it; tests substitute fakes.
type Requester interface {
	Get(ctx context.Context, path string, out any) error
	GetWithToken(ctx context.Context, path, token string, out any) error
	Post(ctx context.Context, path string, in, out any) error
	Put(ctx context.Context, path string, in, out any) error
	Delete(ctx context.Context, path string) error
}

// Options wires the client's collaborators.
type Options struct {
	// Origin is scheme://host[:port] of the backend; basePath is appended.
	Origin string
	// Tokens supplies the bearer token for the outbound stage.
	Tokens TokenSource
	// Warmup coordinates wake requests for the retry stage.
	Warmup *WarmupCoordinator
	// OnUnauthorized is invoked whenever a final response is a 401. May be nil.
	OnUnauthorized func()
	// Timeout bounds each request attempt. The warm-up retry gets its own
	// budget. Zero means no client-side timeout.
	Timeout time.Duration
	Log     logging.Logger
}

// Client is the single shared HTTP client for the admin REST API. All
// requests carry the transport chain described in the package documentation.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

func New(opts Options) *Client {
	transport := &resilientTransport{
		base: &bearerTransport{
			base:   http.DefaultTransport,
			tokens: opts.Tokens,
		},
		warmup:         opts.Warmup,
		onUnauthorized: opts.OnUnauthorized,
		attemptTimeout: opts.Timeout,
		log:            opts.Log,
	}

	return &Client{
		baseURL: strings.TrimRight(opts.Origin, "/") + basePath,
		http:    &http.Client{Transport: transport},
		log:     opts.Log,
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

// GetWithToken performs a GET with an explicit bearer token instead of the
// token source. Used during login, when the freshly issued token is not yet
// held by the session container.
func (c *Client) GetWithToken(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, "", in, out)
}

func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, "", in, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}

// errorFromResponse turns a non-2xx response into *Error, pulling the
// human-readable message from the body's "detail" field when present.
func (c *Client) errorFromResponse(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&payload); err == nil {
		apiErr.Detail = payload.Detail
	}
	return apiErr
}
