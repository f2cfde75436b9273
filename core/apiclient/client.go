package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/gamevault/adminkit/core/session"
	"github.com/gamevault/adminkit/pkg/logger"
)

// TokenSource is the slice of the session manager the client needs for
// authorization and silent refresh. *session.Manager satisfies it.
type TokenSource interface {
	AccessToken() string
	RefreshToken() string
	RotateToken(ctx context.Context, newAccessToken string)
	Logout(ctx context.Context)
}

// Client implements session.Client over net/http: base-URL resolution,
// JSON bodies, bearer-token injection, per-request IDs, optional rate
// limiting, and silent access-token refresh on 401.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	limiter    *rate.Limiter
	log        *slog.Logger

	refreshPath   string
	refreshLeeway time.Duration
	// refreshMu single-flights concurrent refresh attempts.
	refreshMu sync.Mutex
}

// Compile-time check that Client satisfies the session manager's contract.
var _ session.Client = (*Client)(nil)

// New creates an API client for the given base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	c := &Client{
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		baseURL:       strings.TrimRight(baseURL, "/"),
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		refreshPath:   "/auth/refresh",
		refreshLeeway: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetTokenSource wires the session after construction. The client and the
// session manager reference each other, so one of them has to be attached
// late; see the package documentation.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// Send issues a request against the API. A 401 response triggers one
// silent refresh-and-retry cycle when a token source is wired; if the
// refresh itself fails, the session is logged out and the original 401
// response is returned to the caller.
func (c *Client) Send(ctx context.Context, method, path string, body any, params url.Values) (*session.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, errors.Join(ErrTransport, err)
		}
	}

	if c.tokens != nil && path != c.refreshPath {
		c.maybeRefreshEarly(ctx)
	}

	resp, err := c.do(ctx, method, path, body, params)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized || c.tokens == nil || path == c.refreshPath {
		return resp, nil
	}

	if err := c.refresh(ctx); err != nil {
		c.log.WarnContext(ctx, "silent token refresh failed, logging out",
			logger.Component("apiclient"), logger.Error(err))
		c.tokens.Logout(ctx)
		return resp, nil
	}

	return c.do(ctx, method, path, body, params)
}

// do performs a single HTTP exchange without refresh handling.
func (c *Client) do(ctx context.Context, method, path string, body any, params url.Values) (*session.Response, error) {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}

	c.log.DebugContext(ctx, "request completed",
		logger.Component("apiclient"),
		slog.String("method", method),
		slog.String("path", path),
		logger.Status(httpResp.StatusCode),
		logger.Elapsed(start))

	return &session.Response{StatusCode: httpResp.StatusCode, Body: data}, nil
}
