package session

import (
	"context"
	"encoding/json"
	"net/url"
)

// Client is the HTTP capability the Manager consumes for the login and
// profile endpoints. Implementations own transport concerns: base URLs,
// auth headers, timeouts, retries.
type Client interface {
	Send(ctx context.Context, method, path string, body any, params url.Values) (*Response, error)
}

// Response is a completed HTTP exchange as seen by the session core.
type Response struct {
	StatusCode int
	Body       []byte
}

// Success reports whether the status code is in the 2xx range.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}
