package apiclient

import "errors"

var (
	// ErrEmptyBaseURL indicates the client was constructed without an API
	// base URL.
	ErrEmptyBaseURL = errors.New("empty API base URL")
	// ErrTransport wraps network-level failures: DNS, connect, TLS,
	// timeouts. Server responses, whatever their status, are not
	// transport errors.
	ErrTransport = errors.New("transport error")
	// ErrRefreshFailed indicates the silent token refresh could not mint
	// a new access token. The session has been logged out by the time
	// this is observable.
	ErrRefreshFailed = errors.New("token refresh failed")
)
