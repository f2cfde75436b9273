package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gamevault/adminkit/pkg/logger"
)

// refreshResponse is the refresh endpoint's success payload.
type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// refresh exchanges the refresh token for a new access token and hands it
// to the token source. Concurrent callers are single-flighted: the second
// caller observes the rotated token and returns without a second exchange.
func (c *Client) refresh(ctx context.Context) error {
	stale := c.tokens.AccessToken()

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if current := c.tokens.AccessToken(); current != "" && current != stale {
		return nil
	}

	refreshToken := c.tokens.RefreshToken()
	if refreshToken == "" {
		return errors.Join(ErrRefreshFailed, errors.New("no refresh token available"))
	}

	params := url.Values{"refreshToken": {refreshToken}}
	resp, err := c.do(ctx, http.MethodPost, c.refreshPath, nil, params)
	if err != nil {
		return errors.Join(ErrRefreshFailed, err)
	}
	if !resp.Success() {
		return errors.Join(ErrRefreshFailed, fmt.Errorf("refresh endpoint returned status %d", resp.StatusCode))
	}

	var rr refreshResponse
	if err := resp.Decode(&rr); err != nil {
		return errors.Join(ErrRefreshFailed, err)
	}
	if rr.AccessToken == "" {
		return errors.Join(ErrRefreshFailed, errors.New("refresh endpoint returned empty access token"))
	}

	c.tokens.RotateToken(ctx, rr.AccessToken)
	return nil
}

// maybeRefreshEarly refreshes ahead of a JWT access token's exp claim so
// requests don't pay the 401 round trip. Tokens are treated as opaque
// unless they parse as a JWT carrying exp; failures here are best-effort
// and fall back to 401-driven refresh.
func (c *Client) maybeRefreshEarly(ctx context.Context) {
	token := c.tokens.AccessToken()
	if token == "" {
		return
	}

	expiresAt, ok := tokenExpiry(token)
	if !ok || time.Until(expiresAt) > c.refreshLeeway {
		return
	}

	if err := c.refresh(ctx); err != nil {
		c.log.DebugContext(ctx, "proactive token refresh failed",
			logger.Component("apiclient"), logger.Error(err))
	}
}

// tokenExpiry reads the exp claim from a JWT without verifying the
// signature; the server remains the authority on token validity. Returns
// false for opaque tokens and JWTs without exp.
func tokenExpiry(token string) (time.Time, bool) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
