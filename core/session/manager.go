package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gamevault/adminkit/core/credstore"
	"github.com/gamevault/adminkit/pkg/logger"
)

// Manager owns the process-wide authentication state: access token, refresh
// token, and the cached user profile. It keeps the in-memory copy and the
// credential store identical after every successful mutating operation.
//
// Construct one Manager per credential store at application wiring time and
// pass it by reference; there is no ambient global instance.
type Manager struct {
	client Client
	store  credstore.Store
	cfg    Config
	log    *slog.Logger

	// callMu serializes the network-mutating operations (Login,
	// FetchProfile) so at most one is in flight per Manager. Logout and
	// RotateToken deliberately bypass it: a logout must be able to
	// complete while a slow profile fetch is still on the wire.
	callMu sync.Mutex

	// mu guards the fields below together with their store commits, so no
	// operation can observe memory and store diverging.
	mu            sync.RWMutex
	accessToken   string
	refreshToken  string
	profile       *UserProfile
	profileLoaded bool
	// generation changes whenever the logical session changes identity
	// (login, logout). A profile fetch that started under an older
	// generation discards its result instead of resurrecting dead state.
	generation uint64
}

// NewManager creates a session manager hydrated from the credential store:
// both tokens are read eagerly, the profile slot lazily on first access.
func NewManager(client Client, store credstore.Store, opts ...Option) *Manager {
	m := &Manager{
		client: client,
		store:  store,
		cfg:    defaultConfig(),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}

	ctx := context.Background()
	store.Get(ctx, KeyAccessToken, &m.accessToken)
	store.Get(ctx, KeyRefreshToken, &m.refreshToken)

	return m
}

// Login authenticates against the login endpoint. On success it atomically
// installs the access token, refresh token, and a partial login-derived
// profile in memory and in the credential store. On any failure the session
// state is exactly as before the call.
func (m *Manager) Login(ctx context.Context, creds Credentials) error {
	m.callMu.Lock()
	defer m.callMu.Unlock()

	resp, err := m.client.Send(ctx, http.MethodPost, m.cfg.LoginPath, creds, nil)
	if err != nil {
		return errors.Join(ErrAuthentication, err)
	}
	if !resp.Success() {
		return errors.Join(ErrAuthentication, fmt.Errorf("login endpoint returned status %d", resp.StatusCode))
	}

	var lr loginResponse
	if err := resp.Decode(&lr); err != nil {
		return errors.Join(ErrAuthentication, err)
	}

	profile := lr.toProfile()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.accessToken = lr.AccessToken
	m.refreshToken = lr.RefreshToken
	m.profile = profile
	m.profileLoaded = true
	m.generation++

	m.store.Put(ctx, KeyAccessToken, lr.AccessToken, credstore.WithTTL(m.cfg.AccessTokenTTL))
	m.store.Put(ctx, KeyRefreshToken, lr.RefreshToken, credstore.WithTTL(m.cfg.RefreshTokenTTL))
	m.store.Put(ctx, KeyUserProfile, profile)

	m.log.InfoContext(ctx, "logged in",
		logger.Component("session"), logger.Event("login"), logger.UserID(profile.UserID))
	return nil
}

// FetchProfile retrieves the full user record from the profile endpoint and
// replaces the cached profile wholesale. It requires a live access token.
// On failure the previously cached profile survives: callers must treat an
// error as "could not refresh", not "logged out".
func (m *Manager) FetchProfile(ctx context.Context) error {
	m.callMu.Lock()
	defer m.callMu.Unlock()

	m.mu.RLock()
	token := m.accessToken
	gen := m.generation
	m.mu.RUnlock()
	if token == "" {
		return ErrNotAuthenticated
	}

	resp, err := m.client.Send(ctx, http.MethodGet, m.cfg.ProfilePath, nil, nil)
	if err != nil {
		return errors.Join(ErrProfileFetch, err)
	}
	if !resp.Success() {
		return errors.Join(ErrProfileFetch, fmt.Errorf("profile endpoint returned status %d", resp.StatusCode))
	}

	var pr profileResponse
	if err := resp.Decode(&pr); err != nil {
		return errors.Join(ErrProfileFetch, err)
	}
	profile := pr.toProfile()

	m.mu.Lock()
	defer m.mu.Unlock()

	// The session changed identity while the fetch was on the wire.
	// Committing now would resurrect logged-out state, so discard.
	if m.generation != gen || m.accessToken == "" {
		m.log.WarnContext(ctx, "discarding stale profile fetch",
			logger.Component("session"), logger.Event("profile_discarded"))
		return ErrNotAuthenticated
	}

	m.profile = profile
	m.profileLoaded = true
	m.store.Put(ctx, KeyUserProfile, profile)

	m.log.InfoContext(ctx, "profile refreshed",
		logger.Component("session"), logger.Event("profile_fetched"), logger.UserID(profile.UserID))
	return nil
}

// Logout unconditionally clears all session state in memory and in the
// credential store. It never fails and is idempotent.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.accessToken = ""
	m.refreshToken = ""
	m.profile = nil
	m.profileLoaded = true
	m.generation++

	m.store.Remove(ctx, KeyAccessToken)
	m.store.Remove(ctx, KeyRefreshToken)
	m.store.Remove(ctx, KeyUserProfile)

	m.log.InfoContext(ctx, "logged out", logger.Component("session"), logger.Event("logout"))
}

// RotateToken replaces only the access token after a successful silent
// refresh, leaving the refresh token and profile untouched. The caller is
// responsible for invoking Logout when the refresh endpoint reports the
// refresh token itself is no longer valid.
func (m *Manager) RotateToken(ctx context.Context, newAccessToken string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.accessToken = newAccessToken
	m.store.Put(ctx, KeyAccessToken, newAccessToken, credstore.WithTTL(m.cfg.AccessTokenTTL))

	m.log.DebugContext(ctx, "access token rotated",
		logger.Component("session"), logger.Event("token_rotated"))
}

// IsAuthenticated reports whether a non-empty access token is present.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.accessToken != ""
}

// AccessToken returns the current access token, empty when logged out.
func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.accessToken
}

// RefreshToken returns the current refresh token, empty when logged out.
func (m *Manager) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshToken
}

// Profile returns a copy of the cached profile and whether one is present.
func (m *Manager) Profile() (UserProfile, bool) {
	p := m.profileSnapshot()
	if p == nil {
		return UserProfile{}, false
	}
	return *p, true
}

// HasProfile reports whether a profile is cached. A partial login-derived
// profile counts; absence means FetchProfile has to run before role checks
// can rely on the full record.
func (m *Manager) HasProfile() bool {
	return m.profileSnapshot() != nil
}

// Roles returns the cached profile's role set, empty when no profile is
// present. Derived on every call, never cached separately.
func (m *Manager) Roles() Roles {
	if p := m.profileSnapshot(); p != nil {
		return p.Roles
	}
	return nil
}

// IsAdmin reports whether the current roles grant console administration.
func (m *Manager) IsAdmin() bool {
	return m.Roles().HasAny(RoleSuperAdmin, RoleContentAdmin)
}

// UserID returns the cached profile's user identifier, empty without one.
func (m *Manager) UserID() string {
	if p := m.profileSnapshot(); p != nil {
		return p.UserID
	}
	return ""
}

// Username returns the cached profile's username, empty without one.
func (m *Manager) Username() string {
	if p := m.profileSnapshot(); p != nil {
		return p.Username
	}
	return ""
}

// Nickname returns the cached profile's nickname, empty without one.
func (m *Manager) Nickname() string {
	if p := m.profileSnapshot(); p != nil {
		return p.Nickname
	}
	return ""
}

// profileSnapshot returns the cached profile, hydrating it from the store's
// durable slot on first access.
func (m *Manager) profileSnapshot() *UserProfile {
	m.mu.RLock()
	if m.profileLoaded {
		p := m.profile
		m.mu.RUnlock()
		return p
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.profileLoaded {
		var p UserProfile
		if m.store.Get(context.Background(), KeyUserProfile, &p) {
			m.profile = &p
		}
		m.profileLoaded = true
	}
	return m.profile
}
