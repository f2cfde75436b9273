package session

import "encoding/json"

// Role identifiers granted by the platform. Roles are coarse-grained:
// holding any admin role unlocks the corresponding console sections.
const (
	RoleSuperAdmin   = "SUPER_ADMIN"
	RoleAdmin        = "ADMIN"
	RoleContentAdmin = "CONTENT_ADMIN"
)

// Roles is a deduplicated set of role identifiers. Order carries no meaning.
type Roles []string

// Has reports whether the set contains the given role.
func (r Roles) Has(role string) bool {
	for _, have := range r {
		if have == role {
			return true
		}
	}
	return false
}

// HasAny reports whether the set contains at least one of the given roles.
func (r Roles) HasAny(roles ...string) bool {
	for _, role := range roles {
		if r.Has(role) {
			return true
		}
	}
	return false
}

// normalizeRoles deduplicates while preserving first-seen order.
func normalizeRoles(roles []string) Roles {
	if len(roles) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(roles))
	out := make(Roles, 0, len(roles))
	for _, role := range roles {
		if _, ok := seen[role]; ok {
			continue
		}
		seen[role] = struct{}{}
		out = append(out, role)
	}
	return out
}

// UserProfile is the server-reported user record cached client-side. It is
// owned exclusively by the Manager and replaced wholesale on each fetch.
//
// Fields past Roles are pass-through data: persisted and re-exposed but
// never interpreted by the session core.
type UserProfile struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar"`
	Roles     Roles  `json:"roles"`

	Phone         string          `json:"phone,omitempty"`
	Status        json.RawMessage `json:"status,omitempty"`
	EmailVerified bool            `json:"emailVerified,omitempty"`
	LastLoginTime string          `json:"lastLoginTime,omitempty"`
	CreateTime    string          `json:"createTime,omitempty"`
	Preferences   json.RawMessage `json:"preferences,omitempty"`
	Statistics    json.RawMessage `json:"statistics,omitempty"`
}

// Credentials is the login form payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the login endpoint's success payload. It carries enough
// to seed a partial profile; the full record comes from a later FetchProfile.
type loginResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	UserID       string   `json:"userId"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Nickname     string   `json:"nickname"`
	Avatar       string   `json:"avatar"`
	Roles        []string `json:"roles"`
}

func (lr loginResponse) toProfile() *UserProfile {
	return &UserProfile{
		UserID:    lr.UserID,
		Username:  lr.Username,
		Email:     lr.Email,
		Nickname:  lr.Nickname,
		AvatarURL: lr.Avatar,
		Roles:     normalizeRoles(lr.Roles),
	}
}

// profileResponse is the profile endpoint's payload. The server reports the
// user identifier as "id"; everything else maps verbatim.
type profileResponse struct {
	ID            string          `json:"id"`
	Username      string          `json:"username"`
	Email         string          `json:"email"`
	Nickname      string          `json:"nickname"`
	Avatar        string          `json:"avatar"`
	Roles         []string        `json:"roles"`
	Phone         string          `json:"phone"`
	Status        json.RawMessage `json:"status"`
	EmailVerified bool            `json:"emailVerified"`
	LastLoginTime string          `json:"lastLoginTime"`
	CreateTime    string          `json:"createTime"`
	Preferences   json.RawMessage `json:"preferences"`
	Statistics    json.RawMessage `json:"statistics"`
}

func (pr profileResponse) toProfile() *UserProfile {
	return &UserProfile{
		UserID:        pr.ID,
		Username:      pr.Username,
		Email:         pr.Email,
		Nickname:      pr.Nickname,
		AvatarURL:     pr.Avatar,
		Roles:         normalizeRoles(pr.Roles),
		Phone:         pr.Phone,
		Status:        pr.Status,
		EmailVerified: pr.EmailVerified,
		LastLoginTime: pr.LastLoginTime,
		CreateTime:    pr.CreateTime,
		Preferences:   pr.Preferences,
		Statistics:    pr.Statistics,
	}
}
