package permission

import (
	"github.com/gamevault/adminkit/core/session"
)

// Spec describes a permission requirement as a tagged variant: either a
// set of acceptable roles or a custom validator. Build one with ByRole or
// ByValidator; the zero Spec allows everyone.
type Spec struct {
	roles     []string
	validator func() bool
}

// ByRole builds a Spec satisfied by holding any of the given roles.
func ByRole(roles ...string) Spec {
	return Spec{roles: roles}
}

// ByValidator builds a Spec delegating entirely to a custom predicate.
func ByValidator(validator func() bool) Spec {
	return Spec{validator: validator}
}

// Allowed reports whether the given role set satisfies the Spec.
// A validator, when present, takes precedence over the role list.
func (s Spec) Allowed(have session.Roles) bool {
	if s.validator != nil {
		return s.validator()
	}
	if len(s.roles) > 0 {
		return have.HasAny(s.roles...)
	}
	return true
}

// HasRole reports whether the role set contains the given role.
func HasRole(have session.Roles, role string) bool {
	return have.Has(role)
}

// HasAnyRole reports whether the role set contains any of the given roles.
// An empty requirement list allows everyone.
func HasAnyRole(have session.Roles, roles ...string) bool {
	if len(roles) == 0 {
		return true
	}
	return have.HasAny(roles...)
}

// IsSuperAdmin reports whether the role set grants super administration.
func IsSuperAdmin(have session.Roles) bool {
	return have.Has(session.RoleSuperAdmin)
}

// IsAdmin reports whether the role set grants general administration.
func IsAdmin(have session.Roles) bool {
	return have.HasAny(session.RoleSuperAdmin, session.RoleAdmin)
}

// IsContentAdmin reports whether the role set grants content administration.
func IsContentAdmin(have session.Roles) bool {
	return have.HasAny(session.RoleSuperAdmin, session.RoleContentAdmin)
}

// CanManageUsers reports whether the role set may manage user accounts.
func CanManageUsers(have session.Roles) bool {
	return have.HasAny(session.RoleSuperAdmin, session.RoleAdmin)
}

// CanManageContent reports whether the role set may manage game content.
func CanManageContent(have session.Roles) bool {
	return have.HasAny(session.RoleSuperAdmin, session.RoleContentAdmin)
}

// CanReviewContent reports whether the role set may review submissions.
func CanReviewContent(have session.Roles) bool {
	return have.HasAny(session.RoleSuperAdmin, session.RoleContentAdmin)
}

// CanManageSystem reports whether the role set may change system settings.
func CanManageSystem(have session.Roles) bool {
	return have.Has(session.RoleSuperAdmin)
}
