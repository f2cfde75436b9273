// Package permission provides role-based authorization checks over a
// session's role set. All checks are pure functions: they interpret the
// roles handed to them and hold no state of their own.
//
// Requirements are expressed as a tagged Spec:
//
//	editSpec := permission.ByRole(session.RoleSuperAdmin, session.RoleContentAdmin)
//	if editSpec.Allowed(mgr.Roles()) {
//		// show the edit controls
//	}
//
//	betaSpec := permission.ByValidator(func() bool { return features.Enabled("beta") })
//
// The named helpers (CanManageContent, CanManageSystem, ...) cover the
// console's fixed permission points.
package permission
