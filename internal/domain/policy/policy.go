// Package policy concentrates every role-based decision in one place so that
// mutating use cases never branch on role strings themselves.
package policy

import "github.com/karimbadr/mohasib-api/internal/domain/entity"

// Actor is the authenticated identity a request acts as. The HTTP middleware
// builds it from the token; use cases treat it as an opaque read-only input.
type Actor struct {
	ID   string
	Role string
}

// AutoApprove reports whether a transaction created by the actor starts out
// approved. Managers and accountants are trusted; employee entries wait for
// a manager.
func AutoApprove(a Actor) bool {
	return a.Role == entity.RoleManager || a.Role == entity.RoleAccountant
}

// CanApprove reports whether the actor may flip an unapproved transaction to
// approved. Manager only; the transition is one-way.
func CanApprove(a Actor) bool {
	return a.Role == entity.RoleManager
}

// CanManageUsers reports whether the actor may create, update or delete user
// accounts.
func CanManageUsers(a Actor) bool {
	return a.Role == entity.RoleManager
}
