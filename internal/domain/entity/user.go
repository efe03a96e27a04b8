package entity

import "time"

// Valid roles for User.
const (
	RoleManager    = "manager"
	RoleAccountant = "accountant"
	RoleEmployee   = "employee"
)

// ValidRole reports whether r is a known role.
func ValidRole(r string) bool {
	return r == RoleManager || r == RoleAccountant || r == RoleEmployee
}

// User is an account that can sign in and act on the ledger.
type User struct {
	ID           string
	Username     string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, never the plain password
	Role         string // manager, accountant, employee
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
