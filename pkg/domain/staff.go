package domain

import (
	"time"

	"github.com/google/uuid"
)

// StaffRole is the role of an operator account.
type StaffRole string

const (
	StaffRoleAdmin StaffRole = "admin"
	StaffRoleStaff StaffRole = "staff"
)

// Valid reports whether r is a known role.
func (r StaffRole) Valid() bool {
	return r == StaffRoleAdmin || r == StaffRoleStaff
}

// Satisfies reports whether a principal with role r may access routes that
// require role required. Admins satisfy staff routes, not the other way round.
func (r StaffRole) Satisfies(required StaffRole) bool {
	if r == StaffRoleAdmin {
		return true
	}

	return r == required
}

// StaffUser is an operator account for the admin and staff dashboards.
type StaffUser struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         StaffRole `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt,omitzero"`
}

// APIKey is a bearer credential for the admin and staff APIs. Only the hash
// of the key is stored.
type APIKey struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Role       StaffRole `json:"role"`
	KeyHash    string    `json:"-"`
	LastUsedAt time.Time `json:"lastUsedAt,omitzero"`
	RevokedAt  time.Time `json:"revokedAt,omitzero"`
	CreatedAt  time.Time `json:"createdAt"`
}
