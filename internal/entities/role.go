package entities

import (
	apperrors "gearguard/pkg/errors"
)

// Role is the closed set of privilege levels. Admin > Manager > Technician for
// ordinary domain operations; deletion of reference data stays Admin-only.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleManager    Role = "Manager"
	RoleTechnician Role = "Technician"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleTechnician:
		return Role(s), nil
	}
	return "", apperrors.NewValidationError("unknown role %q", s)
}

func (r Role) String() string { return string(r) }

func (r Role) IsAdmin() bool { return r == RoleAdmin }

// IsManager reports manager-level privileges, which Admin also carries.
func (r Role) IsManager() bool { return r == RoleAdmin || r == RoleManager }
