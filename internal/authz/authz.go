// Package authz holds the role capability matrix and the relationship checks
// that gate every mutating operation. Services re-check these at invocation
// time; nothing relies on the client hiding controls.
package authz

import (
	"gearguard/internal/entities"
)

// Actor is the authenticated caller identity carried through the request
// context by the auth middleware.
type Actor struct {
	ID   uint64
	Role entities.Role
}

// Action names every privileged operation in the system.
type Action string

const (
	EquipmentCreate Action = "equipment:create"
	EquipmentUpdate Action = "equipment:update"
	EquipmentDelete Action = "equipment:delete"

	TeamsCreate Action = "teams:create"
	TeamsUpdate Action = "teams:update"
	TeamsDelete Action = "teams:delete"

	RequestsCreate Action = "requests:create"

	ReportsView Action = "reports:view"

	UsersList Action = "users:list"
)

// matrix is the full role/action table. Keeping it as data makes the policy
// enumerable and exhaustively testable.
var matrix = map[Action]map[entities.Role]bool{
	EquipmentCreate: {entities.RoleAdmin: true, entities.RoleManager: true},
	EquipmentUpdate: {entities.RoleAdmin: true, entities.RoleManager: true},
	EquipmentDelete: {entities.RoleAdmin: true},

	TeamsCreate: {entities.RoleAdmin: true, entities.RoleManager: true},
	TeamsUpdate: {entities.RoleAdmin: true, entities.RoleManager: true},
	TeamsDelete: {entities.RoleAdmin: true},

	RequestsCreate: {entities.RoleAdmin: true, entities.RoleManager: true, entities.RoleTechnician: true},

	ReportsView: {entities.RoleAdmin: true, entities.RoleManager: true},

	UsersList: {entities.RoleAdmin: true, entities.RoleManager: true, entities.RoleTechnician: true},
}

// Can answers the pure role part of the policy.
func Can(actor Actor, action Action) bool {
	allowed, ok := matrix[action]
	if !ok {
		return false
	}
	return allowed[actor.Role]
}

// CanAssignRequest: managers assign anyone; technicians may only assign
// themselves. Team membership of the target is checked separately against the
// request's team.
func CanAssignRequest(actor Actor, technicianID uint64) bool {
	return actor.Role.IsManager() || technicianID == actor.ID
}

// CanUpdateRequestStatus: managers, or the currently assigned technician.
func CanUpdateRequestStatus(actor Actor, req *entities.MaintenanceRequest) bool {
	if actor.Role.IsManager() {
		return true
	}
	return req.AssignedTechnicianID.Valid && req.AssignedTechnicianID.Uint64 == actor.ID
}

// CanEditRequest: managers, the creator, or the assignee.
func CanEditRequest(actor Actor, req *entities.MaintenanceRequest) bool {
	if actor.Role.IsManager() {
		return true
	}
	if req.CreatedByID == actor.ID {
		return true
	}
	return req.AssignedTechnicianID.Valid && req.AssignedTechnicianID.Uint64 == actor.ID
}

// CanDeleteRequest: Admin, or the original creator regardless of role.
func CanDeleteRequest(actor Actor, req *entities.MaintenanceRequest) bool {
	return actor.Role.IsAdmin() || req.CreatedByID == actor.ID
}

// RequestScopeIsLimited reports whether list/view access must be narrowed to
// the caller's team memberships. Managers and admins see everything.
func RequestScopeIsLimited(actor Actor) bool {
	return !actor.Role.IsManager()
}
