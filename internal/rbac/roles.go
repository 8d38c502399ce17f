// Package rbac holds the client-side role and permission model used to
// gate CLI commands and dashboard views. The checks here are advisory:
// they decide what the terminal shows, not what the backend allows. The
// backend enforces its own authorization on every call and must never
// be assumed to mirror this table.
package rbac

// Role is a job category assigned to a user by the backend.
type Role string

// The closed set of roles the backend issues.
const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleDoctor  Role = "doctor"
	RoleNurse   Role = "nurse"
	RoleStaff   Role = "staff"
)

// Roles lists all known roles in display order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleDoctor, RoleNurse, RoleStaff}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleDoctor, RoleNurse, RoleStaff:
		return true
	}
	return false
}

// Label returns a human-readable name for the role.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleManager:
		return "Manager"
	case RoleDoctor:
		return "Doctor"
	case RoleNurse:
		return "Nurse"
	case RoleStaff:
		return "Staff"
	default:
		return string(r)
	}
}

// Permission is a named capability checked against a role's allowed set.
type Permission string

// Capabilities referenced by commands and dashboard views.
const (
	PermManageUsers       Permission = "manage_users"
	PermManageDepartments Permission = "manage_departments"
	PermManageShifts      Permission = "manage_shifts"
	PermManageAssignments Permission = "manage_assignments"
	PermViewReports       Permission = "view_reports"
	PermAIScheduling      Permission = "ai_scheduling"
	PermAIAnnouncements   Permission = "ai_announcements"
	PermAIInsights        Permission = "ai_insights"
	PermViewShifts        Permission = "view_shifts"
	PermViewAssignments   Permission = "view_assignments"
	PermRequestChanges    Permission = "request_changes"
	PermViewSchedule      Permission = "view_schedule"
	PermViewWorkload      Permission = "view_workload"
)

// rolePermissions maps each role to its allowed capabilities.
// Process-wide constant; never mutated after init.
var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermManageUsers,
		PermManageDepartments,
		PermManageShifts,
		PermManageAssignments,
		PermViewReports,
		PermAIScheduling,
		PermAIAnnouncements,
	},
	RoleManager: {
		PermManageShifts,
		PermManageAssignments,
		PermViewReports,
		PermAIScheduling,
		PermAIInsights,
	},
	RoleDoctor: {
		PermViewShifts,
		PermViewAssignments,
		PermRequestChanges,
		PermViewWorkload,
	},
	RoleNurse: {
		PermViewAssignments,
		PermRequestChanges,
		PermViewSchedule,
	},
	RoleStaff: {
		PermViewAssignments,
		PermViewSchedule,
	},
}

// HasPermission reports whether the role's allowed set contains the
// permission. Unknown roles and unknown permissions are denied, never
// allowed, and never panic.
func HasPermission(role Role, permission Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// Permissions returns a copy of the role's allowed set. Empty for
// unknown roles.
func Permissions(role Role) []Permission {
	perms := rolePermissions[role]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}
