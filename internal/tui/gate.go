package tui

import (
	"github.com/careops/shiftctl/internal/rbac"
)

// DeniedNotice is what a gated region shows when no fallback is given.
const DeniedNotice = "You don't have permission to access this feature."

// Gate renders content only when the role holds the permission.
// Otherwise it renders fallback, or a styled denial notice when
// fallback is empty. This gates what the terminal shows and nothing
// more; the backend authorizes every mutating call on its own.
func Gate(role rbac.Role, permission rbac.Permission, content, fallback string) string {
	if rbac.HasPermission(role, permission) {
		return content
	}
	if fallback != "" {
		return fallback
	}
	return DefaultStyles().Warning.Render(DeniedNotice)
}
