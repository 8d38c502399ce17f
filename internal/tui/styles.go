package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/careops/shiftctl/internal/rbac"
)

// Styles contains lipgloss styles for the TUI
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Muted    lipgloss.Style
	Border   lipgloss.Style
	TabOn    lipgloss.Style
	TabOff   lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")). // Blue
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Gray
			MarginBottom(1),
		Status: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")), // Cyan
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")), // Green
		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226")), // Yellow
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")). // Blue
			Padding(1, 2),
		TabOn: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Underline(true).
			Padding(0, 1),
		TabOff: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
	}
}

// roleColors maps each role to its badge color, carried over from the
// web dashboard's palette.
var roleColors = map[rbac.Role]lipgloss.Color{
	rbac.RoleAdmin:   lipgloss.Color("160"), // Red
	rbac.RoleManager: lipgloss.Color("33"),  // Blue
	rbac.RoleDoctor:  lipgloss.Color("28"),  // Green
	rbac.RoleNurse:   lipgloss.Color("91"),  // Purple
	rbac.RoleStaff:   lipgloss.Color("37"),  // Teal
}

// RoleBadge renders a colored role label. Unknown roles render muted.
func RoleBadge(role rbac.Role) string {
	color, ok := roleColors[role]
	if !ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(role.Label())
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(role.Label())
}
