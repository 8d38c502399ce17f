package tui

import (
	"fmt"
	"strings"
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Hospital Staffing Dashboard"))
	b.WriteString("\n")

	if !m.sess.IsAuthenticated() {
		b.WriteString(m.styles.Warning.Render("Session expired. Run 'shiftctl auth login' to continue."))
		b.WriteString("\n")
		b.WriteString(m.renderHelpLine())
		return b.String()
	}

	if m.sess.User != nil {
		who := fmt.Sprintf("%s <%s>  ", m.sess.User.Name, m.sess.User.Email)
		b.WriteString(m.styles.Subtitle.Render(who) + RoleBadge(m.sess.User.Role))
	} else {
		b.WriteString(m.styles.Subtitle.Render("Logged in (profile not loaded)"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.loading > 0 {
		b.WriteString(m.spinner.View() + m.styles.Muted.Render(" loading…"))
		b.WriteString("\n\n")
	}

	if m.lastError != "" {
		b.WriteString(m.styles.Error.Render("Failed to load: ") + firstLine(m.lastError))
		b.WriteString("\n\n")
	}

	b.WriteString(Gate(m.role(), viewPermissions[m.activeTab][0], m.renderActiveTab(), m.fallbackForTab()))
	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return b.String()
}

// fallbackForTab allows a tab through on any of its alternate view
// permissions before the denial notice kicks in.
func (m Model) fallbackForTab() string {
	if canView(m.role(), m.activeTab) {
		return m.renderActiveTab()
	}
	return ""
}

func (m Model) renderTabs() string {
	var tabs []string
	for t := Tab(0); t < tabCount; t++ {
		if t == m.activeTab {
			tabs = append(tabs, m.styles.TabOn.Render(t.title()))
		} else {
			tabs = append(tabs, m.styles.TabOff.Render(t.title()))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderActiveTab() string {
	switch m.activeTab {
	case TabDepartments:
		return m.renderDepartments()
	case TabShifts:
		return m.renderShifts()
	case TabStaff:
		return m.renderStaff()
	case TabAssignments:
		return m.renderAssignments()
	default:
		return ""
	}
}

func (m Model) renderDepartments() string {
	if len(m.departments) == 0 {
		return m.styles.Muted.Render("No departments.")
	}

	var b strings.Builder
	for _, d := range m.departments {
		b.WriteString(fmt.Sprintf("%4d  %-24s %s\n", d.ID, d.Name, m.styles.Muted.Render(d.Description)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderShifts() string {
	if len(m.shifts) == 0 {
		return m.styles.Muted.Render("No shifts.")
	}

	var b strings.Builder
	for _, s := range m.shifts {
		b.WriteString(fmt.Sprintf("%4d  dept %-4d %s  needs %d × %s\n",
			s.ID, s.DepartmentID, shiftWindow(s), s.RequiredStaffCount, RoleBadge(s.RequiredRole)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderStaff() string {
	if len(m.users) == 0 {
		return m.styles.Muted.Render("No staff.")
	}

	var b strings.Builder
	for _, u := range m.users {
		dept := "-"
		if u.DepartmentID != nil {
			dept = fmt.Sprintf("%d", *u.DepartmentID)
		}
		b.WriteString(fmt.Sprintf("%4d  %-24s %-28s %s  dept %s\n",
			u.ID, u.Name, u.Email, RoleBadge(u.Role), dept))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderAssignments() string {
	if len(m.assignments) == 0 {
		return m.styles.Muted.Render("No assignments.")
	}

	var b strings.Builder
	for _, a := range m.assignments {
		flag := ""
		if a.IsEmergency {
			flag = "  " + m.styles.Error.Render("EMERGENCY")
		}
		b.WriteString(fmt.Sprintf("%4d  user %-4d shift %-4d%s\n", a.ID, a.UserID, a.ShiftID, flag))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderHelpLine() string {
	return m.styles.Help.Render("tab: switch view • r: refresh • q: quit")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
