package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/careops/shiftctl/internal/api"
	"github.com/careops/shiftctl/internal/rbac"
	"github.com/careops/shiftctl/internal/session"
)

// Tab identifies a dashboard view.
type Tab int

// Dashboard tabs in display order.
const (
	TabDepartments Tab = iota
	TabShifts
	TabStaff
	TabAssignments
	tabCount
)

func (t Tab) title() string {
	switch t {
	case TabDepartments:
		return "Departments"
	case TabShifts:
		return "Shifts"
	case TabStaff:
		return "Staff"
	case TabAssignments:
		return "Assignments"
	default:
		return ""
	}
}

// viewPermissions lists the permissions that make a tab's content
// visible; holding any one of them is enough.
var viewPermissions = map[Tab][]rbac.Permission{
	TabDepartments: {rbac.PermManageDepartments, rbac.PermViewSchedule, rbac.PermViewShifts},
	TabShifts:      {rbac.PermViewShifts, rbac.PermManageShifts, rbac.PermViewSchedule},
	TabStaff:       {rbac.PermManageUsers},
	TabAssignments: {rbac.PermViewAssignments, rbac.PermManageAssignments},
}

func canView(role rbac.Role, tab Tab) bool {
	for _, p := range viewPermissions[tab] {
		if rbac.HasPermission(role, p) {
			return true
		}
	}
	return false
}

// Messages delivered by the data loading commands.
type (
	departmentsMsg []api.Department
	shiftsMsg      []api.Shift
	usersMsg       []api.User
	assignmentsMsg []api.Assignment
	sessionMsg     session.Session
	loadErrMsg     struct{ err error }
)

type keyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	NextTab: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("tab", "next view"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("shift+tab", "previous view"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the dashboard TUI state.
type Model struct {
	client *api.Client
	sess   session.Session

	departments []api.Department
	shifts      []api.Shift
	users       []api.User
	assignments []api.Assignment

	activeTab Tab
	loading   int
	spinner   spinner.Model
	lastError string
	width     int
	height    int
	quitting  bool

	styles Styles
}

// NewDashboard creates a dashboard for the given session. The store's
// subscription keeps the model's session current: when a 401 clears
// the session mid-flight the next render falls back to the anonymous
// notice instead of crashing.
func NewDashboard(client *api.Client, store *session.Store, program func() *tea.Program) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		client:  client,
		sess:    store.Current(),
		spinner: sp,
		styles:  DefaultStyles(),
	}
	m.loading = len(m.loadAll())

	store.Subscribe(func(sess session.Session) {
		if program == nil {
			return
		}
		if p := program(); p != nil {
			p.Send(sessionMsg(sess))
		}
	})

	return m
}

// Init starts the spinner and the initial data load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(append([]tea.Cmd{m.spinner.Tick}, m.loadAll()...)...)
}

func (m Model) loadAll() []tea.Cmd {
	role := m.role()
	var cmds []tea.Cmd

	if canView(role, TabDepartments) {
		cmds = append(cmds, m.loadDepartments)
	}
	if canView(role, TabShifts) {
		cmds = append(cmds, m.loadShifts)
	}
	if canView(role, TabStaff) {
		cmds = append(cmds, m.loadUsers)
	}
	if canView(role, TabAssignments) {
		cmds = append(cmds, m.loadAssignments)
	}
	return cmds
}

func (m Model) role() rbac.Role {
	if m.sess.User == nil {
		return ""
	}
	return m.sess.User.Role
}

func loadCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), api.DefaultTimeout)
}

func (m Model) loadDepartments() tea.Msg {
	ctx, cancel := loadCtx()
	defer cancel()
	out, err := m.client.ListDepartments(ctx)
	if err != nil {
		return loadErrMsg{err}
	}
	return departmentsMsg(out)
}

func (m Model) loadShifts() tea.Msg {
	ctx, cancel := loadCtx()
	defer cancel()
	out, err := m.client.ListShifts(ctx)
	if err != nil {
		return loadErrMsg{err}
	}
	return shiftsMsg(out)
}

func (m Model) loadUsers() tea.Msg {
	ctx, cancel := loadCtx()
	defer cancel()
	out, err := m.client.ListUsers(ctx)
	if err != nil {
		return loadErrMsg{err}
	}
	return usersMsg(out)
}

func (m Model) loadAssignments() tea.Msg {
	ctx, cancel := loadCtx()
	defer cancel()
	out, err := m.client.ListAssignments(ctx)
	if err != nil {
		return loadErrMsg{err}
	}
	return assignmentsMsg(out)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.NextTab):
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case key.Matches(msg, keys.PrevTab):
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case key.Matches(msg, keys.Refresh):
			m.lastError = ""
			cmds := m.loadAll()
			m.loading = len(cmds)
			return m, tea.Batch(cmds...)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case departmentsMsg:
		m.departments = msg
		m.loading = max(0, m.loading-1)
		return m, nil
	case shiftsMsg:
		m.shifts = msg
		m.loading = max(0, m.loading-1)
		return m, nil
	case usersMsg:
		m.users = msg
		m.loading = max(0, m.loading-1)
		return m, nil
	case assignmentsMsg:
		m.assignments = msg
		m.loading = max(0, m.loading-1)
		return m, nil

	case sessionMsg:
		m.sess = session.Session(msg)
		return m, nil

	case loadErrMsg:
		// Failures degrade to a banner; the dashboard stays up.
		m.lastError = msg.err.Error()
		m.loading = max(0, m.loading-1)
		return m, nil
	}

	return m, nil
}

// shiftWindow formats a shift's time range for display.
func shiftWindow(s api.Shift) string {
	const layout = "Mon 02 Jan 15:04"
	return s.StartTime.Format(layout) + " - " + s.EndTime.Format(layout)
}
