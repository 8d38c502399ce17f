package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/careops/shiftctl/internal/api"
	"github.com/careops/shiftctl/internal/rbac"
)

func TestCanView(t *testing.T) {
	tests := []struct {
		role rbac.Role
		tab  Tab
		want bool
	}{
		{rbac.RoleAdmin, TabDepartments, true},
		{rbac.RoleAdmin, TabStaff, true},
		{rbac.RoleManager, TabShifts, true},
		{rbac.RoleManager, TabStaff, false},
		{rbac.RoleDoctor, TabShifts, true},
		{rbac.RoleNurse, TabAssignments, true},
		{rbac.RoleNurse, TabStaff, false},
		{rbac.RoleStaff, TabDepartments, true},
		{rbac.RoleStaff, TabStaff, false},
		{"", TabDepartments, false}, // anonymous sees nothing
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+tt.tab.title(), func(t *testing.T) {
			assert.Equal(t, tt.want, canView(tt.role, tt.tab))
		})
	}
}

func TestTabTitlesCoverAllTabs(t *testing.T) {
	for tab := Tab(0); tab < tabCount; tab++ {
		assert.NotEmpty(t, tab.title())
	}
}

func TestShiftWindow(t *testing.T) {
	s := api.Shift{
		StartTime: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 1, 16, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "Tue 01 Sep 08:00 - Tue 01 Sep 16:00", shiftWindow(s))
}
