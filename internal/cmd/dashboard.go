package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/careops/shiftctl/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive staffing dashboard",
	Long: `Open the interactive dashboard.

Tabs for departments, shifts, staff, and assignments, loaded from the
backend on startup and on demand with 'r'. Views your role cannot see
show a permission notice instead; the backend enforces the real rules
either way.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		var program *tea.Program
		model := tui.NewDashboard(a.Client, a.Store, func() *tea.Program { return program })
		program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))

		_, err = program.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
