package cmd

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/careops/shiftctl/internal/api"
	"github.com/careops/shiftctl/internal/errors"
	"github.com/careops/shiftctl/internal/rbac"
)

var shiftCmd = &cobra.Command{
	Use:     "shift",
	Aliases: []string{"shifts"},
	Short:   "Manage shifts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var shiftListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shifts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		shifts, err := a.Client.ListShifts(cmd.Context())
		if err != nil {
			return err
		}

		if len(shifts) == 0 {
			printf(cmd, "No shifts.\n")
			return nil
		}
		printf(cmd, "%-6s %-6s %-18s %-18s %-10s %s\n", "ID", "DEPT", "START", "END", "ROLE", "COUNT")
		for _, s := range shifts {
			printf(cmd, "%-6d %-6d %-18s %-18s %-10s %d\n",
				s.ID, s.DepartmentID,
				s.StartTime.Format("2006-01-02 15:04"),
				s.EndTime.Format("2006-01-02 15:04"),
				s.RequiredRole, s.RequiredStaffCount)
		}
		return nil
	},
}

var shiftGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one shift",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		s, err := a.Client.GetShift(cmd.Context(), id)
		if err != nil {
			return err
		}

		printf(cmd, "ID:         %d\n", s.ID)
		printf(cmd, "Department: %d\n", s.DepartmentID)
		printf(cmd, "Start:      %s\n", s.StartTime.Format(time.RFC1123))
		printf(cmd, "End:        %s\n", s.EndTime.Format(time.RFC1123))
		printf(cmd, "Role:       %s\n", s.RequiredRole)
		printf(cmd, "Staff:      %d\n", s.RequiredStaffCount)
		return nil
	},
}

func parseShiftTime(flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.NewRequiredFieldError(flag)
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.Wrap(errors.ErrCodeValidationRequired,
			flag+" must be RFC3339, e.g. 2026-09-01T07:00:00Z", err)
	}
	return t, nil
}

var shiftCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a shift",
	Long: `Create a shift in a department.

Times are RFC3339; the end must come after the start, which is checked
before anything is sent to the backend.

Examples:
  shiftctl shift create --department-id 2 --start 2026-09-01T07:00:00Z --end 2026-09-01T15:00:00Z --role nurse --count 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requirePermission(rbac.PermManageShifts); err != nil {
			return err
		}

		departmentID, _ := cmd.Flags().GetInt("department-id")
		startStr, _ := cmd.Flags().GetString("start")
		endStr, _ := cmd.Flags().GetString("end")
		role, _ := cmd.Flags().GetString("role")
		count, _ := cmd.Flags().GetInt("count")

		start, err := parseShiftTime("start", startStr)
		if err != nil {
			return err
		}
		end, err := parseShiftTime("end", endStr)
		if err != nil {
			return err
		}

		s, err := a.Client.CreateShift(cmd.Context(), api.ShiftInput{
			DepartmentID:       departmentID,
			StartTime:          start,
			EndTime:            end,
			RequiredRole:       rbac.Role(role),
			RequiredStaffCount: count,
		})
		if err != nil {
			return err
		}

		printf(cmd, "Created shift %d.\n", s.ID)
		return nil
	},
}

var shiftUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a shift",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requirePermission(rbac.PermManageShifts); err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		var patch api.ShiftPatch
		if cmd.Flags().Changed("start") {
			v, _ := cmd.Flags().GetString("start")
			t, err := parseShiftTime("start", v)
			if err != nil {
				return err
			}
			patch.StartTime = &t
		}
		if cmd.Flags().Changed("end") {
			v, _ := cmd.Flags().GetString("end")
			t, err := parseShiftTime("end", v)
			if err != nil {
				return err
			}
			patch.EndTime = &t
		}
		if cmd.Flags().Changed("role") {
			v, _ := cmd.Flags().GetString("role")
			r := rbac.Role(v)
			patch.RequiredRole = &r
		}
		if cmd.Flags().Changed("count") {
			v, _ := cmd.Flags().GetInt("count")
			patch.RequiredStaffCount = &v
		}

		s, err := a.Client.UpdateShift(cmd.Context(), id, patch)
		if err != nil {
			return err
		}

		printf(cmd, "Updated shift %d.\n", s.ID)
		return nil
	},
}

var shiftDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a shift",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requirePermission(rbac.PermManageShifts); err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		if err := a.Client.DeleteShift(cmd.Context(), id); err != nil {
			return err
		}

		printf(cmd, "Deleted shift %d.\n", id)
		return nil
	},
}

func init() {
	shiftCmd.AddCommand(shiftListCmd)
	shiftCmd.AddCommand(shiftGetCmd)
	shiftCmd.AddCommand(shiftCreateCmd)
	shiftCmd.AddCommand(shiftUpdateCmd)
	shiftCmd.AddCommand(shiftDeleteCmd)

	for _, c := range []*cobra.Command{shiftCreateCmd, shiftUpdateCmd} {
		c.Flags().Int("department-id", 0, "Department id")
		c.Flags().String("start", "", "Start time (RFC3339)")
		c.Flags().String("end", "", "End time (RFC3339)")
		c.Flags().String("role", "", "Required role")
		c.Flags().Int("count", 1, "Required staff count")
	}

	rootCmd.AddCommand(shiftCmd)
}
