package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/careops/shiftctl/internal/api"
	"github.com/careops/shiftctl/internal/rbac"
)

var assignmentCmd = &cobra.Command{
	Use:     "assignment",
	Aliases: []string{"assignments", "assign"},
	Short:   "Manage shift assignments",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var assignmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assignments",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		assignments, err := a.Client.ListAssignments(cmd.Context())
		if err != nil {
			return err
		}

		if len(assignments) == 0 {
			printf(cmd, "No assignments.\n")
			return nil
		}
		printf(cmd, "%-6s %-8s %-8s %s\n", "ID", "USER", "SHIFT", "EMERGENCY")
		for _, as := range assignments {
			flag := ""
			if as.IsEmergency {
				flag = "yes"
			}
			printf(cmd, "%-6d %-8d %-8d %s\n", as.ID, as.UserID, as.ShiftID, flag)
		}
		return nil
	},
}

var assignmentCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Assign a user to a shift",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requirePermission(rbac.PermManageAssignments); err != nil {
			return err
		}

		userID, _ := cmd.Flags().GetInt("user-id")
		shiftID, _ := cmd.Flags().GetInt("shift-id")
		emergency, _ := cmd.Flags().GetBool("emergency")

		as, err := a.Client.CreateAssignment(cmd.Context(), api.AssignmentInput{
			UserID:      userID,
			ShiftID:     shiftID,
			IsEmergency: emergency,
		})
		if err != nil {
			return err
		}

		printf(cmd, "Created assignment %d (user %d on shift %d).\n", as.ID, as.UserID, as.ShiftID)
		return nil
	},
}

var assignmentDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove an assignment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requirePermission(rbac.PermManageAssignments); err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		if err := a.Client.DeleteAssignment(cmd.Context(), id); err != nil {
			return err
		}

		printf(cmd, "Deleted assignment %d.\n", id)
		return nil
	},
}

func init() {
	assignmentCmd.AddCommand(assignmentListCmd)
	assignmentCmd.AddCommand(assignmentCreateCmd)
	assignmentCmd.AddCommand(assignmentDeleteCmd)

	assignmentCreateCmd.Flags().Int("user-id", 0, "User id (required)")
	assignmentCreateCmd.Flags().Int("shift-id", 0, "Shift id (required)")
	assignmentCreateCmd.Flags().Bool("emergency", false, "Mark as emergency cover")

	rootCmd.AddCommand(assignmentCmd)
}
