package cmd

import (
	"github.com/spf13/cobra"

	"github.com/careops/shiftctl/internal/api"
	"github.com/careops/shiftctl/internal/rbac"
)

var emergencyCmd = &cobra.Command{
	Use:   "emergency",
	Short: "Emergency staffing controls",
	Long: `Emergency staffing controls.

'alert' triggers the backend's red-alert pipeline for a department:
the service drafts a reallocation plan, broadcasts a voice alert, and
reassigns staff. 'resolve' stands the alert down. Both are restricted
to admins and managers on the server side as well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var emergencyAlertCmd = &cobra.Command{
	Use:   "alert",
	Short: "Trigger a red alert for a department",
	Long: `Trigger a red alert for a department.

Examples:
  shiftctl emergency alert --department-id 2 --type "ICU surge"
  shiftctl emergency alert --department-id 4 --type "staff no-show - 3 nurses" --notes "night shift"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requirePermission(rbac.PermManageAssignments); err != nil {
			return err
		}

		departmentID, _ := cmd.Flags().GetInt("department-id")
		emergencyType, _ := cmd.Flags().GetString("type")
		notes, _ := cmd.Flags().GetString("notes")

		result, err := a.Client.TriggerRedAlert(cmd.Context(), api.RedAlertInput{
			EmergencyType: emergencyType,
			DepartmentID:  departmentID,
			Notes:         notes,
		})
		if err != nil {
			return err
		}

		printf(cmd, "Red alert triggered.\n")
		if result.Message != "" {
			printf(cmd, "%s\n", result.Message)
		}
		return nil
	},
}

var emergencyResolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a department's red alert",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requirePermission(rbac.PermManageAssignments); err != nil {
			return err
		}

		departmentID, _ := cmd.Flags().GetInt("department-id")

		result, err := a.Client.ResolveRedAlert(cmd.Context(), departmentID)
		if err != nil {
			return err
		}

		printf(cmd, "Red alert resolved.\n")
		if result.Message != "" {
			printf(cmd, "%s\n", result.Message)
		}
		return nil
	},
}

func init() {
	emergencyCmd.AddCommand(emergencyAlertCmd)
	emergencyCmd.AddCommand(emergencyResolveCmd)

	emergencyAlertCmd.Flags().Int("department-id", 0, "Affected department id (required)")
	emergencyAlertCmd.Flags().String("type", "", "Emergency type, e.g. \"ICU surge\" (required)")
	emergencyAlertCmd.Flags().String("notes", "", "Additional notes")

	emergencyResolveCmd.Flags().Int("department-id", 0, "Department id (required)")

	rootCmd.AddCommand(emergencyCmd)
}
