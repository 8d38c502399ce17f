package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/careops/shiftctl/internal/api"
	"github.com/careops/shiftctl/internal/rbac"
)

var departmentCmd = &cobra.Command{
	Use:     "department",
	Aliases: []string{"departments", "dept"},
	Short:   "Manage departments",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var departmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List departments",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		departments, err := a.Client.ListDepartments(cmd.Context())
		if err != nil {
			return err
		}

		if len(departments) == 0 {
			printf(cmd, "No departments.\n")
			return nil
		}
		printf(cmd, "%-6s %-24s %s\n", "ID", "NAME", "DESCRIPTION")
		for _, d := range departments {
			printf(cmd, "%-6d %-24s %s\n", d.ID, d.Name, d.Description)
		}
		return nil
	},
}

var departmentGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one department",
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

		d, err := a.Client.GetDepartment(cmd.Context(), id)
		if err != nil {
			return err
		}

		printf(cmd, "ID:          %d\n", d.ID)
		printf(cmd, "Name:        %s\n", d.Name)
		printf(cmd, "Description: %s\n", d.Description)
		return nil
	},
}

var departmentCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a department",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requirePermission(rbac.PermManageDepartments); err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")

		d, err := a.Client.CreateDepartment(cmd.Context(), api.DepartmentInput{
			Name:        name,
			Description: description,
		})
		if err != nil {
			return err
		}

		printf(cmd, "Created department %d: %s\n", d.ID, d.Name)
		return nil
	},
}

var departmentDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a department",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requirePermission(rbac.PermManageDepartments); err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		if err := a.Client.DeleteDepartment(cmd.Context(), id); err != nil {
			return err
		}

		printf(cmd, "Deleted department %d.\n", id)
		return nil
	},
}

func init() {
	departmentCmd.AddCommand(departmentListCmd)
	departmentCmd.AddCommand(departmentGetCmd)
	departmentCmd.AddCommand(departmentCreateCmd)
	departmentCmd.AddCommand(departmentDeleteCmd)

	departmentCreateCmd.Flags().String("name", "", "Department name (required)")
	departmentCreateCmd.Flags().String("description", "", "Department description")

	rootCmd.AddCommand(departmentCmd)
}
