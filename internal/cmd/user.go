package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/careops/shiftctl/internal/api"
	"github.com/careops/shiftctl/internal/rbac"
)

var userCmd = &cobra.Command{
	Use:     "user",
	Aliases: []string{"users", "staff"},
	Short:   "Manage staff profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List staff",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requirePermission(rbac.PermManageUsers); err != nil {
			return err
		}

		users, err := a.Client.ListUsers(cmd.Context())
		if err != nil {
			return err
		}

		if len(users) == 0 {
			printf(cmd, "No staff.\n")
			return nil
		}
		printf(cmd, "%-6s %-24s %-28s %-10s %s\n", "ID", "NAME", "EMAIL", "ROLE", "DEPT")
		for _, u := range users {
			dept := "-"
			if u.DepartmentID != nil {
				dept = strconv.Itoa(*u.DepartmentID)
			}
			printf(cmd, "%-6d %-24s %-28s %-10s %s\n", u.ID, u.Name, u.Email, u.Role, dept)
		}
		return nil
	},
}

var userGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one staff profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requirePermission(rbac.PermManageUsers); err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		u, err := a.Client.GetUser(cmd.Context(), id)
		if err != nil {
			return err
		}

		printf(cmd, "ID:    %d\n", u.ID)
		printf(cmd, "Name:  %s\n", u.Name)
		printf(cmd, "Email: %s\n", u.Email)
		printf(cmd, "Role:  %s\n", u.Role.Label())
		if u.DepartmentID != nil {
			printf(cmd, "Dept:  %d\n", *u.DepartmentID)
		}
		return nil
	},
}

var userUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a staff profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requirePermission(rbac.PermManageUsers); err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		var patch api.UserPatch
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			patch.Name = &v
		}
		if cmd.Flags().Changed("role") {
			v, _ := cmd.Flags().GetString("role")
			r := rbac.Role(v)
			patch.Role = &r
		}
		if cmd.Flags().Changed("department-id") {
			v, _ := cmd.Flags().GetInt("department-id")
			patch.DepartmentID = &v
		}
		if cmd.Flags().Changed("active") {
			v, _ := cmd.Flags().GetBool("active")
			patch.IsActive = &v
		}

		u, err := a.Client.UpdateUser(cmd.Context(), id, patch)
		if err != nil {
			return err
		}

		printf(cmd, "Updated %s (%d).\n", u.Name, u.ID)
		return nil
	},
}

func init() {
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userGetCmd)
	userCmd.AddCommand(userUpdateCmd)

	userUpdateCmd.Flags().String("name", "", "Full name")
	userUpdateCmd.Flags().String("role", "", "Role")
	userUpdateCmd.Flags().Int("department-id", 0, "Department id")
	userUpdateCmd.Flags().Bool("active", true, "Account active")

	rootCmd.AddCommand(userCmd)
}
