package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/careops/shiftctl/internal/auth"
	"github.com/careops/shiftctl/internal/rbac"
	"github.com/careops/shiftctl/internal/session"
	"github.com/careops/shiftctl/internal/tui"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication credentials",
	Long: `Manage authentication credentials for the staffing backend.

Credentials are stored in the shiftctl credentials directory: the
bearer token and the cached profile, both private to your user.

Subcommands:
  login     Login with email and password
  register  Register a new staff account
  logout    Logout and remove credentials
  status    Show current authentication status

Examples:
  shiftctl auth login --email nurse@hospital.org
  shiftctl auth status
  shiftctl auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// authLoginCmd handles user login
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to the staffing backend",
	Long: `Login with your email and password.

When flags are omitted, an interactive form collects them.
After logging in, your access token is saved locally and attached to
every subsequent command.

Examples:
  shiftctl auth login
  shiftctl auth login --email nurse@hospital.org --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			in, err := tui.RunLoginForm()
			if err != nil {
				return err
			}
			if email == "" {
				email = in.Email
			}
			if password == "" {
				password = in.Password
			}
		}

		printf(cmd, "Logging in as: %s\n", email)

		sess, err := a.Auth.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		printf(cmd, "Login successful.\n")
		if sess.User != nil {
			printf(cmd, "Role: %s\n", sess.User.Role.Label())
		}
		return nil
	},
}

// authRegisterCmd registers a new staff account
var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new staff account",
	Long: `Register a new staff account with the backend.

Registration does not log you in; run 'shiftctl auth login' afterwards.
The department can be set later by an administrator, so the form does
not ask for one.

Examples:
  shiftctl auth register
  shiftctl auth register --name "Jo Doe" --email jo@hospital.org --password secret --role nurse`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetString("role")
		departmentID, _ := cmd.Flags().GetInt("department-id")

		input := auth.RegisterInput{
			Name:     name,
			Email:    email,
			Password: password,
			Role:     rbac.Role(role),
		}
		if cmd.Flags().Changed("department-id") {
			input.DepartmentID = &departmentID
		}

		if name == "" || email == "" || password == "" {
			form, err := tui.RunRegisterForm()
			if err != nil {
				return err
			}
			input.Name = form.Name
			input.Email = form.Email
			input.Password = form.Password
			input.Role = form.Role
		}

		user, err := a.Auth.Register(cmd.Context(), input)
		if err != nil {
			return err
		}

		printf(cmd, "Registered %s (%s).\n", user.Name, user.Email)
		printf(cmd, "Run 'shiftctl auth login' to sign in.\n")
		return nil
	},
}

// authLogoutCmd handles user logout
var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and remove credentials",
	Long: `Logout and remove the stored credentials.

Purely local: the backend is not contacted, and logging out twice is
harmless.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		sess := a.Store.Current()
		if !sess.IsAuthenticated() {
			printf(cmd, "Not logged in.\n")
			return nil
		}
		if sess.User != nil {
			printf(cmd, "Logging out: %s\n", sess.User.Email)
		}

		a.Auth.Logout()
		printf(cmd, "Logged out.\n")
		return nil
	},
}

// authStatusCmd shows current auth status
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	Long: `Show the current authentication status and user information.

Checks the stored token's expiry claim locally, then confirms the
session against the backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		sess := a.Store.Current()
		if !sess.IsAuthenticated() {
			printf(cmd, "Not logged in.\n")
			printf(cmd, "Use 'shiftctl auth login' to authenticate.\n")
			return nil
		}

		if session.TokenExpired(sess.Token, time.Now()) {
			printf(cmd, "Stored token has expired.\n")
			printf(cmd, "Use 'shiftctl auth login' to re-authenticate.\n")
			return nil
		}

		user, err := a.Auth.CurrentUser(cmd.Context())
		if err != nil {
			printf(cmd, "Token may be expired or invalid.\n")
			printf(cmd, "Use 'shiftctl auth login' to re-authenticate.\n")
			return nil
		}

		printf(cmd, "Logged in\n")
		printf(cmd, "User ID:  %d\n", user.ID)
		printf(cmd, "Name:     %s\n", user.Name)
		printf(cmd, "Email:    %s\n", user.Email)
		printf(cmd, "Role:     %s\n", user.Role.Label())
		if user.DepartmentID != nil {
			printf(cmd, "Dept:     %d\n", *user.DepartmentID)
		}
		if exp, ok := session.TokenExpiry(sess.Token); ok {
			printf(cmd, "Expires:  %s\n", exp.Format(time.RFC1123))
		}
		return nil
	},
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)

	authLoginCmd.Flags().String("email", "", "Email address")
	authLoginCmd.Flags().String("password", "", "Password")

	authRegisterCmd.Flags().String("name", "", "Full name")
	authRegisterCmd.Flags().String("email", "", "Email address")
	authRegisterCmd.Flags().String("password", "", "Password")
	authRegisterCmd.Flags().String("role", "staff", "Role: admin, manager, doctor, nurse, staff")
	authRegisterCmd.Flags().Int("department-id", 0, "Department id (optional)")

	rootCmd.AddCommand(authCmd)
}
