package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/careops/shiftctl/internal/rbac"
)

// LoginInput is what the login form collects.
type LoginInput struct {
	Email    string
	Password string
}

// RunLoginForm prompts for credentials interactively. Used when the
// login command is invoked without flags.
func RunLoginForm() (LoginInput, error) {
	var in LoginInput

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@hospital.org").
				Value(&in.Email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&in.Password),
		),
	)

	if err := form.Run(); err != nil {
		return LoginInput{}, err
	}
	return in, nil
}

// RegisterFormInput is what the registration form collects. The form
// never asks for a department; registration sends the backend's
// accepted "no department" default instead.
type RegisterFormInput struct {
	Name     string
	Email    string
	Password string
	Role     rbac.Role
}

// RunRegisterForm prompts for the registration fields interactively.
func RunRegisterForm() (RegisterFormInput, error) {
	var in RegisterFormInput
	role := string(rbac.RoleStaff)

	var roleOptions []huh.Option[string]
	for _, r := range rbac.Roles() {
		roleOptions = append(roleOptions, huh.NewOption(r.Label(), string(r)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full name").
				Value(&in.Name),
			huh.NewInput().
				Title("Email").
				Placeholder("you@hospital.org").
				Value(&in.Email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&in.Password),
			huh.NewSelect[string]().
				Title("Role").
				Options(roleOptions...).
				Value(&role),
		),
	)

	if err := form.Run(); err != nil {
		return RegisterFormInput{}, err
	}

	in.Role = rbac.Role(role)
	return in, nil
}
