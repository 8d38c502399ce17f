// Package auth is the single writer of the session store. It drives
// the backend's authentication endpoints and translates their
// inconsistent response shapes into one Session.
package auth

import (
	"context"
	"strings"

	"github.com/careops/shiftctl/internal/api"
	"github.com/careops/shiftctl/internal/errors"
	"github.com/careops/shiftctl/internal/log"
	"github.com/careops/shiftctl/internal/rbac"
	"github.com/careops/shiftctl/internal/session"
)

// DefaultDepartmentID is sent on register when the caller's flow never
// collected a department. The backend accepts 0 as "no department";
// whether that is a deliberate sentinel or a workaround for backend
// validation is unclear, so the value is preserved as observed.
const DefaultDepartmentID = 0

// Service performs login, registration, and logout.
type Service struct {
	client *api.Client
	store  *session.Store
	logger *log.Logger
}

// NewService wires the client and store together: the store feeds the
// client its credential, and a 401 on any authenticated call clears
// the store so the UI falls back to anonymous instead of retrying a
// dead token.
func NewService(client *api.Client, store *session.Store) *Service {
	s := &Service{
		client: client,
		store:  store,
		logger: log.L().With("component", "auth"),
	}

	store.Attach(client)
	client.OnUnauthorized = func() {
		s.logger.Warn("authenticated call returned 401, clearing session")
		store.Clear()
	}

	return s
}

// Login authenticates against the backend and stores the resulting
// session. The session is only mutated on success; a failed login
// leaves whatever session existed untouched.
func (s *Service) Login(ctx context.Context, email, password string) (session.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return session.Session{}, errors.NewRequiredFieldError("email")
	}
	if password == "" {
		return session.Session{}, errors.NewRequiredFieldError("password")
	}

	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return session.Session{}, err
	}
	if resp.AccessToken == "" {
		// The backend answered 200 but without a usable credential.
		return session.Session{}, errors.NewTokenMissingError()
	}

	user := resp.Profile()
	if err := s.store.Set(resp.AccessToken, user); err != nil {
		return session.Session{}, err
	}

	s.logger.Info("logged in", "email", email, "has_profile", user != nil)
	return s.store.Current(), nil
}

// RegisterInput is the account creation form.
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Role         rbac.Role
	DepartmentID *int
}

// Register creates an account. It does not log the new user in; the
// caller decides whether to continue into the login flow. If the
// backend volunteers a token anyway it is kept, as a bonus rather
// than a guarantee.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*api.User, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.NewRequiredFieldError("name")
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, errors.NewRequiredFieldError("email")
	}
	if input.Password == "" {
		return nil, errors.NewRequiredFieldError("password")
	}
	if !input.Role.Valid() {
		return nil, errors.New(errors.ErrCodeValidationRole,
			"role must be one of: admin, manager, doctor, nurse, staff")
	}

	departmentID := DefaultDepartmentID
	if input.DepartmentID != nil {
		departmentID = *input.DepartmentID
	}

	resp, err := s.client.Register(ctx, api.RegisterInput{
		Name:         input.Name,
		Email:        input.Email,
		Password:     input.Password,
		Role:         input.Role,
		DepartmentID: departmentID,
	})
	if err != nil {
		return nil, err
	}

	if resp.AccessToken != "" {
		if err := s.store.Set(resp.AccessToken, &resp.User); err != nil {
			s.logger.WithError(err).Warn("registered but failed to persist bonus token")
		}
	}

	s.logger.Info("registered", "email", input.Email, "role", input.Role)
	user := resp.User
	return &user, nil
}

// Logout clears the session. Purely local: no network call, and
// calling it while already anonymous is fine.
func (s *Service) Logout() {
	s.store.Clear()
	s.logger.Info("logged out")
}

// CurrentUser refreshes the profile from the backend and reconciles
// the store, for sessions restored with a token but no profile. On
// 401 the client hook has already cleared the session.
func (s *Service) CurrentUser(ctx context.Context) (*api.User, error) {
	user, err := s.client.Me(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.store.Set(s.store.Current().Token, user); err != nil {
		s.logger.WithError(err).Warn("failed to persist refreshed profile")
	}
	return user, nil
}

// Session returns the current session from the store.
func (s *Service) Session() session.Session {
	return s.store.Current()
}
