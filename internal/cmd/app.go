package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/careops/shiftctl/internal/api"
	"github.com/careops/shiftctl/internal/auth"
	"github.com/careops/shiftctl/internal/config"
	"github.com/careops/shiftctl/internal/errors"
	"github.com/careops/shiftctl/internal/log"
	"github.com/careops/shiftctl/internal/rbac"
	"github.com/careops/shiftctl/internal/session"
)

// App bundles the wired-up application: configuration, API client,
// session store, and auth service. Built once per invocation; every
// command gets it through getApp.
type App struct {
	Config config.Config
	Client *api.Client
	Store  *session.Store
	Auth   *auth.Service
}

var app *App

// getApp builds the application container on first use. The session is
// restored from disk here, so every command starts with whatever
// credential the last login left behind.
func getApp(cmd *cobra.Command) (*App, error) {
	if app != nil {
		return app, nil
	}

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("api-url"); v != "" {
		cfg.APIURL = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}

	log.SetDefault(log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: log.ParseFormat(cfg.LogFormat),
		Output: cmd.ErrOrStderr(),
	}))

	client := api.NewClient(cfg.APIURL)
	client.HTTPClient.Timeout = cfg.Timeout
	if cfg.AIRateSeconds > 0 {
		client.SetAIInterval(time.Duration(cfg.AIRateSeconds) * time.Second)
	}

	store := session.NewStore(cfg.CredentialsDir)
	service := auth.NewService(client, store)
	store.Restore()

	app = &App{
		Config: cfg,
		Client: client,
		Store:  store,
		Auth:   service,
	}
	return app, nil
}

// requireSession fails fast when no token is present. Commands hitting
// authenticated endpoints call this to give a clear message instead of
// a backend 401.
func (a *App) requireSession() error {
	if !a.Store.Current().IsAuthenticated() {
		return errors.NewNotLoggedInError()
	}
	return nil
}

// requirePermission applies the advisory role gate. The denial mirrors
// what the dashboard shows; the backend still enforces authorization
// on the call itself, so a permitted result here proves nothing.
func (a *App) requirePermission(perm rbac.Permission) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	sess := a.Store.Current()
	if sess.User == nil {
		// Token without a profile: let the backend decide.
		return nil
	}
	if !rbac.HasPermission(sess.User.Role, perm) {
		return errors.NewPermissionDeniedError(string(sess.User.Role), string(perm))
	}
	return nil
}

// printf writes to the command's stdout.
func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
