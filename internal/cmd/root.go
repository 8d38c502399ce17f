package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shiftctl",
	Short: "Hospital staffing administration from the terminal",
	Long: `shiftctl is the terminal front end for the hospital staffing service.
It manages departments, shifts, staff, and assignments, drives the AI
scheduling helpers, and serves the public announcement board, all
against the staffing backend's REST API.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a context so in-flight
// requests stop on Ctrl+C.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default is $XDG_CONFIG_HOME/shiftctl/config.yaml)")
	rootCmd.PersistentFlags().String("api-url", "", "staffing backend base URL (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")
}
