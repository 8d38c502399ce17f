package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/careops/shiftctl/internal/api"
	"github.com/careops/shiftctl/internal/errors"
)

// The board commands hit the public endpoints only, so they work
// without a session.

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Public announcement board",
	Long: `Public announcement board.

These commands use the backend's unauthenticated public endpoints,
the same ones the waiting-room display consumes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		departments, err := a.Client.PublicDepartments(cmd.Context())
		if err != nil {
			return err
		}

		printf(cmd, "%-6s %s\n", "ID", "DEPARTMENT")
		for _, d := range departments {
			printf(cmd, "%-6d %s\n", d.ID, d.Name)
		}
		return nil
	},
}

var boardVoiceCmd = &cobra.Command{
	Use:   "voice",
	Short: "Generate a spoken status update for a department",
	Long: `Generate a spoken status update for a department.

The update type is one of wait_time, visiting, directions, or safety,
spoken in English or Spanish.

Examples:
  shiftctl board voice --department-id 2 --type wait_time --out update.mp3
  shiftctl board voice --department-id 2 --type safety --language es --note "Flu season precautions"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		departmentID, _ := cmd.Flags().GetInt("department-id")
		language, _ := cmd.Flags().GetString("language")
		updateType, _ := cmd.Flags().GetString("type")
		note, _ := cmd.Flags().GetString("note")
		out, _ := cmd.Flags().GetString("out")

		update, err := a.Client.PublicVoiceUpdate(cmd.Context(), api.VoiceUpdateInput{
			DepartmentID: departmentID,
			Language:     language,
			UpdateType:   updateType,
			CustomNote:   note,
		})
		if err != nil {
			return err
		}

		printf(cmd, "%s\n\n", update.Transcript)
		printf(cmd, "Coverage: %.0f%%  Estimated wait: %d min\n", update.CoveragePct, update.EstimatedWaitMin)

		audio, err := update.Bytes()
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, audio, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeCredentialWrite, "failed to write audio file", err)
		}
		printf(cmd, "Wrote %d bytes of %s to %s\n", len(audio), update.ContentType, out)
		return nil
	},
}

func init() {
	boardCmd.AddCommand(boardVoiceCmd)

	boardVoiceCmd.Flags().Int("department-id", 0, "Department id (required)")
	boardVoiceCmd.Flags().String("language", "en", "Language: en or es")
	boardVoiceCmd.Flags().String("type", "wait_time", "Update type: wait_time, visiting, directions, safety")
	boardVoiceCmd.Flags().String("note", "", "Custom note appended to the update")
	boardVoiceCmd.Flags().String("out", "update.mp3", "Output audio file")

	rootCmd.AddCommand(boardCmd)
}
