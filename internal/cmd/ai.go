package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/careops/shiftctl/internal/errors"
	"github.com/careops/shiftctl/internal/rbac"
)

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "AI scheduling helpers",
	Long: `AI scheduling helpers backed by the staffing service.

These wrap the backend's model endpoints: scheduling suggestions,
workload analysis, announcement drafting, and text-to-speech. Calls
are paced locally because each one is a model invocation upstream.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var aiSuggestCmd = &cobra.Command{
	Use:   "suggest <shift-id>",
	Short: "Suggest staff for a shift",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requirePermission(rbac.PermAIScheduling); err != nil {
			return err
		}

		shiftID, err := atoiArg(args[0], "shift id")
		if err != nil {
			return err
		}

		resp, err := a.Client.ScheduleSuggestions(cmd.Context(), shiftID)
		if err != nil {
			return err
		}

		printf(cmd, "%s\n", resp.Suggestion)
		printf(cmd, "\n(model: %s)\n", resp.Model)
		return nil
	},
}

var aiWorkloadCmd = &cobra.Command{
	Use:   "workload",
	Short: "Analyze current staff workload",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requirePermission(rbac.PermAIScheduling); err != nil {
			return err
		}

		// Build the staff snapshot the analysis endpoint expects from
		// the live user list.
		users, err := a.Client.ListUsers(cmd.Context())
		if err != nil {
			return err
		}
		staffData := make([]map[string]any, 0, len(users))
		for _, u := range users {
			staffData = append(staffData, map[string]any{
				"name": u.Name,
				"role": string(u.Role),
			})
		}

		resp, err := a.Client.AnalyzeWorkload(cmd.Context(), staffData)
		if err != nil {
			return err
		}

		printf(cmd, "%s\n", resp.Analysis)
		return nil
	},
}

var aiTipCmd = &cobra.Command{
	Use:   "tip",
	Short: "Print a scheduling tip",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		resp, err := a.Client.SchedulingTip(cmd.Context())
		if err != nil {
			return err
		}

		printf(cmd, "%s\n", resp.Tip)
		return nil
	},
}

var aiAnnounceCmd = &cobra.Command{
	Use:   "announce <message>",
	Short: "Draft an announcement from a short message",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requirePermission(rbac.PermAIAnnouncements); err != nil {
			return err
		}

		resp, err := a.Client.GenerateAnnouncement(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		printf(cmd, "%s\n", resp.Suggestion)
		return nil
	},
}

var aiTTSCmd = &cobra.Command{
	Use:   "tts <text>",
	Short: "Synthesize speech for an announcement",
	Long: `Synthesize speech for an announcement and write the audio to a file.

The backend returns the audio inline as base64; this command decodes
it and writes the bytes out.

Examples:
  shiftctl ai tts "The ICU visiting hours end at 8pm" --out announcement.mp3`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requirePermission(rbac.PermAIAnnouncements); err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")

		payload, err := a.Client.TextToSpeech(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		audio, err := payload.Bytes()
		if err != nil {
			return err
		}

		if err := os.WriteFile(out, audio, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeCredentialWrite, "failed to write audio file", err)
		}

		printf(cmd, "Wrote %d bytes of %s to %s\n", len(audio), payload.ContentType, out)
		return nil
	},
}

func atoiArg(s, name string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(errors.ErrCodeValidationRequired, name+" must be a number")
	}
	return n, nil
}

func init() {
	aiCmd.AddCommand(aiSuggestCmd)
	aiCmd.AddCommand(aiWorkloadCmd)
	aiCmd.AddCommand(aiTipCmd)
	aiCmd.AddCommand(aiAnnounceCmd)
	aiCmd.AddCommand(aiTTSCmd)

	aiTTSCmd.Flags().String("out", "announcement.mp3", "Output audio file")

	rootCmd.AddCommand(aiCmd)
}
