package main

import (
	"github.com/spf13/cobra"

	"github.com/promptdesk/promptdesk/internal/api"
	"github.com/promptdesk/promptdesk/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "promptdesk",
	Short: "AI prompt authoring and management for classroom activities",
	Long: `Promptdesk helps teachers author and manage AI activity prompts.

Prompts are organized into four activity categories: vision, text,
image, and chatbot. For each one a teacher can pick a sample prompt,
write their own, or have a draft generated from a topic. Saved prompts
are keyed by a short activity code that students enter to start the
activity, and where a category calls for it a student-facing summary
is generated alongside the prompt.

Saved prompts live in a remote Notion workspace, one database per
category. The management flow searches records by teacher password and
supports deleting and editing them in place.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.promptdesk/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "promptdesk home directory (default: ~/.promptdesk)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
