package main

import (
	"github.com/spf13/cobra"

	"github.com/promptdesk/promptdesk/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running promptdesk server via HTTP.

These commands require a running server (promptdesk serve).
Use --server to specify a custom server URL.

Examples:
  promptdesk api health                 # Check server health
  promptdesk api categories             # List activity categories
  promptdesk api prompts save ...       # Save a finished prompt`,
}

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Prompt authoring commands",
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Management session commands",
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8585", "Server URL",
	)

	// Health endpoints at top level of api
	apiCmd.AddCommand((&endpoints.HealthEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.ReadyEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.StatusEndpoint{}).Command(getServerURL))

	// Category catalog at top level
	apiCmd.AddCommand((&endpoints.ListCategoriesEndpoint{}).Command(getServerURL))
	apiCmd.AddCommand((&endpoints.ListSamplesEndpoint{}).Command(getServerURL))

	// Prompts as subcommand group
	promptsCmd.AddCommand((&endpoints.DraftPromptEndpoint{}).Command(getServerURL))
	promptsCmd.AddCommand((&endpoints.CheckCodeEndpoint{}).Command(getServerURL))
	promptsCmd.AddCommand((&endpoints.SavePromptEndpoint{}).Command(getServerURL))

	// Management sessions as subcommand group
	sessionsCmd.AddCommand((&endpoints.CreateSessionEndpoint{}).Command(getServerURL))
	sessionsCmd.AddCommand((&endpoints.GetSessionEndpoint{}).Command(getServerURL))
	sessionsCmd.AddCommand((&endpoints.SelectCategoryEndpoint{}).Command(getServerURL))
	sessionsCmd.AddCommand((&endpoints.SearchEndpoint{}).Command(getServerURL))
	sessionsCmd.AddCommand((&endpoints.DeleteRecordEndpoint{}).Command(getServerURL))
	sessionsCmd.AddCommand((&endpoints.BeginEditEndpoint{}).Command(getServerURL))
	sessionsCmd.AddCommand((&endpoints.SubmitEditEndpoint{}).Command(getServerURL))
	sessionsCmd.AddCommand((&endpoints.RestartSessionEndpoint{}).Command(getServerURL))

	// Swagger spec at top level
	apiCmd.AddCommand((&endpoints.SwaggerEndpoint{}).Command(getServerURL))

	apiCmd.AddCommand(promptsCmd)
	apiCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(apiCmd)
}
