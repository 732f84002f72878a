// ABOUTME: Root command for the mediastudio CLI
// ABOUTME: Handles global flags, configuration, and launching the TUI

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/medvista/mediastudio-cli/internal/client"
	"github.com/medvista/mediastudio-cli/internal/debuglog"
	"github.com/medvista/mediastudio-cli/internal/session"
	"github.com/medvista/mediastudio-cli/internal/tui"
	"github.com/spf13/cobra"
)

var (
	apiURL     string
	jsonOutput bool
)

const defaultAPIURL = "http://localhost:8000"

// rootCmd is the base command; invoked bare it starts the TUI
var rootCmd = &cobra.Command{
	Use:   "mediastudio",
	Short: "Terminal client for the Healthcare Media Studio",
	Long: `mediastudio is a terminal client for the Healthcare Media Studio backend.

Run it without arguments for the interactive TUI, or use the subcommands
for one-shot scripted use.

Environment Variables:
  MEDIASTUDIO_API_URL  Backend API URL (default: http://localhost:8000)
  MEDIASTUDIO_DEBUG    Set to 1 to write a debug log to the config directory`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env in the working directory may supply the variables above.
		godotenv.Load()

		if os.Getenv("MEDIASTUDIO_DEBUG") == "1" {
			debuglog.Init(session.DefaultConfigDir())
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir := session.DefaultConfigDir()
		sess := session.New(configDir)
		sess.Restore()

		return tui.Run(client.New(GetAPIURL()), sess, configDir)
	},
}

// Execute runs the root command
func Execute() error {
	defer debuglog.Close()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides MEDIASTUDIO_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("MEDIASTUDIO_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// restoredSession loads the persisted session for one-shot commands.
func restoredSession() *session.Store {
	sess := session.New(session.DefaultConfigDir())
	sess.Restore()
	return sess
}

// requireAuth prints a hint and returns false when no session is stored.
func requireAuth(sess *session.Store, w io.Writer) bool {
	if sess.IsAuthenticated() {
		return true
	}
	fmt.Fprintln(w, "Error: not logged in. Run 'mediastudio login' first.")
	return false
}
