// ABOUTME: Logout command for the mediastudio CLI
// ABOUTME: Clears the stored session token

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	Long:  `Remove the stored session token. Safe to run when already logged out.`,
	Run: func(cmd *cobra.Command, args []string) {
		runLogout(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(w io.Writer) {
	sess := restoredSession()
	sess.Logout()

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]string{"status": "ok"}, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, "Logged out.")
	}
}
