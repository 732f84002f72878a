// ABOUTME: Login command for the mediastudio CLI
// ABOUTME: Authenticates and stores the session token for later commands

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/medvista/mediastudio-cli/internal/client"
	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the backend",
	Long:  `Authenticate with the Healthcare Media Studio backend and store the session token.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Account username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password")
	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
}

// runLogin executes the login attempt and returns an exit code
func runLogin(ctx context.Context, w io.Writer) int {
	c := client.New(GetAPIURL())
	sess := restoredSession()

	result := sess.Login(ctx, c, loginUsername, loginPassword)
	if !result.OK {
		fmt.Fprintf(w, "Error: %s\n", result.Message)
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]string{"status": "ok"}, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, "Logged in.")
	}

	return 0
}
