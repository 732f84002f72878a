// ABOUTME: Image generation command for the mediastudio CLI
// ABOUTME: Submits a prompt and prints the generated image URL

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
	"github.com/medvista/mediastudio-cli/internal/workflow"
	"github.com/spf13/cobra"
)

var imageCmd = &cobra.Command{
	Use:   "image [prompt]",
	Short: "Generate a healthcare image from a prompt",
	Long:  `Submit a text prompt to the image generation endpoint and print the resulting image URL.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runImage(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(imageCmd)
}

// runImage executes the generation and returns an exit code
func runImage(ctx context.Context, w io.Writer, prompt string) int {
	sess := restoredSession()
	if !requireAuth(sess, w) {
		return 2
	}

	c := client.New(GetAPIURL())
	ctrl := workflow.New(workflow.KindImage, func(ctx context.Context, in workflow.Input) (string, error) {
		resp, err := c.GenerateImage(ctx, sess.Token(), in.Prompt)
		if err != nil {
			return "", err
		}
		return resp.ImageURL, nil
	})

	call, ok := ctrl.Submit(workflow.Input{Prompt: prompt})
	if !ok {
		fmt.Fprintf(w, "Error: %s\n", ctrl.LastError())
		return 1
	}

	ctrl.Resolve(call(ctx))
	if ctrl.Phase() == workflow.PhaseFailed {
		fmt.Fprintf(w, "Error: %s\n", ctrl.LastError())
		return 2
	}

	res := ctrl.Current()
	if IsJSONOutput() {
		output := map[string]string{
			"workflow":  workflow.KindImage.String(),
			"id":        res.ID,
			"prompt":    res.Prompt,
			"image_url": res.MediaURL,
		}
		data, _ := json.MarshalIndent(output, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, res.MediaURL)
	}

	return 0
}
