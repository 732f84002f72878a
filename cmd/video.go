// ABOUTME: Video generation command for the mediastudio CLI
// ABOUTME: Submits a prompt with optional story context and prints the video URL

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

var (
	videoLanguage string
	videoStory    string
)

var videoCmd = &cobra.Command{
	Use:   "video [prompt]",
	Short: "Generate a healthcare video from a prompt",
	Long: `Submit a text prompt to the video generation endpoint and print the resulting video URL.

An optional story flag provides additional narrative context for the video.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runVideo(ctx, os.Stdout, args[0], videoLanguage, videoStory)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	videoCmd.Flags().StringVarP(&videoLanguage, "language", "l", "en", "Target language code for the video")
	videoCmd.Flags().StringVarP(&videoStory, "story", "s", "", "Optional story context for the video")
	rootCmd.AddCommand(videoCmd)
}

func runVideo(ctx context.Context, w io.Writer, prompt, lang, story string) int {
	sess := restoredSession()
	if !requireAuth(sess, w) {
		return 2
	}

	c := client.New(GetAPIURL())
	ctrl := workflow.New(workflow.KindVideo, func(ctx context.Context, in workflow.Input) (string, error) {
		resp, err := c.GenerateVideo(ctx, sess.Token(), in.Prompt, in.TargetLanguage, in.Story)
		if err != nil {
			return "", err
		}
		return resp.VideoURL, nil
	})

	call, ok := ctrl.Submit(workflow.Input{Prompt: prompt, TargetLanguage: lang, Story: story})
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
			"workflow":  workflow.KindVideo.String(),
			"id":        res.ID,
			"prompt":    res.Prompt,
			"language":  res.TargetLanguage,
			"video_url": res.MediaURL,
		}
		data, _ := json.MarshalIndent(output, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, res.MediaURL)
	}

	return 0
}
