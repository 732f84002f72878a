// ABOUTME: Video translation command for the mediastudio CLI
// ABOUTME: Uploads a local video file and prints the translated video URL

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/medvista/mediastudio-cli/internal/client"
	"github.com/medvista/mediastudio-cli/internal/workflow"
	"github.com/spf13/cobra"
)

var translateLanguage string

var translateCmd = &cobra.Command{
	Use:   "translate [video-file]",
	Short: "Translate a healthcare video into another language",
	Long: `Upload a local video file to the translation endpoint and print the
translated video URL. Run 'mediastudio languages' to list supported
language codes.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runTranslate(ctx, os.Stdout, args[0], translateLanguage)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	translateCmd.Flags().StringVarP(&translateLanguage, "language", "l", "es", "Target language code for the translation")
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(ctx context.Context, w io.Writer, path, lang string) int {
	sess := restoredSession()
	if !requireAuth(sess, w) {
		return 2
	}

	c := client.New(GetAPIURL())
	ctrl := workflow.New(workflow.KindVideoTranslation, func(ctx context.Context, in workflow.Input) (string, error) {
		f, err := os.Open(in.FilePath)
		if err != nil {
			return "", fmt.Errorf("cannot open %s", in.FileName)
		}
		defer f.Close()

		resp, err := c.TranslateVideo(ctx, sess.Token(), in.FileName, f, in.TargetLanguage)
		if err != nil {
			return "", err
		}
		return resp.TranslatedVideoURL, nil
	})

	call, ok := ctrl.Submit(workflow.Input{
		FilePath:       path,
		FileName:       filepath.Base(path),
		TargetLanguage: lang,
	})
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
			"workflow":             workflow.KindVideoTranslation.String(),
			"id":                   res.ID,
			"file":                 res.FileName,
			"language":             res.TargetLanguage,
			"translated_video_url": res.MediaURL,
		}
		data, _ := json.MarshalIndent(output, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, res.MediaURL)
	}

	return 0
}
