// ABOUTME: Languages command for the mediastudio CLI
// ABOUTME: Lists the language codes accepted by the translation endpoint

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/medvista/mediastudio-cli/internal/language"
	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported translation languages",
	Long:  `Print the language codes and names accepted by the video translation endpoint.`,
	Run: func(cmd *cobra.Command, args []string) {
		runLanguages(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(w io.Writer) {
	if IsJSONOutput() {
		output := make([]map[string]string, 0, len(language.Translation))
		for _, l := range language.Translation {
			output = append(output, map[string]string{"code": l.Code, "name": l.Name})
		}
		data, _ := json.MarshalIndent(output, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	for _, l := range language.Translation {
		fmt.Fprintf(w, "%-8s %s\n", l.Code, l.Name)
	}
}
