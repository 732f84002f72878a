// ABOUTME: Entry point for the mediastudio CLI
// ABOUTME: Terminal client for the healthcare media generation service

package main

import (
	"fmt"
	"os"

	"github.com/medvista/mediastudio-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
