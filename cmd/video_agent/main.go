// Package main provides the entry point for the video summarizer CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "video_agent",
	Short: "YouTube video summarizer",
	Long:  "video_agent resolves a YouTube URL, retrieves the spoken-word transcript and produces a condensed summary, via a one-shot CLI or a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
