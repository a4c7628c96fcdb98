// Package main provides the entry point for the Resume Screener HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Resume Screener HTTP API Server",
	Long:  "Resume Screener extracts skills, experience, and education from uploaded resumes and ranks candidates against job postings via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
