package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmatsuda/resume-screener/internal/config"
	"github.com/jmatsuda/resume-screener/internal/server"
)

var (
	serveConfigPath string
	servePort       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for job postings, resume uploads, and candidate ranking.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file (optional)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	srv, err := server.New(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
