package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/server"
)

var (
	serveConfigPath string
	serveHost       string
	servePort       int
	serveAPIKey     string
	serveAuth       bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for analysis, matching, optimization, and job fetching.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Bind address (defaults to all interfaces)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	serveCmd.Flags().BoolVar(&serveAuth, "auth", false, "Require JWT authentication on API routes (needs JWT_SECRET)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfigPath, config.Config{
		Host:        serveHost,
		Port:        servePort,
		APIKey:      serveAPIKey,
		AuthEnabled: serveAuth,
	})
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Host:           cfg.Host,
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		EmbeddingModel: cfg.EmbeddingModel,
		AuthEnabled:    cfg.AuthEnabled,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
