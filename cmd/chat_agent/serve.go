package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-chat-wizard/internal/config"
	"github.com/jonathan/resume-chat-wizard/internal/server"
)

var (
	servePort       int
	serveConfigFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the chat wizard over REST: session lifecycle, message turns, form auto-fill, and session archiving.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Port:              servePort,
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		APIKey:            os.Getenv("GEMINI_API_KEY"),
		Model:             os.Getenv("GEMINI_MODEL"),
		SessionTTLMinutes: 30,
	}
	if serveConfigFile != "" {
		fileCfg, err := config.Load(serveConfigFile)
		if err != nil {
			return err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
		// An explicit --port beats the config file.
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(context.Background(), server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		SessionTTL:  time.Duration(cfg.SessionTTLMinutes) * time.Minute,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
