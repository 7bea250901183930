package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hyadav1201/autofolio/internal/config"
	"github.com/hyadav1201/autofolio/internal/docparse"
	"github.com/hyadav1201/autofolio/internal/llm"
	"github.com/hyadav1201/autofolio/internal/narrative"
	"github.com/hyadav1201/autofolio/internal/server"
)

var (
	servePort       int
	serveConfigPath string
	serveUploadsDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume upload, extraction, and About Me generation endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCmd.Flags().StringVar(&serveUploadsDir, "uploads-dir", "", "Directory for stored uploads (defaults to ./uploads)")
	rootCmd.AddCommand(serveCmd)
}

// loadServeConfig merges the config file (if any), environment variables,
// and built-in defaults, in that order of increasing precedence for flags.
func loadServeConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Port:                    8080,
		UploadsDir:              "uploads",
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		ParserURL:               os.Getenv("PARSER_URL"),
		ParserAPIKey:            os.Getenv("PARSER_API_KEY"),
		GeminiAPIKey:            os.Getenv("GEMINI_API_KEY"),
		NarrativeTimeoutSeconds: int(narrative.DefaultTimeout / time.Second),
	})

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("uploads-dir") {
		cfg.UploadsDir = serveUploadsDir
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadServeConfig(cmd)
	if err != nil {
		return err
	}

	serverCfg := server.Config{
		Port:        cfg.Port,
		UploadsDir:  cfg.UploadsDir,
		DatabaseURL: cfg.DatabaseURL,
	}

	if cfg.ParserURL != "" {
		serverCfg.Remote = docparse.NewHTTPClient(cfg.ParserURL, cfg.ParserAPIKey, nil)
	}

	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewClient(context.Background(), nil, cfg.GeminiAPIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()
		serverCfg.Narrator = narrative.NewGeminiGenerator(client, &narrative.GeneratorOptions{
			Timeout: time.Duration(cfg.NarrativeTimeoutSeconds) * time.Second,
		})
	}

	srv, err := server.New(serverCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
