package main

import (
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/minhyannv/bookguide-go/pkg/bookguide"
)

// parseCLIConfig loads env + flags into runtime config.
func parseCLIConfig() (bookguide.Config, error) {
	_ = godotenv.Load()

	defaults := bookguide.DefaultConfig()

	transcriptPath := flag.String("transcript", defaults.TranscriptPath, "Path of the JSON transcript document")
	personaPath := flag.String("persona", "", "Optional YAML persona file overriding the built-in BookGuide persona")
	verbose := flag.Bool("verbose", defaults.Verbose, "Verbose request logging")
	flag.Parse()

	cfg := defaults
	cfg.TranscriptPath = strings.TrimSpace(*transcriptPath)
	cfg.PersonaPath = strings.TrimSpace(*personaPath)
	cfg.Verbose = *verbose
	cfg.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	cfg.BaseURL = strings.TrimSpace(os.Getenv("OPENAI_BASE_URL"))
	if model := strings.TrimSpace(os.Getenv("OPENAI_MODEL")); model != "" {
		cfg.Model = model
	}
	cfg.Logger = bookguide.NewWriterLogger(os.Stderr)
	return cfg, nil
}
