package bookguide

import "strings"

// Config holds all runtime configuration for the client.
type Config struct {
	TranscriptPath string
	PersonaPath    string
	Verbose        bool
	Logger         Logger

	APIKey  string
	BaseURL string
	Model   string
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		TranscriptPath: "conversation_history.json",
		Verbose:        false,
		Logger:         NopLogger{},
		Model:          "gpt-4o-mini",
	}
}

func normalizeConfig(cfg Config) Config {
	cfg.TranscriptPath = strings.TrimSpace(cfg.TranscriptPath)
	cfg.PersonaPath = strings.TrimSpace(cfg.PersonaPath)
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)
	if cfg.Logger == nil {
		cfg.Logger = NopLogger{}
	}
	if cfg.TranscriptPath == "" {
		cfg.TranscriptPath = "conversation_history.json"
	}
	return cfg
}
