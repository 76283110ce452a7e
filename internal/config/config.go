// Package config resolves application settings and credentials.
//
// Precedence, low to high: built-in defaults, a .env file in the working
// directory, the TOML config file (the local secrets store), process
// environment variables.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	poliscope "github.com/mwiersma/poliscope"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	LLM      LLMConfig      `toml:"llm"`
	Observer ObserverConfig `toml:"observer"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
	// MaxUploadBytes caps the multipart form size of one submission.
	MaxUploadBytes int64 `toml:"max_upload_bytes"`
}

type LLMConfig struct {
	Model       string  `toml:"model"`
	APIKey      string  `toml:"api_key"`
	BaseURL     string  `toml:"base_url"`
	Temperature float64 `toml:"temperature"`
	// MaxChars limits how much of each document's text is embedded in the prompt.
	MaxChars int `toml:"max_chars"`
}

type ObserverConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080", MaxUploadBytes: 32 << 20},
		LLM: LLMConfig{
			Model:       "gpt-4o-mini",
			BaseURL:     "https://api.openai.com/v1",
			Temperature: 0.1,
			MaxChars:    poliscope.DefaultMaxChars,
		},
	}
}

// Load reads config: defaults -> .env -> TOML file -> env vars (env wins).
func Load(path string) Config {
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = "poliscope.toml"
	}
	if data, err := os.ReadFile(path); err == nil {
		_ = toml.Unmarshal(data, &cfg)
	}

	// Env overrides
	if v := os.Getenv("AI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("POLISCOPE_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("POLISCOPE_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("POLISCOPE_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}

	return cfg
}
