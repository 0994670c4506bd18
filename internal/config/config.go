package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration. Provider API keys are never
// stored in the file; they come from the environment only.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	AI      AIConfig      `toml:"ai"`
	Quality QualityConfig `toml:"quality"`
	Site    SiteConfig    `toml:"site"`

	// Keys is populated from environment variables in Load.
	Keys ProviderKeys `toml:"-"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `toml:"port"`
}

// AIConfig holds provider selection and dispatch settings.
type AIConfig struct {
	// Provider is the preferred backend; FallbackProvider is tried once
	// when it fails.
	Provider         string            `toml:"provider"`
	FallbackProvider string            `toml:"fallback_provider"`
	GatewayURL       string            `toml:"gateway_url"`
	TimeoutSeconds   int               `toml:"timeout_seconds"`
	Models           map[string]string `toml:"models"`
}

// QualityConfig holds tunables for the quality scoring heuristics.
type QualityConfig struct {
	// OverlapThreshold is the word-set overlap above which two intros or
	// conclusions count as near-duplicates.
	OverlapThreshold float64 `toml:"overlap_threshold"`
}

// SiteConfig points at the site catalog file.
type SiteConfig struct {
	File string `toml:"file"`
}

// ProviderKeys holds the per-provider API secrets read from the environment.
type ProviderKeys struct {
	OpenAI    string
	Gemini    string
	Anthropic string
	Mistral   string
	Groq      string
	Gateway   string
}

// knownProviders are the backend names accepted for ai.provider and
// ai.fallback_provider.
var knownProviders = map[string]bool{
	"openai":  true,
	"gemini":  true,
	"claude":  true,
	"mistral": true,
	"groq":    true,
	"gateway": true,
}

const defaultConfigContent = `[server]
port = 8080

[ai]
provider = "openai"              # "openai", "gemini", "claude", "mistral", "groq", or "gateway"
fallback_provider = "gateway"    # tried once when the preferred provider fails
gateway_url = ""                 # OpenAI-compatible endpoint for the "gateway" provider
timeout_seconds = 30             # per-generation deadline

[quality]
overlap_threshold = 0.7          # intro/conclusion duplicate sensitivity

[site]
file = "site.toml"               # brand/services/locations catalog
`

// Load reads and parses the TOML config from the given path. If the file
// does not exist, it creates a default config file at that path. Provider
// API keys are then read from the environment.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := createDefault(path); err != nil {
			return nil, fmt.Errorf("creating default config: %w", err)
		}
		slog.Info("created default config file", "path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Validate explicitly-set values before applying defaults, so that
	// explicitly writing "port = 0" is an error rather than silently
	// being replaced with the default.
	if err := validateExplicit(&cfg, md); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	applyDefaults(&cfg)
	readProviderKeys(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// createDefault writes the default config content to the given path,
// creating any parent directories as needed.
func createDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigContent), 0o644); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// validateExplicit checks values that were explicitly set in the TOML file.
func validateExplicit(cfg *Config, md toml.MetaData) error {
	if md.IsDefined("server", "port") {
		if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
			return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", cfg.Server.Port)
		}
	}
	if md.IsDefined("quality", "overlap_threshold") {
		if cfg.Quality.OverlapThreshold <= 0 || cfg.Quality.OverlapThreshold > 1 {
			return fmt.Errorf("invalid quality.overlap_threshold %v: must be in (0, 1]", cfg.Quality.OverlapThreshold)
		}
	}
	return nil
}

// applyDefaults sets default values for any zero-valued fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.AI.Provider == "" {
		cfg.AI.Provider = "openai"
	}
	if cfg.AI.FallbackProvider == "" {
		cfg.AI.FallbackProvider = "gateway"
	}
	if cfg.AI.TimeoutSeconds == 0 {
		cfg.AI.TimeoutSeconds = 30
	}
	if cfg.Quality.OverlapThreshold == 0 {
		cfg.Quality.OverlapThreshold = 0.7
	}
	if cfg.Site.File == "" {
		cfg.Site.File = "site.toml"
	}
}

// readProviderKeys populates cfg.Keys from the environment. A missing key
// leaves that provider unconfigured; whether that matters depends on which
// provider is selected, which validate checks.
func readProviderKeys(cfg *Config) {
	cfg.Keys = ProviderKeys{
		OpenAI:    os.Getenv("OPENAI_API_KEY"),
		Gemini:    os.Getenv("GEMINI_API_KEY"),
		Anthropic: os.Getenv("ANTHROPIC_API_KEY"),
		Mistral:   os.Getenv("MISTRAL_API_KEY"),
		Groq:      os.Getenv("GROQ_API_KEY"),
		Gateway:   os.Getenv("AI_GATEWAY_API_KEY"),
	}
}

// validate checks that configuration values are within acceptable ranges.
func validate(cfg *Config) error {
	if !knownProviders[cfg.AI.Provider] {
		return fmt.Errorf("invalid ai.provider %q", cfg.AI.Provider)
	}
	if cfg.AI.FallbackProvider != "" && !knownProviders[cfg.AI.FallbackProvider] {
		return fmt.Errorf("invalid ai.fallback_provider %q", cfg.AI.FallbackProvider)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", cfg.Server.Port)
	}

	if cfg.AI.TimeoutSeconds < 1 {
		return fmt.Errorf("invalid ai.timeout_seconds %d: must be >= 1", cfg.AI.TimeoutSeconds)
	}

	if keyFor(cfg, cfg.AI.Provider) == "" {
		slog.Warn("no API key set for preferred provider, generation will rely on the fallback",
			"provider", cfg.AI.Provider)
	}

	return nil
}

// keyFor returns the environment-supplied key for a provider name.
func keyFor(cfg *Config, provider string) string {
	switch provider {
	case "openai":
		return cfg.Keys.OpenAI
	case "gemini":
		return cfg.Keys.Gemini
	case "claude":
		return cfg.Keys.Anthropic
	case "mistral":
		return cfg.Keys.Mistral
	case "groq":
		return cfg.Keys.Groq
	case "gateway":
		return cfg.Keys.Gateway
	}
	return ""
}
