package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/hoanghai1803/localpages/internal/ai"
	"github.com/hoanghai1803/localpages/internal/api"
	"github.com/hoanghai1803/localpages/internal/config"
	"github.com/hoanghai1803/localpages/internal/content"
	"github.com/hoanghai1803/localpages/internal/site"
	"github.com/hoanghai1803/localpages/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	dataDir := flag.String("data-dir", "./data", "path to data directory")
	flag.Parse()

	// Load a .env file if one exists; provider API keys live there in
	// development. A missing file is not an error.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded environment from .env file")
	}

	// Load configuration (auto-creates default if missing).
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Load the site catalog (auto-creates default if missing).
	catalog, err := site.Load(cfg.Site.File)
	if err != nil {
		slog.Error("failed to load site catalog", "error", err)
		os.Exit(1)
	}

	// Ensure data directory exists.
	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		slog.Error("failed to create data directory", "error", err)
		os.Exit(1)
	}

	// Open database with WAL mode and pragmas.
	db, err := storage.OpenDatabase(filepath.Join(*dataDir, "app.db"))
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run schema migrations.
	if err := storage.RunMigrations(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	store := storage.NewStore(db)

	// Build the provider registry from environment-supplied keys. Keyless
	// providers stay unregistered; requests naming them get a classified
	// not-configured error instead of a startup failure.
	registry := ai.NewRegistry(ai.Config{
		OpenAIKey:    cfg.Keys.OpenAI,
		GeminiKey:    cfg.Keys.Gemini,
		AnthropicKey: cfg.Keys.Anthropic,
		MistralKey:   cfg.Keys.Mistral,
		GroqKey:      cfg.Keys.Groq,
		GatewayKey:   cfg.Keys.Gateway,
		GatewayURL:   cfg.AI.GatewayURL,
		Models:       cfg.AI.Models,
	})
	slog.Info("AI providers configured", "providers", registry.Configured())

	var fallbacks map[string]string
	if cfg.AI.FallbackProvider != "" {
		fallbacks = map[string]string{cfg.AI.Provider: cfg.AI.FallbackProvider}
	}
	dispatcher := ai.NewDispatcher(registry, fallbacks)

	generator := content.NewGenerator(store, dispatcher, cfg.AI.Provider,
		time.Duration(cfg.AI.TimeoutSeconds)*time.Second)
	scheduler := content.NewScheduler(generator, store, catalog)

	router := api.NewRouter(store, generator, scheduler, catalog, cfg)

	// Admin surface only; bind to localhost.
	addr := fmt.Sprintf("localhost:%d", cfg.Server.Port)
	slog.Info("starting server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
