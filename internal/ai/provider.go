// Package ai dispatches text generation to interchangeable LLM providers
// with single-hop fallback and classified errors.
package ai

import (
	"context"
	"sort"
)

// systemPrompt is sent with every generation request regardless of provider.
const systemPrompt = "You are a professional copywriter specialising in UK trade services. Generate clear, factual, SEO-friendly content. Never fabricate testimonials or claims."

// Provider is the capability every LLM backend implements.
type Provider interface {
	// Name returns the provider's registry identifier.
	Name() string

	// Generate produces text for the given prompt. A successful call that
	// yields no text returns ErrEmptyResult; 429 and 402 responses map to
	// ErrRateLimited and ErrCreditsExhausted.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds every provider's API key and model. Keys come from the
// environment (see the envVar names below); an empty key leaves that
// provider unconfigured rather than failing startup.
type Config struct {
	OpenAIKey    string
	GeminiKey    string
	AnthropicKey string
	MistralKey   string
	GroqKey      string

	// GatewayKey and GatewayURL configure the self-hosted OpenAI-compatible
	// gateway used as the default fallback.
	GatewayKey string
	GatewayURL string

	// Models overrides the default model per provider name.
	Models map[string]string
}

// Default models per provider.
var defaultModels = map[string]string{
	"openai":  "gpt-4o-mini",
	"gemini":  "gemini-pro",
	"claude":  "claude-3-haiku-20240307",
	"mistral": "mistral-small-latest",
	"groq":    "llama-3.1-70b-versatile",
	"gateway": "google/gemini-2.5-flash",
}

// Environment variable names per provider, reported in NotConfiguredError.
var envVars = map[string]string{
	"openai":  "OPENAI_API_KEY",
	"gemini":  "GEMINI_API_KEY",
	"claude":  "ANTHROPIC_API_KEY",
	"mistral": "MISTRAL_API_KEY",
	"groq":    "GROQ_API_KEY",
	"gateway": "AI_GATEWAY_API_KEY",
}

const defaultGatewayURL = "https://ai-gateway.internal/v1/chat/completions"

// Registry holds one constructed Provider per configured backend and knows
// which backends exist but lack credentials.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry builds providers for every backend with a configured API key.
func NewRegistry(cfg Config) *Registry {
	model := func(name string) string {
		if m, ok := cfg.Models[name]; ok && m != "" {
			return m
		}
		return defaultModels[name]
	}

	providers := make(map[string]Provider)
	if cfg.OpenAIKey != "" {
		providers["openai"] = newChatProvider("openai", openaiAPIURL, cfg.OpenAIKey, model("openai"))
	}
	if cfg.MistralKey != "" {
		providers["mistral"] = newChatProvider("mistral", mistralAPIURL, cfg.MistralKey, model("mistral"))
	}
	if cfg.GroqKey != "" {
		providers["groq"] = newChatProvider("groq", groqAPIURL, cfg.GroqKey, model("groq"))
	}
	if cfg.GatewayKey != "" {
		url := cfg.GatewayURL
		if url == "" {
			url = defaultGatewayURL
		}
		providers["gateway"] = newChatProvider("gateway", url, cfg.GatewayKey, model("gateway"))
	}
	if cfg.AnthropicKey != "" {
		providers["claude"] = newAnthropicProvider(cfg.AnthropicKey, model("claude"))
	}
	if cfg.GeminiKey != "" {
		providers["gemini"] = newGeminiProvider(cfg.GeminiKey, model("gemini"))
	}

	return &Registry{providers: providers}
}

// Provider returns the named provider, or a NotConfiguredError if the
// backend is known but has no API key.
func (r *Registry) Provider(name string) (Provider, error) {
	if p, ok := r.providers[name]; ok {
		return p, nil
	}
	if env, ok := envVars[name]; ok {
		return nil, &NotConfiguredError{Provider: name, EnvVar: env}
	}
	return nil, &NotConfiguredError{Provider: name, EnvVar: "unknown provider"}
}

// Known reports whether the name is a recognised backend, configured or not.
func (r *Registry) Known(name string) bool {
	_, ok := envVars[name]
	return ok
}

// Configured returns the names of every provider with credentials, sorted.
func (r *Registry) Configured() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// register adds a provider directly. Used by tests to install fakes.
func (r *Registry) register(p Provider) {
	r.providers[p.Name()] = p
}
