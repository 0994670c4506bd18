package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// DefaultFallbacks pairs each primary provider with the provider tried when
// it fails. Only the two always-on backends fall back to each other;
// explicitly selecting any other provider is a single best-effort attempt.
var DefaultFallbacks = map[string]string{
	"openai":  "gateway",
	"gateway": "openai",
}

// Dispatcher routes generation requests to a preferred provider and retries
// once against its configured fallback. There is no backoff ladder: one
// fallback hop, then a classified error.
type Dispatcher struct {
	registry  *Registry
	fallbacks map[string]string
}

// NewDispatcher creates a Dispatcher over the given registry. A nil
// fallbacks map uses DefaultFallbacks.
func NewDispatcher(registry *Registry, fallbacks map[string]string) *Dispatcher {
	if fallbacks == nil {
		fallbacks = DefaultFallbacks
	}
	return &Dispatcher{registry: registry, fallbacks: fallbacks}
}

// Generate attempts the preferred provider, then its fallback if one is
// configured and differs. It returns the generated text and the name of the
// provider that produced it.
//
// Error classification after both attempts fail: a rate-limited fallback
// surfaces as ErrRateLimited, an out-of-credits fallback as
// ErrCreditsExhausted, anything else as a GenerationError carrying both
// underlying errors. Providers without a fallback propagate their error
// unmodified.
func (d *Dispatcher) Generate(ctx context.Context, prompt, preferred string) (string, string, error) {
	if !d.registry.Known(preferred) {
		return "", "", fmt.Errorf("unsupported AI provider: %s", preferred)
	}

	provider, err := d.registry.Provider(preferred)
	if err == nil {
		content, genErr := provider.Generate(ctx, prompt)
		if genErr == nil {
			return content, preferred, nil
		}
		err = genErr
	}

	return d.fallbackAfter(ctx, prompt, preferred, err)
}

// fallbackAfter runs the fallback attempt (if any) after the primary failed
// with primaryErr.
func (d *Dispatcher) fallbackAfter(ctx context.Context, prompt, preferred string, primaryErr error) (string, string, error) {
	fbName, hasFallback := d.fallbacks[preferred]
	if !hasFallback || fbName == preferred {
		return "", "", primaryErr
	}

	slog.Warn("provider failed, trying fallback",
		"provider", preferred, "fallback", fbName, "error", primaryErr)

	fallback, err := d.registry.Provider(fbName)
	if err != nil {
		return "", "", &GenerationError{
			PrimaryProvider:  preferred,
			FallbackProvider: fbName,
			PrimaryErr:       primaryErr,
			FallbackErr:      err,
		}
	}

	content, fbErr := fallback.Generate(ctx, prompt)
	if fbErr == nil {
		slog.Info("fallback provider succeeded", "provider", fbName)
		return content, fbName, nil
	}

	if errors.Is(fbErr, ErrRateLimited) || errors.Is(fbErr, ErrCreditsExhausted) {
		return "", "", fmt.Errorf("all providers failed: %w", fbErr)
	}

	return "", "", &GenerationError{
		PrimaryProvider:  preferred,
		FallbackProvider: fbName,
		PrimaryErr:       primaryErr,
		FallbackErr:      fbErr,
	}
}
