// Package content is the cache-populating orchestrator: the get-or-generate
// entry point in front of the provider dispatcher and the content store.
package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hoanghai1803/localpages/internal/models"
	"github.com/hoanghai1803/localpages/internal/prompt"
	"github.com/hoanghai1803/localpages/internal/storage"
)

// Store is the slice of the persistence layer the orchestrator needs.
// Declared here so tests can inject an in-memory fake.
type Store interface {
	GetContent(ctx context.Context, key string) (*models.ContentEntry, error)
	UpsertContent(ctx context.Context, p storage.UpsertContentParams) error
}

// TextGenerator is the dispatcher capability the orchestrator depends on:
// generate text for a prompt against a preferred provider, reporting which
// provider actually produced it.
type TextGenerator interface {
	Generate(ctx context.Context, prompt, preferred string) (string, string, error)
}

// DefaultTimeout bounds a single generation request. The upstream provider
// clients carry their own HTTP timeouts; this keeps an admin-panel request
// from hanging on a slow provider.
const DefaultTimeout = 30 * time.Second

// Result is the uniform envelope returned to callers.
type Result struct {
	Content string `json:"content"`
	Cached  bool   `json:"cached"`
	// Provider is the backend that generated the content. Empty on cache
	// hits.
	Provider string `json:"provider,omitempty"`
}

// Generator is the get-or-generate orchestrator.
type Generator struct {
	store      Store
	dispatcher TextGenerator
	provider   string
	timeout    time.Duration

	// group collapses concurrent generations of the same key so a burst of
	// page views produces one provider call, not several racing writes.
	group singleflight.Group
}

// NewGenerator creates a Generator using the given default provider. A zero
// timeout uses DefaultTimeout.
func NewGenerator(store Store, dispatcher TextGenerator, defaultProvider string, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Generator{
		store:      store,
		dispatcher: dispatcher,
		provider:   defaultProvider,
		timeout:    timeout,
	}
}

// GetOrGenerate returns the cached content for the key, generating and
// caching it first on a miss. The prompt is rendered from the named template
// with the supplied variables.
func (g *Generator) GetOrGenerate(ctx context.Context, key, templateName string, variables map[string]string) (*Result, error) {
	rendered, err := prompt.Render(templateName, variables)
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx, key, rendered, "", false)
}

// Regenerate bypasses the cache read and always overwrites the stored entry.
// The entry's review flag is reset because the text has materially changed.
func (g *Generator) Regenerate(ctx context.Context, key, templateName string, variables map[string]string) (*Result, error) {
	rendered, err := prompt.Render(templateName, variables)
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx, key, rendered, "", true)
}

// Generate is the prompt-level entry point behind GetOrGenerate and
// Regenerate. An empty provider uses the configured default. When force is
// set the cache read is skipped and the stored entry is overwritten.
//
// Cache read failures are swallowed and treated as misses: serving freshly
// generated content beats failing the page on a flaky cache. Cache write
// failures after a successful generation are logged but the content is still
// returned.
func (g *Generator) Generate(ctx context.Context, key, renderedPrompt, provider string, force bool) (*Result, error) {
	if provider == "" {
		provider = g.provider
	}

	if !force {
		entry, err := g.store.GetContent(ctx, key)
		switch {
		case err == nil && entry.Content != "":
			slog.Debug("content cache hit", "key", key)
			return &Result{Content: entry.Content, Cached: true}, nil
		case err != nil && !errors.Is(err, storage.ErrNotFound):
			slog.Warn("content cache read failed, treating as miss", "key", key, "error", err)
		}
	}

	v, err, _ := g.group.Do(key, func() (any, error) {
		return g.generateAndStore(ctx, key, renderedPrompt, provider)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

// generateAndStore runs one provider dispatch and writes the result back to
// the cache.
func (g *Generator) generateAndStore(ctx context.Context, key, renderedPrompt, provider string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	slog.Info("generating content", "key", key, "provider", provider)

	text, usedProvider, err := g.dispatcher.Generate(ctx, renderedPrompt, provider)
	if err != nil {
		return nil, fmt.Errorf("generating content for %q: %w", key, err)
	}

	upsertErr := g.store.UpsertContent(ctx, storage.UpsertContentParams{
		Key:        key,
		Content:    text,
		HowCreated: fmt.Sprintf("AI-assisted (%s)", usedProvider),
		// The body just changed, so any previous sign-off no longer applies.
		ResetReview: true,
	})
	if upsertErr != nil {
		// The content was generated successfully; losing the cache write
		// costs a regeneration later, not this response.
		slog.Error("failed to cache generated content", "key", key, "error", upsertErr)
	}

	return &Result{Content: text, Cached: false, Provider: usedProvider}, nil
}
