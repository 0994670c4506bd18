package ai

import (
	"context"
	"errors"
	"testing"
)

// fakeProvider is a scripted Provider for dispatcher tests.
type fakeProvider struct {
	name    string
	content string
	err     error
	calls   int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.content, f.err
}

func newTestRegistry(providers ...*fakeProvider) *Registry {
	r := NewRegistry(Config{})
	for _, p := range providers {
		r.register(p)
	}
	return r
}

func TestDispatcherPrimarySucceeds(t *testing.T) {
	primary := &fakeProvider{name: "openai", content: "generated text"}
	fallback := &fakeProvider{name: "gateway", content: "fallback text"}
	d := NewDispatcher(newTestRegistry(primary, fallback), nil)

	content, used, err := d.Generate(context.Background(), "prompt", "openai")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if content != "generated text" || used != "openai" {
		t.Errorf("got (%q, %q), want primary result", content, used)
	}
	if fallback.calls != 0 {
		t.Errorf("fallback was called %d times, want 0", fallback.calls)
	}
}

func TestDispatcherFallbackSucceeds(t *testing.T) {
	primary := &fakeProvider{name: "openai", err: errors.New("boom")}
	fallback := &fakeProvider{name: "gateway", content: "fallback text"}
	d := NewDispatcher(newTestRegistry(primary, fallback), nil)

	content, used, err := d.Generate(context.Background(), "prompt", "openai")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if content != "fallback text" {
		t.Errorf("content = %q, want fallback text", content)
	}
	if used != "gateway" {
		t.Errorf("used = %q, want gateway", used)
	}
}

func TestDispatcherUnknownProvider(t *testing.T) {
	d := NewDispatcher(newTestRegistry(), nil)

	_, _, err := d.Generate(context.Background(), "prompt", "skynet")
	if err == nil {
		t.Fatal("Generate with unknown provider succeeded, want error")
	}
}

func TestDispatcherNotConfiguredFallsBack(t *testing.T) {
	// The preferred backend is known but keyless; the dispatcher should
	// still try its fallback.
	fallback := &fakeProvider{name: "gateway", content: "fallback text"}
	d := NewDispatcher(newTestRegistry(fallback), nil)

	content, used, err := d.Generate(context.Background(), "prompt", "openai")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if content != "fallback text" || used != "gateway" {
		t.Errorf("got (%q, %q), want fallback result", content, used)
	}
}

func TestDispatcherNoFallbackPropagatesRawError(t *testing.T) {
	primary := &fakeProvider{name: "mistral", err: ErrRateLimited}
	d := NewDispatcher(newTestRegistry(primary), nil)

	_, _, err := d.Generate(context.Background(), "prompt", "mistral")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("got error %v, want ErrRateLimited unmodified", err)
	}
}

func TestDispatcherRateLimitedFallback(t *testing.T) {
	primary := &fakeProvider{name: "openai", err: errors.New("boom")}
	fallback := &fakeProvider{name: "gateway", err: ErrRateLimited}
	d := NewDispatcher(newTestRegistry(primary, fallback), nil)

	_, _, err := d.Generate(context.Background(), "prompt", "openai")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("got error %v, want ErrRateLimited", err)
	}
}

func TestDispatcherCreditsExhaustedFallback(t *testing.T) {
	primary := &fakeProvider{name: "openai", err: errors.New("boom")}
	fallback := &fakeProvider{name: "gateway", err: ErrCreditsExhausted}
	d := NewDispatcher(newTestRegistry(primary, fallback), nil)

	_, _, err := d.Generate(context.Background(), "prompt", "openai")
	if !errors.Is(err, ErrCreditsExhausted) {
		t.Fatalf("got error %v, want ErrCreditsExhausted", err)
	}
}

func TestDispatcherBothFailGenerationError(t *testing.T) {
	primary := &fakeProvider{name: "openai", err: errors.New("primary boom")}
	fallback := &fakeProvider{name: "gateway", err: errors.New("fallback boom")}
	d := NewDispatcher(newTestRegistry(primary, fallback), nil)

	_, _, err := d.Generate(context.Background(), "prompt", "openai")

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("got error %T %v, want *GenerationError", err, err)
	}
	if genErr.PrimaryProvider != "openai" || genErr.FallbackProvider != "gateway" {
		t.Errorf("providers = (%s, %s)", genErr.PrimaryProvider, genErr.FallbackProvider)
	}
	if genErr.PrimaryErr == nil || genErr.FallbackErr == nil {
		t.Error("GenerationError must carry both underlying errors")
	}
}

func TestDispatcherCustomFallbackMap(t *testing.T) {
	primary := &fakeProvider{name: "claude", err: errors.New("boom")}
	fallback := &fakeProvider{name: "mistral", content: "fallback text"}
	d := NewDispatcher(newTestRegistry(primary, fallback), map[string]string{"claude": "mistral"})

	content, used, err := d.Generate(context.Background(), "prompt", "claude")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if content != "fallback text" || used != "mistral" {
		t.Errorf("got (%q, %q), want mistral fallback", content, used)
	}
}
