package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewRegistryBuildsOnlyKeyedProviders(t *testing.T) {
	r := NewRegistry(Config{
		OpenAIKey:  "sk-test",
		GatewayKey: "gw-test",
	})

	configured := r.Configured()
	if len(configured) != 2 || configured[0] != "gateway" || configured[1] != "openai" {
		t.Fatalf("Configured() = %v, want [gateway openai]", configured)
	}

	if _, err := r.Provider("openai"); err != nil {
		t.Errorf("openai should be configured: %v", err)
	}

	_, err := r.Provider("claude")
	var notConfigured *NotConfiguredError
	if !errors.As(err, &notConfigured) {
		t.Fatalf("got error %T %v, want *NotConfiguredError", err, err)
	}
	if notConfigured.EnvVar != "ANTHROPIC_API_KEY" {
		t.Errorf("EnvVar = %q, want ANTHROPIC_API_KEY", notConfigured.EnvVar)
	}
}

func TestRegistryKnown(t *testing.T) {
	r := NewRegistry(Config{})

	for _, name := range []string{"openai", "gemini", "claude", "mistral", "groq", "gateway"} {
		if !r.Known(name) {
			t.Errorf("Known(%q) = false, want true", name)
		}
	}
	if r.Known("skynet") {
		t.Error(`Known("skynet") = true, want false`)
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusOK, nil},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusPaymentRequired, ErrCreditsExhausted},
	}

	for _, tt := range tests {
		err := classifyStatus("openai", tt.status)
		if tt.want == nil {
			if err != nil {
				t.Errorf("classifyStatus(%d) = %v, want nil", tt.status, err)
			}
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("classifyStatus(%d) = %v, want %v", tt.status, err, tt.want)
		}
	}

	if err := classifyStatus("openai", http.StatusBadGateway); err == nil {
		t.Error("classifyStatus(502) = nil, want error")
	}
}

func TestChatProviderGenerate(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "generated text"}},
			},
		})
	}))
	defer srv.Close()

	p := newChatProvider("openai", srv.URL, "sk-test", "gpt-4o-mini")
	content, err := p.Generate(context.Background(), "write a page")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if content != "generated text" {
		t.Errorf("content = %q", content)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotBody["model"] != "gpt-4o-mini" {
		t.Errorf("model = %v", gotBody["model"])
	}

	messages, ok := gotBody["messages"].([]any)
	if !ok || len(messages) != 2 {
		t.Fatalf("messages = %v, want system + user", gotBody["messages"])
	}
	first := messages[0].(map[string]any)
	if first["role"] != "system" {
		t.Errorf("first message role = %v, want system", first["role"])
	}
}

func TestChatProviderRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := newChatProvider("openai", srv.URL, "sk-test", "gpt-4o-mini")
	_, err := p.Generate(context.Background(), "prompt")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("got error %v, want ErrRateLimited", err)
	}
}

func TestChatProviderEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	p := newChatProvider("openai", srv.URL, "sk-test", "gpt-4o-mini")
	_, err := p.Generate(context.Background(), "prompt")
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("got error %v, want ErrEmptyResult", err)
	}
}
