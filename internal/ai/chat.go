package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	openaiAPIURL  = "https://api.openai.com/v1/chat/completions"
	mistralAPIURL = "https://api.mistral.ai/v1/chat/completions"
	groqAPIURL    = "https://api.groq.com/openai/v1/chat/completions"
)

// Compile-time interface check.
var _ Provider = (*chatProvider)(nil)

// chatProvider implements Provider against any OpenAI-compatible chat
// completions endpoint. OpenAI, Mistral, Groq, and the self-hosted gateway
// all speak this wire format.
type chatProvider struct {
	name   string
	url    string
	apiKey string
	model  string
	client *http.Client
}

// newChatProvider creates a chatProvider with a 60-second timeout HTTP
// client. Per-request deadlines are imposed by the caller's context.
func newChatProvider(name, url, apiKey, model string) *chatProvider {
	return &chatProvider{
		name:   name,
		url:    url,
		apiKey: apiKey,
		model:  model,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// chatRequest is the request body for a chat completions endpoint.
type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

// chatMessage is a single message in the chat request.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the response body from a chat completions endpoint.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *chatProvider) Name() string { return p.name }

// Generate sends the prompt to the chat completions endpoint and returns the
// first choice's text.
func (p *chatProvider) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens: 2000,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%s: marshaling request: %w", p.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: creating request: %w", p.name, err)
	}

	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("calling chat completions API", "provider", p.name, "model", p.model)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: sending request: %w", p.name, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: reading response body: %w", p.name, err)
	}

	if err := classifyStatus(p.name, resp.StatusCode); err != nil {
		return "", err
	}

	var apiResp chatResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("%s: parsing response (status %d): %w", p.name, resp.StatusCode, err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("%s: API error (status %d): %s", p.name, resp.StatusCode, apiResp.Error.Message)
	}

	if len(apiResp.Choices) == 0 || apiResp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%s: %w", p.name, ErrEmptyResult)
	}

	return apiResp.Choices[0].Message.Content, nil
}

// classifyStatus maps provider HTTP statuses to the sentinel errors the
// dispatcher and API layer branch on.
func classifyStatus(provider string, status int) error {
	switch {
	case status == http.StatusOK:
		return nil
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%s: %w", provider, ErrRateLimited)
	case status == http.StatusPaymentRequired:
		return fmt.Errorf("%s: %w", provider, ErrCreditsExhausted)
	default:
		return fmt.Errorf("%s: unexpected status code: %d", provider, status)
	}
}
