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

// Compile-time interface check.
var _ Provider = (*geminiProvider)(nil)

const geminiAPIURLFormat = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

// geminiProvider implements Provider using the Google Generative Language
// API. Gemini authenticates via a query parameter instead of a header and
// has no system message slot, so the system prompt is prepended to the user
// prompt.
type geminiProvider struct {
	apiKey string
	model  string
	client *http.Client
}

// newGeminiProvider creates a geminiProvider with a 60-second timeout HTTP
// client.
func newGeminiProvider(apiKey, model string) *geminiProvider {
	return &geminiProvider{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// geminiRequest is the request body for the generateContent endpoint.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// geminiResponse is the response body from the generateContent endpoint.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *geminiProvider) Name() string { return "gemini" }

// Generate sends the prompt to the Generative Language API and returns the
// first candidate's text.
func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: systemPrompt + "\n\n" + prompt}}},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("gemini: marshaling request: %w", err)
	}

	url := fmt.Sprintf(geminiAPIURLFormat, p.model, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	slog.Debug("calling Gemini API", "model", p.model)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini: reading response body: %w", err)
	}

	if err := classifyStatus("gemini", resp.StatusCode); err != nil {
		return "", err
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("gemini: parsing response (status %d): %w", resp.StatusCode, err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("gemini: API error (status %d): %s", resp.StatusCode, apiResp.Error.Message)
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 ||
		apiResp.Candidates[0].Content.Parts[0].Text == "" {
		return "", fmt.Errorf("gemini: %w", ErrEmptyResult)
	}

	return apiResp.Candidates[0].Content.Parts[0].Text, nil
}
