package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hoanghai1803/localpages/internal/ai"
	"github.com/hoanghai1803/localpages/internal/content"
	"github.com/hoanghai1803/localpages/internal/contentkey"
	"github.com/hoanghai1803/localpages/internal/prompt"
)

// Generate handles POST /api/generate. It returns cached content for the
// key, generating it first on a miss. The caller supplies either a raw
// prompt or a template name plus variables.
func Generate(generator *content.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body struct {
			Key             string            `json:"key"`
			Prompt          string            `json:"prompt"`
			Template        string            `json:"template"`
			Variables       map[string]string `json:"variables"`
			Provider        string            `json:"provider"`
			ForceRegenerate bool              `json:"forceRegenerate"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		body.Key = strings.TrimSpace(body.Key)
		if body.Key == "" {
			writeError(w, http.StatusBadRequest, "key is required")
			return
		}
		if _, err := contentkey.Parse(body.Key); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		rendered := body.Prompt
		if rendered == "" {
			if body.Template == "" {
				writeError(w, http.StatusBadRequest, "prompt or template is required")
				return
			}
			var err error
			rendered, err = prompt.Render(body.Template, body.Variables)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		}

		result, err := generator.Generate(ctx, body.Key, rendered, body.Provider, body.ForceRegenerate)
		if err != nil {
			writeGenerationError(w, body.Key, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// writeGenerationError maps the dispatcher's error taxonomy to HTTP status
// codes. Raw provider errors are logged, never exposed to the client.
func writeGenerationError(w http.ResponseWriter, key string, err error) {
	slog.Error("content generation failed", "key", key, "error", err)

	var notConfigured *ai.NotConfiguredError
	switch {
	case errors.Is(err, ai.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "AI provider rate limit exceeded. Please try again later.")
	case errors.Is(err, ai.ErrCreditsExhausted):
		writeError(w, http.StatusPaymentRequired, "AI provider credits exhausted.")
	case errors.As(err, &notConfigured):
		writeError(w, http.StatusServiceUnavailable, notConfigured.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Content generation failed")
	}
}
