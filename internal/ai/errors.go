package ai

import (
	"errors"
	"fmt"
)

// Sentinel errors callers branch on. Providers classify the HTTP status of a
// failed call into these; the dispatcher and the API layer map them to 429
// and 402 responses.
var (
	// ErrRateLimited is a 429-equivalent response from a provider.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCreditsExhausted is a 402-equivalent response from a provider.
	ErrCreditsExhausted = errors.New("credits exhausted")

	// ErrEmptyResult means the provider call succeeded but returned no text.
	ErrEmptyResult = errors.New("provider returned empty content")
)

// NotConfiguredError indicates the selected provider has no API key in the
// environment. It is fatal for that provider only; the dispatcher can still
// try a configured fallback.
type NotConfiguredError struct {
	Provider string
	EnvVar   string
}

func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("provider %s is not configured: %s is not set", e.Provider, e.EnvVar)
}

// GenerationError means both the preferred provider and its fallback failed
// for reasons other than rate limiting or exhausted credits. It carries both
// underlying errors.
type GenerationError struct {
	PrimaryProvider  string
	FallbackProvider string
	PrimaryErr       error
	FallbackErr      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("both %s and %s failed. %s: %v. %s: %v",
		e.PrimaryProvider, e.FallbackProvider,
		e.PrimaryProvider, e.PrimaryErr,
		e.FallbackProvider, e.FallbackErr)
}

func (e *GenerationError) Unwrap() []error {
	return []error{e.PrimaryErr, e.FallbackErr}
}
