package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned by every call of a client built without a key.
var ErrMissingAPIKey = errors.New("llm API key is not configured")

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateJSON sends one prompt and returns the raw text of a reply
	// constrained to schema.
	GenerateJSON(ctx context.Context, prompt string, schema *Schema) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates the client for cfg.Provider. A missing API key does not
// fail here; the returned client fails on first use instead.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return unconfigured{}, nil
	}

	switch cfg.Provider {
	case ProviderGenAI:
		return NewGenAIClient(ctx, cfg)
	case ProviderGemini, "":
		return NewGeminiClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

type unconfigured struct{}

func (unconfigured) GenerateJSON(context.Context, string, *Schema) (string, error) {
	return "", ErrMissingAPIKey
}

func (unconfigured) Close() error { return nil }
