// Package llm wraps the generative model providers behind one Client.
package llm

import (
	"fmt"
	"time"
)

// Provider represents an LLM provider SDK
type Provider string

const (
	// ProviderGemini uses github.com/google/generative-ai-go.
	ProviderGemini Provider = "gemini"
	// ProviderGenAI uses google.golang.org/genai.
	ProviderGenAI Provider = "genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Config holds the model configuration for the application
type Config struct {
	Provider        Provider      `yaml:"provider"`
	Model           string        `yaml:"model"`
	APIKey          string        `yaml:"api_key"`
	BaseURL         string        `yaml:"base_url"`
	Temperature     float32       `yaml:"temperature"`
	TopP            float32       `yaml:"top_p"`
	MaxOutputTokens int32         `yaml:"max_output_tokens"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Provider:        ProviderGemini,
		Model:           DefaultModel,
		Temperature:     0.7,
		TopP:            0.95,
		MaxOutputTokens: 8192,
	}
}

// Validate checks provider and sampling ranges.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderGenAI:
	default:
		return fmt.Errorf("unknown llm provider %q", c.Provider)
	}
	if c.Model == "" {
		return fmt.Errorf("llm model is required")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("llm temperature must be within [0, 2], got %v", c.Temperature)
	}
	if c.TopP < 0 || c.TopP > 1 {
		return fmt.Errorf("llm top_p must be within [0, 1], got %v", c.TopP)
	}
	if c.MaxOutputTokens < 0 {
		return fmt.Errorf("llm max_output_tokens must be non-negative")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("llm request_timeout must be non-negative")
	}
	return nil
}
