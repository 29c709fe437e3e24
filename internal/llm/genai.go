package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GenAIClient implements Client with the google.golang.org/genai SDK.
type GenAIClient struct {
	client *genai.Client
	config Config
}

// NewGenAIClient creates a client against the Gemini API backend.
func NewGenAIClient(ctx context.Context, cfg Config) (*GenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GenAIClient{client: client, config: cfg}, nil
}

// GenerateJSON generates JSON content constrained to schema.
func (c *GenAIClient) GenerateJSON(ctx context.Context, prompt string, schema *Schema) (string, error) {
	temperature := c.config.Temperature
	topP := c.config.TopP
	config := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		TopP:             &topP,
		ResponseMIMEType: "application/json",
	}
	if c.config.MaxOutputTokens > 0 {
		config.MaxOutputTokens = c.config.MaxOutputTokens
	}
	if schema != nil {
		config.ResponseSchema = toGenAISchema(schema)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.config.Model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return resp.Text(), nil
}

// Close is a no-op; the genai client holds no closable resources.
func (c *GenAIClient) Close() error {
	return nil
}

func toGenAISchema(s *Schema) *genai.Schema {
	out := &genai.Schema{Description: s.Description}
	switch s.Kind {
	case KindString:
		out.Type = genai.TypeString
	case KindNumber:
		out.Type = genai.TypeNumber
	case KindArray:
		out.Type = genai.TypeArray
		if s.Items != nil {
			out.Items = toGenAISchema(s.Items)
		}
	case KindObject:
		out.Type = genai.TypeObject
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, p := range s.Properties {
			out.Properties[name] = toGenAISchema(p)
		}
		out.Required = append([]string(nil), s.Required...)
		out.PropertyOrdering = append([]string(nil), s.Order...)
	}
	return out
}
