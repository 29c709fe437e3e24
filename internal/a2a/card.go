package a2a

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed agent.json
var agentCardJSON []byte

// AgentCard is the document served at /.well-known/agent.json.
type AgentCard struct {
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	URL                string            `json:"url"`
	Version            string            `json:"version"`
	Provider           map[string]any    `json:"provider,omitempty"`
	Capabilities       map[string]bool   `json:"capabilities"`
	DefaultInputModes  []string          `json:"defaultInputModes"`
	DefaultOutputModes []string          `json:"defaultOutputModes"`
	Skills             []AgentSkill      `json:"skills"`
	Endpoints          map[string]string `json:"endpoints"`
}

type AgentSkill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	Examples    []string `json:"examples,omitempty"`
}

// LoadAgentCard parses the embedded card and points it at baseURL.
func LoadAgentCard(baseURL string) (AgentCard, error) {
	var card AgentCard
	if err := json.Unmarshal(agentCardJSON, &card); err != nil {
		return AgentCard{}, fmt.Errorf("failed to parse agent card: %w", err)
	}
	card.URL = baseURL + EndpointPath
	card.Endpoints = map[string]string{
		"a2a":    baseURL + EndpointPath,
		"health": baseURL + "/health",
	}
	return card, nil
}
