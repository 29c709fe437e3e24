package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/BerylCAtieno/careerpath-agent/internal/config"
	"github.com/BerylCAtieno/careerpath-agent/internal/llm"
	"github.com/BerylCAtieno/careerpath-agent/internal/logger"
	"github.com/BerylCAtieno/careerpath-agent/internal/models"
	"github.com/BerylCAtieno/careerpath-agent/internal/planner"
)

// loadConfig loads and validates the configuration, then installs the logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.Init(logger.Options{
		Level:    cfg.Log.Level,
		Format:   cfg.Log.Format,
		Output:   cfg.Log.Output,
		FilePath: cfg.Log.FilePath,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, log, nil
}

// newGenerator builds the model client and the generator around it. The
// caller closes the client.
func newGenerator(ctx context.Context, cfg *config.Config, log *slog.Logger) (*planner.Generator, llm.Client, error) {
	client, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create llm client: %w", err)
	}
	if cfg.LLM.APIKey == "" {
		log.Warn("GEMINI_API_KEY is not set; report generation will fail until it is configured")
	}
	gen := planner.NewGenerator(client, log, planner.WithRequestTimeout(cfg.LLM.RequestTimeout))
	return gen, client, nil
}

// readProfile decodes and validates a profile JSON file.
func readProfile(path string) (models.StudentProfile, error) {
	var profile models.StudentProfile
	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("failed to read profile: %w", err)
	}
	if err := json.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	if err := profile.Validate(); err != nil {
		return profile, err
	}
	return profile, nil
}
