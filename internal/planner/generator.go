// Package planner turns a student profile into a validated career report
// with one generative model call.
package planner

import (
	"context"
	"log/slog"
	"time"

	"github.com/BerylCAtieno/careerpath-agent/internal/llm"
	"github.com/BerylCAtieno/careerpath-agent/internal/models"
)

// Generator produces career reports. It never retries.
type Generator struct {
	client  llm.Client
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithRequestTimeout bounds the model request. Zero leaves it to the caller's
// context.
func WithRequestTimeout(d time.Duration) Option {
	return func(g *Generator) {
		g.timeout = d
	}
}

// NewGenerator wraps an already constructed model client. The caller owns
// the client's lifecycle.
func NewGenerator(client llm.Client, logger *slog.Logger, opts ...Option) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Generator{client: client, logger: logger}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateCareerReport issues exactly one model request for profile and
// returns a fully validated report. Every failure is a *GenerationError.
func (g *Generator) GenerateCareerReport(ctx context.Context, profile models.StudentProfile) (*models.CareerReport, error) {
	prompt, err := BuildPrompt(profile)
	if err != nil {
		return nil, &GenerationError{Stage: StagePrompt, Cause: err}
	}

	g.logger.Info("generating career report", "student", profile.Name, "prompt_chars", len(prompt))

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	text, err := g.client.GenerateJSON(ctx, prompt, ReportSchema)
	if err != nil {
		return nil, &GenerationError{Stage: StageRequest, Cause: err}
	}

	report, err := ParseReport(llm.CleanJSONBlock(text))
	if err != nil {
		g.logger.Warn("model reply rejected", "student", profile.Name, "reply_chars", len(text), "error", err)
		return nil, err
	}

	g.logger.Info("career report generated",
		"student", profile.Name,
		"recommendations", len(report.Recommendations),
		"radar_axes", len(report.CompetencyRadar))
	return report, nil
}
