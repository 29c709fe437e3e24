package planner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BerylCAtieno/careerpath-agent/internal/models"
)

// ErrEmptyResponse is returned when the model replies with no text.
var ErrEmptyResponse = errors.New("no response from model")

// Generation stages reported by GenerationError.
const (
	StagePrompt   = "prompt"
	StageRequest  = "request"
	StageEmpty    = "empty"
	StageParse    = "parse"
	StageValidate = "validate"
)

// GenerationError wraps every failure of GenerateCareerReport.
type GenerationError struct {
	Stage string
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("career report generation failed (%s): %v", e.Stage, e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// SchemaError lists the JSON Schema violations of a reply.
type SchemaError struct {
	Fields []models.FieldError
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString("reply does not match report schema:\n")
	for i, f := range e.Fields {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, f.Field, f.Message))
	}
	return sb.String()
}
