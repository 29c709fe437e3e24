package planner

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/BerylCAtieno/careerpath-agent/internal/models"
	"github.com/xeipuuv/gojsonschema"
)

var (
	compiledOnce   sync.Once
	compiledSchema *gojsonschema.Schema
	compileErr     error
)

func reportJSONSchema() (*gojsonschema.Schema, error) {
	compiledOnce.Do(func() {
		doc, err := ReportSchema.JSONSchemaString()
		if err != nil {
			compileErr = fmt.Errorf("failed to render report schema: %w", err)
			return
		}
		compiledSchema, compileErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	})
	return compiledSchema, compileErr
}

// ParseReport turns raw model text into a validated report. Markdown fences are
// tolerated; anything else that is not a complete, in-range report is an error.
func ParseReport(text string) (*models.CareerReport, error) {
	if text == "" {
		return nil, &GenerationError{Stage: StageEmpty, Cause: ErrEmptyResponse}
	}
	if !json.Valid([]byte(text)) {
		return nil, &GenerationError{Stage: StageParse, Cause: fmt.Errorf("reply is not valid JSON")}
	}

	if err := checkSchema(text); err != nil {
		return nil, &GenerationError{Stage: StageValidate, Cause: err}
	}

	var report models.CareerReport
	if err := json.Unmarshal([]byte(text), &report); err != nil {
		return nil, &GenerationError{Stage: StageParse, Cause: fmt.Errorf("failed to decode report: %w", err)}
	}
	if err := report.Validate(); err != nil {
		return nil, &GenerationError{Stage: StageValidate, Cause: err}
	}
	return &report, nil
}

func checkSchema(text string) error {
	schema, err := reportJSONSchema()
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(text))
	if err != nil {
		return fmt.Errorf("schema validation failed during load: %w", err)
	}
	if result.Valid() {
		return nil
	}

	schemaErr := &SchemaError{Fields: make([]models.FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		schemaErr.Fields = append(schemaErr.Fields, models.FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return schemaErr
}
