package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// GenerationFailedMessage is the only text shown to users when report
// generation fails, whatever the cause.
const GenerationFailedMessage = "AI生成报告失败，请检查API Key或稍后重试。"

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ProfileError is returned when a submitted profile fails validation.
type ProfileError struct {
	Fields []FieldError
}

func (e *ProfileError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("invalid profile: %s", strings.Join(names, ", "))
}

// ReportError is returned when a generated report breaks the report contract.
type ReportError struct {
	Fields []FieldError
}

func (e *ReportError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid report:\n")
	for i, f := range e.Fields {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, f.Field, f.Message))
	}
	return sb.String()
}

func fieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "(root)", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: describe(fe),
		})
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "gte", "lte", "gt":
		return fmt.Sprintf("must satisfy %s=%s (got %v)", fe.Tag(), fe.Param(), fe.Value())
	case "ltefield":
		return fmt.Sprintf("must not exceed %s (got %v)", fe.Param(), fe.Value())
	case "grade", "mbti", "academic_goal", "parent_occupation", "track":
		return fmt.Sprintf("%q is not a known %s", fe.Value(), strings.ReplaceAll(fe.Tag(), "_", " "))
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}
