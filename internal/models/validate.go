package models

import (
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report field paths with their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	catalogs := map[string][]string{
		"grade":             Grades,
		"mbti":              MBTITypes,
		"academic_goal":     AcademicGoals,
		"parent_occupation": ParentOccupations,
		"track":             EmploymentTracks,
	}
	for tag, values := range catalogs {
		values := values
		// Catalog labels contain spaces, which the built-in oneof tag cannot express.
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return slices.Contains(values, fl.Field().String())
		})
	}
	return v
}
