package planner

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/BerylCAtieno/careerpath-agent/internal/models"
)

//go:embed prompt.tmpl
var promptSource string

var promptTemplate = template.Must(template.New("prompt").Parse(promptSource))

type promptData struct {
	Name              string
	School            string
	Major             string
	Grade             string
	Skills            string
	MBTI              string
	ParentOccupation  string
	ExpectedCity      string
	AcademicGoal      string
	TargetInstitution string
	Tracks            string
}

// BuildPrompt renders the instruction prompt for a profile. The output is
// deterministic for a given profile.
func BuildPrompt(p models.StudentProfile) (string, error) {
	data := promptData{
		Name:              p.Name,
		School:            p.School,
		Major:             p.Major,
		Grade:             p.Grade,
		Skills:            joinOrNone(p.Skills),
		MBTI:              p.MBTI,
		ParentOccupation:  p.ParentOccupation,
		ExpectedCity:      p.ExpectedCity,
		AcademicGoal:      p.AcademicGoal,
		TargetInstitution: models.EffectiveTargetInstitution(p),
		Tracks:            joinOrNone(models.NormalizeEmploymentGoals(p.EmploymentGoals)),
	}

	var sb strings.Builder
	if err := promptTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return sb.String(), nil
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}
