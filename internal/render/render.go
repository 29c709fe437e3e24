// Package render turns a career report into HTML, Markdown or PDF.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"slices"

	"github.com/BerylCAtieno/careerpath-agent/internal/models"
)

//go:embed templates/*.html
var templateFiles embed.FS

var stageColors = []string{"blue", "indigo", "violet", "purple", "slate"}

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	"stageColor": func(i int) string {
		return stageColors[i%len(stageColors)]
	},
	"score": func(v float64) string {
		return fmt.Sprintf("%.0f", v)
	},
}

var templates = template.Must(template.New("").Funcs(funcs).ParseFS(templateFiles, "templates/*.html"))

// Templates returns the parsed page templates ("form.html", "report.html").
func Templates() *template.Template {
	return templates
}

// ReportPage is the data behind report.html.
type ReportPage struct {
	Report *models.CareerReport
	Radar  Radar
	Stages []models.RoadmapStage
	// Standalone hides the interactive toolbar, for print and PDF output.
	Standalone bool
}

// NewReportPage prepares a report for report.html.
func NewReportPage(report *models.CareerReport, standalone bool) ReportPage {
	return ReportPage{
		Report:     report,
		Radar:      NewRadar(report.CompetencyRadar),
		Stages:     report.Stages(),
		Standalone: standalone,
	}
}

// Report writes the standalone HTML page for report.
func Report(w io.Writer, report *models.CareerReport) error {
	if err := templates.ExecuteTemplate(w, "report.html", NewReportPage(report, true)); err != nil {
		return &TemplateError{Message: "failed to execute report template", Cause: err}
	}
	return nil
}

// Option is one choice of a select or checkbox group.
type Option struct {
	Value    string
	Selected bool
	// RevealsTarget marks academic goals that show the target institution
	// input on the client. The server still ignores the target otherwise.
	RevealsTarget bool
}

// FormPage is the data behind form.html.
type FormPage struct {
	Draft       models.StudentProfile
	ShowTarget  bool
	Error       string
	Fields      []models.FieldError
	Grades      []Option
	MBTITypes   []Option
	Parents     []Option
	Goals       []Option
	Tracks      []Option
	Loading     bool
	HasReport   bool
	SkillsCount int
}

// NewFormPage prepares the form for a draft profile.
func NewFormPage(draft models.StudentProfile) FormPage {
	return FormPage{
		Draft:       draft,
		ShowTarget:  models.IsTargetInstitutionRelevant(draft),
		Grades:      options(models.Grades, draft.Grade),
		MBTITypes:   options(models.MBTITypes, draft.MBTI),
		Parents:     options(models.ParentOccupations, draft.ParentOccupation),
		Goals:       goalOptions(draft.AcademicGoal),
		Tracks:      multiOptions(models.EmploymentTracks, draft.EmploymentGoals),
		SkillsCount: len(draft.Skills),
	}
}

func options(values []string, selected string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Selected: v == selected}
	}
	return out
}

func multiOptions(values, selected []string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Selected: slices.Contains(selected, v)}
	}
	return out
}

func goalOptions(selected string) []Option {
	out := options(models.AcademicGoals, selected)
	for i := range out {
		out[i].RevealsTarget = models.IsTargetInstitutionRelevant(models.StudentProfile{AcademicGoal: out[i].Value})
	}
	return out
}
