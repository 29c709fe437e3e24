package models

import (
	"fmt"
	"slices"
	"strings"
)

// StudentProfile is the input collected by the profile form.
type StudentProfile struct {
	Name              string   `json:"name" form:"name" validate:"required"`
	Phone             string   `json:"phone" form:"phone" validate:"required"`
	School            string   `json:"school" form:"school" validate:"required"`
	Major             string   `json:"major" form:"major" validate:"required"`
	Grade             string   `json:"grade" form:"grade" validate:"grade"`
	Skills            []string `json:"skills" form:"-"`
	MBTI              string   `json:"mbti" form:"mbti" validate:"mbti"`
	ParentOccupation  string   `json:"parentOccupation" form:"parentOccupation" validate:"parent_occupation"`
	ExpectedCity      string   `json:"expectedCity" form:"expectedCity" validate:"required"`
	AcademicGoal      string   `json:"academicGoal" form:"academicGoal" validate:"academic_goal"`
	TargetInstitution string   `json:"targetInstitution,omitempty" form:"targetInstitution"`
	EmploymentGoals   []string `json:"employmentGoals" form:"-" validate:"dive,track"`
}

// DefaultProfile returns the initial state of the profile form.
func DefaultProfile() StudentProfile {
	return StudentProfile{
		Grade:            Grades[0],
		MBTI:             "ISTJ",
		ParentOccupation: ParentOccupations[5],
		AcademicGoal:     AcademicGoalDirectEmployment,
		Skills:           []string{},
		EmploymentGoals:  []string{},
	}
}

// Validate checks presence of the required fields, catalog membership and the
// employment goal sentinel rule.
func (p *StudentProfile) Validate() error {
	var fields []FieldError
	if err := validate.Struct(p); err != nil {
		fields = append(fields, fieldErrors(err)...)
	}
	if slices.Contains(p.EmploymentGoals, TrackUndecided) && len(p.EmploymentGoals) > 1 {
		fields = append(fields, FieldError{
			Field:   "employmentGoals",
			Message: fmt.Sprintf("%q cannot be combined with other tracks", TrackUndecided),
		})
	}
	if len(fields) > 0 {
		return &ProfileError{Fields: fields}
	}
	return nil
}

// IsTargetInstitutionRelevant reports whether the academic goal is a
// further-study goal, the only case where a target institution applies.
func IsTargetInstitutionRelevant(p StudentProfile) bool {
	return p.AcademicGoal != AcademicGoalDirectEmployment &&
		p.AcademicGoal != AcademicGoalUndecided
}

// EffectiveTargetInstitution returns the trimmed target institution, or "" when
// it does not apply to the academic goal.
func EffectiveTargetInstitution(p StudentProfile) string {
	if !IsTargetInstitutionRelevant(p) {
		return ""
	}
	return strings.TrimSpace(p.TargetInstitution)
}

// ApplyEmploymentGoalToggle returns p with goal toggled. Selecting the
// undecided sentinel replaces every selection; selecting any other track
// drops the sentinel first.
func ApplyEmploymentGoalToggle(p StudentProfile, goal string) StudentProfile {
	if goal == TrackUndecided {
		p.EmploymentGoals = []string{TrackUndecided}
		return p
	}

	goals := make([]string, 0, len(p.EmploymentGoals)+1)
	found := false
	for _, g := range p.EmploymentGoals {
		switch g {
		case TrackUndecided:
		case goal:
			found = true
		default:
			goals = append(goals, g)
		}
	}
	if !found {
		goals = append(goals, goal)
	}
	p.EmploymentGoals = goals
	return p
}

// NormalizeEmploymentGoals collapses the list to the sentinel alone when it is
// present.
func NormalizeEmploymentGoals(goals []string) []string {
	if slices.Contains(goals, TrackUndecided) {
		return []string{TrackUndecided}
	}
	return slices.Clone(goals)
}

// AddSkill appends the trimmed skill. Duplicates are kept.
func AddSkill(p StudentProfile, skill string) StudentProfile {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return p
	}
	p.Skills = append(slices.Clone(p.Skills), skill)
	return p
}

// RemoveSkill drops every entry equal to skill.
func RemoveSkill(p StudentProfile, skill string) StudentProfile {
	skills := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		if s != skill {
			skills = append(skills, s)
		}
	}
	p.Skills = skills
	return p
}
