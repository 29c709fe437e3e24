package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() StudentProfile {
	p := DefaultProfile()
	p.Name = "李明"
	p.Phone = "13800000000"
	p.School = "上海财经大学"
	p.Major = "金融学"
	p.ExpectedCity = "上海"
	return p
}

func TestStudentProfile_Validate_Valid(t *testing.T) {
	p := validProfile()
	p.EmploymentGoals = []string{"量化私募", "PE/VC"}
	assert.NoError(t, p.Validate())
}

func TestStudentProfile_Validate_MissingRequired(t *testing.T) {
	p := DefaultProfile()

	err := p.Validate()
	require.Error(t, err)

	var perr *ProfileError
	require.ErrorAs(t, err, &perr)

	fields := make([]string, 0, len(perr.Fields))
	for _, f := range perr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"name", "phone", "school", "major", "expectedCity"}, fields)
}

func TestStudentProfile_Validate_PhoneFormatNotChecked(t *testing.T) {
	p := validProfile()
	p.Phone = "call me maybe"
	assert.NoError(t, p.Validate())
}

func TestStudentProfile_Validate_Catalogs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StudentProfile)
		field  string
	}{
		{"unknown grade", func(p *StudentProfile) { p.Grade = "大五" }, "grade"},
		{"unknown mbti", func(p *StudentProfile) { p.MBTI = "XXXX" }, "mbti"},
		{"unknown goal", func(p *StudentProfile) { p.AcademicGoal = "gap year" }, "academicGoal"},
		{"unknown parent job", func(p *StudentProfile) { p.ParentOccupation = "astronaut" }, "parentOccupation"},
		{"unknown track", func(p *StudentProfile) { p.EmploymentGoals = []string{"券商 (投行/行研)", "circus"} }, "employmentGoals[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)

			var perr *ProfileError
			require.ErrorAs(t, p.Validate(), &perr)
			require.Len(t, perr.Fields, 1)
			assert.Equal(t, tt.field, perr.Fields[0].Field)
		})
	}
}

func TestStudentProfile_Validate_TrackWithSpacesAccepted(t *testing.T) {
	p := validProfile()
	p.EmploymentGoals = []string{"咨询 (MBB/四大)"}
	assert.NoError(t, p.Validate())
}

func TestStudentProfile_Validate_UndecidedMixed(t *testing.T) {
	p := validProfile()
	p.EmploymentGoals = []string{TrackUndecided, "量化私募"}

	var perr *ProfileError
	require.ErrorAs(t, p.Validate(), &perr)
	assert.Equal(t, "employmentGoals", perr.Fields[0].Field)
}

func TestIsTargetInstitutionRelevant(t *testing.T) {
	tests := []struct {
		goal string
		want bool
	}{
		{AcademicGoalRecommendation, true},
		{AcademicGoalEntranceExam, true},
		{AcademicGoalStudyAbroad, true},
		{AcademicGoalDirectEmployment, false},
		{AcademicGoalUndecided, false},
	}

	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			p := validProfile()
			p.AcademicGoal = tt.goal
			assert.Equal(t, tt.want, IsTargetInstitutionRelevant(p))
		})
	}
}

func TestEffectiveTargetInstitution(t *testing.T) {
	p := validProfile()
	p.TargetInstitution = "  LSE  "

	p.AcademicGoal = AcademicGoalStudyAbroad
	assert.Equal(t, "LSE", EffectiveTargetInstitution(p))

	p.AcademicGoal = AcademicGoalDirectEmployment
	assert.Empty(t, EffectiveTargetInstitution(p))
	assert.Equal(t, "  LSE  ", p.TargetInstitution, "typed value is kept on the profile")
}

func TestApplyEmploymentGoalToggle(t *testing.T) {
	tests := []struct {
		name  string
		start []string
		goal  string
		want  []string
	}{
		{"add to empty", nil, "量化私募", []string{"量化私募"}},
		{"toggle off", []string{"量化私募", "PE/VC"}, "量化私募", []string{"PE/VC"}},
		{"undecided replaces all", []string{"量化私募", "PE/VC"}, TrackUndecided, []string{TrackUndecided}},
		{"undecided twice stays", []string{TrackUndecided}, TrackUndecided, []string{TrackUndecided}},
		{"track clears undecided", []string{TrackUndecided}, "公募基金", []string{"公募基金"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			p.EmploymentGoals = tt.start
			got := ApplyEmploymentGoalToggle(p, tt.goal)
			assert.Equal(t, tt.want, got.EmploymentGoals)
		})
	}
}

func TestApplyEmploymentGoalToggle_SentinelInvariant(t *testing.T) {
	sequence := []string{
		"量化私募", TrackUndecided, "PE/VC", "商业银行", "PE/VC",
		TrackUndecided, TrackUndecided, "信托/保险", "信托/保险", TrackUndecided, "资产管理",
	}

	p := validProfile()
	for _, goal := range sequence {
		p = ApplyEmploymentGoalToggle(p, goal)

		hasSentinel := false
		for _, g := range p.EmploymentGoals {
			if g == TrackUndecided {
				hasSentinel = true
			}
		}
		if hasSentinel {
			assert.Equal(t, []string{TrackUndecided}, p.EmploymentGoals, "after toggling %q", goal)
		}
	}
}

func TestApplyEmploymentGoalToggle_DoesNotAliasInput(t *testing.T) {
	p := validProfile()
	p.EmploymentGoals = []string{"量化私募", "PE/VC"}

	_ = ApplyEmploymentGoalToggle(p, "量化私募")
	assert.Equal(t, []string{"量化私募", "PE/VC"}, p.EmploymentGoals)
}

func TestNormalizeEmploymentGoals(t *testing.T) {
	assert.Equal(t, []string{TrackUndecided}, NormalizeEmploymentGoals([]string{"PE/VC", TrackUndecided}))
	assert.Equal(t, []string{"PE/VC", "公募基金"}, NormalizeEmploymentGoals([]string{"PE/VC", "公募基金"}))
}

func TestSkills_AddKeepsDuplicates_RemoveByValue(t *testing.T) {
	p := validProfile()

	p = AddSkill(p, "CFA")
	p = AddSkill(p, " CFA ")
	assert.Equal(t, []string{"CFA", "CFA"}, p.Skills)

	p = AddSkill(p, "Python")
	p = RemoveSkill(p, "CFA")
	assert.Equal(t, []string{"Python"}, p.Skills)
}

func TestAddSkill_BlankIgnored(t *testing.T) {
	p := validProfile()
	p = AddSkill(p, "   ")
	assert.Empty(t, p.Skills)
}
