package models

// CareerReport is the structured report authored by the model.
type CareerReport struct {
	StudentName      string              `json:"studentName" validate:"required"`
	GeneratedAt      string              `json:"generatedAt" validate:"required"`
	ProfileSummary   ProfileSummary      `json:"profileSummary"`
	CompetencyRadar  []RadarPoint        `json:"competencyRadar" validate:"min=1,dive"`
	Recommendations  []JobRecommendation `json:"recommendations" validate:"min=1,dive"`
	IndustryAnalysis string              `json:"industryAnalysis" validate:"required"`
	SkillGap         SkillGap            `json:"skillGap"`
	Roadmap          Roadmap             `json:"roadmap"`
	InsiderAdvice    string              `json:"insiderAdvice" validate:"required"`
}

type ProfileSummary struct {
	School          string   `json:"school" validate:"required"`
	Major           string   `json:"major" validate:"required"`
	MBTI            string   `json:"mbti" validate:"required"`
	MBTIDescription string   `json:"mbtiDescription" validate:"required"`
	MBTIStrengths   []string `json:"mbtiStrengths" validate:"min=1,dive,required"`
	MBTIWeaknesses  []string `json:"mbtiWeaknesses" validate:"min=1,dive,required"`
}

// RadarPoint is one axis of the competency radar. The score travels as "A"
// on the wire.
type RadarPoint struct {
	Subject  string  `json:"subject" validate:"required"`
	Score    float64 `json:"A" validate:"gte=0,lte=100,ltefield=FullMark"`
	FullMark float64 `json:"fullMark" validate:"gt=0,lte=100"`
}

type JobRecommendation struct {
	RoleName     string   `json:"roleName" validate:"required"`
	MatchScore   float64  `json:"matchScore" validate:"gte=0,lte=100"`
	Description  string   `json:"description" validate:"required"`
	Requirements []string `json:"requirements" validate:"min=1,dive,required"`
	Path         []string `json:"path" validate:"min=1,dive,required"`
	Companies    []string `json:"companies" validate:"min=1,dive,required"`
}

type SkillGap struct {
	Acquired []string `json:"acquired" validate:"dive,required"`
	Missing  []string `json:"missing" validate:"min=1,dive,required"`
}

// Roadmap holds the five planning stages. All five are required.
type Roadmap struct {
	Freshman  RoadmapYear `json:"freshman"`
	Sophomore RoadmapYear `json:"sophomore"`
	Junior    RoadmapYear `json:"junior"`
	Senior    RoadmapYear `json:"senior"`
	Graduate  RoadmapYear `json:"graduate"`
}

type RoadmapYear struct {
	YearLabel            string `json:"yearLabel" validate:"required"`
	Theme                string `json:"theme" validate:"required"`
	CoreTask             string `json:"core_task" validate:"required"`
	AcademicFocus        string `json:"academic_focus" validate:"required"`
	CertificateMilestone string `json:"certificate_milestone" validate:"required"`
	InternshipGoal       string `json:"internship_goal" validate:"required"`
}

// RoadmapStage pairs a stage key with its content.
type RoadmapStage struct {
	Key  string
	Year RoadmapYear
}

// StageKeys lists the roadmap stages in timeline order.
var StageKeys = []string{"freshman", "sophomore", "junior", "senior", "graduate"}

// Stages returns the roadmap in timeline order.
func (r *CareerReport) Stages() []RoadmapStage {
	years := []RoadmapYear{
		r.Roadmap.Freshman,
		r.Roadmap.Sophomore,
		r.Roadmap.Junior,
		r.Roadmap.Senior,
		r.Roadmap.Graduate,
	}
	stages := make([]RoadmapStage, len(years))
	for i, y := range years {
		stages[i] = RoadmapStage{Key: StageKeys[i], Year: y}
	}
	return stages
}

// Validate checks required text, score ranges, non-empty lists and the
// presence of every roadmap stage.
func (r *CareerReport) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &ReportError{Fields: fieldErrors(err)}
	}
	return nil
}
