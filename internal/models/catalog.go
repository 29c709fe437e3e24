package models

// Grades offered by the profile form.
var Grades = []string{"大一", "大二", "大三", "大四", "研一", "研二"}

// Academic goals. The first three are further-study goals.
const (
	AcademicGoalRecommendation   = "保研"
	AcademicGoalEntranceExam     = "考研"
	AcademicGoalStudyAbroad      = "留学"
	AcademicGoalDirectEmployment = "直接就业"
	AcademicGoalUndecided        = "暂时没想好"
)

var AcademicGoals = []string{
	AcademicGoalRecommendation,
	AcademicGoalEntranceExam,
	AcademicGoalStudyAbroad,
	AcademicGoalDirectEmployment,
	AcademicGoalUndecided,
}

var MBTITypes = []string{
	"ESTJ", "ISTJ", "ESFJ", "ISFJ",
	"ESTP", "ISTP", "ESFP", "ISFP",
	"ENTJ", "INTJ", "ENTP", "INTP",
	"ENFJ", "INFJ", "ENFP", "INFP",
}

var ParentOccupations = []string{
	"财经相关-政府/公共事业",
	"财经相关-高校财经教育",
	"财经相关-企业职员",
	"财经相关-企业管理者",
	"财经相关-个人投资者",
	"非财经相关-企业职员",
	"非财经相关-企业管理者",
	"非财经相关-政府/公共事业",
	"非财经相关-个体经营者",
	"非财经相关-自由职业者",
	"其他",
}

// TrackUndecided is mutually exclusive with every other employment track.
const TrackUndecided = "暂时没想好"

var EmploymentTracks = []string{
	"券商 (投行/行研)",
	"量化私募",
	"公募基金",
	"商业银行",
	"互联网/FinTech",
	"国央企 (非金融)",
	"PE/VC",
	"咨询 (MBB/四大)",
	"资产管理",
	"信托/保险",
	TrackUndecided,
}
