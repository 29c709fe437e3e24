package planner

import "github.com/BerylCAtieno/careerpath-agent/internal/llm"

func roadmapYear() *llm.Schema {
	return llm.Object(
		llm.Field{Name: "yearLabel", Schema: llm.String("")},
		llm.Field{Name: "theme", Schema: llm.String("")},
		llm.Field{Name: "core_task", Schema: llm.String("")},
		llm.Field{Name: "academic_focus", Schema: llm.String("")},
		llm.Field{Name: "certificate_milestone", Schema: llm.String("")},
		llm.Field{Name: "internship_goal", Schema: llm.String("")},
	)
}

func stringList(minItems int) *llm.Schema {
	return llm.ArrayOf(llm.String(""), minItems)
}

// ReportSchema is the output contract sent with every generation request and
// checked locally against every reply.
var ReportSchema = llm.Object(
	llm.Field{Name: "studentName", Schema: llm.String("")},
	llm.Field{Name: "generatedAt", Schema: llm.String("")},
	llm.Field{Name: "profileSummary", Schema: llm.Object(
		llm.Field{Name: "school", Schema: llm.String("")},
		llm.Field{Name: "major", Schema: llm.String("")},
		llm.Field{Name: "mbti", Schema: llm.String("")},
		llm.Field{Name: "mbtiDescription", Schema: llm.String("Short, punchy personality analysis in natural Chinese.")},
		llm.Field{Name: "mbtiStrengths", Schema: stringList(1)},
		llm.Field{Name: "mbtiWeaknesses", Schema: stringList(1)},
	)},
	llm.Field{Name: "competencyRadar", Schema: llm.ArrayOf(llm.Object(
		llm.Field{Name: "subject", Schema: llm.String("")},
		llm.Field{Name: "A", Schema: llm.Number(0, 100)},
		llm.Field{Name: "fullMark", Schema: llm.Number(0, 100)},
	), 1)},
	llm.Field{Name: "recommendations", Schema: llm.ArrayOf(llm.Object(
		llm.Field{Name: "roleName", Schema: llm.String("")},
		llm.Field{Name: "matchScore", Schema: llm.Number(0, 100)},
		llm.Field{Name: "description", Schema: llm.String("Why this fits, in natural language.")},
		llm.Field{Name: "requirements", Schema: stringList(1)},
		llm.Field{Name: "path", Schema: stringList(1)},
		llm.Field{Name: "companies", Schema: stringList(1)},
	), 1)},
	llm.Field{Name: "industryAnalysis", Schema: llm.String("Macro analysis in 'Insider' tone.")},
	llm.Field{Name: "skillGap", Schema: llm.Object(
		llm.Field{Name: "acquired", Schema: stringList(0)},
		llm.Field{Name: "missing", Schema: stringList(1)},
	)},
	llm.Field{Name: "roadmap", Schema: llm.Object(
		llm.Field{Name: "freshman", Schema: roadmapYear()},
		llm.Field{Name: "sophomore", Schema: roadmapYear()},
		llm.Field{Name: "junior", Schema: roadmapYear()},
		llm.Field{Name: "senior", Schema: roadmapYear()},
		llm.Field{Name: "graduate", Schema: roadmapYear()},
	)},
	llm.Field{Name: "insiderAdvice", Schema: llm.String("")},
)
