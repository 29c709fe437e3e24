package render

import (
	"fmt"
	"strings"

	"github.com/BerylCAtieno/careerpath-agent/internal/models"
)

// Markdown formats a report as plain Markdown for chat and terminal output.
func Markdown(report *models.CareerReport) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# 职业规划报告: %s\n\n", report.StudentName))
	b.WriteString(fmt.Sprintf("_%s · %s · %s · %s_\n\n",
		report.ProfileSummary.School, report.ProfileSummary.Major,
		report.ProfileSummary.MBTI, report.GeneratedAt))

	b.WriteString("## 内行人说\n")
	b.WriteString(report.InsiderAdvice + "\n")

	b.WriteString("\n## 核心竞争力\n")
	for _, p := range report.CompetencyRadar {
		b.WriteString(fmt.Sprintf("- %s: %.0f/%.0f\n", p.Subject, p.Score, p.FullMark))
	}

	b.WriteString("\n## 岗位匹配\n")
	for _, job := range report.Recommendations {
		b.WriteString(fmt.Sprintf("\n### %s (%.0f%%)\n", job.RoleName, job.MatchScore))
		b.WriteString(job.Description + "\n")
		writeList(&b, "硬性要求", job.Requirements)
		b.WriteString(fmt.Sprintf("- 晋升路径: %s\n", strings.Join(job.Path, " → ")))
		b.WriteString(fmt.Sprintf("- 目标机构: %s\n", strings.Join(job.Companies, "、")))
	}

	b.WriteString("\n## 行业宏观解读\n")
	b.WriteString(report.IndustryAnalysis + "\n")

	b.WriteString(fmt.Sprintf("\n## 性格画像 (%s)\n", report.ProfileSummary.MBTI))
	b.WriteString(report.ProfileSummary.MBTIDescription + "\n")
	writeList(&b, "优势", report.ProfileSummary.MBTIStrengths)
	writeList(&b, "短板", report.ProfileSummary.MBTIWeaknesses)

	b.WriteString("\n## 技能差距\n")
	writeList(&b, "已具备", report.SkillGap.Acquired)
	writeList(&b, "待补齐", report.SkillGap.Missing)

	b.WriteString("\n## 五阶段成长路线\n")
	for _, s := range report.Stages() {
		b.WriteString(fmt.Sprintf("\n### %s · %s\n", s.Year.YearLabel, s.Year.Theme))
		b.WriteString(fmt.Sprintf("- 核心任务: %s\n", s.Year.CoreTask))
		b.WriteString(fmt.Sprintf("- 学业重点: %s\n", s.Year.AcademicFocus))
		b.WriteString(fmt.Sprintf("- 证书节点: %s\n", s.Year.CertificateMilestone))
		b.WriteString(fmt.Sprintf("- 实习目标: %s\n", s.Year.InternshipGoal))
	}
	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(fmt.Sprintf("\n**%s:**\n", title))
	for _, item := range items {
		b.WriteString(fmt.Sprintf("- %s\n", strings.TrimSpace(item)))
	}
}
