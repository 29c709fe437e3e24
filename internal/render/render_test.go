package render

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BerylCAtieno/careerpath-agent/internal/models"
	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadReport(t *testing.T) *models.CareerReport {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "report.json"))
	require.NoError(t, err)
	var report models.CareerReport
	require.NoError(t, json.Unmarshal(data, &report))
	return &report
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestReport_Sections(t *testing.T) {
	report := loadReport(t)

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, report))
	doc := parse(t, buf.String())

	assert.Equal(t, "李明", strings.TrimSpace(doc.Find("#report-header h1").Text()))
	assert.Contains(t, doc.Find("#insider-advice").Text(), report.InsiderAdvice)
	assert.Contains(t, doc.Find("#industry").Text(), report.IndustryAnalysis)

	assert.Equal(t, 1, doc.Find("#competency svg.radar polygon.score").Length())
	assert.Equal(t, len(report.CompetencyRadar), doc.Find("#competency ul.axes li").Length())

	cards := doc.Find("#recommendations .job-card")
	require.Equal(t, 2, cards.Length())
	assert.Equal(t, "卖方行业研究员", cards.First().Find("h3").Text())
	assert.Equal(t, "86%", cards.First().Find(".match").Text())

	assert.Equal(t, 2, doc.Find("#personality ul.strengths li").Length())
	assert.Equal(t, 1, doc.Find("#personality ul.weaknesses li").Length())
	assert.Equal(t, 2, doc.Find("#skill-gap ul.acquired li").Length())
	assert.Equal(t, 2, doc.Find("#skill-gap ul.missing li").Length())

	// Standalone output carries no interactive toolbar.
	assert.Equal(t, 0, doc.Find(".toolbar").Length())
}

func TestReport_RoadmapHasFiveStagesInOrder(t *testing.T) {
	report := loadReport(t)

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, report))
	doc := parse(t, buf.String())

	stages := doc.Find("#roadmap .stage")
	require.Equal(t, 5, stages.Length())

	var keys []string
	stages.Each(func(_ int, s *goquery.Selection) {
		key, _ := s.Attr("data-stage")
		keys = append(keys, key)
		for _, field := range []string{".core-task", ".academic-focus", ".certificate", ".internship"} {
			assert.NotEmpty(t, strings.TrimSpace(s.Find(field).Text()), "%s %s", key, field)
		}
	})
	assert.Equal(t, models.StageKeys, keys)

	sophomore := doc.Find(`#roadmap .stage[data-stage="sophomore"]`)
	assert.Equal(t, "春季备考CFA一级，暑假考", sophomore.Find(".certificate").Text())
}

func TestReport_EmptyAcquiredShowsPlaceholder(t *testing.T) {
	report := loadReport(t)
	report.SkillGap.Acquired = nil

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, report))
	doc := parse(t, buf.String())

	assert.Equal(t, "暂无", doc.Find("#skill-gap ul.acquired li").Text())
}

func TestReport_EscapesModelText(t *testing.T) {
	report := loadReport(t)
	report.InsiderAdvice = `<script>alert("x")</script>`

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, report))

	assert.NotContains(t, buf.String(), `<script>alert`)
	doc := parse(t, buf.String())
	assert.Contains(t, doc.Find("#insider-advice p").Text(), `<script>alert("x")</script>`)
}

func TestReportPage_InteractiveToolbar(t *testing.T) {
	report := loadReport(t)

	var buf bytes.Buffer
	require.NoError(t, Templates().ExecuteTemplate(&buf, "report.html", NewReportPage(report, false)))
	doc := parse(t, buf.String())

	assert.Equal(t, 1, doc.Find(`.toolbar form[action="/reset"]`).Length())
	assert.Equal(t, 1, doc.Find(`.toolbar a[href="/report.pdf"]`).Length())
}

func TestFormPage_TargetInstitutionAlwaysEditable(t *testing.T) {
	draft := models.DefaultProfile()
	draft.TargetInstitution = "北京大学"

	var buf bytes.Buffer
	require.NoError(t, Templates().ExecuteTemplate(&buf, "form.html", NewFormPage(draft)))
	doc := parse(t, buf.String())

	// Direct employment starts with the field collapsed but still editable.
	_, hidden := doc.Find("#target-field").Attr("hidden")
	assert.True(t, hidden)
	input := doc.Find(`#target-field input[name="targetInstitution"]`)
	require.Equal(t, 1, input.Length())
	typ, _ := input.Attr("type")
	assert.Equal(t, "text", typ)

	var revealing []string
	doc.Find("#academicGoal option[data-target]").Each(func(_ int, o *goquery.Selection) {
		revealing = append(revealing, o.Text())
	})
	assert.Equal(t, []string{
		models.AcademicGoalRecommendation,
		models.AcademicGoalEntranceExam,
		models.AcademicGoalStudyAbroad,
	}, revealing)
	assert.Contains(t, doc.Find("script").Text(), "data-target")

	draft.AcademicGoal = models.AcademicGoalEntranceExam
	buf.Reset()
	require.NoError(t, Templates().ExecuteTemplate(&buf, "form.html", NewFormPage(draft)))
	doc = parse(t, buf.String())
	_, hidden = doc.Find("#target-field").Attr("hidden")
	assert.False(t, hidden)
	val, _ := doc.Find("#targetInstitution").Attr("value")
	assert.Equal(t, "北京大学", val)
}

func TestFormPage_SelectionsAndSkills(t *testing.T) {
	draft := models.DefaultProfile()
	draft.Skills = []string{"Python", "CFA一级"}
	draft = models.ApplyEmploymentGoalToggle(draft, models.EmploymentTracks[0])

	page := NewFormPage(draft)
	page.Loading = true
	page.Error = models.GenerationFailedMessage
	page.Fields = []models.FieldError{{Field: "name", Message: "is required"}}

	var buf bytes.Buffer
	require.NoError(t, Templates().ExecuteTemplate(&buf, "form.html", page))
	doc := parse(t, buf.String())

	assert.Equal(t, "ISTJ", doc.Find(`#mbti option[selected]`).Text())
	assert.Equal(t, models.Grades[0], doc.Find(`#grade option[selected]`).Text())

	selected := doc.Find("#tracks button.selected")
	require.Equal(t, 1, selected.Length())
	assert.Equal(t, models.EmploymentTracks[0], selected.Text())
	assert.Equal(t, len(models.EmploymentTracks), doc.Find("#tracks button").Length())

	assert.Equal(t, 2, doc.Find(`#skills button[name="remove_skill"]`).Length())
	assert.Contains(t, doc.Find("legend").Text(), "技能证书（2）")

	_, disabled := doc.Find(`button[value="submit"]`).Attr("disabled")
	assert.True(t, disabled)
	assert.Contains(t, doc.Find("#form-error").Text(), models.GenerationFailedMessage)
	assert.Equal(t, 1, doc.Find(`#field-errors li[data-field="name"]`).Length())
}

func TestMarkdown(t *testing.T) {
	report := loadReport(t)
	md := Markdown(report)

	assert.True(t, strings.HasPrefix(md, "# 职业规划报告: 李明\n"))
	assert.Contains(t, md, "- 量化能力: 82/100\n")
	assert.Contains(t, md, "### 卖方行业研究员 (86%)\n")
	assert.Contains(t, md, "- 晋升路径: 研究助理 → 研究员 → 首席分析师\n")
	assert.Contains(t, md, "- 证书节点: 春季备考CFA一级，暑假考\n")

	freshman := strings.Index(md, "大一 (Freshman)")
	graduate := strings.Index(md, "研究生 (Graduate)")
	require.NotEqual(t, -1, freshman)
	assert.Less(t, freshman, graduate)
}

func TestMarkdown_SkipsEmptyLists(t *testing.T) {
	report := loadReport(t)
	report.SkillGap.Acquired = nil

	md := Markdown(report)
	assert.NotContains(t, md, "**已具备:**")
	assert.Contains(t, md, "**待补齐:**")
}
