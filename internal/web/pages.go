package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/BerylCAtieno/careerpath-agent/internal/models"
	"github.com/BerylCAtieno/careerpath-agent/internal/render"
	"github.com/BerylCAtieno/careerpath-agent/internal/session"
	"github.com/gin-gonic/gin"
)

const busyMessage = "报告正在生成中，请稍候。"

func (s *server) showForm(c *gin.Context) {
	state := currentSession(c).State()
	s.renderForm(c, http.StatusOK, state, nil)
}

func (s *server) renderForm(c *gin.Context, status int, state session.State, fields []models.FieldError) {
	page := render.NewFormPage(state.Draft)
	page.Error = state.Error
	page.Loading = state.Loading
	page.HasReport = state.Report != nil
	page.Fields = fields
	c.HTML(status, "form.html", page)
}

// handleForm applies one form action to the draft. Scalar fields are always
// taken from the posted form so no typing is lost between actions.
func (s *server) handleForm(c *gin.Context) {
	sess := currentSession(c)

	var bindErr error
	draft := sess.UpdateDraft(func(p models.StudentProfile) models.StudentProfile {
		if bindErr = c.ShouldBind(&p); bindErr != nil {
			return p
		}
		switch {
		case c.PostForm("remove_skill") != "":
			return models.RemoveSkill(p, c.PostForm("remove_skill"))
		case c.PostForm("toggle_goal") != "":
			return models.ApplyEmploymentGoalToggle(p, c.PostForm("toggle_goal"))
		case c.PostForm("action") == "add_skill":
			return models.AddSkill(p, c.PostForm("skill"))
		}
		return p
	})
	if bindErr != nil {
		s.logger.Warn("failed to bind profile form", "error", bindErr)
		c.String(http.StatusBadRequest, "invalid form")
		return
	}

	if c.PostForm("action") != "submit" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	// Generation outlives the request so a closed tab still leaves a report
	// in the session.
	_, err := sess.Submit(context.WithoutCancel(c.Request.Context()), draft)

	var perr *models.ProfileError
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/report")
	case errors.As(err, &perr):
		s.renderForm(c, http.StatusBadRequest, sess.State(), perr.Fields)
	case errors.Is(err, session.ErrBusy):
		state := sess.State()
		state.Error = busyMessage
		s.renderForm(c, http.StatusConflict, state, nil)
	default:
		// The session holds the user-facing message.
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func (s *server) showReport(c *gin.Context) {
	report := currentSession(c).State().Report
	if report == nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.HTML(http.StatusOK, "report.html", render.NewReportPage(report, false))
}

func (s *server) downloadPDF(c *gin.Context) {
	report := currentSession(c).State().Report
	if report == nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	if s.pdf == nil {
		c.String(http.StatusNotImplemented, "PDF export is not available")
		return
	}

	var html bytes.Buffer
	if err := render.Report(&html, report); err != nil {
		s.logger.Error("failed to render report", "error", err)
		c.String(http.StatusInternalServerError, "failed to render report")
		return
	}

	pdf, err := s.pdf(c.Request.Context(), html.String())
	if err != nil {
		s.logger.Error("failed to export PDF", "error", err)
		c.String(http.StatusInternalServerError, "failed to export PDF")
		return
	}

	c.Header("Content-Disposition", contentDisposition(report.StudentName+"-职业规划报告.pdf"))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// contentDisposition encodes filename as an RFC 5987 ext-value with an ASCII
// fallback for older clients.
func contentDisposition(filename string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(filename), "+", "%20")
	return fmt.Sprintf(`attachment; filename="career-report.pdf"; filename*=UTF-8''%s`, encoded)
}

func (s *server) reset(c *gin.Context) {
	currentSession(c).Reset()
	c.Redirect(http.StatusSeeOther, "/")
}
