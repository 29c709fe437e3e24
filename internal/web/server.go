// Package web serves the profile form, the report pages and the JSON API.
package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/BerylCAtieno/careerpath-agent/internal/a2a"
	"github.com/BerylCAtieno/careerpath-agent/internal/logger"
	"github.com/BerylCAtieno/careerpath-agent/internal/render"
	"github.com/BerylCAtieno/careerpath-agent/internal/session"
	"github.com/gin-gonic/gin"
)

// SessionCookie carries the visitor's session ID.
const SessionCookie = "careerpath_session"

const sessionKey = "session"

// PDFPrinter prints a standalone HTML page to PDF.
type PDFPrinter func(ctx context.Context, html string) ([]byte, error)

// Options wires the router's dependencies.
type Options struct {
	Store     *session.Store
	Generator session.ReportGenerator
	A2A       *a2a.A2AHandler
	PDF       PDFPrinter
	Logger    *slog.Logger
	// SecureCookie marks the session cookie HTTPS-only.
	SecureCookie bool
}

type server struct {
	store        *session.Store
	generator    session.ReportGenerator
	pdf          PDFPrinter
	logger       *slog.Logger
	secureCookie bool
}

// NewRouter builds the gin engine with every route.
func NewRouter(opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	s := &server{
		store:        opts.Store,
		generator:    opts.Generator,
		pdf:          opts.PDF,
		logger:       opts.Logger,
		secureCookie: opts.SecureCookie,
	}

	router := gin.New()
	router.Use(gin.Recovery(), logger.GinMiddleware(opts.Logger))
	router.SetHTMLTemplate(render.Templates())

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	pages := router.Group("/", s.withSession)
	pages.GET("/", s.showForm)
	pages.POST("/form", s.handleForm)
	pages.GET("/report", s.showReport)
	pages.GET("/report.pdf", s.downloadPDF)
	pages.POST("/reset", s.reset)

	router.POST("/api/reports", s.createReport)

	if opts.A2A != nil {
		router.GET("/.well-known/agent.json", opts.A2A.ServeAgentCard)
		router.POST(a2a.EndpointPath, opts.A2A.HandlePlanner)
	}
	return router
}

// withSession resolves the visitor's session, issuing a new cookie when the
// presented ID is unknown.
func (s *server) withSession(c *gin.Context) {
	id, _ := c.Cookie(SessionCookie)
	sess := s.store.Get(id)
	if sess.ID != id {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sess.ID, 0, "/", "", s.secureCookie, true)
	}
	c.Set(sessionKey, sess)
	c.Next()
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
