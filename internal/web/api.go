package web

import (
	"errors"
	"net/http"

	"github.com/BerylCAtieno/careerpath-agent/internal/models"
	"github.com/BerylCAtieno/careerpath-agent/internal/render"
	"github.com/gin-gonic/gin"
)

// createReport is the stateless JSON API: profile in, report out. With
// ?format=markdown the report is returned as Markdown text.
func (s *server) createReport(c *gin.Context) {
	var profile models.StudentProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body: " + err.Error()})
		return
	}

	if err := profile.Validate(); err != nil {
		var perr *models.ProfileError
		if errors.As(err, &perr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile", "fields": perr.Fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := s.generator.GenerateCareerReport(c.Request.Context(), profile)
	if err != nil {
		s.logger.Error("api report generation failed", "student", profile.Name, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": models.GenerationFailedMessage})
		return
	}

	if c.Query("format") == "markdown" {
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(render.Markdown(report)))
		return
	}
	c.JSON(http.StatusOK, report)
}
