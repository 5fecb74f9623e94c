package api

import (
	"bytes"
	"fmt"
	"net/http"

	"viralreel/render"
	"viralreel/subtitles"
	"viralreel/types"

	"github.com/gin-gonic/gin"
)

// registerSubtitleRoutes registers subtitle export endpoints.
func registerSubtitleRoutes(r *gin.Engine, h *handler) {
	r.GET("/api/subtitles", h.handleSubtitles)
}

// handleSubtitles renders the package subtitles as srt, vtt or ass
func (h *handler) handleSubtitles(c *gin.Context) {
	format, err := subtitles.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg, _, err := h.packageFor(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := subtitles.Render(&buf, format, subtitles.Lines(pkg), render.Headline(pkg)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render subtitles: " + err.Error()})
		return
	}

	filename := fmt.Sprintf("%s.%s", types.PackageID(pkg.Category), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
