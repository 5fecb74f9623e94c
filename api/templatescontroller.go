package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// registerTemplateRoutes registers template bank inspection endpoints.
func registerTemplateRoutes(r *gin.Engine, h *handler) {
	r.GET("/api/templates", h.handleTemplates)
}

// TemplatesResponse summarizes the active template bank
type TemplatesResponse struct {
	Version  string         `json:"version"`
	Segments []string       `json:"segments"`
	Sizes    map[string]int `json:"sizes"`
}

func (h *handler) handleTemplates(c *gin.Context) {
	if h.bank == nil {
		c.JSON(http.StatusOK, TemplatesResponse{Version: h.engine.BankVersion()})
		return
	}

	b := h.bank
	c.JSON(http.StatusOK, TemplatesResponse{
		Version:  b.Version,
		Segments: b.Labels(),
		Sizes: map[string]int{
			"insights":         len(b.Insights),
			"insightSummaries": len(b.InsightSummaries),
			"hookFormulas":     len(b.HookFormulas),
			"titles":           len(b.Titles),
			"captions":         len(b.Captions),
			"hashtags":         len(b.FixedHashtags),
			"keywordPatterns":  len(b.KeywordPatterns),
			"thumbnailPrompts": len(b.ThumbnailPrompts),
			"postTimes":        len(b.PostTimes),
			"callsToAction":    len(b.CallsToAction),
			"autoReplies":      len(b.AutoReplies),
			"closingBeats":     len(b.ClosingBeats),
		},
	})
}
