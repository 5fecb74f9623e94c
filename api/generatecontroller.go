package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"viralreel/cache"
	"viralreel/engine"
	"viralreel/types"

	"github.com/gin-gonic/gin"
)

// registerGenerateRoutes registers package generation endpoints.
func registerGenerateRoutes(r *gin.Engine, h *handler) {
	g := r.Group("/api/generate")
	g.POST("", h.handlePostGenerate)
	g.GET("", h.handleGetGenerate)
}

// GenerateRequest is the body of POST /api/generate
type GenerateRequest struct {
	Category string `json:"category"`
}

func (h *handler) handlePostGenerate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondWithPackage(c, req.Category)
}

func (h *handler) handleGetGenerate(c *gin.Context) {
	h.respondWithPackage(c, c.Query("category"))
}

func (h *handler) respondWithPackage(c *gin.Context, category string) {
	pkg, hit, err := h.packageFor(c.Request.Context(), category)
	if err != nil {
		log.Printf("❌ [%s] %v", c.GetString("requestID"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if hit {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	c.Header("X-Package-ID", types.PackageID(pkg.Category))
	c.JSON(http.StatusOK, pkg)
}

// packageFor returns the package for category, from the cache when possible.
// Cache failures are logged and never fail the request.
func (h *handler) packageFor(ctx context.Context, category string) (types.Package, bool, error) {
	key := cache.Key(h.engine.BankVersion(), engine.Normalize(category))

	if h.cache != nil {
		cached, ok, err := h.cache.Get(ctx, key)
		if err != nil {
			log.Printf("⚠️  Cache read failed for %s: %v", key, err)
		} else if ok {
			return *cached, true, nil
		}
	}

	pkg := h.engine.Generate(category)
	if err := engine.Validate(pkg); err != nil {
		return types.Package{}, false, fmt.Errorf("generated package failed validation: %w", err)
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, key, pkg); err != nil {
			log.Printf("⚠️  Cache write failed for %s: %v", key, err)
		}
	}
	return pkg, false, nil
}
