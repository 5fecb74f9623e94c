package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"

	"viralreel/config"
	"viralreel/engine"
	"viralreel/templates"
	"viralreel/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// PackageCache is the response cache used by the generate endpoints
type PackageCache interface {
	Get(ctx context.Context, key string) (*types.Package, bool, error)
	Set(ctx context.Context, key string, p types.Package) error
}

// Deps are the collaborators shared by every handler
type Deps struct {
	Engine *engine.Engine
	Bank   *templates.Bank // the bank Engine was built from
	Cache  PackageCache    // optional
}

type handler struct {
	engine *engine.Engine
	bank   *templates.Bank
	cache  PackageCache
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(deps Deps) *gin.Engine {
	h := &handler{engine: deps.Engine, bank: deps.Bank, cache: deps.Cache}

	r := gin.New()
	r.Use(gin.Recovery(), requestID())

	registerHealthRoutes(r, h)
	registerGenerateRoutes(r, h)
	registerSubtitleRoutes(r, h)
	registerTemplateRoutes(r, h)
	return r
}

// requestID propagates the caller's X-Request-ID or assigns a new one
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// Server wraps the HTTP listener and the scheduled batch job
type Server struct {
	httpServer *http.Server
	cron       *cron.Cron
	cronID     cron.EntryID
	mu         sync.Mutex
}

// NewServer creates a server for router listening on port
func NewServer(router http.Handler, port string) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: router,
		},
		cron: cron.New(),
	}
}

// Start starts the HTTP server in the background
func (s *Server) Start() error {
	log.Printf("🚀 API server listening on %s", s.httpServer.Addr)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ HTTP server error: %v", err)
		}
	}()

	return nil
}

// StartCron runs job on schedule. A run that is still going when the next
// tick fires causes that tick to be skipped.
func (s *Server) StartCron(schedule string, job func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var running sync.Mutex
	id, err := s.cron.AddFunc(schedule, func() {
		if !running.TryLock() {
			log.Println("⏭️  Cron skipped: previous batch still running")
			return
		}
		defer running.Unlock()

		log.Println("⏰ Cron triggered: starting scheduled batch")
		if err := job(context.Background()); err != nil {
			log.Printf("❌ Cron batch error: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	s.cronID = id
	s.cron.Start()
	log.Printf("✅ Cron job started with schedule: %s", schedule)
	return nil
}

// Shutdown stops the scheduler and drains the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down API server...")

	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}

	return s.httpServer.Shutdown(ctx)
}

// PortFromEnv reads PORT, falling back to config.DefaultPort
func PortFromEnv() string {
	port := getEnvOrDefault("PORT", config.DefaultPort)
	if _, err := strconv.Atoi(port); err != nil {
		return config.DefaultPort
	}
	return port
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
