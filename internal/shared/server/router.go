package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aurelia-backend/internal/catalog"
	"aurelia-backend/internal/chat"
	"aurelia-backend/internal/questionnaire"
	"aurelia-backend/internal/results"
	"aurelia-backend/internal/services/health"
	"aurelia-backend/internal/shared/config"
	"aurelia-backend/internal/shared/metrics"
	"aurelia-backend/internal/shared/server/middleware"
	"aurelia-backend/internal/shared/server/respond"
)

// RateLimitChatGroup is the stricter bucket applied to chat messages.
const RateLimitChatGroup = "CHAT"

// RouterDeps holds handlers and shared dependencies for the router.
type RouterDeps struct {
	Config               config.Config
	Health               *health.Service
	QuestionnaireHandler *questionnaire.Handler
	ResultsHandler       *results.Handler
	CatalogHandler       *catalog.Handler
	ChatHandler          *chat.Handler
	RateLimiter          *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.SetHTMLTemplate(results.Templates())

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Identity(cfg.Env == "production"),
		middleware.RateLimit(rateLimitConfig(cfg, deps.RateLimiter)),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		report := deps.Health.Status(c.Request.Context())
		status := http.StatusOK
		if !report.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, report)
	})
	registerMeRoutes(api)

	if deps.QuestionnaireHandler != nil {
		deps.QuestionnaireHandler.RegisterRoutes(api)
	}
	if deps.ResultsHandler != nil {
		deps.ResultsHandler.RegisterRoutes(api)
		deps.ResultsHandler.RegisterPages(r)
	}
	if deps.CatalogHandler != nil {
		deps.CatalogHandler.RegisterRoutes(api)
	}
	if deps.ChatHandler != nil {
		deps.ChatHandler.RegisterRoutes(api)
	}

	return r
}

func rateLimitConfig(cfg config.Config, limiter *middleware.RateLimiter) middleware.RateLimitConfig {
	chatRate := cfg.RateLimitRPS / 5
	chatBurst := cfg.RateLimitBurst / 4
	if chatBurst < 1 && cfg.RateLimitBurst > 0 {
		chatBurst = 1
	}
	return middleware.RateLimitConfig{
		Limiter: limiter,
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/chat" {
				return RateLimitChatGroup
			}
			return ""
		},
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":          {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
			RateLimitChatGroup: {Rate: chatRate, Burst: chatBurst},
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
