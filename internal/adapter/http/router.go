package http

import (
	"net/http"
	"time"

	"taskboard/internal/adapter/http/handlers"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/metrics"
	"taskboard/internal/adapter/session"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RouterConfig struct {
	AppName            string
	TrustedProxies     []string
	CorsAllowedOrigins []string
	BodyLimitBytes     int64
	MetricsPath        string
}

type Dependencies struct {
	Logger      *zap.Logger
	DB          *sqlx.DB
	Redis       redis.UniversalClient
	AuthService ports.AuthService
	TaskService ports.TaskService
	Resolver    session.Resolver
	Sessions    ports.SessionIssuer
	RateLimiter ports.RateLimiter
	// Metrics is optional; nil disables collection and the scrape route.
	Metrics *metrics.Metrics
}

// NewRouter assembles the engine: global middleware, the API routes and
// the optional metrics endpoint.
func NewRouter(cfg RouterConfig, deps Dependencies) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.L()
	}

	r.Use(
		middleware.RequestIDMiddleware(),
		middleware.LanguageMiddleware(),
		middleware.GinZapMiddleware(logger),
		middleware.Recovery(),
	)
	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
	}
	r.Use(
		middleware.SecurityHeaders(),
		cors.New(corsConfig(cfg.CorsAllowedOrigins)),
		middleware.BodyLimit(cfg.BodyLimitBytes),
	)
	if deps.RateLimiter != nil {
		r.Use(middleware.RateLimitMiddleware(deps.RateLimiter))
	}

	if deps.Metrics != nil && cfg.MetricsPath != "" {
		r.GET(cfg.MetricsPath, gin.WrapH(deps.Metrics.Handler()))
	}

	RegisterRoutes(
		r,
		handlers.NewHealthHandler(cfg.AppName, deps.DB, deps.Redis),
		handlers.NewAuthHandler(deps.AuthService, deps.Sessions),
		handlers.NewTaskHandler(deps.TaskService),
		middleware.AuthMiddleware(deps.Resolver, deps.AuthService),
	)

	r.NoRoute(func(c *gin.Context) {
		middleware.Abort(c, http.StatusNotFound, apierrors.MsgRouteNotFound)
	})

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language", session.UserIDHeader, session.AuthorizationHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
