package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/pkg/logger"
	"taskboard/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	dbadapter "taskboard/internal/adapter/db"
	httpadapter "taskboard/internal/adapter/http"
	"taskboard/internal/adapter/metrics"
	"taskboard/internal/adapter/ratelimit"
	"taskboard/internal/adapter/security"
	"taskboard/internal/adapter/session"
	appservice "taskboard/internal/app/service"
	"taskboard/internal/config"
	"taskboard/internal/core/ports"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLogger, _ := zap.NewProduction()
		bootLogger.Fatal("invalid configuration", zap.Error(err))
	}

	log := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(log)
	defer func() {
		if err := log.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	if cfg.DbAutoMigrate {
		if err := dbadapter.Migrate(ctx, db); err != nil {
			log.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	var redisClient redis.UniversalClient
	var limiter ports.RateLimiter
	switch cfg.RateLimit.Backend {
	case config.RateLimitRedis:
		redisClient, err = ratelimit.NewRedisClient(ctx, cfg.Redis.Addresses, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Strings("addrs", cfg.Redis.Addresses), zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Warn("failed to close redis client", zap.Error(err))
			}
		}()
		limiter, err = ratelimit.NewRedisLimiter(redisClient, cfg.RateLimit.Max, cfg.RateLimit.Window, cfg.AppName+":ratelimit")
		if err != nil {
			log.Fatal("failed to prepare redis rate limiter", zap.Error(err))
		}
	default:
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window)
	}

	var appMetrics *metrics.Metrics
	var recorder ports.EventRecorder
	if cfg.Metrics.Enabled {
		appMetrics = metrics.New(cfg.AppName)
		recorder = appMetrics
	}

	var resolver session.Resolver = session.HeaderResolver{}
	var sessions ports.SessionIssuer = session.HeaderResolver{}
	if cfg.Auth.Mode == config.AuthModeToken {
		tokens := session.NewTokenResolver(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL, cfg.AppName)
		resolver, sessions = tokens, tokens
	} else {
		log.Warn("caller identity is taken from the unsigned X-User-Id header; set AUTH_MODE=token to require signed sessions")
	}

	authService := appservice.NewAuthService(
		dbadapter.NewUserRepository(db),
		security.NewBcryptHasher(cfg.Auth.BcryptCost),
		recorder,
	)
	taskService := appservice.NewTaskService(dbadapter.NewTaskRepository(db), recorder)

	router, err := httpadapter.NewRouter(httpadapter.RouterConfig{
		AppName:            cfg.AppName,
		TrustedProxies:     cfg.TrustedProxies,
		CorsAllowedOrigins: cfg.CorsAllowedOrigins,
		BodyLimitBytes:     cfg.BodyLimitBytes,
		MetricsPath:        cfg.Metrics.Path,
	}, httpadapter.Dependencies{
		Logger:      log,
		DB:          db,
		Redis:       redisClient,
		AuthService: authService,
		TaskService: taskService,
		Resolver:    resolver,
		Sessions:    sessions,
		RateLimiter: limiter,
		Metrics:     appMetrics,
	})
	if err != nil {
		log.Fatal("failed to build router", zap.Error(err))
	}

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("starting server", zap.String("addr", server.Addr), zap.String("db_driver", cfg.DbDriver), zap.String("auth_mode", cfg.Auth.Mode))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("could not start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("graceful shutdown failed", zap.Error(err))
	}
}
