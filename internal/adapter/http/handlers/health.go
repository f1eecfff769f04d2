package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

const (
	StatusOk        = "ok"
	StatusDown      = "down"
	healthDBTimeout = 2 * time.Second
)

type HealthHandler struct {
	appName string
	db      *sqlx.DB
	redis   redis.UniversalClient
}

// NewHealthHandler accepts a nil redis client when the memory rate
// limiter is in use; the report then omits redis.
func NewHealthHandler(appName string, db *sqlx.DB, redisClient redis.UniversalClient) *HealthHandler {
	return &HealthHandler{appName: appName, db: db, redis: redisClient}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthBasic{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	ctx := c.Request.Context()

	services := dto.HealthServices{Database: StatusDown}
	if h.checkConnectionToDatabase(ctx) {
		services.Database = StatusOk
	}
	if h.redis != nil {
		services.Redis = StatusDown
		if h.checkConnectionToRedis(ctx) {
			services.Redis = StatusOk
		}
	}

	c.JSON(http.StatusOK, dto.HealthReport{
		AppName:    h.appName,
		AppVersion: getAppVersion(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		Language:   translator.Match(middleware.GetLang(c)),
		Status:     services,
	})
}

func (h *HealthHandler) checkConnectionToDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	// Avoid hanging health checks if the database stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}

func (h *HealthHandler) checkConnectionToRedis(ctx context.Context) bool {
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.redis.Ping(timeoutCtx).Err() == nil
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
