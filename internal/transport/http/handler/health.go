package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"learn-with-jiji/internal/bootstrap"
	"learn-with-jiji/internal/transport/http/response"
)

type HealthHandler struct {
	app *bootstrap.App
}

func NewHealthHandler(app *bootstrap.App) *HealthHandler {
	return &HealthHandler{app: app}
}

// Check always answers 200/"healthy". Degraded mode is a supported
// configuration, so dependency state is reported in the payload instead of
// the status code.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	response.OK(c, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.app.Config.App.Env,
		"uptime_sec":  int(time.Since(h.app.StartedAt).Seconds()),
		"dependencies": gin.H{
			"database":         h.checkDatabase(ctx),
			"service_database": h.checkServiceDatabase(ctx),
			"cache":            h.checkRedis(ctx),
			"queue":            h.checkRabbitMQ(),
		},
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) string {
	return gormStatus(ctx, h.app.DB)
}

func (h *HealthHandler) checkServiceDatabase(ctx context.Context) string {
	return gormStatus(ctx, h.app.ServiceDB)
}

func gormStatus(ctx context.Context, db *gorm.DB) string {
	if db == nil {
		return "unconfigured"
	}
	sqlDB, err := db.DB()
	if err != nil {
		return "error"
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return "error"
	}
	return "ok"
}

func (h *HealthHandler) checkRedis(ctx context.Context) string {
	if h.app.Redis == nil {
		return "unconfigured"
	}
	if err := h.app.Redis.Ping(ctx).Err(); err != nil {
		return "error"
	}
	return "ok"
}

func (h *HealthHandler) checkRabbitMQ() string {
	if h.app.MQConn == nil {
		return "unconfigured"
	}
	if h.app.MQConn.IsClosed() {
		return "error"
	}
	return "ok"
}
