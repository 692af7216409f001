package http_health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/movienight/internal/lib/logger/sl"
)

type Check func(ctx context.Context) error

type Controller struct {
	checks map[string]Check
	logger *slog.Logger
}

func New(checks map[string]Check) *Controller {
	return &Controller{
		checks: checks,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", c.health)
}

type HealthResponseDTO struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// health reports liveness of the service and its backing stores
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponseDTO
// @Failure 503 {object} HealthResponseDTO
// @Router /health [get]
func (c *Controller) health(ctx *gin.Context) {
	checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponseDTO{Status: "ok", Checks: make(map[string]string, len(c.checks))}
	for name, check := range c.checks {
		if err := check(checkCtx); err != nil {
			c.logger.Error("health check failed", slog.String("check", name), sl.Err(err))
			resp.Status = "degraded"
			resp.Checks[name] = "down"
			continue
		}
		resp.Checks[name] = "up"
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, resp)
}
