package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"

	"github.com/tiw/gaap-web-service/internal/domain"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	repo domain.TaxonomyRepository
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(repo domain.TaxonomyRepository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

// Ping is the basic health check
// @Summary Ping
// @Description Checks the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *HealthHandler) Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status":  "ok",
		"message": "pong",
	})
}

// Readiness checks the taxonomy files are available
// @Summary Readiness probe
// @Description Checks the service can read the taxonomy schema
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/ready [get]
func (h *HealthHandler) Readiness(ctx context.Context, c *app.RequestContext) {
	if err := h.repo.HealthCheck(ctx); err != nil {
		c.JSON(503, utils.H{
			"status":   "not_ready",
			"taxonomy": "unavailable",
			"error":    err.Error(),
		})
		return
	}

	c.JSON(200, utils.H{
		"status":   "ready",
		"taxonomy": "available",
		"version":  h.repo.Version(),
	})
}

// Liveness is the liveness probe
// @Summary Liveness probe
// @Description Checks the process is alive
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health/live [get]
func (h *HealthHandler) Liveness(ctx context.Context, c *app.RequestContext) {
	c.JSON(200, utils.H{
		"status": "alive",
	})
}
