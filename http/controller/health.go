package controller

import (
	"github.com/feedhub/feedhub-service/utils"
	"github.com/gin-gonic/gin"
)

// Health reports the service and its backing stores.
func (ctrl *Controller) Health(c *gin.Context) {
	ctx := c.Request.Context()

	database := "ok"
	if err := ctrl.Infra.Postgres.Ping(); err != nil {
		database = "unreachable"
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Health] Postgres ping failed: %v", err)
	}

	cache := "ok"
	if err := ctrl.Infra.Redis.Ping(ctx); err != nil {
		cache = "unreachable"
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Health] Redis ping failed: %v", err)
	}

	storage := "unreachable"
	if mode, err := ctrl.Infra.Minio.ServerHealth(ctx); err == nil {
		storage = mode
	} else {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Health] MinIO probe failed: %v", err)
	}

	utils.JSON200(c, gin.H{
		"status":   "ok",
		"database": database,
		"cache":    cache,
		"storage":  storage,
	})
}
