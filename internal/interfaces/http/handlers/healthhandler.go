package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"modcms/internal/shared/errors"
	"modcms/internal/shared/logger"
	"modcms/internal/shared/utils"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db     pinger
	logger logger.Interface
}

func NewHealthHandler(db pinger, log logger.Interface) *HealthHandler {
	return &HealthHandler{db: db, logger: log}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		h.logger.Errorw("health check failed", "error", err)
		utils.ErrorResponseWithError(c, errors.NewStorageError("ping database", err))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
}
