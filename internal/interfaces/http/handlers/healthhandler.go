package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fractalyx/internal/infrastructure/inference"
	"fractalyx/internal/shared/logger"
	"fractalyx/internal/shared/utils"
)

// ollamaStatusTimeout bounds the backend probe so the endpoint stays fast
// when the inference host is unreachable.
const ollamaStatusTimeout = 2 * time.Second

type HealthHandler struct {
	client inference.Client
	logger logger.Interface
}

func NewHealthHandler(client inference.Client) *HealthHandler {
	return &HealthHandler{
		client: client,
		logger: logger.NewLogger(),
	}
}

func (h *HealthHandler) Health(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
}

// OllamaStatus probes the inference backend. Probe failures report a stopped
// backend rather than an error.
func (h *HealthHandler) OllamaStatus(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ollamaStatusTimeout)
	defer cancel()

	status, err := h.client.Status(ctx)
	if err != nil {
		h.logger.Warnw("inference status probe failed", "error", err)
		utils.SuccessResponse(c, http.StatusOK, "", &inference.Status{Running: false})
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", status)
}
