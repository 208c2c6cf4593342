package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fractalyx/internal/application/agent/usecases"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
	"fractalyx/internal/shared/utils"
)

type AgentHandler struct {
	listAgentsUC  *usecases.ListAgentsUseCase
	createAgentUC *usecases.CreateAgentUseCase
	logger        logger.Interface
}

func NewAgentHandler(
	listAgentsUC *usecases.ListAgentsUseCase,
	createAgentUC *usecases.CreateAgentUseCase,
) *AgentHandler {
	return &AgentHandler{
		listAgentsUC:  listAgentsUC,
		createAgentUC: createAgentUC,
		logger:        logger.NewLogger(),
	}
}

type CreateAgentRequest struct {
	Name        string `json:"name" binding:"required"`
	Role        string `json:"role" binding:"required"`
	Description string `json:"description"`
	Model       string `json:"model"`
}

func (h *AgentHandler) ListAgents(c *gin.Context) {
	result, err := h.listAgentsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AgentHandler) CreateAgent(c *gin.Context) {
	var req CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create agent", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createAgentUC.Execute(c.Request.Context(), usecases.CreateAgentCommand{
		Name:        req.Name,
		Role:        req.Role,
		Description: req.Description,
		Model:       req.Model,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Agent created successfully")
}
