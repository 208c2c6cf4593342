package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fractalyx/internal/application/checkpoint/usecases"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
	"fractalyx/internal/shared/utils"
)

type CheckpointHandler struct {
	createCheckpointUC *usecases.CreateCheckpointUseCase
	getCheckpointUC    *usecases.GetCheckpointUseCase
	listCheckpointsUC  *usecases.ListCheckpointsUseCase
	setCompletedUC     *usecases.SetCheckpointCompletedUseCase
	attachTicketUC     *usecases.AttachTicketUseCase
	logger             logger.Interface
}

func NewCheckpointHandler(
	createCheckpointUC *usecases.CreateCheckpointUseCase,
	getCheckpointUC *usecases.GetCheckpointUseCase,
	listCheckpointsUC *usecases.ListCheckpointsUseCase,
	setCompletedUC *usecases.SetCheckpointCompletedUseCase,
	attachTicketUC *usecases.AttachTicketUseCase,
) *CheckpointHandler {
	return &CheckpointHandler{
		createCheckpointUC: createCheckpointUC,
		getCheckpointUC:    getCheckpointUC,
		listCheckpointsUC:  listCheckpointsUC,
		setCompletedUC:     setCompletedUC,
		attachTicketUC:     attachTicketUC,
		logger:             logger.NewLogger(),
	}
}

type CreateCheckpointRequest struct {
	ProjectID        uint   `json:"project_id" binding:"required"`
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	MilestoneDate    string `json:"milestone_date"`
	RelatedTicketIDs []uint `json:"related_ticket_ids"`
}

type SetCheckpointCompletedRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

type AttachCheckpointTicketRequest struct {
	TicketID uint `json:"ticket_id" binding:"required"`
}

func (h *CheckpointHandler) CreateCheckpoint(c *gin.Context) {
	var req CreateCheckpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create checkpoint", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createCheckpointUC.Execute(c.Request.Context(), usecases.CreateCheckpointCommand{
		ProjectID:        req.ProjectID,
		Name:             req.Name,
		Description:      req.Description,
		MilestoneDate:    req.MilestoneDate,
		RelatedTicketIDs: req.RelatedTicketIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Checkpoint created successfully")
}

func (h *CheckpointHandler) GetCheckpoint(c *gin.Context) {
	checkpointID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCheckpointUC.Execute(c.Request.Context(), usecases.GetCheckpointCommand{CheckpointID: checkpointID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CheckpointHandler) ListCheckpoints(c *gin.Context) {
	projectID, err := parseUintQuery(c, "project_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCheckpointsUC.Execute(c.Request.Context(), usecases.ListCheckpointsCommand{ProjectID: projectID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CheckpointHandler) SetCompleted(c *gin.Context) {
	checkpointID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetCheckpointCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.setCompletedUC.Execute(c.Request.Context(), usecases.SetCheckpointCompletedCommand{
		CheckpointID: checkpointID,
		Completed:    *req.Completed,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Checkpoint updated successfully", result)
}

func (h *CheckpointHandler) AttachTicket(c *gin.Context) {
	checkpointID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AttachCheckpointTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.attachTicketUC.Execute(c.Request.Context(), usecases.AttachTicketCommand{
		CheckpointID: checkpointID,
		TicketID:     req.TicketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket attached", result)
}
