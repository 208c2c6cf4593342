package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fractalyx/internal/application/ticket/usecases"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
	"fractalyx/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC *usecases.CreateTicketUseCase
	getTicketUC    *usecases.GetTicketUseCase
	listTicketsUC  *usecases.ListTicketsUseCase
	updateTicketUC *usecases.UpdateTicketUseCase
	assignTicketUC *usecases.AssignTicketUseCase
	changeStatusUC *usecases.ChangeTicketStatusUseCase
	addCommentUC   *usecases.AddCommentUseCase
	listCommentsUC *usecases.ListCommentsUseCase
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC *usecases.CreateTicketUseCase,
	getTicketUC *usecases.GetTicketUseCase,
	listTicketsUC *usecases.ListTicketsUseCase,
	updateTicketUC *usecases.UpdateTicketUseCase,
	assignTicketUC *usecases.AssignTicketUseCase,
	changeStatusUC *usecases.ChangeTicketStatusUseCase,
	addCommentUC *usecases.AddCommentUseCase,
	listCommentsUC *usecases.ListCommentsUseCase,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		updateTicketUC: updateTicketUC,
		assignTicketUC: assignTicketUC,
		changeStatusUC: changeStatusUC,
		addCommentUC:   addCommentUC,
		listCommentsUC: listCommentsUC,
		logger:         logger.NewLogger(),
	}
}

type CreateTicketRequest struct {
	ProjectID      uint   `json:"project_id" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	Priority       string `json:"priority"`
	DueDate        string `json:"due_date"`
	ParentTicketID *uint  `json:"parent_ticket_id"`
}

type UpdateTicketRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	Status         *string `json:"status"`
	Priority       *string `json:"priority"`
	DueDate        *string `json:"due_date"`
	ClearDueDate   bool    `json:"clear_due_date"`
	ParentTicketID *uint   `json:"parent_ticket_id"`
}

type AssignTicketRequest struct {
	AgentID uint `json:"agent_id" binding:"required"`
}

type ChangeTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
	IsUser  *bool  `json:"is_user"`
	AgentID *uint  `json:"agent_id"`
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.CreateTicketCommand{
		ProjectID:      req.ProjectID,
		Title:          req.Title,
		Description:    req.Description,
		Priority:       req.Priority,
		DueDate:        req.DueDate,
		ParentTicketID: req.ParentTicketID,
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketCommand{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	projectID, err := parseUintQuery(c, "project_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ListTicketsCommand{
		ProjectID: projectID,
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
	}
	if agentID := c.Query("agent_id"); agentID != "" {
		parsed, err := strconv.ParseUint(agentID, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid agent_id"))
			return
		}
		id := uint(parsed)
		cmd.AgentID = &id
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.UpdateTicketCommand{
		TicketID:       ticketID,
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		DueDate:        req.DueDate,
		ClearDueDate:   req.ClearDueDate,
		ParentTicketID: req.ParentTicketID,
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

func (h *TicketHandler) AssignTicket(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		TicketID: ticketID,
		AgentID:  req.AgentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", result)
}

func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeTicketStatusCommand{
		TicketID: ticketID,
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result)
}

func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID: ticketID,
		Content:  req.Content,
		IsUser:   req.IsUser,
		AgentID:  req.AgentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

func (h *TicketHandler) ListComments(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsCommand{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
