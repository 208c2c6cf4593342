package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	chatusecases "fractalyx/internal/application/chat/usecases"
	"fractalyx/internal/application/conversation/usecases"
	"fractalyx/internal/infrastructure/upload"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
	"fractalyx/internal/shared/utils"
)

type ConversationHandler struct {
	createConversationUC *usecases.CreateConversationUseCase
	listConversationsUC  *usecases.ListConversationsUseCase
	recentUC             *usecases.RecentConversationsUseCase
	listMessagesUC       *usecases.ListMessagesUseCase
	postMessageUC        *chatusecases.PostMessageUseCase
	uploads              *upload.Storage
	logger               logger.Interface
}

func NewConversationHandler(
	createConversationUC *usecases.CreateConversationUseCase,
	listConversationsUC *usecases.ListConversationsUseCase,
	recentUC *usecases.RecentConversationsUseCase,
	listMessagesUC *usecases.ListMessagesUseCase,
	postMessageUC *chatusecases.PostMessageUseCase,
	uploads *upload.Storage,
) *ConversationHandler {
	return &ConversationHandler{
		createConversationUC: createConversationUC,
		listConversationsUC:  listConversationsUC,
		recentUC:             recentUC,
		listMessagesUC:       listMessagesUC,
		postMessageUC:        postMessageUC,
		uploads:              uploads,
		logger:               logger.NewLogger(),
	}
}

type CreateConversationRequest struct {
	ProjectID uint   `json:"project_id"`
	Title     string `json:"title"`
}

type PostMessageRequest struct {
	Message string `json:"message"`
}

func (h *ConversationHandler) CreateConversation(c *gin.Context) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createConversationUC.Execute(c.Request.Context(), usecases.CreateConversationCommand{
		CustomerID: customerID,
		ProjectID:  req.ProjectID,
		Title:      req.Title,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Conversation created successfully")
}

func (h *ConversationHandler) ListConversations(c *gin.Context) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.listConversationsUC.Execute(c.Request.Context(), usecases.ListConversationsCommand{CustomerID: customerID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ConversationHandler) RecentConversations(c *gin.Context) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid limit"))
			return
		}
		limit = parsed
	}

	result, err := h.recentUC.Execute(c.Request.Context(), usecases.RecentConversationsCommand{
		CustomerID: customerID,
		Limit:      limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ConversationHandler) ListMessages(c *gin.Context) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	conversationID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listMessagesUC.Execute(c.Request.Context(), usecases.ListMessagesCommand{
		ConversationID: conversationID,
		CustomerID:     customerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// PostMessage accepts a JSON body or a multipart form with an optional image
// attachment.
func (h *ConversationHandler) PostMessage(c *gin.Context) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	conversationID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message, imagePath, err := h.extractMessage(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.postMessageUC.Execute(c.Request.Context(), chatusecases.PostMessageCommand{
		CustomerID:     customerID,
		ConversationID: conversationID,
		Message:        message,
		ImagePath:      imagePath,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ConversationHandler) extractMessage(c *gin.Context) (string, string, error) {
	contentType := c.GetHeader("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		var req PostMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return "", "", errors.NewValidationError(err.Error())
		}
		return req.Message, "", nil
	}

	message := c.PostForm("message")

	file, err := c.FormFile("image")
	if err != nil {
		// No attachment on this form
		return message, "", nil
	}

	imagePath, err := h.uploads.SaveImage(file)
	if err != nil {
		h.logger.Warnw("failed to store uploaded image", "error", err)
		return "", "", err
	}

	return message, imagePath, nil
}
