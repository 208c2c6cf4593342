package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"fractalyx/internal/application/billing/usecases"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
	"fractalyx/internal/shared/utils"
)

type BillingHandler struct {
	listPlansUC      *usecases.ListPlansUseCase
	createCheckoutUC *usecases.CreateCheckoutSessionUseCase
	createPortalUC   *usecases.CreatePortalSessionUseCase
	handleWebhookUC  *usecases.HandleWebhookUseCase
	logger           logger.Interface
}

func NewBillingHandler(
	listPlansUC *usecases.ListPlansUseCase,
	createCheckoutUC *usecases.CreateCheckoutSessionUseCase,
	createPortalUC *usecases.CreatePortalSessionUseCase,
	handleWebhookUC *usecases.HandleWebhookUseCase,
) *BillingHandler {
	return &BillingHandler{
		listPlansUC:      listPlansUC,
		createCheckoutUC: createCheckoutUC,
		createPortalUC:   createPortalUC,
		handleWebhookUC:  handleWebhookUC,
		logger:           logger.NewLogger(),
	}
}

type CreateCheckoutRequest struct {
	PriceID string `json:"price_id" binding:"required"`
}

func (h *BillingHandler) ListPlans(c *gin.Context) {
	result, err := h.listPlansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createCheckoutUC.Execute(c.Request.Context(), usecases.CreateCheckoutSessionCommand{
		CustomerID: customerID,
		PriceID:    req.PriceID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *BillingHandler) CreatePortal(c *gin.Context) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.createPortalUC.Execute(c.Request.Context(), usecases.CreatePortalSessionCommand{
		CustomerID: customerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CheckoutSuccess acknowledges the checkout redirect; the subscription row is
// written by the webhook, not here.
func (h *BillingHandler) CheckoutSuccess(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Checkout completed", gin.H{"status": "success"})
}

func (h *BillingHandler) CheckoutCancel(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Checkout cancelled", gin.H{"status": "cancelled"})
}

// Webhook receives provider events. It is unauthenticated; the payload
// signature is verified inside the use case.
func (h *BillingHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("failed to read webhook payload"))
		return
	}

	if err := h.handleWebhookUC.Execute(c.Request.Context(), usecases.HandleWebhookCommand{
		Payload:   payload,
		Signature: c.GetHeader("Stripe-Signature"),
	}); err != nil {
		h.logger.Warnw("webhook processing failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"received": true})
}
