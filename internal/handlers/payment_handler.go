package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/barberease/scheduler/internal/httperr"
	"github.com/barberease/scheduler/internal/httpresp"
	"github.com/barberease/scheduler/internal/payment"
)

type PaymentHandler struct {
	processor *payment.Processor
}

func NewPaymentHandler(processor *payment.Processor) *PaymentHandler {
	return &PaymentHandler{processor: processor}
}

type CreateOrderRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
}

func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payment payload.")
		return
	}

	pay, checkoutURL, err := h.processor.CreateOrder(c.Request.Context(), req.BookingID)
	if err != nil {
		if errors.Is(err, payment.ErrGatewayDisabled) {
			httperr.Unavailable(c, "gateway_disabled", "Payments are not enabled on this server.")
			return
		}
		httperr.FromDomain(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"payment":      pay,
		"checkout_url": checkoutURL,
	})
}

// Webhook receives the gateway's payment notification. Always answers 200
// for statuses we ignore so the gateway stops retrying.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	paymentID := c.Query("data.id")
	if paymentID == "" {
		paymentID = c.Query("id")
	}
	if paymentID == "" {
		httperr.BadRequest(c, "missing_payment_id", "Payment id is required.")
		return
	}

	if err := h.processor.HandleNotification(c.Request.Context(), paymentID); err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "processed"})
}
