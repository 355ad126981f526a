package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"shikkha/internal/domain/entities"
	"shikkha/internal/infrastructure/payments"
	"shikkha/internal/usecase"
	"shikkha/pkg"

	"github.com/gin-gonic/gin"
)

const stripeSignatureHeader = "Stripe-Signature"

// WebhookProcessor verifies a raw provider payload and maps it to a domain
// checkout event.
type WebhookProcessor interface {
	VerifyAndParse(payload []byte, signature string) (entities.CheckoutEvent, error)
}

var _ WebhookProcessor = (*payments.StripeWebhookProcessor)(nil)

// WebhookHandler receives provider webhook deliveries and hands verified
// checkout events to the reconciler.

type WebhookHandler struct {
	processor WebhookProcessor
	reconcile usecase.IReconcileUseCase
}

func NewWebhookHandler(processor WebhookProcessor, reconcile usecase.IReconcileUseCase) *WebhookHandler {
	return &WebhookHandler{processor: processor, reconcile: reconcile}
}

// HandleWebhook is the provider-facing endpoint. Status codes follow the
// provider's redelivery contract: 2xx acks the event, 4xx rejects it
// permanently, 5xx asks for redelivery.
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("[webhook][handler] failed to read payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Unable to read payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	event, err := h.processor.VerifyAndParse(payload, c.GetHeader(stripeSignatureHeader))
	if err != nil {
		log.Printf("[webhook][handler] verification failed err=%v", err)
		if errors.Is(err, payments.ErrInvalidSignature) {
			appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Malformed webhook payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if event.Type != entities.EventCheckoutCompleted {
		log.Printf("[webhook][handler] ignoring event type=%s", event.Type)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}
	log.Printf("[webhook][handler] checkout completed session_id=%s payment_id=%s", event.SessionID, event.PaymentID())

	if err := h.reconcile.Reconcile(c.Request.Context(), event); err != nil {
		log.Printf("[webhook][handler] reconcile failed session_id=%s err=%v", event.SessionID, err)
		switch {
		case errors.Is(err, usecase.ErrPaymentNotFound):
			// No payment will ever match this session; redelivery cannot help.
			appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "No payment matches this session", http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		default:
			// 5xx so the provider redelivers; the conditional status
			// transition keeps the retry idempotent.
			appErr := pkg.NewDomainError("RECONCILE_FAILED", "Failed to process checkout event", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
