package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"shikkha/internal/adapter/http/dto/request"
	"shikkha/internal/adapter/http/dto/response"
	"shikkha/internal/domain/entities"
	"shikkha/internal/usecase"
	"shikkha/pkg"

	"github.com/gin-gonic/gin"
)

// userIDHeader carries the authenticated payer id, installed by the upstream
// auth service. Token verification itself is outside this service.
const userIDHeader = "X-User-ID"

// PaymentHandler handles checkout-session creation, payment lookup and the
// operator-facing manual webhook replay.

type PaymentHandler struct {
	checkout  usecase.ICheckoutUseCase
	reconcile usecase.IReconcileUseCase
	query     usecase.IPaymentQueryUseCase
}

func NewPaymentHandler(checkout usecase.ICheckoutUseCase, reconcile usecase.IReconcileUseCase, query usecase.IPaymentQueryUseCase) *PaymentHandler {
	return &PaymentHandler{checkout: checkout, reconcile: reconcile, query: query}
}

// CreateCheckoutSession builds a provider checkout session for a course,
// book or cart purchase.
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	payerID := strings.TrimSpace(c.GetHeader(userIDHeader))
	if payerID == "" {
		appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing user identity", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var req request.CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid checkout payload payer_id=%s err=%v", payerID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] checkout start payer_id=%s type=%s item_id=%s", payerID, req.Type, req.ItemID)

	session, err := h.checkout.CreateCheckoutSession(c.Request.Context(), payerID, usecase.CheckoutRequest{
		Kind:     entities.PurchaseKind(req.Type),
		ItemID:   req.ItemID,
		Shipping: req.Shipping.ToEntity(),
	})
	if err != nil {
		log.Printf("[payment][handler] checkout failed payer_id=%s err=%v", payerID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] checkout success payer_id=%s payment_id=%s session_id=%s", payerID, session.PaymentID, session.SessionID)

	c.JSON(http.StatusOK, response.CheckoutSessionResponse{
		Success:   true,
		URL:       session.URL,
		SessionID: session.SessionID,
		PaymentID: session.PaymentID,
	})
}

// TriggerWebhook is the operator fallback for a missed webhook delivery.
func (h *PaymentHandler) TriggerWebhook(c *gin.Context) {
	var req request.TriggerWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] manual replay start session_id=%s", req.SessionID)

	if err := h.reconcile.Replay(c.Request.Context(), req.SessionID); err != nil {
		log.Printf("[payment][handler] manual replay failed session_id=%s err=%v", req.SessionID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] manual replay success session_id=%s", req.SessionID)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetPayment returns one payment by id.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id := c.Param("payment_id")

	p, err := h.query.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// GetPaymentBySession resolves a payment from its provider session id.
func (h *PaymentHandler) GetPaymentBySession(c *gin.Context) {
	sessionID := c.Param("session_id")

	p, err := h.query.GetBySessionID(c.Request.Context(), sessionID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func mapPaymentError(err error) *pkg.AppError {
	var missing *usecase.MissingShippingFieldError
	switch {
	case errors.As(err, &missing):
		return pkg.NewDomainErrorSimple("MISSING_SHIPPING_FIELD", "Missing shipping field: "+missing.Field, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPurchaseKind),
		errors.Is(err, usecase.ErrInvalidItemID),
		errors.Is(err, usecase.ErrInvalidPayerID),
		errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCourseNotFound):
		return pkg.NewDomainErrorSimple("COURSE_NOT_FOUND", "Course not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookNotFound):
		return pkg.NewDomainErrorSimple("BOOK_NOT_FOUND", "Book not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCourseNotBillable):
		return pkg.NewDomainErrorSimple("COURSE_NOT_BILLABLE", "Course is free; use the free enrollment flow", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCourseFull):
		return pkg.NewDomainErrorSimple("COURSE_FULL", "Course has no remaining capacity", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyEnrolled):
		return pkg.NewDomainErrorSimple("ALREADY_ENROLLED", "Student already enrolled in this course", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyPurchased):
		return pkg.NewDomainErrorSimple("ALREADY_PURCHASED", "Student already purchased this book", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookOutOfStock):
		return pkg.NewDomainErrorSimple("OUT_OF_STOCK", "Book is out of stock", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Cart is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotPaid):
		return pkg.NewDomainErrorSimple("NOT_PAID", "Session has not been paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGateway):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ERROR", "Payment provider request failed", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrFulfillment):
		return pkg.NewDomainError("FULFILLMENT_FAILED", "Payment completed but fulfillment failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
