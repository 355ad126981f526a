package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shikkha/internal/adapter/http/handlers/mocks"
	"shikkha/internal/domain/entities"
	"shikkha/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func checkoutRouter(h *PaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments/create-checkout-session", h.CreateCheckoutSession)
	r.POST("/v1/payments/trigger-webhook", h.TriggerWebhook)
	r.GET("/v1/payments/:payment_id", h.GetPayment)
	r.GET("/v1/payments/by-session/:session_id", h.GetPaymentBySession)
	return r
}

func TestPaymentHandler_CreateCheckoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing user header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentHandler(mocks.NewMockICheckoutUseCase(ctrl), nil, nil)
		r := checkoutRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/create-checkout-session", bytes.NewBufferString(`{"type":"course","itemId":"course-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentHandler(mocks.NewMockICheckoutUseCase(ctrl), nil, nil)
		r := checkoutRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/create-checkout-session", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "student-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mapped conflict errors", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{"course not found", usecase.ErrCourseNotFound, http.StatusNotFound},
			{"already enrolled", usecase.ErrAlreadyEnrolled, http.StatusConflict},
			{"out of stock", usecase.ErrBookOutOfStock, http.StatusConflict},
			{"already purchased", usecase.ErrAlreadyPurchased, http.StatusConflict},
			{"course full", usecase.ErrCourseFull, http.StatusConflict},
			{"empty cart", usecase.ErrEmptyCart, http.StatusBadRequest},
			{"not billable", usecase.ErrCourseNotBillable, http.StatusBadRequest},
			{"gateway down", usecase.ErrPaymentGateway, http.StatusBadGateway},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockICheckoutUseCase(ctrl)
				h := NewPaymentHandler(uc, nil, nil)
				r := checkoutRouter(h)

				uc.EXPECT().CreateCheckoutSession(gomock.Any(), "student-1", gomock.Any()).Return(usecase.CheckoutSession{}, c.err)

				req := httptest.NewRequest(http.MethodPost, "/v1/payments/create-checkout-session", bytes.NewBufferString(`{"type":"course","itemId":"course-1"}`))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("X-User-ID", "student-1")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != c.code {
					t.Fatalf("expected %d, got %d", c.code, w.Code)
				}
			})
		}
	})

	t.Run("missing shipping field reports the field name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewPaymentHandler(uc, nil, nil)
		r := checkoutRouter(h)

		uc.EXPECT().CreateCheckoutSession(gomock.Any(), "student-1", gomock.Any()).Return(usecase.CheckoutSession{}, &usecase.MissingShippingFieldError{Field: "city"})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/create-checkout-session", bytes.NewBufferString(`{"type":"book","itemId":"book-1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "student-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["message"] != "Missing shipping field: city" {
			t.Fatalf("unexpected message: %q", body["message"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewPaymentHandler(uc, nil, nil)
		r := checkoutRouter(h)

		uc.EXPECT().CreateCheckoutSession(gomock.Any(), "student-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, req usecase.CheckoutRequest) (usecase.CheckoutSession, error) {
				if req.Kind != entities.PurchaseKindCourse || req.ItemID != "course-1" {
					t.Fatalf("unexpected request: %+v", req)
				}
				return usecase.CheckoutSession{PaymentID: "pay-1", SessionID: "cs_1", URL: "https://pay.test/cs_1"}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/create-checkout-session", bytes.NewBufferString(`{"type":"course","itemId":"course-1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "student-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["url"] != "https://pay.test/cs_1" || body["paymentId"] != "pay-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestPaymentHandler_TriggerWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing session id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentHandler(nil, mocks.NewMockIReconcileUseCase(ctrl), nil)
		r := checkoutRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/trigger-webhook", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("session not paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)
		h := NewPaymentHandler(nil, uc, nil)
		r := checkoutRouter(h)

		uc.EXPECT().Replay(gomock.Any(), "cs_1").Return(usecase.ErrSessionNotPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/trigger-webhook", bytes.NewBufferString(`{"sessionId":"cs_1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("payment not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)
		h := NewPaymentHandler(nil, uc, nil)
		r := checkoutRouter(h)

		uc.EXPECT().Replay(gomock.Any(), "cs_404").Return(usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/trigger-webhook", bytes.NewBufferString(`{"sessionId":"cs_404"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReconcileUseCase(ctrl)
		h := NewPaymentHandler(nil, uc, nil)
		r := checkoutRouter(h)

		uc.EXPECT().Replay(gomock.Any(), "cs_1").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/trigger-webhook", bytes.NewBufferString(`{"sessionId":"cs_1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentQueryUseCase(ctrl)
		h := NewPaymentHandler(nil, nil, uc)
		r := checkoutRouter(h)

		uc.EXPECT().GetByID(gomock.Any(), "pay-404").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success by session id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentQueryUseCase(ctrl)
		h := NewPaymentHandler(nil, nil, uc)
		r := checkoutRouter(h)

		uc.EXPECT().GetBySessionID(gomock.Any(), "cs_1").Return(entities.Payment{
			ID: "pay-1", UserID: "student-1", Kind: entities.PurchaseKindCourse, Status: entities.PaymentStatusCompleted, Amount: 1000, SessionID: "cs_1",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/by-session/cs_1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "pay-1" || body["status"] != "completed" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
