package response

import (
	"time"

	"shikkha/internal/domain/entities"
)

// CheckoutSessionResponse is returned by create-checkout-session; URL is the
// provider's hosted payment page the storefront redirects to.

type CheckoutSessionResponse struct {
	Success   bool   `json:"success"`
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
	PaymentID string `json:"paymentId"`
}

type PaymentResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Kind             string    `json:"kind"`
	ItemID           string    `json:"item_id,omitempty"`
	Status           string    `json:"status"`
	Amount           float64   `json:"amount"`
	EducatorShare    float64   `json:"educator_share"`
	AdminShare       float64   `json:"admin_share"`
	SessionID        string    `json:"session_id,omitempty"`
	PaymentIntentID  string    `json:"payment_intent_id,omitempty"`
	FulfillmentError string    `json:"fulfillment_error,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:               p.ID,
		UserID:           p.UserID,
		Kind:             string(p.Kind),
		ItemID:           p.ItemID,
		Status:           string(p.Status),
		Amount:           p.Amount,
		EducatorShare:    p.EducatorShare,
		AdminShare:       p.AdminShare,
		SessionID:        p.SessionID,
		PaymentIntentID:  p.PaymentIntentID,
		FulfillmentError: p.FulfillmentError,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
