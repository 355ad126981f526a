package entities

import "time"

// PaymentStatus represents the lifecycle of a purchase attempt.
//
// A payment is created "pending" when the checkout session is built and moves
// to exactly one terminal state. The only component allowed to move it to
// "completed" is the webhook reconciler (or its manual replay).

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// PurchaseKind discriminates what a payment buys.

type PurchaseKind string

const (
	PurchaseKindCourse PurchaseKind = "course"
	PurchaseKindBook   PurchaseKind = "book"
	PurchaseKindCart   PurchaseKind = "cart"
)

// Payment is the root record of the reconciliation flow.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (session_id-index): session_id
//
// SessionID/PaymentIntentID are the external provider references. SessionID is
// written at checkout time; PaymentIntentID only once the provider confirms.
// Metadata is the kind-specific snapshot carried across the asynchronous gap
// between session creation and webhook delivery.

type Payment struct {
	ID     string        `json:"id"`
	UserID string        `json:"user_id"`
	Kind   PurchaseKind  `json:"kind"`
	ItemID string        `json:"item_id,omitempty"` // empty for cart payments
	Status PaymentStatus `json:"status"`

	Amount        float64 `json:"amount"`
	EducatorShare float64 `json:"educator_share"`
	AdminShare    float64 `json:"admin_share"`

	SessionID       string `json:"session_id,omitempty"`
	PaymentIntentID string `json:"payment_intent_id,omitempty"`

	// FulfillmentError is set when the payment completed but fulfillment did
	// not finish; such payments need operator intervention.
	FulfillmentError string `json:"fulfillment_error,omitempty"`

	Metadata PaymentMetadata `json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
