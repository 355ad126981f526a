package entities

// Provider-agnostic view of a payment-provider callback. The transport layer
// (Stripe webhook processor or the manual replay trigger) normalizes raw
// provider payloads into this shape before the reconciler sees them.

const (
	// EventCheckoutCompleted is the only event type the reconciler acts on.
	EventCheckoutCompleted = "checkout.session.completed"

	// SessionPaid is the provider payment status that allows fulfillment.
	SessionPaid = "paid"
)

// Session metadata keys written at checkout time and read back from events.
// The provider metadata bag intentionally carries only the correlation keys;
// the full kind-specific snapshot lives on the Payment record.
const (
	MetadataKeyPaymentID    = "payment_id"
	MetadataKeyPurchaseKind = "purchase_kind"
)

type CheckoutEvent struct {
	Type            string            `json:"type"`
	SessionID       string            `json:"session_id"`
	PaymentIntentID string            `json:"payment_intent_id,omitempty"`
	PaymentStatus   string            `json:"payment_status"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// PaymentID extracts the correlation key embedded at session-creation time.
func (e CheckoutEvent) PaymentID() string {
	return e.Metadata[MetadataKeyPaymentID]
}

func (e CheckoutEvent) Kind() PurchaseKind {
	return PurchaseKind(e.Metadata[MetadataKeyPurchaseKind])
}
