package interfaces

import "context"

// CheckoutLineItem is one display line of the hosted checkout page.
// UnitAmount is in minor currency units, as payment providers expect.

type CheckoutLineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

type CheckoutSessionRequest struct {
	LineItems  []CheckoutLineItem
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

type CheckoutSessionResult struct {
	SessionID string
	URL       string
}

// SessionStatus is the provider's view of an existing session, used by the
// manual replay trigger.

type SessionStatus struct {
	SessionID       string
	PaymentStatus   string
	PaymentIntentID string
	Metadata        map[string]string
}

// IPaymentGateway abstracts the external payment provider (Stripe).
//
// The gateway never sees domain entities; the usecase flattens a purchase
// into line items plus correlation metadata.

type IPaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (CheckoutSessionResult, error)
	RetrieveSession(ctx context.Context, sessionID string) (SessionStatus, error)
}
