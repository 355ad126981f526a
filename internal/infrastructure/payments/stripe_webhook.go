package payments

import (
	"encoding/json"
	"errors"
	"fmt"

	"shikkha/internal/domain/entities"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"
)

var ErrMissingWebhookSecret = errors.New("missing STRIPE_WEBHOOK_SECRET")
var ErrInvalidSignature = errors.New("invalid webhook signature")

// StripeWebhookProcessor verifies inbound webhook payloads and normalizes
// them into domain checkout events.
//
// The signing secret is mandatory: unverified payloads could complete
// arbitrary payments, so there is no unsigned fallback.

type StripeWebhookProcessor struct {
	secret string
}

func NewStripeWebhookProcessor(secret string) (*StripeWebhookProcessor, error) {
	if secret == "" {
		return nil, ErrMissingWebhookSecret
	}
	return &StripeWebhookProcessor{secret: secret}, nil
}

// VerifyAndParse checks the payload signature and maps the event to the
// domain shape. Event types the reconciler does not act on come back with
// their raw type so the caller can ack them without further work.
func (p *StripeWebhookProcessor) VerifyAndParse(payload []byte, signature string) (entities.CheckoutEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, p.secret)
	if err != nil {
		return entities.CheckoutEvent{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	if event.Type != entities.EventCheckoutCompleted {
		return entities.CheckoutEvent{Type: string(event.Type)}, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return entities.CheckoutEvent{}, fmt.Errorf("malformed checkout session payload: %w", err)
	}

	out := entities.CheckoutEvent{
		Type:          string(event.Type),
		SessionID:     session.ID,
		PaymentStatus: string(session.PaymentStatus),
		Metadata:      session.Metadata,
	}
	if session.PaymentIntent != nil {
		out.PaymentIntentID = session.PaymentIntent.ID
	}
	return out, nil
}
