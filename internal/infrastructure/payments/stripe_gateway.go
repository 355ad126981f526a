package payments

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"shikkha/internal/domain/entities"
	"shikkha/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")
var ErrStripeGatewayNotConfigured = errors.New("stripe gateway not configured")

const defaultCurrency = "usd"

// StripeGateway creates and retrieves Stripe Checkout sessions.
//
// Mock mode (PAYMENT_GATEWAY_MOCK / STRIPE_MOCK) fabricates paid sessions
// locally so the full checkout + webhook flow can run without credentials.

type StripeGateway struct {
	sc       *client.API
	currency string
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	currency := strings.ToLower(getenvDefault("CHECKOUT_CURRENCY", defaultCurrency))

	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &StripeGateway{mockMode: true, currency: currency}, nil
	}

	if secretKey == "" {
		log.Printf("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	sc := &client.API{}
	sc.Init(secretKey, nil)
	log.Printf("[payment][gateway] Stripe client initialized")

	return &StripeGateway{sc: sc, currency: currency}, nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req interfaces.CheckoutSessionRequest) (interfaces.CheckoutSessionResult, error) {
	if g != nil && g.mockMode {
		id := "cs_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock session created session_id=%s lines=%d", id, len(req.LineItems))
		return interfaces.CheckoutSessionResult{
			SessionID: id,
			URL:       "https://checkout.stripe.test/pay/" + id,
		}, nil
	}

	if g == nil || g.sc == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.CheckoutSessionResult{}, ErrStripeGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create session start lines=%d", len(req.LineItems))

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	params.Context = ctx
	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}
	for _, line := range req.LineItems {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(line.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(g.currency),
				UnitAmount: stripe.Int64(line.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(line.Name),
				},
			},
		})
	}

	s, err := g.sc.CheckoutSessions.New(params)
	if err != nil {
		log.Printf("[payment][gateway] create session failed err=%v", err)
		return interfaces.CheckoutSessionResult{}, err
	}
	log.Printf("[payment][gateway] create session success session_id=%s", s.ID)

	return interfaces.CheckoutSessionResult{SessionID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) RetrieveSession(ctx context.Context, sessionID string) (interfaces.SessionStatus, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock retrieve session_id=%s", sessionID)
		return interfaces.SessionStatus{
			SessionID:       sessionID,
			PaymentStatus:   entities.SessionPaid,
			PaymentIntentID: "pi_mock_" + sessionID,
			Metadata:        map[string]string{},
		}, nil
	}

	if g == nil || g.sc == nil {
		return interfaces.SessionStatus{}, ErrStripeGatewayNotConfigured
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	s, err := g.sc.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		log.Printf("[payment][gateway] retrieve session failed session_id=%s err=%v", sessionID, err)
		return interfaces.SessionStatus{}, err
	}

	status := interfaces.SessionStatus{
		SessionID:     s.ID,
		PaymentStatus: string(s.PaymentStatus),
		Metadata:      s.Metadata,
	}
	if s.PaymentIntent != nil {
		status.PaymentIntentID = s.PaymentIntent.ID
	}
	return status, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "STRIPE_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
