package request

import "shikkha/internal/domain/entities"

// ShippingInfoRequest mirrors the shipping form the storefront submits with
// book and cart checkouts.

type ShippingInfoRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func (r *ShippingInfoRequest) ToEntity() *entities.ShippingInfo {
	if r == nil {
		return nil
	}
	return &entities.ShippingInfo{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Address:    r.Address,
		City:       r.City,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}
}

// CreateCheckoutSessionRequest is the payload of
// POST /payments/create-checkout-session. ItemID is required for course and
// book purchases and ignored for cart checkouts.

type CreateCheckoutSessionRequest struct {
	Type     string               `json:"type" binding:"required"`
	ItemID   string               `json:"itemId"`
	Shipping *ShippingInfoRequest `json:"shippingInfo"`
}

// TriggerWebhookRequest is the operator payload of
// POST /payments/trigger-webhook.

type TriggerWebhookRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}
