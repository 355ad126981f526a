package entities

import "time"

// PurchaseStatus is the fulfillment lifecycle of one book sale line.

type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusConfirmed PurchaseStatus = "confirmed"
	PurchaseStatusShipped   PurchaseStatus = "shipped"
	PurchaseStatusDelivered PurchaseStatus = "delivered"
	PurchaseStatusCancelled PurchaseStatus = "cancelled"
)

// BookPurchase is one line-item fulfillment of a book sale.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (student_id-book_id-index): student_id + book_id
//
// Created only by the reconciler once the backing Payment is completed; later
// mutated by admin fulfillment actions (shipped/delivered).

type BookPurchase struct {
	ID        string         `json:"id"`
	StudentID string         `json:"student_id"`
	BookID    string         `json:"book_id"`
	PaymentID string         `json:"payment_id"`
	Amount    float64        `json:"amount"`
	Quantity  int            `json:"quantity"`
	Status    PurchaseStatus `json:"status"`

	Shipping       ShippingInfo `json:"shipping"`
	TrackingNumber string       `json:"tracking_number,omitempty"`
	DeliveredAt    *time.Time   `json:"delivered_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
