package entities

import "time"

// CartItem is one mutable line in a student's cart.

type CartItem struct {
	BookID    string  `json:"book_id"`
	BookTitle string  `json:"book_title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Cart is the payer-owned collection of book lines awaiting checkout.
//
// Storage model (DynamoDB):
//   - PK: owner_id (one cart per student)
//
// Clearing a cart resets Items and TotalAmount; the record itself survives.

type Cart struct {
	OwnerID     string     `json:"owner_id"`
	Items       []CartItem `json:"items,omitempty"`
	TotalAmount float64    `json:"total_amount"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
