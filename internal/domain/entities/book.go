package entities

import "time"

// StockStatus mirrors the catalog's coarse availability flag alongside the
// exact StockQuantity counter.

type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// Book is the marketplace catalog entity.
//
// Storage model (DynamoDB):
//   - PK: id
//
// StockQuantity is decremented with a bounded conditional update so two
// concurrent fulfillments can never drive it negative.

type Book struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Author        string      `json:"author,omitempty"`
	Price         float64     `json:"price"`
	InStock       bool        `json:"in_stock"`
	StockQuantity int         `json:"stock_quantity"`
	StockStatus   StockStatus `json:"stock_status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// Purchasable reports whether a single unit can currently be bought.
func (b Book) Purchasable() bool {
	return b.InStock && b.StockQuantity > 0
}
