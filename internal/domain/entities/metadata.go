package entities

import "errors"

var ErrMetadataKindMismatch = errors.New("payment metadata does not match purchase kind")

// ShippingInfo is the address snapshot captured at checkout time for book and
// cart purchases. PostalCode is optional; the remaining fields are required
// for single-book checkouts.

type ShippingInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country"`
}

type CourseMetadata struct {
	CourseName string `json:"course_name"`
	EducatorID string `json:"educator_id"`
}

type BookMetadata struct {
	BookTitle string        `json:"book_title"`
	Shipping  *ShippingInfo `json:"shipping,omitempty"`
}

// CartLineSnapshot freezes one cart line at checkout time so fulfillment does
// not depend on the live cart contents.

type CartLineSnapshot struct {
	BookID    string  `json:"book_id"`
	BookTitle string  `json:"book_title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type CartMetadata struct {
	CartID   string             `json:"cart_id"`
	Lines    []CartLineSnapshot `json:"lines"`
	Shipping *ShippingInfo      `json:"shipping,omitempty"`
}

// PaymentMetadata is a tagged union keyed by Payment.Kind. Exactly one arm is
// set; Validate enforces that at both write (checkout) and read (webhook)
// time, so a malformed record is rejected before any fulfillment runs.

type PaymentMetadata struct {
	Course *CourseMetadata `json:"course,omitempty"`
	Book   *BookMetadata   `json:"book,omitempty"`
	Cart   *CartMetadata   `json:"cart,omitempty"`
}

func (m PaymentMetadata) Validate(kind PurchaseKind) error {
	switch kind {
	case PurchaseKindCourse:
		if m.Course == nil || m.Book != nil || m.Cart != nil {
			return ErrMetadataKindMismatch
		}
	case PurchaseKindBook:
		if m.Book == nil || m.Course != nil || m.Cart != nil {
			return ErrMetadataKindMismatch
		}
	case PurchaseKindCart:
		if m.Cart == nil || m.Course != nil || m.Book != nil {
			return ErrMetadataKindMismatch
		}
		if len(m.Cart.Lines) == 0 {
			return ErrMetadataKindMismatch
		}
	default:
		return ErrMetadataKindMismatch
	}
	return nil
}
