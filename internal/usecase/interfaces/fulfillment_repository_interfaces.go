package interfaces

import (
	"context"
	"time"

	"shikkha/internal/domain/entities"
)

// IEnrollmentRepository abstracts DynamoDB persistence for Enrollment.

type IEnrollmentRepository interface {
	Create(ctx context.Context, e entities.Enrollment) (entities.Enrollment, error)
	ExistsActive(ctx context.Context, studentID, courseID string) (bool, error)
}

// IBookPurchaseRepository abstracts DynamoDB persistence for BookPurchase.

type IBookPurchaseRepository interface {
	Create(ctx context.Context, p entities.BookPurchase) (entities.BookPurchase, error)
	GetByID(ctx context.Context, id string) (entities.BookPurchase, error)
	ExistsConfirmedOrDelivered(ctx context.Context, studentID, bookID string) (bool, error)
	MarkShipped(ctx context.Context, id, trackingNumber string) (entities.BookPurchase, error)
	MarkDelivered(ctx context.Context, id string, deliveredAt time.Time) (entities.BookPurchase, error)
}

// ICartRepository abstracts DynamoDB persistence for Cart.

type ICartRepository interface {
	GetByOwner(ctx context.Context, ownerID string) (entities.Cart, error)
	Clear(ctx context.Context, ownerID string) error
}
