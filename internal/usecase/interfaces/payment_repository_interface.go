package interfaces

import (
	"context"
	"shikkha/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// CompletePending is the linearization point of the whole reconciliation: it
// performs a conditional pending -> completed update and reports whether this
// call won the transition. Fulfillment must only run when it returns true, so
// redelivered or concurrent events become no-ops.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetBySessionID(ctx context.Context, sessionID string) (entities.Payment, error)
	SetSessionID(ctx context.Context, id, sessionID string) error
	CompletePending(ctx context.Context, id, paymentIntentID string) (bool, error)
	MarkFailed(ctx context.Context, id string) error
	RecordFulfillmentError(ctx context.Context, id, cause string) error
}
