package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"shikkha/internal/domain/entities"
	"shikkha/internal/usecase/interfaces"
)

var (
	ErrInvalidPurchaseID     = errors.New("invalid purchase id")
	ErrPurchaseNotFound      = errors.New("purchase not found")
	ErrInvalidTrackingNumber = errors.New("invalid tracking number")
	ErrPurchaseNotShippable  = errors.New("purchase is not in a shippable state")
	ErrPurchaseNotShipped    = errors.New("purchase has not been shipped")
)

// IFulfillmentUseCase exposes the admin actions on confirmed book purchases:
// confirmed -> shipped -> delivered.

type IFulfillmentUseCase interface {
	Ship(ctx context.Context, purchaseID, trackingNumber string) (entities.BookPurchase, error)
	Deliver(ctx context.Context, purchaseID string) (entities.BookPurchase, error)
}

type FulfillmentUseCase struct {
	purchases interfaces.IBookPurchaseRepository
}

var _ IFulfillmentUseCase = (*FulfillmentUseCase)(nil)

func NewFulfillmentUseCase(purchases interfaces.IBookPurchaseRepository) *FulfillmentUseCase {
	return &FulfillmentUseCase{purchases: purchases}
}

func (u *FulfillmentUseCase) Ship(ctx context.Context, purchaseID, trackingNumber string) (entities.BookPurchase, error) {
	purchaseID = strings.TrimSpace(purchaseID)
	if purchaseID == "" {
		return entities.BookPurchase{}, ErrInvalidPurchaseID
	}
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return entities.BookPurchase{}, ErrInvalidTrackingNumber
	}

	purchase, err := u.purchases.GetByID(ctx, purchaseID)
	if err != nil {
		return entities.BookPurchase{}, err
	}
	if purchase.ID == "" {
		return entities.BookPurchase{}, ErrPurchaseNotFound
	}
	if purchase.Status != entities.PurchaseStatusConfirmed {
		return entities.BookPurchase{}, ErrPurchaseNotShippable
	}

	updated, err := u.purchases.MarkShipped(ctx, purchaseID, trackingNumber)
	if err != nil {
		return entities.BookPurchase{}, err
	}
	log.Printf("[fulfillment][usecase] shipped purchase_id=%s tracking=%s", purchaseID, trackingNumber)
	return updated, nil
}

func (u *FulfillmentUseCase) Deliver(ctx context.Context, purchaseID string) (entities.BookPurchase, error) {
	purchaseID = strings.TrimSpace(purchaseID)
	if purchaseID == "" {
		return entities.BookPurchase{}, ErrInvalidPurchaseID
	}

	purchase, err := u.purchases.GetByID(ctx, purchaseID)
	if err != nil {
		return entities.BookPurchase{}, err
	}
	if purchase.ID == "" {
		return entities.BookPurchase{}, ErrPurchaseNotFound
	}
	if purchase.Status != entities.PurchaseStatusShipped {
		return entities.BookPurchase{}, ErrPurchaseNotShipped
	}

	updated, err := u.purchases.MarkDelivered(ctx, purchaseID, time.Now().UTC())
	if err != nil {
		return entities.BookPurchase{}, err
	}
	log.Printf("[fulfillment][usecase] delivered purchase_id=%s", purchaseID)
	return updated, nil
}
