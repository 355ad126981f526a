package usecase

import (
	"context"
	"errors"
	"testing"

	"shikkha/internal/domain/entities"
	mock_interfaces "shikkha/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFulfillmentUseCase_Ship(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		uc := NewFulfillmentUseCase(nil)
		if _, err := uc.Ship(context.Background(), " ", "TRK-1"); !errors.Is(err, ErrInvalidPurchaseID) {
			t.Fatalf("expected ErrInvalidPurchaseID, got %v", err)
		}
		if _, err := uc.Ship(context.Background(), "purchase-1", "  "); !errors.Is(err, ErrInvalidTrackingNumber) {
			t.Fatalf("expected ErrInvalidTrackingNumber, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		purchases := mock_interfaces.NewMockIBookPurchaseRepository(ctrl)
		uc := NewFulfillmentUseCase(purchases)

		purchases.EXPECT().GetByID(gomock.Any(), "purchase-1").Return(entities.BookPurchase{}, nil)

		if _, err := uc.Ship(context.Background(), "purchase-1", "TRK-1"); !errors.Is(err, ErrPurchaseNotFound) {
			t.Fatalf("expected ErrPurchaseNotFound, got %v", err)
		}
	})

	t.Run("only confirmed purchases ship", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		purchases := mock_interfaces.NewMockIBookPurchaseRepository(ctrl)
		uc := NewFulfillmentUseCase(purchases)

		purchases.EXPECT().GetByID(gomock.Any(), "purchase-1").Return(entities.BookPurchase{ID: "purchase-1", Status: entities.PurchaseStatusShipped}, nil)

		if _, err := uc.Ship(context.Background(), "purchase-1", "TRK-1"); !errors.Is(err, ErrPurchaseNotShippable) {
			t.Fatalf("expected ErrPurchaseNotShippable, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		purchases := mock_interfaces.NewMockIBookPurchaseRepository(ctrl)
		uc := NewFulfillmentUseCase(purchases)

		purchases.EXPECT().GetByID(gomock.Any(), "purchase-1").Return(entities.BookPurchase{ID: "purchase-1", Status: entities.PurchaseStatusConfirmed}, nil)
		purchases.EXPECT().MarkShipped(gomock.Any(), "purchase-1", "TRK-1").Return(entities.BookPurchase{ID: "purchase-1", Status: entities.PurchaseStatusShipped, TrackingNumber: "TRK-1"}, nil)

		updated, err := uc.Ship(context.Background(), "purchase-1", "TRK-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.PurchaseStatusShipped || updated.TrackingNumber != "TRK-1" {
			t.Fatalf("unexpected purchase: %+v", updated)
		}
	})
}

func TestFulfillmentUseCase_Deliver(t *testing.T) {
	t.Run("only shipped purchases deliver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		purchases := mock_interfaces.NewMockIBookPurchaseRepository(ctrl)
		uc := NewFulfillmentUseCase(purchases)

		purchases.EXPECT().GetByID(gomock.Any(), "purchase-1").Return(entities.BookPurchase{ID: "purchase-1", Status: entities.PurchaseStatusConfirmed}, nil)

		if _, err := uc.Deliver(context.Background(), "purchase-1"); !errors.Is(err, ErrPurchaseNotShipped) {
			t.Fatalf("expected ErrPurchaseNotShipped, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		purchases := mock_interfaces.NewMockIBookPurchaseRepository(ctrl)
		uc := NewFulfillmentUseCase(purchases)

		purchases.EXPECT().GetByID(gomock.Any(), "purchase-1").Return(entities.BookPurchase{ID: "purchase-1", Status: entities.PurchaseStatusShipped}, nil)
		purchases.EXPECT().MarkDelivered(gomock.Any(), "purchase-1", gomock.Any()).Return(entities.BookPurchase{ID: "purchase-1", Status: entities.PurchaseStatusDelivered}, nil)

		updated, err := uc.Deliver(context.Background(), "purchase-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.PurchaseStatusDelivered {
			t.Fatalf("unexpected purchase: %+v", updated)
		}
	})
}
