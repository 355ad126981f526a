package usecase

import (
	"context"
	"errors"
	"testing"

	"shikkha/internal/domain/entities"
	"shikkha/internal/usecase/interfaces"
	mock_interfaces "shikkha/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testCheckoutConfig = CheckoutConfig{
	SuccessURL: "https://storefront.test/payment/success",
	CancelURL:  "https://storefront.test/payment/cancel",
}

func fullShipping() *entities.ShippingInfo {
	return &entities.ShippingInfo{
		Name:    "Ayesha Rahman",
		Email:   "ayesha@test.com",
		Phone:   "+8801700000000",
		Address: "12 Lake Road",
		City:    "Dhaka",
		Country: "BD",
	}
}

type checkoutMocks struct {
	payments    *mock_interfaces.MockIPaymentRepository
	courses     *mock_interfaces.MockICourseRepository
	books       *mock_interfaces.MockIBookRepository
	enrollments *mock_interfaces.MockIEnrollmentRepository
	purchases   *mock_interfaces.MockIBookPurchaseRepository
	carts       *mock_interfaces.MockICartRepository
	gateway     *mock_interfaces.MockIPaymentGateway
}

func newCheckoutUseCaseForTest(ctrl *gomock.Controller) (*CheckoutUseCase, checkoutMocks) {
	m := checkoutMocks{
		payments:    mock_interfaces.NewMockIPaymentRepository(ctrl),
		courses:     mock_interfaces.NewMockICourseRepository(ctrl),
		books:       mock_interfaces.NewMockIBookRepository(ctrl),
		enrollments: mock_interfaces.NewMockIEnrollmentRepository(ctrl),
		purchases:   mock_interfaces.NewMockIBookPurchaseRepository(ctrl),
		carts:       mock_interfaces.NewMockICartRepository(ctrl),
		gateway:     mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	uc := NewCheckoutUseCase(m.payments, m.courses, m.books, m.enrollments, m.purchases, m.carts, m.gateway, testCheckoutConfig)
	return uc, m
}

func TestCheckoutUseCase_Validations(t *testing.T) {
	t.Run("empty payer id", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, nil, nil, nil, nil, testCheckoutConfig)
		_, err := uc.CreateCheckoutSession(context.Background(), " ", CheckoutRequest{Kind: entities.PurchaseKindCourse, ItemID: "course-1"})
		if !errors.Is(err, ErrInvalidPayerID) {
			t.Fatalf("expected ErrInvalidPayerID, got %v", err)
		}
	})

	t.Run("unknown purchase kind", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, nil, nil, nil, nil, testCheckoutConfig)
		_, err := uc.CreateCheckoutSession(context.Background(), "student-1", CheckoutRequest{Kind: "subscription"})
		if !errors.Is(err, ErrInvalidPurchaseKind) {
			t.Fatalf("expected ErrInvalidPurchaseKind, got %v", err)
		}
	})

	t.Run("empty item id for course", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, nil, nil, nil, nil, testCheckoutConfig)
		_, err := uc.CreateCheckoutSession(context.Background(), "student-1", CheckoutRequest{Kind: entities.PurchaseKindCourse, ItemID: "  "})
		if !errors.Is(err, ErrInvalidItemID) {
			t.Fatalf("expected ErrInvalidItemID, got %v", err)
		}
	})
}

func TestCheckoutUseCase_Course(t *testing.T) {
	t.Run("success splits 60/40 and persists before the gateway call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.courses.EXPECT().GetByID(gomock.Any(), "course-1").Return(entities.Course{
			ID: "course-1", Title: "Intro to Go", EducatorID: "educator-1", Price: 1000,
		}, nil)
		m.enrollments.EXPECT().ExistsActive(gomock.Any(), "student-1", "course-1").Return(false, nil)

		var created entities.Payment
		gomock.InOrder(
			m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p entities.Payment) (entities.Payment, error) {
					created = p
					return p, nil
				}),
			m.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, req interfaces.CheckoutSessionRequest) (interfaces.CheckoutSessionResult, error) {
					if req.Metadata[entities.MetadataKeyPaymentID] != created.ID {
						t.Fatalf("session metadata misses payment id: %v", req.Metadata)
					}
					if req.Metadata[entities.MetadataKeyPurchaseKind] != "course" {
						t.Fatalf("session metadata misses purchase kind: %v", req.Metadata)
					}
					if len(req.LineItems) != 1 || req.LineItems[0].UnitAmount != 100000 {
						t.Fatalf("unexpected line items: %+v", req.LineItems)
					}
					return interfaces.CheckoutSessionResult{SessionID: "cs_1", URL: "https://pay.test/cs_1"}, nil
				}),
			m.payments.EXPECT().SetSessionID(gomock.Any(), gomock.Any(), "cs_1").Return(nil),
		)

		session, err := uc.CreateCheckoutSession(context.Background(), "student-1", CheckoutRequest{Kind: entities.PurchaseKindCourse, ItemID: "course-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.SessionID != "cs_1" || session.PaymentID != created.ID {
			t.Fatalf("unexpected session: %+v", session)
		}
		if created.Status != entities.PaymentStatusPending {
			t.Fatalf("expected pending payment, got %s", created.Status)
		}
		if created.EducatorShare != 600 || created.AdminShare != 400 {
			t.Fatalf("unexpected shares: %v / %v", created.EducatorShare, created.AdminShare)
		}
		if created.Metadata.Course == nil || created.Metadata.Course.EducatorID != "educator-1" {
			t.Fatalf("unexpected metadata: %+v", created.Metadata)
		}
	})

	t.Run("course not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.courses.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Course{}, nil)

		_, err := uc.CreateCheckoutSession(context.Background(), "student-1", CheckoutRequest{Kind: entities.PurchaseKindCourse, ItemID: "missing"})
		if !errors.Is(err, ErrCourseNotFound) {
			t.Fatalf("expected ErrCourseNotFound, got %v", err)
		}
	})

	t.Run("free course is not billable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.courses.EXPECT().GetByID(gomock.Any(), "course-1").Return(entities.Course{ID: "course-1", Price: 0}, nil)

		_, err := uc.CreateCheckoutSession(context.Background(), "student-1", CheckoutRequest{Kind: entities.PurchaseKindCourse, ItemID: "course-1"})
		if !errors.Is(err, ErrCourseNotBillable) {
			t.Fatalf("expected ErrCourseNotBillable, got %v", err)
		}
	})

	t.Run("course full", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.courses.EXPECT().GetByID(gomock.Any(), "course-1").Return(entities.Course{
			ID: "course-1", Price: 500, MaxStudents: 30, EnrolledCount: 30,
		}, nil)

		_, err := uc.CreateCheckoutSession(context.Background(), "student-1", CheckoutRequest{Kind: entities.PurchaseKindCourse, ItemID: "course-1"})
		if !errors.Is(err, ErrCourseFull) {
			t.Fatalf("expected ErrCourseFull, got %v", err)
		}
	})

	t.Run("already enrolled leaves no payment record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.courses.EXPECT().GetByID(gomock.Any(), "course-1").Return(entities.Course{ID: "course-1", Price: 500}, nil)
		m.enrollments.EXPECT().ExistsActive(gomock.Any(), "student-1", "course-1").Return(true, nil)

		_, err := uc.CreateCheckoutSession(context.Background(), "student-1", CheckoutRequest{Kind: entities.PurchaseKindCourse, ItemID: "course-1"})
		if !errors.Is(err, ErrAlreadyEnrolled) {
			t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
		}
	})

	t.Run("gateway failure marks the payment failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.courses.EXPECT().GetByID(gomock.Any(), "course-1").Return(entities.Course{
			ID: "course-1", Title: "Intro to Go", EducatorID: "educator-1", Price: 1000,
		}, nil)
		m.enrollments.EXPECT().ExistsActive(gomock.Any(), "student-1", "course-1").Return(false, nil)

		var paymentID string
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				paymentID = p.ID
				return p, nil
			})
		m.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutSessionResult{}, errors.New("provider unavailable"))
		m.payments.EXPECT().MarkFailed(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) error {
				if id != paymentID {
					t.Fatalf("marked wrong payment: %s", id)
				}
				return nil
			})

		_, err := uc.CreateCheckoutSession(context.Background(), "student-1", CheckoutRequest{Kind: entities.PurchaseKindCourse, ItemID: "course-1"})
		if !errors.Is(err, ErrPaymentGateway) {
			t.Fatalf("expected ErrPaymentGateway, got %v", err)
		}
	})
}

func TestCheckoutUseCase_Book(t *testing.T) {
	book := entities.Book{ID: "book-1", Title: "The Go Programming Language", Price: 59.90, InStock: true, StockQuantity: 3}

	t.Run("success takes the full amount for the platform", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.books.EXPECT().GetByID(gomock.Any(), "book-1").Return(book, nil)
		m.purchases.EXPECT().ExistsConfirmedOrDelivered(gomock.Any(), "student-1", "book-1").Return(false, nil)

		var created entities.Payment
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				created = p
				return p, nil
			})
		m.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutSessionResult{SessionID: "cs_2", URL: "https://pay.test/cs_2"}, nil)
		m.payments.EXPECT().SetSessionID(gomock.Any(), gomock.Any(), "cs_2").Return(nil)

		_, err := uc.CreateCheckoutSession(context.Background(), "student-1", CheckoutRequest{
			Kind: entities.PurchaseKindBook, ItemID: "book-1", Shipping: fullShipping(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.EducatorShare != 0 || created.AdminShare != 59.90 {
			t.Fatalf("unexpected shares: %v / %v", created.EducatorShare, created.AdminShare)
		}
		if created.Metadata.Book == nil || created.Metadata.Book.Shipping == nil {
			t.Fatalf("expected book metadata with shipping snapshot, got %+v", created.Metadata)
		}
	})

	t.Run("out of stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.books.EXPECT().GetByID(gomock.Any(), "book-1").Return(entities.Book{ID: "book-1", Price: 59.90, InStock: true, StockQuantity: 0}, nil)

		_, err := uc.CreateCheckoutSession(context.Background(), "student-1", CheckoutRequest{
			Kind: entities.PurchaseKindBook, ItemID: "book-1", Shipping: fullShipping(),
		})
		if !errors.Is(err, ErrBookOutOfStock) {
			t.Fatalf("expected ErrBookOutOfStock, got %v", err)
		}
	})

	t.Run("already purchased", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.books.EXPECT().GetByID(gomock.Any(), "book-1").Return(book, nil)
		m.purchases.EXPECT().ExistsConfirmedOrDelivered(gomock.Any(), "student-1", "book-1").Return(true, nil)

		_, err := uc.CreateCheckoutSession(context.Background(), "student-1", CheckoutRequest{
			Kind: entities.PurchaseKindBook, ItemID: "book-1", Shipping: fullShipping(),
		})
		if !errors.Is(err, ErrAlreadyPurchased) {
			t.Fatalf("expected ErrAlreadyPurchased, got %v", err)
		}
	})

	t.Run("missing shipping field names the field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.books.EXPECT().GetByID(gomock.Any(), "book-1").Return(book, nil)
		m.purchases.EXPECT().ExistsConfirmedOrDelivered(gomock.Any(), "student-1", "book-1").Return(false, nil)

		shipping := fullShipping()
		shipping.Phone = " "
		_, err := uc.CreateCheckoutSession(context.Background(), "student-1", CheckoutRequest{
			Kind: entities.PurchaseKindBook, ItemID: "book-1", Shipping: shipping,
		})

		var missing *MissingShippingFieldError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingShippingFieldError, got %v", err)
		}
		if missing.Field != "phone" {
			t.Fatalf("expected missing field phone, got %s", missing.Field)
		}
	})

	t.Run("postal code is optional", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.books.EXPECT().GetByID(gomock.Any(), "book-1").Return(book, nil)
		m.purchases.EXPECT().ExistsConfirmedOrDelivered(gomock.Any(), "student-1", "book-1").Return(false, nil)
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })
		m.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutSessionResult{SessionID: "cs_3"}, nil)
		m.payments.EXPECT().SetSessionID(gomock.Any(), gomock.Any(), "cs_3").Return(nil)

		shipping := fullShipping()
		shipping.PostalCode = ""
		if _, err := uc.CreateCheckoutSession(context.Background(), "student-1", CheckoutRequest{
			Kind: entities.PurchaseKindBook, ItemID: "book-1", Shipping: shipping,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCheckoutUseCase_Cart(t *testing.T) {
	cart := entities.Cart{
		OwnerID: "student-1",
		Items: []entities.CartItem{
			{BookID: "book-1", BookTitle: "Book One", Quantity: 2, UnitPrice: 10.50},
			{BookID: "book-2", BookTitle: "Book Two", Quantity: 1, UnitPrice: 18.99},
		},
		TotalAmount: 39.99,
	}

	t.Run("success snapshots the lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.carts.EXPECT().GetByOwner(gomock.Any(), "student-1").Return(cart, nil)
		m.books.EXPECT().GetByID(gomock.Any(), "book-1").Return(entities.Book{ID: "book-1", InStock: true, StockQuantity: 5}, nil)
		m.books.EXPECT().GetByID(gomock.Any(), "book-2").Return(entities.Book{ID: "book-2", InStock: true, StockQuantity: 1}, nil)

		var created entities.Payment
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				created = p
				return p, nil
			})
		m.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.CheckoutSessionRequest) (interfaces.CheckoutSessionResult, error) {
				if len(req.LineItems) != 2 {
					t.Fatalf("expected one line item per cart line, got %d", len(req.LineItems))
				}
				if req.LineItems[0].Quantity != 2 || req.LineItems[0].UnitAmount != 1050 {
					t.Fatalf("unexpected first line: %+v", req.LineItems[0])
				}
				return interfaces.CheckoutSessionResult{SessionID: "cs_4"}, nil
			})
		m.payments.EXPECT().SetSessionID(gomock.Any(), gomock.Any(), "cs_4").Return(nil)

		_, err := uc.CreateCheckoutSession(context.Background(), "student-1", CheckoutRequest{Kind: entities.PurchaseKindCart})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Amount != 39.99 {
			t.Fatalf("expected cart total 39.99, got %v", created.Amount)
		}
		if created.ItemID != "" {
			t.Fatalf("cart payments carry no item id, got %q", created.ItemID)
		}
		if created.Metadata.Cart == nil || len(created.Metadata.Cart.Lines) != 2 {
			t.Fatalf("unexpected cart metadata: %+v", created.Metadata)
		}
	})

	t.Run("line quantity above stock is rejected before payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		short := entities.Cart{
			OwnerID: "student-1",
			Items: []entities.CartItem{
				{BookID: "book-1", BookTitle: "Book One", Quantity: 5, UnitPrice: 10.50},
			},
			TotalAmount: 52.50,
		}
		m.carts.EXPECT().GetByOwner(gomock.Any(), "student-1").Return(short, nil)
		m.books.EXPECT().GetByID(gomock.Any(), "book-1").Return(entities.Book{ID: "book-1", InStock: true, StockQuantity: 3}, nil)

		_, err := uc.CreateCheckoutSession(context.Background(), "student-1", CheckoutRequest{Kind: entities.PurchaseKindCart})
		if !errors.Is(err, ErrBookOutOfStock) {
			t.Fatalf("expected ErrBookOutOfStock, got %v", err)
		}
	})

	t.Run("line for an unknown book is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.carts.EXPECT().GetByOwner(gomock.Any(), "student-1").Return(cart, nil)
		m.books.EXPECT().GetByID(gomock.Any(), "book-1").Return(entities.Book{}, nil)

		_, err := uc.CreateCheckoutSession(context.Background(), "student-1", CheckoutRequest{Kind: entities.PurchaseKindCart})
		if !errors.Is(err, ErrBookNotFound) {
			t.Fatalf("expected ErrBookNotFound, got %v", err)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCheckoutUseCaseForTest(ctrl)

		m.carts.EXPECT().GetByOwner(gomock.Any(), "student-1").Return(entities.Cart{OwnerID: "student-1"}, nil)

		_, err := uc.CreateCheckoutSession(context.Background(), "student-1", CheckoutRequest{Kind: entities.PurchaseKindCart})
		if !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})
}
