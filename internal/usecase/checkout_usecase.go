package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"shikkha/internal/domain/entities"
	"shikkha/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPayerID      = errors.New("invalid payer id")
	ErrInvalidPurchaseKind = errors.New("invalid purchase kind")
	ErrInvalidItemID       = errors.New("invalid item id")
	ErrCourseNotFound      = errors.New("course not found")
	ErrCourseNotBillable   = errors.New("course is free; use the free enrollment flow")
	ErrCourseFull          = errors.New("course has no remaining capacity")
	ErrAlreadyEnrolled     = errors.New("student already enrolled in this course")
	ErrBookNotFound        = errors.New("book not found")
	ErrBookOutOfStock      = errors.New("book is out of stock")
	ErrAlreadyPurchased    = errors.New("student already purchased this book")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrPaymentGateway      = errors.New("payment gateway request failed")
)

// MissingShippingFieldError names the shipping field a book checkout lacked.

type MissingShippingFieldError struct {
	Field string
}

func (e *MissingShippingFieldError) Error() string {
	return "missing shipping field: " + e.Field
}

// CheckoutConfig carries the redirect targets of the hosted payment page.

type CheckoutConfig struct {
	SuccessURL string
	CancelURL  string
}

type CheckoutRequest struct {
	Kind     entities.PurchaseKind
	ItemID   string
	Shipping *entities.ShippingInfo
}

type CheckoutSession struct {
	PaymentID string
	SessionID string
	URL       string
}

// ICheckoutUseCase builds provider checkout sessions for the three purchase
// kinds.
//
// Ordering contract: all preconditions are checked before the pending Payment
// is written, and the Payment is written before the provider is called, so an
// invalid request leaves no record and a provider callback can always be
// correlated back to an existing Payment.

type ICheckoutUseCase interface {
	CreateCheckoutSession(ctx context.Context, payerID string, req CheckoutRequest) (CheckoutSession, error)
}

type CheckoutUseCase struct {
	payments    interfaces.IPaymentRepository
	courses     interfaces.ICourseRepository
	books       interfaces.IBookRepository
	enrollments interfaces.IEnrollmentRepository
	purchases   interfaces.IBookPurchaseRepository
	carts       interfaces.ICartRepository
	gateway     interfaces.IPaymentGateway
	cfg         CheckoutConfig
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	payments interfaces.IPaymentRepository,
	courses interfaces.ICourseRepository,
	books interfaces.IBookRepository,
	enrollments interfaces.IEnrollmentRepository,
	purchases interfaces.IBookPurchaseRepository,
	carts interfaces.ICartRepository,
	gateway interfaces.IPaymentGateway,
	cfg CheckoutConfig,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		payments:    payments,
		courses:     courses,
		books:       books,
		enrollments: enrollments,
		purchases:   purchases,
		carts:       carts,
		gateway:     gateway,
		cfg:         cfg,
	}
}

func (u *CheckoutUseCase) CreateCheckoutSession(ctx context.Context, payerID string, req CheckoutRequest) (CheckoutSession, error) {
	payerID = strings.TrimSpace(payerID)
	if payerID == "" {
		return CheckoutSession{}, ErrInvalidPayerID
	}
	log.Printf("[checkout][usecase] create start payer_id=%s kind=%s item_id=%s", payerID, req.Kind, req.ItemID)

	var (
		amount float64
		meta   entities.PaymentMetadata
		lines  []interfaces.CheckoutLineItem
		itemID string
		err    error
	)

	switch req.Kind {
	case entities.PurchaseKindCourse:
		amount, meta, lines, err = u.prepareCourse(ctx, payerID, req.ItemID)
		itemID = strings.TrimSpace(req.ItemID)
	case entities.PurchaseKindBook:
		amount, meta, lines, err = u.prepareBook(ctx, payerID, req.ItemID, req.Shipping)
		itemID = strings.TrimSpace(req.ItemID)
	case entities.PurchaseKindCart:
		amount, meta, lines, err = u.prepareCart(ctx, payerID, req.Shipping)
	default:
		err = ErrInvalidPurchaseKind
	}
	if err != nil {
		log.Printf("[checkout][usecase] precondition failed payer_id=%s kind=%s err=%v", payerID, req.Kind, err)
		return CheckoutSession{}, err
	}

	educatorShare, adminShare := ComputeShares(amount, req.Kind)

	now := time.Now().UTC()
	p := entities.Payment{
		ID:            uuid.NewString(),
		UserID:        payerID,
		Kind:          req.Kind,
		ItemID:        itemID,
		Status:        entities.PaymentStatusPending,
		Amount:        amount,
		EducatorShare: educatorShare,
		AdminShare:    adminShare,
		Metadata:      meta,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := p.Metadata.Validate(p.Kind); err != nil {
		return CheckoutSession{}, err
	}

	// Persist before calling the provider so the session can always be
	// correlated back, even when the redirect is abandoned.
	if _, err := u.payments.Create(ctx, p); err != nil {
		log.Printf("[checkout][usecase] payment create failed payer_id=%s err=%v", payerID, err)
		return CheckoutSession{}, err
	}

	result, err := u.gateway.CreateCheckoutSession(ctx, interfaces.CheckoutSessionRequest{
		LineItems:  lines,
		SuccessURL: u.cfg.SuccessURL,
		CancelURL:  u.cfg.CancelURL,
		Metadata: map[string]string{
			entities.MetadataKeyPaymentID:    p.ID,
			entities.MetadataKeyPurchaseKind: string(p.Kind),
		},
	})
	if err != nil {
		log.Printf("[checkout][usecase] gateway failed payment_id=%s err=%v", p.ID, err)
		if markErr := u.payments.MarkFailed(ctx, p.ID); markErr != nil {
			log.Printf("[checkout][usecase] mark failed errored payment_id=%s err=%v", p.ID, markErr)
		}
		return CheckoutSession{}, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	if err := u.payments.SetSessionID(ctx, p.ID, result.SessionID); err != nil {
		// The provider session still carries payment_id in its metadata, so
		// the webhook can complete this payment; only session-keyed lookup
		// and manual replay lose correlation.
		log.Printf("[checkout][usecase] session id persist failed payment_id=%s session_id=%s err=%v", p.ID, result.SessionID, err)
		return CheckoutSession{}, err
	}

	log.Printf("[checkout][usecase] create success payment_id=%s session_id=%s amount=%.2f", p.ID, result.SessionID, amount)
	return CheckoutSession{PaymentID: p.ID, SessionID: result.SessionID, URL: result.URL}, nil
}

func (u *CheckoutUseCase) prepareCourse(ctx context.Context, payerID, courseID string) (float64, entities.PaymentMetadata, []interfaces.CheckoutLineItem, error) {
	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return 0, entities.PaymentMetadata{}, nil, ErrInvalidItemID
	}

	course, err := u.courses.GetByID(ctx, courseID)
	if err != nil {
		return 0, entities.PaymentMetadata{}, nil, err
	}
	if course.ID == "" {
		return 0, entities.PaymentMetadata{}, nil, ErrCourseNotFound
	}
	if course.Price <= 0 {
		return 0, entities.PaymentMetadata{}, nil, ErrCourseNotBillable
	}
	if !course.HasCapacity() {
		return 0, entities.PaymentMetadata{}, nil, ErrCourseFull
	}

	enrolled, err := u.enrollments.ExistsActive(ctx, payerID, courseID)
	if err != nil {
		return 0, entities.PaymentMetadata{}, nil, err
	}
	if enrolled {
		return 0, entities.PaymentMetadata{}, nil, ErrAlreadyEnrolled
	}

	meta := entities.PaymentMetadata{
		Course: &entities.CourseMetadata{CourseName: course.Title, EducatorID: course.EducatorID},
	}
	lines := []interfaces.CheckoutLineItem{
		{Name: course.Title, UnitAmount: toMinorUnits(course.Price), Quantity: 1},
	}
	return course.Price, meta, lines, nil
}

func (u *CheckoutUseCase) prepareBook(ctx context.Context, payerID, bookID string, shipping *entities.ShippingInfo) (float64, entities.PaymentMetadata, []interfaces.CheckoutLineItem, error) {
	bookID = strings.TrimSpace(bookID)
	if bookID == "" {
		return 0, entities.PaymentMetadata{}, nil, ErrInvalidItemID
	}

	book, err := u.books.GetByID(ctx, bookID)
	if err != nil {
		return 0, entities.PaymentMetadata{}, nil, err
	}
	if book.ID == "" {
		return 0, entities.PaymentMetadata{}, nil, ErrBookNotFound
	}
	if !book.Purchasable() {
		return 0, entities.PaymentMetadata{}, nil, ErrBookOutOfStock
	}

	purchased, err := u.purchases.ExistsConfirmedOrDelivered(ctx, payerID, bookID)
	if err != nil {
		return 0, entities.PaymentMetadata{}, nil, err
	}
	if purchased {
		return 0, entities.PaymentMetadata{}, nil, ErrAlreadyPurchased
	}

	if err := validateShipping(shipping); err != nil {
		return 0, entities.PaymentMetadata{}, nil, err
	}

	meta := entities.PaymentMetadata{
		Book: &entities.BookMetadata{BookTitle: book.Title, Shipping: shipping},
	}
	lines := []interfaces.CheckoutLineItem{
		{Name: book.Title, UnitAmount: toMinorUnits(book.Price), Quantity: 1},
	}
	return book.Price, meta, lines, nil
}

func (u *CheckoutUseCase) prepareCart(ctx context.Context, payerID string, shipping *entities.ShippingInfo) (float64, entities.PaymentMetadata, []interfaces.CheckoutLineItem, error) {
	cart, err := u.carts.GetByOwner(ctx, payerID)
	if err != nil {
		return 0, entities.PaymentMetadata{}, nil, err
	}
	if cart.IsEmpty() {
		return 0, entities.PaymentMetadata{}, nil, ErrEmptyCart
	}

	snapshot := make([]entities.CartLineSnapshot, 0, len(cart.Items))
	lines := make([]interfaces.CheckoutLineItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		// Stock is checked per line before any payment record exists; the
		// decrement after completion must not be the first place a shortage
		// surfaces.
		book, err := u.books.GetByID(ctx, item.BookID)
		if err != nil {
			return 0, entities.PaymentMetadata{}, nil, err
		}
		if book.ID == "" {
			return 0, entities.PaymentMetadata{}, nil, ErrBookNotFound
		}
		if !book.Purchasable() || book.StockQuantity < item.Quantity {
			return 0, entities.PaymentMetadata{}, nil, ErrBookOutOfStock
		}
		snapshot = append(snapshot, entities.CartLineSnapshot{
			BookID:    item.BookID,
			BookTitle: item.BookTitle,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
		lines = append(lines, interfaces.CheckoutLineItem{
			Name:       item.BookTitle,
			UnitAmount: toMinorUnits(item.UnitPrice),
			Quantity:   int64(item.Quantity),
		})
	}

	meta := entities.PaymentMetadata{
		Cart: &entities.CartMetadata{CartID: cart.OwnerID, Lines: snapshot, Shipping: shipping},
	}
	return cart.TotalAmount, meta, lines, nil
}

// Shipping is mandatory for single-book checkouts; postal code is not.
func validateShipping(s *entities.ShippingInfo) error {
	if s == nil {
		return &MissingShippingFieldError{Field: "shippingInfo"}
	}
	required := []struct {
		name  string
		value string
	}{
		{"name", s.Name},
		{"email", s.Email},
		{"phone", s.Phone},
		{"address", s.Address},
		{"city", s.City},
		{"country", s.Country},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &MissingShippingFieldError{Field: f.name}
		}
	}
	return nil
}
