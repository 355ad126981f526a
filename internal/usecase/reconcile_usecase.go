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
	"github.com/shopspring/decimal"
)

var (
	ErrPaymentNotFound  = errors.New("payment not found for event")
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrSessionNotPaid   = errors.New("session is not paid")
	ErrFulfillment      = errors.New("fulfillment failed after payment completion")
)

// IReconcileUseCase finalizes payments from provider events.
//
// Reconcile is the single entry point for both automatic webhook deliveries
// and operator-triggered replays; Replay only fetches the session state and
// synthesizes the same event shape.

type IReconcileUseCase interface {
	Reconcile(ctx context.Context, event entities.CheckoutEvent) error
	Replay(ctx context.Context, sessionID string) error
}

type ReconcileUseCase struct {
	payments    interfaces.IPaymentRepository
	courses     interfaces.ICourseRepository
	books       interfaces.IBookRepository
	enrollments interfaces.IEnrollmentRepository
	purchases   interfaces.IBookPurchaseRepository
	carts       interfaces.ICartRepository
	students    interfaces.IStudentRepository
	earnings    interfaces.IEducatorEarningsLedger
	gateway     interfaces.IPaymentGateway
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

func NewReconcileUseCase(
	payments interfaces.IPaymentRepository,
	courses interfaces.ICourseRepository,
	books interfaces.IBookRepository,
	enrollments interfaces.IEnrollmentRepository,
	purchases interfaces.IBookPurchaseRepository,
	carts interfaces.ICartRepository,
	students interfaces.IStudentRepository,
	earnings interfaces.IEducatorEarningsLedger,
	gateway interfaces.IPaymentGateway,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		payments:    payments,
		courses:     courses,
		books:       books,
		enrollments: enrollments,
		purchases:   purchases,
		carts:       carts,
		students:    students,
		earnings:    earnings,
		gateway:     gateway,
	}
}

func (u *ReconcileUseCase) Reconcile(ctx context.Context, event entities.CheckoutEvent) error {
	if event.Type != entities.EventCheckoutCompleted {
		log.Printf("[reconcile][usecase] ignoring event type=%s session_id=%s", event.Type, event.SessionID)
		return nil
	}

	p, err := u.resolvePayment(ctx, event)
	if err != nil {
		return err
	}

	if p.Status == entities.PaymentStatusCompleted {
		log.Printf("[reconcile][usecase] payment already completed payment_id=%s (redelivery)", p.ID)
		return nil
	}
	if err := p.Metadata.Validate(p.Kind); err != nil {
		log.Printf("[reconcile][usecase] metadata invalid payment_id=%s kind=%s err=%v", p.ID, p.Kind, err)
		return err
	}
	if k := event.Kind(); k != "" && k != p.Kind {
		// The payment record is authoritative; the event copy is only a hint.
		log.Printf("[reconcile][usecase] event kind mismatch payment_id=%s stored=%s event=%s", p.ID, p.Kind, k)
	}

	// Linearization point: exactly one caller wins the pending -> completed
	// transition, regardless of webhook redelivery, concurrent delivery, or
	// manual replay. Losers see transitioned == false and do nothing.
	transitioned, err := u.payments.CompletePending(ctx, p.ID, event.PaymentIntentID)
	if err != nil {
		return err
	}
	if !transitioned {
		log.Printf("[reconcile][usecase] transition lost payment_id=%s (concurrent delivery or replay)", p.ID)
		return nil
	}
	log.Printf("[reconcile][usecase] payment completed payment_id=%s kind=%s amount=%.2f", p.ID, p.Kind, p.Amount)

	switch p.Kind {
	case entities.PurchaseKindCourse:
		err = u.fulfillCourse(ctx, p)
	case entities.PurchaseKindBook:
		err = u.fulfillBook(ctx, p)
	case entities.PurchaseKindCart:
		err = u.fulfillCart(ctx, p)
	}
	if err != nil {
		log.Printf("[reconcile][usecase] fulfillment failed payment_id=%s kind=%s err=%v", p.ID, p.Kind, err)
		// Best effort: flag the payment so operators can query for completed
		// payments with unfinished fulfillment.
		if recErr := u.payments.RecordFulfillmentError(ctx, p.ID, err.Error()); recErr != nil {
			log.Printf("[reconcile][usecase] fulfillment error flag failed payment_id=%s err=%v", p.ID, recErr)
		}
		return fmt.Errorf("%w: %v", ErrFulfillment, err)
	}

	log.Printf("[reconcile][usecase] fulfillment done payment_id=%s kind=%s", p.ID, p.Kind)
	return nil
}

func (u *ReconcileUseCase) Replay(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	log.Printf("[reconcile][usecase] manual replay start session_id=%s", sessionID)

	status, err := u.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	if status.PaymentStatus != entities.SessionPaid {
		log.Printf("[reconcile][usecase] manual replay refused session_id=%s payment_status=%s", sessionID, status.PaymentStatus)
		return ErrSessionNotPaid
	}

	return u.Reconcile(ctx, entities.CheckoutEvent{
		Type:            entities.EventCheckoutCompleted,
		SessionID:       status.SessionID,
		PaymentIntentID: status.PaymentIntentID,
		PaymentStatus:   status.PaymentStatus,
		Metadata:        status.Metadata,
	})
}

// resolvePayment loads the payment referenced by the event, preferring the id
// embedded in the session metadata and falling back to the session reference.
// A payment that cannot be found is fatal for the event; the provider's own
// redelivery handles transient read failures.
func (u *ReconcileUseCase) resolvePayment(ctx context.Context, event entities.CheckoutEvent) (entities.Payment, error) {
	if id := event.PaymentID(); id != "" {
		p, err := u.payments.GetByID(ctx, id)
		if err != nil {
			return entities.Payment{}, err
		}
		if p.ID == "" {
			log.Printf("[reconcile][usecase] payment missing payment_id=%s session_id=%s", id, event.SessionID)
			return entities.Payment{}, ErrPaymentNotFound
		}
		return p, nil
	}

	if event.SessionID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	p, err := u.payments.GetBySessionID(ctx, event.SessionID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		log.Printf("[reconcile][usecase] payment missing for session_id=%s", event.SessionID)
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *ReconcileUseCase) fulfillCourse(ctx context.Context, p entities.Payment) error {
	meta := p.Metadata.Course

	enrollment := entities.Enrollment{
		ID:         uuid.NewString(),
		StudentID:  p.UserID,
		CourseID:   p.ItemID,
		Status:     entities.EnrollmentStatusActive,
		PaymentID:  p.ID,
		EnrolledAt: time.Now().UTC(),
	}
	if _, err := u.enrollments.Create(ctx, enrollment); err != nil {
		return err
	}
	if err := u.courses.RegisterEnrollment(ctx, p.ItemID, p.UserID); err != nil {
		return err
	}
	if err := u.earnings.Credit(ctx, meta.EducatorID, p.EducatorShare); err != nil {
		return err
	}
	log.Printf("[reconcile][usecase] enrolled student_id=%s course_id=%s educator_share=%.2f", p.UserID, p.ItemID, p.EducatorShare)
	return nil
}

func (u *ReconcileUseCase) fulfillBook(ctx context.Context, p entities.Payment) error {
	shipping, err := u.resolveShipping(ctx, p.UserID, p.Metadata.Book.Shipping)
	if err != nil {
		return err
	}

	purchase := entities.BookPurchase{
		ID:        uuid.NewString(),
		StudentID: p.UserID,
		BookID:    p.ItemID,
		PaymentID: p.ID,
		Amount:    p.Amount,
		Quantity:  1,
		Status:    entities.PurchaseStatusConfirmed,
		Shipping:  shipping,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if _, err := u.purchases.Create(ctx, purchase); err != nil {
		return err
	}
	return u.books.DecrementStock(ctx, p.ItemID, 1)
}

func (u *ReconcileUseCase) fulfillCart(ctx context.Context, p entities.Payment) error {
	meta := p.Metadata.Cart
	shipping, err := u.resolveShipping(ctx, p.UserID, meta.Shipping)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, line := range meta.Lines {
		lineAmount, _ := decimal.NewFromFloat(line.UnitPrice).
			Mul(decimal.NewFromInt(int64(line.Quantity))).
			Round(2).Float64()

		purchase := entities.BookPurchase{
			ID:        uuid.NewString(),
			StudentID: p.UserID,
			BookID:    line.BookID,
			PaymentID: p.ID,
			Amount:    lineAmount,
			Quantity:  line.Quantity,
			Status:    entities.PurchaseStatusConfirmed,
			Shipping:  shipping,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := u.purchases.Create(ctx, purchase); err != nil {
			return err
		}
		if err := u.books.DecrementStock(ctx, line.BookID, line.Quantity); err != nil {
			return err
		}
	}

	return u.carts.Clear(ctx, p.UserID)
}

// resolveShipping prefers the snapshot captured at checkout time and falls
// back to the payer's profile address.
func (u *ReconcileUseCase) resolveShipping(ctx context.Context, studentID string, snapshot *entities.ShippingInfo) (entities.ShippingInfo, error) {
	if snapshot != nil {
		return *snapshot, nil
	}

	student, err := u.students.GetByID(ctx, studentID)
	if err != nil {
		return entities.ShippingInfo{}, err
	}
	return student.ProfileShipping(), nil
}
