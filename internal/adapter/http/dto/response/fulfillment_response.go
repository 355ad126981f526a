package response

import (
	"time"

	"shikkha/internal/domain/entities"
)

type EnrollmentResponse struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	CourseID   string    `json:"course_id"`
	Status     string    `json:"status"`
	PaymentID  string    `json:"payment_id,omitempty"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

func FromEnrollment(e entities.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:         e.ID,
		StudentID:  e.StudentID,
		CourseID:   e.CourseID,
		Status:     string(e.Status),
		PaymentID:  e.PaymentID,
		EnrolledAt: e.EnrolledAt,
	}
}

type BookPurchaseResponse struct {
	ID             string     `json:"id"`
	StudentID      string     `json:"student_id"`
	BookID         string     `json:"book_id"`
	PaymentID      string     `json:"payment_id"`
	Amount         float64    `json:"amount"`
	Quantity       int        `json:"quantity"`
	Status         string     `json:"status"`
	TrackingNumber string     `json:"tracking_number,omitempty"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func FromBookPurchase(p entities.BookPurchase) BookPurchaseResponse {
	return BookPurchaseResponse{
		ID:             p.ID,
		StudentID:      p.StudentID,
		BookID:         p.BookID,
		PaymentID:      p.PaymentID,
		Amount:         p.Amount,
		Quantity:       p.Quantity,
		Status:         string(p.Status),
		TrackingNumber: p.TrackingNumber,
		DeliveredAt:    p.DeliveredAt,
		CreatedAt:      p.CreatedAt,
	}
}
