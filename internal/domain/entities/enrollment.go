package entities

import "time"

// EnrollmentStatus represents a student's relationship to a course.

type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
)

// Enrollment links a student to a course.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (student_id-course_id-index): student_id + course_id
//
// PaymentID is empty for free enrollments. A (student, course) pair holds at
// most one active enrollment; the checkout builder rejects duplicates before
// any payment record exists.

type Enrollment struct {
	ID         string           `json:"id"`
	StudentID  string           `json:"student_id"`
	CourseID   string           `json:"course_id"`
	Status     EnrollmentStatus `json:"status"`
	PaymentID  string           `json:"payment_id,omitempty"`
	EnrolledAt time.Time        `json:"enrolled_at"`
}
