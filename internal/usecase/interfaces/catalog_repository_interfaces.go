package interfaces

import (
	"context"
	"shikkha/internal/domain/entities"
)

// ICourseRepository abstracts DynamoDB persistence for Course.
//
// RegisterEnrollment bumps enrolled_count and adds the student to the
// membership set in one atomic update (no read-modify-write), and must be
// a no-op for a student already in the set.

type ICourseRepository interface {
	GetByID(ctx context.Context, id string) (entities.Course, error)
	RegisterEnrollment(ctx context.Context, courseID, studentID string) error
}

// IBookRepository abstracts DynamoDB persistence for Book.
//
// DecrementStock is a bounded atomic decrement: it fails (without writing)
// when the remaining stock is smaller than qty.

type IBookRepository interface {
	GetByID(ctx context.Context, id string) (entities.Book, error)
	DecrementStock(ctx context.Context, bookID string, qty int) error
}

// IStudentRepository provides the payer profile, used as the shipping
// fallback when a checkout carried no shipping snapshot.

type IStudentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Student, error)
}

// IEducatorEarningsLedger accumulates course revenue per educator.

type IEducatorEarningsLedger interface {
	Credit(ctx context.Context, educatorID string, amount float64) error
}
