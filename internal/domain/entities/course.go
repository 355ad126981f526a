package entities

import "time"

// Course is the catalog entity paid enrollments attach to.
//
// Storage model (DynamoDB):
//   - PK: id
//
// EnrolledCount is incremented with an atomic ADD by the reconciler, never
// read-modify-write. MaxStudents == 0 means unlimited capacity.

type Course struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	EducatorID    string    `json:"educator_id"`
	Price         float64   `json:"price"`
	MaxStudents   int       `json:"max_students,omitempty"`
	EnrolledCount int       `json:"enrolled_count"`
	Students      []string  `json:"students,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HasCapacity reports whether another student fits.
func (c Course) HasCapacity() bool {
	return c.MaxStudents <= 0 || c.EnrolledCount < c.MaxStudents
}
