package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"shikkha/internal/domain/entities"
	"shikkha/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrCourseNotFree = errors.New("course is paid; use checkout")

// IEnrollmentUseCase covers the free-enrollment path. Paid enrollments are
// created exclusively by the reconciler once a payment completes.

type IEnrollmentUseCase interface {
	EnrollFree(ctx context.Context, studentID, courseID string) (entities.Enrollment, error)
}

type EnrollmentUseCase struct {
	courses     interfaces.ICourseRepository
	enrollments interfaces.IEnrollmentRepository
}

var _ IEnrollmentUseCase = (*EnrollmentUseCase)(nil)

func NewEnrollmentUseCase(courses interfaces.ICourseRepository, enrollments interfaces.IEnrollmentRepository) *EnrollmentUseCase {
	return &EnrollmentUseCase{courses: courses, enrollments: enrollments}
}

func (u *EnrollmentUseCase) EnrollFree(ctx context.Context, studentID, courseID string) (entities.Enrollment, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return entities.Enrollment{}, ErrInvalidPayerID
	}
	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return entities.Enrollment{}, ErrInvalidItemID
	}

	course, err := u.courses.GetByID(ctx, courseID)
	if err != nil {
		return entities.Enrollment{}, err
	}
	if course.ID == "" {
		return entities.Enrollment{}, ErrCourseNotFound
	}
	if course.Price > 0 {
		return entities.Enrollment{}, ErrCourseNotFree
	}
	if !course.HasCapacity() {
		return entities.Enrollment{}, ErrCourseFull
	}

	enrolled, err := u.enrollments.ExistsActive(ctx, studentID, courseID)
	if err != nil {
		return entities.Enrollment{}, err
	}
	if enrolled {
		return entities.Enrollment{}, ErrAlreadyEnrolled
	}

	enrollment := entities.Enrollment{
		ID:         uuid.NewString(),
		StudentID:  studentID,
		CourseID:   courseID,
		Status:     entities.EnrollmentStatusActive,
		EnrolledAt: time.Now().UTC(),
	}
	created, err := u.enrollments.Create(ctx, enrollment)
	if err != nil {
		return entities.Enrollment{}, err
	}
	if err := u.courses.RegisterEnrollment(ctx, courseID, studentID); err != nil {
		return entities.Enrollment{}, err
	}

	log.Printf("[enrollment][usecase] free enroll success student_id=%s course_id=%s", studentID, courseID)
	return created, nil
}
