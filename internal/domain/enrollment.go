package domain

import (
	"time"

	"github.com/go-petr/pet-school/pkg/errorspkg"
	"github.com/google/uuid"
)

// Enrollment links a student to a course. A uuid.Nil PaymentID means the
// enrollment was free of charge. Enrollments are immutable after construction.
type Enrollment struct {
	ID             uuid.UUID `json:"id"`
	CourseID       uuid.UUID `json:"course_id"`
	StudentID      uuid.UUID `json:"student_id"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	PaymentID      uuid.UUID `json:"payment_id"`
}

// NewEnrollment validates and returns an enrollment with a fresh identifier.
func NewEnrollment(course *Course, student Student, enrollmentDate time.Time, paymentID uuid.UUID) (Enrollment, error) {
	if course == nil {
		return Enrollment{}, errorspkg.Argumentf("course is required")
	}

	if student.ID == uuid.Nil {
		return Enrollment{}, errorspkg.Argumentf("student is required")
	}

	return Enrollment{
		ID:             uuid.New(),
		CourseID:       course.ID,
		StudentID:      student.ID,
		EnrollmentDate: enrollmentDate,
		PaymentID:      paymentID,
	}, nil
}
