package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/go-petr/pet-school/pkg/currencypkg"
	"github.com/go-petr/pet-school/pkg/errorspkg"
	"github.com/google/uuid"
)

var (
	// ErrCourseNotFound indicates that the course is not found.
	ErrCourseNotFound = errors.New("course not found")
	// ErrAlreadyEnrolled indicates that the student is already enrolled in the course.
	ErrAlreadyEnrolled = errors.New("student is already enrolled in this course")
	// ErrPaymentRequired indicates that the course fee is due but no payment was supplied.
	ErrPaymentRequired = errors.New("payment is required")
)

// Course is the aggregate root owning its enrollments. The enrollments
// collection is appended to only through EnrollStudent.
type Course struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	RegistrationFee Money     `json:"registration_fee"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`

	enrollments []Enrollment
}

// NewCourse validates and returns a course with a fresh identifier.
// A zero-value fee falls back to a zero amount in the default currency.
func NewCourse(name string, registrationFee Money, startDate, endDate time.Time) (*Course, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errorspkg.Argumentf("course name cannot be empty")
	}

	if !startDate.Before(endDate) {
		return nil, errorspkg.Domainf("start date must be before the end date")
	}

	if registrationFee.Currency == "" {
		registrationFee = ZeroMoney(currencypkg.Default)
	}

	return &Course{
		ID:              uuid.New(),
		Name:            name,
		RegistrationFee: registrationFee,
		StartDate:       startDate,
		EndDate:         endDate,
	}, nil
}

// NewCourseWithID builds a course with an explicit identifier.
// Meant for fixtures; production code paths assign fresh identifiers.
func NewCourseWithID(id uuid.UUID, name string, registrationFee Money, startDate, endDate time.Time) (*Course, error) {
	c, err := NewCourse(name, registrationFee, startDate, endDate)
	if err != nil {
		return nil, err
	}

	c.ID = id

	return c, nil
}

// Enrollments returns a copy of the enrollments in enrollment order.
func (c *Course) Enrollments() []Enrollment {
	out := make([]Enrollment, len(c.enrollments))
	copy(out, c.enrollments)

	return out
}

// EnrollStudent enrolls the student and returns the new enrollment.
// It fails if the student is already enrolled or if the course fee is
// positive and paymentID is uuid.Nil. This is the only way an enrollment
// is added to the course.
func (c *Course) EnrollStudent(student Student, paymentID uuid.UUID) (Enrollment, error) {
	if student.ID == uuid.Nil {
		return Enrollment{}, errorspkg.Argumentf("student is required")
	}

	for _, e := range c.enrollments {
		if e.StudentID == student.ID {
			return Enrollment{}, errorspkg.Domainf("%w: %s", ErrAlreadyEnrolled, student.Name)
		}
	}

	if c.RegistrationFee.IsPositive() && paymentID == uuid.Nil {
		return Enrollment{}, errorspkg.Domainf("%w to enroll in this course (fee: %s)", ErrPaymentRequired, c.RegistrationFee)
	}

	enrollment, err := NewEnrollment(c, student, time.Now().UTC(), paymentID)
	if err != nil {
		return Enrollment{}, err
	}

	c.enrollments = append(c.enrollments, enrollment)

	return enrollment, nil
}
