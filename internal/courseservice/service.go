// Package courseservice manages business logic layer of courses.
package courseservice

import (
	"context"
	"errors"
	"time"

	"github.com/go-petr/pet-school/internal/domain"
	"github.com/go-petr/pet-school/pkg/errorspkg"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CourseRepo provides data access layer interface needed by course service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package courseservice
type CourseRepo interface {
	Add(ctx context.Context, course *domain.Course) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	ListByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.Course, error)
}

// StudentRepo provides the student lookup needed by course service layer.
type StudentRepo interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Student, error)
}

// PaymentGateway authorizes fee payments and returns a payment identifier.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, amount domain.Money, description, payerReference string) (uuid.UUID, error)
}

// UnitOfWork marks the end of a logical transaction.
type UnitOfWork interface {
	Commit(ctx context.Context) error
}

// Service facilitates course service layer logic.
type Service struct {
	courseRepo  CourseRepo
	studentRepo StudentRepo
	gateway     PaymentGateway
	uow         UnitOfWork
}

// New returns course service struct to manage course bussines logic.
func New(cr CourseRepo, sr StudentRepo, pg PaymentGateway, uow UnitOfWork) *Service {
	return &Service{
		courseRepo:  cr,
		studentRepo: sr,
		gateway:     pg,
		uow:         uow,
	}
}

// RegisterCourse creates and returns a course with the given fee.
func (s *Service) RegisterCourse(ctx context.Context, name, fee, currency string, startDate, endDate time.Time) (*domain.Course, error) {
	l := zerolog.Ctx(ctx)

	feeDecimal, err := decimal.NewFromString(fee)
	if err != nil {
		l.Info().Err(err).Send()
		return nil, errorspkg.Argumentf("invalid fee amount: %s", fee)
	}

	registrationFee, err := domain.NewMoney(feeDecimal, currency)
	if err != nil {
		l.Info().Err(err).Send()
		return nil, err
	}

	course, err := domain.NewCourse(name, registrationFee, startDate, endDate)
	if err != nil {
		l.Info().Err(err).Send()
		return nil, err
	}

	if err = s.courseRepo.Add(ctx, course); err != nil {
		l.Error().Err(err).Send()
		return nil, err
	}

	if err = s.uow.Commit(ctx); err != nil {
		l.Error().Err(err).Send()
		return nil, err
	}

	return course, nil
}

// Get returns the course for the given course ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	course, err := s.courseRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			return nil, errorspkg.Domainf("%w: %s", domain.ErrCourseNotFound, id)
		}

		return nil, err
	}

	return course, nil
}

// List returns all registered courses.
func (s *Service) List(ctx context.Context) ([]*domain.Course, error) {
	return s.courseRepo.List(ctx)
}

// ListByDateRange returns courses whose schedule overlaps the given range.
func (s *Service) ListByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.Course, error) {
	return s.courseRepo.ListByDateRange(ctx, startDate, endDate)
}

// EnrollStudentInCourse enrolls the student in the course, charging the
// registration fee through the payment gateway when processPayment is true
// and the fee is positive.
func (s *Service) EnrollStudentInCourse(ctx context.Context, studentID, courseID uuid.UUID, processPayment bool) (domain.Enrollment, error) {
	l := zerolog.Ctx(ctx)

	var enrollment domain.Enrollment

	course, err := s.courseRepo.Get(ctx, courseID)
	if err != nil {
		l.Info().Err(err).Send()

		if errors.Is(err, domain.ErrCourseNotFound) {
			return enrollment, errorspkg.Domainf("%w: %s", domain.ErrCourseNotFound, courseID)
		}

		return enrollment, err
	}

	student, err := s.studentRepo.Get(ctx, studentID)
	if err != nil {
		l.Info().Err(err).Send()

		if errors.Is(err, domain.ErrStudentNotFound) {
			return enrollment, errorspkg.Domainf("%w: %s", domain.ErrStudentNotFound, studentID)
		}

		return enrollment, err
	}

	paymentID := uuid.Nil
	if processPayment && course.RegistrationFee.IsPositive() {
		paymentID, err = s.gateway.ProcessPayment(
			ctx,
			course.RegistrationFee,
			"enrollment in course: "+course.Name,
			student.Name,
		)
		if err != nil {
			l.Error().Err(err).Send()
			return enrollment, err
		}
	}

	enrollment, err = course.EnrollStudent(student, paymentID)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Enrollment{}, err
	}

	if err = s.uow.Commit(ctx); err != nil {
		l.Error().Err(err).Send()
		return domain.Enrollment{}, err
	}

	return enrollment, nil
}
