// Package studentservice manages business logic layer of students.
package studentservice

import (
	"context"
	"errors"

	"github.com/go-petr/pet-school/internal/domain"
	"github.com/go-petr/pet-school/pkg/errorspkg"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by student service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package studentservice
type Repo interface {
	Add(ctx context.Context, student domain.Student) error
	Get(ctx context.Context, id uuid.UUID) (domain.Student, error)
	List(ctx context.Context) ([]domain.Student, error)
}

// UnitOfWork marks the end of a logical transaction.
type UnitOfWork interface {
	Commit(ctx context.Context) error
}

// Service facilitates student service layer logic.
type Service struct {
	repo Repo
	uow  UnitOfWork
}

// New returns student service struct to manage student bussines logic.
func New(sr Repo, uow UnitOfWork) *Service {
	return &Service{
		repo: sr,
		uow:  uow,
	}
}

// RegisterStudent creates and returns a student.
func (s *Service) RegisterStudent(ctx context.Context, name string, age int32) (domain.Student, error) {
	l := zerolog.Ctx(ctx)

	var result domain.Student

	student, err := domain.NewStudent(name, age)
	if err != nil {
		l.Info().Err(err).Send()
		return result, err
	}

	if err = s.repo.Add(ctx, student); err != nil {
		l.Error().Err(err).Send()
		return result, err
	}

	if err = s.uow.Commit(ctx); err != nil {
		l.Error().Err(err).Send()
		return result, err
	}

	return student, nil
}

// Get returns the student for the given student ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Student, error) {
	student, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			return student, errorspkg.Domainf("%w: %s", domain.ErrStudentNotFound, id)
		}

		return student, err
	}

	return student, nil
}

// List returns all registered students.
func (s *Service) List(ctx context.Context) ([]domain.Student, error) {
	return s.repo.List(ctx)
}
