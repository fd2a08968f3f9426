// Package studentrepo manages repository layer of students.
package studentrepo

import (
	"context"
	"sync"

	"github.com/go-petr/pet-school/internal/domain"
	"github.com/go-petr/pet-school/pkg/errorspkg"
	"github.com/google/uuid"
)

// RepoMem is an in-memory student repository. Safe for concurrent use.
type RepoMem struct {
	mu       sync.Mutex
	students []domain.Student
}

// NewRepoMem returns student RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{}
}

// Add stores the student preserving insertion order.
func (r *RepoMem) Add(ctx context.Context, student domain.Student) error {
	if student.ID == uuid.Nil {
		return errorspkg.Argumentf("student is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.students = append(r.students, student)

	return nil
}

// Get returns the student for the given student ID.
func (r *RepoMem) Get(ctx context.Context, id uuid.UUID) (domain.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.students {
		if s.ID == id {
			return s, nil
		}
	}

	return domain.Student{}, domain.ErrStudentNotFound
}

// List returns all stored students in insertion order.
func (r *RepoMem) List(ctx context.Context) ([]domain.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Student, len(r.students))
	copy(out, r.students)

	return out, nil
}
