// Package courserepo manages repository layer of courses.
package courserepo

import (
	"context"
	"sync"
	"time"

	"github.com/go-petr/pet-school/internal/domain"
	"github.com/go-petr/pet-school/pkg/errorspkg"
	"github.com/google/uuid"
)

// RepoMem is an in-memory course repository. Courses are held by reference,
// so aggregate mutations are visible to subsequent reads without an explicit
// update call. Safe for concurrent use.
type RepoMem struct {
	mu      sync.Mutex
	courses []*domain.Course
}

// NewRepoMem returns course RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{}
}

// Add stores the course preserving insertion order.
func (r *RepoMem) Add(ctx context.Context, course *domain.Course) error {
	if course == nil {
		return errorspkg.Argumentf("course is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.courses = append(r.courses, course)

	return nil
}

// Get returns the course for the given course ID.
func (r *RepoMem) Get(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.courses {
		if c.ID == id {
			return c, nil
		}
	}

	return nil, domain.ErrCourseNotFound
}

// List returns all stored courses in insertion order.
func (r *RepoMem) List(ctx context.Context) ([]*domain.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Course, len(r.courses))
	copy(out, r.courses)

	return out, nil
}

// ListByDateRange returns courses overlapping [startDate, endDate]: the
// course start or end falls within the range, or the course schedule fully
// contains the range.
func (r *RepoMem) ListByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Course

	for _, c := range r.courses {
		if within(c.StartDate, startDate, endDate) ||
			within(c.EndDate, startDate, endDate) ||
			(!c.StartDate.After(startDate) && !c.EndDate.Before(endDate)) {
			out = append(out, c)
		}
	}

	return out, nil
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
