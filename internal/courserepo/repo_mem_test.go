package courserepo

import (
	"context"
	"testing"
	"time"

	"github.com/go-petr/pet-school/internal/domain"
	"github.com/go-petr/pet-school/pkg/currencypkg"
	"github.com/go-petr/pet-school/pkg/errorspkg"
	"github.com/go-petr/pet-school/pkg/randompkg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testCourse(t *testing.T, name string, startOffset, endOffset int) *domain.Course {
	t.Helper()

	fee, err := domain.NewMoney(decimal.NewFromInt(100), currencypkg.USD)
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(24 * time.Hour)

	course, err := domain.NewCourse(name, fee, now.AddDate(0, 0, startOffset), now.AddDate(0, 0, endOffset))
	require.NoError(t, err)

	return course
}

func TestAddAndGet(t *testing.T) {
	repo := NewRepoMem()
	ctx := context.Background()

	course := testCourse(t, randompkg.CourseName(), 5, 45)

	require.NoError(t, repo.Add(ctx, course))

	got, err := repo.Get(ctx, course.ID)
	require.NoError(t, err)
	require.Equal(t, course, got)

	_, err = repo.Get(ctx, uuid.New())
	require.ErrorIs(t, err, domain.ErrCourseNotFound)

	err = repo.Add(ctx, nil)
	require.True(t, errorspkg.IsArgument(err))
}

func TestList(t *testing.T) {
	repo := NewRepoMem()
	ctx := context.Background()

	courses := []*domain.Course{
		testCourse(t, "first", 1, 10),
		testCourse(t, "second", 2, 20),
		testCourse(t, "third", 3, 30),
	}

	for _, c := range courses {
		require.NoError(t, repo.Add(ctx, c))
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, courses, got)
}

func TestListByDateRange(t *testing.T) {
	repo := NewRepoMem()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(24 * time.Hour)

	courseA := testCourse(t, "overlapping start", 5, 45)
	courseB := testCourse(t, "overlapping end", 10, 50)
	courseC := testCourse(t, "outside", 60, 90)
	courseD := testCourse(t, "containing", 1, 40)

	for _, c := range []*domain.Course{courseA, courseB, courseC, courseD} {
		require.NoError(t, repo.Add(ctx, c))
	}

	t.Run("Both partially overlapping courses match", func(t *testing.T) {
		got, err := repo.ListByDateRange(ctx, now, now.AddDate(0, 0, 30))
		require.NoError(t, err)
		require.Equal(t, []*domain.Course{courseA, courseB, courseD}, got)
	})

	t.Run("Course containing the queried range matches", func(t *testing.T) {
		got, err := repo.ListByDateRange(ctx, now.AddDate(0, 0, 15), now.AddDate(0, 0, 20))
		require.NoError(t, err)
		require.Equal(t, []*domain.Course{courseA, courseB, courseD}, got)
	})

	t.Run("Disjoint range matches nothing", func(t *testing.T) {
		got, err := repo.ListByDateRange(ctx, now.AddDate(0, 0, 100), now.AddDate(0, 0, 130))
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestAggregateMutationIsDurable(t *testing.T) {
	repo := NewRepoMem()
	ctx := context.Background()

	course := testCourse(t, randompkg.CourseName(), 5, 45)
	require.NoError(t, repo.Add(ctx, course))

	student, err := domain.NewStudent(randompkg.StudentName(), randompkg.AdultAge())
	require.NoError(t, err)

	enrollment, err := course.EnrollStudent(student, uuid.New())
	require.NoError(t, err)

	got, err := repo.Get(ctx, course.ID)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff([]domain.Enrollment{enrollment}, got.Enrollments()))
}
