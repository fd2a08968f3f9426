package domain

import (
	"testing"
	"time"

	"github.com/go-petr/pet-school/pkg/currencypkg"
	"github.com/go-petr/pet-school/pkg/errorspkg"
	"github.com/go-petr/pet-school/pkg/randompkg"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testFee(t *testing.T, amount int64) Money {
	t.Helper()

	fee, err := NewMoney(decimal.NewFromInt(amount), currencypkg.USD)
	require.NoError(t, err)

	return fee
}

func testStudent(t *testing.T) Student {
	t.Helper()

	student, err := NewStudent(randompkg.StudentName(), randompkg.AdultAge())
	require.NoError(t, err)

	return student
}

func TestNewCourse(t *testing.T) {
	now := time.Now().UTC()

	testCases := []struct {
		name       string
		courseName string
		startDate  time.Time
		endDate    time.Time
		wantErr    bool
		wantDomain bool
	}{
		{
			name:       "OK",
			courseName: "Intro",
			startDate:  now.AddDate(0, 0, 10),
			endDate:    now.AddDate(0, 0, 40),
		},
		{
			name:       "Blank name",
			courseName: "   ",
			startDate:  now.AddDate(0, 0, 10),
			endDate:    now.AddDate(0, 0, 40),
			wantErr:    true,
		},
		{
			name:       "Start equals end",
			courseName: "Intro",
			startDate:  now,
			endDate:    now,
			wantErr:    true,
			wantDomain: true,
		},
		{
			name:       "Start after end",
			courseName: "Intro",
			startDate:  now.AddDate(0, 0, 40),
			endDate:    now.AddDate(0, 0, 10),
			wantErr:    true,
			wantDomain: true,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			course, err := NewCourse(tc.courseName, testFee(t, 100), tc.startDate, tc.endDate)

			if tc.wantErr {
				require.Error(t, err)

				if tc.wantDomain {
					require.True(t, errorspkg.IsDomain(err))
				} else {
					require.True(t, errorspkg.IsArgument(err))
				}

				return
			}

			require.NoError(t, err)
			require.NotEqual(t, uuid.Nil, course.ID)
			require.Equal(t, tc.courseName, course.Name)
			require.Equal(t, tc.startDate, course.StartDate)
			require.Equal(t, tc.endDate, course.EndDate)
			require.Empty(t, course.Enrollments())
		})
	}
}

func TestNewCourseDefaultFee(t *testing.T) {
	now := time.Now().UTC()

	course, err := NewCourse("Intro", Money{}, now.AddDate(0, 0, 1), now.AddDate(0, 0, 30))
	require.NoError(t, err)
	require.True(t, course.RegistrationFee.Equal(ZeroMoney(currencypkg.Default)))
}

func TestEnrollStudent(t *testing.T) {
	now := time.Now().UTC()
	start, end := now.AddDate(0, 0, 10), now.AddDate(0, 0, 40)

	t.Run("Zero student", func(t *testing.T) {
		course, err := NewCourse("Intro", testFee(t, 100), start, end)
		require.NoError(t, err)

		_, err = course.EnrollStudent(Student{}, uuid.New())
		require.Error(t, err)
		require.True(t, errorspkg.IsArgument(err))
		require.Empty(t, course.Enrollments())
	})

	t.Run("Paid course with payment", func(t *testing.T) {
		course, err := NewCourse("Intro", testFee(t, 100), start, end)
		require.NoError(t, err)

		student := testStudent(t)
		paymentID := uuid.New()

		enrollment, err := course.EnrollStudent(student, paymentID)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, enrollment.ID)
		require.Equal(t, course.ID, enrollment.CourseID)
		require.Equal(t, student.ID, enrollment.StudentID)
		require.Equal(t, paymentID, enrollment.PaymentID)
		require.WithinDuration(t, time.Now().UTC(), enrollment.EnrollmentDate, time.Minute)
		require.Len(t, course.Enrollments(), 1)
	})

	t.Run("Paid course without payment", func(t *testing.T) {
		course, err := NewCourse("Intro", testFee(t, 100), start, end)
		require.NoError(t, err)

		_, err = course.EnrollStudent(testStudent(t), uuid.Nil)
		require.Error(t, err)
		require.True(t, errorspkg.IsDomain(err))
		require.ErrorIs(t, err, ErrPaymentRequired)
		require.Contains(t, err.Error(), "100 USD")
		require.Empty(t, course.Enrollments())
	})

	t.Run("Free course without payment", func(t *testing.T) {
		course, err := NewCourse("Intro", ZeroMoney(currencypkg.USD), start, end)
		require.NoError(t, err)

		enrollment, err := course.EnrollStudent(testStudent(t), uuid.Nil)
		require.NoError(t, err)
		require.Equal(t, uuid.Nil, enrollment.PaymentID)
		require.Len(t, course.Enrollments(), 1)
	})

	t.Run("Duplicate enrollment", func(t *testing.T) {
		course, err := NewCourse("Intro", testFee(t, 100), start, end)
		require.NoError(t, err)

		student := testStudent(t)

		_, err = course.EnrollStudent(student, uuid.New())
		require.NoError(t, err)

		_, err = course.EnrollStudent(student, uuid.New())
		require.Error(t, err)
		require.True(t, errorspkg.IsDomain(err))
		require.ErrorIs(t, err, ErrAlreadyEnrolled)
		require.Contains(t, err.Error(), student.Name)
		require.Len(t, course.Enrollments(), 1)
	})

	t.Run("Enrollment order is preserved", func(t *testing.T) {
		course, err := NewCourse("Intro", ZeroMoney(currencypkg.USD), start, end)
		require.NoError(t, err)

		students := []Student{testStudent(t), testStudent(t), testStudent(t)}
		for _, student := range students {
			_, err = course.EnrollStudent(student, uuid.Nil)
			require.NoError(t, err)
		}

		enrollments := course.Enrollments()
		require.Len(t, enrollments, len(students))

		for i, student := range students {
			require.Equal(t, student.ID, enrollments[i].StudentID)
		}
	})

	t.Run("Enrollments returns a copy", func(t *testing.T) {
		course, err := NewCourse("Intro", ZeroMoney(currencypkg.USD), start, end)
		require.NoError(t, err)

		_, err = course.EnrollStudent(testStudent(t), uuid.Nil)
		require.NoError(t, err)

		view := course.Enrollments()
		view[0] = Enrollment{}

		require.NotEqual(t, Enrollment{}, course.Enrollments()[0])
	})
}
