package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/go-petr/pet-school/internal/courserepo"
	"github.com/go-petr/pet-school/internal/courseservice"
	"github.com/go-petr/pet-school/internal/paymentgateway"
	"github.com/go-petr/pet-school/internal/studentrepo"
	"github.com/go-petr/pet-school/internal/studentservice"
	"github.com/go-petr/pet-school/internal/unitofwork"
	"github.com/go-petr/pet-school/pkg/configpkg"
	"github.com/go-petr/pet-school/pkg/logpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := logpkg.New(config)
	ctx := logger.WithContext(context.Background())

	courseRepo := courserepo.NewRepoMem()
	studentRepo := studentrepo.NewRepoMem()
	gateway := paymentgateway.NewDummy()
	uow := unitofwork.NewNoop()

	courseService := courseservice.New(courseRepo, studentRepo, gateway, uow)
	studentService := studentservice.New(studentRepo, uow)

	now := time.Now().UTC()

	course, err := courseService.RegisterCourse(
		ctx, "Domain-Driven Design", "100", config.DefaultCurrency,
		now.AddDate(0, 0, 10), now.AddDate(0, 0, 40))
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot register course")
	}

	logger.Info().
		Str("course_id", course.ID.String()).
		Str("fee", course.RegistrationFee.String()).
		Msg("course registered")

	student, err := studentService.RegisterStudent(ctx, "Alice Johnson", 22)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot register student")
	}

	logger.Info().
		Str("student_id", student.ID.String()).
		Str("name", student.Name).
		Msg("student registered")

	enrollment, err := courseService.EnrollStudentInCourse(ctx, student.ID, course.ID, true)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot enroll student")
	}

	logger.Info().
		Str("enrollment_id", enrollment.ID.String()).
		Str("payment_id", enrollment.PaymentID.String()).
		Time("enrollment_date", enrollment.EnrollmentDate).
		Msg("student enrolled")

	courses, err := courseService.ListByDateRange(ctx, now, now.AddDate(0, 0, 30))
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot list courses")
	}

	logger.Info().Int("count", len(courses)).Msg("courses starting within 30 days")
}
