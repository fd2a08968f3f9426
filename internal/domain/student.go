package domain

import (
	"errors"
	"strings"

	"github.com/go-petr/pet-school/pkg/errorspkg"
	"github.com/google/uuid"
)

// ErrStudentNotFound indicates that the student is not found.
var ErrStudentNotFound = errors.New("student not found")

// MinimumStudentAge is the minimum age to register as a student.
const MinimumStudentAge = 18

// Student holds student data. Students are immutable after construction.
type Student struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Age  int32     `json:"age"`
}

// NewStudent validates and returns a student with a fresh identifier.
func NewStudent(name string, age int32) (Student, error) {
	if strings.TrimSpace(name) == "" {
		return Student{}, errorspkg.Argumentf("student name cannot be empty")
	}

	if age < MinimumStudentAge {
		return Student{}, errorspkg.Domainf("only adults (over %d years of age) may register as students", MinimumStudentAge)
	}

	return Student{
		ID:   uuid.New(),
		Name: name,
		Age:  age,
	}, nil
}

// NewStudentWithID builds a student with an explicit identifier.
// Meant for fixtures; production code paths assign fresh identifiers.
func NewStudentWithID(id uuid.UUID, name string, age int32) (Student, error) {
	s, err := NewStudent(name, age)
	if err != nil {
		return Student{}, err
	}

	s.ID = id

	return s, nil
}
