// Package errorspkg provides common app errors.
package errorspkg

import (
	"errors"
	"fmt"
)

// ErrInternal indicates internal server error.
var ErrInternal = errors.New("internal")

// Kind classifies an application failure.
type Kind int

// Failure kinds: malformed caller input vs a broken domain invariant.
const (
	KindArgument Kind = iota + 1
	KindDomain
)

// Error carries a failure kind alongside the underlying error.
type Error struct {
	kind Kind
	err  error
}

func (e *Error) Error() string {
	return e.err.Error()
}

// Unwrap exposes the underlying error so errors.Is can match wrapped sentinels.
func (e *Error) Unwrap() error {
	return e.err
}

// Argumentf returns an argument-kind error. The format accepts %w.
func Argumentf(format string, args ...interface{}) *Error {
	return &Error{kind: KindArgument, err: fmt.Errorf(format, args...)}
}

// Domainf returns a domain-kind error. The format accepts %w.
func Domainf(format string, args ...interface{}) *Error {
	return &Error{kind: KindDomain, err: fmt.Errorf(format, args...)}
}

// IsArgument reports whether err is an argument-kind error.
func IsArgument(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.kind == KindArgument
}

// IsDomain reports whether err is a domain-kind error.
func IsDomain(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.kind == KindDomain
}
