// Package unitofwork provides transaction boundary implementations.
package unitofwork

import "context"

// Noop marks transaction boundaries without a durable backend. The in-memory
// repositories mutate shared state directly, so there is nothing to flush.
type Noop struct{}

// NewNoop returns a Noop unit of work.
func NewNoop() *Noop {
	return &Noop{}
}

// Commit completes the logical transaction.
func (u *Noop) Commit(ctx context.Context) error {
	return nil
}
