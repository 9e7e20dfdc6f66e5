package chain

import "sync/atomic"

// Step is one unit of validation. It must eventually call exactly one of the
// handle's completion methods, either before returning or later from any goroutine.
type Step[E any] func(h *Handle[E])

// Handle is the single-use token a step reports its result through.
// The first completion call wins; every later call returns ErrDoubleCompletion.
type Handle[E any] struct {
	chain    *Chain[E]
	position int
	consumed atomic.Bool
}

func newHandle[E any](c *Chain[E], position int) *Handle[E] {
	return &Handle[E]{chain: c, position: position}
}

// Position is the 1-based index of the step this handle was issued to.
func (h *Handle[E]) Position() int {
	return h.position
}

// Consumed reports whether a completion method has already been called.
func (h *Handle[E]) Consumed() bool {
	return h.consumed.Load()
}

// Success marks the step as passed and lets the chain move on.
func (h *Handle[E]) Success() error {
	if !h.consumed.CompareAndSwap(false, true) {
		return h.chain.violation("success", ErrDoubleCompletion, "step", h.position)
	}
	var zero E
	h.chain.complete(false, zero)
	return nil
}

// Failure marks the step as failed with err. The chain finishes immediately
// and the remaining steps never run.
func (h *Handle[E]) Failure(err E) error {
	if !h.consumed.CompareAndSwap(false, true) {
		return h.chain.violation("failure", ErrDoubleCompletion, "step", h.position)
	}
	h.chain.complete(true, err)
	return nil
}

// Check calls Success when predicate holds and Failure(err) otherwise.
// A nil predicate never holds.
func (h *Handle[E]) Check(err E, predicate func() bool) error {
	if predicate != nil && predicate() {
		return h.Success()
	}
	return h.Failure(err)
}
