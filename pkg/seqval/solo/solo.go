package solo

import (
	"errors"

	"github.com/ib-77/seqval/pkg/seqval/chain"
)

func Succeed[E any]() chain.Step[E] {
	return func(h *chain.Handle[E]) {
		_ = h.Success()
	}
}

func Fail[E any](err E) chain.Step[E] {
	return func(h *chain.Handle[E]) {
		_ = h.Failure(err)
	}
}

func Check[E any](failure E, predicate func() bool) chain.Step[E] {
	return func(h *chain.Handle[E]) {
		_ = h.Check(failure, predicate)
	}
}

// Validate fails with errMsg as the error text when validate rejects value.
func Validate[T any](value T, validate func(in T) (valid bool, errMsg string)) chain.Step[error] {
	return func(h *chain.Handle[error]) {
		if isValid, errMsg := validate(value); isValid {
			_ = h.Success()
		} else {
			_ = h.Failure(errors.New(errMsg))
		}
	}
}

// Try fails with the error returned by tryExecute, if any.
func Try(tryExecute func() error) chain.Step[error] {
	return func(h *chain.Handle[error]) {
		if err := tryExecute(); err != nil {
			_ = h.Failure(err)
			return
		}
		_ = h.Success()
	}
}

// Deferred runs check on a new goroutine. The step returns immediately and the
// chain resumes once check has reported.
func Deferred[E any](check func() (ok bool, failure E)) chain.Step[E] {
	return func(h *chain.Handle[E]) {
		go func() {
			if ok, failure := check(); ok {
				_ = h.Success()
			} else {
				_ = h.Failure(failure)
			}
		}()
	}
}
