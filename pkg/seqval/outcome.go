package seqval

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the terminal result of a validation chain: unset, success, or
// failure carrying the first error reported. The zero value is unset.
type Outcome[E any] struct {
	id        uuid.UUID
	createdAt time.Time
	err       E
	isSuccess bool
	isFailure bool
}

func Success[E any]() Outcome[E] {
	return Outcome[E]{
		isSuccess: true,
		isFailure: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[E any](err E) Outcome[E] {
	return Outcome[E]{
		err:       err,
		isSuccess: false,
		isFailure: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err returns the failure value, or the zero E when the outcome is not a failure.
func (o Outcome[E]) Err() E {
	return o.err
}

func (o Outcome[E]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[E]) IsFailure() bool {
	return o.isFailure
}

// IsEmpty reports whether the outcome has not been settled yet.
func (o Outcome[E]) IsEmpty() bool {
	return !o.isSuccess && !o.isFailure
}

func (o Outcome[E]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[E]) Id() uuid.UUID {
	return o.id
}

func (o Outcome[E]) String() string {
	switch {
	case o.isSuccess:
		return "success"
	case o.isFailure:
		return "failure"
	default:
		return "unset"
	}
}
