package seqval

import (
	"time"

	"github.com/google/uuid"
)

type OutcomeProvider interface {
	// IsSuccess returns true if every step passed
	IsSuccess() bool
	// IsEmpty returns true while the outcome is not settled
	IsEmpty() bool
	// CreatedAt time the outcome was settled (UTC)
	CreatedAt() time.Time
	// Id identifies a single evaluation
	Id() uuid.UUID
}

// WithFailure extends OutcomeProvider with access to the reported failure
type WithFailure[E any] interface {
	OutcomeProvider
	// IsFailure returns true if a step reported failure
	IsFailure() bool
	// Err returns the failure reported by the first failing step
	Err() E
}
