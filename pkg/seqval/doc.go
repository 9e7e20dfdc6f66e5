// Package seqval holds the shared types of the sequential validation chain:
// the Outcome sum type reported when a chain finishes and the read-only
// interfaces over it.
//
// Highlights:
// - Success/Fail: construct a settled Outcome[E]
// - Outcome[E]: zero value is unset; IsSuccess/IsFailure/IsEmpty inspect it
// - Id/CreatedAt: every settled outcome carries a uuid and a UTC timestamp
//
// The chain itself lives in package chain, ready-made steps in package solo.
package seqval
