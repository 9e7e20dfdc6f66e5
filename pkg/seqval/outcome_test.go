package seqval

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOutcome_ZeroValueIsUnset(t *testing.T) {
	t.Parallel()

	var o Outcome[string]
	assert.True(t, o.IsEmpty())
	assert.False(t, o.IsSuccess())
	assert.False(t, o.IsFailure())
	assert.Equal(t, uuid.Nil, o.Id())
	assert.True(t, o.CreatedAt().IsZero())
	assert.Equal(t, "unset", o.String())
}

func TestOutcome_Success(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC()
	o := Success[error]()
	assert.True(t, o.IsSuccess())
	assert.False(t, o.IsFailure())
	assert.False(t, o.IsEmpty())
	assert.Nil(t, o.Err())
	assert.NotEqual(t, uuid.Nil, o.Id())
	assert.False(t, o.CreatedAt().Before(before))
	assert.Equal(t, time.UTC, o.CreatedAt().Location())
	assert.Equal(t, "success", o.String())
}

func TestOutcome_Fail(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	o := Fail(err)
	assert.True(t, o.IsFailure())
	assert.False(t, o.IsSuccess())
	assert.ErrorIs(t, o.Err(), err)
	assert.Equal(t, "failure", o.String())
	assert.NotEqual(t, Fail(err).Id(), o.Id())
}

func TestOutcome_FailWithZeroValueIsStillFailure(t *testing.T) {
	t.Parallel()

	o := Fail[error](nil)
	assert.True(t, o.IsFailure())
	assert.False(t, o.IsEmpty())
}

func TestOutcome_SatisfiesInterfaces(t *testing.T) {
	t.Parallel()

	var p WithFailure[string] = Fail("x")
	assert.True(t, p.IsFailure())
	assert.Equal(t, "x", p.Err())

	var q OutcomeProvider = Success[string]()
	assert.True(t, q.IsSuccess())
}
