package chain_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/seqval/pkg/seqval/chain"
	"github.com/ib-77/seqval/pkg/seqval/solo"
)

func doAsync[E any](h *chain.Handle[E]) {
	go func() {
		time.Sleep(30 * time.Millisecond)
		_ = h.Success()
	}()
}

// mixedChain mixes inline checks, a branching step and a deferred step, and
// records whether its last step ran.
func mixedChain(another string, didExecuteLast *atomic.Bool) *chain.Chain[string] {
	something := "blah"
	x := true

	return chain.New[string]().
		Then(solo.Check("failure", func() bool { return something == "blah" })).
		Then(func(h *chain.Handle[string]) {
			if x {
				_ = h.Success()
			} else {
				_ = h.Failure("blah blah")
			}
		}).
		Then(doAsync[string]).
		Then(solo.Check("invalid blah", func() bool { return another == "another" })).
		Then(func(h *chain.Handle[string]) {
			didExecuteLast.Store(true)
			_ = h.Success()
		})
}

func TestMixedChain_Failure(t *testing.T) {
	t.Parallel()

	var didExecuteLast atomic.Bool
	var invalid, valid atomic.Int32
	var failure atomic.Value

	c := mixedChain("something else", &didExecuteLast)
	require.NoError(t, c.Evaluate(
		func(err string) {
			invalid.Add(1)
			failure.Store(err)
		},
		func() { valid.Add(1) },
	))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	out, err := c.Await(ctx)
	require.NoError(t, err)

	assert.True(t, c.IsEvaluated())
	assert.True(t, out.IsFailure())
	assert.Equal(t, "invalid blah", failure.Load())
	assert.EqualValues(t, 1, invalid.Load())
	assert.EqualValues(t, 0, valid.Load())
	assert.False(t, didExecuteLast.Load())
}

func TestMixedChain_Success(t *testing.T) {
	t.Parallel()

	var didExecuteLast atomic.Bool
	var invalid, valid atomic.Int32

	c := mixedChain("another", &didExecuteLast)
	require.NoError(t, c.Evaluate(
		func(string) { invalid.Add(1) },
		func() {
			valid.Add(1)
			assert.True(t, didExecuteLast.Load())
		},
	))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	out, err := c.Await(ctx)
	require.NoError(t, err)

	assert.True(t, out.IsSuccess())
	assert.EqualValues(t, 1, valid.Load())
	assert.EqualValues(t, 0, invalid.Load())
}
