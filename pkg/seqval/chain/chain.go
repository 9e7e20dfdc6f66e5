package chain

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ib-77/seqval/pkg/seqval"
)

// Chain runs its steps one at a time in append order until a step fails or
// every step has passed, then calls exactly one terminal callback.
type Chain[E any] struct {
	mu        sync.Mutex
	steps     []Step[E]
	cursor    int
	started   bool
	evaluated bool
	failed    bool
	failure   E
	outcome   seqval.Outcome[E]
	onInvalid func(E)
	onValid   func()

	// driving is set while a goroutine is inside the run loop; resumed records
	// a completion that arrived while that goroutine was still in a step.
	driving bool
	resumed bool

	done   chan struct{}
	name   string
	logger *slog.Logger
}

// New creates an empty chain for failures of type E.
func New[E any](opts ...Option) *Chain[E] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if o.name != "" {
		logger = logger.With("chain", o.name)
	}

	return &Chain[E]{
		done:   make(chan struct{}),
		name:   o.name,
		logger: logger,
	}
}

// Append adds steps to the end of the chain. It fails once Evaluate has been
// called, or when any step is nil; in both cases nothing is appended.
func (c *Chain[E]) Append(steps ...Step[E]) error {
	for _, step := range steps {
		if step == nil {
			return c.violation("append", ErrNilStep)
		}
	}

	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return c.violation("append", ErrAppendAfterEvaluate)
	}
	c.steps = append(c.steps, steps...)
	c.mu.Unlock()
	return nil
}

// Then is the builder form of Append. It panics where Append would return an error.
func (c *Chain[E]) Then(step Step[E]) *Chain[E] {
	if err := c.Append(step); err != nil {
		panic(err)
	}
	return c
}

// Evaluate binds the terminal callbacks and starts running the steps.
// A nil callback is treated as a no-op. It can be called only once; every
// further call returns ErrReuse without running anything.
//
// When all steps complete synchronously the terminal callback has already
// fired by the time Evaluate returns.
func (c *Chain[E]) Evaluate(onInvalid func(err E), onValid func()) error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return c.violation("evaluate", ErrReuse)
	}
	c.started = true

	if onInvalid == nil {
		onInvalid = func(E) {}
	}
	if onValid == nil {
		onValid = func() {}
	}
	c.onInvalid = onInvalid
	c.onValid = onValid

	c.logger.Debug("evaluating chain", "steps", len(c.steps))
	c.advanceLocked()
	return nil
}

// IsEvaluated reports whether the chain has reached its terminal state.
func (c *Chain[E]) IsEvaluated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evaluated
}

// Outcome returns the terminal outcome, or an unset outcome while running.
func (c *Chain[E]) Outcome() seqval.Outcome[E] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outcome
}

// Len returns the number of appended steps.
func (c *Chain[E]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.steps)
}

// Position returns how many steps have been started so far.
func (c *Chain[E]) Position() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

// Done returns a channel that is closed after the terminal callback has returned.
func (c *Chain[E]) Done() <-chan struct{} {
	return c.done
}

// Await blocks until the chain is evaluated or ctx is done. It only observes
// the chain: a step still running when ctx ends keeps running.
func (c *Chain[E]) Await(ctx context.Context) (seqval.Outcome[E], error) {
	select {
	case <-c.done:
		return c.Outcome(), nil
	case <-ctx.Done():
		return seqval.Outcome[E]{}, ctx.Err()
	}
}

func (c *Chain[E]) complete(failed bool, failure E) {
	c.mu.Lock()
	if failed && !c.failed {
		c.failed = true
		c.failure = failure
	}
	c.advanceLocked()
}

// advanceLocked is the run loop. It must be called with c.mu held and
// releases it before returning. Steps and terminal callbacks always run
// without the lock.
func (c *Chain[E]) advanceLocked() {
	if c.driving {
		c.resumed = true
		c.mu.Unlock()
		return
	}
	c.driving = true

	for {
		c.resumed = false

		if c.failed || c.cursor == len(c.steps) {
			c.finishLocked()
			return
		}

		step := c.steps[c.cursor]
		c.cursor++
		h := newHandle(c, c.cursor)
		c.mu.Unlock()

		c.logger.Debug("running step", "step", h.position)
		step(h)

		c.mu.Lock()
		if !c.resumed {
			c.driving = false
			c.mu.Unlock()
			return
		}
	}
}

func (c *Chain[E]) finishLocked() {
	c.evaluated = true
	c.driving = false
	if c.failed {
		c.outcome = seqval.Fail(c.failure)
	} else {
		c.outcome = seqval.Success[E]()
	}
	outcome, onInvalid, onValid := c.outcome, c.onInvalid, c.onValid
	ran, total := c.cursor, len(c.steps)
	c.mu.Unlock()

	c.logger.Debug("chain evaluated",
		"outcome", outcome.String(),
		"outcome_id", outcome.Id(),
		"steps_run", ran,
		"steps_total", total)

	if outcome.IsFailure() {
		onInvalid(outcome.Err())
	} else {
		onValid()
	}
	close(c.done)
}

func (c *Chain[E]) violation(op string, err error, attrs ...any) error {
	c.logger.Error("chain contract violation", append([]any{"op", op, "error", err}, attrs...)...)
	return &ContractViolationError{Chain: c.name, Op: op, Err: err}
}
