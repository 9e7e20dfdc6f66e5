// Package chain provides a sequential validation chain: an ordered list of
// steps, each reporting success or failure through a single-use Handle, run
// one at a time until the first failure or until every step has passed.
//
// Steps may complete synchronously, before they return, or later from any
// goroutine. The chain never blocks or polls; it advances only when the
// current step's handle is completed, so a later step never starts before
// its predecessor has passed.
//
// Key operations:
// - New/Append/Then: build a chain of Step[E]
// - Evaluate: bind onInvalid/onValid and start running (once only)
// - Handle.Success/Failure/Check: report a step's result (once only)
// - IsEvaluated/Outcome/Done/Await: observe the terminal state
//
// Misuse of the API (evaluating twice, completing a handle twice, appending
// after evaluation) returns a *ContractViolationError. Validation failures are
// never returned as errors; they reach the caller only through onInvalid.
//
//	c := chain.New[string]().
//	    Then(func(h *chain.Handle[string]) { h.Check("name is required", func() bool { return name != "" }) }).
//	    Then(func(h *chain.Handle[string]) { go lookup(email, h) })
//	_ = c.Evaluate(
//	    func(msg string) { fmt.Println("invalid:", msg) },
//	    func() { fmt.Println("valid") },
//	)
package chain
