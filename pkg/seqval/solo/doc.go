// Package solo contains ready-made steps for a chain.Chain. Each function
// builds exactly one step; none of them group or combine other steps.
//
// Highlights:
// - Succeed/Fail: steps with a fixed result
// - Check: pass when a predicate holds, fail with a given value otherwise
// - Validate: apply a (valid, errMsg) validator to a value
// - Try: pass when a function returns a nil error
// - Deferred: run a check on its own goroutine and report from there
package solo
