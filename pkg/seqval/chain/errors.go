package chain

import (
	"errors"
	"fmt"
)

var (
	ErrReuse               = errors.New("chain has already been evaluated")
	ErrDoubleCompletion    = errors.New("step handle has already been completed")
	ErrAppendAfterEvaluate = errors.New("cannot append steps once evaluation has started")
	ErrNilStep             = errors.New("step cannot be nil")
)

// ContractViolationError reports misuse of the chain API. It is always returned
// to the offending caller and never delivered as a validation failure.
type ContractViolationError struct {
	Chain string
	Op    string
	Err   error
}

func (e *ContractViolationError) Error() string {
	if e.Chain == "" {
		return fmt.Sprintf("chain: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("chain %q: %s: %v", e.Chain, e.Op, e.Err)
}

func (e *ContractViolationError) Unwrap() error {
	return e.Err
}

func IsContractViolation(err error) bool {
	var e *ContractViolationError
	return errors.As(err, &e)
}
