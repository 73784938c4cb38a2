package validation

import (
	"errors"
	"strings"
)

// Failure is returned by Result.Check and Result.Err when a result has errors.
// It keeps the caller's context together with the itemised result.
type Failure struct {
	Context string
	Result  Result
}

// Error implements the error interface.
func (f *Failure) Error() string {
	msg := f.Context
	if msg == "" {
		msg = ErrValidationFailed.Error()
	}
	if !f.Result.HasError() {
		return msg
	}
	return msg + ": " + strings.Join(f.Result.errs, "; ")
}

// Is lets errors.Is(err, ErrValidationFailed) match any failure.
func (f *Failure) Is(target error) bool {
	return target == ErrValidationFailed
}

// AsFailure extracts a *Failure from err, following wrapped errors.
func AsFailure(err error) (*Failure, bool) {
	if err == nil {
		return nil, false
	}
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// ExtractResult returns the result carried by a failure in err's chain,
// or an ok result when there is none.
func ExtractResult(err error) Result {
	if f, ok := AsFailure(err); ok {
		return f.Result
	}
	return Ok()
}

func IsFailure(err error) bool {
	_, ok := AsFailure(err)
	return ok
}
