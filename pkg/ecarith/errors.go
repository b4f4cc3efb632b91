package ecarith

import (
	"fmt"

	"github.com/pkg/errors"
)

// Input errors reported by Parse and New. Match them with errors.Is.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotPrime              = errors.New("field characteristic is not prime")
	ErrCoefficientOutOfRange = errors.New("coefficient out of range")
)

// ParamError reports which curve parameter was rejected and why.
type ParamError struct {
	Param string // "p", "a" or "b"
	Value string
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("parameter %s=%q: %v", e.Param, e.Value, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

func newParamError(param, value string, err error) *ParamError {
	return &ParamError{
		Param: param,
		Value: value,
		Err:   err,
	}
}
