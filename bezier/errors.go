package bezier

import "errors"

var (
	// ErrInvalidInput indicates an empty control point sequence passed to an evaluator.
	ErrInvalidInput = errors.New("invalid input: no control points")
	// ErrCapacityExceeded indicates an insertion into a full store under the reject policy.
	ErrCapacityExceeded = errors.New("control point capacity exceeded")
	// ErrIndexOutOfRange indicates access to a store slot which holds no point.
	ErrIndexOutOfRange = errors.New("control point index out of range")
	// ErrInvalidConfig indicates a configuration value outside its permitted range.
	ErrInvalidConfig = errors.New("invalid configuration")
)
