package interstack

import "errors"

var ErrUnderflow = errors.New("operand stack underflow")

// UnderflowError reports a read from an empty operand stack.
// The machine substitutes 0 and keeps running.
type UnderflowError struct {
	Op       Op
	Position int
}

func (e *UnderflowError) Error() string {
	if e.Op == OpPeek {
		return "Tried to peek while stack is empty - returning 0."
	}
	return "Tried to pop while stack is empty - returning 0."
}

func (e *UnderflowError) Unwrap() error {
	return ErrUnderflow
}
