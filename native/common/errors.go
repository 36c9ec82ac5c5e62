package common

import "errors"

var (
	// ErrOperationInFlight is returned when a guarded operation is attempted
	// while another one is still executing.
	ErrOperationInFlight = errors.New("common: operation already in flight")
	// ErrTimeLockNotMet is returned when a pending action is confirmed before
	// its delay has elapsed.
	ErrTimeLockNotMet = errors.New("common: time lock not met")
	// ErrNoPendingAction is returned when a confirmation targets an empty slot.
	ErrNoPendingAction = errors.New("common: no pending action")
	// ErrArithmeticOverflow is returned when a checked computation would
	// exceed the uint64 range.
	ErrArithmeticOverflow = errors.New("common: arithmetic overflow")
	// ErrDivideByZero is returned when a computation would divide by zero.
	ErrDivideByZero = errors.New("common: divide by zero")
)
