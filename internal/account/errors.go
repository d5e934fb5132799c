package account

import "errors"

// Failure reasons returned by account operations. All of them are recoverable
// and user-facing; the caller decides how to present them. Match with
// errors.Is, the wrapped message carries the context.
var (
	// ErrIllegalOperation is returned when the current status forbids the
	// requested operation per the legality matrix.
	ErrIllegalOperation = errors.New("illegal operation")

	// ErrInvalidAmount is returned when an amount is non-numeric or not
	// strictly positive.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds is returned when an amount exceeds the current
	// balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnknownTarget is returned when a transfer target id does not resolve
	// in the directory.
	ErrUnknownTarget = errors.New("unknown transfer target")

	// ErrInvalidStatus is returned when a status change names a value outside
	// the closed Verified/Suspended/Closed set.
	ErrInvalidStatus = errors.New("invalid status")
)
