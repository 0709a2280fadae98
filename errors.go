package penny

import "errors"

// Sentinel errors returned (wrapped) by the package.
// Use [errors.Is] to test for them.
var (
	// ErrInvalidAmount is returned when a value does not represent a number,
	// such as NaN or an infinity.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrIncompatibleOperand is returned when an operand cannot take part
	// in the operation, for example a nil operand.
	ErrIncompatibleOperand = errors.New("incompatible operand")

	// ErrUnsupportedOperation is returned by operations that money
	// deliberately does not support, such as division.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrInvalidArgument is returned when an argument is outside of the
	// accepted range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrParse is returned when a parser cannot convert text to money.
	ErrParse = errors.New("parse error")
)
