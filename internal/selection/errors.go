package selection

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a rejected operation
type ErrorType int

const (
	// ErrTypeInvalidCode indicates a code the catalog does not offer for the current device
	ErrTypeInvalidCode ErrorType = iota
	// ErrTypeOutOfOrder indicates a selection made before its preceding stage
	ErrTypeOutOfOrder
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeInvalidCode:
		return "Invalid Code"
	case ErrTypeOutOfOrder:
		return "Out Of Order"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error describes a rejected selection operation. The Selection is never
// modified when an Error is returned.
type Error struct {
	Type    ErrorType // Category of error
	Stage   Stage     // Stage the caller tried to change
	Code    string    // Offending code (empty for out-of-order errors on unset values)
	Message string    // Human-readable error message
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newInvalidCodeError(stage Stage, code, message string) *Error {
	return &Error{
		Type:    ErrTypeInvalidCode,
		Stage:   stage,
		Code:    code,
		Message: message,
	}
}

func newOutOfOrderError(stage Stage, code, message string) *Error {
	return &Error{
		Type:    ErrTypeOutOfOrder,
		Stage:   stage,
		Code:    code,
		Message: message,
	}
}

// IsInvalidCode checks if err is a rejected invalid-code operation
func IsInvalidCode(err error) bool {
	var selErr *Error
	return errors.As(err, &selErr) && selErr.Type == ErrTypeInvalidCode
}

// IsOutOfOrder checks if err is a rejected out-of-order operation
func IsOutOfOrder(err error) bool {
	var selErr *Error
	return errors.As(err, &selErr) && selErr.Type == ErrTypeOutOfOrder
}
