package wiseio

import (
	"errors"
	"fmt"
)

// Common stream and buffer errors
var (
	ErrClosed        = errors.New("stream is closed")
	ErrModeMismatch  = errors.New("operation not allowed in this open mode")
	ErrOutOfRange    = errors.New("position out of range")
	ErrInvalidOffset = errors.New("invalid offset")
	ErrInvalidMode   = errors.New("invalid open mode")
	ErrNotSupported  = errors.New("operation not supported")
)

// PathError records an error and the operation and file path that caused it
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// ContractError is the panic value used when a caller breaks a precondition
// of the API, such as passing a negative offset or a nil buffer.
type ContractError struct {
	Op  string
	Msg string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("wiseio: %s: %s", e.Op, e.Msg)
}

// IsClosed reports whether an error indicates use of a closed or moved-from stream
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}

// IsModeMismatch reports whether an error indicates an operation that the
// stream's open mode does not permit
func IsModeMismatch(err error) bool {
	return errors.Is(err, ErrModeMismatch)
}

// IsOutOfRange reports whether an error indicates a cursor beyond a buffer's end
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}
