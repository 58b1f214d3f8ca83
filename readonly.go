package wiseio

import (
	"errors"
	"os"
)

// ErrReadOnly is returned when a writable open is attempted through a
// read-only driver.
var ErrReadOnly = errors.New("driver is read-only")

// ReadOnlyDriver wraps a Driver so that only ModeRead opens reach it.
//
// Example:
//
//	d := wiseio.NewReadOnlyDriver(wiseio.LocalDriver{})
//
//	// Reads work normally
//	s, _ := wiseio.OpenStream(d, "config.txt", wiseio.ModeRead)
//
//	// Anything that could modify the file fails before it is opened
//	_, err := wiseio.OpenStream(d, "config.txt", wiseio.ModeAppend)
//	// err wraps ErrReadOnly
type ReadOnlyDriver struct {
	d    Driver
	opts ReadOnlyOptions
}

// ReadOnlyOptions configures the ReadOnlyDriver behavior.
type ReadOnlyOptions struct {
	// OnWriteAttempt is called when a writable open is attempted.
	// If nil, the open fails with ErrReadOnly.
	// If this function returns nil, the open is allowed (use carefully).
	OnWriteAttempt func(path string, mode OpenMode) error

	// ErrorWrapper customizes the error returned for refused opens.
	ErrorWrapper func(path string, mode OpenMode, err error) error
}

// ReadOnlyOption is a functional option for configuring ReadOnlyDriver.
type ReadOnlyOption func(*ReadOnlyOptions)

// WithWriteAttemptHandler sets a custom handler for write attempts.
func WithWriteAttemptHandler(handler func(path string, mode OpenMode) error) ReadOnlyOption {
	return func(o *ReadOnlyOptions) {
		o.OnWriteAttempt = handler
	}
}

// WithErrorWrapper sets a custom error wrapper for refused opens.
func WithErrorWrapper(wrapper func(path string, mode OpenMode, err error) error) ReadOnlyOption {
	return func(o *ReadOnlyOptions) {
		o.ErrorWrapper = wrapper
	}
}

// NewReadOnlyDriver creates a read-only wrapper around d.
func NewReadOnlyDriver(d Driver, opts ...ReadOnlyOption) *ReadOnlyDriver {
	options := ReadOnlyOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	return &ReadOnlyDriver{
		d:    d,
		opts: options,
	}
}

// Unwrap returns the underlying Driver.
func (r *ReadOnlyDriver) Unwrap() Driver {
	return r.d
}

// Open implements Driver
func (r *ReadOnlyDriver) Open(path string, mode OpenMode, perm os.FileMode) (File, error) {
	if mode != ModeRead {
		if err := r.readOnlyError(path, mode); err != nil {
			return nil, err
		}
	}
	return r.d.Open(path, mode, perm)
}

// readOnlyError returns the error for a refused open, or nil if the
// handler lets it through.
func (r *ReadOnlyDriver) readOnlyError(path string, mode OpenMode) error {
	err := ErrReadOnly
	if r.opts.OnWriteAttempt != nil {
		if err = r.opts.OnWriteAttempt(path, mode); err == nil {
			return nil
		}
	}

	if r.opts.ErrorWrapper != nil {
		return r.opts.ErrorWrapper(path, mode, err)
	}
	return err
}
