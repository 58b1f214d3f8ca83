package wiseio

import (
	"errors"
	"os"
	"syscall"
)

// ============================================================================
// Backend Interfaces
// ============================================================================

// File is one open descriptor as seen by a Stream. Each method is a single
// syscall-equivalent: it may transfer fewer bytes than asked and may fail
// with syscall.EINTR, in which case the Stream retries it.
type File interface {
	// Pread reads into p at off without moving any shared file position.
	// It returns (0, nil) at end of file.
	Pread(p []byte, off int64) (int, error)

	// Pwrite writes p at off without moving any shared file position.
	// Writing past the end leaves a zero-filled gap.
	Pwrite(p []byte, off int64) (int, error)

	// Write appends p at the current end of file.
	Write(p []byte) (int, error)

	// Size returns the current file length in bytes.
	Size() (int64, error)

	// Close releases the descriptor.
	Close() error
}

// Driver opens Files. The built-in "local" driver uses the host
// filesystem; others register through RegisterDriver.
type Driver interface {
	Open(path string, mode OpenMode, perm os.FileMode) (File, error)
}

// DefaultPerm is the permission used when a mode creates a file.
const DefaultPerm os.FileMode = 0o666

// isInterrupted reports whether err is a transient EINTR that must be retried.
func isInterrupted(err error) bool {
	return errors.Is(err, syscall.EINTR)
}
