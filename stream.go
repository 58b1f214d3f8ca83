package wiseio

import (
	"fmt"
	"runtime"

	"github.com/gobeaver/wiseio/logging"
	"github.com/gobeaver/wiseio/metrics"
)

// handle owns the File of exactly one Stream. A nil f means the Stream has
// been closed or moved from.
type handle struct {
	f File
}

func (h *handle) close() error {
	if h.f == nil {
		return nil
	}
	f := h.f
	h.f = nil
	return f.Close()
}

// Stream reads and writes one open file at an internal cursor or at
// explicit offsets.
//
// A Stream is not safe for concurrent use. It owns its File: Close releases
// it, and an unreachable Stream releases it through a runtime cleanup.
type Stream struct {
	h      *handle
	path   string
	mode   OpenMode
	cursor int64
	eof    bool
	chunk  int

	logger  logging.Logger
	metrics metrics.Collector
}

// OpenStream opens path on driver d and returns a Stream that owns the
// resulting File. No Stream is returned if the open fails.
func OpenStream(d Driver, path string, mode OpenMode, options ...StreamOption) (*Stream, error) {
	opts := processOptions(options...)
	logger := opts.Logger.With("path", path, "mode", mode.String())

	if !mode.valid() {
		logger.Error("cannot open file", "error", ErrInvalidMode)
		return nil, &PathError{Op: "open", Path: path, Err: ErrInvalidMode}
	}

	f, err := d.Open(path, mode, opts.Perm)
	if err != nil {
		logger.Error("cannot open file", "error", err)
		return nil, &PathError{Op: "open", Path: path, Err: err}
	}
	logger.Debug("file opened")

	return newStream(f, path, mode, opts.ChunkSize, logger, opts.Metrics), nil
}

func newStream(f File, path string, mode OpenMode, chunk int, logger logging.Logger, collector metrics.Collector) *Stream {
	s := &Stream{
		h:       &handle{f: f},
		path:    path,
		mode:    mode,
		chunk:   chunk,
		logger:  logger,
		metrics: collector,
	}
	runtime.AddCleanup(s, func(h *handle) { _ = h.close() }, s.h)
	return s
}

// Path returns the path the Stream was opened with.
func (s *Stream) Path() string { return s.path }

// Mode returns the open mode.
func (s *Stream) Mode() OpenMode { return s.mode }

// Cursor returns the offset used by cursor-relative operations.
func (s *Stream) Cursor() int64 { return s.cursor }

// SetCursor moves the cursor. Any non-negative offset is accepted, including
// offsets past the end of the file.
func (s *Stream) SetCursor(pos int64) {
	if pos < 0 {
		s.violate("SetCursor", fmt.Sprintf("negative cursor %d", pos))
	}
	s.cursor = pos
}

// EOF reports whether a cursor-relative read has hit the end of the file.
// Once set it stays set for the life of the Stream.
func (s *Stream) EOF() bool { return s.eof }

// Size returns the current file length.
func (s *Stream) Size() (int64, error) {
	if err := s.checkOpen("size"); err != nil {
		return 0, err
	}
	size, err := s.h.f.Size()
	if err != nil {
		s.logger.Error("cannot stat file", "error", err)
		return 0, &PathError{Op: "size", Path: s.path, Err: err}
	}
	return size, nil
}

// Close releases the file. Calling Close again does nothing.
func (s *Stream) Close() error {
	if s.h.f == nil {
		return nil
	}
	if err := s.h.close(); err != nil {
		s.logger.Error("close failed", "error", err)
		return &PathError{Op: "close", Path: s.path, Err: err}
	}
	s.logger.Debug("file closed")
	return nil
}

// Move transfers the file to a new Stream carrying the same cursor, EOF
// flag and settings. The receiver is left closed.
func (s *Stream) Move() *Stream {
	f := s.h.f
	s.h.f = nil

	moved := newStream(f, s.path, s.mode, s.chunk, s.logger, s.metrics)
	moved.cursor = s.cursor
	moved.eof = s.eof
	return moved
}

// checkOpen fails with ErrClosed when the Stream no longer owns a file.
func (s *Stream) checkOpen(op string) error {
	if s.h.f == nil {
		s.logger.Error("stream is closed", "op", op)
		return &PathError{Op: op, Path: s.path, Err: ErrClosed}
	}
	return nil
}

// check runs checkOpen and then looks the mode up in the capability table.
func (s *Stream) check(op string, c capability) error {
	if err := s.checkOpen(op); err != nil {
		return err
	}
	if !s.mode.allows(c) {
		s.logger.Error("operation not allowed in this mode", "op", op)
		return &PathError{Op: op, Path: s.path, Err: fmt.Errorf("%w: %s", ErrModeMismatch, s.mode)}
	}
	return nil
}

// violate reports a broken precondition and panics.
func (s *Stream) violate(op, msg string) {
	s.logger.Error("contract violation", "op", op, "reason", msg)
	panic(&ContractError{Op: op, Msg: msg})
}

// view resizes b to n if asked and returns its storage, panicking if the
// Buffer hands back less than it promised.
func (s *Stream) view(op string, b Buffer, n int) []byte {
	if b == nil {
		s.violate(op, "nil buffer")
	}
	if n >= 0 {
		b.Resize(n)
	}
	p := b.Bytes()
	if len(p) < b.Len() {
		s.violate(op, fmt.Sprintf("buffer holds %d bytes but reports length %d", len(p), b.Len()))
	}
	return p[:b.Len()]
}
