package wiseio

import (
	"fmt"
	"io"

	"github.com/gobeaver/wiseio/metrics"
)

// writeLoop calls write until all of p is written, retrying interrupted
// calls. A call that writes nothing without an error fails with
// io.ErrShortWrite.
func (s *Stream) writeLoop(op string, p []byte, write func(p []byte, done int) (int, error)) (int, error) {
	n := 0
	for n < len(p) {
		c, err := write(p[n:], n)
		if c > 0 {
			n += c
		}
		if err != nil {
			if isInterrupted(err) {
				s.metrics.RecordRetry(op)
				continue
			}
			s.logger.Error("write failed", "op", op, "written", n, "error", err)
			s.metrics.RecordError(op)
			return n, &PathError{Op: op, Path: s.path, Err: err}
		}
		if c == 0 {
			s.logger.Error("write failed", "op", op, "written", n, "error", io.ErrShortWrite)
			s.metrics.RecordError(op)
			return n, &PathError{Op: op, Path: s.path, Err: io.ErrShortWrite}
		}
	}
	s.metrics.RecordWrite(op, n)
	return n, nil
}

func (s *Stream) pwrite(op string, p []byte, off int64) (int, error) {
	return s.writeLoop(op, p, func(q []byte, done int) (int, error) {
		return s.h.f.Pwrite(q, off+int64(done))
	})
}

// AWrite appends p to the end of the file. It needs ModeAppend. The cursor
// is not used.
func (s *Stream) AWrite(p []byte) (int, error) {
	if err := s.check(metrics.OpAWrite, capAppend); err != nil {
		return 0, err
	}
	return s.writeLoop(metrics.OpAWrite, p, func(q []byte, _ int) (int, error) {
		return s.h.f.Write(q)
	})
}

// AWriteBuffer appends the first b.Len() bytes of b.
func (s *Stream) AWriteBuffer(b Buffer) (int, error) {
	if err := s.check(metrics.OpAWrite, capAppend); err != nil {
		return 0, err
	}
	return s.AWrite(s.view(metrics.OpAWrite, b, -1))
}

// AWriteString appends str.
func (s *Stream) AWriteString(str string) (int, error) {
	return s.AWrite([]byte(str))
}

// CWrite writes p at the cursor and advances the cursor by len(p). On error
// the cursor does not move.
func (s *Stream) CWrite(p []byte) (int, error) {
	if err := s.check(metrics.OpCWrite, capWrite); err != nil {
		return 0, err
	}
	n, err := s.pwrite(metrics.OpCWrite, p, s.cursor)
	if err != nil {
		return 0, err
	}
	s.cursor += int64(n)
	return n, nil
}

// CWriteBuffer writes the first b.Len() bytes of b at the cursor.
func (s *Stream) CWriteBuffer(b Buffer) (int, error) {
	if err := s.check(metrics.OpCWrite, capWrite); err != nil {
		return 0, err
	}
	return s.CWrite(s.view(metrics.OpCWrite, b, -1))
}

// CWriteString writes str at the cursor.
func (s *Stream) CWriteString(str string) (int, error) {
	return s.CWrite([]byte(str))
}

// CustomWrite writes p at off without touching the cursor. Writing past the
// end of the file extends it.
func (s *Stream) CustomWrite(p []byte, off int64) (int, error) {
	if err := s.check(metrics.OpCustomWrite, capWrite); err != nil {
		return 0, err
	}
	s.checkOffset(metrics.OpCustomWrite, off)
	return s.pwrite(metrics.OpCustomWrite, p, off)
}

// CustomWriteBuffer writes the first b.Len() bytes of b at off.
func (s *Stream) CustomWriteBuffer(b Buffer, off int64) (int, error) {
	if err := s.check(metrics.OpCustomWrite, capWrite); err != nil {
		return 0, err
	}
	return s.CustomWrite(s.view(metrics.OpCustomWrite, b, -1), off)
}

// CustomWriteString writes str at off.
func (s *Stream) CustomWriteString(str string, off int64) (int, error) {
	return s.CustomWrite([]byte(str), off)
}

// String describes the Stream for logs.
func (s *Stream) String() string {
	return fmt.Sprintf("wiseio.Stream(%s, %s, cursor=%d)", s.path, s.mode, s.cursor)
}
