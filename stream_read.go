package wiseio

import (
	"fmt"

	"github.com/gobeaver/wiseio/metrics"
)

// pread fills p from off, retrying interrupted calls and continuing after
// short reads. It stops early only at end of file (eof true) or on a hard
// error.
func (s *Stream) pread(op string, p []byte, off int64) (n int, eof bool, err error) {
	for n < len(p) {
		c, rerr := s.h.f.Pread(p[n:], off+int64(n))
		if c > 0 {
			n += c
		}
		if rerr != nil {
			if isInterrupted(rerr) {
				s.metrics.RecordRetry(op)
				continue
			}
			s.logger.Error("read failed", "op", op, "offset", off+int64(n), "error", rerr)
			s.metrics.RecordError(op)
			return n, false, &PathError{Op: op, Path: s.path, Err: rerr}
		}
		if c == 0 {
			s.logger.Debug("end of file reached", "op", op, "offset", off+int64(n))
			eof = true
			break
		}
	}
	s.metrics.RecordRead(op, n)
	return n, eof, nil
}

// CRead reads up to len(p) bytes at the cursor and advances the cursor by
// the count read. A count below len(p) means the end of the file was
// reached; EOF then reports true and later calls return 0 without touching
// the file. On error the cursor is left where it was and 0 is returned.
func (s *Stream) CRead(p []byte) (int, error) {
	if err := s.check(metrics.OpCRead, capRead); err != nil {
		return 0, err
	}
	if s.eof {
		return 0, nil
	}
	return s.cread(p)
}

func (s *Stream) cread(p []byte) (int, error) {
	n, eof, err := s.pread(metrics.OpCRead, p, s.cursor)
	if err != nil {
		return 0, err
	}
	s.cursor += int64(n)
	if eof {
		s.eof = true
	}
	return n, nil
}

// CReadBuffer reads into b at the cursor, up to b.Len() bytes. An empty b
// is first grown to the stream's chunk size. Afterwards b is resized to the
// number of bytes read.
func (s *Stream) CReadBuffer(b Buffer) (int, error) {
	if err := s.check(metrics.OpCRead, capRead); err != nil {
		return 0, err
	}
	if b == nil {
		s.violate(metrics.OpCRead, "nil buffer")
	}
	if s.eof {
		return 0, nil
	}

	p := s.view(metrics.OpCRead, b, s.targetLen(b))
	n, err := s.cread(p)
	if err != nil {
		return 0, err
	}
	b.Resize(n)
	return n, nil
}

// CReadString reads up to n bytes at the cursor and returns them as text.
func (s *Stream) CReadString(n int) (string, error) {
	if n < 0 {
		s.violate(metrics.OpCRead, fmt.Sprintf("negative length %d", n))
	}
	p := make([]byte, n)
	got, err := s.CRead(p)
	if err != nil {
		return "", err
	}
	return string(p[:got]), nil
}

// CustomRead reads up to len(p) bytes at off. The cursor and the EOF flag
// are neither used nor changed; a count below len(p) means off+count is the
// end of the file.
func (s *Stream) CustomRead(p []byte, off int64) (int, error) {
	if err := s.check(metrics.OpCustomRead, capRead); err != nil {
		return 0, err
	}
	s.checkOffset(metrics.OpCustomRead, off)

	n, _, err := s.pread(metrics.OpCustomRead, p, off)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// CustomReadBuffer reads into b at off, up to b.Len() bytes (the chunk size
// for an empty b), then resizes b to the count read.
func (s *Stream) CustomReadBuffer(b Buffer, off int64) (int, error) {
	if err := s.check(metrics.OpCustomRead, capRead); err != nil {
		return 0, err
	}
	s.checkOffset(metrics.OpCustomRead, off)

	p := s.view(metrics.OpCustomRead, b, s.targetLen(b))
	n, _, err := s.pread(metrics.OpCustomRead, p, off)
	if err != nil {
		return 0, err
	}
	b.Resize(n)
	return n, nil
}

// CustomReadString reads up to n bytes at off and returns them as text.
func (s *Stream) CustomReadString(off int64, n int) (string, error) {
	if n < 0 {
		s.violate(metrics.OpCustomRead, fmt.Sprintf("negative length %d", n))
	}
	p := make([]byte, n)
	got, err := s.CustomRead(p, off)
	if err != nil {
		return "", err
	}
	return string(p[:got]), nil
}

// ReadAll returns the whole file. It needs ModeRead or ModeReadAndWrite and
// does not move the cursor.
func (s *Stream) ReadAll() ([]byte, error) {
	b := NewByteBuffer(0)
	if _, err := s.ReadAllBuffer(b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// ReadAllBuffer sizes b to the file, reads the file from offset 0 into it
// and trims b to the count read.
func (s *Stream) ReadAllBuffer(b Buffer) (int, error) {
	if err := s.check(metrics.OpReadAll, capReadAll); err != nil {
		return 0, err
	}
	size, err := s.Size()
	if err != nil {
		return 0, err
	}

	p := s.view(metrics.OpReadAll, b, int(size))
	n, _, err := s.pread(metrics.OpReadAll, p, 0)
	if err != nil {
		return 0, err
	}
	b.Resize(n)
	return n, nil
}

// ReadAllString returns the whole file as text.
func (s *Stream) ReadAllString() (string, error) {
	data, err := s.ReadAll()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// targetLen is the read size for b: its length, or the chunk size when empty.
func (s *Stream) targetLen(b Buffer) int {
	if b == nil {
		return -1
	}
	if n := b.Len(); n > 0 {
		return n
	}
	return s.chunk
}

func (s *Stream) checkOffset(op string, off int64) {
	if off < 0 {
		s.violate(op, fmt.Sprintf("%v %d", ErrInvalidOffset, off))
	}
}
