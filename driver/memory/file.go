package memory

import (
	"os"
	"syscall"
	"time"

	"github.com/gobeaver/wiseio"
)

// handle is one open file. Like a descriptor it keeps working on the
// stored bytes even if the path is truncated by another open.
type handle struct {
	a      *Adapter
	path   string
	mode   wiseio.OpenMode
	closed bool
}

func (h *handle) canRead() bool {
	return h.mode == wiseio.ModeRead || h.mode == wiseio.ModeReadAndWrite
}

func (h *handle) canWrite() bool {
	return h.mode != wiseio.ModeRead
}

// fault applies the path's fault to one call and returns the byte cap for
// it. Must be called with lock held.
func (h *handle) fault(fail func(*Fault) error) (int, error) {
	f, ok := h.a.faults[h.path]
	if !ok {
		return 0, nil
	}
	if f.Interrupts > 0 {
		f.Interrupts--
		return 0, syscall.EINTR
	}
	if err := fail(f); err != nil {
		return 0, err
	}
	return f.MaxTransfer, nil
}

// Pread implements wiseio.File
func (h *handle) Pread(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, syscall.EINVAL
	}

	h.a.mu.Lock()
	defer h.a.mu.Unlock()

	if h.closed {
		return 0, syscall.EBADF
	}
	if !h.canRead() {
		return 0, syscall.EBADF
	}
	limit, err := h.fault(func(f *Fault) error { return f.FailReads })
	if err != nil {
		return 0, err
	}

	file := h.a.files[h.path]
	if file == nil || off >= int64(len(file.content)) {
		return 0, nil
	}
	if limit > 0 && len(p) > limit {
		p = p[:limit]
	}
	return copy(p, file.content[off:]), nil
}

// Pwrite implements wiseio.File
func (h *handle) Pwrite(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, syscall.EINVAL
	}

	h.a.mu.Lock()
	defer h.a.mu.Unlock()

	return h.writeAt(p, off)
}

// Write implements wiseio.File. Every write lands at the current end of
// the file.
func (h *handle) Write(p []byte) (int, error) {
	h.a.mu.Lock()
	defer h.a.mu.Unlock()

	var end int64
	if file := h.a.files[h.path]; file != nil {
		end = int64(len(file.content))
	}
	return h.writeAt(p, end)
}

// writeAt must be called with lock held.
func (h *handle) writeAt(p []byte, off int64) (int, error) {
	if h.closed {
		return 0, syscall.EBADF
	}
	if !h.canWrite() {
		return 0, syscall.EBADF
	}
	limit, err := h.fault(func(f *Fault) error { return f.FailWrites })
	if err != nil {
		return 0, err
	}
	if limit > 0 && len(p) > limit {
		p = p[:limit]
	}

	file := h.a.files[h.path]
	if file == nil {
		file = &memoryFile{}
		h.a.files[h.path] = file
	}

	end := off + int64(len(p))
	if grow := end - int64(len(file.content)); grow > 0 {
		if h.a.maxSize > 0 && h.a.size+grow > h.a.maxSize {
			return 0, syscall.ENOSPC
		}
		file.content = append(file.content, make([]byte, grow)...)
		h.a.size += grow
	}
	copy(file.content[off:end], p)
	file.modTime = time.Now()
	return len(p), nil
}

// Size implements wiseio.File
func (h *handle) Size() (int64, error) {
	h.a.mu.RLock()
	defer h.a.mu.RUnlock()

	if h.closed {
		return 0, syscall.EBADF
	}
	if file := h.a.files[h.path]; file != nil {
		return int64(len(file.content)), nil
	}
	return 0, nil
}

// Close implements wiseio.File
func (h *handle) Close() error {
	h.a.mu.Lock()
	defer h.a.mu.Unlock()

	if h.closed {
		return os.ErrClosed
	}
	h.closed = true
	return nil
}
