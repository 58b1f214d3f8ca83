// Package memory provides an in-memory wiseio.Driver. Files live for the
// lifetime of the Adapter and survive across opens, so a test can write a
// file through one Stream and read it back through another.
//
// Faults can be attached per path to make the files misbehave the way real
// descriptors do: interrupted calls, hard errors and short transfers.
package memory

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/gobeaver/wiseio"
)

// memoryFile represents a file stored in memory
type memoryFile struct {
	content []byte
	modTime time.Time
}

// Fault describes how calls on one path misbehave.
type Fault struct {
	// Interrupts is the number of calls that fail with EINTR before any
	// real transfer happens. Each interrupted call uses one up.
	Interrupts int

	// FailReads makes every Pread fail with this error.
	FailReads error

	// FailWrites makes every Pwrite and Write fail with this error.
	FailWrites error

	// MaxTransfer caps the bytes moved by a single call (0 = no cap).
	MaxTransfer int
}

// Adapter provides an in-memory implementation of wiseio.Driver
// Useful for testing
type Adapter struct {
	mu      sync.RWMutex
	files   map[string]*memoryFile
	faults  map[string]*Fault
	maxSize int64 // Maximum total storage size (0 = unlimited)
	size    int64 // Current total size
}

// Config holds configuration for the memory adapter
type Config struct {
	// MaxSize is the maximum total storage size in bytes (0 = unlimited)
	MaxSize int64
}

// New creates a new in-memory adapter
func New(cfg ...Config) *Adapter {
	var maxSize int64
	if len(cfg) > 0 {
		maxSize = cfg[0].MaxSize
	}

	return &Adapter{
		files:   make(map[string]*memoryFile),
		faults:  make(map[string]*Fault),
		maxSize: maxSize,
	}
}

// Open implements wiseio.Driver
func (a *Adapter) Open(path string, mode wiseio.OpenMode, _ os.FileMode) (wiseio.File, error) {
	path = normalizePath(path)
	if path == "" || !isValidPath(path) {
		return nil, fs.ErrInvalid
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	file, exists := a.files[path]
	switch mode {
	case wiseio.ModeRead:
		if !exists {
			return nil, fs.ErrNotExist
		}
	case wiseio.ModeWrite:
		if exists {
			a.size -= int64(len(file.content))
			file.content = nil
			file.modTime = time.Now()
		}
	case wiseio.ModeAppend, wiseio.ModeReadAndWrite:
	default:
		return nil, wiseio.ErrInvalidMode
	}

	if !exists {
		file = &memoryFile{modTime: time.Now()}
		a.files[path] = file
	}

	return &handle{a: a, path: path, mode: mode}, nil
}

// SetFault attaches f to path, replacing any earlier fault.
func (a *Adapter) SetFault(path string, f Fault) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.faults[normalizePath(path)] = &f
}

// ClearFault removes the fault attached to path.
func (a *Adapter) ClearFault(path string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.faults, normalizePath(path))
}

// Interrupts returns how many EINTR results are still pending for path.
func (a *Adapter) Interrupts(path string) int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if f, ok := a.faults[normalizePath(path)]; ok {
		return f.Interrupts
	}
	return 0
}

// Contents returns a copy of the bytes stored at path.
func (a *Adapter) Contents(path string) ([]byte, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	file, exists := a.files[normalizePath(path)]
	if !exists {
		return nil, false
	}
	return append([]byte(nil), file.content...), true
}

// WriteFile stores data at path, replacing what was there.
func (a *Adapter) WriteFile(path string, data []byte) error {
	path = normalizePath(path)
	if path == "" || !isValidPath(path) {
		return fs.ErrInvalid
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	var old int64
	if existing, ok := a.files[path]; ok {
		old = int64(len(existing.content))
	}
	newSize := a.size - old + int64(len(data))
	if a.maxSize > 0 && newSize > a.maxSize {
		return syscall.ENOSPC
	}

	a.files[path] = &memoryFile{
		content: append([]byte(nil), data...),
		modTime: time.Now(),
	}
	a.size = newSize
	return nil
}

// Clear removes all files and faults
// Useful for testing cleanup
func (a *Adapter) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.files = make(map[string]*memoryFile)
	a.faults = make(map[string]*Fault)
	a.size = 0
}

// Size returns the current total size of all stored files
func (a *Adapter) Size() int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.size
}

// FileCount returns the number of files stored
func (a *Adapter) FileCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.files)
}

// normalizePath normalizes a file path
func normalizePath(path string) string {
	path = strings.TrimPrefix(filepath.ToSlash(path), "/")
	if path == "" || path == "." {
		return ""
	}
	return filepath.ToSlash(filepath.Clean(path))
}

// isValidPath checks if a path is valid (no directory traversal)
func isValidPath(path string) bool {
	return !strings.Contains(path, "..")
}
