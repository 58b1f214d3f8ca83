package wiseio

import "fmt"

// OpenMode selects how a Stream opens its file. It is fixed for the
// lifetime of the Stream.
type OpenMode int

const (
	// ModeRead opens an existing file read-only.
	ModeRead OpenMode = iota
	// ModeWrite opens for writing, creating the file and truncating it.
	ModeWrite
	// ModeAppend opens for appending, creating the file if needed.
	ModeAppend
	// ModeReadAndWrite opens for reading and writing, creating the file if needed.
	ModeReadAndWrite
)

var modeNames = [...]string{
	ModeRead:         "read",
	ModeWrite:        "write",
	ModeAppend:       "append",
	ModeReadAndWrite: "read_write",
}

func (m OpenMode) String() string {
	if !m.valid() {
		return fmt.Sprintf("OpenMode(%d)", int(m))
	}
	return modeNames[m]
}

func (m OpenMode) valid() bool {
	return m >= ModeRead && m <= ModeReadAndWrite
}

// ParseOpenMode converts a mode name ("read", "write", "append",
// "read_write") into an OpenMode.
func ParseOpenMode(s string) (OpenMode, error) {
	for m, name := range modeNames {
		if name == s {
			return OpenMode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// capability is a set of operation classes a mode permits.
type capability uint8

const (
	capRead capability = 1 << iota
	capReadAll
	capAppend
	capWrite
)

var modeCapabilities = [...]capability{
	ModeRead:         capRead | capReadAll,
	ModeWrite:        capWrite,
	ModeAppend:       capAppend,
	ModeReadAndWrite: capRead | capReadAll | capWrite,
}

// allows reports whether the mode permits every class in c.
func (m OpenMode) allows(c capability) bool {
	if !m.valid() {
		return false
	}
	return modeCapabilities[m]&c == c
}
