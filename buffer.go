package wiseio

import "fmt"

// Buffer is the narrow view a Stream has of caller-owned storage.
// ByteBuffer and TextBuffer both implement it.
type Buffer interface {
	// Resize sets the logical length to n, truncating or extending.
	// Content added by extension is unspecified.
	Resize(n int)

	// Len returns the logical length.
	Len() int

	// Bytes returns the backing storage, exactly Len() bytes long.
	// The slice is only valid until the next Resize.
	Bytes() []byte
}

var (
	_ Buffer = (*ByteBuffer)(nil)
	_ Buffer = (*TextBuffer)(nil)
)

// ByteBuffer is a growable byte sequence with a read cursor used for
// sequential extraction. The cursor is independent of any Stream cursor.
type ByteBuffer struct {
	data   []byte
	cursor int
}

// NewByteBuffer returns a buffer pre-sized to size bytes.
func NewByteBuffer(size int) *ByteBuffer {
	if size < 0 {
		panic(&ContractError{Op: "NewByteBuffer", Msg: "negative size"})
	}
	return &ByteBuffer{data: make([]byte, size)}
}

// Resize sets the buffer length to n. The cursor is clamped to the new length.
func (b *ByteBuffer) Resize(n int) {
	b.data = resize(b.data, n)
	if b.cursor > n {
		b.cursor = n
	}
}

// Len returns the number of bytes in the buffer.
func (b *ByteBuffer) Len() int { return len(b.data) }

// Bytes returns the buffer contents without copying.
func (b *ByteBuffer) Bytes() []byte { return b.data }

// Append adds p to the end of the buffer.
func (b *ByteBuffer) Append(p []byte) {
	b.data = append(b.data, p...)
}

// Cursor returns the read cursor.
func (b *ByteBuffer) Cursor() int { return b.cursor }

// SetCursor moves the read cursor. Positions past Len are rejected.
func (b *ByteBuffer) SetCursor(pos int) error {
	if pos < 0 || pos > len(b.data) {
		return fmt.Errorf("%w: cursor %d, buffer length %d", ErrOutOfRange, pos, len(b.data))
	}
	b.cursor = pos
	return nil
}

// HasMore reports whether unread bytes remain after the cursor.
func (b *ByteBuffer) HasMore() bool {
	return b.cursor < len(b.data)
}

// ReadSlice returns a copy of up to n bytes from the cursor and advances
// past them. A short or empty result means the buffer is exhausted.
func (b *ByteBuffer) ReadSlice(n int) []byte {
	if n < 0 {
		panic(&ContractError{Op: "ReadSlice", Msg: "negative length"})
	}
	end := min(b.cursor+n, len(b.data))
	out := make([]byte, end-b.cursor)
	copy(out, b.data[b.cursor:end])
	b.cursor = end
	return out
}

// Clear empties the buffer and resets the cursor.
func (b *ByteBuffer) Clear() {
	b.data = nil
	b.cursor = 0
}

// resize grows or shrinks s to n, reusing capacity where possible.
func resize(s []byte, n int) []byte {
	if n < 0 {
		panic(&ContractError{Op: "Resize", Msg: "negative size"})
	}
	if n <= cap(s) {
		return s[:n]
	}
	grown := make([]byte, n)
	copy(grown, s)
	return grown
}
