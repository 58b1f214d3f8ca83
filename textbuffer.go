package wiseio

import (
	"bytes"
	"fmt"
)

// TextBuffer holds text and splits it into lines, optionally dropping
// comment-only and blank lines.
//
// The buffer stores raw bytes in its declared Encoding; the encoding only
// changes what LogicalLength reports.
type TextBuffer struct {
	data     []byte
	cursor   int
	encoding Encoding

	ignoreComments bool
	ignoreBlank    bool
}

// NewTextBuffer returns a UTF-8 buffer pre-sized to size bytes.
func NewTextBuffer(size int) *TextBuffer {
	if size < 0 {
		panic(&ContractError{Op: "NewTextBuffer", Msg: "negative size"})
	}
	return &TextBuffer{data: make([]byte, size), encoding: UTF8}
}

// Resize sets the buffer length to n. The cursor is clamped to the new length.
func (t *TextBuffer) Resize(n int) {
	t.data = resize(t.data, n)
	if t.cursor > n {
		t.cursor = n
	}
}

// Len returns the length in storage units of one byte.
func (t *TextBuffer) Len() int { return len(t.data) }

// Bytes returns the buffer contents without copying.
func (t *TextBuffer) Bytes() []byte { return t.data }

// String returns the whole buffer as text.
func (t *TextBuffer) String() string { return string(t.data) }

// Append adds s to the end of the buffer.
func (t *TextBuffer) Append(s string) {
	t.data = append(t.data, s...)
}

// Cursor returns the read cursor.
func (t *TextBuffer) Cursor() int { return t.cursor }

// SetCursor moves the read cursor. Positions past Len are rejected.
func (t *TextBuffer) SetCursor(pos int) error {
	if pos < 0 || pos > len(t.data) {
		return fmt.Errorf("%w: cursor %d, buffer length %d", ErrOutOfRange, pos, len(t.data))
	}
	t.cursor = pos
	return nil
}

// HasMore reports whether unread text remains after the cursor.
func (t *TextBuffer) HasMore() bool {
	return t.cursor < len(t.data)
}

// Clear empties the buffer and resets the cursor. Filters and encoding
// are kept.
func (t *TextBuffer) Clear() {
	t.data = make([]byte, 0, 128)
	t.cursor = 0
}

func (t *TextBuffer) SetEncoding(e Encoding) { t.encoding = e }

func (t *TextBuffer) Encoding() Encoding {
	if t.encoding == 0 {
		return UTF8
	}
	return t.encoding
}

// SetIgnoreComments makes NextLine drop comment-only lines and trim
// trailing comments.
func (t *TextBuffer) SetIgnoreComments(on bool) { t.ignoreComments = on }

// SetIgnoreBlank makes NextLine drop empty and whitespace-only lines.
func (t *TextBuffer) SetIgnoreBlank(on bool) { t.ignoreBlank = on }

// LogicalLength approximates the character count as Len divided by the
// encoding's unit size. It does not decode anything.
func (t *TextBuffer) LogicalLength() int {
	return len(t.data) / t.Encoding().UnitSize()
}

// NextLine returns the next line that passes the active filters, without
// its newline. ok is false once the buffer holds no further accepted line.
func (t *TextBuffer) NextLine() (line string, ok bool) {
	for t.HasMore() {
		if line, ok = t.filter(t.readLine()); ok {
			return line, true
		}
	}
	return "", false
}

// readLine collects bytes up to the next '\n' or the end of the buffer and
// moves the cursor past the newline.
func (t *TextBuffer) readLine() string {
	rest := t.data[t.cursor:]
	i := bytes.IndexByte(rest, '\n')
	if i < 0 {
		t.cursor = len(t.data)
		return string(rest)
	}
	t.cursor += i + 1
	return string(rest[:i])
}

// filter applies the blank and comment filters. A rejected line returns ok false.
func (t *TextBuffer) filter(line string) (string, bool) {
	if t.ignoreBlank && isBlank(line) {
		return "", false
	}
	if t.ignoreComments {
		res := scanComment(line)
		if res.commentOnly {
			return "", false
		}
		line = res.line
	}
	return line, true
}
