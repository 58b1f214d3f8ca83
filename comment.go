package wiseio

// scanState is the state of the comment scanner while it walks a line.
type scanState int

const (
	// stateSpace: at the start of the line or just after whitespace.
	// A '#' here opens a comment.
	stateSpace scanState = iota
	// stateText: just after an ordinary character. A '#' here is text.
	stateText
	// stateComment is terminal; the rest of the line is not data.
	stateComment
)

func (s scanState) next(c byte) scanState {
	switch {
	case isSpace(c):
		return stateSpace
	case c == '#' && s == stateSpace:
		return stateComment
	default:
		return stateText
	}
}

// commentResult describes what the scanner found in a line.
type commentResult struct {
	line        string // line with any comment removed
	commentOnly bool   // a comment marker with no content before it
}

// scanComment locates the first comment marker in line, a '#' at the start
// of the line or after whitespace.
func scanComment(line string) commentResult {
	state := stateSpace
	content := false

	for i := 0; i < len(line); i++ {
		state = state.next(line[i])
		switch state {
		case stateComment:
			return commentResult{line: line[:i], commentOnly: !content}
		case stateText:
			content = true
		}
	}
	return commentResult{line: line}
}

// isBlank reports whether line is empty or whitespace only.
func isBlank(line string) bool {
	for i := 0; i < len(line); i++ {
		if !isSpace(line[i]) {
			return false
		}
	}
	return true
}

// isSpace matches the C isspace set.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
