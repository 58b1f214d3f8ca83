package wiseio

import "fmt"

// Encoding declares how text in a TextBuffer is stored. It only affects
// LogicalLength; no conversion is ever performed.
type Encoding int

const (
	UTF8  Encoding = 1
	UTF16 Encoding = 2
)

// UnitSize returns the number of bytes per storage unit.
func (e Encoding) UnitSize() int {
	if e == UTF16 {
		return 2
	}
	return 1
}

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case UTF16:
		return "utf-16"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}
