package wiseio

import "testing"

func collectLines(b *TextBuffer) []string {
	var lines []string
	for {
		line, ok := b.NextLine()
		if !ok {
			return lines
		}
		lines = append(lines, line)
	}
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNextLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		comments bool
		blank    bool
		want     []string
	}{
		{
			name:  "no trailing newline",
			input: "Line1\nLine2\nLine3",
			want:  []string{"Line1", "Line2", "Line3"},
		},
		{
			name:  "trailing newline",
			input: "a\nb\n",
			want:  []string{"a", "b"},
		},
		{
			name:  "empty buffer",
			input: "",
			want:  nil,
		},
		{
			name:  "blank lines kept without filter",
			input: "a\n\n  \nb",
			want:  []string{"a", "", "  ", "b"},
		},
		{
			name:     "comments",
			input:    "# full comment\nreal # inline\nno#hash\n",
			comments: true,
			want:     []string{"real ", "no#hash"},
		},
		{
			name:  "comments without filter",
			input: "# full comment\nreal # inline\n",
			want:  []string{"# full comment", "real # inline"},
		},
		{
			name:     "indented comment is comment only",
			input:    "\t  # note\nvalue",
			comments: true,
			want:     []string{"value"},
		},
		{
			name:     "hash after tab starts comment",
			input:    "key\t#c",
			comments: true,
			want:     []string{"key\t"},
		},
		{
			name:  "blank filter",
			input: "a\n\n \t\nb\n\n",
			blank: true,
			want:  []string{"a", "b"},
		},
		{
			name:     "filters compose",
			input:    "\n# header\n\nx = 1 # one\n   \n#\ny",
			comments: true,
			blank:    true,
			want:     []string{"x = 1 ", "y"},
		},
		{
			name:     "trailing rejected line",
			input:    "keep\n# dropped",
			comments: true,
			want:     []string{"keep"},
		},
		{
			name:     "comment filter keeps blank lines",
			input:    "a\n\nb",
			comments: true,
			want:     []string{"a", "", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewTextBuffer(0)
			b.Append(tt.input)
			b.SetIgnoreComments(tt.comments)
			b.SetIgnoreBlank(tt.blank)

			got := collectLines(b)
			if !equalLines(got, tt.want) {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
			if b.HasMore() {
				t.Error("expected HasMore false after last line")
			}
		})
	}
}

func TestNextLineHasMore(t *testing.T) {
	b := NewTextBuffer(0)
	b.Append("Line1\nLine2\nLine3")

	for i, want := range []string{"Line1", "Line2", "Line3"} {
		line, ok := b.NextLine()
		if !ok || line != want {
			t.Fatalf("line %d = %q, %v; want %q", i, line, ok, want)
		}
		if wantMore := i < 2; b.HasMore() != wantMore {
			t.Errorf("after line %d HasMore = %v, want %v", i, b.HasMore(), wantMore)
		}
	}
	if line, ok := b.NextLine(); ok || line != "" {
		t.Errorf("expected exhausted buffer, got %q, %v", line, ok)
	}
}

func TestTextBuffer(t *testing.T) {
	t.Run("logical length", func(t *testing.T) {
		b := NewTextBuffer(10)
		if b.Encoding() != UTF8 {
			t.Errorf("expected default encoding utf-8, got %s", b.Encoding())
		}
		if b.LogicalLength() != 10 {
			t.Errorf("expected 10, got %d", b.LogicalLength())
		}
		b.SetEncoding(UTF16)
		if b.LogicalLength() != 5 {
			t.Errorf("expected 5, got %d", b.LogicalLength())
		}
		if b.Len() != 10 {
			t.Errorf("encoding changed Len to %d", b.Len())
		}
	})

	t.Run("zero value behaves as utf-8", func(t *testing.T) {
		var b TextBuffer
		b.Append("abc")
		if b.Encoding() != UTF8 || b.LogicalLength() != 3 {
			t.Errorf("got encoding %s, logical length %d", b.Encoding(), b.LogicalLength())
		}
	})

	t.Run("clear keeps settings", func(t *testing.T) {
		b := NewTextBuffer(0)
		b.SetEncoding(UTF16)
		b.SetIgnoreComments(true)
		b.Append("# x\ny")
		_, _ = b.NextLine()
		b.Clear()

		if b.Len() != 0 || b.Cursor() != 0 {
			t.Errorf("expected empty buffer, got len=%d cursor=%d", b.Len(), b.Cursor())
		}
		b.Append("# a\nb")
		if got := collectLines(b); !equalLines(got, []string{"b"}) {
			t.Errorf("comment filter lost after Clear: %q", got)
		}
		if b.Encoding() != UTF16 {
			t.Errorf("encoding lost after Clear: %s", b.Encoding())
		}
	})

	t.Run("string", func(t *testing.T) {
		b := NewTextBuffer(0)
		b.Append("one\ntwo")
		if b.String() != "one\ntwo" {
			t.Errorf("unexpected String() %q", b.String())
		}
	})

	t.Run("rewind", func(t *testing.T) {
		b := NewTextBuffer(0)
		b.Append("a\nb")
		_ = collectLines(b)
		if err := b.SetCursor(0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := collectLines(b); !equalLines(got, []string{"a", "b"}) {
			t.Errorf("unexpected lines after rewind %q", got)
		}
	})
}

func TestScanComment(t *testing.T) {
	tests := []struct {
		line        string
		want        string
		commentOnly bool
	}{
		{"", "", false},
		{"plain", "plain", false},
		{"#", "", true},
		{"# c", "", true},
		{"   #c", "   ", true},
		{"a #c", "a ", false},
		{"a#c", "a#c", false},
		{"a#b #c", "a#b ", false},
		{"\v#c", "\v", true},
		{"x\r#c", "x\r", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := scanComment(tt.line)
			if got.line != tt.want || got.commentOnly != tt.commentOnly {
				t.Errorf("scanComment(%q) = {%q, %v}, want {%q, %v}",
					tt.line, got.line, got.commentOnly, tt.want, tt.commentOnly)
			}
		})
	}
}

func TestScanStateTransitions(t *testing.T) {
	tests := []struct {
		from scanState
		c    byte
		want scanState
	}{
		{stateSpace, ' ', stateSpace},
		{stateSpace, '#', stateComment},
		{stateSpace, 'a', stateText},
		{stateText, '#', stateText},
		{stateText, '\t', stateSpace},
		{stateText, 'b', stateText},
	}

	for _, tt := range tests {
		if got := tt.from.next(tt.c); got != tt.want {
			t.Errorf("%d.next(%q) = %d, want %d", tt.from, tt.c, got, tt.want)
		}
	}
}
