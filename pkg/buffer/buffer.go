// Package buffer provides the mutable line buffer an editor host hands to the
// import sorter.
package buffer

import (
	"bytes"
)

const (
	LF   = "\n"
	CRLF = "\r\n"
	CR   = "\r"
)

// Buffer is an ordered, mutable sequence of lines. Each line keeps its own
// terminator so unmodified text renders byte for byte.
type Buffer struct {
	lines   []string
	eols    []string // terminator of each line, "" only for an unterminated last line
	newline string   // terminator given to inserted lines
}

// Parse splits src on every line terminator: "\r\n", "\n" or a lone "\r".
// Inserted lines use the first terminator found, "\n" when there is none.
func Parse(src []byte) *Buffer {
	b := &Buffer{}
	text := string(src)

	start := 0
	for i := 0; i < len(text); i++ {
		var eol string
		switch text[i] {
		case '\n':
			eol = LF
		case '\r':
			eol = CR
			if i+1 < len(text) && text[i+1] == '\n' {
				eol = CRLF
			}
		default:
			continue
		}

		b.lines = append(b.lines, text[start:i])
		b.eols = append(b.eols, eol)
		if b.newline == "" {
			b.newline = eol
		}
		i += len(eol) - 1
		start = i + 1
	}

	if start < len(text) {
		b.lines = append(b.lines, text[start:])
		b.eols = append(b.eols, "")
	}
	if b.newline == "" {
		b.newline = LF
	}
	return b
}

// Lines returns the current lines without terminators. The slice is owned
// by the buffer.
func (b *Buffer) Lines() []string {
	return b.lines
}

// Len returns the number of lines
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Replace removes length lines starting at start and inserts lines in their
// place. Out of range spans are clamped to the buffer. When the removed span
// ends an unterminated buffer, the new last line stays unterminated.
func (b *Buffer) Replace(start, length int, lines []string) {
	end := clamp(start+length, 0, len(b.lines))
	start = clamp(start, 0, len(b.lines))
	if end < start {
		end = start
	}
	unterminated := end > start && end == len(b.lines) && b.eols[end-1] == ""

	eols := make([]string, len(lines))
	for i := range eols {
		eols[i] = b.newline
	}

	result := make([]string, 0, len(b.lines)-(end-start)+len(lines))
	result = append(result, b.lines[:start]...)
	result = append(result, lines...)
	result = append(result, b.lines[end:]...)

	resultEols := make([]string, 0, len(result))
	resultEols = append(resultEols, b.eols[:start]...)
	resultEols = append(resultEols, eols...)
	resultEols = append(resultEols, b.eols[end:]...)

	if unterminated && len(resultEols) > 0 {
		resultEols[len(resultEols)-1] = ""
	}
	if start == len(b.lines) && start > 0 && b.eols[start-1] == "" && len(lines) > 0 {
		// appending after an unterminated last line
		resultEols[start-1] = b.newline
		resultEols[len(resultEols)-1] = ""
	}

	b.lines = result
	b.eols = resultEols
}

// Bytes renders the buffer with each line's terminator
func (b *Buffer) Bytes() []byte {
	var buf bytes.Buffer
	for i, line := range b.lines {
		buf.WriteString(line)
		buf.WriteString(b.eols[i])
	}
	return buf.Bytes()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
