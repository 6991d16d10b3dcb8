package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_roundTrip(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		lines   []string
		newline string
	}{
		{"empty", "", nil, LF},
		{"single line no newline", "import UIKit", []string{"import UIKit"}, LF},
		{"trailing newline", "import UIKit\ncode\n", []string{"import UIKit", "code"}, LF},
		{"blank lines kept", "a\n\nb\n\n", []string{"a", "", "b", ""}, LF},
		{"only newline", "\n", []string{""}, LF},
		{"crlf", "import UIKit\r\ncode\r\n", []string{"import UIKit", "code"}, CRLF},
		{"leading newline", "\nimport UIKit", []string{"", "import UIKit"}, LF},
		{"mixed crlf and lf", "import Zoo\r\nimport Foundation\nimport Bar\r\ncode\r\n", []string{"import Zoo", "import Foundation", "import Bar", "code"}, CRLF},
		{"lf first then crlf", "a\nb\r\nc", []string{"a", "b", "c"}, LF},
		{"cr only", "import Zoo\rimport Foundation\r", []string{"import Zoo", "import Foundation"}, CR},
		{"cr blank lines", "a\r\rb", []string{"a", "", "b"}, CR},
		{"cr before crlf", "a\r\r\nb", []string{"a", "", "b"}, CR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			b := Parse([]byte(tt.src))
			req.Equal(tt.lines, b.Lines())
			req.Equal(len(tt.lines), b.Len())
			req.Equal(tt.newline, b.newline)
			req.Equal(tt.src, string(b.Bytes()))
		})
	}
}

func TestBuffer_Replace(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		length int
		lines  []string
		want   []string
	}{
		{"replace middle", 1, 2, []string{"x"}, []string{"a", "x", "d"}},
		{"insert only", 1, 0, []string{"x", "y"}, []string{"a", "x", "y", "b", "c", "d"}},
		{"delete only", 0, 2, nil, []string{"c", "d"}},
		{"replace tail", 3, 1, []string{"x", "y"}, []string{"a", "b", "c", "x", "y"}},
		{"length past end clamped", 2, 10, []string{"x"}, []string{"a", "b", "x"}},
		{"start past end appends", 9, 1, []string{"x"}, []string{"a", "b", "c", "d", "x"}},
		{"negative start clamped", -3, 1, []string{"x"}, []string{"x", "a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			b := Parse([]byte("a\nb\nc\nd\n"))
			b.Replace(tt.start, tt.length, tt.lines)
			req.Equal(tt.want, b.Lines())

			want := ""
			for _, line := range tt.want {
				want += line + "\n"
			}
			req.Equal(want, string(b.Bytes()))
		})
	}
}

func TestBuffer_ReplaceKeepsNewlineStyle(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		start  int
		length int
		lines  []string
		want   string
	}{
		{
			name:   "crlf",
			src:    "import B\r\nimport A\r\ncode\r\n",
			length: 2,
			lines:  []string{"import A", "import B"},
			want:   "import A\r\nimport B\r\ncode\r\n",
		},
		{
			name:   "mixed endings use the first terminator",
			src:    "import Zoo\r\nimport Foundation\nimport Bar\r\ncode\n",
			length: 3,
			lines:  []string{"import Foundation", "", "import Bar", "import Zoo"},
			want:   "import Foundation\r\n\r\nimport Bar\r\nimport Zoo\r\ncode\n",
		},
		{
			name:   "cr only",
			src:    "import Zoo\rimport Foundation\r",
			length: 2,
			lines:  []string{"import Foundation", "", "import Zoo"},
			want:   "import Foundation\r\rimport Zoo\r",
		},
		{
			name:   "unterminated tail stays unterminated",
			src:    "import B\nimport A",
			length: 2,
			lines:  []string{"import A", "import B"},
			want:   "import A\nimport B",
		},
		{
			name:   "untouched lines keep their terminators",
			src:    "// a\r\nimport B\nimport A\n// b\r",
			start:  1,
			length: 2,
			lines:  []string{"import A", "import B"},
			want:   "// a\r\nimport A\r\nimport B\r\n// b\r",
		},
		{
			name:  "append after unterminated line",
			src:   "a\nb",
			start: 2,
			lines: []string{"c"},
			want:  "a\nb\nc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Parse([]byte(tt.src))
			b.Replace(tt.start, tt.length, tt.lines)
			require.Equal(t, tt.want, string(b.Bytes()))
		})
	}
}
