// Package sorter locates the import block of a source file and rewrites it
// as grouped, sorted sections.
package sorter

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/siyuan-infoblox/swift-imports-group/pkg/frameworks"
)

const (
	// ImportToken is the prefix that marks a normalized line as an import
	ImportToken = "import "
	// DefaultInterfaceSuffix marks interface-only modules
	DefaultInterfaceSuffix = "Interfaces"
)

// FrameworkMatcher reports whether an import target is a system framework
type FrameworkMatcher interface {
	Match(target string) (string, bool)
}

type Config struct {
	Frameworks         FrameworkMatcher // recognized framework names, defaults to frameworks.Defaults
	InterfaceSuffix    string           // suffix of interface modules, defaults to DefaultInterfaceSuffix
	CollapseBlankLines bool             // only separate non-empty neighbouring groups
}

// Sorter groups and sorts import blocks
type Sorter struct {
	config Config
}

// New creates a Sorter, filling unset fields of config with defaults
func New(config Config) *Sorter {
	if config.Frameworks == nil {
		config.Frameworks = frameworks.New(frameworks.Defaults...)
	}
	if config.InterfaceSuffix == "" {
		config.InterfaceSuffix = DefaultInterfaceSuffix
	}
	return &Sorter{config: config}
}

// Normalize collapses whitespace runs to a single space and trims the line
func Normalize(line string) string {
	return strings.Join(strings.Fields(line), " ")
}

// IsImport checks if a normalized line is an import statement
func IsImport(normalized string) bool {
	return strings.HasPrefix(normalized, ImportToken)
}

// Locate finds the contiguous import block, interior blank lines included.
// Scanning stops at the first line that is neither blank nor an import once
// the block has started.
func Locate(lines []string) Range {
	state := NotStarted
	first, last := 0, 0

	for i := 0; i < len(lines) && state != Ended; i++ {
		normalized := Normalize(lines[i])
		switch {
		case IsImport(normalized):
			if state == NotStarted {
				first = i
				state = Started
			}
			last = i
		case normalized == "":
		case state == Started:
			state = Ended
		}
	}

	if state == NotStarted {
		return Range{}
	}
	return Range{Start: first, Length: last - first + 1}
}

// Extract returns the normalized, non-blank lines covered by r
func Extract(lines []string, r Range) []string {
	var imports []string
	for _, line := range lines[r.Start:r.End()] {
		if normalized := Normalize(line); normalized != "" {
			imports = append(imports, normalized)
		}
	}
	return imports
}

// Classify determines which bucket a normalized import line belongs to
func (s *Sorter) Classify(line string) Bucket {
	target := strings.TrimPrefix(line, ImportToken)
	if _, ok := s.config.Frameworks.Match(target); ok {
		return FrameworkBucket
	}
	if strings.HasSuffix(line, s.config.InterfaceSuffix) {
		return InterfaceBucket
	}
	return NormalBucket
}

// Group classifies the import lines and sorts each bucket
func (s *Sorter) Group(lines []string) Groups {
	var groups Groups
	for _, line := range lines {
		switch s.Classify(line) {
		case FrameworkBucket:
			groups.Framework = append(groups.Framework, line)
		case InterfaceBucket:
			groups.Interface = append(groups.Interface, line)
		default:
			groups.Normal = append(groups.Normal, line)
		}
	}

	slices.Sort(groups.Framework)
	slices.Sort(groups.Normal)
	slices.Sort(groups.Interface)
	return groups
}

// Lines regenerates the import block. Unless collapse is set, the separator
// before the interface group is emitted whenever that group is non-empty,
// even right after the framework separator.
func (g Groups) Lines(collapse bool) []string {
	lines := make([]string, 0, g.Count()+2)
	lines = append(lines, g.Framework...)

	if len(g.Framework) > 0 && (len(g.Normal) > 0 || len(g.Interface) > 0) {
		if !collapse || len(g.Normal) > 0 {
			lines = append(lines, "")
		}
	}

	lines = append(lines, g.Normal...)

	if len(g.Interface) > 0 {
		if !collapse || len(lines) > 0 {
			lines = append(lines, "")
		}
	}

	return append(lines, g.Interface...)
}

// Plan computes the edit that sorts the import block of lines without
// modifying them. It returns false when there is no import block.
func (s *Sorter) Plan(lines []string) (Edit, bool) {
	r := Locate(lines)
	if r.Empty() {
		return Edit{}, false
	}

	groups := s.Group(Extract(lines, r))
	return Edit{Range: r, Lines: groups.Lines(s.config.CollapseBlankLines)}, true
}

// Sort returns a copy of lines with the import block grouped and sorted
func (s *Sorter) Sort(lines []string) []string {
	edit, ok := s.Plan(lines)
	if !ok {
		return slices.Clone(lines)
	}
	return Apply(lines, edit)
}

// SortInPlace rewrites the import block of buf
func (s *Sorter) SortInPlace(buf *[]string) {
	if edit, ok := s.Plan(*buf); ok {
		*buf = Apply(*buf, edit)
	}
}

// Apply returns a new slice with the edit range of lines replaced
func Apply(lines []string, edit Edit) []string {
	result := make([]string, 0, len(lines)-edit.Range.Length+len(edit.Lines))
	result = append(result, lines[:edit.Range.Start]...)
	result = append(result, edit.Lines...)
	return append(result, lines[edit.Range.End():]...)
}
