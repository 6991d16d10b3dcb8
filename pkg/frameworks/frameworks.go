// Package frameworks holds the set of system framework names whose imports
// are grouped first.
package frameworks

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Defaults are the Apple platform frameworks recognized when nothing else is configured
var Defaults = []string{"UIKit", "Foundation", "CoreGraphic", "MetalKit", "AVKit", "ARKit"}

// Set is an ordered list of framework name fragments
type Set struct {
	names []string
}

// New creates a Set, dropping blank and duplicate names while keeping order
func New(names ...string) *Set {
	s := &Set{}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || slices.Contains(s.names, name) {
			continue
		}
		s.names = append(s.names, name)
	}
	return s
}

// Match returns the first configured name contained in target
func (s *Set) Match(target string) (string, bool) {
	for _, name := range s.names {
		if strings.Contains(target, name) {
			return name, true
		}
	}
	return "", false
}

// Names returns a copy of the configured names
func (s *Set) Names() []string {
	return slices.Clone(s.names)
}
