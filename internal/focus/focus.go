// Package focus holds the execution markers of groups and examples and the
// rule that decides, once a whole tree is known, which examples run.
package focus

import "fmt"

// Marker is the execution disposition declared on a group or example.
type Marker int

const (
	Default Marker = iota
	Focused
	Ignored
)

func (m Marker) String() string {
	switch m {
	case Default:
		return "default"
	case Focused:
		return "focused"
	case Ignored:
		return "ignored"
	default:
		return fmt.Sprintf("marker(%d)", int(m))
	}
}

// Inherit returns the effective marker of a child group: the closest
// ancestor's non-default marker wins over the child's own one.
func Inherit(parent, own Marker) Marker {
	if parent != Default {
		return parent
	}
	return own
}

// Scope accumulates the markers of a chain of enclosing groups.
type Scope struct {
	Focused bool
	Ignored bool
}

// Enter returns the scope of a group declared with marker m inside s.
func (s Scope) Enter(m Marker) Scope {
	switch m {
	case Focused:
		s.Focused = true
	case Ignored:
		s.Ignored = true
	}
	return s
}

// Resolver applies the focus/ignore rule. Its zero value resolves a tree
// without any focused node.
type Resolver struct {
	focusMode bool
}

// NewResolver returns a resolver for a tree where anyFocused tells whether at
// least one group or example anywhere is focused.
func NewResolver(anyFocused bool) Resolver {
	return Resolver{focusMode: anyFocused}
}

// FocusMode reports whether only focused examples run.
func (r Resolver) FocusMode() bool {
	return r.focusMode
}

// ShouldBeIgnored decides the fate of an example with marker own declared
// inside containers. Focus always beats ignore.
func (r Resolver) ShouldBeIgnored(own Marker, containers Scope) bool {
	if r.focusMode {
		return own != Focused && !containers.Focused
	}
	return own == Ignored || containers.Ignored
}
