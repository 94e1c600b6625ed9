// Package ids assigns process-unique identities to tree nodes and tracks
// which ones need re-commit.
package ids

import "sync/atomic"

// ID is a process-unique, monotonically increasing node identity. It never
// repeats for the lifetime of the process, so back-references can store an
// ID instead of a pointer (see spec §9's arena re-architecture note).
type ID uint64

// Nil is never returned by Generator.Next and may be used as a "no node"
// sentinel in back-reference fields.
const Nil ID = 0

// Generator hands out unique IDs. The zero value is ready to use.
type Generator struct {
	next atomic.Uint64
}

// Next returns a fresh ID, starting at 1.
func (g *Generator) Next() ID {
	return ID(g.next.Add(1))
}

// Kind tags which entity an ID names, so generic code (get_box,
// get_parent, set_dirty in spec §9) can dispatch on it without a type
// switch over concrete pointers.
type Kind uint8

const (
	KindRoot Kind = iota
	KindOutput
	KindWorkspace
	KindColumn
	KindWindow
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindOutput:
		return "output"
	case KindWorkspace:
		return "workspace"
	case KindColumn:
		return "column"
	case KindWindow:
		return "window"
	default:
		return "unknown"
	}
}
