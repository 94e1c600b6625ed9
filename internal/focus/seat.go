// Package focus implements per-seat focus stacks and the ancestor
// active_child propagation of spec §4.6.
package focus

import (
	"github.com/wlcolm/colmwm/internal/events"
	"github.com/wlcolm/colmwm/internal/ids"
	"github.com/wlcolm/colmwm/internal/tree"
)

// Wrapping holds a seat's focus_wrapping setting (no/yes/force, SPEC_FULL
// §C.4). Engine stores it on each Seat from the config; FocusDirection
// does not read it, so focus-direction commands never wrap around.
type Wrapping int

const (
	WrapNo Wrapping = iota
	WrapYes
	WrapForce
)

type stackEntry struct {
	id   ids.ID
	kind ids.Kind
}

// Seat holds one input seat's focus stack (most-recently-focused first)
// and its output of focus-change notifications. Grounded on the
// teacher's per-object Handlers-struct scoping (each proto.Seat owns its
// own callback state) generalized into a plain struct since this seat
// has no wire object of its own to attach callbacks to.
type Seat struct {
	Name     string
	Wrapping Wrapping

	tree  *tree.Tree
	sink  events.Sink
	stack []stackEntry

	// prevWorkspaceName backs the "move to current workspace name ⇒
	// move to previous workspace" auto-back-and-forth heuristic (spec
	// §4.7's "move to workspace", SPEC_FULL §C.1): the name of the
	// workspace the seat was focused on immediately before its current
	// one.
	prevWorkspaceName string
}

// PreviousWorkspaceName returns the name of the workspace the seat was
// focused on immediately before its current one, or "" if none.
func (s *Seat) PreviousWorkspaceName() string {
	return s.prevWorkspaceName
}

// NewSeat returns a seat with an empty focus stack.
func NewSeat(name string, t *tree.Tree, sink events.Sink) *Seat {
	if sink == nil {
		sink = events.Discard{}
	}
	return &Seat{Name: name, tree: t, sink: sink}
}

// FocusedWindow returns the topmost live window on the stack, or nil if
// the stack is empty or its top is a workspace entry (spec §4.6:
// "seat_get_focused_window() returns the top of the stack; if the top is
// a workspace ... the seat's focus is the workspace").
func (s *Seat) FocusedWindow() *tree.Window {
	s.prune()
	if len(s.stack) == 0 || s.stack[0].kind != ids.KindWindow {
		return nil
	}
	return s.tree.WindowByID(s.stack[0].id)
}

// FocusedWorkspace returns the workspace the seat's focus currently
// belongs to: the focused window's workspace, or the top-of-stack
// workspace entry itself, or nil if the stack is empty.
func (s *Seat) FocusedWorkspace() *tree.Workspace {
	s.prune()
	if len(s.stack) == 0 {
		return nil
	}
	top := s.stack[0]
	switch top.kind {
	case ids.KindWindow:
		if w := s.tree.WindowByID(top.id); w != nil {
			return s.tree.Workspace(w.Workspace)
		}
		return nil
	case ids.KindWorkspace:
		return s.tree.Workspace(top.id)
	default:
		return nil
	}
}

// FocusWorkspace pushes ws (with no window focused within it) to the top
// of the stack, used when a workspace is switched to but has no windows
// yet (spec §4.6's "if the top is a workspace ... seat's focus is the
// workspace").
func (s *Seat) FocusWorkspace(ws *tree.Workspace) {
	if ws == nil {
		return
	}
	if prev := s.FocusedWorkspace(); prev != nil && prev.NodeID() != ws.NodeID() {
		s.prevWorkspaceName = prev.Name
	}
	s.removeID(ws.NodeID())
	s.stack = append([]stackEntry{{id: ws.NodeID(), kind: ids.KindWorkspace}}, s.stack...)
}

// prune drops stack entries whose id no longer resolves to a live node
// (destroyed windows/workspaces).
func (s *Seat) prune() {
	out := s.stack[:0]
	for _, e := range s.stack {
		switch e.kind {
		case ids.KindWindow:
			if w := s.tree.WindowByID(e.id); w != nil {
				out = append(out, e)
			}
		case ids.KindWorkspace:
			if s.tree.Workspace(e.id) != nil {
				out = append(out, e)
			}
		}
	}
	s.stack = out
}

func (s *Seat) removeID(id ids.ID) {
	out := s.stack[:0]
	for _, e := range s.stack {
		if e.id != id {
			out = append(out, e)
		}
	}
	s.stack = out
}

// RemoveWindow drops w from the focus stack (called by the engine right
// before a window is destroyed).
func (s *Seat) RemoveWindow(w *tree.Window) {
	if w == nil {
		return
	}
	s.removeID(w.NodeID())
}
