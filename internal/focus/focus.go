package focus

import (
	"github.com/wlcolm/colmwm/internal/events"
	"github.com/wlcolm/colmwm/internal/ids"
	"github.com/wlcolm/colmwm/internal/tree"
)

// SetFocusWindow implements spec §4.6's four-step focus-set: ancestor
// active_child propagation, event emission, and invariant-4 sticky
// reparenting when the focused workspace changes.
func (s *Seat) SetFocusWindow(w *tree.Window) {
	if w == nil || w.Destroying() {
		return
	}
	prevWs := s.FocusedWorkspace()

	s.propagateActiveChild(w)

	s.removeID(w.NodeID())
	s.stack = append([]stackEntry{{id: w.NodeID(), kind: ids.KindWindow}}, s.stack...)

	ws := s.tree.Workspace(w.Workspace)
	s.sink.Emit(events.Event{Kind: events.KindWindowFocus, WindowID: w.NodeID(), WorkspaceID: w.Workspace})

	if ws != nil && (prevWs == nil || prevWs.NodeID() != ws.NodeID()) {
		old := ids.Nil
		if prevWs != nil {
			old = prevWs.NodeID()
			s.prevWorkspaceName = prevWs.Name
		}
		s.sink.Emit(events.Event{Kind: events.KindWorkspaceFocus, WorkspaceID: ws.NodeID(), OldWorkspaceID: old})

		// Step 4: switching which workspace is active on ws's output
		// reparents any sticky floating windows left behind on that
		// output's previously active workspace (invariant 4).
		// SetActiveWorkspace performs the reparenting itself and is a
		// no-op if ws was already active.
		if out := s.tree.Output(ws.Output); out != nil {
			out.SetActiveWorkspace(ws)
		}
	}
}

// propagateActiveChild implements spec §4.6 step 2: column, then
// workspace, then output each get their active_child pointer updated
// toward w.
func (s *Seat) propagateActiveChild(w *tree.Window) {
	if w.IsTiling() {
		if col := w.Column(); col != nil {
			col.ActiveChild = w.NodeID()
			s.tree.MarkDirty(col.NodeID())
			if ws := s.tree.Workspace(col.Workspace); ws != nil {
				ws.ActiveChild = col.NodeID()
			}
		}
	} else if ws := s.tree.Workspace(w.Workspace); ws != nil {
		ws.ActiveChild = w.NodeID()
	}
}

// SetUrgent sets w's urgency and bubbles workspace urgency per spec
// §4.6's closing paragraph: a workspace is urgent iff any descendant
// window is urgent.
func (s *Seat) SetUrgent(t *tree.Tree, w *tree.Window, urgent bool) {
	if w == nil || !w.UrgentAllowed && urgent {
		return
	}
	if w.Urgent == urgent {
		return
	}
	w.Urgent = urgent
	s.sink.Emit(events.Event{Kind: events.KindWindowUrgent, WindowID: w.NodeID()})

	ws := t.Workspace(w.Workspace)
	if ws == nil {
		return
	}
	nowUrgent := workspaceHasUrgentWindow(ws)
	if nowUrgent != ws.Urgent {
		ws.Urgent = nowUrgent
		s.sink.Emit(events.Event{Kind: events.KindWorkspaceUrgent, WorkspaceID: ws.NodeID()})
	}
}

func workspaceHasUrgentWindow(ws *tree.Workspace) bool {
	for _, c := range ws.Columns() {
		for _, w := range c.Children() {
			if w.Urgent {
				return true
			}
		}
	}
	for _, w := range ws.Floating() {
		if w.Urgent {
			return true
		}
	}
	return false
}
