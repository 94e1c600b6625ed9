// Package tree implements the hierarchical scene graph — root, outputs,
// workspaces, columns and windows — along with the mutators that keep its
// invariants (spec §3.2) and the multi-output lifecycle (spec §4.11).
//
// Back-references are stored as ids.ID rather than pointers (spec §9's
// arena re-architecture note): every entity lives in a Tree's arena maps,
// keyed by its id, and parent/child/workspace links are looked up through
// the Tree rather than followed directly.
package tree

import (
	"fmt"

	"github.com/wlcolm/colmwm/internal/geom"
	"github.com/wlcolm/colmwm/internal/ids"
)

// GeoState is the double-buffered geometry every tiling/floating entity
// carries (spec §3.1 "Double buffering"). Command handlers write Pending;
// the transaction engine (internal/txn) copies Pending into Current once
// every referenced surface has acknowledged its configure.
type GeoState struct {
	Rect         geom.Rect
	TitlebarRect geom.Rect
	Visible      bool
}

// Node is implemented by every arena-resident entity so generic code
// (GetBox, GetParent, SetDirty in spec §9) can dispatch on kind without a
// concrete type switch.
type Node interface {
	NodeID() ids.ID
	NodeKind() ids.Kind
}

// Tree owns every entity in the scene graph. It is not safe for concurrent
// use — per spec §5, the tree is mutated only on the single event-loop
// thread.
type Tree struct {
	gen   ids.Generator
	dirty *ids.DirtySet

	root       *Root
	outputs    map[ids.ID]*Output
	workspaces map[ids.ID]*Workspace
	columns    map[ids.ID]*Column
	windows    map[ids.ID]*Window

	kind map[ids.ID]ids.Kind
}

// New returns an empty tree with its Root and fallback (headless) output
// already created, per spec §3.1 ("Root (exactly one)... a fallback
// output").
func New() *Tree {
	t := &Tree{
		dirty:      ids.NewDirtySet(),
		outputs:    make(map[ids.ID]*Output),
		workspaces: make(map[ids.ID]*Workspace),
		columns:    make(map[ids.ID]*Column),
		windows:    make(map[ids.ID]*Window),
		kind:       make(map[ids.ID]ids.Kind),
	}
	t.root = &Root{id: t.gen.Next(), tree: t}
	t.kind[t.root.id] = ids.KindRoot

	fallback := t.newOutput("__headless")
	fallback.Enabled = false
	t.root.fallback = fallback.id

	return t
}

// DirtySet exposes the tree's dirty-node tracker to the transaction
// engine.
func (t *Tree) DirtySet() *ids.DirtySet { return t.dirty }

// MarkDirty records that id's pending state may differ from current.
func (t *Tree) MarkDirty(id ids.ID) { t.dirty.Mark(id) }

// Root returns the tree's single root entity.
func (t *Tree) Root() *Root { return t.root }

// Kind returns the kind of the entity named by id, or false if id is
// unknown (already destroyed, or never existed).
func (t *Tree) Kind(id ids.ID) (ids.Kind, bool) {
	k, ok := t.kind[id]
	return k, ok
}

// Output looks up an output by id.
func (t *Tree) Output(id ids.ID) *Output { return t.outputs[id] }

// Workspace looks up a workspace by id.
func (t *Tree) Workspace(id ids.ID) *Workspace { return t.workspaces[id] }

// Column looks up a column by id.
func (t *Tree) Column(id ids.ID) *Column { return t.columns[id] }

// Window looks up a window by id.
func (t *Tree) Window(id ids.ID) *Window { return t.windows[id] }

// Outputs returns every live (non-destroying) output, in attach order.
func (t *Tree) Outputs() []*Output {
	out := make([]*Output, 0, len(t.outputs))
	for _, id := range t.root.outputOrder {
		if o := t.outputs[id]; o != nil && !o.destroying {
			out = append(out, o)
		}
	}
	return out
}

// WorkspaceByName returns the workspace with the given name, honoring
// invariant 8 (workspace names are unique process-wide).
func (t *Tree) WorkspaceByName(name string) *Workspace {
	for _, ws := range t.workspaces {
		if ws.Name == name {
			return ws
		}
	}
	return nil
}

// WindowByID returns the window named by id, or nil. Exists alongside
// rootFindWindowByID-style lookups so spec §8.1 I5 ("root_find_window_by_id
// and get_window_by_id agree") is trivially true: both resolve through
// this one map.
func (t *Tree) WindowByID(id ids.ID) *Window {
	w := t.windows[id]
	if w == nil || w.destroying {
		return nil
	}
	return w
}

// GetBox returns the current-committed rectangle of any tiling/floating
// entity, dispatching on kind (spec §9's uniform get_box operation).
func (t *Tree) GetBox(id ids.ID) (geom.Rect, error) {
	switch k, ok := t.kind[id]; k {
	case ids.KindOutput:
		return t.outputs[id].Rect, nil
	case ids.KindWorkspace:
		return t.workspaces[id].Current.Rect, nil
	case ids.KindColumn:
		return t.columns[id].Current.Rect, nil
	case ids.KindWindow:
		return t.windows[id].Current.Rect, nil
	default:
		if !ok {
			return geom.Rect{}, fmt.Errorf("tree: unknown node %d", id)
		}
		return geom.Rect{}, fmt.Errorf("tree: node %d has no box", id)
	}
}

// GetParent returns the immediate parent of id and the parent's kind.
func (t *Tree) GetParent(id ids.ID) (ids.ID, ids.Kind, error) {
	switch k, ok := t.kind[id]; k {
	case ids.KindWindow:
		w := t.windows[id]
		return w.Parent, w.ParentKind, nil
	case ids.KindColumn:
		c := t.columns[id]
		return c.Workspace, ids.KindWorkspace, nil
	case ids.KindWorkspace:
		ws := t.workspaces[id]
		return ws.Output, ids.KindOutput, nil
	case ids.KindOutput:
		return t.root.id, ids.KindRoot, nil
	default:
		if !ok {
			return ids.Nil, 0, fmt.Errorf("tree: unknown node %d", id)
		}
		return ids.Nil, 0, fmt.Errorf("tree: root has no parent")
	}
}
