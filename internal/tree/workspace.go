package tree

import (
	"github.com/wlcolm/colmwm/internal/geom"
	"github.com/wlcolm/colmwm/internal/ids"
)

// SmartGaps controls when outer/inner gaps collapse (spec §4.4).
type SmartGaps int

const (
	SmartGapsOff SmartGaps = iota
	SmartGapsOn
	SmartGapsInverseOuter
)

// Gaps holds a workspace's gap configuration (spec §3.1, §6.1).
type Gaps struct {
	Inner                                        int
	OuterTop, OuterRight, OuterBottom, OuterLeft int
	Smart                                        SmartGaps
}

// Workspace is a named virtual desktop belonging to at most one output at
// a time (spec §3.1).
type Workspace struct {
	id   ids.ID
	tree *Tree

	Name   string
	Output ids.ID // ids.Nil if not yet attached to any output

	columnOrder []ids.ID
	floating    []*Window // back-to-front z-order

	Fullscreen ids.ID // window id, or ids.Nil (invariant 2)

	// ActiveChild names the column or floating window most recently
	// focused within this workspace (spec §4.6 step 2's ancestor
	// active_child propagation, one level up from Column.ActiveChild).
	ActiveChild ids.ID

	Gaps Gaps

	// OutputPriority names outputs this workspace prefers, most-preferred
	// first, consulted during evacuation (spec §3.1, §4.11).
	OutputPriority []string

	Urgent bool

	Pending GeoState
	Current GeoState

	destroying bool
}

func (t *Tree) newWorkspace(name string) *Workspace {
	ws := &Workspace{
		id:   t.gen.Next(),
		tree: t,
		Name: name,
	}
	t.workspaces[ws.id] = ws
	t.kind[ws.id] = ids.KindWorkspace
	return ws
}

// CreateWorkspace returns the workspace named name, creating it if absent
// (spec §8.3: "Creating a workspace whose name is already in use returns
// the existing one; no duplicate.").
func (t *Tree) CreateWorkspace(name string) *Workspace {
	if ws := t.WorkspaceByName(name); ws != nil {
		return ws
	}
	return t.newWorkspace(name)
}

func (ws *Workspace) NodeID() ids.ID     { return ws.id }
func (ws *Workspace) NodeKind() ids.Kind { return ids.KindWorkspace }

// Columns returns the workspace's tiling columns, left to right.
func (ws *Workspace) Columns() []*Column {
	out := make([]*Column, 0, len(ws.columnOrder))
	for _, id := range ws.columnOrder {
		if c := ws.tree.columns[id]; c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Floating returns the workspace's floating windows, back-to-front.
func (ws *Workspace) Floating() []*Window {
	return append([]*Window(nil), ws.floating...)
}

// FullscreenWindow resolves the workspace's fullscreen pointer (invariant
// 2), or nil.
func (ws *Workspace) FullscreenWindow() *Window {
	return ws.tree.windows[ws.Fullscreen]
}

// CountTiledWindows returns how many windows ws holds across its columns,
// used by smart_gaps collapse logic (spec §4.4).
func (ws *Workspace) CountTiledWindows() int {
	n := 0
	for _, c := range ws.Columns() {
		n += len(c.children)
	}
	return n
}

// Empty reports whether the workspace has no columns and no floating
// windows, the precondition for auto-destruction on evacuation (spec
// §3.2 invariant on columns; §4.11 step 2).
func (ws *Workspace) Empty() bool {
	return len(ws.columnOrder) == 0 && len(ws.floating) == 0
}

// effectiveGaps applies the smart_gaps rule of spec §4.4 to the
// workspace's configured gap values, given the visible tiled-window count.
func (ws *Workspace) effectiveGaps(visibleTiled int) Gaps {
	g := ws.Gaps
	switch g.Smart {
	case SmartGapsOn:
		if visibleTiled == 1 {
			return Gaps{}
		}
	case SmartGapsInverseOuter:
		if visibleTiled > 1 {
			g.OuterTop, g.OuterRight, g.OuterBottom, g.OuterLeft = 0, 0, 0, 0
		}
	}
	return g
}

// TilingArea computes the workspace tiling area per spec §4.4: the
// output's usable area, minus outer gaps, further shrunk by inner gaps
// (the inner shrink only applies once, at the workspace boundary; per-
// column/per-row inner gaps are inserted between siblings by the
// arranger, not here).
func (ws *Workspace) TilingArea(usable geom.Rect) geom.Rect {
	g := ws.effectiveGaps(ws.CountTiledWindows())
	r := usable.Shrink(g.OuterTop, g.OuterRight, g.OuterBottom, g.OuterLeft)
	return r.Shrink(g.Inner, g.Inner, g.Inner, g.Inner)
}
