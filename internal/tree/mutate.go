package tree

import (
	"fmt"

	"github.com/wlcolm/colmwm/internal/ids"
)

// Direction is a tiling-relative direction, used by move-from-direction
// (spec §4.2) and by the command/focus layers for directional navigation.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// NewColumnInWorkspace creates an empty column and attaches it to ws at
// index, normalizing sibling width fractions (spec §4.2's "attach column
// to workspace" contract).
func (t *Tree) NewColumnInWorkspace(ws *Workspace, index int) *Column {
	c := t.newColumn(ws)
	_ = t.AttachColumnToWorkspace(c, ws, index)
	return c
}

// AttachColumnToWorkspace inserts col into ws's column list at index,
// detaching it from any prior workspace first. Mirrors the "attach window
// to column" contract in spec §4.2 at one level up the tree.
func (t *Tree) AttachColumnToWorkspace(col *Column, ws *Workspace, index int) error {
	if col == nil || ws == nil {
		return fmt.Errorf("tree: AttachColumnToWorkspace: nil column or workspace")
	}
	if t.workspaces[col.Workspace] != nil {
		t.detachColumnFromWorkspace(col)
	}

	col.Workspace = ws.id
	if index < 0 || index > len(ws.columnOrder) {
		index = len(ws.columnOrder)
	}
	ws.columnOrder = append(ws.columnOrder, ids.Nil)
	copy(ws.columnOrder[index+1:], ws.columnOrder[index:])
	ws.columnOrder[index] = col.id

	for _, w := range col.Children() {
		w.Workspace = ws.id
	}
	t.normalizeColumnWidthFracs(ws)

	t.MarkDirty(ws.id)
	t.MarkDirty(col.id)
	return nil
}

func (t *Tree) detachColumnFromWorkspace(col *Column) {
	ws := t.workspaces[col.Workspace]
	if ws == nil {
		return
	}
	for i, id := range ws.columnOrder {
		if id == col.id {
			ws.columnOrder = append(ws.columnOrder[:i], ws.columnOrder[i+1:]...)
			break
		}
	}
	t.normalizeColumnWidthFracs(ws)
	t.MarkDirty(ws.id)
}

// normalizeColumnWidthFracs rescales a workspace's column width fractions
// to sum to 1.0, handing a newly-placed zero-fraction column the average
// of the others first (invariant 5, spec §4.4).
func (t *Tree) normalizeColumnWidthFracs(ws *Workspace) {
	cols := ws.Columns()
	n := len(cols)
	if n == 0 {
		return
	}
	var sumKnown float64
	var zeroCount int
	for _, c := range cols {
		if c.WidthFrac <= 0 {
			zeroCount++
		} else {
			sumKnown += c.WidthFrac
		}
	}
	if zeroCount > 0 {
		avg := 1.0 / float64(n)
		if sumKnown > 0 && zeroCount < n {
			avg = sumKnown / float64(n-zeroCount)
		}
		for _, c := range cols {
			if c.WidthFrac <= 0 {
				c.WidthFrac = avg
			}
		}
	}
	var total float64
	for _, c := range cols {
		total += c.WidthFrac
	}
	if total <= 0 {
		return
	}
	for _, c := range cols {
		c.WidthFrac /= total
	}
}

// AttachWindowToColumn detaches win from its prior parent, inserts it into
// col at index, updates its cached Workspace back-reference, and
// normalizes the new siblings' height fractions (spec §4.2). It never
// silently no-ops: a nil window or column is reported as an error rather
// than ignored.
func (t *Tree) AttachWindowToColumn(win *Window, col *Column, index int) error {
	if win == nil || col == nil {
		return fmt.Errorf("tree: AttachWindowToColumn: nil window or column")
	}
	t.detachWindowFromParent(win)

	win.Parent = col.id
	win.ParentKind = ids.KindColumn
	win.Workspace = col.Workspace

	if index < 0 || index > len(col.children) {
		index = len(col.children)
	}
	col.children = append(col.children, ids.Nil)
	copy(col.children[index+1:], col.children[index:])
	col.children[index] = win.id

	if col.ActiveChild == ids.Nil {
		col.ActiveChild = win.id
	}
	col.normalizeHeightFracs()

	t.MarkDirty(col.id)
	t.MarkDirty(win.id)
	return nil
}

// detachWindowFromParent removes win from whichever column or workspace
// floating-list currently owns it, without attaching it anywhere else.
func (t *Tree) detachWindowFromParent(win *Window) {
	switch win.ParentKind {
	case ids.KindColumn:
		col := t.columns[win.Parent]
		if col == nil {
			break
		}
		for i, id := range col.children {
			if id == win.id {
				col.children = append(col.children[:i], col.children[i+1:]...)
				break
			}
		}
		if col.ActiveChild == win.id {
			col.ActiveChild = ids.Nil
			if len(col.children) > 0 {
				col.ActiveChild = col.children[0]
			}
		}
		col.normalizeHeightFracs()
		t.MarkDirty(col.id)
		t.ConsiderDestroyColumn(col)
	case ids.KindWorkspace:
		ws := t.workspaces[win.Parent]
		if ws == nil {
			break
		}
		for i, w := range ws.floating {
			if w.id == win.id {
				ws.floating = append(ws.floating[:i], ws.floating[i+1:]...)
				break
			}
		}
		if ws.Fullscreen == win.id {
			ws.Fullscreen = ids.Nil
		}
		t.MarkDirty(ws.id)
	}
	win.Parent = ids.Nil
	win.ParentKind = 0
}

// reparentFloating moves a floating window directly to a new workspace's
// floating list, preserving its FloatingRect (used for sticky windows
// following an output's active-workspace switch, invariant 4).
func (t *Tree) reparentFloating(win *Window, ws *Workspace) {
	t.detachWindowFromParent(win)
	win.Parent = ws.id
	win.ParentKind = ids.KindWorkspace
	win.Workspace = ws.id
	ws.floating = append(ws.floating, win)
	t.MarkDirty(ws.id)
	t.MarkDirty(win.id)
}

// AttachWindowFloating appends win to ws's floating z-order (front, i.e.
// end of the back-to-front slice), detaching it from any previous parent.
func (t *Tree) AttachWindowFloating(win *Window, ws *Workspace) error {
	if win == nil || ws == nil {
		return fmt.Errorf("tree: AttachWindowFloating: nil window or workspace")
	}
	t.reparentFloating(win, ws)
	return nil
}

// MoveWindowToWorkspace implements spec §4.2's "move window to workspace
// W": floating windows are re-parented directly; sticky windows moving
// between workspaces on the same output are rejected; tiling windows are
// appended to focusedColumn if the caller supplies one (the workspace's
// currently-focused column, resolved by internal/focus), else a new
// column is created.
func (t *Tree) MoveWindowToWorkspace(win *Window, ws *Workspace, focusedColumn *Column) error {
	if win == nil || ws == nil {
		return fmt.Errorf("tree: MoveWindowToWorkspace: nil window or workspace")
	}
	if win.IsSticky {
		if srcWs := t.workspaces[win.Workspace]; srcWs != nil && srcWs.Output == ws.Output {
			return fmt.Errorf("tree: sticky windows cannot move to another workspace on the same output")
		}
	}
	if win.IsFloating() {
		t.reparentFloating(win, ws)
		return nil
	}
	if focusedColumn != nil && focusedColumn.Workspace == ws.id && t.columns[focusedColumn.id] == focusedColumn {
		return t.AttachWindowToColumn(win, focusedColumn, len(focusedColumn.children))
	}
	col := t.NewColumnInWorkspace(ws, len(ws.columnOrder))
	return t.AttachWindowToColumn(win, col, 0)
}

// MoveWindowToColumn implements spec §4.2's "move window to column C":
// detach from the prior column, append to C.
func (t *Tree) MoveWindowToColumn(win *Window, col *Column) error {
	return t.AttachWindowToColumn(win, col, len(col.children))
}

// MoveWindowToColumnFromDirection implements spec §4.2's "move window to
// column 'from direction' D": left/right insert at the end, up inserts at
// 0, down inserts at the end.
func (t *Tree) MoveWindowToColumnFromDirection(win *Window, col *Column, dir Direction) error {
	index := len(col.children)
	if dir == DirUp {
		index = 0
	}
	return t.AttachWindowToColumn(win, col, index)
}

// Swap swaps the tree positions and floating geometry of a and b,
// possibly across workspaces, restoring fullscreen state for both
// afterward (spec §4.2). It satisfies the L5 round-trip law: swap(a,b)
// twice is the identity.
func (t *Tree) Swap(a, b *Window) error {
	if a == nil || b == nil {
		return fmt.Errorf("tree: Swap: nil window")
	}
	if a.id == b.id {
		return nil
	}

	aFloating, bFloating := a.IsFloating(), b.IsFloating()
	aFS, bFS := a.Fullscreen, b.Fullscreen
	aWasFSOwner := false
	bWasFSOwner := false

	var aWs, bWs *Workspace
	if aWs = t.workspaces[a.Workspace]; aWs != nil && aWs.Fullscreen == a.id {
		aWasFSOwner = true
	}
	if bWs = t.workspaces[b.Workspace]; bWs != nil && bWs.Fullscreen == b.id {
		bWasFSOwner = true
	}

	switch {
	case aFloating && bFloating:
		aRect, bRect := a.FloatingRect, b.FloatingRect
		aWsPtr, bWsPtr := t.workspaces[a.Workspace], t.workspaces[b.Workspace]
		t.reparentFloating(a, bWsPtr)
		t.reparentFloating(b, aWsPtr)
		a.FloatingRect, b.FloatingRect = bRect, aRect

	case !aFloating && !bFloating:
		aCol, bCol := t.columns[a.Parent], t.columns[b.Parent]
		aIdx, bIdx := aCol.IndexOf(a), bCol.IndexOf(b)
		aFrac, bFrac := a.HeightFrac, b.HeightFrac

		// Exchange the child slots in place: detaching first would let
		// ConsiderDestroyColumn free a sole-child column before the other
		// window is attached to it.
		aCol.children[aIdx], bCol.children[bIdx] = b.id, a.id
		if aCol != bCol {
			a.Parent, b.Parent = bCol.id, aCol.id
			a.Workspace, b.Workspace = bCol.Workspace, aCol.Workspace
			if aCol.ActiveChild == a.id {
				aCol.ActiveChild = b.id
			}
			if bCol.ActiveChild == b.id {
				bCol.ActiveChild = a.id
			}
			t.MarkDirty(aCol.id)
			t.MarkDirty(bCol.id)
		}
		a.HeightFrac, b.HeightFrac = bFrac, aFrac

	default:
		// one floating, one tiling: swap their kind of attachment outright.
		floating, tiling := a, b
		if bFloating {
			floating, tiling = b, a
		}
		tilingCol := t.columns[tiling.Parent]
		tilingIdx := tilingCol.IndexOf(tiling)
		floatingWs := t.workspaces[floating.Workspace]
		floatingRect := floating.FloatingRect

		// Attach the floating window first so tilingCol is never empty
		// (and so never destroyed) in between.
		t.AttachWindowToColumn(floating, tilingCol, tilingIdx)
		t.reparentFloating(tiling, floatingWs)
		tiling.FloatingRect = floatingRect
	}

	// Each window takes over its swap partner's original fullscreen mode,
	// mirroring the original's window_set_fullscreen(window2, fs1) /
	// window_set_fullscreen(window1, fs2) (both run unconditionally there,
	// after plain booleans rather than a workspace/global mode enum).
	a.Fullscreen, b.Fullscreen = bFS, aFS

	// A workspace-fullscreen owner also needs its workspace's Fullscreen
	// pointer retargeted at whichever window now carries that mode, since
	// that window has taken the owner's old tree position.
	if aWasFSOwner {
		if ws := t.workspaces[b.Workspace]; ws != nil {
			ws.Fullscreen = b.id
		}
	}
	if bWasFSOwner {
		if ws := t.workspaces[a.Workspace]; ws != nil {
			ws.Fullscreen = a.id
		}
	}

	t.MarkDirty(a.id)
	t.MarkDirty(b.id)
	return nil
}

// ConsiderDestroyColumn destroys col iff it is empty (spec §3.1 invariant:
// "a column with zero children is destroyed by the next commit"). The
// caller is still responsible for ensuring col isn't the focus target of
// any seat; internal/focus clears such references before calling this.
func (t *Tree) ConsiderDestroyColumn(col *Column) {
	if col == nil || len(col.children) > 0 {
		return
	}
	t.detachColumnFromWorkspace(col)
	col.destroying = true
	delete(t.columns, col.id)
	delete(t.kind, col.id)
}

// ConsiderDestroyWorkspace destroys ws iff it is empty and not currently
// focused anywhere (spec §4.2). focused is supplied by the caller, which
// has seat visibility the tree package lacks.
func (t *Tree) ConsiderDestroyWorkspace(ws *Workspace, focused bool) bool {
	if ws == nil || !ws.Empty() || focused {
		return false
	}
	if out := t.outputs[ws.Output]; out != nil {
		for i, id := range out.workspaceOrder {
			if id == ws.id {
				out.workspaceOrder = append(out.workspaceOrder[:i], out.workspaceOrder[i+1:]...)
				break
			}
		}
	}
	ws.destroying = true
	delete(t.workspaces, ws.id)
	delete(t.kind, ws.id)
	return true
}
