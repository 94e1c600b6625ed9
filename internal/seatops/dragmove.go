// Package seatops implements the pointer-driven interactive operations of
// spec §4.8/§4.9: drag-move's threshold/drop-zone/reflow state machine
// and interactive resize. Grounded on
// original_source/hayward/src/input/seatop_move_tiling.c's seatop_impl
// callback struct, generalized from wlroots pointer-event callbacks to
// plain methods the engine's input dispatch calls directly.
package seatops

import (
	"github.com/wlcolm/colmwm/internal/events"
	"github.com/wlcolm/colmwm/internal/geom"
	"github.com/wlcolm/colmwm/internal/hittest"
	"github.com/wlcolm/colmwm/internal/tree"
)

// DragPhase is the drag-move state machine's current state (spec §4.8).
type DragPhase int

const (
	PhaseArmed DragPhase = iota
	PhaseThresholded
	PhaseDropping // terminal: Finalize or Cancel has run
)

// DragMove tracks one interactive tiling-window move from button-press to
// release. Create with NewDragMove on button-press; call PointerMotion on
// every subsequent motion event; call Finalize on release.
type DragMove struct {
	tree     *tree.Tree
	resolver *hittest.Resolver
	sink     events.Sink

	moving *tree.Window

	refX, refY     int
	thresholdPx    int
	phase          DragPhase

	targetOutput *tree.Output
	targetWindow *tree.Window
	targetEdge   geom.Edge
	dropBox      geom.Rect
}

// NewDragMove begins an Armed drag (spec §4.8). thresholdPx is
// tiling_drag_threshold already multiplied by the output's scale factor;
// this package does no scaling of its own (internal/engine's
// BeginDragMove does it).
func NewDragMove(t *tree.Tree, resolver *hittest.Resolver, sink events.Sink, moving *tree.Window, startX, startY, thresholdPx int) *DragMove {
	if sink == nil {
		sink = events.Discard{}
	}
	return &DragMove{
		tree:        t,
		resolver:    resolver,
		sink:        sink,
		moving:      moving,
		refX:        startX,
		refY:        startY,
		thresholdPx: thresholdPx,
		phase:       PhaseArmed,
	}
}

// BeginThresholded starts a drag that is already past its threshold (the
// teacher's seatop_begin_move_tiling, used for a modifier+button chord
// rather than a titlebar press-and-drag).
func (d *DragMove) BeginThresholded() {
	d.phase = PhaseThresholded
}

// Phase reports the current state.
func (d *DragMove) Phase() DragPhase { return d.phase }

// DropBox returns the current drop-zone preview rectangle, valid only
// once Phase() is PhaseThresholded and a target is set; internal/view's
// snapshot includes it as a C8 overlay (spec §4.10).
func (d *DragMove) DropBox() (geom.Rect, bool) {
	if d.phase != PhaseThresholded || d.targetOutput == nil {
		return geom.Rect{}, false
	}
	return d.dropBox, true
}

// TargetOutput returns the output the current drop box belongs to, or
// nil if there is none; internal/engine uses this to wire DropBox into
// view.Collaborators.DropZone, which is asked per-output.
func (d *DragMove) TargetOutput() *tree.Output {
	if d.phase != PhaseThresholded {
		return nil
	}
	return d.targetOutput
}

// PointerMotion advances the state machine on a pointer-motion event at
// (x, y) in layout coordinates.
func (d *DragMove) PointerMotion(x, y int) {
	if d.phase == PhaseDropping {
		return
	}
	if d.phase == PhaseArmed {
		dx, dy := x-d.refX, y-d.refY
		if dx*dx+dy*dy > d.thresholdPx*d.thresholdPx {
			d.phase = PhaseThresholded
		}
		return
	}
	d.resolveDropTarget(x, y)
}

// resolveDropTarget implements spec §4.8's drop-zone resolution, steps
// 1-6.
func (d *DragMove) resolveDropTarget(x, y int) {
	res := d.resolver.HitTest(x, y)

	if res.Output == nil {
		d.clearTarget()
		return
	}
	if res.Window == nil {
		d.targetOutput = res.Output
		d.targetWindow = nil
		d.targetEdge = geom.EdgeNone
		d.dropBox = res.Output.UsableArea
		return
	}
	if res.Window.NodeID() == d.moving.NodeID() {
		d.clearTarget()
		return
	}
	if sameWorkspaceSoleTiled(d.tree, d.moving, res.Window) {
		d.clearTarget()
		return
	}

	content := res.Window.Current.Rect
	thickness := int(0.3 * float64(min(content.W, content.H)))
	edge, dist := content.NearestEdge(x, y)
	if dist > thickness {
		edge = geom.EdgeNone
	}

	d.targetOutput = res.Output
	d.targetWindow = res.Window
	d.targetEdge = edge
	if edge == geom.EdgeNone {
		d.dropBox = content
	} else {
		d.dropBox = content.EdgeSlice(edge, thickness)
	}
}

func (d *DragMove) clearTarget() {
	d.targetOutput = nil
	d.targetWindow = nil
	d.targetEdge = geom.EdgeNone
}

// sameWorkspaceSoleTiled reports whether moving is the only tiled window
// on hovered's workspace (spec §4.8 step 4: "no drop" in that case).
func sameWorkspaceSoleTiled(t *tree.Tree, moving, hovered *tree.Window) bool {
	if moving.Workspace != hovered.Workspace {
		return false
	}
	ws := t.Workspace(moving.Workspace)
	if ws == nil {
		return false
	}
	return ws.CountTiledWindows() == 1
}

// Cancel ends the drag without moving anything (spec §4.8: "No drop →
// cancel"), e.g. when the moving window is destroyed mid-drag.
func (d *DragMove) Cancel() {
	d.phase = PhaseDropping
}

// Finalize implements spec §4.8's "On release" reflow rules and ends the
// drag. It is a no-op if called twice.
func (d *DragMove) Finalize() Result {
	if d.phase == PhaseDropping {
		return Result{}
	}
	d.phase = PhaseDropping

	if d.targetOutput == nil {
		return Result{Moved: false}
	}

	oldCol := d.moving.Column()
	oldWs := d.tree.Workspace(d.moving.Workspace)

	if d.targetWindow == nil {
		targetWs := d.targetOutput.ActiveWorkspace()
		if targetWs == nil {
			return Result{Moved: false}
		}
		col := d.tree.NewColumnInWorkspace(targetWs, len(targetWs.Columns()))
		if err := d.tree.MoveWindowToColumn(d.moving, col); err != nil {
			return Result{Moved: false}
		}
	} else {
		switch d.targetEdge {
		case geom.EdgeLeft, geom.EdgeRight:
			targetCol := d.targetWindow.Column()
			targetWs := d.tree.Workspace(d.targetWindow.Workspace)
			cols := targetWs.Columns()
			idx := indexOf(cols, targetCol)
			insertAt := idx
			if d.targetEdge == geom.EdgeRight {
				insertAt = idx + 1
			}
			newCol := d.tree.NewColumnInWorkspace(targetWs, insertAt)
			if err := d.tree.MoveWindowToColumn(d.moving, newCol); err != nil {
				return Result{Moved: false}
			}
		case geom.EdgeTop, geom.EdgeBottom:
			targetCol := d.targetWindow.Column()
			idx := targetCol.IndexOf(d.targetWindow)
			insertAt := idx
			if d.targetEdge == geom.EdgeBottom {
				insertAt = idx + 1
			}
			if err := d.tree.AttachWindowToColumn(d.moving, targetCol, insertAt); err != nil {
				return Result{Moved: false}
			}
		default:
			if err := swapOrAppend(d.tree, d.moving, d.targetWindow); err != nil {
				return Result{Moved: false}
			}
		}
	}

	inheritSiblingFraction(d.moving)

	if oldCol != nil {
		d.tree.ConsiderDestroyColumn(oldCol)
	}
	if oldWs != nil {
		d.tree.ConsiderDestroyWorkspace(oldWs, false)
	}

	d.sink.Emit(events.Event{Kind: events.KindWindowMove, WindowID: d.moving.NodeID()})
	return Result{Moved: true}
}

// Result reports Finalize's outcome to the caller (internal/engine),
// which is responsible for the final untagged configure (spec §4.9's
// "resizing hint" closing note applies equally to move: no hint is ever
// set here since move carries none).
type Result struct {
	Moved bool
}

func indexOf(cols []*tree.Column, target *tree.Column) int {
	for i, c := range cols {
		if c.NodeID() == target.NodeID() {
			return i
		}
	}
	return -1
}

// swapOrAppend implements spec §4.8's "no edge, plain target" rule: swap
// if both windows are sole children of their columns on the same
// workspace, else append moving into target's column.
func swapOrAppend(t *tree.Tree, moving, target *tree.Window) error {
	movingCol := moving.Column()
	targetCol := target.Column()
	if movingCol != nil && targetCol != nil && moving.Workspace == target.Workspace &&
		len(movingCol.Children()) == 1 && len(targetCol.Children()) == 1 {
		return t.Swap(moving, target)
	}
	return t.MoveWindowToColumn(moving, targetCol)
}

// inheritSiblingFraction implements spec §4.8's closing rule: a window
// freshly dropped into a column takes a neighbor's height fraction (the
// window above it, or the one below if it landed first). Only HeightFrac
// is copied; a newly opened column already gets the average width
// fraction of its siblings from normalizeColumnWidthFracs.
func inheritSiblingFraction(w *tree.Window) {
	col := w.Column()
	if col == nil {
		return
	}
	children := col.Children()
	if len(children) <= 1 {
		return
	}
	idx := col.IndexOf(w)
	var sibling *tree.Window
	if idx == 0 {
		sibling = children[1]
	} else {
		sibling = children[idx-1]
	}
	w.HeightFrac = sibling.HeightFrac
}
