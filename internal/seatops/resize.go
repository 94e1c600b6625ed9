package seatops

import (
	"github.com/wlcolm/colmwm/internal/arrange"
	"github.com/wlcolm/colmwm/internal/events"
	"github.com/wlcolm/colmwm/internal/geom"
	"github.com/wlcolm/colmwm/internal/tree"
)

// Edges is a bitmask of the side(s) of a window a pointer grabbed to
// start a resize, mirroring wlroots' wlr_edges enum that
// seatop_resize_floating.c tests with bitwise &: a corner drag sets two
// bits, a border drag sets one.
type Edges int

const (
	EdgeLeft Edges = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// FloatingResize tracks one interactive resize of a floating window from
// button-press to release (spec §4.9). Grounded on
// original_source/wmiiv/input/seatop_resize_floating.c's
// seatop_resize_floating_event and handle_pointer_motion.
type FloatingResize struct {
	tree *tree.Tree
	sink events.Sink

	win   *tree.Window
	edges Edges

	preserveRatio bool

	refX, refY int
	refRect    geom.Rect // win.FloatingRect at grab time
}

// NewFloatingResize begins a resize grabbed at (startX, startY). edges is
// the grabbed border/corner; EdgeNone-equivalent (a bare 0) behaves like
// the source's "no edge" default of bottom-right. preserveRatio mirrors
// the source's shift-modifier lock.
func NewFloatingResize(t *tree.Tree, sink events.Sink, w *tree.Window, edges Edges, preserveRatio bool, startX, startY int) *FloatingResize {
	if sink == nil {
		sink = events.Discard{}
	}
	if edges == 0 {
		edges = EdgeBottom | EdgeRight
	}
	return &FloatingResize{
		tree:          t,
		sink:          sink,
		win:           w,
		edges:         edges,
		preserveRatio: preserveRatio,
		refX:          startX,
		refY:          startY,
		refRect:       w.FloatingRect,
	}
}

// PointerMotion applies one pointer-motion event, clamping to
// arrange.DefaultOptions()'s floating min/max and writing the result
// straight into the window's pending geometry for the next transaction.
func (r *FloatingResize) PointerMotion(x, y int) {
	dx, dy := x-r.refX, y-r.refY
	if r.edges&(EdgeLeft|EdgeRight) == 0 {
		dx = 0
	}
	if r.edges&(EdgeTop|EdgeBottom) == 0 {
		dy = 0
	}

	growW := dx
	if r.edges&EdgeLeft != 0 {
		growW = -dx
	}
	growH := dy
	if r.edges&EdgeTop != 0 {
		growH = -dy
	}

	if r.preserveRatio {
		xMul := float64(growW) / float64(max(r.refRect.W, 1))
		yMul := float64(growH) / float64(max(r.refRect.H, 1))
		mul := xMul
		if yMul > mul {
			mul = yMul
		}
		growW = int(float64(r.refRect.W) * mul)
		growH = int(float64(r.refRect.H) * mul)
	}

	opts := arrange.DefaultOptions()
	width := clamp(r.refRect.W+growW, opts.FloatingMinW, opts.FloatingMaxW)
	height := clamp(r.refRect.H+growH, opts.FloatingMinH, opts.FloatingMaxH)
	growW = width - r.refRect.W
	growH = height - r.refRect.H

	var growX, growY int
	switch {
	case r.edges&EdgeLeft != 0:
		growX = -growW
	case r.edges&EdgeRight != 0:
		growX = 0
	default:
		growX = -growW / 2
	}
	switch {
	case r.edges&EdgeTop != 0:
		growY = -growH
	case r.edges&EdgeBottom != 0:
		growY = 0
	default:
		growY = -growH / 2
	}

	next := geom.Rect{
		X: r.refRect.X + growX,
		Y: r.refRect.Y + growY,
		W: width,
		H: height,
	}
	r.win.FloatingRect = next
	r.win.Pending.Rect = next
	r.tree.MarkDirty(r.win.NodeID())
}

// Finalize ends the resize. The caller (internal/engine) is responsible
// for committing the transaction that follows, which carries no
// "resizing" hint (spec §4.9's closing note).
func (r *FloatingResize) Finalize() {
	r.sink.Emit(events.Event{Kind: events.KindWindowMove, WindowID: r.win.NodeID()})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TiledResize tracks one interactive resize of a tiled window's column
// (width) or the window itself (height) from button-press to release.
// Unlike floating resize, the source has no window-drag-resize
// equivalent for this engine's column model (wmiiv/hayward resize tiled
// containers by dragging a shared border between two neighbors, an
// operation this flatter column tree expresses identically to the
// "resize" command); grounded on
// original_source/hayward/src/commands/resize.c's predecessor/successor
// split via the same arrange.AdjustSiblingFraction helper
// internal/command/resize.go's "resize" command uses.
type TiledResize struct {
	tree *tree.Tree
	sink events.Sink

	win  *tree.Window
	axis string // "width" or "height"

	refX, refY int
	refPx      int // window/column's pixel extent along axis at grab time
}

// NewTiledResize begins a resize of w along axis ("width" adjusts w's
// column against its neighbor columns; "height" adjusts w against its
// neighbors within the column), snapping sibling fractions to pixels
// first so the drag starts from the rendered geometry rather than a
// stale fraction.
func NewTiledResize(t *tree.Tree, sink events.Sink, w *tree.Window, axis string, startX, startY int) *TiledResize {
	if sink == nil {
		sink = events.Discard{}
	}
	refPx := w.Current.Rect.W
	if col := w.Column(); col != nil {
		if axis == "width" {
			if ws := t.Workspace(col.Workspace); ws != nil {
				arrange.SnapColumnWidthFractions(ws)
			}
			refPx = col.Current.Rect.W
		} else {
			arrange.SnapWindowHeightFractions(col)
			refPx = w.Current.Rect.H
		}
	}
	return &TiledResize{
		tree:  t,
		sink:  sink,
		win:   w,
		axis:  axis,
		refX:  startX,
		refY:  startY,
		refPx: refPx,
	}
}

// PointerMotion applies one pointer-motion event as a delta against the
// fractions snapshotted at grab time.
func (r *TiledResize) PointerMotion(x, y int) {
	col := r.win.Column()
	if col == nil {
		return
	}
	opts := arrange.DefaultOptions()

	if r.axis == "width" {
		ws := r.tree.Workspace(col.Workspace)
		if ws == nil {
			return
		}
		cols := ws.Columns()
		idx := indexOfColumn(cols, col)
		if idx < 0 {
			return
		}
		target := r.refPx + (x - r.refX)
		delta := target - col.Current.Rect.W
		applied, _ := arrange.AdjustSiblingFraction(cols, idx, delta, opts.MinSaneW,
			func(c *tree.Column) *float64 { return &c.WidthFrac },
			func(c *tree.Column) int { return c.Current.Rect.W })
		if applied {
			r.tree.MarkDirty(ws.NodeID())
		}
		return
	}

	children := col.Children()
	idx := indexOfWindow(children, r.win)
	if idx < 0 {
		return
	}
	target := r.refPx + (y - r.refY)
	delta := target - r.win.Current.Rect.H
	applied, _ := arrange.AdjustSiblingFraction(children, idx, delta, opts.MinSaneH,
		func(win *tree.Window) *float64 { return &win.HeightFrac },
		func(win *tree.Window) int { return win.Current.Rect.H })
	if applied {
		r.tree.MarkDirty(col.NodeID())
	}
}

// Finalize ends the resize, same no-hint contract as FloatingResize.
func (r *TiledResize) Finalize() {
	r.sink.Emit(events.Event{Kind: events.KindWindowMove, WindowID: r.win.NodeID()})
}

func indexOfColumn(cols []*tree.Column, target *tree.Column) int {
	for i, c := range cols {
		if c.NodeID() == target.NodeID() {
			return i
		}
	}
	return -1
}

func indexOfWindow(wins []*tree.Window, target *tree.Window) int {
	for i, w := range wins {
		if w.NodeID() == target.NodeID() {
			return i
		}
	}
	return -1
}
