// Package arrange computes pixel geometry for every node in a dirty
// subtree, from layout parameters and gap configuration (spec §4.4). It
// implements the txn.Arranger interface.
package arrange

import (
	"github.com/wlcolm/colmwm/internal/geom"
	"github.com/wlcolm/colmwm/internal/ids"
	"github.com/wlcolm/colmwm/internal/tree"
)

// Options carries the layout constants that come from config (spec §6.1)
// rather than from the tree itself.
type Options struct {
	MinSaneW, MinSaneH         int // minimum tiled window size (spec GLOSSARY)
	TitlebarHeight             int // pixel height of one title-bar strip, from Titler
	FloatingMinW, FloatingMinH int
	FloatingMaxW, FloatingMaxH int
}

// DefaultOptions mirrors sway/hayward's historical defaults.
func DefaultOptions() Options {
	return Options{
		MinSaneW: 100, MinSaneH: 60,
		TitlebarHeight: 24,
		FloatingMinW:   75, FloatingMinH: 50,
		FloatingMaxW: 1 << 20, FloatingMaxH: 1 << 20,
	}
}

// Arranger recomputes Pending geometry bottom-up for every output's
// workspaces (spec §4.4). It arranges the whole tree on every call rather
// than only the dirty subtrees named by Arrange's second argument: with
// the node counts this engine deals with (tens of windows, a handful of
// outputs) a full relayout costs as little as a partial one and is far
// simpler to keep invariant-correct, the same trade the teacher makes in
// menu.go's show() (which recomputes the whole menu's geometry on any
// items-changed flag rather than patching individual item rects).
type Arranger struct {
	Opts Options
}

// New returns an Arranger with the given options.
func New(opts Options) *Arranger {
	return &Arranger{Opts: opts}
}

// Arrange implements txn.Arranger.
func (a *Arranger) Arrange(t *tree.Tree, _ []ids.ID) error {
	for _, o := range t.Outputs() {
		if !o.Enabled {
			continue
		}
		a.arrangeOutput(t, o)
	}
	// Global fullscreen overrides whatever normal tiling/floating geometry
	// the window was just given above, so it must run last.
	a.arrangeGlobalFullscreen(t)
	return nil
}

// arrangeGlobalFullscreen finds the (at most one, invariant 3) window
// fullscreen=global and gives it the bounding rectangle of every enabled
// output; every other output's workspaces are still arranged underneath
// it (spec §4.4).
func (a *Arranger) arrangeGlobalFullscreen(t *tree.Tree) {
	fs := t.GlobalFullscreenWindow()
	if fs == nil {
		return
	}
	var bounds geom.Rect
	first := true
	for _, o := range t.Outputs() {
		if !o.Enabled {
			continue
		}
		if first {
			bounds = o.Rect
			first = false
			continue
		}
		bounds = unionRect(bounds, o.Rect)
	}
	if first {
		return
	}
	fs.Pending.Rect = bounds
	fs.Pending.Visible = true
}

func unionRect(a, b geom.Rect) geom.Rect {
	x0, y0 := min2(a.X, b.X), min2(a.Y, b.Y)
	x1, y1 := max2(a.X+a.W, b.X+b.W), max2(a.Y+a.H, b.Y+b.H)
	return geom.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max2(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (a *Arranger) arrangeOutput(t *tree.Tree, o *tree.Output) {
	o.UsableArea = computeUsableArea(o)

	for _, ws := range o.Workspaces() {
		a.arrangeWorkspace(t, o, ws)
	}
}

// computeUsableArea shrinks an output's rectangle by the exclusive zones
// of its non-popup layer-shell surfaces (spec §3.1 "usable-area
// sub-rectangle excluding reserved struts").
func computeUsableArea(o *tree.Output) geom.Rect {
	usable := o.Rect
	for _, layer := range o.Layers {
		for _, surf := range layer {
			if surf.IsPopup || surf.ExclusiveZone <= 0 {
				continue
			}
			usable = shrinkByStrut(usable, o.Rect, surf.Rect, surf.ExclusiveZone)
		}
	}
	return usable
}

// shrinkByStrut reserves ExclusiveZone pixels on whichever output edge
// the layer surface abuts.
func shrinkByStrut(usable, outputRect, surf geom.Rect, zone int) geom.Rect {
	switch {
	case surf.Y == outputRect.Y:
		return usable.Shrink(zone, 0, 0, 0)
	case surf.Y+surf.H == outputRect.Y+outputRect.H:
		return usable.Shrink(0, 0, zone, 0)
	case surf.X == outputRect.X:
		return usable.Shrink(0, 0, 0, zone)
	case surf.X+surf.W == outputRect.X+outputRect.W:
		return usable.Shrink(0, zone, 0, 0)
	default:
		return usable
	}
}

func (a *Arranger) arrangeWorkspace(t *tree.Tree, o *tree.Output, ws *tree.Workspace) {
	ws.Pending.Rect = o.UsableArea

	if fs := ws.FullscreenWindow(); fs != nil {
		a.arrangeFullscreenWorkspaceWindow(t, o, ws, fs)
		return
	}

	tilingArea := ws.TilingArea(o.UsableArea)
	a.arrangeColumnRow(t, ws, tilingArea)

	for _, w := range ws.Floating() {
		a.arrangeFloating(w)
	}
}

func (a *Arranger) arrangeFullscreenWorkspaceWindow(t *tree.Tree, o *tree.Output, ws *tree.Workspace, fs *tree.Window) {
	fs.Pending.Rect = o.Rect
	fs.Pending.Visible = true

	// non-fullscreen tiling/floating content stays arranged (possibly
	// occluded) so it's ready the instant fullscreen is disabled.
	tilingArea := ws.TilingArea(o.UsableArea)
	a.arrangeColumnRow(t, ws, tilingArea)
	for _, w := range ws.Floating() {
		if w != fs {
			a.arrangeFloating(w)
		}
	}
}

// arrangeColumnRow implements spec §4.4's "Workspace tiling row": columns
// left to right, each sized width_fraction * (workspace_width -
// total_inner_gap), the last column absorbing rounding residue.
func (a *Arranger) arrangeColumnRow(t *tree.Tree, ws *tree.Workspace, area geom.Rect) {
	cols := ws.Columns()
	if len(cols) == 0 {
		return
	}
	inner := ws.Gaps.Inner
	totalInner := inner * (len(cols) - 1)
	available := area.W - totalInner
	if available < 0 {
		available = 0
	}

	x := area.X
	usedW := 0
	for i, col := range cols {
		w := int(col.WidthFrac * float64(available))
		if i == len(cols)-1 {
			w = available - usedW
		}
		colRect := geom.Rect{X: x, Y: area.Y, W: w, H: area.H}
		col.Pending.Rect = colRect
		a.arrangeColumn(t, col, colRect)

		usedW += w
		x += w + inner
	}
}

func (a *Arranger) arrangeColumn(t *tree.Tree, col *tree.Column, area geom.Rect) {
	switch col.Layout {
	case tree.LayoutStacked:
		a.arrangeStacked(col, area)
	case tree.LayoutTabbed:
		a.arrangeTabbed(col, area)
	default:
		a.arrangeSplitVertical(t, col, area)
	}
}

// arrangeSplitVertical implements spec §4.4's "Column split-vertical":
// children top to bottom, heights proportional to height_fraction, inner
// gaps between, minimum MIN_SANE_H (the resize command, not the
// arranger, is responsible for rejecting a fraction change that would
// violate it; the arranger clamps defensively so a pre-existing violation
// never renders a negative-size rect).
func (a *Arranger) arrangeSplitVertical(t *tree.Tree, col *tree.Column, area geom.Rect) {
	children := col.Children()
	if len(children) == 0 {
		return
	}
	inner := 0 // inner gaps between stacked children reuse the workspace's inner gap
	if ws := t.Workspace(col.Workspace); ws != nil {
		inner = ws.Gaps.Inner
	}
	totalInner := inner * (len(children) - 1)
	available := area.H - totalInner
	if available < 0 {
		available = 0
	}

	y := area.Y
	used := 0
	for i, w := range children {
		h := int(w.HeightFrac * float64(available))
		if h < a.Opts.MinSaneH && available >= a.Opts.MinSaneH*len(children) {
			h = a.Opts.MinSaneH
		}
		if i == len(children)-1 {
			h = available - used
		}
		w.Pending.Rect = geom.Rect{X: area.X, Y: y, W: area.W, H: h}
		w.Pending.Visible = true

		used += h
		y += h + inner
	}
}

// arrangeStacked implements spec §4.4's "Column stacked": only the active
// child gets content area (column area minus N title-bar strips); the
// rest get a zero content rect but still have their titlebar rect
// computed, one strip per child in child order.
func (a *Arranger) arrangeStacked(col *tree.Column, area geom.Rect) {
	children := col.Children()
	if len(children) == 0 {
		return
	}
	stripH := a.Opts.TitlebarHeight
	contentY := area.Y + stripH*len(children)
	contentH := area.H - stripH*len(children)
	if contentH < 0 {
		contentH = 0
	}

	for i, w := range children {
		w.Pending.TitlebarRect = geom.Rect{X: area.X, Y: area.Y + i*stripH, W: area.W, H: stripH}
		if w.NodeID() == col.ActiveChild {
			w.Pending.Rect = geom.Rect{X: area.X, Y: contentY, W: area.W, H: contentH}
			w.Pending.Visible = true
		} else {
			w.Pending.Rect = geom.Rect{X: area.X, Y: contentY, W: 0, H: 0}
			w.Pending.Visible = false
		}
	}
}

// arrangeTabbed implements spec §4.4's "Column tabbed": a single title-bar
// row with per-child tabs; the active child fills the remainder.
func (a *Arranger) arrangeTabbed(col *tree.Column, area geom.Rect) {
	children := col.Children()
	if len(children) == 0 {
		return
	}
	stripH := a.Opts.TitlebarHeight
	tabW := area.W / len(children)

	contentRect := geom.Rect{X: area.X, Y: area.Y + stripH, W: area.W, H: area.H - stripH}
	if contentRect.H < 0 {
		contentRect.H = 0
	}

	for i, w := range children {
		w.Pending.TitlebarRect = geom.Rect{X: area.X + i*tabW, Y: area.Y, W: tabW, H: stripH}
		if w.NodeID() == col.ActiveChild {
			w.Pending.Rect = contentRect
			w.Pending.Visible = true
		} else {
			w.Pending.Rect = geom.Rect{X: contentRect.X, Y: contentRect.Y, W: 0, H: 0}
			w.Pending.Visible = false
		}
	}
}

// arrangeFloating implements spec §4.4's "Floating window": explicit
// lx/ly/w/h clamped to the configured floating min/max.
func (a *Arranger) arrangeFloating(w *tree.Window) {
	r := w.FloatingRect
	r.W = clamp(r.W, a.Opts.FloatingMinW, a.Opts.FloatingMaxW)
	r.H = clamp(r.H, a.Opts.FloatingMinH, a.Opts.FloatingMaxH)
	w.Pending.Rect = r
	w.Pending.Visible = true
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
