// Package hittest resolves a layout-coordinate point to the output,
// window, and surface it falls on, in the layered precedence order of
// spec §4.5. It reads tree geometry from Current, the settled half of the
// double buffer, plus the layer-shell struts tracked on each output; the
// floating-window passes also skip windows whose Pending.Visible is false.
package hittest

import (
	"github.com/wlcolm/colmwm/internal/tree"
)

// Result is what one HitTest call resolves to. A nil Output means the
// point fell outside every output.
type Result struct {
	Output  *tree.Output
	Window  *tree.Window
	Surface any // opaque wire.Surface handle, nil if the hit has none
	SX, SY  int // surface-local coordinates
}

// PopupAt, when set, answers whether (x, y) falls within win's own popup
// tree, returning the popup surface and surface-local coordinates if so.
// internal/engine supplies this from internal/wire's subsurface walk;
// hittest itself has no protocol knowledge.
type PopupAt func(win *tree.Window, x, y int) (surf any, sx, sy int, ok bool)

// Resolver runs HitTest against one tree.
type Resolver struct {
	Tree *tree.Tree

	// FocusedWindow reports the seat's currently focused window, for rule
	// 6a's "currently focused view's own popup" precedence. May be nil.
	FocusedWindow func() *tree.Window

	// Popup answers rule 6a and the per-layer popup tests (rule 4). If
	// nil, popup hits are skipped and resolution falls through to the
	// surface beneath them.
	Popup PopupAt
}

// HitTest resolves (lx, ly) per spec §4.5's layered order.
func (r *Resolver) HitTest(lx, ly int) Result {
	out := r.outputAt(lx, ly)
	if out == nil {
		return Result{}
	}

	if res, ok := r.hitLayerSurfaces(out, tree.LayerOverlay, lx, ly); ok {
		return res
	}

	// XWayland unmanaged surfaces (spec §4.5 step 2) are not modeled:
	// this engine has no X11 compatibility layer.

	if ws := out.ActiveWorkspace(); ws != nil {
		if fs := ws.FullscreenWindow(); fs != nil {
			res, _ := r.hitFullscreenWorkspace(out, ws, fs, lx, ly)
			return res
		}
	}

	for _, layer := range [...]tree.LayerShellLayer{tree.LayerTop, tree.LayerBottom, tree.LayerBackground} {
		if res, ok := r.hitLayerPopups(out, layer, lx, ly); ok {
			return res
		}
	}

	if res, ok := r.hitLayerSurfaces(out, tree.LayerTop, lx, ly); ok {
		return res
	}

	if res, ok := r.hitFocusedPopup(lx, ly); ok {
		return res
	}

	if res, ok := r.hitFloating(lx, ly); ok {
		return res
	}

	if res, ok := r.hitTiling(out, lx, ly); ok {
		return res
	}

	for _, layer := range [...]tree.LayerShellLayer{tree.LayerBottom, tree.LayerBackground} {
		if res, ok := r.hitLayerSurfaces(out, layer, lx, ly); ok {
			return res
		}
	}

	return Result{Output: out}
}

func (r *Resolver) outputAt(lx, ly int) *tree.Output {
	for _, o := range r.Tree.Outputs() {
		if o.Enabled && o.Rect.Contains(lx, ly) {
			return o
		}
	}
	return nil
}

func (r *Resolver) hitLayerSurfaces(out *tree.Output, layer tree.LayerShellLayer, lx, ly int) (Result, bool) {
	surfaces := out.Layers[layer]
	for i := len(surfaces) - 1; i >= 0; i-- {
		s := surfaces[i]
		if s.IsPopup {
			continue
		}
		if s.Rect.Contains(lx, ly) {
			return Result{Output: out, Surface: s.Surface, SX: lx - s.Rect.X, SY: ly - s.Rect.Y}, true
		}
	}
	return Result{}, false
}

func (r *Resolver) hitLayerPopups(out *tree.Output, layer tree.LayerShellLayer, lx, ly int) (Result, bool) {
	surfaces := out.Layers[layer]
	for i := len(surfaces) - 1; i >= 0; i-- {
		s := surfaces[i]
		if !s.IsPopup {
			continue
		}
		if s.PopupRect.Contains(lx, ly) {
			return Result{Output: out, Surface: s.Surface, SX: lx - s.PopupRect.X, SY: ly - s.PopupRect.Y}, true
		}
	}
	return Result{}, false
}

// hitFullscreenWorkspace implements spec §4.5 step 3: the fullscreen
// window's own transient floating children are tested first (its
// workspace-mates among ws.Floating — this tree has no separate
// window-to-window transient-parent link, so "transient child of fs" is
// approximated as "floating window sharing fs's workspace", the same
// relation §4.2's sticky-reparenting rule already keys off of), then the
// fullscreen window itself; nothing below it is reachable.
func (r *Resolver) hitFullscreenWorkspace(out *tree.Output, ws *tree.Workspace, fs *tree.Window, lx, ly int) (Result, bool) {
	floating := ws.Floating()
	for i := len(floating) - 1; i >= 0; i-- {
		w := floating[i]
		if w == fs || w.Destroying() || !w.Pending.Visible {
			continue
		}
		if w.Current.Rect.Contains(lx, ly) {
			return r.windowHit(out, w, lx, ly), true
		}
	}
	if fs.Current.Rect.Contains(lx, ly) {
		return r.windowHit(out, fs, lx, ly), true
	}
	return Result{Output: out}, true
}

func (r *Resolver) hitFocusedPopup(lx, ly int) (Result, bool) {
	if r.Popup == nil || r.FocusedWindow == nil {
		return Result{}, false
	}
	win := r.FocusedWindow()
	if win == nil {
		return Result{}, false
	}
	if surf, sx, sy, ok := r.Popup(win, lx, ly); ok {
		var o *tree.Output
		if ws := r.Tree.Workspace(win.Workspace); ws != nil {
			o = r.Tree.Output(ws.Output)
		}
		return Result{Output: o, Window: win, Surface: surf, SX: sx, SY: sy}, true
	}
	return Result{}, false
}

// hitFloating implements spec §4.5 step 6b: floating windows across all
// outputs, back-to-front within each, preferring later outputs (the
// "overhang rule" — a floating window overhanging onto a neighboring
// output is still owned by its origin output but remains hittable there).
func (r *Resolver) hitFloating(lx, ly int) (Result, bool) {
	outputs := r.Tree.Outputs()
	for i := len(outputs) - 1; i >= 0; i-- {
		out := outputs[i]
		if !out.Enabled {
			continue
		}
		ws := out.ActiveWorkspace()
		if ws == nil {
			continue
		}
		floating := ws.Floating()
		for j := len(floating) - 1; j >= 0; j-- {
			w := floating[j]
			if w.Destroying() || !w.Pending.Visible {
				continue
			}
			if w.Current.Rect.Contains(lx, ly) {
				return r.windowHit(out, w, lx, ly), true
			}
		}
	}
	return Result{}, false
}

// hitTiling implements spec §4.5 step 6c: on the output whose usable
// area contains the point, each column picks a child by its own layout
// rule.
func (r *Resolver) hitTiling(out *tree.Output, lx, ly int) (Result, bool) {
	if !out.UsableArea.Contains(lx, ly) {
		return Result{}, false
	}
	ws := out.ActiveWorkspace()
	if ws == nil {
		return Result{}, false
	}
	for _, col := range ws.Columns() {
		if !col.Current.Rect.Contains(lx, ly) {
			continue
		}
		if w := hitColumn(col, lx, ly); w != nil {
			return r.windowHit(out, w, lx, ly), true
		}
		return Result{Output: out}, true
	}
	return Result{}, false
}

func hitColumn(col *tree.Column, lx, ly int) *tree.Window {
	children := col.Children()
	switch col.Layout {
	case tree.LayoutStacked:
		for _, w := range children {
			if w.Current.TitlebarRect.Contains(lx, ly) {
				return w
			}
		}
		if active := col.Active(); active != nil && active.Current.Rect.Contains(lx, ly) {
			return active
		}
		return nil
	case tree.LayoutTabbed:
		for _, w := range children {
			if w.Current.TitlebarRect.Contains(lx, ly) {
				return w
			}
		}
		if active := col.Active(); active != nil && active.Current.Rect.Contains(lx, ly) {
			return active
		}
		return nil
	default: // split-vertical: child whose own rect contains the point
		for _, w := range children {
			if w.Current.Rect.Contains(lx, ly) {
				return w
			}
		}
		return nil
	}
}

func (r *Resolver) windowHit(out *tree.Output, w *tree.Window, lx, ly int) Result {
	if r.Popup != nil {
		if surf, sx, sy, ok := r.Popup(w, lx, ly); ok {
			return Result{Output: out, Window: w, Surface: surf, SX: sx, SY: sy}
		}
	}
	return Result{
		Output:  out,
		Window:  w,
		Surface: w.Surface,
		SX:      lx - w.Current.Rect.X,
		SY:      ly - w.Current.Rect.Y,
	}
}
