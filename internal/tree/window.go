package tree

import (
	"github.com/wlcolm/colmwm/internal/geom"
	"github.com/wlcolm/colmwm/internal/ids"
)

// BorderStyle selects how a window's frame is drawn (spec §3.1).
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderPixel
	BorderNormal // titlebar + border
	BorderCSD    // client-side decoration
)

// FullscreenMode is a window's fullscreen state (spec §3.1).
type FullscreenMode int

const (
	FullscreenNone FullscreenMode = iota
	FullscreenWorkspace
	FullscreenGlobal
)

// SavedBuffer is an owned capture of a surface's last-known texture, kept
// on a window after unmap so the renderer can animate its close (spec §9
// "Saved buffers" redesign note). The engine treats the pixel payload as
// opaque; internal/view is the only consumer.
type SavedBuffer struct {
	Width, Height int
	// Pixels is nil until internal/view captures it via the Surface
	// collaborator; the tree only reserves the slot.
	Pixels []byte
}

// Window is a leaf wrapping one view surface plus its subsurfaces and
// popups (spec §3.1).
type Window struct {
	id   ids.ID
	tree *Tree

	Parent     ids.ID // column id (tiling) or workspace id (floating)
	ParentKind ids.Kind
	Workspace  ids.ID // cached; must equal Parent.Workspace or Parent itself (invariant 1)

	Border          BorderStyle
	BorderThickness int

	WidthFrac, HeightFrac float64 // fractions within the owning column

	FloatingRect geom.Rect // explicit absolute geometry, retained across tiling<->floating toggles

	IsSticky bool

	Fullscreen      FullscreenMode
	priorFullscreen *fullscreenMemento

	Marks []string

	UrgentAllowed bool
	Urgent        bool

	SavedBuffers []SavedBuffer

	Title string
	AppID string

	Pending GeoState
	Current GeoState

	destroying bool
	ntxnrefs   int

	// Surface is the opaque wire.Surface handle; typed as `any` here so
	// internal/tree has no import-time dependency on internal/wire,
	// keeping the arena free of collaborator wiring concerns.
	Surface any
}

// fullscreenMemento captures what a window's column looked like right
// before it went fullscreen-workspace, so disabling it can restore the
// column's prior active child (spec §8.2 L3).
type fullscreenMemento struct {
	column      ids.ID
	activeChild ids.ID
}

func (t *Tree) newWindow() *Window {
	w := &Window{
		id:            t.gen.Next(),
		tree:          t,
		WidthFrac:     0,
		HeightFrac:    0,
		UrgentAllowed: true,
		Border:        BorderNormal,
	}
	t.windows[w.id] = w
	t.kind[w.id] = ids.KindWindow
	return w
}

// CreateWindow allocates a new, unparented window. Callers attach it via
// Tree's mutators (AttachWindowToColumn, MoveWindowToWorkspace, ...)
// before it participates in arrangement.
func (t *Tree) CreateWindow() *Window {
	return t.newWindow()
}

func (w *Window) NodeID() ids.ID     { return w.id }
func (w *Window) NodeKind() ids.Kind { return ids.KindWindow }

// Column returns w's owning column, or nil if w is floating or unparented.
func (w *Window) Column() *Column {
	if w.ParentKind != ids.KindColumn {
		return nil
	}
	return w.tree.columns[w.Parent]
}

// IsFloating reports whether w's parent is a workspace rather than a
// column (GLOSSARY: "floating iff its parent is a workspace").
func (w *Window) IsFloating() bool {
	return w.ParentKind == ids.KindWorkspace
}

// IsTiling reports whether w's parent is a column.
func (w *Window) IsTiling() bool {
	return w.ParentKind == ids.KindColumn
}

// HasMark reports whether name is among w's marks.
func (w *Window) HasMark(name string) bool {
	for _, m := range w.Marks {
		if m == name {
			return true
		}
	}
	return false
}

// Destroying reports whether w is scheduled for deletion but still has
// outstanding transaction refs (spec §3.3's safe-deletion protocol).
func (w *Window) Destroying() bool { return w.destroying }

// GlobalFullscreenWindow returns the window with Fullscreen == FullscreenGlobal,
// if any (invariant 3 guarantees at most one).
func (t *Tree) GlobalFullscreenWindow() *Window {
	for _, w := range t.windows {
		if !w.destroying && w.Fullscreen == FullscreenGlobal {
			return w
		}
	}
	return nil
}

// FindWindowByMark returns the window carrying mark name, if any. Marks
// are globally unique (spec §4.7's "mark" command), so at most one
// window ever matches.
func (t *Tree) FindWindowByMark(name string) *Window {
	for _, w := range t.windows {
		if !w.destroying && w.HasMark(name) {
			return w
		}
	}
	return nil
}

// ClearMarkEverywhere removes mark name from whichever window (if any)
// currently carries it, enforcing global mark uniqueness before a new
// window claims it.
func (t *Tree) ClearMarkEverywhere(name string) {
	if w := t.FindWindowByMark(name); w != nil {
		out := w.Marks[:0]
		for _, m := range w.Marks {
			if m != name {
				out = append(out, m)
			}
		}
		w.Marks = out
	}
}
