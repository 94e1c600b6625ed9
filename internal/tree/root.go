package tree

import "github.com/wlcolm/colmwm/internal/ids"

// Root is the single entity at the top of the scene graph (spec §3.1).
type Root struct {
	id   ids.ID
	tree *Tree

	// Rect holds a bounding box of the output layout in layout
	// coordinates. No code in this module assigns it, including
	// evacuate.go's enable/disable paths, so it stays at its zero value.
	Rect RootRect

	outputOrder []ids.ID
	fallback    ids.ID // headless output; see spec §3.1.

	// DragIcons are drag-and-drop icon surfaces, tracked here only so the
	// renderer-facing view (internal/view) can include them in its
	// z-order; the engine does not interpret their contents.
	DragIcons []ids.ID
}

// RootRect is the root's layout-space bounding rectangle.
type RootRect struct {
	X, Y, W, H int
}

func (r *Root) NodeID() ids.ID      { return r.id }
func (r *Root) NodeKind() ids.Kind  { return ids.KindRoot }
func (r *Root) FallbackOutput() *Output { return r.tree.outputs[r.fallback] }

// FindWindowByID implements root_find_window_by_id (spec §8.1 I5): it must
// agree with Tree.WindowByID at every commit boundary, which holds here
// because both resolve through the same arena map.
func (r *Root) FindWindowByID(id ids.ID) *Window {
	return r.tree.WindowByID(id)
}
