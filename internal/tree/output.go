package tree

import (
	"github.com/wlcolm/colmwm/internal/geom"
	"github.com/wlcolm/colmwm/internal/ids"
)

// LayerShellLayer orders layer-surfaces within an output, lowest first.
// The four values mirror the zwlr_layer_shell_v1 layer enum the teacher
// imports from github.com/rajveermalviya/go-wayland/wayland (see
// wayland.go's GetLayerSurface calls) — reused here unchanged because
// spec §4.5's hit-test order and §3.1's per-output sub-lists are phrased
// in exactly those terms.
type LayerShellLayer int

const (
	LayerBackground LayerShellLayer = iota
	LayerBottom
	LayerTop
	LayerOverlay
	numLayers
)

// LayerSurface is an opaque layer-shell surface handle tracked only for
// its geometry and exclusive zone; the engine never draws it.
type LayerSurface struct {
	Surface       ids.ID // not a tree id; an external wire.Surface identity
	Rect          geom.Rect
	ExclusiveZone int
	IsPopup       bool
	PopupRect     geom.Rect
}

// Output represents one physical display (spec §3.1).
type Output struct {
	id   ids.ID
	tree *Tree

	Name    string
	Enabled bool

	Rect        geom.Rect // lx, ly, width, height in layout coordinates
	UsableArea  geom.Rect // Rect minus reserved layer-shell struts
	Scale       float64
	PriorityIDs []ids.ID // not read by evacuation, which uses each Workspace.OutputPriority

	Layers [numLayers][]LayerSurface

	workspaceOrder []ids.ID
	activeWorkspace ids.ID

	destroying bool
	ntxnrefs   int
}

func (t *Tree) newOutput(name string) *Output {
	o := &Output{
		id:     t.gen.Next(),
		tree:   t,
		Name:   name,
		Scale:  1,
		Enabled: true,
	}
	t.outputs[o.id] = o
	t.kind[o.id] = ids.KindOutput
	t.root.outputOrder = append(t.root.outputOrder, o.id)
	return o
}

// CreateOutput registers a newly plugged-in display. Per spec §3.1 it is
// created disabled; the caller enables it once the backend has negotiated
// a mode, which auto-creates its default workspace (invariant 9).
func (t *Tree) CreateOutput(name string) *Output {
	o := t.newOutput(name)
	o.Enabled = false
	return o
}

func (o *Output) NodeID() ids.ID     { return o.id }
func (o *Output) NodeKind() ids.Kind { return ids.KindOutput }

// Workspaces returns the output's workspaces in order.
func (o *Output) Workspaces() []*Workspace {
	out := make([]*Workspace, 0, len(o.workspaceOrder))
	for _, id := range o.workspaceOrder {
		if ws := o.tree.workspaces[id]; ws != nil {
			out = append(out, ws)
		}
	}
	return out
}

// ActiveWorkspace returns the output's currently active workspace, or nil
// if it owns none (only possible while disabled).
func (o *Output) ActiveWorkspace() *Workspace {
	return o.tree.workspaces[o.activeWorkspace]
}

// SetActiveWorkspace switches which of the output's workspaces is active.
// Sticky floating windows on the previously active workspace are
// reparented to ws (invariant 4); callers normally reach this through
// internal/focus rather than directly.
func (o *Output) SetActiveWorkspace(ws *Workspace) {
	if ws == nil || ws.Output != o.id {
		return
	}
	prev := o.tree.workspaces[o.activeWorkspace]
	o.activeWorkspace = ws.id
	if prev == nil || prev == ws {
		return
	}
	for _, win := range append([]*Window(nil), prev.floating...) {
		if win.IsSticky {
			o.tree.reparentFloating(win, ws)
		}
	}
}

// IsUsableRect returns UsableArea as last stored on the output; it does
// no computation itself. internal/arrange sets UsableArea to Rect shrunk
// by the exclusive zones of the output's layer surfaces.
func (o *Output) IsUsableRect() geom.Rect {
	return o.UsableArea
}
