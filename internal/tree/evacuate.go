package tree

import (
	"sort"
	"strconv"

	"github.com/wlcolm/colmwm/internal/ids"
)

// RelocatedWorkspace describes one workspace moved during evacuation, for
// the caller (internal/events) to emit "workspace: move" / "window: move".
type RelocatedWorkspace struct {
	Workspace  *Workspace
	FromOutput ids.ID
	ToOutput   ids.ID
	Destroyed  bool
}

// Disable evacuates every workspace off o (spec §4.11 "output disabled").
func (t *Tree) Disable(o *Output) []RelocatedWorkspace {
	if o == nil || !o.Enabled {
		return nil
	}
	o.Enabled = false
	var relocations []RelocatedWorkspace

	workspaces := o.Workspaces()
	for _, ws := range workspaces {
		target := t.pickEvacuationTarget(ws, o)

		if ws.Empty() && !t.hasStickyMembers(ws) && target.activeWorkspace != ids.Nil {
			t.detachWorkspaceFromOutput(ws)
			relocations = append(relocations, RelocatedWorkspace{Workspace: ws, FromOutput: o.id, ToOutput: target.id, Destroyed: true})
			delete(t.workspaces, ws.id)
			delete(t.kind, ws.id)
			continue
		}

		t.attachWorkspaceToOutputSorted(ws, target)
		relocations = append(relocations, RelocatedWorkspace{Workspace: ws, FromOutput: o.id, ToOutput: target.id})
	}

	o.workspaceOrder = nil
	o.activeWorkspace = ids.Nil
	return relocations
}

func (t *Tree) hasStickyMembers(ws *Workspace) bool {
	for _, w := range ws.floating {
		if w.IsSticky {
			return true
		}
	}
	return false
}

// pickEvacuationTarget implements spec §4.11 step 1: the highest-priority
// live output from ws's priority list (skipping the departing output),
// else the first live output, else the fallback (headless) output.
func (t *Tree) pickEvacuationTarget(ws *Workspace, departing *Output) *Output {
	for _, name := range ws.OutputPriority {
		for _, o := range t.Outputs() {
			if o.id == departing.id || !o.Enabled {
				continue
			}
			if o.Name == name {
				return o
			}
		}
	}
	for _, o := range t.Outputs() {
		if o.id != departing.id && o.Enabled {
			return o
		}
	}
	return t.root.FallbackOutput()
}

func (t *Tree) detachWorkspaceFromOutput(ws *Workspace) {
	out := t.outputs[ws.Output]
	if out == nil {
		return
	}
	for i, id := range out.workspaceOrder {
		if id == ws.id {
			out.workspaceOrder = append(out.workspaceOrder[:i], out.workspaceOrder[i+1:]...)
			break
		}
	}
	if out.activeWorkspace == ws.id {
		out.activeWorkspace = ids.Nil
		if len(out.workspaceOrder) > 0 {
			out.activeWorkspace = out.workspaceOrder[0]
		}
	}
}

// AttachWorkspaceToOutput attaches a freshly created, output-less
// workspace (spec §4.7's "workspace NAME" creating one on demand) using
// the same sorted-insert rule evacuation uses.
func (t *Tree) AttachWorkspaceToOutput(ws *Workspace, out *Output) {
	t.attachWorkspaceToOutputSorted(ws, out)
}

// attachWorkspaceToOutputSorted implements spec §4.11 step 3: insert into
// a sorted position (numeric names first ascending, then lexicographic).
func (t *Tree) attachWorkspaceToOutputSorted(ws *Workspace, out *Output) {
	t.detachWorkspaceFromOutput(ws)
	ws.Output = out.id
	existing := out.Workspaces()

	idx := sort.Search(len(existing), func(i int) bool {
		return workspaceNameLess(ws.Name, existing[i].Name)
	})
	out.workspaceOrder = append(out.workspaceOrder, ids.Nil)
	copy(out.workspaceOrder[idx+1:], out.workspaceOrder[idx:])
	out.workspaceOrder[idx] = ws.id

	if out.activeWorkspace == ids.Nil {
		out.activeWorkspace = ws.id
	}
	t.MarkDirty(ws.id)
}

// workspaceNameLess orders numeric names ascending before any
// lexicographic name, per spec §4.11.
func workspaceNameLess(a, b string) bool {
	an, aIsNum := parseWorkspaceNumber(a)
	bn, bIsNum := parseWorkspaceNumber(b)
	switch {
	case aIsNum && bIsNum:
		return an < bn
	case aIsNum && !bIsNum:
		return true
	case !aIsNum && bIsNum:
		return false
	default:
		return a < b
	}
}

func parseWorkspaceNumber(name string) (int, bool) {
	n, err := strconv.Atoi(name)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Enable implements spec §4.11 "output enabled": workspaces on the
// fallback output whose priority list names o return to it; if none
// land, a default-named workspace is created.
func (t *Tree) Enable(o *Output) []RelocatedWorkspace {
	if o == nil || o.Enabled {
		return nil
	}
	o.Enabled = true
	var relocations []RelocatedWorkspace

	fallback := t.root.FallbackOutput()
	if fallback != nil {
		for _, ws := range fallback.Workspaces() {
			for _, name := range ws.OutputPriority {
				if name == o.Name {
					t.attachWorkspaceToOutputSorted(ws, o)
					relocations = append(relocations, RelocatedWorkspace{Workspace: ws, FromOutput: fallback.id, ToOutput: o.id})
					break
				}
			}
		}
	}

	if len(o.workspaceOrder) == 0 {
		name := t.nextDefaultWorkspaceName()
		ws := t.newWorkspace(name)
		t.attachWorkspaceToOutputSorted(ws, o)
		relocations = append(relocations, RelocatedWorkspace{Workspace: ws, FromOutput: ids.Nil, ToOutput: o.id})
	}
	return relocations
}

// nextDefaultWorkspaceName returns the lowest unused positive integer
// workspace name (spec §4.11 step 2's fallback rule; binding-supplied
// `workspace NAME output ...` preferences are consulted by
// internal/command before falling back to this).
func (t *Tree) nextDefaultWorkspaceName() string {
	used := make(map[int]bool)
	for _, ws := range t.workspaces {
		if n, ok := parseWorkspaceNumber(ws.Name); ok {
			used[n] = true
		}
	}
	for n := 1; ; n++ {
		if !used[n] {
			return strconv.Itoa(n)
		}
	}
}
