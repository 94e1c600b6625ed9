package tree

import (
	"fmt"

	"github.com/wlcolm/colmwm/internal/ids"
)

// InvariantViolation reports a broken tree invariant (spec §3.2) detected
// at a commit boundary. Per spec §7's error-kind table this is the Fatal
// class: a bug, not a user error, and the transaction engine aborts the
// process on it rather than returning it to a command caller.
type InvariantViolation struct {
	Rule    string
	Detail  string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("tree invariant violated (%s): %s", e.Rule, e.Detail)
}

// CheckInvariants verifies every rule in spec §3.2 holds. It is called by
// internal/txn right after a batch's pending state is retired into current.
func (t *Tree) CheckInvariants() error {
	if err := t.checkWindowWorkspaceConsistency(); err != nil {
		return err
	}
	if err := t.checkFullscreenPointers(); err != nil {
		return err
	}
	if err := t.checkSingleGlobalFullscreen(); err != nil {
		return err
	}
	if err := t.checkStickyWindows(); err != nil {
		return err
	}
	if err := t.checkActiveChildren(); err != nil {
		return err
	}
	if err := t.checkNoDoubleParenting(); err != nil {
		return err
	}
	if err := t.checkUniqueWorkspaceNames(); err != nil {
		return err
	}
	if err := t.checkEnabledOutputsHaveWorkspace(); err != nil {
		return err
	}
	return nil
}

// checkWindowWorkspaceConsistency is invariant 1.
func (t *Tree) checkWindowWorkspaceConsistency() error {
	for _, w := range t.windows {
		if w.destroying {
			continue
		}
		switch w.ParentKind {
		case ids.KindColumn:
			col := t.columns[w.Parent]
			if col == nil || col.Workspace != w.Workspace {
				return &InvariantViolation{"1", fmt.Sprintf("window %d workspace mismatch with its column", w.id)}
			}
		case ids.KindWorkspace:
			if w.Parent != w.Workspace {
				return &InvariantViolation{"1", fmt.Sprintf("floating window %d workspace mismatch", w.id)}
			}
		default:
			// unparented window under construction; not yet part of the tree.
		}
	}
	return nil
}

// checkFullscreenPointers is invariant 2.
func (t *Tree) checkFullscreenPointers() error {
	for _, ws := range t.workspaces {
		if ws.Fullscreen == ids.Nil {
			continue
		}
		w := t.windows[ws.Fullscreen]
		if w == nil {
			return &InvariantViolation{"2", fmt.Sprintf("workspace %d fullscreen pointer dangles", ws.id)}
		}
		if w.Fullscreen != FullscreenWorkspace {
			return &InvariantViolation{"2", fmt.Sprintf("window %d referenced by workspace %d fullscreen pointer lacks fullscreen_mode=workspace", w.id, ws.id)}
		}
		if w.Workspace != ws.id {
			return &InvariantViolation{"2", fmt.Sprintf("window %d's workspace doesn't match the fullscreen owner %d", w.id, ws.id)}
		}
	}
	return nil
}

// checkSingleGlobalFullscreen is invariant 3.
func (t *Tree) checkSingleGlobalFullscreen() error {
	count := 0
	for _, w := range t.windows {
		if w.Fullscreen == FullscreenGlobal {
			count++
		}
	}
	if count > 1 {
		return &InvariantViolation{"3", fmt.Sprintf("%d windows are global-fullscreen", count)}
	}
	return nil
}

// checkStickyWindows is invariant 4: sticky implies floating and attached
// to its output's currently active workspace.
func (t *Tree) checkStickyWindows() error {
	for _, w := range t.windows {
		if !w.IsSticky || w.destroying {
			continue
		}
		if !w.IsFloating() {
			return &InvariantViolation{"4", fmt.Sprintf("sticky window %d is not floating", w.id)}
		}
		ws := t.workspaces[w.Workspace]
		if ws == nil {
			return &InvariantViolation{"4", fmt.Sprintf("sticky window %d has no workspace", w.id)}
		}
		out := t.outputs[ws.Output]
		if out == nil || out.activeWorkspace != ws.id {
			return &InvariantViolation{"4", fmt.Sprintf("sticky window %d is not on its output's active workspace", w.id)}
		}
	}
	return nil
}

// checkActiveChildren is invariant 6.
func (t *Tree) checkActiveChildren() error {
	for _, c := range t.columns {
		if c.ActiveChild == ids.Nil {
			continue
		}
		if c.IndexOf(t.windows[c.ActiveChild]) == -1 {
			return &InvariantViolation{"6", fmt.Sprintf("column %d active_child is not one of its children", c.id)}
		}
	}
	return nil
}

// checkNoDoubleParenting is invariant 7.
func (t *Tree) checkNoDoubleParenting() error {
	seen := make(map[ids.ID]ids.ID)
	for _, c := range t.columns {
		for _, id := range c.children {
			if prev, ok := seen[id]; ok {
				return &InvariantViolation{"7", fmt.Sprintf("window %d appears in both column %d and %d", id, prev, c.id)}
			}
			seen[id] = c.id
		}
	}
	for _, ws := range t.workspaces {
		for _, w := range ws.floating {
			if prev, ok := seen[w.id]; ok {
				return &InvariantViolation{"7", fmt.Sprintf("window %d appears in both column %d and workspace %d floating list", w.id, prev, ws.id)}
			}
			seen[w.id] = ws.id
		}
	}
	return nil
}

// checkUniqueWorkspaceNames is invariant 8.
func (t *Tree) checkUniqueWorkspaceNames() error {
	seen := make(map[string]ids.ID)
	for _, ws := range t.workspaces {
		if prev, ok := seen[ws.Name]; ok {
			return &InvariantViolation{"8", fmt.Sprintf("workspace name %q used by both %d and %d", ws.Name, prev, ws.id)}
		}
		seen[ws.Name] = ws.id
	}
	return nil
}

// checkEnabledOutputsHaveWorkspace is invariant 9.
func (t *Tree) checkEnabledOutputsHaveWorkspace() error {
	for _, o := range t.outputs {
		if !o.Enabled || o.destroying {
			continue
		}
		if len(o.workspaceOrder) == 0 {
			return &InvariantViolation{"9", fmt.Sprintf("enabled output %d has no workspaces", o.id)}
		}
	}
	return nil
}
