package tree

import "github.com/wlcolm/colmwm/internal/ids"

// SetFullscreenWorkspace enables or disables single-workspace fullscreen
// on w (spec §3.1, §8.2 L3). Enabling replaces any window already
// fullscreen on w's workspace (invariant 2 allows at most one); disabling
// restores the column's active child from the memento saved at entry, so
// a fullscreened-and-unfullscreened window doesn't steal focus within its
// column from whatever was active before it went fullscreen.
func (t *Tree) SetFullscreenWorkspace(w *Window, enable bool) {
	if w == nil {
		return
	}
	ws := t.workspaces[w.Workspace]
	if ws == nil {
		return
	}

	if enable {
		if ws.Fullscreen == w.id {
			return
		}
		if prev := t.windows[ws.Fullscreen]; prev != nil {
			t.SetFullscreenWorkspace(prev, false)
		}
		if col := w.Column(); col != nil {
			w.priorFullscreen = &fullscreenMemento{column: col.id, activeChild: col.ActiveChild}
		}
		ws.Fullscreen = w.id
		w.Fullscreen = FullscreenWorkspace
	} else {
		if ws.Fullscreen != w.id {
			return
		}
		ws.Fullscreen = ids.Nil
		w.Fullscreen = FullscreenNone
		if mem := w.priorFullscreen; mem != nil {
			if col := t.columns[mem.column]; col != nil {
				col.ActiveChild = mem.activeChild
			}
			w.priorFullscreen = nil
		}
	}
	t.MarkDirty(ws.id)
	t.MarkDirty(w.id)
}

// SetFullscreenGlobal enables or disables tree-wide global fullscreen on
// w (invariant 3: at most one window globally fullscreen at a time).
// Enabling demotes whichever window currently holds it.
func (t *Tree) SetFullscreenGlobal(w *Window, enable bool) {
	if w == nil {
		return
	}
	if enable {
		if w.Fullscreen == FullscreenGlobal {
			return
		}
		if prev := t.GlobalFullscreenWindow(); prev != nil {
			prev.Fullscreen = FullscreenNone
			t.MarkDirty(prev.id)
		}
		w.Fullscreen = FullscreenGlobal
	} else {
		if w.Fullscreen != FullscreenGlobal {
			return
		}
		w.Fullscreen = FullscreenNone
	}
	t.MarkDirty(w.id)
}
