package tree

import "github.com/wlcolm/colmwm/internal/ids"

// BeginConfigure increments a window's in-flight transaction ref count,
// called by internal/txn when it sends a configure for w's changed
// geometry (spec §4.3 step 2).
func (t *Tree) BeginConfigure(w *Window) {
	w.ntxnrefs++
}

// EndConfigure decrements a window's ref count after its configure is
// acknowledged (or the commit times out). If the window was marked for
// destruction and has no more outstanding refs, it is freed here (spec
// §4.3 step 4, §3.3's safe-deletion protocol).
func (t *Tree) EndConfigure(w *Window) {
	if w.ntxnrefs > 0 {
		w.ntxnrefs--
	}
	if w.destroying && w.ntxnrefs == 0 {
		delete(t.windows, w.id)
		delete(t.kind, w.id)
	}
}

// DestroyWindow marks w destroying and detaches it from its parent. If no
// transaction currently references it, it is freed immediately; otherwise
// it is skipped by hit-testing/focus (callers must check Destroying) until
// EndConfigure's last decrement frees it.
func (t *Tree) DestroyWindow(w *Window) {
	if w == nil || w.destroying {
		return
	}
	t.detachWindowFromParent(w)
	w.destroying = true
	if w.ntxnrefs == 0 {
		delete(t.windows, w.id)
		delete(t.kind, w.id)
	}
}

// PendingDiffersFromCurrent reports whether a window's committed geometry
// would change if retired right now — the trigger for sending a configure
// (spec §4.3 step 2).
func (w *Window) PendingDiffersFromCurrent() bool {
	return w.Pending != w.Current
}

// RetireWindow copies Pending into Current for one window (spec §4.3 step
// 3, the per-entity half of "pending is copied to current for the whole
// batch").
func (t *Tree) RetireWindow(id ids.ID) {
	if w := t.windows[id]; w != nil {
		w.Current = w.Pending
	}
}

// RetireColumn copies Pending into Current for one column.
func (t *Tree) RetireColumn(id ids.ID) {
	if c := t.columns[id]; c != nil {
		c.Current = c.Pending
	}
}

// RetireWorkspace copies Pending into Current for one workspace.
func (t *Tree) RetireWorkspace(id ids.ID) {
	if ws := t.workspaces[id]; ws != nil {
		ws.Current = ws.Pending
	}
}

// RetireBatch retires every dirty entity named by ids, dispatching on
// kind, and is the atomic "pending -> current for the whole batch" step
// of spec §4.3 item 3.
func (t *Tree) RetireBatch(dirty []ids.ID) {
	for _, id := range dirty {
		switch k := t.kind[id]; k {
		case ids.KindWindow:
			t.RetireWindow(id)
		case ids.KindColumn:
			t.RetireColumn(id)
		case ids.KindWorkspace:
			t.RetireWorkspace(id)
		}
	}
}
