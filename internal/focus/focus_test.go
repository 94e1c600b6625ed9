package focus

import (
	"testing"

	"github.com/wlcolm/colmwm/internal/events"
	"github.com/wlcolm/colmwm/internal/geom"
	"github.com/wlcolm/colmwm/internal/tree"
)

type recordingSink struct{ events []events.Event }

func (r *recordingSink) Emit(e events.Event) { r.events = append(r.events, e) }

func setupOutput(t *testing.T, tr *tree.Tree, name string, rect geom.Rect) *tree.Output {
	t.Helper()
	o := tr.CreateOutput(name)
	o.Rect = rect
	o.UsableArea = rect
	tr.Enable(o)
	return o
}

func TestSetFocusWindowUpdatesColumnActiveChild(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", geom.Rect{W: 1000, H: 1000})
	ws := o.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	w1 := tr.CreateWindow()
	w2 := tr.CreateWindow()
	tr.AttachWindowToColumn(w1, col, 0)
	tr.AttachWindowToColumn(w2, col, 1)

	sink := &recordingSink{}
	seat := NewSeat("seat0", tr, sink)
	seat.SetFocusWindow(w2)

	if col.ActiveChild != w2.NodeID() {
		t.Fatal("expected column active_child to follow focus")
	}
	if seat.FocusedWindow() != w2 {
		t.Fatal("expected FocusedWindow to be w2")
	}
	if len(sink.events) == 0 || sink.events[0].Kind != events.KindWindowFocus {
		t.Fatalf("expected a window: focus event, got %v", sink.events)
	}
}

func TestSetFocusWindowEmitsWorkspaceFocusOnChange(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", geom.Rect{W: 1000, H: 1000})
	ws1 := o.Workspaces()[0]
	_ = tr.CreateWorkspace("2")

	col1 := tr.NewColumnInWorkspace(ws1, 0)
	w1 := tr.CreateWindow()
	tr.AttachWindowToColumn(w1, col1, 0)

	sink := &recordingSink{}
	seat := NewSeat("seat0", tr, sink)
	seat.SetFocusWindow(w1)

	foundWorkspaceFocus := false
	for _, e := range sink.events {
		if e.Kind == events.KindWorkspaceFocus {
			foundWorkspaceFocus = true
		}
	}
	if !foundWorkspaceFocus {
		t.Fatal("expected a workspace: focus event on first focus")
	}
}

func TestSetUrgentBubblesToWorkspace(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", geom.Rect{W: 1000, H: 1000})
	ws := o.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	w := tr.CreateWindow()
	tr.AttachWindowToColumn(w, col, 0)

	sink := &recordingSink{}
	seat := NewSeat("seat0", tr, sink)
	seat.SetUrgent(tr, w, true)

	if !ws.Urgent {
		t.Fatal("expected workspace urgency to bubble up")
	}

	seat.SetUrgent(tr, w, false)
	if ws.Urgent {
		t.Fatal("expected workspace urgency to clear once no window is urgent")
	}
}

func TestFocusDirectionPicksNearestNeighbor(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", geom.Rect{W: 1000, H: 1000})
	ws := o.Workspaces()[0]
	colA := tr.NewColumnInWorkspace(ws, 0)
	colB := tr.NewColumnInWorkspace(ws, 1)
	wa := tr.CreateWindow()
	wb := tr.CreateWindow()
	tr.AttachWindowToColumn(wa, colA, 0)
	tr.AttachWindowToColumn(wb, colB, 0)

	wa.Current.Rect = geom.Rect{X: 0, Y: 0, W: 400, H: 1000}
	wb.Current.Rect = geom.Rect{X: 400, Y: 0, W: 600, H: 1000}

	seat := NewSeat("seat0", tr, &recordingSink{})
	seat.SetFocusWindow(wa)

	next, ok := seat.FocusDirection(tree.DirRight)
	if !ok || next != wb {
		t.Fatalf("expected FocusDirection(right) to pick wb, got %v ok=%v", next, ok)
	}
}

func TestFocusDirectionFallsBackToAdjacentOutput(t *testing.T) {
	tr := tree.New()
	o1 := setupOutput(t, tr, "o1", geom.Rect{X: 0, Y: 0, W: 1000, H: 1000})
	o2 := setupOutput(t, tr, "o2", geom.Rect{X: 1000, Y: 0, W: 1000, H: 1000})

	ws1 := o1.Workspaces()[0]
	col1 := tr.NewColumnInWorkspace(ws1, 0)
	w1 := tr.CreateWindow()
	tr.AttachWindowToColumn(w1, col1, 0)
	w1.Current.Rect = geom.Rect{X: 0, Y: 0, W: 1000, H: 1000}

	ws2 := o2.Workspaces()[0]
	col2 := tr.NewColumnInWorkspace(ws2, 0)
	w2 := tr.CreateWindow()
	tr.AttachWindowToColumn(w2, col2, 0)

	seat := NewSeat("seat0", tr, &recordingSink{})
	seat.SetFocusWindow(w1)

	next, ok := seat.FocusDirection(tree.DirRight)
	if !ok || next != w2 {
		t.Fatalf("expected focus to cross to o2's active workspace window, got %v ok=%v", next, ok)
	}
}
