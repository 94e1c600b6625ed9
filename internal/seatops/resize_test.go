package seatops

import (
	"testing"

	"github.com/wlcolm/colmwm/internal/events"
	"github.com/wlcolm/colmwm/internal/geom"
	"github.com/wlcolm/colmwm/internal/tree"
)

func TestFloatingResizeGrowsFromBottomRightCorner(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", geom.Rect{W: 2000, H: 2000})
	ws := o.Workspaces()[0]
	w := tr.CreateWindow()
	w.FloatingRect = geom.Rect{X: 100, Y: 100, W: 400, H: 300}
	tr.AttachWindowFloating(w, ws)

	r := NewFloatingResize(tr, events.Discard{}, w, 0, false, 500, 400)
	r.PointerMotion(560, 460) // +60, +60 with the default bottom-right grab
	if w.FloatingRect.W != 460 || w.FloatingRect.H != 360 {
		t.Fatalf("expected 460x360, got %dx%d", w.FloatingRect.W, w.FloatingRect.H)
	}
	if w.FloatingRect.X != 100 || w.FloatingRect.Y != 100 {
		t.Fatalf("expected the top-left corner to stay pinned, got (%d,%d)", w.FloatingRect.X, w.FloatingRect.Y)
	}
}

func TestFloatingResizeFromLeftEdgeMovesOrigin(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", geom.Rect{W: 2000, H: 2000})
	ws := o.Workspaces()[0]
	w := tr.CreateWindow()
	w.FloatingRect = geom.Rect{X: 200, Y: 100, W: 400, H: 300}
	tr.AttachWindowFloating(w, ws)

	r := NewFloatingResize(tr, events.Discard{}, w, EdgeLeft, false, 200, 250)
	r.PointerMotion(150, 250) // dragged left by 50: grows width, shifts X left
	if w.FloatingRect.W != 450 {
		t.Fatalf("expected width to grow to 450, got %d", w.FloatingRect.W)
	}
	if w.FloatingRect.X != 150 {
		t.Fatalf("expected left edge to follow the pointer to 150, got %d", w.FloatingRect.X)
	}
	if w.FloatingRect.H != 300 {
		t.Fatalf("expected height untouched, got %d", w.FloatingRect.H)
	}
}

func TestFloatingResizeClampsToMinimum(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", geom.Rect{W: 2000, H: 2000})
	ws := o.Workspaces()[0]
	w := tr.CreateWindow()
	w.FloatingRect = geom.Rect{X: 0, Y: 0, W: 100, H: 100}
	tr.AttachWindowFloating(w, ws)

	r := NewFloatingResize(tr, events.Discard{}, w, EdgeRight|EdgeBottom, false, 100, 100)
	r.PointerMotion(0, 0) // shrink by 100 on both axes, below the 75x50 floor
	if w.FloatingRect.W < 75 || w.FloatingRect.H < 50 {
		t.Fatalf("expected clamping to the floating minimum, got %dx%d", w.FloatingRect.W, w.FloatingRect.H)
	}
}

func TestTiledResizeWidthTakesFromNeighborColumn(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", geom.Rect{W: 1000, H: 1000})
	ws := o.Workspaces()[0]
	colA := tr.NewColumnInWorkspace(ws, 0)
	colB := tr.NewColumnInWorkspace(ws, 1)
	wa := tr.CreateWindow()
	wb := tr.CreateWindow()
	tr.AttachWindowToColumn(wa, colA, 0)
	tr.AttachWindowToColumn(wb, colB, 0)
	colA.Current.Rect = geom.Rect{X: 0, Y: 0, W: 500, H: 1000}
	colB.Current.Rect = geom.Rect{X: 500, Y: 0, W: 500, H: 1000}

	r := NewTiledResize(tr, events.Discard{}, wa, "width", 500, 0)
	r.PointerMotion(600, 0) // drag the shared border 100px right

	total := colA.WidthFrac + colB.WidthFrac
	if total < 0.99 || total > 1.01 {
		t.Fatalf("expected fractions to still sum to 1, got %v", total)
	}
	if colA.WidthFrac <= 0.5 {
		t.Fatalf("expected colA's fraction to grow past 0.5, got %v", colA.WidthFrac)
	}
}

func TestTiledResizeRejectsBelowMinimum(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", geom.Rect{W: 1000, H: 1000})
	ws := o.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	w1 := tr.CreateWindow()
	w2 := tr.CreateWindow()
	tr.AttachWindowToColumn(w1, col, 0)
	tr.AttachWindowToColumn(w2, col, 1)
	w1.Current.Rect = geom.Rect{W: 1000, H: 500}
	w2.Current.Rect = geom.Rect{W: 1000, H: 500}
	w1.HeightFrac, w2.HeightFrac = 0.5, 0.5

	r := NewTiledResize(tr, events.Discard{}, w1, "height", 0, 500)
	r.PointerMotion(0, 5500) // absurdly large grow, would starve w2 below its minimum
	if w2.HeightFrac != 0.5 {
		t.Fatalf("expected the rejected resize to leave fractions untouched, got %v", w2.HeightFrac)
	}
}
