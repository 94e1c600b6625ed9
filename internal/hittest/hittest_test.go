package hittest

import (
	"testing"

	"github.com/wlcolm/colmwm/internal/geom"
	"github.com/wlcolm/colmwm/internal/tree"
)

func setupOutput(t *testing.T, tr *tree.Tree, name string, r geom.Rect) *tree.Output {
	t.Helper()
	o := tr.CreateOutput(name)
	o.Rect = r
	o.UsableArea = r
	tr.Enable(o)
	return o
}

// settle copies Pending geometry into Current, standing in for a txn
// commit so hit-testing (which reads Current) sees the layout.
func settle(ws *tree.Workspace, tr *tree.Tree) {
	ws.Current = ws.Pending
	for _, c := range ws.Columns() {
		c.Current = c.Pending
		for _, w := range c.Children() {
			w.Current = w.Pending
		}
	}
	for _, w := range ws.Floating() {
		w.Current = w.Pending
	}
}

func TestHitTestMissOutsideAllOutputs(t *testing.T) {
	tr := tree.New()
	setupOutput(t, tr, "o1", geom.Rect{W: 1000, H: 1000})
	r := &Resolver{Tree: tr}
	res := r.HitTest(5000, 5000)
	if res.Output != nil {
		t.Fatal("expected nil output outside every output rect")
	}
}

func TestHitTestTilingSplitVerticalPicksContainingChild(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", geom.Rect{W: 1000, H: 1000})
	ws := o.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	w1 := tr.CreateWindow()
	w2 := tr.CreateWindow()
	tr.AttachWindowToColumn(w1, col, 0)
	tr.AttachWindowToColumn(w2, col, 1)

	col.Pending.Rect = geom.Rect{X: 0, Y: 0, W: 1000, H: 1000}
	w1.Pending.Rect = geom.Rect{X: 0, Y: 0, W: 1000, H: 500}
	w1.Pending.Visible = true
	w2.Pending.Rect = geom.Rect{X: 0, Y: 500, W: 1000, H: 500}
	w2.Pending.Visible = true
	settle(ws, tr)

	r := &Resolver{Tree: tr}
	res := r.HitTest(500, 700)
	if res.Window != w2 {
		t.Fatalf("expected hit on w2, got %v", res.Window)
	}
	if res.SX != 500 || res.SY != 200 {
		t.Fatalf("surface-local coords = (%d,%d), want (500,200)", res.SX, res.SY)
	}
}

func TestHitTestStackedPicksTitlebarStrip(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", geom.Rect{W: 1000, H: 1000})
	ws := o.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	col.Layout = tree.LayoutStacked
	w1 := tr.CreateWindow()
	w2 := tr.CreateWindow()
	tr.AttachWindowToColumn(w1, col, 0)
	tr.AttachWindowToColumn(w2, col, 1)
	col.ActiveChild = w2.NodeID()

	col.Pending.Rect = geom.Rect{X: 0, Y: 0, W: 1000, H: 1000}
	w1.Pending.TitlebarRect = geom.Rect{X: 0, Y: 0, W: 1000, H: 24}
	w2.Pending.TitlebarRect = geom.Rect{X: 0, Y: 24, W: 1000, H: 24}
	w2.Pending.Rect = geom.Rect{X: 0, Y: 48, W: 1000, H: 952}
	w2.Pending.Visible = true
	settle(ws, tr)

	r := &Resolver{Tree: tr}
	res := r.HitTest(500, 10)
	if res.Window != w1 {
		t.Fatalf("expected hit on w1's titlebar strip, got %v", res.Window)
	}

	res2 := r.HitTest(500, 500)
	if res2.Window != w2 {
		t.Fatalf("expected hit on active child w2 in content area, got %v", res2.Window)
	}
}

func TestHitTestFloatingWindowOverhangingOutputEdgeIsHit(t *testing.T) {
	tr := tree.New()
	o1 := setupOutput(t, tr, "o1", geom.Rect{X: 0, Y: 0, W: 1000, H: 1000})
	_ = o1
	ws1 := o1.Workspaces()[0]
	w := tr.CreateWindow()
	w.FloatingRect = geom.Rect{X: 900, Y: 100, W: 200, H: 200}
	tr.AttachWindowFloating(w, ws1)
	w.Pending.Rect = w.FloatingRect
	w.Pending.Visible = true
	settle(ws1, tr)

	r := &Resolver{Tree: tr}
	res := r.HitTest(950, 150)
	if res.Window != w {
		t.Fatalf("expected hit on overhanging floating window, got %v", res.Window)
	}
}

func TestHitTestFullscreenWorkspaceWindowClaimsWholeOutput(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", geom.Rect{W: 1000, H: 1000})
	ws := o.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	fs := tr.CreateWindow()
	tr.AttachWindowToColumn(fs, col, 0)
	fs.Fullscreen = tree.FullscreenWorkspace
	ws.Fullscreen = fs.NodeID()
	fs.Pending.Rect = o.Rect
	fs.Pending.Visible = true
	settle(ws, tr)

	r := &Resolver{Tree: tr}
	res := r.HitTest(500, 500)
	if res.Window != fs {
		t.Fatalf("expected hit on fullscreen window, got %v", res.Window)
	}

	res2 := r.HitTest(999, 999)
	if res2.Output != o {
		t.Fatal("expected a hit claimed by the output even at its edge")
	}
}

func TestHitTestOverlayLayerShellBeatsEverythingElse(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", geom.Rect{W: 1000, H: 1000})
	ws := o.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	w := tr.CreateWindow()
	tr.AttachWindowToColumn(w, col, 0)
	w.Pending.Rect = geom.Rect{W: 1000, H: 1000}
	w.Pending.Visible = true
	settle(ws, tr)

	o.Layers[tree.LayerOverlay] = append(o.Layers[tree.LayerOverlay], tree.LayerSurface{
		Rect: geom.Rect{X: 0, Y: 0, W: 300, H: 300},
	})

	r := &Resolver{Tree: tr}
	res := r.HitTest(100, 100)
	if res.Window != nil {
		t.Fatal("expected overlay layer-shell surface to win over window content")
	}
	if res.SX != 100 || res.SY != 100 {
		t.Fatalf("overlay surface-local coords = (%d,%d), want (100,100)", res.SX, res.SY)
	}
}
