package arrange

import (
	"testing"

	"github.com/wlcolm/colmwm/internal/geom"
	"github.com/wlcolm/colmwm/internal/ids"
	"github.com/wlcolm/colmwm/internal/tree"
)

func setupOutput(t *testing.T, tr *tree.Tree, name string, w, h int) *tree.Output {
	t.Helper()
	o := tr.CreateOutput(name)
	o.Rect = geom.Rect{W: w, H: h}
	o.UsableArea = o.Rect
	tr.Enable(o)
	return o
}

func TestArrangeSplitVerticalDividesColumnEvenly(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", 1000, 1000)
	ws := o.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	w1 := tr.CreateWindow()
	w2 := tr.CreateWindow()
	tr.AttachWindowToColumn(w1, col, 0)
	tr.AttachWindowToColumn(w2, col, 1)

	a := New(DefaultOptions())
	if err := a.Arrange(tr, nil); err != nil {
		t.Fatal(err)
	}

	if w1.Pending.Rect.H+w2.Pending.Rect.H != col.Pending.Rect.H {
		t.Fatalf("children heights %d+%d don't sum to column height %d",
			w1.Pending.Rect.H, w2.Pending.Rect.H, col.Pending.Rect.H)
	}
	if w1.Pending.Rect.W != col.Pending.Rect.W {
		t.Fatalf("child width %d != column width %d", w1.Pending.Rect.W, col.Pending.Rect.W)
	}
}

func TestArrangeColumnsSumToWorkspaceWidth(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", 900, 600)
	ws := o.Workspaces()[0]
	var cols []*tree.Column
	for i := 0; i < 3; i++ {
		c := tr.NewColumnInWorkspace(ws, i)
		w := tr.CreateWindow()
		tr.AttachWindowToColumn(w, c, 0)
		cols = append(cols, c)
	}

	a := New(DefaultOptions())
	if err := a.Arrange(tr, nil); err != nil {
		t.Fatal(err)
	}

	total := 0
	for _, c := range cols {
		total += c.Pending.Rect.W
	}
	tilingArea := ws.TilingArea(o.UsableArea)
	if total != tilingArea.W {
		t.Fatalf("columns sum to %d, want %d", total, tilingArea.W)
	}
}

func TestArrangeStackedOnlyActiveChildVisible(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", 800, 800)
	ws := o.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	col.Layout = tree.LayoutStacked
	w1 := tr.CreateWindow()
	w2 := tr.CreateWindow()
	tr.AttachWindowToColumn(w1, col, 0)
	tr.AttachWindowToColumn(w2, col, 1)
	col.ActiveChild = w2.NodeID()

	a := New(DefaultOptions())
	if err := a.Arrange(tr, nil); err != nil {
		t.Fatal(err)
	}

	if w1.Pending.Visible {
		t.Fatal("inactive stacked child should not be visible")
	}
	if !w2.Pending.Visible {
		t.Fatal("active stacked child should be visible")
	}
	if w2.Pending.Rect.H <= 0 {
		t.Fatal("active stacked child should have positive content height")
	}
	if w1.Pending.TitlebarRect.Y == w2.Pending.TitlebarRect.Y {
		t.Fatal("stacked titlebar strips should be stacked at distinct Y offsets")
	}
}

func TestArrangeTabbedSplitsTitleRowEvenly(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", 800, 800)
	ws := o.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	col.Layout = tree.LayoutTabbed
	w1 := tr.CreateWindow()
	w2 := tr.CreateWindow()
	tr.AttachWindowToColumn(w1, col, 0)
	tr.AttachWindowToColumn(w2, col, 1)
	col.ActiveChild = w1.NodeID()

	a := New(DefaultOptions())
	if err := a.Arrange(tr, nil); err != nil {
		t.Fatal(err)
	}

	if w1.Pending.TitlebarRect.Y != w2.Pending.TitlebarRect.Y {
		t.Fatal("tabbed title strips should share one row")
	}
	if w1.Pending.TitlebarRect.X == w2.Pending.TitlebarRect.X {
		t.Fatal("tabbed title strips should be side by side")
	}
}

func TestArrangeFloatingClampsToMinimum(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", 800, 800)
	ws := o.Workspaces()[0]
	w := tr.CreateWindow()
	w.FloatingRect = geom.Rect{X: 10, Y: 10, W: 5, H: 5}
	tr.AttachWindowFloating(w, ws)

	opts := DefaultOptions()
	a := New(opts)
	if err := a.Arrange(tr, nil); err != nil {
		t.Fatal(err)
	}

	if w.Pending.Rect.W != opts.FloatingMinW || w.Pending.Rect.H != opts.FloatingMinH {
		t.Fatalf("floating rect %v not clamped to minimum %dx%d", w.Pending.Rect, opts.FloatingMinW, opts.FloatingMinH)
	}
}

func TestArrangeUsableAreaShrinksForExclusiveLayerSurface(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", 1000, 1000)
	o.Layers[tree.LayerTop] = append(o.Layers[tree.LayerTop], tree.LayerSurface{
		Rect:          geom.Rect{X: 0, Y: 0, W: 1000, H: 30},
		ExclusiveZone: 30,
	})

	a := New(DefaultOptions())
	if err := a.Arrange(tr, nil); err != nil {
		t.Fatal(err)
	}

	if o.UsableArea.Y != 30 || o.UsableArea.H != 970 {
		t.Fatalf("usable area %v not shrunk by top strut", o.UsableArea)
	}
}

func TestArrangeGlobalFullscreenCoversAllOutputs(t *testing.T) {
	tr := tree.New()
	o1 := setupOutput(t, tr, "o1", 1000, 1000)
	o2 := tr.CreateOutput("o2")
	o2.Rect = geom.Rect{X: 1000, Y: 0, W: 500, H: 800}
	o2.UsableArea = o2.Rect
	tr.Enable(o2)

	ws := o1.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	w := tr.CreateWindow()
	tr.AttachWindowToColumn(w, col, 0)
	w.Fullscreen = tree.FullscreenGlobal

	a := New(DefaultOptions())
	if err := a.Arrange(tr, nil); err != nil {
		t.Fatal(err)
	}

	want := geom.Rect{X: 0, Y: 0, W: 1500, H: 1000}
	if w.Pending.Rect != want {
		t.Fatalf("global fullscreen rect = %v, want %v", w.Pending.Rect, want)
	}
	if !w.Pending.Visible {
		t.Fatal("global fullscreen window should be visible")
	}
	_ = ids.Nil
}

func TestArrangeFullscreenWorkspaceWindowFillsOutputRect(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", 1000, 1000)
	ws := o.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	w := tr.CreateWindow()
	tr.AttachWindowToColumn(w, col, 0)
	w.Fullscreen = tree.FullscreenWorkspace
	ws.Fullscreen = w.NodeID()

	a := New(DefaultOptions())
	if err := a.Arrange(tr, nil); err != nil {
		t.Fatal(err)
	}

	if w.Pending.Rect != o.Rect {
		t.Fatalf("fullscreen-workspace rect = %v, want output rect %v", w.Pending.Rect, o.Rect)
	}
}
