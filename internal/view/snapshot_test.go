package view

import (
	"testing"

	"github.com/wlcolm/colmwm/internal/geom"
	"github.com/wlcolm/colmwm/internal/ids"
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

func settle(ws *tree.Workspace) {
	ws.Current = ws.Pending
	for _, c := range ws.Columns() {
		c.Current = c.Pending
		for _, w := range c.Children() {
			w.Current = w.Pending
			w.Pending.Visible = true
		}
	}
	for _, w := range ws.Floating() {
		w.Current = w.Pending
		w.Pending.Visible = true
	}
}

func TestBuildEmitsBorderTitlebarAndContentForNormalBorder(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", geom.Rect{W: 1000, H: 1000})
	ws := o.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	w := tr.CreateWindow()
	tr.AttachWindowToColumn(w, col, 0)
	w.Title = "term"
	w.Current.Rect = geom.Rect{X: 0, Y: 0, W: 400, H: 300}
	w.Current.TitlebarRect = geom.Rect{X: 0, Y: 0, W: 400, H: 20}
	settle(ws)

	snap := Build(tr, Collaborators{})
	if len(snap.Outputs) != 1 {
		t.Fatalf("expected one output, got %d", len(snap.Outputs))
	}
	items := snap.Outputs[0].Items
	var kinds []ItemKind
	for _, it := range items {
		kinds = append(kinds, it.Kind)
	}
	if len(kinds) != 3 || kinds[0] != ItemBorder || kinds[1] != ItemTitlebar || kinds[2] != ItemContent {
		t.Fatalf("expected border, titlebar, content; got %v", kinds)
	}
	if items[1].Title != "term" {
		t.Fatalf("expected titlebar to carry the window title, got %q", items[1].Title)
	}
}

func TestBuildTintsFocusedWindow(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", geom.Rect{W: 1000, H: 1000})
	ws := o.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	w := tr.CreateWindow()
	tr.AttachWindowToColumn(w, col, 0)
	settle(ws)

	snap := Build(tr, Collaborators{FocusedWindow: func() *tree.Window { return w }})
	items := snap.Outputs[0].Items
	if items[0].Tint != TintFocused {
		t.Fatalf("expected focused tint, got %v", items[0].Tint)
	}
}

func TestBuildStackedColumnShowsEveryTitlebarButOnlyActiveContent(t *testing.T) {
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
	settle(ws)

	snap := Build(tr, Collaborators{})
	var contentCount int
	for _, it := range snap.Outputs[0].Items {
		if it.Kind == ItemContent {
			contentCount++
			if it.WindowID != w2.NodeID() {
				t.Fatalf("expected only the active child's content, got window %v", it.WindowID)
			}
		}
	}
	if contentCount != 1 {
		t.Fatalf("expected exactly one content item, got %d", contentCount)
	}
}

func TestBuildSkipsDisabledOutputs(t *testing.T) {
	tr := tree.New()
	o := tr.CreateOutput("o1")
	o.Rect = geom.Rect{W: 100, H: 100}

	snap := Build(tr, Collaborators{})
	if len(snap.Outputs) != 0 {
		t.Fatalf("expected no outputs while disabled, got %d", len(snap.Outputs))
	}
}

func TestBuildIncludesDropZoneForTargetOutput(t *testing.T) {
	tr := tree.New()
	o := setupOutput(t, tr, "o1", geom.Rect{W: 1000, H: 1000})
	_ = o

	zone := geom.Rect{X: 10, Y: 10, W: 50, H: 50}
	snap := Build(tr, Collaborators{
		DropZone: func(outputID ids.ID) (geom.Rect, bool) {
			return zone, outputID == o.NodeID()
		},
	})

	found := false
	for _, it := range snap.Outputs[0].Items {
		if it.Kind == ItemDropZone {
			found = true
			if it.Rect != zone {
				t.Fatalf("expected drop zone rect %v, got %v", zone, it.Rect)
			}
		}
	}
	if !found {
		t.Fatal("expected a drop-zone item")
	}
}

func TestStorePublishAndCurrentRoundTrip(t *testing.T) {
	var s Store
	if s.Current() != nil {
		t.Fatal("expected nil before first publish")
	}
	snap := &Snapshot{}
	s.Publish(snap)
	if s.Current() != snap {
		t.Fatal("expected Current to return the published snapshot")
	}
}
