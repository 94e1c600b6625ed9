package txn

import (
	"context"
	"testing"
	"time"

	"github.com/wlcolm/colmwm/internal/geom"
	"github.com/wlcolm/colmwm/internal/ids"
	"github.com/wlcolm/colmwm/internal/tree"
)

type noopArranger struct{}

func (noopArranger) Arrange(*tree.Tree, []ids.ID) error { return nil }

type immediateConfigurer struct{ calls int }

func (c *immediateConfigurer) Configure(w *tree.Window) <-chan struct{} {
	c.calls++
	ch := make(chan struct{})
	close(ch)
	return ch
}

type neverConfigurer struct{}

func (neverConfigurer) Configure(w *tree.Window) <-chan struct{} {
	return make(chan struct{}) // never closes
}

func setupWindow(tr *tree.Tree) *tree.Window {
	o := tr.CreateOutput("o1")
	o.Rect = geom.Rect{W: 1000, H: 1000}
	o.UsableArea = o.Rect
	tr.Enable(o)
	ws := o.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	w := tr.CreateWindow()
	tr.AttachWindowToColumn(w, col, 0)
	return w
}

func TestCommitRetiresOnImmediateAck(t *testing.T) {
	tr := tree.New()
	w := setupWindow(tr)
	w.Pending.Rect = geom.Rect{W: 500, H: 500}

	cfg := &immediateConfigurer{}
	eng := NewEngine(tr, noopArranger{}, cfg)

	res, err := eng.Commit(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.ForcedRetire {
		t.Fatal("expected a clean retire, got forced")
	}
	if w.Current.Rect != w.Pending.Rect {
		t.Fatalf("Current.Rect = %v, want %v", w.Current.Rect, w.Pending.Rect)
	}
	if cfg.calls != 1 {
		t.Fatalf("Configure called %d times, want 1", cfg.calls)
	}
}

func TestCommitForceRetiresOnTimeout(t *testing.T) {
	tr := tree.New()
	w := setupWindow(tr)
	w.Pending.Rect = geom.Rect{W: 500, H: 500}

	eng := NewEngine(tr, noopArranger{}, neverConfigurer{})
	eng.Timeout = 10 * time.Millisecond

	res, err := eng.Commit(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !res.ForcedRetire {
		t.Fatal("expected a forced retire on timeout")
	}
	if w.Current.Rect != w.Pending.Rect {
		t.Fatalf("Current.Rect = %v, want %v even after force-retire", w.Current.Rect, w.Pending.Rect)
	}
}

func TestCommitNoOpWhenNothingDirty(t *testing.T) {
	tr := tree.New()
	eng := NewEngine(tr, noopArranger{}, &immediateConfigurer{})
	res, err := eng.Commit(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Dirty) != 0 {
		t.Fatalf("expected no dirty nodes, got %v", res.Dirty)
	}
}
