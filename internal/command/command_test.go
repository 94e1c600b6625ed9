package command

import (
	"testing"

	"github.com/wlcolm/colmwm/internal/events"
	"github.com/wlcolm/colmwm/internal/focus"
	"github.com/wlcolm/colmwm/internal/geom"
	"github.com/wlcolm/colmwm/internal/tree"
)

func setupOutput(t *testing.T, tr *tree.Tree, name string, rect geom.Rect) *tree.Output {
	t.Helper()
	o := tr.CreateOutput(name)
	o.Rect = rect
	o.UsableArea = rect
	tr.Enable(o)
	return o
}

func newTestContext(t *testing.T) (*Context, *tree.Tree, *focus.Seat, *tree.Output) {
	t.Helper()
	tr := tree.New()
	o := setupOutput(t, tr, "o1", geom.Rect{W: 1000, H: 1000})
	seat := focus.NewSeat("seat0", tr, events.Discard{})
	ctx := &Context{Tree: tr, Seat: seat, Sink: events.Discard{}, Config: &Config{}}
	return ctx, tr, seat, o
}

func TestRunUnknownCommand(t *testing.T) {
	ctx, _, _, _ := newTestContext(t)
	res := Run(ctx, "not-a-command", nil)
	if res.Status != StatusInvalid {
		t.Fatalf("expected invalid, got %v", res.Status)
	}
}

func TestCmdFocusDirection(t *testing.T) {
	ctx, tr, seat, o := newTestContext(t)
	ws := o.Workspaces()[0]
	colA := tr.NewColumnInWorkspace(ws, 0)
	colB := tr.NewColumnInWorkspace(ws, 1)
	wa := tr.CreateWindow()
	wb := tr.CreateWindow()
	tr.AttachWindowToColumn(wa, colA, 0)
	tr.AttachWindowToColumn(wb, colB, 0)
	wa.Current.Rect = geom.Rect{X: 0, Y: 0, W: 400, H: 1000}
	wb.Current.Rect = geom.Rect{X: 400, Y: 0, W: 600, H: 1000}
	seat.SetFocusWindow(wa)

	res := Run(ctx, "focus", []string{"right"})
	if res.Status != StatusSuccess {
		t.Fatalf("expected success, got %v: %s", res.Status, res.Message)
	}
	if seat.FocusedWindow() != wb {
		t.Fatal("expected focus to move to wb")
	}
}

func TestCmdMoveLeftSoleWindowFailsNoTarget(t *testing.T) {
	ctx, tr, seat, o := newTestContext(t)
	ws := o.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	w := tr.CreateWindow()
	tr.AttachWindowToColumn(w, col, 0)
	seat.SetFocusWindow(w)

	res := Run(ctx, "move", []string{"left"})
	if res.Status != StatusFailure {
		t.Fatalf("expected no-target failure for a sole window, got %v: %s", res.Status, res.Message)
	}
}

func TestCmdResizeRejectsBelowMinimum(t *testing.T) {
	ctx, tr, seat, o := newTestContext(t)
	ws := o.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	w1 := tr.CreateWindow()
	w2 := tr.CreateWindow()
	tr.AttachWindowToColumn(w1, col, 0)
	tr.AttachWindowToColumn(w2, col, 1)
	w1.Current.Rect = geom.Rect{W: 1000, H: 500}
	w2.Current.Rect = geom.Rect{W: 1000, H: 500}
	seat.SetFocusWindow(w1)

	res := Run(ctx, "resize", []string{"shrink", "height", "10000"})
	if res.Status != StatusFailure {
		t.Fatalf("expected a minimum-height failure, got %v", res.Status)
	}
}

func TestCmdMarkReplacesAndClearsElsewhere(t *testing.T) {
	ctx, tr, seat, o := newTestContext(t)
	ws := o.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	w1 := tr.CreateWindow()
	w2 := tr.CreateWindow()
	tr.AttachWindowToColumn(w1, col, 0)
	tr.AttachWindowToColumn(w2, col, 1)

	seat.SetFocusWindow(w1)
	if res := Run(ctx, "mark", []string{"scratch"}); res.Status != StatusSuccess {
		t.Fatalf("mark w1 failed: %v", res.Message)
	}
	seat.SetFocusWindow(w2)
	if res := Run(ctx, "mark", []string{"scratch"}); res.Status != StatusSuccess {
		t.Fatalf("mark w2 failed: %v", res.Message)
	}

	if w1.HasMark("scratch") {
		t.Fatal("expected mark to move off w1")
	}
	if !w2.HasMark("scratch") {
		t.Fatal("expected w2 to carry the mark")
	}
}

func TestCmdFloatingToggleRoundTrips(t *testing.T) {
	ctx, tr, seat, o := newTestContext(t)
	ws := o.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	w := tr.CreateWindow()
	tr.AttachWindowToColumn(w, col, 0)
	w.Current.Rect = geom.Rect{W: 400, H: 300}
	seat.SetFocusWindow(w)

	if res := Run(ctx, "floating", []string{"enable"}); res.Status != StatusSuccess {
		t.Fatalf("floating enable failed: %v", res.Message)
	}
	if !w.IsFloating() {
		t.Fatal("expected window to become floating")
	}

	if res := Run(ctx, "floating", []string{"disable"}); res.Status != StatusSuccess {
		t.Fatalf("floating disable failed: %v", res.Message)
	}
	if w.IsFloating() {
		t.Fatal("expected window to return to tiling")
	}
}

func TestCmdFullscreenWorkspaceToggle(t *testing.T) {
	ctx, tr, seat, o := newTestContext(t)
	ws := o.Workspaces()[0]
	col := tr.NewColumnInWorkspace(ws, 0)
	w := tr.CreateWindow()
	tr.AttachWindowToColumn(w, col, 0)
	seat.SetFocusWindow(w)

	if res := Run(ctx, "fullscreen", []string{"toggle"}); res.Status != StatusSuccess {
		t.Fatalf("fullscreen toggle on failed: %v", res.Message)
	}
	if ws.Fullscreen != w.NodeID() {
		t.Fatal("expected workspace to record the fullscreen window")
	}

	if res := Run(ctx, "fullscreen", []string{"toggle"}); res.Status != StatusSuccess {
		t.Fatalf("fullscreen toggle off failed: %v", res.Message)
	}
	if ws.Fullscreen == w.NodeID() {
		t.Fatal("expected fullscreen to clear")
	}
}

func TestCmdSwapExchangesPositions(t *testing.T) {
	ctx, tr, seat, o := newTestContext(t)
	ws := o.Workspaces()[0]
	colA := tr.NewColumnInWorkspace(ws, 0)
	colB := tr.NewColumnInWorkspace(ws, 1)
	wa := tr.CreateWindow()
	wb := tr.CreateWindow()
	tr.AttachWindowToColumn(wa, colA, 0)
	tr.AttachWindowToColumn(wb, colB, 0)
	wb.Marks = []string{"target"}
	seat.SetFocusWindow(wa)

	res := Run(ctx, "swap", []string{"container", "with", "mark", "target"})
	if res.Status != StatusSuccess {
		t.Fatalf("swap failed: %v", res.Message)
	}
	if wa.Column() != colB || wb.Column() != colA {
		t.Fatal("expected wa and wb to swap columns")
	}
}

func TestCmdGapsSetsInner(t *testing.T) {
	ctx, _, seat, o := newTestContext(t)
	ws := o.Workspaces()[0]
	seat.FocusWorkspace(ws)

	res := Run(ctx, "gaps", []string{"inner", "all", "set", "8"})
	if res.Status != StatusSuccess {
		t.Fatalf("gaps failed: %v", res.Message)
	}
	if ws.Gaps.Inner != 8 {
		t.Fatalf("expected inner gap 8, got %d", ws.Gaps.Inner)
	}
}

func TestCmdWorkspaceAutoBackAndForthTogglesConfig(t *testing.T) {
	ctx, _, _, _ := newTestContext(t)
	if res := Run(ctx, "workspace_auto_back_and_forth", []string{"true"}); res.Status != StatusSuccess {
		t.Fatalf("unexpected result: %v", res.Message)
	}
	if !ctx.Config.AutoBackAndForth {
		t.Fatal("expected AutoBackAndForth to be set")
	}
}
