package tree

import "testing"

func setupOutputWithWorkspace(t *testing.T, tr *Tree, outputName, wsName string) (*Output, *Workspace) {
	t.Helper()
	o := tr.CreateOutput(outputName)
	o.Rect.W, o.Rect.H = 1000, 1000
	o.UsableArea = o.Rect
	rel := tr.Enable(o)
	if len(rel) == 0 {
		t.Fatalf("Enable(%s) created no workspace", outputName)
	}
	ws := tr.WorkspaceByName(rel[0].Workspace.Name)
	if wsName != "" && ws.Name != wsName {
		ws.Name = wsName
	}
	return o, ws
}

func TestCreateWorkspaceIsIdempotentByName(t *testing.T) {
	tr := New()
	a := tr.CreateWorkspace("1")
	b := tr.CreateWorkspace("1")
	if a != b {
		t.Fatalf("CreateWorkspace returned distinct workspaces for the same name")
	}
}

func TestAttachWindowToColumnNormalizesFractions(t *testing.T) {
	tr := New()
	_, ws := setupOutputWithWorkspace(t, tr, "o1", "1")
	col := tr.NewColumnInWorkspace(ws, 0)

	w1 := tr.CreateWindow()
	w2 := tr.CreateWindow()
	if err := tr.AttachWindowToColumn(w1, col, 0); err != nil {
		t.Fatal(err)
	}
	if err := tr.AttachWindowToColumn(w2, col, 1); err != nil {
		t.Fatal(err)
	}

	total := w1.HeightFrac + w2.HeightFrac
	if total < 0.999 || total > 1.001 {
		t.Fatalf("height fractions sum to %v, want ~1.0", total)
	}
	if w1.Workspace != ws.id {
		t.Fatalf("w1.Workspace = %v, want %v", w1.Workspace, ws.id)
	}
}

func TestInvariant1HoldsAfterAttach(t *testing.T) {
	tr := New()
	_, ws := setupOutputWithWorkspace(t, tr, "o1", "1")
	col := tr.NewColumnInWorkspace(ws, 0)
	w := tr.CreateWindow()
	tr.AttachWindowToColumn(w, col, 0)

	if err := tr.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants() = %v", err)
	}
}

func TestMoveWindowToWorkspaceRoundTripRestoresWorkspace(t *testing.T) {
	// L1: move to X; move to Y; move to X restores the window to X.
	tr := New()
	_, wsX := setupOutputWithWorkspace(t, tr, "o1", "X")
	wsY := tr.CreateWorkspace("Y")
	colX := tr.NewColumnInWorkspace(wsX, 0)

	w := tr.CreateWindow()
	tr.AttachWindowToColumn(w, colX, 0)

	if err := tr.MoveWindowToWorkspace(w, wsY, nil); err != nil {
		t.Fatal(err)
	}
	if w.Workspace != wsY.id {
		t.Fatalf("after move to Y, workspace = %v, want %v", w.Workspace, wsY.id)
	}

	if err := tr.MoveWindowToWorkspace(w, wsX, colX); err != nil {
		t.Fatal(err)
	}
	if w.Workspace != wsX.id {
		t.Fatalf("after move back to X, workspace = %v, want %v", w.Workspace, wsX.id)
	}
}

func TestSwapTwiceIsIdentity(t *testing.T) {
	// L5: swap(A, B); swap(A, B) is the identity on tree positions.
	tr := New()
	_, wsA := setupOutputWithWorkspace(t, tr, "o1", "A")
	wsB := tr.CreateWorkspace("B")
	colA := tr.NewColumnInWorkspace(wsA, 0)
	colB := tr.NewColumnInWorkspace(wsB, 0)

	w1 := tr.CreateWindow()
	w2 := tr.CreateWindow()
	tr.AttachWindowToColumn(w1, colA, 0)
	tr.AttachWindowToColumn(w2, colB, 0)

	if err := tr.Swap(w1, w2); err != nil {
		t.Fatal(err)
	}
	if w1.Workspace != wsB.id || w2.Workspace != wsA.id {
		t.Fatalf("after first swap: w1.Workspace=%v w2.Workspace=%v", w1.Workspace, w2.Workspace)
	}

	if err := tr.Swap(w1, w2); err != nil {
		t.Fatal(err)
	}
	if w1.Workspace != wsA.id || w2.Workspace != wsB.id {
		t.Fatalf("after second swap: w1.Workspace=%v (want %v) w2.Workspace=%v (want %v)",
			w1.Workspace, wsA.id, w2.Workspace, wsB.id)
	}
}

func TestSwapTransfersWorkspaceFullscreenOwnership(t *testing.T) {
	tr := New()
	_, wsA := setupOutputWithWorkspace(t, tr, "o1", "A")
	wsB := tr.CreateWorkspace("B")
	colA := tr.NewColumnInWorkspace(wsA, 0)
	colB := tr.NewColumnInWorkspace(wsB, 0)

	w1 := tr.CreateWindow()
	w2 := tr.CreateWindow()
	tr.AttachWindowToColumn(w1, colA, 0)
	tr.AttachWindowToColumn(w2, colB, 0)
	tr.SetFullscreenWorkspace(w1, true)

	if err := tr.Swap(w1, w2); err != nil {
		t.Fatal(err)
	}

	if w1.Fullscreen != FullscreenNone {
		t.Fatalf("expected w1 to give up fullscreen after swapping away from wsA, got %v", w1.Fullscreen)
	}
	if w2.Fullscreen != FullscreenWorkspace {
		t.Fatalf("expected w2 to inherit w1's fullscreen mode, got %v", w2.Fullscreen)
	}
	if wsA.Fullscreen != w2.id {
		t.Fatalf("expected wsA's fullscreen pointer to follow w2 into w1's old slot, got %v", wsA.Fullscreen)
	}
	if err := tr.CheckInvariants(); err != nil {
		t.Fatalf("invariants violated after swap: %v", err)
	}
}

func TestStickyWindowRejectsMoveWithinSameOutput(t *testing.T) {
	tr := New()
	o, wsA := setupOutputWithWorkspace(t, tr, "o1", "A")
	wsB := tr.newWorkspace("B")
	tr.attachWorkspaceToOutputSorted(wsB, o)

	w := tr.CreateWindow()
	tr.AttachWindowFloating(w, wsA)
	w.IsSticky = true
	o.SetActiveWorkspace(wsA)

	if err := tr.MoveWindowToWorkspace(w, wsB, nil); err == nil {
		t.Fatal("expected sticky same-output move to be rejected")
	}
}

func TestConsiderDestroyColumnRemovesEmptyColumn(t *testing.T) {
	tr := New()
	_, ws := setupOutputWithWorkspace(t, tr, "o1", "1")
	col := tr.NewColumnInWorkspace(ws, 0)
	w := tr.CreateWindow()
	tr.AttachWindowToColumn(w, col, 0)

	tr.detachWindowFromParent(w)

	if tr.Column(col.id) != nil {
		t.Fatal("expected empty column to be destroyed")
	}
}

func TestEvacuationMovesWorkspacesToRemainingOutput(t *testing.T) {
	// S5: outputs O1 (workspaces a,b) and O2 (workspace c); disable O1.
	tr := New()
	o1, wsA := setupOutputWithWorkspace(t, tr, "O1", "a")
	wsB := tr.newWorkspace("b")
	tr.attachWorkspaceToOutputSorted(wsB, o1)
	// give wsA and wsB columns so they are non-empty and survive evacuation.
	tr.AttachWindowToColumn(tr.CreateWindow(), tr.NewColumnInWorkspace(wsA, 0), 0)
	tr.AttachWindowToColumn(tr.CreateWindow(), tr.NewColumnInWorkspace(wsB, 0), 0)

	o2, _ := setupOutputWithWorkspace(t, tr, "O2", "c")

	rel := tr.Disable(o1)
	if len(rel) != 2 {
		t.Fatalf("Disable() relocated %d workspaces, want 2", len(rel))
	}
	for _, r := range rel {
		if r.Destroyed {
			t.Fatalf("workspace %s should not be destroyed (non-empty)", r.Workspace.Name)
		}
		if r.ToOutput != o2.id {
			t.Fatalf("workspace %s moved to %v, want %v", r.Workspace.Name, r.ToOutput, o2.id)
		}
	}
	if len(o2.Workspaces()) != 3 {
		t.Fatalf("O2 has %d workspaces, want 3", len(o2.Workspaces()))
	}
}
