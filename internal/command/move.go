package command

import (
	"strconv"

	"github.com/wlcolm/colmwm/internal/events"
	"github.com/wlcolm/colmwm/internal/tree"
)

const defaultMoveAmount = 10

// cmdMove implements spec §4.7's "move" family, grounded on
// original_source/hayward/commands/move.c.
func cmdMove(ctx *Context, args []string) Result {
	if len(args) == 0 {
		return invalid("move: expected a direction or destination")
	}

	switch args[0] {
	case "to":
		return cmdMoveTo(ctx, args[1:])
	case "left", "right", "up", "down":
		return cmdMoveDirection(ctx, args)
	default:
		return invalid("move: unrecognized argument %q", args[0])
	}
}

func cmdMoveDirection(ctx *Context, args []string) Result {
	w, errRes := windowOrFailure(ctx)
	if errRes != nil {
		return *errRes
	}
	dir, _ := parseDirection(args[0])
	amount := defaultMoveAmount
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil {
			amount = n
		}
	}

	if w.IsFloating() {
		return moveFloatingDirection(ctx, w, dir, amount)
	}
	return moveTilingDirection(ctx, w, dir)
}

func moveFloatingDirection(ctx *Context, w *tree.Window, dir tree.Direction, amount int) Result {
	switch dir {
	case tree.DirLeft:
		w.FloatingRect.X -= amount
	case tree.DirRight:
		w.FloatingRect.X += amount
	case tree.DirUp:
		w.FloatingRect.Y -= amount
	case tree.DirDown:
		w.FloatingRect.Y += amount
	}
	ctx.Tree.MarkDirty(w.NodeID())
	ctx.emit(events.Event{Kind: events.KindWindowMove, WindowID: w.NodeID()})
	return ok()
}

// moveTilingDirection implements spec §4.2's "move in direction" for
// left/right: the window moves into the neighboring column. At the
// workspace edge it moves into a fresh column inserted at that edge,
// unless it is already the sole member of its edge column, in which case
// nothing moves and the command fails with no-target. Up/down intra-column reordering is left unimplemented,
// matching the source's own "// TODO" at this spot (see DESIGN.md Open
// Question decisions).
func moveTilingDirection(ctx *Context, w *tree.Window, dir tree.Direction) Result {
	if dir == tree.DirUp || dir == tree.DirDown {
		return failure("move %s: intra-column reordering is not supported", dir)
	}

	col := w.Column()
	if col == nil {
		return failure("window has no containing column")
	}
	ws := ctx.Tree.Workspace(col.Workspace)
	if ws == nil {
		return failure("window's column has no workspace")
	}
	cols := ws.Columns()
	idx := -1
	for i, c := range cols {
		if c.NodeID() == col.NodeID() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return failure("window's column is not attached to its workspace")
	}

	atEdge := (dir == tree.DirLeft && idx == 0) || (dir == tree.DirRight && idx == len(cols)-1)
	if atEdge {
		if len(col.Children()) == 1 {
			return failure("no-target")
		}
		insertAt := idx
		if dir == tree.DirRight {
			insertAt = idx + 1
		}
		newCol := ctx.Tree.NewColumnInWorkspace(ws, insertAt)
		if err := ctx.Tree.MoveWindowToColumnFromDirection(w, newCol, dir); err != nil {
			return failure("%v", err)
		}
		ctx.Tree.ConsiderDestroyColumn(col)
		ctx.emit(events.Event{Kind: events.KindWindowMove, WindowID: w.NodeID()})
		return ok()
	}

	target := cols[idx-1]
	if dir == tree.DirRight {
		target = cols[idx+1]
	}
	if err := ctx.Tree.MoveWindowToColumnFromDirection(w, target, dir); err != nil {
		return failure("%v", err)
	}
	ctx.Tree.ConsiderDestroyColumn(col)
	ctx.emit(events.Event{Kind: events.KindWindowMove, WindowID: w.NodeID()})
	return ok()
}

func cmdMoveTo(ctx *Context, args []string) Result {
	if len(args) == 0 {
		return invalid("move to: expected workspace or output")
	}
	switch args[0] {
	case "workspace":
		return cmdMoveToWorkspace(ctx, args[1:])
	case "output":
		return cmdMoveToOutput(ctx, args[1:])
	default:
		return invalid("move to: unrecognized destination %q", args[0])
	}
}

// cmdMoveToWorkspace implements spec §4.2/§4.7's "move to workspace",
// including the auto-back-and-forth heuristic (SPEC_FULL §C.1).
func cmdMoveToWorkspace(ctx *Context, args []string) Result {
	w, errRes := windowOrFailure(ctx)
	if errRes != nil {
		return *errRes
	}
	if len(args) == 0 {
		return invalid("move to workspace: expected a name")
	}
	name := args[0]

	curWs := ctx.Tree.Workspace(w.Workspace)
	if ctx.Config != nil && ctx.Config.AutoBackAndForth && curWs != nil && curWs.Name == name {
		if prev := ctx.Seat.PreviousWorkspaceName(); prev != "" {
			name = prev
		}
	}

	ws := ctx.Tree.CreateWorkspace(name)
	var focusedColumn *tree.Column
	if focused := ctx.Seat.FocusedWindow(); focused != nil && focused.Workspace == ws.NodeID() {
		focusedColumn = focused.Column()
	}
	if err := ctx.Tree.MoveWindowToWorkspace(w, ws, focusedColumn); err != nil {
		return failure("%v", err)
	}
	if curWs != nil {
		ctx.Tree.ConsiderDestroyWorkspace(curWs, false)
	}
	ctx.emit(events.Event{Kind: events.KindWindowMove, WindowID: w.NodeID(), WorkspaceID: ws.NodeID()})
	return ok()
}

// cmdMoveToOutput implements spec §4.7's "move to output NAME|DIR".
func cmdMoveToOutput(ctx *Context, args []string) Result {
	w, errRes := windowOrFailure(ctx)
	if errRes != nil {
		return *errRes
	}
	if len(args) == 0 {
		return invalid("move to output: expected a name or direction")
	}

	curWs := ctx.Tree.Workspace(w.Workspace)
	if curWs == nil {
		return failure("window has no workspace")
	}
	curOut := ctx.Tree.Output(curWs.Output)
	target := resolveOutputArg(ctx, curOut, args[0])
	if target == nil {
		return failure("no such output %q", args[0])
	}
	if w.IsSticky && target.NodeID() == curOut.NodeID() {
		return failure("sticky window cannot move within the same output")
	}

	targetWs := target.ActiveWorkspace()
	if targetWs == nil {
		return failure("target output has no active workspace")
	}
	if err := ctx.Tree.MoveWindowToWorkspace(w, targetWs, nil); err != nil {
		return failure("%v", err)
	}
	ctx.Tree.ConsiderDestroyWorkspace(curWs, false)
	ctx.emit(events.Event{Kind: events.KindWindowMove, WindowID: w.NodeID(), WorkspaceID: targetWs.NodeID(), OutputID: target.NodeID()})
	return ok()
}

func resolveOutputArg(ctx *Context, reference *tree.Output, arg string) *tree.Output {
	if dir, isDir := parseDirection(arg); isDir && reference != nil {
		return adjacentOutputFor(ctx, reference, dir)
	}
	for _, o := range ctx.Tree.Outputs() {
		if o.Name == arg {
			return o
		}
	}
	return nil
}
