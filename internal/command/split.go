package command

import "github.com/wlcolm/colmwm/internal/tree"

// cmdSplit implements spec §4.7's "split v|h|t|n", grounded on
// original_source/hayward/commands/split.c.
func cmdSplit(ctx *Context, args []string) Result {
	if len(args) == 0 {
		return invalid("split: expected v, h, t or n")
	}
	w, errRes := windowOrFailure(ctx)
	if errRes != nil {
		return *errRes
	}
	if w.IsFloating() {
		return failure("split: focused window is not tiled")
	}
	col := w.Column()
	if col == nil {
		return failure("split: focused window has no column")
	}

	switch args[0] {
	case "v", "h":
		return splitWrap(ctx, w, col)
	case "t":
		if col.Layout == tree.LayoutStacked {
			col.Layout = tree.LayoutSplitVertical
		} else {
			col.Layout = tree.LayoutStacked
		}
		ctx.Tree.MarkDirty(col.NodeID())
		return ok()
	case "n":
		if len(col.Children()) != 1 {
			return failure("split n: column has more than one window")
		}
		return ok()
	default:
		return invalid("split: unrecognized argument %q", args[0])
	}
}

// splitWrap moves w out of col into a brand-new column at col's former
// position, isolating it — the closest this engine's flat column model
// gets to "wrapping the focused container in a new split container"
// (spec §4.7).
func splitWrap(ctx *Context, w *tree.Window, col *tree.Column) Result {
	if len(col.Children()) == 1 {
		return ok()
	}
	ws := ctx.Tree.Workspace(col.Workspace)
	if ws == nil {
		return failure("split: column has no workspace")
	}
	cols := ws.Columns()
	idx := indexOfColumn(cols, col)
	if idx < 0 {
		return failure("split: column is not attached to its workspace")
	}
	newCol := ctx.Tree.NewColumnInWorkspace(ws, idx+1)
	if err := ctx.Tree.MoveWindowToColumn(w, newCol); err != nil {
		return failure("%v", err)
	}
	ctx.Tree.ConsiderDestroyColumn(col)
	return ok()
}
