package command

import (
	"github.com/wlcolm/colmwm/internal/events"
	"github.com/wlcolm/colmwm/internal/geom"
	"github.com/wlcolm/colmwm/internal/tree"
)

// cmdFloating implements spec §4.7's "floating enable|disable|toggle",
// grounded on original_source/hayward/commands/floating.c. Toggling to
// floating centers the window in its output at its last-arranged tiled
// size; toggling to tiling appends it to the currently focused column,
// or a fresh one if none is focused on that workspace — the same
// placement MoveWindowToWorkspace uses for a tiling arrival.
func cmdFloating(ctx *Context, args []string) Result {
	w, errRes := windowOrFailure(ctx)
	if errRes != nil {
		return *errRes
	}

	want := !w.IsFloating()
	if len(args) > 0 {
		switch args[0] {
		case "enable":
			want = true
		case "disable":
			want = false
		case "toggle":
			want = !w.IsFloating()
		default:
			return invalid("floating: unrecognized argument %q", args[0])
		}
	}
	if want == w.IsFloating() {
		return ok()
	}

	ws := ctx.Tree.Workspace(w.Workspace)
	if ws == nil {
		return failure("window has no workspace")
	}

	if want {
		size := w.Current.Rect
		if size.W == 0 || size.H == 0 {
			size = geom.Rect{W: 640, H: 480}
		}
		out := ctx.Tree.Output(ws.Output)
		x, y := size.X, size.Y
		if out != nil {
			cx, cy := out.Rect.Center()
			x, y = cx-size.W/2, cy-size.H/2
		}
		w.FloatingRect = geom.Rect{X: x, Y: y, W: size.W, H: size.H}
		if err := ctx.Tree.AttachWindowFloating(w, ws); err != nil {
			return failure("%v", err)
		}
	} else {
		var focusedColumn *tree.Column
		if focused := ctx.Seat.FocusedWindow(); focused != nil && focused.Workspace == ws.NodeID() {
			focusedColumn = focused.Column()
		}
		var col = focusedColumn
		if col == nil {
			col = ctx.Tree.NewColumnInWorkspace(ws, len(ws.Columns()))
		}
		if err := ctx.Tree.AttachWindowToColumn(w, col, len(col.Children())); err != nil {
			return failure("%v", err)
		}
	}

	ctx.emit(events.Event{Kind: events.KindWindowFloating, WindowID: w.NodeID()})
	return ok()
}
