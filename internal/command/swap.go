package command

import (
	"strconv"

	"github.com/wlcolm/colmwm/internal/events"
	"github.com/wlcolm/colmwm/internal/ids"
	"github.com/wlcolm/colmwm/internal/tree"
)

// cmdSwap implements spec §4.7's "swap container with id|mark ARG",
// grounded on original_source/hayward/commands/swap.c. The "container_id"
// spelling from the source is accepted as an alias of "id".
func cmdSwap(ctx *Context, args []string) Result {
	if len(args) < 3 || args[0] != "container" || args[1] != "with" {
		return invalid("swap: expected 'swap container with id|mark ARG'")
	}
	w, errRes := windowOrFailure(ctx)
	if errRes != nil {
		return *errRes
	}

	var target *tree.Window
	switch args[2] {
	case "mark":
		if len(args) < 4 {
			return invalid("swap: expected a mark name")
		}
		target = ctx.Tree.FindWindowByMark(args[3])
	case "id", "container_id":
		if len(args) < 4 {
			return invalid("swap: expected a window id")
		}
		n, err := strconv.ParseUint(args[3], 10, 64)
		if err != nil {
			return invalid("swap: invalid id %q", args[3])
		}
		target = ctx.Tree.WindowByID(ids.ID(n))
	default:
		return invalid("swap: unrecognized selector %q", args[2])
	}

	if target == nil {
		return failure("no matching window to swap with")
	}
	if target.NodeID() == w.NodeID() {
		return ok()
	}
	if err := ctx.Tree.Swap(w, target); err != nil {
		return failure("%v", err)
	}
	ctx.emit(events.Event{Kind: events.KindWindowMove, WindowID: w.NodeID()})
	ctx.emit(events.Event{Kind: events.KindWindowMove, WindowID: target.NodeID()})
	return ok()
}
