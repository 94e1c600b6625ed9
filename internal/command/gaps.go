package command

import (
	"strconv"

	"github.com/wlcolm/colmwm/internal/tree"
)

// cmdGaps implements spec §4.7's "gaps inner|outer all|top|right|bottom|
// left set|plus|minus AMOUNT", applied to the seat's currently focused
// workspace, grounded on original_source/hayward/commands/gaps.c.
func cmdGaps(ctx *Context, args []string) Result {
	ws := ctx.Seat.FocusedWorkspace()
	if ws == nil {
		return failure("no focused workspace")
	}
	return applyGapsTo(ctx, ws, args)
}

func applyGapsTo(ctx *Context, ws *tree.Workspace, args []string) Result {
	if len(args) < 3 {
		return invalid("gaps: expected 'inner|outer EDGE set|plus|minus AMOUNT'")
	}
	axis, edge, op := args[0], args[1], args[2]
	if len(args) < 4 {
		return invalid("gaps: expected an amount")
	}
	amount, err := strconv.Atoi(args[3])
	if err != nil {
		return invalid("gaps: %v", err)
	}

	switch axis {
	case "inner":
		ws.Gaps.Inner = applyGapOp(ws.Gaps.Inner, op, amount)
	case "outer":
		switch edge {
		case "top":
			ws.Gaps.OuterTop = applyGapOp(ws.Gaps.OuterTop, op, amount)
		case "right":
			ws.Gaps.OuterRight = applyGapOp(ws.Gaps.OuterRight, op, amount)
		case "bottom":
			ws.Gaps.OuterBottom = applyGapOp(ws.Gaps.OuterBottom, op, amount)
		case "left":
			ws.Gaps.OuterLeft = applyGapOp(ws.Gaps.OuterLeft, op, amount)
		case "all":
			ws.Gaps.OuterTop = applyGapOp(ws.Gaps.OuterTop, op, amount)
			ws.Gaps.OuterRight = applyGapOp(ws.Gaps.OuterRight, op, amount)
			ws.Gaps.OuterBottom = applyGapOp(ws.Gaps.OuterBottom, op, amount)
			ws.Gaps.OuterLeft = applyGapOp(ws.Gaps.OuterLeft, op, amount)
		default:
			return invalid("gaps: unrecognized edge %q", edge)
		}
	default:
		return invalid("gaps: unrecognized axis %q", axis)
	}

	if ws.Gaps.Inner < 0 {
		ws.Gaps.Inner = 0
	}
	ctx.Tree.MarkDirty(ws.NodeID())
	return ok()
}

func applyGapOp(cur int, op string, amount int) int {
	switch op {
	case "set":
		return amount
	case "plus":
		return cur + amount
	case "minus":
		return cur - amount
	default:
		return cur
	}
}

// cmdSmartGaps implements spec §4.7's "smart_gaps on|off|inverse_outer"
// on the seat's focused workspace.
func cmdSmartGaps(ctx *Context, args []string) Result {
	ws := ctx.Seat.FocusedWorkspace()
	if ws == nil {
		return failure("no focused workspace")
	}
	if len(args) == 0 {
		return invalid("smart_gaps: expected on, off, or inverse_outer")
	}
	switch args[0] {
	case "on":
		ws.Gaps.Smart = tree.SmartGapsOn
	case "off":
		ws.Gaps.Smart = tree.SmartGapsOff
	case "inverse_outer":
		ws.Gaps.Smart = tree.SmartGapsInverseOuter
	default:
		return invalid("smart_gaps: unrecognized argument %q", args[0])
	}
	ctx.Tree.MarkDirty(ws.NodeID())
	return ok()
}
