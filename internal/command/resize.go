package command

import (
	"strconv"
	"strings"

	"github.com/wlcolm/colmwm/internal/arrange"
	"github.com/wlcolm/colmwm/internal/events"
	"github.com/wlcolm/colmwm/internal/tree"
)

// cmdResize implements spec §4.7's "resize set|grow|shrink AXIS AMOUNT",
// grounded on original_source/hayward/src/commands/resize.c's
// predecessor/successor fraction split. AMOUNT may carry a px or ppt
// suffix; a ppt amount is taken as a percentage of the window's (or, for
// a tiled width, its column's) own current size along AXIS. The source's
// "AMOUNT or AMOUNT" px-fallback pairing syntax is not accepted.
func cmdResize(ctx *Context, args []string) Result {
	if len(args) < 3 {
		return invalid("resize: expected 'resize set|grow|shrink width|height AMOUNT'")
	}
	action, axis := args[0], args[1]
	if action != "set" && action != "grow" && action != "shrink" {
		return invalid("resize: unknown action %q", action)
	}
	if axis != "width" && axis != "height" {
		return invalid("resize: unknown axis %q", axis)
	}

	w, errRes := windowOrFailure(ctx)
	if errRes != nil {
		return *errRes
	}

	amount, isPercent, err := parseResizeAmount(args[2])
	if err != nil {
		return invalid("resize: %v", err)
	}

	if w.IsFloating() {
		return resizeFloating(ctx, w, action, axis, amount, isPercent)
	}
	return resizeTiling(ctx, w, action, axis, amount, isPercent)
}

func parseResizeAmount(s string) (int, bool, error) {
	isPercent := strings.HasSuffix(s, "ppt")
	s = strings.TrimSuffix(s, "ppt")
	s = strings.TrimSuffix(s, "px")
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, isPercent, err
}

func resizeFloating(ctx *Context, w *tree.Window, action, axis string, amount int, isPercent bool) Result {
	opts := arrange.DefaultOptions()
	cur := w.FloatingRect.W
	minPx, maxPx := opts.FloatingMinW, opts.FloatingMaxW
	if axis == "height" {
		cur = w.FloatingRect.H
		minPx, maxPx = opts.FloatingMinH, opts.FloatingMaxH
	}

	px := amount
	if isPercent {
		px = cur * amount / 100
	}

	var next int
	switch action {
	case "set":
		next = px
	case "grow":
		next = cur + px
	case "shrink":
		next = cur - px
	}
	if next < minPx {
		next = minPx
	}
	if next > maxPx {
		next = maxPx
	}

	if axis == "width" {
		w.FloatingRect.W = next
	} else {
		w.FloatingRect.H = next
	}
	ctx.Tree.MarkDirty(w.NodeID())
	ctx.emit(events.Event{Kind: events.KindWindowMove, WindowID: w.NodeID()})
	return ok()
}

func resizeTiling(ctx *Context, w *tree.Window, action, axis string, amount int, isPercent bool) Result {
	col := w.Column()
	if col == nil {
		return failure("window has no containing column")
	}
	opts := arrange.DefaultOptions()

	if axis == "width" {
		ws := ctx.Tree.Workspace(col.Workspace)
		if ws == nil {
			return failure("column has no workspace")
		}
		arrange.SnapColumnWidthFractions(ws)
		cols := ws.Columns()
		idx := indexOfColumn(cols, col)
		px := amount
		if isPercent {
			px = col.Current.Rect.W * amount / 100
		}
		delta := deltaForAction(action, px, col.Current.Rect.W)
		applied, reason := arrange.AdjustSiblingFraction(cols, idx, delta, opts.MinSaneW,
			func(c *tree.Column) *float64 { return &c.WidthFrac },
			func(c *tree.Column) int { return c.Current.Rect.W })
		if !applied {
			return failure("resize: %s", reason)
		}
		ctx.Tree.MarkDirty(ws.NodeID())
		return ok()
	}

	arrange.SnapWindowHeightFractions(col)
	children := col.Children()
	idx := indexOfWindow(children, w)
	px := amount
	if isPercent {
		px = w.Current.Rect.H * amount / 100
	}
	delta := deltaForAction(action, px, w.Current.Rect.H)
	applied, reason := arrange.AdjustSiblingFraction(children, idx, delta, opts.MinSaneH,
		func(win *tree.Window) *float64 { return &win.HeightFrac },
		func(win *tree.Window) int { return win.Current.Rect.H })
	if !applied {
		return failure("resize: %s", reason)
	}
	ctx.Tree.MarkDirty(col.NodeID())
	return ok()
}

// deltaForAction turns a resize command's set|grow|shrink action into the
// signed pixel delta AdjustSiblingFraction expects.
func deltaForAction(action string, amountPx, currentPx int) int {
	switch action {
	case "set":
		return amountPx - currentPx
	case "shrink":
		return -amountPx
	default: // grow
		return amountPx
	}
}

func indexOfColumn(cols []*tree.Column, target *tree.Column) int {
	for i, c := range cols {
		if c.NodeID() == target.NodeID() {
			return i
		}
	}
	return -1
}

func indexOfWindow(wins []*tree.Window, target *tree.Window) int {
	for i, w := range wins {
		if w.NodeID() == target.NodeID() {
			return i
		}
	}
	return -1
}
