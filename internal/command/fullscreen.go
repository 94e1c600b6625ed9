package command

import (
	"github.com/wlcolm/colmwm/internal/events"
	"github.com/wlcolm/colmwm/internal/tree"
)

// cmdFullscreen implements spec §4.7's "fullscreen enable|disable|toggle
// [global]", grounded on original_source/hayward/commands/fullscreen.c.
func cmdFullscreen(ctx *Context, args []string) Result {
	w, errRes := windowOrFailure(ctx)
	if errRes != nil {
		return *errRes
	}

	action := "toggle"
	global := false
	for _, a := range args {
		switch a {
		case "enable", "disable", "toggle":
			action = a
		case "global":
			global = true
		default:
			return invalid("fullscreen: unrecognized argument %q", a)
		}
	}

	if global {
		enable := action == "enable" || (action == "toggle" && w.Fullscreen != tree.FullscreenGlobal)
		ctx.Tree.SetFullscreenGlobal(w, enable)
	} else {
		ws := ctx.Tree.Workspace(w.Workspace)
		if ws == nil {
			return failure("window has no workspace")
		}
		enable := action == "enable" || (action == "toggle" && ws.Fullscreen != w.NodeID())
		ctx.Tree.SetFullscreenWorkspace(w, enable)
	}

	ctx.emit(events.Event{Kind: events.KindWindowFullscreenMode, WindowID: w.NodeID()})
	return ok()
}
