package command

import (
	"github.com/wlcolm/colmwm/internal/events"
	"github.com/wlcolm/colmwm/internal/tree"
)

// cmdMark implements spec §4.7's "mark [--add|--replace|--toggle] NAME",
// grounded on original_source/hayward/commands/mark.c. Marks are globally
// unique: claiming one clears it from whatever window held it before.
func cmdMark(ctx *Context, args []string) Result {
	mode := "--replace"
	if len(args) > 0 && (args[0] == "--add" || args[0] == "--replace" || args[0] == "--toggle") {
		mode, args = args[0], args[1:]
	}
	if len(args) == 0 {
		return invalid("mark: expected a name")
	}
	name := args[0]

	w, errRes := windowOrFailure(ctx)
	if errRes != nil {
		return *errRes
	}

	if mode == "--toggle" && w.HasMark(name) {
		return unmarkOne(ctx, w, name)
	}

	ctx.Tree.ClearMarkEverywhere(name)
	if mode != "--add" {
		w.Marks = nil
	}
	if !w.HasMark(name) {
		w.Marks = append(w.Marks, name)
	}
	ctx.Tree.MarkDirty(w.NodeID())
	ctx.emit(events.Event{Kind: events.KindWindowMark, WindowID: w.NodeID()})
	return ok()
}

// cmdUnmark implements spec §4.7's "unmark [NAME]": with no argument,
// clears every mark from the focused window.
func cmdUnmark(ctx *Context, args []string) Result {
	w, errRes := windowOrFailure(ctx)
	if errRes != nil {
		return *errRes
	}
	if len(args) == 0 {
		w.Marks = nil
		ctx.Tree.MarkDirty(w.NodeID())
		ctx.emit(events.Event{Kind: events.KindWindowMark, WindowID: w.NodeID()})
		return ok()
	}
	return unmarkOne(ctx, w, args[0])
}

func unmarkOne(ctx *Context, w *tree.Window, name string) Result {
	out := w.Marks[:0]
	for _, m := range w.Marks {
		if m != name {
			out = append(out, m)
		}
	}
	w.Marks = out
	ctx.Tree.MarkDirty(w.NodeID())
	ctx.emit(events.Event{Kind: events.KindWindowMark, WindowID: w.NodeID()})
	return ok()
}
