package command

// cmdFocus implements spec §4.7's "focus DIRECTION|WINDOW-CRITERIA".
// Grounded on original_source's focus command family (hayward/wmiiv's
// `cmd_focus`), simplified to the two forms spec.md actually names.
func cmdFocus(ctx *Context, args []string) Result {
	if len(args) == 0 {
		return invalid("focus: expected a direction or criteria")
	}

	if dir, isDir := parseDirection(args[0]); isDir {
		w, found := ctx.Seat.FocusDirection(dir)
		if !found {
			return failure("no-target")
		}
		ctx.Seat.SetFocusWindow(w)
		return ok()
	}

	if args[0] == "mark" {
		if len(args) < 2 {
			return invalid("focus mark: expected a mark name")
		}
		w := ctx.Tree.FindWindowByMark(args[1])
		if w == nil {
			return failure("no window marked %q", args[1])
		}
		ctx.Seat.SetFocusWindow(w)
		return ok()
	}

	return invalid("focus: unrecognized argument %q", args[0])
}
