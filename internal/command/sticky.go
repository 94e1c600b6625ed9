package command

// cmdSticky implements spec §4.7's "sticky enable|disable|toggle",
// grounded on original_source/hayward/commands/sticky.c. A sticky
// floating window follows its output's active workspace (invariant 4);
// the command itself only flips the flag, since SetActiveWorkspace
// already performs the reparenting whenever the active workspace next
// changes.
func cmdSticky(ctx *Context, args []string) Result {
	w, errRes := windowOrFailure(ctx)
	if errRes != nil {
		return *errRes
	}
	if !w.IsFloating() {
		return failure("sticky: focused window is not floating")
	}

	want := !w.IsSticky
	if len(args) > 0 {
		switch args[0] {
		case "enable":
			want = true
		case "disable":
			want = false
		case "toggle":
			want = !w.IsSticky
		default:
			return invalid("sticky: unrecognized argument %q", args[0])
		}
	}
	if want == w.IsSticky {
		return ok()
	}
	w.IsSticky = want
	ctx.Tree.MarkDirty(w.NodeID())
	return ok()
}
