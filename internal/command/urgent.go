package command

// cmdUrgent implements spec §4.7's "urgent allow|deny|BOOL", grounded on
// original_source/hayward/commands/urgent.c. "allow"/"deny" gate whether
// the window may ever be marked urgent (UrgentAllowed); a bare boolean
// sets or clears its current urgency through the seat, which bubbles the
// change up to workspace urgency (spec §4.6).
func cmdUrgent(ctx *Context, args []string) Result {
	w, errRes := windowOrFailure(ctx)
	if errRes != nil {
		return *errRes
	}
	if len(args) == 0 {
		return invalid("urgent: expected allow, deny, or a boolean")
	}

	switch args[0] {
	case "allow":
		w.UrgentAllowed = true
		return ok()
	case "deny":
		w.UrgentAllowed = false
		ctx.Seat.SetUrgent(ctx.Tree, w, false)
		return ok()
	case "enable", "true", "yes", "on":
		ctx.Seat.SetUrgent(ctx.Tree, w, true)
		return ok()
	case "disable", "false", "no", "off":
		ctx.Seat.SetUrgent(ctx.Tree, w, false)
		return ok()
	default:
		return invalid("urgent: unrecognized argument %q", args[0])
	}
}
