package command

import "github.com/wlcolm/colmwm/internal/tree"

// cmdLayout implements spec §4.7's "layout splith|splitv|stacked|tabbed|
// toggle [split|tabbed|stacking]", grounded on
// original_source/hayward/commands/layout.c. This engine's columns have
// no horizontal-split sub-mode of their own (columns are already
// arranged left-to-right by the workspace; a column's own layout only
// governs how ITS children stack vertically), so splith and splitv both
// select split-vertical.
func cmdLayout(ctx *Context, args []string) Result {
	if len(args) == 0 {
		return invalid("layout: expected a mode")
	}
	w, errRes := windowOrFailure(ctx)
	if errRes != nil {
		return *errRes
	}
	col := w.Column()
	if col == nil {
		return failure("layout: focused window is not tiled")
	}

	switch args[0] {
	case "splith", "splitv":
		col.Layout = tree.LayoutSplitVertical
	case "stacked":
		col.Layout = tree.LayoutStacked
	case "tabbed":
		col.Layout = tree.LayoutTabbed
	case "toggle":
		col.Layout = toggleLayout(col.Layout, args[1:])
	default:
		return invalid("layout: unrecognized mode %q", args[0])
	}
	ctx.Tree.MarkDirty(col.NodeID())
	return ok()
}

// toggleLayout cycles a column's layout. With no arguments it cycles
// through all three modes; given a restricted list (e.g. "tabbed
// stacking") it cycles only among the named modes.
func toggleLayout(cur tree.ColumnLayout, allowed []string) tree.ColumnLayout {
	all := []tree.ColumnLayout{tree.LayoutSplitVertical, tree.LayoutStacked, tree.LayoutTabbed}
	if len(allowed) > 0 {
		all = all[:0]
		for _, a := range allowed {
			switch a {
			case "split":
				all = append(all, tree.LayoutSplitVertical)
			case "stacking":
				all = append(all, tree.LayoutStacked)
			case "tabbed":
				all = append(all, tree.LayoutTabbed)
			}
		}
		if len(all) == 0 {
			return cur
		}
	}
	for i, l := range all {
		if l == cur {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
