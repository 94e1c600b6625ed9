package command

import (
	"strconv"

	"github.com/wlcolm/colmwm/internal/events"
	"github.com/wlcolm/colmwm/internal/ids"
	"github.com/wlcolm/colmwm/internal/tree"
)

// cmdWorkspace implements spec §4.7's "workspace NAME" (switch, creating
// it if absent) and "workspace NAME gaps inner|outer... AMOUNT" (a
// per-workspace gaps override, applied without switching focus),
// grounded on original_source/hayward/commands/workspace.c and
// .../gaps.c.
func cmdWorkspace(ctx *Context, args []string) Result {
	if len(args) == 0 {
		return invalid("workspace: expected a name")
	}
	name := args[0]

	if len(args) > 1 && args[1] == "gaps" {
		ws := ctx.Tree.CreateWorkspace(name)
		return applyGapsTo(ctx, ws, args[2:])
	}

	if ctx.Config != nil && ctx.Config.AutoBackAndForth {
		if cur := ctx.Seat.FocusedWorkspace(); cur != nil && cur.Name == name {
			if prev := ctx.Seat.PreviousWorkspaceName(); prev != "" {
				name = prev
			}
		}
	}

	ws := ctx.Tree.CreateWorkspace(name)
	if ws.Output == ids.Nil {
		out := defaultOutputFor(ctx)
		if out == nil {
			return failure("no output available to hold workspace %q", name)
		}
		ctx.Tree.AttachWorkspaceToOutput(ws, out)
	}
	ctx.Seat.FocusWorkspace(ws)
	if out := ctx.Tree.Output(ws.Output); out != nil {
		out.SetActiveWorkspace(ws)
	}
	ctx.emit(events.Event{Kind: events.KindWorkspaceFocus, WorkspaceID: ws.NodeID()})
	return ok()
}

// cmdWorkspaceAutoBackAndForth implements spec §4.7/SPEC_FULL §C.1's
// "workspace_auto_back_and_forth BOOL".
func cmdWorkspaceAutoBackAndForth(ctx *Context, args []string) Result {
	if len(args) == 0 {
		return invalid("workspace_auto_back_and_forth: expected a boolean")
	}
	b, err := strconv.ParseBool(args[0])
	if err != nil {
		return invalid("workspace_auto_back_and_forth: %v", err)
	}
	if ctx.Config != nil {
		ctx.Config.AutoBackAndForth = b
	}
	return ok()
}

// defaultOutputFor picks the output a brand-new workspace lands on: the
// currently focused workspace's output, else the first enabled output.
func defaultOutputFor(ctx *Context) *tree.Output {
	if cur := ctx.Seat.FocusedWorkspace(); cur != nil {
		if out := ctx.Tree.Output(cur.Output); out != nil {
			return out
		}
	}
	for _, o := range ctx.Tree.Outputs() {
		if o.Enabled {
			return o
		}
	}
	return nil
}
