// Package command implements the user-facing command surface of spec
// §4.7: one handler per command name, each returning a Result that is
// success, invalid (bad syntax), failure (a runtime precondition wasn't
// met), or defer (valid but not yet applicable).
//
// Grounded on the teacher's argv-driven control flow in
// cmd/ctxmenu/main.go (parse tokens, dispatch, report back over a
// channel) generalized from "one menu-popup action" to a named-command
// table; each handler below is grounded on the matching
// original_source/{hayward,wmiiv}/commands/*.c file.
package command

import (
	"fmt"

	"github.com/wlcolm/colmwm/internal/events"
	"github.com/wlcolm/colmwm/internal/focus"
	"github.com/wlcolm/colmwm/internal/tree"
)

// Status is a command's outcome class (spec §4.7/§7).
type Status int

const (
	StatusSuccess Status = iota
	StatusInvalid
	StatusFailure
	StatusDefer
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInvalid:
		return "invalid"
	case StatusFailure:
		return "failure"
	case StatusDefer:
		return "defer"
	default:
		return "unknown"
	}
}

// Result is what every command handler returns.
type Result struct {
	Status  Status
	Message string // empty on success
}

func ok() Result                       { return Result{Status: StatusSuccess} }
func invalid(format string, a ...any) Result {
	return Result{Status: StatusInvalid, Message: fmt.Sprintf(format, a...)}
}
func failure(format string, a ...any) Result {
	return Result{Status: StatusFailure, Message: fmt.Sprintf(format, a...)}
}
func deferred(format string, a ...any) Result {
	return Result{Status: StatusDefer, Message: fmt.Sprintf(format, a...)}
}

// Context is the state every handler needs: the tree to mutate, the
// seat whose focus the command is relative to, and the event sink to
// notify. internal/engine constructs one per incoming command.
type Context struct {
	Tree   *tree.Tree
	Seat   *focus.Seat
	Sink   events.Sink
	Config *Config
}

func (c *Context) emit(e events.Event) {
	if c.Sink != nil {
		c.Sink.Emit(e)
	}
}

// Config is the subset of internal/config's settings commands read or
// mutate (workspace auto-back-and-forth, show_marks). Kept as a narrow
// interface-shaped struct here so internal/command has no import-time
// dependency on internal/config's YAML-loading concerns.
type Config struct {
	AutoBackAndForth bool
	ShowMarks        bool
}

// Handler runs one command given its already-tokenized arguments.
type Handler func(ctx *Context, args []string) Result

// Dispatch is the static name->handler table (spec §9's redesign note:
// replaces the source's per-command function-pointer registration with
// a plain map literal).
var Dispatch = map[string]Handler{
	"focus":                         cmdFocus,
	"move":                          cmdMove,
	"resize":                        cmdResize,
	"layout":                        cmdLayout,
	"split":                         cmdSplit,
	"swap":                          cmdSwap,
	"mark":                          cmdMark,
	"unmark":                        cmdUnmark,
	"sticky":                        cmdSticky,
	"floating":                      cmdFloating,
	"fullscreen":                    cmdFullscreen,
	"urgent":                        cmdUrgent,
	"workspace":                     cmdWorkspace,
	"gaps":                          cmdGaps,
	"smart_gaps":                    cmdSmartGaps,
	"show_marks":                    cmdShowMarks,
	"workspace_auto_back_and_forth": cmdWorkspaceAutoBackAndForth,
}

// Run looks up name in Dispatch and invokes it, returning invalid if the
// name is unknown.
func Run(ctx *Context, name string, args []string) Result {
	h, found := Dispatch[name]
	if !found {
		return invalid("unknown command %q", name)
	}
	return h(ctx, args)
}

func parseDirection(s string) (tree.Direction, bool) {
	switch s {
	case "left":
		return tree.DirLeft, true
	case "right":
		return tree.DirRight, true
	case "up":
		return tree.DirUp, true
	case "down":
		return tree.DirDown, true
	default:
		return 0, false
	}
}

func windowOrFailure(ctx *Context) (*tree.Window, *Result) {
	w := ctx.Seat.FocusedWindow()
	if w == nil {
		r := failure("no focused window")
		return nil, &r
	}
	return w, nil
}
