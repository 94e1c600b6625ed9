// Package engine wires the tree, commit discipline, arrangement,
// hit-testing, focus, command dispatch, interactive ops, and the
// renderer snapshot together into one running compositor core. Grounded
// on the teacher's WaylandGlobals/Window, which owns every proto object
// (compositor, shm, seat, layer_shell, output) and wires their callbacks
// into one piece of state; colmwm generalizes that single-output,
// single-seat wiring into N outputs and N seats, and "one proto object's
// callbacks" into "one internal package's exported API".
package engine

import (
	"context"

	"github.com/wlcolm/colmwm/internal/command"
	"github.com/wlcolm/colmwm/internal/config"
	"github.com/wlcolm/colmwm/internal/events"
	"github.com/wlcolm/colmwm/internal/focus"
	"github.com/wlcolm/colmwm/internal/geom"
	"github.com/wlcolm/colmwm/internal/hittest"
	"github.com/wlcolm/colmwm/internal/ids"
	"github.com/wlcolm/colmwm/internal/launch"
	"github.com/wlcolm/colmwm/internal/seatops"
	"github.com/wlcolm/colmwm/internal/tree"
	"github.com/wlcolm/colmwm/internal/txn"
	"github.com/wlcolm/colmwm/internal/view"
	"github.com/wlcolm/colmwm/internal/wire"
)

// interactiveOp is whatever the pointer is currently driving for one
// seat: a drag-move or one of the two resize modes. The interface covers
// only PointerMotion; Engine type-switches on it to call Finalize, since
// Finalize's signature differs (DragMove reports whether anything moved; the
// resize ops don't need to).
type interactiveOp interface {
	PointerMotion(x, y int)
}

// Engine owns one compositor's full runtime state.
type Engine struct {
	Tree   *tree.Tree
	Config *config.Config
	Sink   events.Sink

	Seats    map[string]*focus.Seat
	Resolver *hittest.Resolver
	Launch   *launch.Registry
	View     *view.Store

	txn *txn.Engine

	activeOp     map[string]interactiveOp
	dragOp       map[string]*seatops.DragMove
	resizing     map[ids.ID]bool
	resizeWindow map[string]ids.ID
	popupsFor   func(w *tree.Window) []view.PopupItem
	dragIconsOf func() []view.DragIcon

	acks map[uint32]chan struct{}
}

// Arranger is the narrow interface internal/arrange.Arranger satisfies;
// kept here, not imported directly, so engine's constructor can accept
// any arranger the caller wires up (txn.Arranger already has this
// shape — restated so callers don't need to import txn just to build one).
type Arranger = txn.Arranger

// New wires a fresh engine around an existing tree. arranger is normally
// an *arrange.Arranger built from cfg.ArrangeOptions(); the caller picks
// it explicitly rather than engine importing internal/arrange itself,
// keeping the dependency one-directional (arrange -> tree, engine ->
// arrange) instead of a cycle.
func New(t *tree.Tree, cfg *config.Config, sink events.Sink, arranger Arranger) *Engine {
	if sink == nil {
		sink = events.Discard{}
	}
	e := &Engine{
		Tree:     t,
		Config:   cfg,
		Sink:     sink,
		Seats:    map[string]*focus.Seat{},
		Launch:   &launch.Registry{},
		View:     &view.Store{},
		activeOp:     map[string]interactiveOp{},
		resizing:     map[ids.ID]bool{},
		resizeWindow: map[string]ids.ID{},
		dragOp:   map[string]*seatops.DragMove{},
		acks:     map[uint32]chan struct{}{},
	}
	e.Resolver = &hittest.Resolver{Tree: t, FocusedWindow: e.firstFocusedWindow}
	e.txn = txn.NewEngine(t, arranger, e)
	return e
}

// Seat returns the named seat, creating it (with the config's effective
// focus_wrapping for that name) if this is the first time it's seen.
func (e *Engine) Seat(name string) *focus.Seat {
	if s, ok := e.Seats[name]; ok {
		return s
	}
	s := focus.NewSeat(name, e.Tree, e.Sink)
	if e.Config != nil {
		s.Wrapping = e.Config.FocusWrappingFor(name)
	}
	e.Seats[name] = s
	return s
}

// firstFocusedWindow backs Resolver.FocusedWindow: hit-testing's rule 6a
// ("currently focused view's own popup") doesn't distinguish which seat,
// so any one seat's focus is as good as another's for a single-seat
// deployment; multi-seat installs should instead build a per-seat
// Resolver (cheap: Resolver holds no mutable state of its own).
func (e *Engine) firstFocusedWindow() *tree.Window {
	for _, s := range e.Seats {
		if w := s.FocusedWindow(); w != nil {
			return w
		}
	}
	return nil
}

// RunCommand dispatches one tokenized command on behalf of seatName
// (spec §4.7/§6.2).
func (e *Engine) RunCommand(seatName, name string, args []string) command.Result {
	if len(e.Tree.Outputs()) == 0 {
		return command.Result{Status: command.StatusInvalid, Message: "no output"}
	}
	ctx := &command.Context{
		Tree:   e.Tree,
		Seat:   e.Seat(seatName),
		Sink:   e.Sink,
		Config: e.commandConfig(),
	}
	res := command.Run(ctx, name, args)
	if e.Config != nil {
		e.Config.AutoBackAndForth = ctx.Config.AutoBackAndForth
		e.Config.ShowMarks = ctx.Config.ShowMarks
	}
	return res
}

func (e *Engine) commandConfig() *command.Config {
	if e.Config == nil {
		return &command.Config{}
	}
	return &command.Config{AutoBackAndForth: e.Config.AutoBackAndForth, ShowMarks: e.Config.ShowMarks}
}

// Commit runs one transaction retirement (spec §4.3/§5) and, on success,
// rebuilds and publishes the renderer snapshot (spec §4.10).
func (e *Engine) Commit(ctx context.Context) (txn.Result, error) {
	res, err := e.txn.Commit(ctx)
	if err != nil {
		return res, err
	}
	e.View.Publish(view.Build(e.Tree, e.collaborators()))
	return res, nil
}

func (e *Engine) collaborators() view.Collaborators {
	return view.Collaborators{
		FocusedWindow: e.firstFocusedWindow,
		PopupsFor:     e.popupsFor,
		DragIcons:     e.dragIconsOf,
		DropZone:      e.dropZoneFor,
		ShowMarks:     e.Config != nil && e.Config.ShowMarks,
	}
}

func (e *Engine) dropZoneFor(outputID ids.ID) (geom.Rect, bool) {
	for _, d := range e.dragOp {
		if d.Phase() != seatops.PhaseThresholded {
			continue
		}
		out := d.TargetOutput()
		if out == nil || out.NodeID() != outputID {
			continue
		}
		return d.DropBox()
	}
	return geom.Rect{}, false
}

// SetPopupSource wires the popup-tree walker internal/wire's concrete
// client implements; internal/view and internal/hittest both consult it
// through this one callback.
func (e *Engine) SetPopupSource(fn func(w *tree.Window) []view.PopupItem) {
	e.popupsFor = fn
	e.Resolver.Popup = func(win *tree.Window, x, y int) (any, int, int, bool) {
		for _, p := range fn(win) {
			if p.Rect.Contains(x, y) {
				return p.Surface, x - p.Rect.X, y - p.Rect.Y, true
			}
		}
		return nil, 0, 0, false
	}
}

// SetDragIconSource wires the drag-icon list shown during an interactive
// op's overlay (spec §4.10).
func (e *Engine) SetDragIconSource(fn func() []view.DragIcon) {
	e.dragIconsOf = fn
}

// Configure implements txn.Configurer: send one configure to win's wire
// surface and return a channel that closes on ack.
func (e *Engine) Configure(win *tree.Window) <-chan struct{} {
	ch := make(chan struct{})
	surf, ok := win.Surface.(wire.Surface)
	if !ok || surf == nil {
		close(ch)
		return ch
	}
	flags := wire.ConfigureFlags(0)
	if e.resizing[win.NodeID()] {
		flags |= wire.ConfigureResizing
	}
	serial := surf.SendConfigure(win.Pending.Rect.W, win.Pending.Rect.H, flags)
	e.acks[serial] = ch
	surf.SubscribeAck(func(acked uint32) {
		if c, ok := e.acks[acked]; ok {
			delete(e.acks, acked)
			close(c)
		}
	})
	return ch
}

// MapWindow creates a window for a newly-mapped client surface, placing
// it on the workspace its launching process recorded (spec §6.4) or,
// failing that, the seat's currently focused workspace.
func (e *Engine) MapWindow(seatName string, pid int, surf wire.Surface) *tree.Window {
	w := e.Tree.CreateWindow()
	w.Surface = surf

	seat := e.Seat(seatName)
	ws := e.launchWorkspace(pid)
	if ws == nil {
		ws = e.focusedWorkspace(seat)
	}
	if ws == nil {
		for _, out := range e.Tree.Outputs() {
			if out.Enabled {
				ws = out.ActiveWorkspace()
				break
			}
		}
	}
	if ws == nil {
		return w
	}

	col := e.focusedColumn(seat, ws)
	if col == nil {
		col = e.Tree.NewColumnInWorkspace(ws, len(ws.Columns()))
	}
	e.Tree.AttachWindowToColumn(w, col, len(col.Children()))
	e.Sink.Emit(events.Event{Kind: events.KindWindowNew, WindowID: w.NodeID()})
	return w
}

func (e *Engine) launchWorkspace(pid int) *tree.Workspace {
	if e.Launch == nil || pid <= 0 {
		return nil
	}
	name, _, ok := e.Launch.WorkspaceFor(pid)
	if !ok {
		return nil
	}
	return e.Tree.WorkspaceByName(name)
}

func (e *Engine) focusedWorkspace(seat *focus.Seat) *tree.Workspace {
	w := seat.FocusedWindow()
	if w == nil {
		return nil
	}
	return e.Tree.Workspace(w.Workspace)
}

func (e *Engine) focusedColumn(seat *focus.Seat, ws *tree.Workspace) *tree.Column {
	w := seat.FocusedWindow()
	if w == nil || w.Workspace != ws.NodeID() {
		return nil
	}
	return w.Column()
}

// RecordLaunch implements spec §6.4's command-side half: call this from
// whatever spawns a process on seatName's behalf (a command handler, an
// IPC "exec" request) so a freshly-mapped window lands on the right
// workspace.
func (e *Engine) RecordLaunch(seatName string, pid int) {
	seat := e.Seat(seatName)
	w := seat.FocusedWindow()
	if w == nil {
		return
	}
	ws := e.Tree.Workspace(w.Workspace)
	if ws == nil {
		return
	}
	outputID := ""
	if out := e.Tree.Output(ws.Output); out != nil {
		outputID = out.Name
	}
	e.Launch.Record(pid, ws.Name, outputID)
}

// BeginDragMove starts an interactive tiling-window move (spec §4.8).
func (e *Engine) BeginDragMove(seatName string, w *tree.Window, startX, startY int) {
	cfg := e.Config
	threshold := 9
	if cfg != nil {
		threshold = cfg.TilingDragThreshold
	}
	if ws := e.Tree.Workspace(w.Workspace); ws != nil {
		if out := e.Tree.Output(ws.Output); out != nil && out.Scale > 0 {
			threshold = int(float64(threshold) * out.Scale)
		}
	}
	d := seatops.NewDragMove(e.Tree, e.Resolver, e.Sink, w, startX, startY, threshold)
	e.dragOp[seatName] = d
	e.activeOp[seatName] = d
}

// PointerMotion advances whatever interactive op seatName currently has
// active, if any.
func (e *Engine) PointerMotion(seatName string, x, y int) {
	if op, ok := e.activeOp[seatName]; ok {
		op.PointerMotion(x, y)
	}
}

// EndDragMove finalizes seatName's in-progress drag-move, if any.
func (e *Engine) EndDragMove(seatName string) seatops.Result {
	d, ok := e.dragOp[seatName]
	if !ok {
		return seatops.Result{}
	}
	delete(e.dragOp, seatName)
	delete(e.activeOp, seatName)
	return d.Finalize()
}

// CancelDragMove aborts seatName's in-progress drag-move without
// applying it, e.g. because the moving window was destroyed mid-drag.
func (e *Engine) CancelDragMove(seatName string) {
	if d, ok := e.dragOp[seatName]; ok {
		d.Cancel()
	}
	delete(e.dragOp, seatName)
	delete(e.activeOp, seatName)
}

// BeginFloatingResize starts an interactive floating-window resize (spec
// §4.9).
func (e *Engine) BeginFloatingResize(seatName string, w *tree.Window, edges seatops.Edges, preserveRatio bool, startX, startY int) {
	e.activeOp[seatName] = seatops.NewFloatingResize(e.Tree, e.Sink, w, edges, preserveRatio, startX, startY)
	e.resizeWindow[seatName] = w.NodeID()
	e.resizing[w.NodeID()] = true
}

// BeginTiledResize starts an interactive tiled resize along axis
// ("width" or "height").
func (e *Engine) BeginTiledResize(seatName string, w *tree.Window, axis string, startX, startY int) {
	e.activeOp[seatName] = seatops.NewTiledResize(e.Tree, e.Sink, w, axis, startX, startY)
	e.resizeWindow[seatName] = w.NodeID()
	e.resizing[w.NodeID()] = true
}

// EndInteractiveOp finalizes whatever op seatName has active that isn't
// a drag-move (which reports a Result and so has its own EndDragMove).
func (e *Engine) EndInteractiveOp(seatName string) {
	op, ok := e.activeOp[seatName]
	if !ok {
		return
	}
	delete(e.activeOp, seatName)
	if id, ok := e.resizeWindow[seatName]; ok {
		delete(e.resizeWindow, seatName)
		delete(e.resizing, id)
	}
	switch o := op.(type) {
	case *seatops.FloatingResize:
		o.Finalize()
	case *seatops.TiledResize:
		o.Finalize()
	}
}
