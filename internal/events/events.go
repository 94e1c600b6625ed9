// Package events defines the engine's outward notification surface (spec
// §4.12). The teacher wires one callback field per wire event
// (proto.OutputHandlers.OnGeometry, proto.DisplayHandlers.OnError, ...);
// here that is generalized to a single Sink.Emit call carrying a typed
// Event, since the engine's event surface is open-ended (new Kinds are
// added as commands grow) where the teacher's is fixed by the Wayland
// protocol it implements.
package events

import "github.com/wlcolm/colmwm/internal/ids"

// Kind names one semantic change a caller may want to react to. Values
// match spec §4.12's event names.
type Kind string

const (
	KindWindowNew            Kind = "window: new"
	KindWindowClose          Kind = "window: close"
	KindWindowFocus          Kind = "window: focus"
	KindWindowTitle          Kind = "window: title"
	KindWindowMove           Kind = "window: move"
	KindWindowFullscreenMode Kind = "window: fullscreen_mode"
	KindWindowMark           Kind = "window: mark"
	KindWindowUrgent         Kind = "window: urgent"
	KindWindowFloating       Kind = "window: floating"

	KindWorkspaceFocus  Kind = "workspace: focus"
	KindWorkspaceMove   Kind = "workspace: move"
	KindWorkspaceUrgent Kind = "workspace: urgent"
	KindWorkspaceRename Kind = "workspace: rename"

	KindOutputEnable  Kind = "output: enable"
	KindOutputDisable Kind = "output: disable"
)

// Event is one notification. Not every field applies to every Kind; the
// Kind's doc comment in spec §4.12 says which.
type Event struct {
	Kind Kind

	WindowID    ids.ID
	WorkspaceID ids.ID
	OutputID    ids.ID

	// OldWorkspaceID carries the "old" arg for workspace: focus (spec
	// §4.6 step 3) and the source workspace for workspace: move.
	OldWorkspaceID ids.ID

	Detail string // e.g. the new title, the mark name, the rename
}

// Sink receives events as they happen. Engine callers normally fan this
// out to IPC subscribers (cmd/colmwmctl); internal/launch's pid registry
// takes no events.
type Sink interface {
	Emit(Event)
}

// Discard is a Sink that drops every event, for callers (tests, headless
// tools) that don't need notifications.
type Discard struct{}

func (Discard) Emit(Event) {}

// Multi fans one Emit call out to several sinks, in order.
type Multi []Sink

func (m Multi) Emit(e Event) {
	for _, s := range m {
		s.Emit(e)
	}
}
