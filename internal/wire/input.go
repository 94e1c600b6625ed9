package wire

// SeatCapability mirrors wl_seat's capability bitmask (proto.
// SeatCapabilityPointer/Keyboard/Touch in the teacher's generated
// bindings, tested with & in HandleSeatCapabilities) so
// internal/engine's seat-attach logic reads the same way the teacher's
// does, just generalized across however many seats the compositor
// exposes instead of the teacher's single implicit seat.
type SeatCapability int

const (
	CapabilityPointer SeatCapability = 1 << iota
	CapabilityKeyboard
	CapabilityTouch
)

// Button codes are Linux evdev input-event codes, the values wl_pointer.
// button's payload carries verbatim (BTN_LEFT etc.), not a compositor
// invention.
const (
	BtnLeft   = 0x110
	BtnRight  = 0x111
	BtnMiddle = 0x112
	BtnSide   = 0x113
	BtnExtra  = 0x114
)

// EventKind tags one entry in the input primitive's event stream (spec
// §6.1: "pointer/touch/tablet event stream with (seat_id, device_id,
// event_kind, time_msec, payload)").
type EventKind int

const (
	EventPointerMotion EventKind = iota
	EventPointerButton
	EventPointerAxis
	EventPointerFrame
	EventKeyboardKey
	EventKeyboardModifiers
	EventTouchDown
	EventTouchUp
	EventTouchMotion
)

// ButtonState mirrors wl_pointer.button_state.
type ButtonState int

const (
	ButtonReleased ButtonState = iota
	ButtonPressed
)

// InputEvent is one entry off the Input primitive's stream. Payload
// carries whichever of the typed payload fields applies to Kind; the
// others are zero.
type InputEvent struct {
	SeatID   uint32
	DeviceID uint32
	Kind     EventKind
	TimeMsec uint32

	// Pointer/touch payload, in layout coordinates (already translated
	// from the owning output's local space by the Input primitive).
	X, Y int

	Button      uint32
	ButtonState ButtonState

	AxisHorizontal, AxisVertical float64

	Key       uint32
	Modifiers uint32

	TouchID int32
}

// InputStream is the opaque handle spec §6.1 names for "input
// primitives": a source of InputEvent that internal/engine's event loop
// pumps into focus, hittest, and seatops (drag-move/resize) the way the
// teacher's attachPointer/attachKeyboard wire proto.Pointer/proto.
// Keyboard callbacks into Window's own handlers.
type InputStream interface {
	// Subscribe registers fn to run for every InputEvent until the
	// returned cancel func is called.
	Subscribe(fn func(InputEvent)) (cancel func())
}
