package wire

import "github.com/wlcolm/colmwm/internal/geom"

// Transform mirrors wl_output's transform enum (rotation/flip applied
// before scaling), carried opaquely since internal/tree never rotates
// geometry itself — only the concrete output device does at present time.
type Transform int

const (
	TransformNormal Transform = iota
	Transform90
	Transform180
	Transform270
	TransformFlipped
	TransformFlipped90
	TransformFlipped180
	TransformFlipped270
)

// OutputDevice is the opaque handle spec §6.1 names: "get_usable_area,
// get_layout_rect, get_scale, get_transform, schedule_frame, damage_
// region(rect)". A concrete implementation wraps one physical display
// the way the teacher's WaylandGlobals wraps a single *proto.Output;
// colmwm generalizes that single-output assumption to one OutputDevice
// per enabled tree.Output.
type OutputDevice interface {
	// UsableArea is the output's layout rect minus any exclusive-zone
	// reservations from layer-shell surfaces (panels, bars).
	UsableArea() geom.Rect

	// LayoutRect is the output's full rect in layout (global) coordinates.
	LayoutRect() geom.Rect

	Scale() float64
	Transform() Transform

	// ScheduleFrame requests the next frame callback; fn runs once the
	// compositor is ready for this output's next commit.
	ScheduleFrame(fn func())

	// DamageRegion marks rect (in this output's local coordinates) as
	// needing a repaint on the next frame.
	DamageRegion(rect geom.Rect)
}
