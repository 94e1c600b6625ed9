// Package wire names the opaque collaborator interfaces spec §6.1 lists
// as "collaborators consumed": surface primitives, output primitives,
// and the input event stream. internal/tree and internal/view only ever
// hold these as `any` (see tree.Window.Surface's doc comment) so that
// neither package has an import-time dependency on a protocol
// implementation; internal/engine is the only place a concrete Wayland
// client (built the way the teacher's wayland.go/window.go wires
// proto.Seat/proto.Output) is expected to satisfy them.
package wire

import "github.com/wlcolm/colmwm/internal/geom"

// ConfigureFlags are bits a surface configure can carry alongside a
// target size, mirroring the teacher's LayerSurfaceConfigureEvent/
// ToplevelConfigureEvent state bitmasks.
type ConfigureFlags int

const (
	ConfigureActivated ConfigureFlags = 1 << iota
	ConfigureResizing
	ConfigureTiledLeft
	ConfigureTiledRight
	ConfigureTiledTop
	ConfigureTiledBottom
	ConfigureFullscreen
)

// Surface is the opaque handle spec §6.1 names: "send_configure(w,h,
// flags), subscribe_ack, get_current_size, surface_at(lx,ly)->(child_
// surface, sx, sy), subscribe_unmap, capture_texture_for_close_animation".
// A concrete implementation wraps one client's toplevel/layer surface the
// way the teacher's Window wraps a *proto.WlSurface plus its
// *proto.LayerSurface pair.
type Surface interface {
	// SendConfigure requests a new size and state from the client.
	// Returns a serial the commit's in-flight set tracks until Ack.
	SendConfigure(width, height int, flags ConfigureFlags) (serial uint32)

	// SubscribeAck registers fn to run when the client acks serial (or
	// any later one, since acks need not arrive in request order).
	SubscribeAck(fn func(serial uint32))

	// CurrentSize reports the surface's last-committed buffer size.
	CurrentSize() (width, height int)

	// SurfaceAt resolves a point in this surface's local coordinates to
	// the most specific subsurface/popup under it, mirroring wl_surface's
	// own input-region + subsurface stack walk; ok is false outside the
	// surface's input region entirely.
	SurfaceAt(lx, ly int) (child Surface, sx, sy int, ok bool)

	// SubscribeUnmap registers fn to run when the client destroys or
	// unmaps this surface.
	SubscribeUnmap(fn func())

	// CaptureTextureForCloseAnimation reads back the surface's
	// last-rendered pixels for internal/view.CaptureSavedBuffer, in
	// BGRA8888 wire order (the teacher's ShmFormatAbgr8888 buffers use
	// the same byte order internal/view.CaptureSavedBuffer expects).
	CaptureTextureForCloseAnimation() (width, height, stride int, pix []byte)
}

// PopupSurface is a transient child surface (xdg_popup or a Wayland
// subsurface) positioned relative to its parent; internal/view's
// Collaborators.PopupsFor walks a window's popup tree through this.
type PopupSurface interface {
	Surface
	// Anchor reports this popup's offset from its parent surface's origin.
	Anchor() geom.Rect
}
