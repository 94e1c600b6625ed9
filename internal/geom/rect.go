// Package geom holds the small pixel-rectangle type shared by the tree,
// arranger, hit-tester and renderer-facing view. Every coordinate in this
// engine is an integer layout-space pixel (spec §3.1's lx/ly/w/h).
package geom

// Rect is an axis-aligned pixel rectangle in layout coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies within r (half-open: the right and
// bottom edges are excluded).
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Shrink returns r inset by the given amount on each side. Negative gaps
// grow the rectangle instead.
func (r Rect) Shrink(top, right, bottom, left int) Rect {
	return Rect{
		X: r.X + left,
		Y: r.Y + top,
		W: r.W - left - right,
		H: r.H - top - bottom,
	}
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Edge names one of a rectangle's four sides, or none; NearestEdge and
// EdgeSlice use it for the drag-move drop-zone computation (spec §4.8).
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeRight
	EdgeTop
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return "none"
	}
}

// NearestEdge returns the edge of r closest to (x, y) and the pixel
// distance to it. (x, y) need not be inside r.
func (r Rect) NearestEdge(x, y int) (Edge, int) {
	left := abs(x - r.X)
	right := abs(r.X + r.W - x)
	top := abs(y - r.Y)
	bottom := abs(r.Y + r.H - y)

	edge, dist := EdgeLeft, left
	if right < dist {
		edge, dist = EdgeRight, right
	}
	if top < dist {
		edge, dist = EdgeTop, top
	}
	if bottom < dist {
		edge, dist = EdgeBottom, bottom
	}
	return edge, dist
}

// EdgeSlice returns the thickness-pixel-thick slice of r along edge e,
// used to compute the drop-box rectangle (spec §4.8 step 6).
func (r Rect) EdgeSlice(e Edge, thickness int) Rect {
	switch e {
	case EdgeLeft:
		return Rect{r.X, r.Y, thickness, r.H}
	case EdgeRight:
		return Rect{r.X + r.W - thickness, r.Y, thickness, r.H}
	case EdgeTop:
		return Rect{r.X, r.Y, r.W, thickness}
	case EdgeBottom:
		return Rect{r.X, r.Y + r.H - thickness, r.W, thickness}
	default:
		return Rect{}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
