package arrange

import "github.com/wlcolm/colmwm/internal/tree"

// SnapColumnWidthFractions rewrites every column's WidthFrac in ws to the
// exact fraction its last-arranged pixel width represents of the
// workspace's current total, per spec §4.4's closing paragraph: "width
// and height fractions are snapped to the exact pixel split before any
// resize command runs, so repeated +/-N resizes never drift from the
// rendered geometry." Callers (internal/command's resize handlers) run
// this immediately before adjusting a fraction.
func SnapColumnWidthFractions(ws *tree.Workspace) {
	cols := ws.Columns()
	if len(cols) == 0 {
		return
	}
	total := 0
	for _, c := range cols {
		total += c.Current.Rect.W
	}
	if total <= 0 {
		return
	}
	for _, c := range cols {
		c.WidthFrac = float64(c.Current.Rect.W) / float64(total)
	}
}

// SnapWindowHeightFractions is SnapColumnWidthFractions' counterpart for a
// column's children.
func SnapWindowHeightFractions(col *tree.Column) {
	children := col.Children()
	if len(children) == 0 {
		return
	}
	total := 0
	for _, w := range children {
		total += w.Current.Rect.H
	}
	if total <= 0 {
		return
	}
	for _, w := range children {
		w.HeightFrac = float64(w.Current.Rect.H) / float64(total)
	}
}

// AdjustSiblingFraction implements the predecessor/successor fraction
// split of spec §4.7's resize command for any ordered list of siblings
// that share a single fractional axis (columns across a workspace's
// width, or windows down a column's height) and spec §4.9's interactive
// drag-resize, which performs the same split on every pointer-motion
// event instead of once per command. The one axis Go generics earns its
// keep in this codebase, the teacher's own precedent for parameterizing
// over element type (menu.go's Menu[T]).
//
// Callers must have already run SnapColumnWidthFractions or
// SnapWindowHeightFractions on items' owner so pixelOf reflects the
// fractions being mutated. On failure it reports why via reason and
// leaves every fraction untouched.
func AdjustSiblingFraction[T any](items []T, idx int, amountPx, minPx int, fracOf func(T) *float64, pixelOf func(T) int) (ok bool, reason string) {
	if idx < 0 || idx >= len(items) {
		return false, "not found among its siblings"
	}
	total := 0
	for _, it := range items {
		total += pixelOf(it)
	}
	if total <= 0 {
		return false, "sibling total is zero"
	}

	delta := amountPx
	if delta == 0 {
		return true, ""
	}

	hasPrev, hasNext := idx > 0, idx < len(items)-1
	if !hasPrev && !hasNext {
		return false, "no neighbor to take from"
	}

	newSelfPx := pixelOf(items[idx]) + delta
	if newSelfPx < minPx {
		return false, "would violate the minimum"
	}

	var prevTake, nextTake int
	switch {
	case hasPrev && hasNext:
		prevTake = delta / 2
		nextTake = delta - prevTake
	case hasPrev:
		prevTake = delta
	default:
		nextTake = delta
	}

	if hasPrev && pixelOf(items[idx-1])-prevTake < minPx {
		return false, "would violate the minimum of the predecessor"
	}
	if hasNext && pixelOf(items[idx+1])-nextTake < minPx {
		return false, "would violate the minimum of the successor"
	}

	*fracOf(items[idx]) = float64(newSelfPx) / float64(total)
	if hasPrev {
		*fracOf(items[idx-1]) = float64(pixelOf(items[idx-1])-prevTake) / float64(total)
	}
	if hasNext {
		*fracOf(items[idx+1]) = float64(pixelOf(items[idx+1])-nextTake) / float64(total)
	}
	return true, ""
}
