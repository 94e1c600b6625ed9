package command

import "github.com/wlcolm/colmwm/internal/tree"

// adjacentOutputFor picks the enabled output whose rect lies in dir from
// reference, nearest center first. Grounded on
// original_source/hayward/commands/move.c's output_in_direction, minus
// the wlroots output-layout geometry query it wraps (this engine tracks
// output rects directly on the tree).
func adjacentOutputFor(ctx *Context, reference *tree.Output, dir tree.Direction) *tree.Output {
	rcx, rcy := reference.Rect.Center()
	var best *tree.Output
	bestDist := -1
	for _, cand := range ctx.Tree.Outputs() {
		if cand.NodeID() == reference.NodeID() || !cand.Enabled {
			continue
		}
		cx, cy := cand.Rect.Center()
		if !directionMatches(dir, rcx, rcy, cx, cy) {
			continue
		}
		d := (cx-rcx)*(cx-rcx) + (cy-rcy)*(cy-rcy)
		if best == nil || d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}

func directionMatches(dir tree.Direction, cx, cy, x, y int) bool {
	switch dir {
	case tree.DirLeft:
		return x < cx
	case tree.DirRight:
		return x > cx
	case tree.DirUp:
		return y < cy
	case tree.DirDown:
		return y > cy
	default:
		return false
	}
}
