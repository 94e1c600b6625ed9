package focus

import "github.com/wlcolm/colmwm/internal/tree"

// FocusDirection implements spec §4.7's "focus DIRECTION": the nearest
// tiling window in dir from the seat's currently focused window, by
// rectangle center distance. If none exists on the current workspace, it
// tries the active workspace of the adjacent output in that direction
// (spec: "from a right-edge window, direction=right attempts an
// adjacent output's active workspace"). Returns ok=false ("no-target")
// if neither yields a candidate.
func (s *Seat) FocusDirection(dir tree.Direction) (*tree.Window, bool) {
	cur := s.FocusedWindow()
	if cur == nil {
		return nil, false
	}
	ws := s.tree.Workspace(cur.Workspace)
	if ws == nil {
		return nil, false
	}

	cx, cy := cur.Current.Rect.Center()
	var best *tree.Window
	bestDist := -1
	for _, w := range tilingWindowsOf(ws) {
		if w.NodeID() == cur.NodeID() {
			continue
		}
		wx, wy := w.Current.Rect.Center()
		if !inDirection(dir, cx, cy, wx, wy) {
			continue
		}
		d := distSq(cx, cy, wx, wy)
		if best == nil || d < bestDist {
			best, bestDist = w, d
		}
	}
	if best != nil {
		return best, true
	}

	out := s.tree.Output(ws.Output)
	if out == nil {
		return nil, false
	}
	adj := adjacentOutput(s.tree, out, dir)
	if adj == nil {
		return nil, false
	}
	adjWs := adj.ActiveWorkspace()
	if adjWs == nil {
		return nil, false
	}
	if w := firstFocusCandidate(adjWs); w != nil {
		return w, true
	}
	return nil, false
}

func tilingWindowsOf(ws *tree.Workspace) []*tree.Window {
	var out []*tree.Window
	for _, c := range ws.Columns() {
		out = append(out, c.Children()...)
	}
	return out
}

func firstFocusCandidate(ws *tree.Workspace) *tree.Window {
	for _, c := range ws.Columns() {
		if w := c.Active(); w != nil {
			return w
		}
		if children := c.Children(); len(children) > 0 {
			return children[0]
		}
	}
	if floating := ws.Floating(); len(floating) > 0 {
		return floating[len(floating)-1]
	}
	return nil
}

func inDirection(dir tree.Direction, cx, cy, x, y int) bool {
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

func distSq(x1, y1, x2, y2 int) int {
	dx, dy := x1-x2, y1-y2
	return dx*dx + dy*dy
}

// adjacentOutput picks the enabled output whose rect center lies in dir
// from out, closest first.
func adjacentOutput(t *tree.Tree, out *tree.Output, dir tree.Direction) *tree.Output {
	ocx, ocy := out.Rect.Center()
	var best *tree.Output
	bestDist := -1
	for _, cand := range t.Outputs() {
		if cand.NodeID() == out.NodeID() || !cand.Enabled {
			continue
		}
		cx, cy := cand.Rect.Center()
		if !inDirection(dir, ocx, ocy, cx, cy) {
			continue
		}
		d := distSq(ocx, ocy, cx, cy)
		if best == nil || d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}
