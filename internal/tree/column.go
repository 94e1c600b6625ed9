package tree

import "github.com/wlcolm/colmwm/internal/ids"

// ColumnLayout is a column's tiling mode (spec §3.1).
type ColumnLayout int

const (
	LayoutSplitVertical ColumnLayout = iota
	LayoutStacked
	LayoutTabbed
)

// Column is a tiling sub-container inside a workspace (spec §3.1).
type Column struct {
	id   ids.ID
	tree *Tree

	Workspace ids.ID
	Layout    ColumnLayout

	children    []ids.ID
	ActiveChild ids.ID

	WidthFrac float64

	Pending GeoState
	Current GeoState

	destroying bool
}

func (t *Tree) newColumn(ws *Workspace) *Column {
	c := &Column{
		id:        t.gen.Next(),
		tree:      t,
		Workspace: ws.id,
		Layout:    LayoutSplitVertical,
	}
	t.columns[c.id] = c
	t.kind[c.id] = ids.KindColumn
	return c
}

func (c *Column) NodeID() ids.ID     { return c.id }
func (c *Column) NodeKind() ids.Kind { return ids.KindColumn }

// Children returns the column's windows, top to bottom.
func (c *Column) Children() []*Window {
	out := make([]*Window, 0, len(c.children))
	for _, id := range c.children {
		if w := c.tree.windows[id]; w != nil {
			out = append(out, w)
		}
	}
	return out
}

// Active returns the column's active-child window (invariant 6), or nil.
func (c *Column) Active() *Window {
	return c.tree.windows[c.ActiveChild]
}

// IndexOf returns the index of win among c's children, or -1.
func (c *Column) IndexOf(win *Window) int {
	for i, id := range c.children {
		if id == win.id {
			return i
		}
	}
	return -1
}

// totalHeightFrac sums the height fractions of c's children, used to
// normalize to 1.0 (invariant 5).
func (c *Column) totalHeightFrac() float64 {
	var total float64
	for _, id := range c.children {
		if w := c.tree.windows[id]; w != nil {
			total += w.HeightFrac
		}
	}
	return total
}

// normalizeHeightFracs rescales every child's HeightFrac so they sum to
// 1.0 (invariant 5), handing newly inserted zero-fraction children the
// average of the existing live fractions first (spec §4.2).
func (c *Column) normalizeHeightFracs() {
	n := len(c.children)
	if n == 0 {
		return
	}
	var sumKnown float64
	var zeroCount int
	for _, id := range c.children {
		w := c.tree.windows[id]
		if w == nil {
			continue
		}
		if w.HeightFrac <= 0 {
			zeroCount++
		} else {
			sumKnown += w.HeightFrac
		}
	}
	if zeroCount > 0 {
		avg := 1.0 / float64(n)
		if sumKnown > 0 && zeroCount < n {
			avg = sumKnown / float64(n-zeroCount)
		}
		for _, id := range c.children {
			if w := c.tree.windows[id]; w != nil && w.HeightFrac <= 0 {
				w.HeightFrac = avg
			}
		}
	}
	total := c.totalHeightFrac()
	if total <= 0 {
		return
	}
	for _, id := range c.children {
		if w := c.tree.windows[id]; w != nil {
			w.HeightFrac /= total
		}
	}
}
