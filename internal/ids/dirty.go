package ids

// DirtySet records entities whose pending state differs from current.
// It is drained atomically by the transaction engine (spec §4.3); any
// mutation that happens after a drain lands in the now-empty set for the
// next commit, not in the batch Drain returned, matching spec §4.1's
// "mutations during drain enqueue into a fresh set for the next commit."
type DirtySet struct {
	order []ID
	has   map[ID]bool
}

// NewDirtySet returns an empty set ready to use.
func NewDirtySet() *DirtySet {
	return &DirtySet{has: make(map[ID]bool)}
}

// Mark adds id to the set if it isn't already present. Insertion order is
// preserved so arrangement and commit can process nodes in the order they
// were dirtied.
func (d *DirtySet) Mark(id ID) {
	if d.has[id] {
		return
	}
	d.has[id] = true
	d.order = append(d.order, id)
}

// Contains reports whether id is currently marked dirty.
func (d *DirtySet) Contains(id ID) bool {
	return d.has[id]
}

// Len reports how many distinct ids are marked.
func (d *DirtySet) Len() int {
	return len(d.order)
}

// Drain returns the ids marked since the last drain, in mark order, and
// resets the set to empty. The same set then collects ids dirtied while
// the drained batch is processed; the caller need not replace it.
func (d *DirtySet) Drain() []ID {
	out := d.order
	d.order = nil
	d.has = make(map[ID]bool)
	return out
}
