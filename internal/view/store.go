package view

import "sync/atomic"

// Store holds the one published Snapshot that the renderer reads,
// swapped wholesale after each retired transaction (spec §5: "replaced
// wholesale ... the renderer holds its current snapshot by shared
// ownership until the next swap"). Grounded on internal/ids' id
// generator, this module's only other sync/atomic user — no pack
// library models a single-writer/many-reader pointer swap more directly
// than the stdlib primitive already idiomatic in this codebase.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// Publish installs snap as the current snapshot. Called once per
// transaction retirement, after Build.
func (s *Store) Publish(snap *Snapshot) {
	s.current.Store(snap)
}

// Current returns the most recently published snapshot, or nil before
// the first publish.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}
