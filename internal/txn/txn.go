// Package txn implements the double-buffered commit discipline of spec
// §4.3: command handlers mutate a tree's "pending" state only; Commit
// arranges the dirty subtrees, sends configures to the surfaces whose
// geometry actually changed, and publishes pending into current once
// every referenced surface acks or a deadline passes — whichever is
// first. This yields the atomic, flicker-free visual updates spec §4.3
// describes.
//
// Grounded on the teacher's own round-trip pattern in wayland.go's
// sync(): a channel gates progress on a wire acknowledgement. Commit
// generalizes that from "one compositor round-trip" to "N configure acks
// or a deadline."
package txn

import (
	"context"
	"fmt"
	"time"

	"github.com/wlcolm/colmwm/internal/ids"
	"github.com/wlcolm/colmwm/internal/tree"
)

// DefaultTimeout is the minimum commit deadline spec §4.3 calls for
// ("default ≥ 200 ms").
const DefaultTimeout = 200 * time.Millisecond

// Arranger recomputes pending geometry for the subtrees rooted at the
// given dirty ids (spec §4.3 step 1). Implemented by internal/arrange;
// kept as an interface here so txn has no import-time dependency on it.
type Arranger interface {
	Arrange(t *tree.Tree, dirty []ids.ID) error
}

// Configurer sends one configure to the surface backing win and returns a
// channel that closes when the client acknowledges it (spec §4.3 step 2).
// Implemented by internal/engine, which knows how to reach the window's
// wire.Surface.
type Configurer interface {
	Configure(win *tree.Window) <-chan struct{}
}

// Engine drives commits for one tree. Two in-flight commits are never
// allowed (spec §5): Commit must not be called again until the previous
// call returns.
type Engine struct {
	Tree      *tree.Tree
	Arranger  Arranger
	Configure Configurer
	Timeout   time.Duration
}

// NewEngine returns a commit engine with DefaultTimeout.
func NewEngine(t *tree.Tree, arranger Arranger, configurer Configurer) *Engine {
	return &Engine{Tree: t, Arranger: arranger, Configure: configurer, Timeout: DefaultTimeout}
}

// Result reports what a Commit call did, mainly for tests and the event
// emitter.
type Result struct {
	Dirty        []ids.ID
	Configured   int
	ForcedRetire bool
}

// Commit runs one batch: arrange every dirty subtree, configure the
// windows whose geometry changed, wait for acks (or the timeout), then
// retire the whole batch atomically and run invariant checks. If no node
// is dirty, Commit is a no-op.
//
// ctx is honored for cancellation only; the commit timeout itself always
// applies regardless of ctx's deadline, per spec §4.3/§5.
func (e *Engine) Commit(ctx context.Context) (Result, error) {
	dirty := e.Tree.DirtySet().Drain()
	if len(dirty) == 0 {
		return Result{}, nil
	}

	if e.Arranger != nil {
		if err := e.Arranger.Arrange(e.Tree, dirty); err != nil {
			return Result{Dirty: dirty}, fmt.Errorf("txn: arrange: %w", err)
		}
	}

	var acks []<-chan struct{}
	var configured []*tree.Window
	for _, id := range dirty {
		k, ok := e.Tree.Kind(id)
		if !ok || k != ids.KindWindow {
			continue
		}
		w := e.Tree.Window(id)
		if w == nil || !w.PendingDiffersFromCurrent() {
			continue
		}
		e.Tree.BeginConfigure(w)
		configured = append(configured, w)
		if e.Configure != nil {
			acks = append(acks, e.Configure.Configure(w))
		}
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	forced := !waitAll(ctx, acks, timeout)

	for _, w := range configured {
		e.Tree.EndConfigure(w)
	}

	e.Tree.RetireBatch(dirty)

	if err := e.Tree.CheckInvariants(); err != nil {
		// Fatal per spec §7: a bug, not a user error. The caller (cmd/colmwmd)
		// is expected to let this panic the process rather than recover it.
		panic(err)
	}

	return Result{Dirty: dirty, Configured: len(configured), ForcedRetire: forced}, nil
}

// waitAll blocks until every channel in acks has fired, the timeout
// elapses, or ctx is done, whichever comes first. It returns false if the
// wait ended via timeout/cancellation rather than every ack arriving
// (spec §4.3 step 3, §5's "force-retire" path).
func waitAll(ctx context.Context, acks []<-chan struct{}, timeout time.Duration) bool {
	if len(acks) == 0 {
		return true
	}
	deadlineCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	remaining := len(acks)
	merged := make(chan struct{}, len(acks))
	for _, ch := range acks {
		go func(c <-chan struct{}) {
			select {
			case <-c:
				select {
				case merged <- struct{}{}:
				case <-deadlineCtx.Done():
				}
			case <-deadlineCtx.Done():
			}
		}(ch)
	}

	for remaining > 0 {
		select {
		case <-merged:
			remaining--
		case <-deadlineCtx.Done():
			return false
		}
	}
	return true
}
