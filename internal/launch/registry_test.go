package launch

import (
	"os"
	"testing"
	"time"
)

func TestRegistryDirectPidHit(t *testing.T) {
	var r Registry
	r.Record(1234, "main", "o1")
	ws, out, ok := r.WorkspaceFor(1234)
	if !ok || ws != "main" || out != "o1" {
		t.Fatalf("got ws=%q out=%q ok=%v", ws, out, ok)
	}
}

func TestRegistryLookupConsumesEntry(t *testing.T) {
	var r Registry
	r.Record(1234, "main", "")
	if _, _, ok := r.WorkspaceFor(1234); !ok {
		t.Fatal("expected first lookup to hit")
	}
	if _, _, ok := r.WorkspaceFor(1234); ok {
		t.Fatal("expected entry to be consumed after first lookup")
	}
}

func TestRegistryExpiresEntriesOlderThan60s(t *testing.T) {
	base := time.Unix(1000, 0)
	var r Registry
	r.now = func() time.Time { return base }
	r.Record(42, "scratch", "")

	r.now = func() time.Time { return base.Add(61 * time.Second) }
	if _, _, ok := r.WorkspaceFor(42); ok {
		t.Fatal("expected entry older than 60s to be expired")
	}
}

func TestRegistryWalksParentChainViaProc(t *testing.T) {
	self := os.Getpid()
	parent, ok := parentPID(self)
	if !ok {
		t.Skip("could not read /proc/self/stat on this platform")
	}

	var r Registry
	r.Record(parent, "editor", "o1")
	ws, _, ok := r.WorkspaceFor(self)
	if !ok || ws != "editor" {
		t.Fatalf("expected ancestor-matched workspace %q, got ws=%q ok=%v", "editor", ws, ok)
	}
}

func TestRegistryMissReturnsFalse(t *testing.T) {
	var r Registry
	if _, _, ok := r.WorkspaceFor(99999); ok {
		t.Fatal("expected no match for an unrecorded pid")
	}
}
