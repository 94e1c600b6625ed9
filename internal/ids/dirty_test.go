package ids

import "testing"

func TestDirtySetDedupesAndPreservesOrder(t *testing.T) {
	d := NewDirtySet()
	d.Mark(3)
	d.Mark(1)
	d.Mark(3)
	d.Mark(2)

	if d.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", d.Len())
	}
	got := d.Drain()
	want := []ID{3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("Drain() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Drain()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if d.Len() != 0 {
		t.Fatalf("Len() after Drain() = %d, want 0", d.Len())
	}
}

func TestDirtySetMarkDuringDrainGoesToFreshSet(t *testing.T) {
	d := NewDirtySet()
	d.Mark(1)
	batch := d.Drain()
	d.Mark(2) // simulates a mutation that happens while processing batch
	if len(batch) != 1 || batch[0] != 1 {
		t.Fatalf("batch = %v, want [1]", batch)
	}
	if !d.Contains(2) {
		t.Fatal("expected 2 to be marked in the fresh set")
	}
	if d.Contains(1) {
		t.Fatal("expected 1 to not survive into the fresh set")
	}
}

func TestGeneratorNeverReturnsNil(t *testing.T) {
	var g Generator
	seen := make(map[ID]bool)
	for i := 0; i < 1000; i++ {
		id := g.Next()
		if id == Nil {
			t.Fatal("Next() returned Nil")
		}
		if seen[id] {
			t.Fatalf("Next() returned duplicate id %v", id)
		}
		seen[id] = true
	}
}
