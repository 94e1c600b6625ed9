package view

import (
	"testing"

	"github.com/wlcolm/colmwm/internal/geom"
	"github.com/wlcolm/colmwm/internal/ids"
)

func TestEncodeDecodeTextRoundTrips(t *testing.T) {
	snap := &Snapshot{
		Outputs: []OutputSnapshot{
			{
				OutputID: ids.ID(1),
				Items: []WorkItem{
					{Kind: ItemBorder, Rect: geom.Rect{X: 0, Y: 0, W: 400, H: 300}, WindowID: ids.ID(7), Tint: TintFocused},
					{Kind: ItemTitlebar, Rect: geom.Rect{X: 0, Y: 0, W: 400, H: 20}, WindowID: ids.ID(7), Tint: TintFocused, Title: "term", Marks: []string{"a", "b"}},
					{Kind: ItemContent, Rect: geom.Rect{X: 0, Y: 20, W: 400, H: 280}, WindowID: ids.ID(7)},
				},
			},
		},
	}

	got := DecodeText(EncodeText(snap))
	if len(got.Outputs) != 1 {
		t.Fatalf("expected 1 output, got %d", len(got.Outputs))
	}
	out := got.Outputs[0]
	if out.OutputID != ids.ID(1) {
		t.Fatalf("expected output id 1, got %d", out.OutputID)
	}
	if len(out.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(out.Items))
	}
	title := out.Items[1]
	if title.Title != "term" || title.Tint != TintFocused {
		t.Fatalf("titlebar item round-tripped wrong: %+v", title)
	}
	if len(title.Marks) != 2 || title.Marks[0] != "a" || title.Marks[1] != "b" {
		t.Fatalf("expected marks [a b], got %v", title.Marks)
	}
	content := out.Items[2]
	if content.Title != "" || content.Marks != nil {
		t.Fatalf("expected empty title/marks for content item, got %+v", content)
	}
}

func TestDecodeTextSkipsMalformedLines(t *testing.T) {
	text := "OUTPUT\t1\nITEM\tborder\n\nITEM\tcontent\t0\t0\t10\t10\t2\tunfocused\t-\t-\n"
	got := DecodeText(text)
	if len(got.Outputs) != 1 || len(got.Outputs[0].Items) != 1 {
		t.Fatalf("expected malformed ITEM line skipped, got %+v", got)
	}
}
