package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wlcolm/colmwm/internal/geom"
	"github.com/wlcolm/colmwm/internal/ids"
)

// kindNames/tintNames give EncodeText a stable, human-legible wire form
// instead of the bare int a %d would print; DecodeText's parseKind/
// parseTint invert them.
var kindNames = [...]string{
	ItemLayerSurface: "layer",
	ItemBorder:       "border",
	ItemTitlebar:     "titlebar",
	ItemContent:      "content",
	ItemPopup:        "popup",
	ItemDragIcon:     "dragicon",
	ItemDropZone:     "dropzone",
}

var tintNames = [...]string{
	TintUnfocused: "unfocused",
	TintFocused:   "focused",
	TintUrgent:    "urgent",
}

func (k ItemKind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

func (t Tint) String() string {
	if int(t) < 0 || int(t) >= len(tintNames) {
		return "unknown"
	}
	return tintNames[t]
}

// EncodeText renders s as tab-separated lines, one "OUTPUT" line per
// output followed by one "ITEM" line per WorkItem — the same
// tab-separated wire convention cmd/colmwmd's control socket already
// uses for command requests/replies, extended here to a multi-line
// block since one Snapshot doesn't fit a single reply line. A Surface
// handle is opaque to anything outside internal/wire, so it is dropped
// on the wire; a remote viewer only needs geometry, tint and identity.
func EncodeText(s *Snapshot) string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	for _, out := range s.Outputs {
		fmt.Fprintf(&b, "OUTPUT\t%d\n", uint64(out.OutputID))
		for _, it := range out.Items {
			marks := "-"
			if len(it.Marks) > 0 {
				marks = strings.Join(it.Marks, ",")
			}
			title := it.Title
			if title == "" {
				title = "-"
			}
			fmt.Fprintf(&b, "ITEM\t%s\t%d\t%d\t%d\t%d\t%d\t%s\t%s\t%s\n",
				it.Kind, it.Rect.X, it.Rect.Y, it.Rect.W, it.Rect.H,
				uint64(it.WindowID), it.Tint, title, marks)
		}
	}
	return b.String()
}

// DecodeText parses EncodeText's output back into a Snapshot. Malformed
// lines are skipped rather than failing the whole decode, since this
// only ever feeds a best-effort debug viewer.
func DecodeText(text string) *Snapshot {
	snap := &Snapshot{}
	var cur *OutputSnapshot

	for _, line := range strings.Split(text, "\n") {
		fields := strings.Split(line, "\t")
		switch fields[0] {
		case "OUTPUT":
			if len(fields) < 2 {
				continue
			}
			id, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				continue
			}
			snap.Outputs = append(snap.Outputs, OutputSnapshot{OutputID: ids.ID(id)})
			cur = &snap.Outputs[len(snap.Outputs)-1]
		case "ITEM":
			if cur == nil || len(fields) < 10 {
				continue
			}
			item, ok := parseItem(fields)
			if !ok {
				continue
			}
			cur.Items = append(cur.Items, item)
		}
	}
	return snap
}

func parseItem(fields []string) (WorkItem, bool) {
	x, errX := strconv.Atoi(fields[2])
	y, errY := strconv.Atoi(fields[3])
	w, errW := strconv.Atoi(fields[4])
	h, errH := strconv.Atoi(fields[5])
	winID, errWin := strconv.ParseUint(fields[6], 10, 64)
	if errX != nil || errY != nil || errW != nil || errH != nil || errWin != nil {
		return WorkItem{}, false
	}

	item := WorkItem{
		Kind:     parseKind(fields[1]),
		Rect:     geom.Rect{X: x, Y: y, W: w, H: h},
		WindowID: ids.ID(winID),
		Tint:     parseTint(fields[7]),
		Title:    fields[8],
	}
	if item.Title == "-" {
		item.Title = ""
	}
	if fields[9] != "-" {
		item.Marks = strings.Split(fields[9], ",")
	}
	return item, true
}

func parseKind(name string) ItemKind {
	for k, n := range kindNames {
		if n == name {
			return ItemKind(k)
		}
	}
	return ItemContent
}

func parseTint(name string) Tint {
	for t, n := range tintNames {
		if n == name {
			return Tint(t)
		}
	}
	return TintUnfocused
}
