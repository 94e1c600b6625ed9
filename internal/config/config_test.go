package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() should validate, got %v", err)
	}
}

func TestValidateRejectsBadEnum(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"smart_gaps", func(c *Config) { c.SmartGaps = "sometimes" }, "smart_gaps"},
		{"focus_wrapping", func(c *Config) { c.FocusWrapping = "maybe" }, "focus_wrapping"},
		{"title_align", func(c *Config) { c.TitleAlign = "justify" }, "title_align"},
		{"gaps_inner", func(c *Config) { c.GapsInner = -1 }, "gaps_inner"},
		{"tiling_drag_threshold", func(c *Config) { c.TilingDragThreshold = -1 }, "tiling_drag_threshold"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			ve, ok := err.(*ValidationError)
			if !ok || ve.Path != tc.path {
				t.Fatalf("expected ValidationError on path %q, got %v", tc.path, err)
			}
		})
	}
}

func TestLoadFillsOmittedFieldsFromDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("gaps_inner: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.GapsInner != 12 {
		t.Fatalf("expected overridden gaps_inner=12, got %d", c.GapsInner)
	}
	if c.TitlebarHPadding != Default().TitlebarHPadding {
		t.Fatalf("expected untouched field to keep its default, got %d", c.TitlebarHPadding)
	}
}

func TestWorkspaceGapsForAppliesOverride(t *testing.T) {
	c := Default()
	c.GapsInner = 5
	inner := 20
	c.WorkspaceGaps = map[string]WorkspaceGaps{"scratch": {Inner: &inner}}

	g := c.WorkspaceGapsFor("scratch")
	if g.Inner != 20 {
		t.Fatalf("expected override inner=20, got %d", g.Inner)
	}
	g2 := c.WorkspaceGapsFor("main")
	if g2.Inner != 5 {
		t.Fatalf("expected global inner=5 for unmentioned workspace, got %d", g2.Inner)
	}
}

func TestFocusWrappingForValues(t *testing.T) {
	c := Default()
	c.FocusWrapping = FocusWrapNo
	c.Seats = map[string]SeatConfig{"seat0": {FocusWrapping: FocusWrapForce}}

	got := c.FocusWrappingFor("seat0")
	want := c.FocusWrappingFor("seat-without-override")
	if got == want {
		t.Fatal("expected seat override to differ from the global default")
	}
}
