// Package config loads the YAML-backed configuration spec §6.1 calls the
// "config sink": every recognized option enumerated there, plus
// per-workspace and per-output overrides. Grounded on
// 1broseidon-termtile's internal/config/config.go — the one example in
// the corpus that loads a tiling window manager's configuration from a
// file — reusing its gopkg.in/yaml.v3 struct-tag/Default()/Validate()
// shape rather than inventing a new one.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wlcolm/colmwm/internal/arrange"
	"github.com/wlcolm/colmwm/internal/focus"
	"github.com/wlcolm/colmwm/internal/tree"
)

// SmartGapsMode names smart_gaps' three settings (spec §6.1).
type SmartGapsMode string

const (
	SmartGapsOff         SmartGapsMode = "off"
	SmartGapsOn          SmartGapsMode = "on"
	SmartGapsInverseOuter SmartGapsMode = "inverse_outer"
)

// FocusWrappingMode names focus_wrapping's three settings (spec §6.1).
type FocusWrappingMode string

const (
	FocusWrapNo    FocusWrappingMode = "no"
	FocusWrapYes   FocusWrappingMode = "yes"
	FocusWrapForce FocusWrappingMode = "force"
)

// TitleAlign selects where a titlebar's title text sits (spec §6.1).
type TitleAlign string

const (
	TitleAlignLeft   TitleAlign = "left"
	TitleAlignCenter TitleAlign = "center"
	TitleAlignRight  TitleAlign = "right"
)

// GapsOuter is one side-set of outer gap pixels (spec §6.1's
// gaps_outer:{top,right,bottom,left:int}).
type GapsOuter struct {
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
}

// WorkspaceGaps overrides the global gap settings for one named
// workspace (spec §6.1's "per-workspace gaps overrides").
type WorkspaceGaps struct {
	Inner *int       `yaml:"gaps_inner,omitempty"`
	Outer *GapsOuter `yaml:"gaps_outer,omitempty"`
}

// SeatConfig holds per-seat settings (spec §6.1's "per-seat
// hide_cursor_timeout_ms:int and hide_cursor_when_typing:bool", plus
// focus_wrapping which spec.md phrases as per-seat in §6.1's prose).
type SeatConfig struct {
	FocusWrapping        FocusWrappingMode `yaml:"focus_wrapping,omitempty"`
	HideCursorTimeoutMs  int               `yaml:"hide_cursor_timeout_ms,omitempty"`
	HideCursorWhenTyping bool              `yaml:"hide_cursor_when_typing,omitempty"`
}

// OutputConfig holds per-output settings (spec §6.1's "(enabled,
// mode-preference, scale, transform, position, render-bit-depth,
// adaptive-sync, background-spec, dpms)").
type OutputConfig struct {
	Enabled        *bool   `yaml:"enabled,omitempty"`
	ModePreference string  `yaml:"mode_preference,omitempty"`
	Scale          float64 `yaml:"scale,omitempty"`
	Transform      string  `yaml:"transform,omitempty"`
	X, Y           int     `yaml:"-"` // set via "position", parsed separately below
	Position       string  `yaml:"position,omitempty"`
	RenderBitDepth int     `yaml:"render_bit_depth,omitempty"`
	AdaptiveSync   bool    `yaml:"adaptive_sync,omitempty"`
	Background     string  `yaml:"background,omitempty"`
	Dpms           bool    `yaml:"dpms,omitempty"`
}

// Config is the effective configuration loaded from YAML, mirroring
// termtile's flat Config struct of plain fields plus nested override
// maps rather than one struct per subsystem.
type Config struct {
	GapsInner           int           `yaml:"gaps_inner"`
	GapsOuter           GapsOuter     `yaml:"gaps_outer"`
	SmartGaps           SmartGapsMode `yaml:"smart_gaps"`
	TilingDragThreshold int           `yaml:"tiling_drag_threshold"`
	FocusWrapping       FocusWrappingMode `yaml:"focus_wrapping"`

	TitlebarBorderThickness int        `yaml:"titlebar_border_thickness"`
	TitlebarHPadding        int        `yaml:"titlebar_h_padding"`
	TitlebarVPadding        int        `yaml:"titlebar_v_padding"`
	FontHeight              int        `yaml:"font_height"`
	TitleAlign              TitleAlign `yaml:"title_align"`

	AutoBackAndForth bool `yaml:"auto_back_and_forth"`
	ShowMarks        bool `yaml:"show_marks"`

	MinTiledWidth, MinTiledHeight     int `yaml:"min_tiled_width,omitempty"`
	FloatingMinWidth, FloatingMinHeight int `yaml:"floating_min_width,omitempty"`
	FloatingMaxWidth, FloatingMaxHeight int `yaml:"floating_max_width,omitempty"`

	WorkspaceGaps map[string]WorkspaceGaps `yaml:"workspace_gaps,omitempty"`
	Seats         map[string]SeatConfig    `yaml:"seats,omitempty"`
	Outputs       map[string]OutputConfig  `yaml:"outputs,omitempty"`
}

// Default mirrors sway/hayward's historical defaults (arrange.
// DefaultOptions carries the same numbers for MinSaneW/H, titlebar
// height, and floating clamps — Default keeps the two in sync rather
// than restating different numbers).
func Default() *Config {
	base := arrange.DefaultOptions()
	return &Config{
		GapsInner:           0,
		SmartGaps:           SmartGapsOff,
		TilingDragThreshold: 9,
		FocusWrapping:       FocusWrapNo,

		TitlebarBorderThickness: 1,
		TitlebarHPadding:        6,
		TitlebarVPadding:        3,
		FontHeight:              base.TitlebarHeight - 2*3 - 1,
		TitleAlign:              TitleAlignLeft,

		MinTiledWidth: base.MinSaneW, MinTiledHeight: base.MinSaneH,
		FloatingMinWidth: base.FloatingMinW, FloatingMinHeight: base.FloatingMinH,
		FloatingMaxWidth: base.FloatingMaxW, FloatingMaxHeight: base.FloatingMaxH,

		WorkspaceGaps: map[string]WorkspaceGaps{},
		Seats:         map[string]SeatConfig{},
		Outputs:       map[string]OutputConfig{},
	}
}

// Load reads and parses a YAML config file, filling any field the file
// omits from Default (termtile's Load reads the file then lets zero
// values stand; colmwm instead starts from Default() and unmarshals
// over it so a partial file never zeroes out defaults it didn't
// mention).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ValidationError names the offending field, mirroring termtile's
// ValidationError{Path, Err}.
type ValidationError struct {
	Path string
	Err  error
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", v.Path, v.Err)
}

func (v *ValidationError) Unwrap() error { return v.Err }

// Validate rejects a config with out-of-range or unrecognized option
// values before it reaches internal/engine.
func (c *Config) Validate() error {
	switch c.SmartGaps {
	case SmartGapsOff, SmartGapsOn, SmartGapsInverseOuter:
	default:
		return &ValidationError{Path: "smart_gaps", Err: fmt.Errorf("must be one of: off, on, inverse_outer")}
	}
	switch c.FocusWrapping {
	case FocusWrapNo, FocusWrapYes, FocusWrapForce:
	default:
		return &ValidationError{Path: "focus_wrapping", Err: fmt.Errorf("must be one of: no, yes, force")}
	}
	switch c.TitleAlign {
	case TitleAlignLeft, TitleAlignCenter, TitleAlignRight:
	default:
		return &ValidationError{Path: "title_align", Err: fmt.Errorf("must be one of: left, center, right")}
	}
	if c.GapsInner < 0 {
		return &ValidationError{Path: "gaps_inner", Err: fmt.Errorf("must be >= 0")}
	}
	if c.GapsOuter.Top < 0 || c.GapsOuter.Right < 0 || c.GapsOuter.Bottom < 0 || c.GapsOuter.Left < 0 {
		return &ValidationError{Path: "gaps_outer", Err: fmt.Errorf("must be >= 0")}
	}
	if c.TilingDragThreshold < 0 {
		return &ValidationError{Path: "tiling_drag_threshold", Err: fmt.Errorf("must be >= 0")}
	}
	for name, ws := range c.WorkspaceGaps {
		if ws.Inner != nil && *ws.Inner < 0 {
			return &ValidationError{Path: "workspace_gaps." + name + ".gaps_inner", Err: fmt.Errorf("must be >= 0")}
		}
	}
	for name, seat := range c.Seats {
		switch seat.FocusWrapping {
		case "", FocusWrapNo, FocusWrapYes, FocusWrapForce:
		default:
			return &ValidationError{Path: "seats." + name + ".focus_wrapping", Err: fmt.Errorf("must be one of: no, yes, force")}
		}
	}
	return nil
}

// ArrangeOptions converts the global config into arrange.Options for
// internal/arrange.Arranger.
func (c *Config) ArrangeOptions() arrange.Options {
	return arrange.Options{
		MinSaneW: c.MinTiledWidth, MinSaneH: c.MinTiledHeight,
		TitlebarHeight: c.FontHeight + c.TitlebarVPadding*2 + c.TitlebarBorderThickness,
		FloatingMinW:   c.FloatingMinWidth, FloatingMinH: c.FloatingMinHeight,
		FloatingMaxW: c.FloatingMaxWidth, FloatingMaxH: c.FloatingMaxHeight,
	}
}

// WorkspaceGapsFor builds a tree.Gaps for a workspace by name, applying
// any per-workspace override over the global gap settings.
func (c *Config) WorkspaceGapsFor(name string) tree.Gaps {
	g := tree.Gaps{
		Inner:      c.GapsInner,
		OuterTop:   c.GapsOuter.Top,
		OuterRight: c.GapsOuter.Right,
		OuterBottom: c.GapsOuter.Bottom,
		OuterLeft:  c.GapsOuter.Left,
		Smart:      c.smartGapsValue(),
	}
	if override, ok := c.WorkspaceGaps[name]; ok {
		if override.Inner != nil {
			g.Inner = *override.Inner
		}
		if override.Outer != nil {
			g.OuterTop, g.OuterRight, g.OuterBottom, g.OuterLeft =
				override.Outer.Top, override.Outer.Right, override.Outer.Bottom, override.Outer.Left
		}
	}
	return g
}

func (c *Config) smartGapsValue() tree.SmartGaps {
	switch c.SmartGaps {
	case SmartGapsOn:
		return tree.SmartGapsOn
	case SmartGapsInverseOuter:
		return tree.SmartGapsInverseOuter
	default:
		return tree.SmartGapsOff
	}
}

// FocusWrappingFor resolves a seat's effective focus.Wrapping: its own
// override if set, else the global setting.
func (c *Config) FocusWrappingFor(seatName string) focus.Wrapping {
	mode := c.FocusWrapping
	if seat, ok := c.Seats[seatName]; ok && seat.FocusWrapping != "" {
		mode = seat.FocusWrapping
	}
	switch mode {
	case FocusWrapYes:
		return focus.WrapYes
	case FocusWrapForce:
		return focus.WrapForce
	default:
		return focus.WrapNo
	}
}
