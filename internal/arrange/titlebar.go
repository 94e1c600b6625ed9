package arrange

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Titler sizes title-bar strips and measures the title/tab text drawn
// into them. Grounded on the teacher's messureText (ctxmenu.go), which
// walks a font.Face glyph by glyph summing GlyphAdvance plus Kern; here
// the same walk also yields the strip height instead of hard-coding the
// teacher's menu-item height.
type Titler struct {
	Face          font.Face
	VerticalPad   int // padding above+below the font's ascent+descent
	HorizontalPad int // padding left of the measured text, for an app icon
}

// NewTitler wraps a font.Face in the padding conventions of spec §4.4's
// title-bar sizing ("configured font metrics plus fixed padding").
func NewTitler(face font.Face, verticalPad, horizontalPad int) *Titler {
	return &Titler{Face: face, VerticalPad: verticalPad, HorizontalPad: horizontalPad}
}

// Height returns the pixel height of one title-bar strip: the face's
// ascent plus descent, plus VerticalPad above and below.
func (t *Titler) Height() int {
	if t.Face == nil {
		return 0
	}
	m := t.Face.Metrics()
	return (m.Ascent + m.Descent).Ceil() + 2*t.VerticalPad
}

// MeasureText returns the pixel width text would occupy in the title
// strip, including HorizontalPad, the same glyph-by-glyph kerning walk
// as the teacher's messureText.
func (t *Titler) MeasureText(text string) int {
	if t.Face == nil {
		return t.HorizontalPad
	}
	prev := rune(-1)
	width := fixed.Int26_6(0)
	for _, ch := range text {
		if prev != -1 {
			width += t.Face.Kern(prev, ch)
		}
		prev = ch
		advance, ok := t.Face.GlyphAdvance(ch)
		if !ok {
			continue
		}
		width += advance
	}
	return width.Ceil() + t.HorizontalPad
}

// ToOptions folds the computed strip height into an arrange.Options copy.
func (t *Titler) ToOptions(base Options) Options {
	base.TitlebarHeight = t.Height()
	return base
}
