package pixels

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrGlyph means the font has no glyph for a character in the text.
var ErrGlyph = errors.New("pixels: missing glyph")

// TextStyle is the fixed look of every text layer.
type TextStyle struct {
	Size    float64
	DPI     float64
	Padding int
	Color   color.RGBA
}

// DefaultTextStyle is black 24pt text with a small margin.
var DefaultTextStyle = TextStyle{
	Size:    24,
	DPI:     72,
	Padding: 4,
	Color:   color.RGBA{0, 0, 0, 255},
}

// TextRasterizer renders strings with the Go Regular font. It is not safe
// for concurrent use.
type TextRasterizer struct {
	style TextStyle
	otf   *opentype.Font
	buf   sfnt.Buffer
	face  font.Face
}

// NewTextRasterizer loads the Go Regular face at the style's size.
func NewTextRasterizer(style TextStyle) (*TextRasterizer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("pixels: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    style.Size,
		DPI:     style.DPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("pixels: font face: %w", err)
	}
	return &TextRasterizer{style: style, otf: f, face: face}, nil
}

// Rasterize draws text on a transparent buffer sized to the text's advance
// and the font's line height, plus padding on every side. Empty text, or
// text that advances nowhere, yields a nil buffer.
func (r *TextRasterizer) Rasterize(text string) (*image.RGBA, error) {
	if text == "" {
		return nil, nil
	}
	for _, c := range text {
		// Index 0 is the font's .notdef box.
		if g, err := r.otf.GlyphIndex(&r.buf, c); err != nil || g == 0 {
			return nil, fmt.Errorf("%w: %q", ErrGlyph, c)
		}
	}

	adv := font.MeasureString(r.face, text)
	if adv <= 0 {
		return nil, nil
	}
	m := r.face.Metrics()
	pad := r.style.Padding
	w := adv.Ceil() + 2*pad
	h := (m.Ascent + m.Descent).Ceil() + 2*pad

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(r.style.Color),
		Face: r.face,
		Dot:  fixed.Point26_6{X: fixed.I(pad), Y: fixed.I(pad) + m.Ascent},
	}
	d.DrawString(text)
	return dst, nil
}
