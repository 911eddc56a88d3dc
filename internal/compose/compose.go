// Package compose paints the layer store onto a frame.
package compose

import (
	"image/color"

	"github.com/ha1tch/deluxepaste/internal/layer"
)

// Source is what the compositor reads each frame.
type Source interface {
	ImageLayers() []layer.ImageLayer
	TextLayers() []layer.TextLayer
}

// Target is a frame being drawn.
type Target interface {
	Clear(c color.RGBA)
	Draw(d layer.Drawable, src, dst layer.Rect)
}

// Compositor paints the layer store onto a Target each frame.
type Compositor struct {
	Background color.RGBA
}

// New creates a compositor that clears to background.
func New(background color.RGBA) *Compositor {
	return &Compositor{Background: background}
}

// Composite clears dst and draws every image layer, then every text layer,
// each in insertion order. Text layers without a drawable are skipped. It
// returns the number of layers drawn.
func (c *Compositor) Composite(src Source, dst Target) int {
	dst.Clear(c.Background)

	n := 0
	for _, l := range src.ImageLayers() {
		dst.Draw(l.Drawable, extent(l.Drawable), l.Rect)
		n++
	}
	for _, t := range src.TextLayers() {
		if t.Drawable == nil {
			continue
		}
		dst.Draw(t.Drawable, extent(t.Drawable), t.Rect())
		n++
	}
	return n
}

func extent(d layer.Drawable) layer.Rect {
	w, h := d.Size()
	return layer.R(0, 0, w, h)
}
