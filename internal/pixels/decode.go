// Package pixels produces RGBA buffers for the canvas: images taken from the
// system clipboard and rendered text.
package pixels

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"

	// Formats the clipboard may offer.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmptyImage means an image decoded to zero pixels.
var ErrEmptyImage = errors.New("pixels: image has no pixels")

// Decode decodes an encoded image into a tightly packed RGBA buffer whose
// bounds start at the origin.
func Decode(b []byte) (*image.RGBA, error) {
	img, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("pixels: decode: %w", err)
	}
	out := ToRGBA(img)
	if out.Bounds().Empty() {
		return nil, fmt.Errorf("%w (%s)", ErrEmptyImage, format)
	}
	return out, nil
}

// ToRGBA converts img to *image.RGBA at the origin. An *image.RGBA that is
// already at the origin is returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// Straight returns img with its alpha unpremultiplied, at the origin and
// tightly packed. image.RGBA stores premultiplied color; renderers that blend
// with straight alpha need this form.
func Straight(img *image.RGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
