// Package layer holds the pasted and typed content of the canvas.
//
// Image layers and text layers live in two separate slices. Insertion order
// is paint order inside each slice, and all image layers paint below all text
// layers. The store owns every Drawable it creates and releases them on
// Close; callers only ever hold indices.
package layer

import (
	"errors"
	"fmt"
	"image"
)

// Store errors.
var (
	ErrNoLayer   = errors.New("layer: no such layer")
	ErrNoPixels  = errors.New("layer: no pixels")
	ErrUpload    = errors.New("layer: upload failed")
	ErrRasterize = errors.New("layer: rasterize failed")
)

// Drawable is an uploaded pixel buffer that a renderer can draw.
type Drawable interface {
	Size() (width, height int)
	Release()
}

// Uploader turns a pixel buffer into a Drawable.
type Uploader interface {
	Upload(pixels *image.RGBA) (Drawable, error)
}

// Rasterizer renders a complete string with a fixed style. A nil buffer with
// a nil error means there is nothing to draw.
type Rasterizer interface {
	Rasterize(text string) (*image.RGBA, error)
}

// ImageLayer is a pasted image.
type ImageLayer struct {
	Drawable Drawable
	Rect     Rect
}

// TextLayer is typed text anchored where text entry began. Drawable is nil
// until the text rasterizes to something visible.
type TextLayer struct {
	Drawable Drawable
	Text     string
	AnchorX  int
	AnchorY  int
}

// Rect is where the text layer paints. It is empty while there is no
// drawable.
func (t TextLayer) Rect() Rect {
	if t.Drawable == nil {
		return R(t.AnchorX, t.AnchorY, 0, 0)
	}
	w, h := t.Drawable.Size()
	return R(t.AnchorX, t.AnchorY, w, h)
}

// Store owns the image and text layers and their drawables.
type Store struct {
	uploader   Uploader
	rasterizer Rasterizer

	images []ImageLayer
	texts  []TextLayer
}

// NewStore creates an empty store.
func NewStore(uploader Uploader, rasterizer Rasterizer) *Store {
	return &Store{
		uploader:   uploader,
		rasterizer: rasterizer,
	}
}

// AddImage uploads pixels and appends an image layer with its origin at
// (x, y). Nothing is appended if the upload fails.
func (s *Store) AddImage(pixels *image.RGBA, x, y int) (int, error) {
	if pixels == nil {
		return -1, ErrNoPixels
	}
	d, err := s.uploader.Upload(pixels)
	if err != nil {
		return -1, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	b := pixels.Bounds()
	s.images = append(s.images, ImageLayer{
		Drawable: d,
		Rect:     R(x, y, b.Dx(), b.Dy()),
	})
	return len(s.images) - 1, nil
}

// BeginText appends an empty text layer anchored at (x, y).
func (s *Store) BeginText(x, y int) int {
	s.texts = append(s.texts, TextLayer{AnchorX: x, AnchorY: y})
	return len(s.texts) - 1
}

// AppendText adds fragment to text layer i and re-rasterizes the whole
// string. A fragment that makes the string unrenderable is rejected and the
// layer keeps its previous text and drawable. An upload failure keeps the
// text but leaves the layer without a drawable.
func (s *Store) AppendText(i int, fragment string) error {
	if i < 0 || i >= len(s.texts) {
		return fmt.Errorf("%w: text %d", ErrNoLayer, i)
	}
	t := &s.texts[i]
	text := t.Text + fragment

	pixels, err := s.rasterizer.Rasterize(text)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrRasterize, fragment, err)
	}
	t.Text = text
	if t.Drawable != nil {
		t.Drawable.Release()
		t.Drawable = nil
	}
	if pixels == nil || pixels.Bounds().Empty() {
		return nil
	}
	d, err := s.uploader.Upload(pixels)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpload, err)
	}
	t.Drawable = d
	return nil
}

// MoveImage sets the origin of image layer i. Layers may be moved off
// screen.
func (s *Store) MoveImage(i, x, y int) error {
	if i < 0 || i >= len(s.images) {
		return fmt.Errorf("%w: image %d", ErrNoLayer, i)
	}
	s.images[i].Rect.X = x
	s.images[i].Rect.Y = y
	return nil
}

// HitTestImage returns the topmost image layer containing (x, y). Later
// layers paint over earlier ones, so the search runs backwards.
func (s *Store) HitTestImage(x, y int) (int, bool) {
	for i := len(s.images) - 1; i >= 0; i-- {
		if s.images[i].Rect.Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}

// ImageOrigin returns the top-left corner of image layer i.
func (s *Store) ImageOrigin(i int) (x, y int, ok bool) {
	if i < 0 || i >= len(s.images) {
		return 0, 0, false
	}
	r := s.images[i].Rect
	return r.X, r.Y, true
}

// Layer counts.
func (s *Store) ImageCount() int { return len(s.images) }
func (s *Store) TextCount() int  { return len(s.texts) }

// ImageLayers returns a copy of the image layers in paint order.
func (s *Store) ImageLayers() []ImageLayer {
	return append([]ImageLayer(nil), s.images...)
}

// TextLayers returns a copy of the text layers in paint order.
func (s *Store) TextLayers() []TextLayer {
	return append([]TextLayer(nil), s.texts...)
}

// Close releases every drawable. The store is empty afterwards.
func (s *Store) Close() {
	for _, l := range s.images {
		l.Drawable.Release()
	}
	for _, t := range s.texts {
		if t.Drawable != nil {
			t.Drawable.Release()
		}
	}
	s.images = nil
	s.texts = nil
}
