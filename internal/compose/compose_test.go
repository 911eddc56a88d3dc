package compose

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ha1tch/deluxepaste/internal/layer"
)

type namedDrawable struct {
	name string
	w, h int
}

func (d *namedDrawable) Size() (int, int) { return d.w, d.h }
func (d *namedDrawable) Release()         {}

type nameUploader struct {
	next []string
}

func (u *nameUploader) Upload(p *image.RGBA) (layer.Drawable, error) {
	name := u.next[0]
	u.next = u.next[1:]
	return &namedDrawable{name: name, w: p.Bounds().Dx(), h: p.Bounds().Dy()}, nil
}

type blockRasterizer struct{}

func (blockRasterizer) Rasterize(s string) (*image.RGBA, error) {
	if s == "" {
		return nil, nil
	}
	return image.NewRGBA(image.Rect(0, 0, 6*len(s), 9)), nil
}

type call struct {
	Op       string
	Name     string
	Src, Dst layer.Rect
	Color    color.RGBA
}

type recorder struct {
	calls []call
}

func (r *recorder) Clear(c color.RGBA) {
	r.calls = append(r.calls, call{Op: "clear", Color: c})
}

func (r *recorder) Draw(d layer.Drawable, src, dst layer.Rect) {
	r.calls = append(r.calls, call{Op: "draw", Name: d.(*namedDrawable).name, Src: src, Dst: dst})
}

func TestCompositeOrder(t *testing.T) {
	// Text is created before some images on purpose: paint order must still
	// put every image below every text.
	u := &nameUploader{next: []string{"txt0", "imgA", "txt2", "imgB"}}
	s := layer.NewStore(u, blockRasterizer{})

	t0 := s.BeginText(1, 2)
	s.AppendText(t0, "hi")
	s.AddImage(image.NewRGBA(image.Rect(0, 0, 50, 50)), 10, 10)
	s.BeginText(3, 3) // never typed into, no drawable
	t2 := s.BeginText(5, 6)
	s.AppendText(t2, "x")
	s.AddImage(image.NewRGBA(image.Rect(0, 0, 20, 30)), 20, 20)
	s.MoveImage(0, -5, 400)

	bg := color.RGBA{200, 180, 100, 255}
	r := &recorder{}
	n := New(bg).Composite(s, r)

	want := []call{
		{Op: "clear", Color: bg},
		{Op: "draw", Name: "imgA", Src: layer.R(0, 0, 50, 50), Dst: layer.R(-5, 400, 50, 50)},
		{Op: "draw", Name: "imgB", Src: layer.R(0, 0, 20, 30), Dst: layer.R(20, 20, 20, 30)},
		{Op: "draw", Name: "txt0", Src: layer.R(0, 0, 12, 9), Dst: layer.R(1, 2, 12, 9)},
		{Op: "draw", Name: "txt2", Src: layer.R(0, 0, 6, 9), Dst: layer.R(5, 6, 6, 9)},
	}
	if diff := cmp.Diff(want, r.calls); diff != "" {
		t.Errorf("draw calls mismatch (-want +got):\n%s", diff)
	}
	if n != 4 {
		t.Errorf("Composite drew %d layers; expected 4", n)
	}
}

func TestCompositeIdempotent(t *testing.T) {
	u := &nameUploader{next: []string{"a", "b"}}
	s := layer.NewStore(u, blockRasterizer{})
	s.AddImage(image.NewRGBA(image.Rect(0, 0, 4, 4)), 0, 0)
	s.AddImage(image.NewRGBA(image.Rect(0, 0, 4, 4)), 2, 2)

	c := New(color.RGBA{})
	first, second := &recorder{}, &recorder{}
	c.Composite(s, first)
	c.Composite(s, second)
	if diff := cmp.Diff(first.calls, second.calls); diff != "" {
		t.Errorf("second frame differs (-first +second):\n%s", diff)
	}
}

func TestCompositeEmpty(t *testing.T) {
	r := &recorder{}
	if n := New(color.RGBA{A: 255}).Composite(layer.NewStore(nil, nil), r); n != 0 {
		t.Errorf("empty store drew %d layers", n)
	}
	if len(r.calls) != 1 || r.calls[0].Op != "clear" {
		t.Errorf("empty store calls: %+v", r.calls)
	}
}
