package rlgfx

import (
	"fmt"
	"image"
	"image/color"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/deluxepaste/internal/compose"
	"github.com/ha1tch/deluxepaste/internal/layer"
	"github.com/ha1tch/deluxepaste/internal/pixels"
)

// Texture is a GPU texture owned by the layer store.
type Texture struct {
	tex rl.Texture2D
}

// Size is the texture size in pixels.
func (t *Texture) Size() (int, int) {
	return int(t.tex.Width), int(t.tex.Height)
}

// Release unloads the texture. It is safe to call twice.
func (t *Texture) Release() {
	if t.tex.ID != 0 {
		rl.UnloadTexture(t.tex)
		t.tex = rl.Texture2D{}
	}
}

// Uploader creates textures from RGBA buffers.
type Uploader struct{}

// Upload copies rgba into a new texture.
func (Uploader) Upload(rgba *image.RGBA) (layer.Drawable, error) {
	b := rgba.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("rlgfx: cannot upload %dx%d image", b.Dx(), b.Dy())
	}
	// raylib blends straight alpha. The image wraps Go memory, so it is not
	// unloaded.
	px := pixels.Straight(rgba)
	img := rl.NewImage(px.Pix, int32(b.Dx()), int32(b.Dy()), 1, rl.UncompressedR8g8b8a8)
	tex := rl.LoadTextureFromImage(img)
	runtime.KeepAlive(px)
	if tex.ID == 0 {
		return nil, fmt.Errorf("rlgfx: texture upload of %dx%d image failed", b.Dx(), b.Dy())
	}
	return &Texture{tex: tex}, nil
}

// Screen draws to the window's back buffer.
type Screen struct{}

// Frame runs draw between BeginDrawing and EndDrawing.
func (s Screen) Frame(draw func(compose.Target)) {
	rl.BeginDrawing()
	draw(s)
	rl.EndDrawing()
}

func (Screen) Clear(c color.RGBA) {
	rl.ClearBackground(rl.NewColor(c.R, c.G, c.B, c.A))
}

// Draw stretches the src part of a texture over dst. Drawables that did not
// come from Uploader are ignored.
func (Screen) Draw(d layer.Drawable, src, dst layer.Rect) {
	t, ok := d.(*Texture)
	if !ok || t.tex.ID == 0 {
		return
	}
	rl.DrawTexturePro(t.tex, rect(src), rect(dst), rl.Vector2{}, 0, rl.White)
}

func rect(r layer.Rect) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(r.X),
		Y:      float32(r.Y),
		Width:  float32(r.Width),
		Height: float32(r.Height),
	}
}
