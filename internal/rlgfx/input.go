package rlgfx

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/deluxepaste/internal/editor"
	"github.com/ha1tch/deluxepaste/internal/input"
)

var buttons = [...]struct {
	mb  rl.MouseButton
	btn editor.Button
}{
	{rl.MouseLeftButton, editor.ButtonLeft},
	{rl.MouseRightButton, editor.ButtonRight},
	{rl.MouseMiddleButton, editor.ButtonMiddle},
}

// Input polls raylib once per frame.
type Input struct {
	tr input.Translator
}

// Poll reads this frame's input and returns it as ordered editor events.
func (in *Input) Poll() []editor.Event {
	return in.tr.Events(snapshot())
}

func snapshot() input.Snapshot {
	pos := rl.GetMousePosition()
	s := input.Snapshot{
		Closing:  rl.WindowShouldClose(),
		Resized:  rl.IsWindowResized(),
		Width:    rl.GetScreenWidth(),
		Height:   rl.GetScreenHeight(),
		X:        int(pos.X),
		Y:        int(pos.Y),
		Ctrl:     rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl),
		Alt:      rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt),
		PasteKey: rl.IsKeyPressed(rl.KeyV),
	}
	for _, b := range buttons {
		if rl.IsMouseButtonDown(b.mb) {
			s.Held = s.Held.With(b.btn)
		}
		if rl.IsMouseButtonPressed(b.mb) {
			s.Pressed = s.Pressed.With(b.btn)
		}
		if rl.IsMouseButtonReleased(b.mb) {
			s.Released = s.Released.With(b.btn)
		}
	}
	for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
		s.Chars = append(s.Chars, rune(c))
	}
	return s
}
