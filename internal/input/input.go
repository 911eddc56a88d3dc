// Package input orders one frame of polled input state into editor events.
package input

import "github.com/ha1tch/deluxepaste/internal/editor"

// Snapshot is the input state of one frame as a polling backend sees it.
type Snapshot struct {
	Closing       bool
	Resized       bool
	Width, Height int
	X, Y          int
	Held          editor.Buttons
	Pressed       editor.Buttons
	Released      editor.Buttons
	Ctrl          bool
	// Alt is set while either alt key is down. Ctrl with Alt is AltGr on
	// layouts that report it that way, and types text.
	Alt bool
	// PasteKey is set when V went down this frame.
	PasteKey bool
	Chars    []rune
}

var order = [...]editor.Button{editor.ButtonLeft, editor.ButtonRight, editor.ButtonMiddle}

// Translator remembers the pointer between frames so motion is reported
// only when it happens.
type Translator struct {
	started bool
	last    editor.Point
}

// Events orders a frame's input as: resize, motion, presses, typed text,
// paste, releases, quit. Motion comes first so a press lands where the
// pointer is now, and presses precede releases so a click inside a single
// frame still selects and then lets go. The first frame always reports the
// window size and pointer.
func (t *Translator) Events(s Snapshot) []editor.Event {
	var evs []editor.Event

	if s.Resized || !t.started {
		evs = append(evs, editor.Resize{Width: s.Width, Height: s.Height})
	}
	p := editor.Point{X: s.X, Y: s.Y}
	if p != t.last || !t.started {
		evs = append(evs, editor.PointerMove{X: s.X, Y: s.Y, Held: s.Held})
		t.last = p
	}
	t.started = true

	for _, b := range order {
		if s.Pressed.Has(b) {
			evs = append(evs, editor.PointerDown{X: s.X, Y: s.Y, Button: b})
		}
	}
	// Characters typed with control held are shortcuts, not text.
	shortcut := s.Ctrl && !s.Alt
	if !shortcut {
		for _, c := range s.Chars {
			evs = append(evs, editor.TextInput{Text: string(c)})
		}
	}
	if shortcut && s.PasteKey {
		evs = append(evs, editor.Paste{})
	}
	for _, b := range order {
		if s.Released.Has(b) {
			evs = append(evs, editor.PointerUp{Button: b})
		}
	}
	if s.Closing {
		evs = append(evs, editor.Quit{})
	}
	return evs
}
