package editor

// Button is a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Primary is the button that selects and drags.
const Primary = ButtonLeft

// Buttons is a set of held buttons.
type Buttons uint8

// Has reports whether btn is in the set.
func (b Buttons) Has(btn Button) bool {
	return b&(1<<uint(btn)) != 0
}

// With returns the set plus btn.
func (b Buttons) With(btn Button) Buttons {
	return b | 1<<uint(btn)
}

// Event is one unit of input.
type Event interface {
	event()
}

// PointerMove reports the pointer position and the buttons held there.
type PointerMove struct {
	X, Y int
	Held Buttons
}

// PointerDown is a button press at a position.
type PointerDown struct {
	X, Y   int
	Button Button
}

// PointerUp is a button release.
type PointerUp struct {
	Button Button
}

// TextInput is a committed text fragment, usually one character.
type TextInput struct {
	Text string
}

// Resize carries the new window size.
type Resize struct {
	Width, Height int
}

// Paste asks for the clipboard image to be placed at the pointer.
type Paste struct{}

// Quit asks the program to stop.
type Quit struct{}

func (PointerMove) event() {}
func (PointerDown) event() {}
func (PointerUp) event()   {}
func (TextInput) event()   {}
func (Resize) event()      {}
func (Paste) event()       {}
func (Quit) event()        {}

// Effect is a change Step wants applied outside the State.
type Effect interface {
	effect()
}

// MoveImage sets the origin of an image layer.
type MoveImage struct {
	Layer int
	X, Y  int
}

// BeginText opens a new text layer anchored at X, Y.
type BeginText struct {
	X, Y int
}

// AppendText adds Text to a text layer.
type AppendText struct {
	Layer int
	Text  string
}

// PasteImage adds the clipboard image with its origin at X, Y.
type PasteImage struct {
	X, Y int
}

// Stop ends the frame loop.
type Stop struct{}

func (MoveImage) effect()  {}
func (BeginText) effect()  {}
func (AppendText) effect() {}
func (PasteImage) effect() {}
func (Stop) effect()       {}
