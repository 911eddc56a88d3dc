// Package editor is the interaction state machine of the canvas.
//
// Input arrives as Events. Step computes the next State and the list of
// Effects the event implies without touching anything; Editor then applies
// those effects to the layer store and the clipboard.
package editor

import "fmt"

// Mode selects how typed text is treated.
type Mode int

const (
	Normal Mode = iota // typing "t" starts text entry
	TextEntry // typed text goes to the active text layer
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case TextEntry:
		return "text"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Point is a position in window coordinates.
type Point struct {
	X, Y int
}

// Selection records the image layer being dragged and where inside it the
// pointer grabbed it.
type Selection struct {
	Layer   int
	OffsetX int
	OffsetY int
}

// State is everything the editor remembers between events.
type State struct {
	Pointer       Point
	Width, Height int
	Selection     *Selection
	Mode          Mode
	// ActiveText is the text layer receiving input in TextEntry, -1 otherwise.
	ActiveText int
}

// NewState returns the start-up state: Normal mode, nothing selected.
func NewState() State {
	return State{ActiveText: -1}
}
