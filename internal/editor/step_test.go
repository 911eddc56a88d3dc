package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fakeLayers is a static view: rects indexed by image layer.
type fakeLayers struct {
	rects [][4]int // x, y, w, h
	texts int
}

func (f fakeLayers) HitTestImage(x, y int) (int, bool) {
	for i := len(f.rects) - 1; i >= 0; i-- {
		r := f.rects[i]
		if r[2] > 0 && r[3] > 0 && x >= r[0] && x < r[0]+r[2] && y >= r[1] && y < r[1]+r[3] {
			return i, true
		}
	}
	return -1, false
}

func (f fakeLayers) ImageOrigin(i int) (int, int, bool) {
	if i < 0 || i >= len(f.rects) {
		return 0, 0, false
	}
	return f.rects[i][0], f.rects[i][1], true
}

func (f fakeLayers) TextCount() int { return f.texts }

var held = Buttons(0).With(ButtonLeft)

func TestStepDragKeepsGrabOffset(t *testing.T) {
	view := fakeLayers{rects: [][4]int{{100, 50, 40, 40}}}
	s := NewState()

	s, eff := Step(s, PointerDown{X: 110, Y: 65, Button: ButtonLeft}, view)
	if len(eff) != 0 {
		t.Fatalf("pointer down produced effects %v", eff)
	}
	if diff := cmp.Diff(&Selection{Layer: 0, OffsetX: 10, OffsetY: 15}, s.Selection); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}

	moves := []Point{{111, 65}, {300, 10}, {-40, -40}, {0, 500}}
	for _, p := range moves {
		var got []Effect
		s, got = Step(s, PointerMove{X: p.X, Y: p.Y, Held: held}, view)
		want := []Effect{MoveImage{Layer: 0, X: p.X - 10, Y: p.Y - 15}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("move to %v mismatch (-want +got):\n%s", p, diff)
		}
	}
}

func TestStepMoveWithoutButtonOrSelection(t *testing.T) {
	view := fakeLayers{rects: [][4]int{{0, 0, 10, 10}}}

	s := NewState()
	s, eff := Step(s, PointerMove{X: 5, Y: 5, Held: held}, view)
	if len(eff) != 0 {
		t.Errorf("drag without selection produced %v", eff)
	}
	if s.Pointer != (Point{5, 5}) {
		t.Errorf("pointer is %v; expected {5 5}", s.Pointer)
	}

	s, _ = Step(s, PointerDown{X: 5, Y: 5, Button: ButtonLeft}, view)
	_, eff = Step(s, PointerMove{X: 6, Y: 6}, view)
	if len(eff) != 0 {
		t.Errorf("move without held button produced %v", eff)
	}
	_, eff = Step(s, PointerMove{X: 6, Y: 6, Held: Buttons(0).With(ButtonRight)}, view)
	if len(eff) != 0 {
		t.Errorf("move with right button produced %v", eff)
	}
}

func TestStepPointerDownSelectsTopmost(t *testing.T) {
	view := fakeLayers{rects: [][4]int{{10, 10, 50, 50}, {20, 20, 50, 50}}}
	s, _ := Step(NewState(), PointerDown{X: 30, Y: 30, Button: ButtonLeft}, view)
	if s.Selection == nil || s.Selection.Layer != 1 {
		t.Errorf("selection is %+v; expected layer 1", s.Selection)
	}
}

func TestStepPointerDownIgnoresOtherButtons(t *testing.T) {
	view := fakeLayers{rects: [][4]int{{0, 0, 10, 10}}}
	s, _ := Step(NewState(), PointerDown{X: 1, Y: 2, Button: ButtonRight}, view)
	if s.Selection != nil {
		t.Errorf("right button selected %+v", s.Selection)
	}
	if s.Pointer != (Point{1, 2}) {
		t.Errorf("pointer is %v; expected {1 2}", s.Pointer)
	}
}

func TestStepPointerUpClears(t *testing.T) {
	view := fakeLayers{rects: [][4]int{{0, 0, 10, 10}}}

	s := NewState()
	s, _ = Step(s, PointerUp{Button: ButtonLeft}, view)
	if s.Selection != nil {
		t.Errorf("pointer up without selection left %+v", s.Selection)
	}

	s, _ = Step(s, PointerDown{X: 1, Y: 1, Button: ButtonLeft}, view)
	s, _ = Step(s, PointerUp{Button: ButtonRight}, view)
	if s.Selection == nil {
		t.Errorf("right button up cleared the selection")
	}
	s, _ = Step(s, PointerUp{Button: ButtonLeft}, view)
	if s.Selection != nil {
		t.Errorf("left button up kept %+v", s.Selection)
	}
	s, _ = Step(s, PointerUp{Button: ButtonLeft}, view)
	if s.Selection != nil {
		t.Errorf("second pointer up produced %+v", s.Selection)
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	view := fakeLayers{rects: [][4]int{{0, 0, 10, 10}}}
	s0, _ := Step(NewState(), PointerDown{X: 3, Y: 4, Button: ButtonLeft}, view)
	before := *s0.Selection

	s1, _ := Step(s0, PointerUp{Button: ButtonLeft}, view)
	_, _ = Step(s0, PointerDown{X: 9, Y: 9, Button: ButtonLeft}, view)

	if s1.Selection != nil {
		t.Errorf("s1 kept a selection")
	}
	if diff := cmp.Diff(before, *s0.Selection); diff != "" {
		t.Errorf("Step mutated its input (-before +after):\n%s", diff)
	}
}

func TestStepTextEntry(t *testing.T) {
	view := fakeLayers{texts: 2}
	s := NewState()
	s, _ = Step(s, PointerMove{X: 40, Y: 30}, view)

	s, eff := Step(s, TextInput{Text: "x"}, view)
	if len(eff) != 0 || s.Mode != Normal {
		t.Fatalf("%q in normal mode gave mode %v, effects %v", "x", s.Mode, eff)
	}

	s, eff = Step(s, TextInput{Text: "t"}, view)
	if diff := cmp.Diff([]Effect{BeginText{X: 40, Y: 30}}, eff); diff != "" {
		t.Errorf("begin text mismatch (-want +got):\n%s", diff)
	}
	if s.Mode != TextEntry || s.ActiveText != 2 {
		t.Errorf("after t: mode %v active %d; expected text 2", s.Mode, s.ActiveText)
	}

	for _, in := range []string{"t", "h", "\n", "é"} {
		var got []Effect
		s, got = Step(s, TextInput{Text: in}, view)
		want := []Effect{AppendText{Layer: 2, Text: in}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("input %q mismatch (-want +got):\n%s", in, diff)
		}
	}
	if s.Mode != TextEntry {
		t.Errorf("text entry ended on its own: %v", s.Mode)
	}

	_, eff = Step(s, TextInput{}, view)
	if len(eff) != 0 {
		t.Errorf("empty input produced %v", eff)
	}
}

func TestStepTextEntryKeepsPointerBehavior(t *testing.T) {
	view := fakeLayers{rects: [][4]int{{0, 0, 10, 10}}}
	s := NewState()
	s.Mode = TextEntry
	s.ActiveText = 0

	s, _ = Step(s, PointerDown{X: 2, Y: 2, Button: ButtonLeft}, view)
	_, eff := Step(s, PointerMove{X: 5, Y: 5, Held: held}, view)
	if diff := cmp.Diff([]Effect{MoveImage{Layer: 0, X: 3, Y: 3}}, eff); diff != "" {
		t.Errorf("drag in text entry mismatch (-want +got):\n%s", diff)
	}
}

func TestStepPasteResizeQuit(t *testing.T) {
	view := fakeLayers{}
	s := NewState()
	s, _ = Step(s, PointerMove{X: 7, Y: 8}, view)

	for _, mode := range []Mode{Normal, TextEntry} {
		s.Mode = mode
		_, eff := Step(s, Paste{}, view)
		if diff := cmp.Diff([]Effect{PasteImage{X: 7, Y: 8}}, eff); diff != "" {
			t.Errorf("paste in %v mismatch (-want +got):\n%s", mode, diff)
		}
	}

	s, eff := Step(s, Resize{Width: 1024, Height: 768}, view)
	if len(eff) != 0 || s.Width != 1024 || s.Height != 768 {
		t.Errorf("resize gave %dx%d and %v", s.Width, s.Height, eff)
	}

	_, eff = Step(s, Quit{}, view)
	if diff := cmp.Diff([]Effect{Stop{}}, eff); diff != "" {
		t.Errorf("quit mismatch (-want +got):\n%s", diff)
	}
}

func TestNewState(t *testing.T) {
	want := State{ActiveText: -1}
	if diff := cmp.Diff(want, NewState()); diff != "" {
		t.Errorf("NewState mismatch (-want +got):\n%s", diff)
	}
}

func TestModeString(t *testing.T) {
	for m, want := range map[Mode]string{Normal: "normal", TextEntry: "text", Mode(9): "Mode(9)"} {
		if got := m.String(); got != want {
			t.Errorf("Mode(%d).String() = %q; expected %q", int(m), got, want)
		}
	}
}
