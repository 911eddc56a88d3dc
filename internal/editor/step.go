package editor

// textEntryKey switches Normal mode into TextEntry.
const textEntryKey = "t"

// Layers is the read-only view of the layer store that Step needs.
type Layers interface {
	HitTestImage(x, y int) (int, bool)
	ImageOrigin(i int) (x, y int, ok bool)
	TextCount() int
}

// Step returns the state that follows s after ev, and the effects to apply.
// It neither modifies s nor anything reachable from view.
func Step(s State, ev Event, view Layers) (State, []Effect) {
	switch ev := ev.(type) {
	case PointerMove:
		s.Pointer = Point{ev.X, ev.Y}
		if ev.Held.Has(Primary) && s.Selection != nil {
			sel := s.Selection
			return s, []Effect{MoveImage{
				Layer: sel.Layer,
				X:     ev.X - sel.OffsetX,
				Y:     ev.Y - sel.OffsetY,
			}}
		}

	case PointerDown:
		s.Pointer = Point{ev.X, ev.Y}
		if ev.Button != Primary {
			break
		}
		i, ok := view.HitTestImage(ev.X, ev.Y)
		if !ok {
			break
		}
		ox, oy, ok := view.ImageOrigin(i)
		if !ok {
			break
		}
		s.Selection = &Selection{
			Layer:   i,
			OffsetX: ev.X - ox,
			OffsetY: ev.Y - oy,
		}

	case PointerUp:
		if ev.Button == Primary {
			s.Selection = nil
		}

	case TextInput:
		switch s.Mode {
		case Normal:
			if ev.Text == textEntryKey {
				s.Mode = TextEntry
				s.ActiveText = view.TextCount()
				return s, []Effect{BeginText{X: s.Pointer.X, Y: s.Pointer.Y}}
			}
		case TextEntry:
			if ev.Text != "" {
				return s, []Effect{AppendText{Layer: s.ActiveText, Text: ev.Text}}
			}
		}

	case Resize:
		s.Width = ev.Width
		s.Height = ev.Height

	case Paste:
		return s, []Effect{PasteImage{X: s.Pointer.X, Y: s.Pointer.Y}}

	case Quit:
		return s, []Effect{Stop{}}
	}
	return s, nil
}
