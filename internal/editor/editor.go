package editor

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/ha1tch/deluxepaste/internal/layer"
	"github.com/ha1tch/deluxepaste/internal/pixels"
)

// Store is the part of layer.Store the editor mutates.
type Store interface {
	Layers
	AddImage(p *image.RGBA, x, y int) (int, error)
	BeginText(x, y int) int
	AppendText(i int, fragment string) error
	MoveImage(i, x, y int) error
}

// ImageSource yields the image currently on the clipboard.
type ImageSource interface {
	Image() (*image.RGBA, error)
}

// Editor owns the interaction State and applies Step's effects.
type Editor struct {
	state State
	store Store
	clip  ImageSource
	log   *slog.Logger
}

// New creates an editor in Normal mode. A nil logger means slog.Default.
func New(store Store, clip ImageSource, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor{
		state: NewState(),
		store: store,
		clip:  clip,
		log:   logger,
	}
}

// State returns a copy of the current state.
func (e *Editor) State() State {
	s := e.state
	if s.Selection != nil {
		sel := *s.Selection
		s.Selection = &sel
	}
	return s
}

// Handle processes one event. quit reports that the event asked the program
// to stop. A non-nil error is a failure to create a layer's drawable.
func (e *Editor) Handle(ev Event) (quit bool, err error) {
	prev := e.state.Mode
	next, effects := Step(e.state, ev, e.store)
	e.state = next
	if next.Mode != prev {
		e.log.Debug("mode changed", "from", prev, "to", next.Mode)
	}

	var errs []error
	for _, eff := range effects {
		if _, ok := eff.(Stop); ok {
			quit = true
			continue
		}
		if err := e.apply(eff); err != nil {
			errs = append(errs, err)
		}
	}
	return quit, errors.Join(errs...)
}

// Drain handles a frame's events in arrival order. It stops early on quit.
// Errors are collected so that one failed layer does not drop later input.
func (e *Editor) Drain(events []Event) (quit bool, err error) {
	var errs []error
	for _, ev := range events {
		q, err := e.Handle(ev)
		if err != nil {
			errs = append(errs, err)
		}
		if q {
			quit = true
			break
		}
	}
	return quit, errors.Join(errs...)
}

func (e *Editor) apply(eff Effect) error {
	switch eff := eff.(type) {
	case MoveImage:
		if err := e.store.MoveImage(eff.Layer, eff.X, eff.Y); err != nil {
			e.log.Warn("drag target vanished", "layer", eff.Layer, "err", err)
		}

	case BeginText:
		i := e.store.BeginText(eff.X, eff.Y)
		if i != e.state.ActiveText {
			e.log.Warn("text layer index mismatch", "store", i, "state", e.state.ActiveText)
			e.state.ActiveText = i
		}
		e.log.Debug("text entry started", "layer", i, "x", eff.X, "y", eff.Y)

	case AppendText:
		err := e.store.AppendText(eff.Layer, eff.Text)
		switch {
		case err == nil:
		case errors.Is(err, layer.ErrRasterize):
			e.log.Warn("text not rendered", "layer", eff.Layer, "err", err)
		case errors.Is(err, layer.ErrNoLayer):
			e.log.Warn("text target vanished", "layer", eff.Layer, "err", err)
		default:
			return fmt.Errorf("text layer %d: %w", eff.Layer, err)
		}

	case PasteImage:
		return e.paste(eff.X, eff.Y)
	}
	return nil
}

func (e *Editor) paste(x, y int) error {
	img, err := e.clip.Image()
	switch {
	case errors.Is(err, pixels.ErrNoImage):
		e.log.Debug("paste ignored: no image on clipboard")
		return nil
	case err != nil:
		e.log.Warn("paste ignored", "err", err)
		return nil
	}
	i, err := e.store.AddImage(img, x, y)
	if err != nil {
		return fmt.Errorf("paste at %d,%d: %w", x, y, err)
	}
	b := img.Bounds()
	e.log.Info("image pasted", "layer", i, "x", x, "y", y, "w", b.Dx(), "h", b.Dy())
	return nil
}
