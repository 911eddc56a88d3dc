package pixels

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
)

// ErrNoImage means the clipboard holds nothing that looks like an image.
var ErrNoImage = errors.New("pixels: no image on clipboard")

// Clipboard reads encoded image bytes from a clipboard. It returns
// ErrNoImage when there is no image to read.
type Clipboard interface {
	Name() string
	ReadImage() ([]byte, error)
}

// ClipboardImages decodes what a Clipboard returns.
type ClipboardImages struct {
	clip Clipboard
	log  *slog.Logger
}

// NewClipboardImages wraps clip. A nil logger means slog.Default.
func NewClipboardImages(clip Clipboard, logger *slog.Logger) *ClipboardImages {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClipboardImages{clip: clip, log: logger}
}

// Image returns the clipboard image as RGBA.
func (c *ClipboardImages) Image() (*image.RGBA, error) {
	b, err := c.clip.ReadImage()
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, ErrNoImage
	}
	img, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%s clipboard: %w", c.clip.Name(), err)
	}
	c.log.Debug("clipboard image decoded", "backend", c.clip.Name(), "bytes", len(b))
	return img, nil
}

// OpenClipboard returns the backend called name: "system" or "command".
// command is the executable the command backend runs.
func OpenClipboard(name, command string) (Clipboard, error) {
	switch name {
	case "system":
		c, err := NewSystemClipboard()
		if err != nil {
			return nil, err
		}
		return c, nil
	case "command":
		return NewCommandClipboard(command), nil
	}
	return nil, fmt.Errorf("pixels: unknown clipboard backend %q", name)
}
