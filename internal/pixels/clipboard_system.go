package pixels

import (
	"fmt"

	"golang.design/x/clipboard"
)

// SystemClipboard reads the platform clipboard natively. On X11 this needs
// cgo and a reachable display.
type SystemClipboard struct{}

// NewSystemClipboard initializes the platform clipboard.
func NewSystemClipboard() (*SystemClipboard, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("pixels: system clipboard: %w", err)
	}
	return &SystemClipboard{}, nil
}

func (*SystemClipboard) Name() string { return "system" }

// ReadImage returns PNG bytes.
func (*SystemClipboard) ReadImage() ([]byte, error) {
	b := clipboard.Read(clipboard.FmtImage)
	if len(b) == 0 {
		return nil, ErrNoImage
	}
	return b, nil
}
