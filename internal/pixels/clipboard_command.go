package pixels

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// imageTargets are the clipboard targets Decode understands, best first.
var imageTargets = []string{
	"image/png",
	"image/bmp",
	"image/jpeg",
	"image/gif",
	"image/webp",
	"image/tiff",
}

// CommandClipboard reads the X11 clipboard through an xclip compatible
// command: "-o -selection clipboard -t TARGET".
type CommandClipboard struct {
	command string
	run     func(name string, args ...string) ([]byte, error)
}

// NewCommandClipboard runs command, or xclip when it is empty.
func NewCommandClipboard(command string) *CommandClipboard {
	if command == "" {
		command = "xclip"
	}
	return &CommandClipboard{command: command, run: output}
}

func output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

func (c *CommandClipboard) Name() string { return c.command }

func (c *CommandClipboard) read(target string) ([]byte, error) {
	return c.run(c.command, "-o", "-selection", "clipboard", "-t", target)
}

// ReadImage asks for the offered targets and reads the first image target
// it can decode.
func (c *CommandClipboard) ReadImage() ([]byte, error) {
	out, err := c.read("TARGETS")
	if err != nil {
		// xclip exits non-zero when the clipboard is empty.
		return nil, fmt.Errorf("%w: %s TARGETS: %v", ErrNoImage, c.command, err)
	}
	target := pickTarget(out)
	if target == "" {
		return nil, ErrNoImage
	}
	b, err := c.read(target)
	if err != nil {
		return nil, fmt.Errorf("pixels: %s %s: %w", c.command, target, err)
	}
	return b, nil
}

// pickTarget returns the preferred image target listed in out, one target
// per line, or "" if there is none.
func pickTarget(out []byte) string {
	offered := make(map[string]bool)
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		offered[strings.TrimSpace(sc.Text())] = true
	}
	for _, t := range imageTargets {
		if offered[t] {
			return t
		}
	}
	return ""
}
