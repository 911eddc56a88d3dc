// Package config loads the editor's TOML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	appName  = "deluxepaste"
	fileName = "config.toml"
)

// Window is the [window] section.
type Window struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	FPS        int    `toml:"fps"`
	VSync      bool   `toml:"vsync"`
	Background Color  `toml:"background"`
}

// Text is the style of typed text.
type Text struct {
	Size    float64 `toml:"size"`
	DPI     float64 `toml:"dpi"`
	Padding int     `toml:"padding"`
	Color   Color   `toml:"color"`
}

// Clipboard picks the paste backend.
type Clipboard struct {
	// Backend is "system" or "command".
	Backend string `toml:"backend"`
	// Command is the xclip compatible program used by the command backend.
	Command string `toml:"command"`
}

// Log is the [log] section.
type Log struct {
	Level string `toml:"level"`
}

// Config is the whole config file.
type Config struct {
	Window    Window    `toml:"window"`
	Text      Text      `toml:"text"`
	Clipboard Clipboard `toml:"clipboard"`
	Log       Log       `toml:"log"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Window: Window{
			Title:      appName,
			Width:      800,
			Height:     600,
			FPS:        60,
			VSync:      true,
			Background: Color{200, 180, 100, 255},
		},
		Text: Text{
			Size:    24,
			DPI:     72,
			Padding: 4,
			Color:   Color{0, 0, 0, 255},
		},
		Clipboard: Clipboard{
			Backend: "system",
			Command: "xclip",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Dir is $XDG_CONFIG_HOME/deluxepaste, or ~/.config/deluxepaste when the
// variable is unset, relative or points nowhere. It fails when there is no
// home directory to fall back to.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); filepath.IsAbs(xdg) {
		if fi, err := os.Stat(xdg); err == nil && fi.IsDir() {
			return filepath.Join(xdg, appName), nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// Path is the default config file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads path over the defaults. A missing file is not an error; the
// defaults are returned and exists is false.
func Load(path string) (cfg *Config, exists bool, err error) {
	cfg = Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, false, nil
		}
		return Default(), true, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.Validate()
	return cfg, true, nil
}

// Write stores cfg at path, creating the directory if needed.
func (c *Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Validate replaces unusable values with defaults.
func (c *Config) Validate() {
	d := Default()

	if c.Window.Title == "" {
		c.Window.Title = d.Window.Title
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window.Width, c.Window.Height = d.Window.Width, d.Window.Height
	}
	if c.Window.FPS <= 0 || c.Window.FPS > 1000 {
		c.Window.FPS = d.Window.FPS
	}

	if c.Text.Size <= 0 {
		c.Text.Size = d.Text.Size
	}
	if c.Text.DPI <= 0 {
		c.Text.DPI = d.Text.DPI
	}
	if c.Text.Padding < 0 {
		c.Text.Padding = d.Text.Padding
	}

	c.Clipboard.Backend = strings.ToLower(c.Clipboard.Backend)
	if c.Clipboard.Backend != "system" && c.Clipboard.Backend != "command" {
		c.Clipboard.Backend = d.Clipboard.Backend
	}
	if c.Clipboard.Command == "" {
		c.Clipboard.Command = d.Clipboard.Command
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		c.Log.Level = d.Log.Level
	}
}

// LogLevel is the slog level named by Log.Level.
func (c *Config) LogLevel() slog.Level {
	l, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(s))
	return l, err
}

// Color is an RGBA color written as "#rrggbb" or "#rrggbbaa".
type Color color.RGBA

func (c Color) ToRGBA() color.RGBA { return color.RGBA(c) }

func (c Color) MarshalText() ([]byte, error) {
	if c.A == 255 {
		return []byte(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), nil
	}
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	s := string(b)
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 9) {
		return fmt.Errorf("config: color %q: want #rrggbb or #rrggbbaa", s)
	}
	var v [4]uint8
	v[3] = 255
	for i := 0; i < (len(s)-1)/2; i++ {
		x, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return fmt.Errorf("config: color %q: %w", s, err)
		}
		v[i] = uint8(x)
	}
	*c = Color{v[0], v[1], v[2], v[3]}
	return nil
}
