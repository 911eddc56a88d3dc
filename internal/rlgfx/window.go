// Package rlgfx connects the editor to raylib: the window, texture upload,
// drawing and input polling. Everything here must run on the main thread.
package rlgfx

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/deluxepaste/internal/config"
)

// Open creates the resizable main window.
func Open(w config.Window) error {
	flags := uint32(rl.FlagWindowResizable)
	if w.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	if !rl.IsWindowReady() {
		return errors.New("rlgfx: window could not be created")
	}
	rl.SetTargetFPS(int32(w.FPS))
	return nil
}

// Close destroys the window.
func Close() {
	rl.CloseWindow()
}
