package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ha1tch/deluxepaste/internal/compose"
	"github.com/ha1tch/deluxepaste/internal/config"
	"github.com/ha1tch/deluxepaste/internal/editor"
	"github.com/ha1tch/deluxepaste/internal/layer"
	"github.com/ha1tch/deluxepaste/internal/pixels"
	"github.com/ha1tch/deluxepaste/internal/rlgfx"
)

var version = "dev" // set by the build

type options struct {
	configPath  string
	clipboard   string
	verbose     bool
	version     bool
	writeConfig bool
}

func parseOptions() options {
	var opt options
	flag.StringVar(&opt.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/deluxepaste/config.toml)")
	flag.StringVar(&opt.clipboard, "clipboard", "", "clipboard backend: system or command")
	flag.BoolVar(&opt.verbose, "v", false, "debug logging")
	flag.BoolVar(&opt.version, "version", false, "print version and exit")
	flag.BoolVar(&opt.writeConfig, "write-config", false, "write the effective config and exit")
	flag.Parse()
	return opt
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}

func main() {
	opt := parseOptions()
	if opt.version {
		fmt.Println("deluxepaste", version)
		return
	}

	if opt.configPath == "" {
		p, err := config.Path()
		if err != nil {
			fatal("no config location", err)
		}
		opt.configPath = p
	}
	cfg, exists, err := config.Load(opt.configPath)
	if err != nil {
		fatal("couldn't read config", err)
	}
	if opt.clipboard != "" {
		cfg.Clipboard.Backend = opt.clipboard
	}

	level := cfg.LogLevel()
	if opt.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if !exists || opt.writeConfig {
		if err := cfg.Write(opt.configPath); err != nil {
			log.Warn("couldn't write config", "path", opt.configPath, "err", err)
		} else {
			log.Info("config written", "path", opt.configPath)
		}
		if opt.writeConfig {
			return
		}
	}

	if err := run(cfg, log); err != nil {
		fatal("deluxepaste stopped", err)
	}
}

func openClipboard(cfg config.Clipboard, log *slog.Logger) (pixels.Clipboard, error) {
	clip, err := pixels.OpenClipboard(cfg.Backend, cfg.Command)
	if err == nil || cfg.Backend != "system" {
		return clip, err
	}
	log.Warn("system clipboard unavailable, using command", "command", cfg.Command, "err", err)
	return pixels.OpenClipboard("command", cfg.Command)
}

func run(cfg *config.Config, log *slog.Logger) error {
	clip, err := openClipboard(cfg.Clipboard, log)
	if err != nil {
		return err
	}
	raster, err := pixels.NewTextRasterizer(pixels.TextStyle{
		Size:    cfg.Text.Size,
		DPI:     cfg.Text.DPI,
		Padding: cfg.Text.Padding,
		Color:   cfg.Text.Color.ToRGBA(),
	})
	if err != nil {
		return err
	}

	if err := rlgfx.Open(cfg.Window); err != nil {
		return err
	}
	defer rlgfx.Close()
	log.Info("window open", "title", cfg.Window.Title, "w", cfg.Window.Width, "h", cfg.Window.Height, "clipboard", clip.Name())

	store := layer.NewStore(rlgfx.Uploader{}, raster)
	defer store.Close()

	ed := editor.New(store, pixels.NewClipboardImages(clip, log), log)
	comp := compose.New(cfg.Window.Background.ToRGBA())
	var in rlgfx.Input
	var screen rlgfx.Screen

	for {
		quit, err := ed.Drain(in.Poll())
		if err != nil {
			log.Error("input", "err", err)
		}
		if quit {
			break
		}
		screen.Frame(func(t compose.Target) {
			comp.Composite(store, t)
		})
	}

	log.Info("closing", "images", store.ImageCount(), "texts", store.TextCount())
	return nil
}
