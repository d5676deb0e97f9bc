// catcher-web runs Cat Catcher in a window with Ebitengine. Built with
// GOOS=js GOARCH=wasm it runs in a browser canvas.
//
// Usage:
//
//	catcher-web [-fixed] [-seed N] [-config path] [-difficulty name]
package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/cat-catcher/internal/config"
	"github.com/vovakirdan/cat-catcher/internal/platform/canvas"
)

func main() {
	fixed := flag.Bool("fixed", false, "Keep the 800x600 canvas and scale it to the window")
	seed := flag.Int64("seed", 0, "RNG seed (0 = random based on time)")
	configPath := flag.String("config", "", "Path to custom game config YAML")
	difficulty := flag.String("difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "catcher-web",
	})
	if level, err := log.ParseLevel(*logLevel); err == nil {
		logger.SetLevel(level)
	}

	preset, err := config.ParsePreset(*difficulty)
	if err != nil {
		logger.Fatal("bad difficulty", "error", err)
	}
	cfg, err := config.LoadCatcher(*configPath)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}
	config.ApplyCatcherPreset(&cfg, preset)

	layout := canvas.LayoutResponsive
	if *fixed {
		layout = canvas.LayoutFixed
	}

	app := canvas.New(canvas.Options{
		Layout: layout,
		Config: cfg,
		Seed:   *seed,
		Logger: logger,
	})

	ebiten.SetWindowSize(int(cfg.World.Width), int(cfg.World.Height))
	ebiten.SetWindowTitle("Cat Catcher")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal("game stopped", "error", err)
	}
}
