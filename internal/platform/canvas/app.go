// Package canvas runs Cat Catcher in a window or browser tab with
// Ebitengine. It drives the same catcher game as the terminal and draws it
// from snapshots.
package canvas

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/cat-catcher/internal/config"
	"github.com/vovakirdan/cat-catcher/internal/core"
	"github.com/vovakirdan/cat-catcher/internal/games/catcher"
)

// Layout selects how the canvas follows the window.
type Layout int

const (
	// LayoutResponsive makes the world as large as the window.
	LayoutResponsive Layout = iota
	// LayoutFixed keeps the configured 800x600 world and lets Ebitengine scale it.
	LayoutFixed
)

type scene int

const (
	sceneBoot scene = iota
	sceneCredits
	scenePlay
)

// Options configures an App.
type Options struct {
	Layout Layout
	Config config.CatcherConfig
	Seed   int64 // 0 uses the clock
	Logger *log.Logger
}

// App implements ebiten.Game.
type App struct {
	opts    Options
	logger  *log.Logger
	scene   scene
	game    *catcher.Game
	snap    catcher.Snapshot
	buttons []button

	outsideW, outsideH int
	closing            bool
}

// New creates an App showing the boot scene.
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	a := &App{
		opts:     opts,
		logger:   logger,
		outsideW: int(opts.Config.World.Width),
		outsideH: int(opts.Config.World.Height),
	}
	a.enterBoot()
	return a
}

// Update advances the app by one tick.
func (a *App) Update() error {
	a.handlePointer()
	if a.closing {
		a.logger.Info("closing")
		return ebiten.Termination
	}

	switch a.scene {
	case scenePlay:
		a.updatePlay()
	case sceneCredits:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			a.enterBoot()
		}
	default:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			a.startGame()
		}
	}
	return nil
}

// Layout reports the logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.opts.Layout == LayoutFixed {
		return int(a.opts.Config.World.Width), int(a.opts.Config.World.Height)
	}
	if outsideWidth != a.outsideW || outsideHeight != a.outsideH {
		a.outsideW, a.outsideH = outsideWidth, outsideHeight
		if a.scene == scenePlay && a.game != nil {
			// The round goes on in the resized world
			a.game.Resize(a.runtimeConfig())
			a.snap = a.game.Snapshot()
		}
		a.layoutButtons()
	}
	return outsideWidth, outsideHeight
}

func (a *App) screenSize() (float64, float64) {
	if a.opts.Layout == LayoutFixed {
		return a.opts.Config.World.Width, a.opts.Config.World.Height
	}
	return float64(a.outsideW), float64(a.outsideH)
}

func (a *App) enterBoot() {
	a.scene = sceneBoot
	a.game = nil
	a.layoutButtons()
}

func (a *App) enterCredits() {
	a.scene = sceneCredits
	a.layoutButtons()
}

// gameConfig returns the catcher variant and configuration for the layout.
func (a *App) gameConfig() (catcher.Variant, config.CatcherConfig) {
	cfg := a.opts.Config
	if a.opts.Layout == LayoutFixed {
		return catcher.VariantClassic, cfg
	}
	// One world unit per logical pixel
	cfg.World.CellWidth, cfg.World.CellHeight = 1, 1
	return catcher.VariantResponsive, cfg
}

// runtimeConfig sizes the round to the current screen.
func (a *App) runtimeConfig() core.RuntimeConfig {
	w, h := a.screenSize()
	return core.RuntimeConfig{
		ScreenW:  int(w),
		ScreenH:  int(h),
		TickRate: ebiten.TPS(),
		Seed:     a.opts.Seed,
	}
}

// startGame builds a fresh round sized to the current screen.
func (a *App) startGame() {
	variant, cfg := a.gameConfig()
	runtime := a.runtimeConfig()
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	a.game = catcher.NewWithConfig(variant, cfg)
	a.game.Reset(runtime)
	a.snap = a.game.Snapshot()
	a.scene = scenePlay
	a.layoutButtons()
	a.logger.Debug("round started", "game", a.game.ID(), "width", runtime.ScreenW, "height", runtime.ScreenH)
}

func (a *App) updatePlay() {
	in := readKeys()
	result := a.game.Step(in)
	a.snap = a.game.Snapshot()

	if result.Transition == core.TransitionMenu {
		a.enterBoot()
		return
	}
	a.layoutButtons()
}

// readKeys builds the input frame from the keyboard. Directions are read
// as held keys; everything else fires once per press.
func readKeys() core.InputFrame {
	in := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}

	pressed := map[ebiten.Key]core.Action{
		ebiten.KeyArrowUp:   core.ActionUp,
		ebiten.KeyArrowDown: core.ActionDown,
		ebiten.KeyEnter:     core.ActionConfirm,
		ebiten.KeyP:         core.ActionPause,
		ebiten.KeyR:         core.ActionRestart,
		ebiten.KeyM:         core.ActionBack,
		ebiten.KeyEscape:    core.ActionBack,
	}
	for key, action := range pressed {
		if inpututil.IsKeyJustPressed(key) {
			in.Set(action)
		}
	}
	return in
}

// handlePointer clicks the button under a new mouse press or touch.
func (a *App) handlePointer() {
	var points [][2]int
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		points = append(points, [2]int{x, y})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		points = append(points, [2]int{x, y})
	}

	for _, p := range points {
		if b, ok := hitButton(a.buttons, float64(p[0]), float64(p[1])); ok {
			b.onClick()
			return
		}
	}
}

// layoutButtons places the buttons of the current scene.
func (a *App) layoutButtons() {
	w, h := a.screenSize()
	switch a.scene {
	case sceneBoot:
		a.buttons = column(w, h/2, []button{
			{label: "Play", onClick: a.startGame},
			{label: "Credits", onClick: a.enterCredits},
			{label: "Close", onClick: func() { a.closing = true }},
		})
	case sceneCredits:
		a.buttons = column(w, h-80, []button{
			{label: "Back", onClick: a.enterBoot},
		})
	case scenePlay:
		a.buttons = nil
		if a.snap.Phase != catcher.PhaseWon {
			return
		}
		choices := make([]button, 0, len(a.snap.Choices))
		for _, c := range a.snap.Choices {
			choice := c
			choices = append(choices, button{
				label: choice.Label(),
				onClick: func() {
					if err := a.game.Choose(choice); err != nil {
						a.logger.Warn("choice rejected", "choice", choice, "error", err)
						return
					}
					a.snap = a.game.Snapshot()
					if choice == catcher.ChoiceMenu {
						a.enterBoot()
						return
					}
					a.layoutButtons()
				},
			})
		}
		a.buttons = column(w, h/2+20, choices)
	}
}
