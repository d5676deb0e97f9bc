package catcher

import (
	"math"

	"github.com/vovakirdan/cat-catcher/internal/arcade"
	"github.com/vovakirdan/cat-catcher/internal/config"
	"github.com/vovakirdan/cat-catcher/internal/core"
	"github.com/vovakirdan/cat-catcher/internal/registry"
)

// Body tags used in the arcade world.
const (
	tagPlayer = "player"
	tagCat    = "cat"
)

// Minimum terminal size needed to play.
const (
	minScreenW = 20
	minScreenH = 8
)

// Variant selects how the world is sized.
type Variant int

const (
	// VariantResponsive sizes the world from the screen: one cell is
	// CellWidth x CellHeight world units.
	VariantResponsive Variant = iota
	// VariantClassic uses the fixed canvas from the configuration.
	VariantClassic
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game adapts Controller to an arcade world and to the platform game
// contract. It is the Engine the controller drives.
type Game struct {
	variant  Variant
	cfg      config.CatcherConfig
	fixedCfg bool // cfg was supplied by the caller; Reset does not reload it

	runtime core.RuntimeConfig
	world   *arcade.World
	ctrl    *Controller
	rng     *SeededRandom

	worldW, worldH float64
	tooSmall       bool

	// Per-tick state
	input          core.InputFrame
	paused         bool
	restartPending bool
	transition     core.Transition

	// Presentation
	anim   Animation
	texts  map[TextSlot]string
	cursor int
}

// New creates the responsive Cat Catcher game.
func New() *Game {
	return &Game{variant: VariantResponsive}
}

// NewClassic creates the fixed-canvas Cat Catcher game.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(variant Variant, cfg config.CatcherConfig) *Game {
	return &Game{variant: variant, cfg: cfg, fixedCfg: true}
}

func init() {
	registry.Register("catcher", func() registry.Game {
		return New()
	})
	registry.Register("catcher_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return "catcher_classic"
	}
	return "catcher"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Cat Catcher (Classic)"
	}
	return "Cat Catcher"
}

// Config returns the configuration in use.
func (g *Game) Config() config.CatcherConfig {
	return g.cfg
}

// Reset starts a new round with a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadCatcher(configPath)
		if err != nil {
			cfg = config.DefaultCatcherConfig()
		}
		config.ApplyCatcherPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}

	g.measure(runtime)

	g.rng = NewRandom(runtime.Seed)
	g.ctrl = NewController(g, g.rng, RulesFromConfig(g.cfg))
	if g.cfg.Difficulty.Enabled {
		g.ctrl.SetPacer(config.NewDifficultyManager(g.cfg.Difficulty))
	}

	g.input = core.NewInputFrame()
	g.transition = core.TransitionNone
	g.startScene()
}

// measure derives the world size from the screen.
func (g *Game) measure(runtime core.RuntimeConfig) {
	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.worldW, g.worldH = g.cfg.World.Width, g.cfg.World.Height
	if g.variant == VariantResponsive {
		g.worldW = float64(runtime.ScreenW) * g.cfg.World.CellWidth
		g.worldH = float64(runtime.ScreenH) * g.cfg.World.CellHeight
	}
}

// Resize follows a new screen size without touching the session. The
// responsive world takes the new bounds; the player is kept inside them and
// cats left below the new floor fall out on the next step.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	if g.ctrl == nil {
		g.Reset(runtime)
		return
	}
	runtime.Seed = g.runtime.Seed
	g.runtime = runtime
	g.measure(runtime)

	g.world.SetBounds(arcade.Bounds{
		W: g.worldW,
		H: g.FloorY(),
	})

	if p, ok := g.world.Body(arcade.BodyID(g.ctrl.Player())); ok {
		x := core.ClampF(p.X, p.W/2, g.worldW-p.W/2)
		y := math.Min(p.Y, g.FloorY()-p.H/2)
		g.world.SetPosition(p.ID, x, y)
	}
}

// startScene rebuilds the world and lets the controller populate it.
func (g *Game) startScene() {
	g.world = arcade.NewWorld(arcade.Bounds{
		W: g.worldW,
		H: g.worldH - g.cfg.World.FloorMargin,
	}, g.cfg.World.Gravity)

	g.paused = false
	g.restartPending = false
	g.cursor = 0
	g.anim = AnimTurn
	g.texts = make(map[TextSlot]string)

	g.ctrl.Start()

	g.world.OnOverlap(arcade.BodyID(g.ctrl.Player()), tagCat, func(player, cat *arcade.Body) {
		g.ctrl.OnOverlap(Handle(player.ID), Handle(cat.ID))
	})
	g.world.OnWorldBounds(func(b *arcade.Body, edges arcade.Edges) {
		h := Handle(b.ID)
		if edges.Up {
			g.ctrl.OnBoundaryExit(h, EdgeTop)
		}
		if edges.Down {
			g.ctrl.OnBoundaryExit(h, EdgeBottom)
		}
		if edges.Left {
			g.ctrl.OnBoundaryExit(h, EdgeLeft)
		}
		if edges.Right {
			g.ctrl.OnBoundaryExit(h, EdgeRight)
		}
	})
}

// Step advances the game by one tick.
//
// Order: win screen choices, pause toggle, controller tick (direction and
// spawn), world step (overlap and bounds events), deferred scene restart.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.transition = core.TransitionNone
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	g.input = in.Clone()

	if g.ctrl.Session().GameOver {
		g.handleWinInput(in)
	} else if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			g.world.Pause()
		} else {
			g.world.Resume()
		}
	}

	leaving := g.restartPending || g.transition != core.TransitionNone
	if !g.paused && !leaving {
		g.ctrl.OnTick()
		g.world.Step(g.runtime.TickSeconds())
	}

	if g.restartPending {
		g.startScene()
	}

	return core.StepResult{State: g.State(), Transition: g.transition}
}

func (g *Game) handleWinInput(in core.InputFrame) {
	choices := g.ctrl.Choices()
	switch {
	case in.Has(core.ActionRestart):
		g.choose(ChoiceRestart)
	case in.Has(core.ActionBack):
		g.choose(ChoiceMenu)
	case in.Has(core.ActionUp):
		g.cursor = core.Max(0, g.cursor-1)
	case in.Has(core.ActionDown):
		g.cursor = core.Min(len(choices)-1, g.cursor+1)
	case in.Has(core.ActionConfirm):
		if g.cursor >= 0 && g.cursor < len(choices) {
			g.choose(choices[g.cursor])
		}
	}
}

func (g *Game) choose(c Choice) {
	if err := g.ctrl.Choose(c); err != nil {
		return
	}
	g.cursor = 0
}

// Choose applies a win screen choice, as a pointer click would.
func (g *Game) Choose(c Choice) error {
	err := g.ctrl.Choose(c)
	if err == nil && g.restartPending {
		g.startScene()
	}
	return err
}

// Cursor returns the selected win screen choice index.
func (g *Game) Cursor() int {
	return g.cursor
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.ctrl.Session()
	return core.GameState{
		Score:    s.Score,
		GameOver: s.GameOver,
		Won:      s.GameOver,
		Paused:   g.paused,
		Ticks:    g.ctrl.Ticks(),
	}
}

// TooSmall reports whether the screen is too small to play.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}

// WorldSize returns the canvas size in world units.
func (g *Game) WorldSize() (float64, float64) {
	return g.worldW, g.worldH
}

// FloorY returns the world y-coordinate of the floor.
func (g *Game) FloorY() float64 {
	return g.worldH - g.cfg.World.FloorMargin
}

// Engine implementation.

// CreateEntity adds a player or cat body to the world.
func (g *Game) CreateEntity(kind Kind, x, y float64) Handle {
	body := arcade.Body{
		X:                  x,
		Y:                  y,
		AllowGravity:       true,
		CollideWorldBounds: true,
	}
	switch kind {
	case KindPlayer:
		body.Tag = tagPlayer
		body.W, body.H = g.cfg.Player.Width, g.cfg.Player.Height
	case KindCat:
		body.Tag = tagCat
		body.W, body.H = g.cfg.Cats.Width, g.cfg.Cats.Height
		body.OnWorldBounds = true
	}
	return Handle(g.world.Add(body).ID)
}

// DestroyEntity removes a body from the world.
func (g *Game) DestroyEntity(h Handle) {
	g.world.Remove(arcade.BodyID(h))
}

// SetVelocity sets a body's velocity.
func (g *Game) SetVelocity(h Handle, vx, vy float64) {
	g.world.SetVelocity(arcade.BodyID(h), vx, vy)
}

// SetPosition moves a body.
func (g *Game) SetPosition(h Handle, x, y float64) {
	g.world.SetPosition(arcade.BodyID(h), x, y)
}

// PlayAnimation records the player animation for rendering.
func (g *Game) PlayAnimation(h Handle, anim Animation) {
	if h == g.ctrl.Player() {
		g.anim = anim
	}
}

// PauseSimulation freezes the world.
func (g *Game) PauseSimulation() {
	g.world.Pause()
}

// TransitionScene surfaces the scene change in the next StepResult.
// SceneMain restarts the round.
func (g *Game) TransitionScene(scene Scene) {
	switch scene {
	case SceneMenu:
		g.transition = core.TransitionMenu
	case SceneMain:
		g.restartPending = true
	}
}

// RestartScene rebuilds the scene at the end of the current tick.
func (g *Game) RestartScene() {
	g.restartPending = true
}

// PollDirectionalInput returns the direction held in the current input frame.
func (g *Game) PollDirectionalInput() core.Direction {
	return g.input.Direction()
}

// Display sets an on-screen text.
func (g *Game) Display(slot TextSlot, text string) {
	g.texts[slot] = text
}

// PlayWidth returns the canvas width in world units.
func (g *Game) PlayWidth() float64 {
	return g.worldW
}

// PlayHeight returns the canvas height in world units.
func (g *Game) PlayHeight() float64 {
	return g.worldH
}
