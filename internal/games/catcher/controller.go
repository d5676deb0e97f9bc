package catcher

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/cat-catcher/internal/config"
)

var (
	// ErrNotWon is returned by Choose while the round is still being played.
	ErrNotWon = errors.New("catcher: round not won")
	// ErrUnknownChoice is returned by Choose for a choice that was not offered.
	ErrUnknownChoice = errors.New("catcher: unknown choice")
)

// WinBanner is displayed in SlotBanner when the round is won.
const WinBanner = "YOU WIN!"

// Choice is an option offered on the win screen.
type Choice string

const (
	ChoiceRestart Choice = "restart"
	ChoiceMenu    Choice = "menu"
)

// Label returns the button text for a choice.
func (c Choice) Label() string {
	switch c {
	case ChoiceRestart:
		return "Restart"
	case ChoiceMenu:
		return "Main Menu"
	default:
		return string(c)
	}
}

// Rules are the tunable gameplay constants.
type Rules struct {
	PlayerSpeed  float64 // Horizontal run speed
	FloorOffset  float64 // Player spawns this far above the canvas bottom
	SpawnChance  int     // A cat spawns when Between(0, SpawnRollMax) < SpawnChance
	SpawnRollMax int
	SpawnMargin  int // Spawn x is kept this far from both walls
	MinFallSpeed int
	MaxFallSpeed int
	WinScore     int
	SpawnOnStart bool
}

// DefaultRules returns the reference rules: 2% spawn chance per tick, fall
// speed in [100, 200], 10 cats to win.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultCatcherConfig())
}

// RulesFromConfig extracts the gameplay rules from a configuration.
func RulesFromConfig(cfg config.CatcherConfig) Rules {
	return Rules{
		PlayerSpeed:  cfg.Player.Speed,
		FloorOffset:  cfg.World.FloorMargin,
		SpawnChance:  cfg.Cats.SpawnChance,
		SpawnRollMax: cfg.Cats.SpawnRollMax,
		SpawnMargin:  cfg.Cats.SpawnMargin,
		MinFallSpeed: cfg.Cats.MinFallSpeed,
		MaxFallSpeed: cfg.Cats.MaxFallSpeed,
		WinScore:     cfg.Rules.WinScore,
		SpawnOnStart: cfg.Rules.SpawnOnStart,
	}
}

// Pacer adjusts spawn parameters as the round progresses.
// *config.DifficultyManager implements it.
type Pacer interface {
	SpawnChance(base int, score int, ticks int) int
	FallSpeedRange(minSpeed, maxSpeed int, score int, ticks int) (int, int)
}

// Controller holds the gameplay rules: spawning, scoring, the win condition
// and the restart/menu choices. It is driven by an engine calling Start,
// OnTick, OnOverlap and OnBoundaryExit from a single goroutine.
type Controller struct {
	engine Engine
	rng    Random
	rules  Rules
	pacer  Pacer

	session Session
	player  Handle
	cats    map[Handle]bool
	ticks   int
	choices []Choice
}

// NewController creates a controller. Call Start once the scene exists.
func NewController(engine Engine, rng Random, rules Rules) *Controller {
	return &Controller{
		engine: engine,
		rng:    rng,
		rules:  rules,
		cats:   make(map[Handle]bool),
	}
}

// SetPacer installs a pacer. A nil pacer keeps the base rules.
func (c *Controller) SetPacer(p Pacer) {
	c.pacer = p
}

// Start builds the scene: the player near the floor, an initial cat and the
// score text. The session is left as is.
func (c *Controller) Start() {
	c.cats = make(map[Handle]bool)
	c.choices = nil
	c.ticks = 0

	c.player = c.engine.CreateEntity(KindPlayer, c.engine.PlayWidth()/2, c.engine.PlayHeight()-c.rules.FloorOffset)
	c.engine.PlayAnimation(c.player, AnimTurn)

	if c.rules.SpawnOnStart {
		c.spawnCat()
	}
	c.displayScore()
}

// OnTick runs once per simulation tick before physics. It steers the player
// from the directional input and rolls for a new cat. Nothing happens once
// the round is won.
func (c *Controller) OnTick() {
	if c.session.GameOver {
		return
	}
	c.ticks++

	dir := c.engine.PollDirectionalInput()
	vx := 0.0
	switch AnimationFor(dir) {
	case AnimLeft:
		vx = -c.rules.PlayerSpeed
	case AnimRight:
		vx = c.rules.PlayerSpeed
	}
	c.engine.SetVelocity(c.player, vx, 0)
	c.engine.PlayAnimation(c.player, AnimationFor(dir))

	c.SpawnPolicy()
}

// SpawnPolicy rolls once and spawns a cat on success. It reports whether a
// cat was spawned.
func (c *Controller) SpawnPolicy() bool {
	chance := c.rules.SpawnChance
	if c.pacer != nil {
		chance = c.pacer.SpawnChance(chance, c.session.Score, c.ticks)
	}
	if c.rng.Between(0, c.rules.SpawnRollMax) >= chance {
		return false
	}
	c.spawnCat()
	return true
}

func (c *Controller) spawnCat() Handle {
	width := int(c.engine.PlayWidth())
	x := float64(width) / 2
	if width >= 2*c.rules.SpawnMargin {
		x = float64(c.rng.Between(c.rules.SpawnMargin, width-c.rules.SpawnMargin))
	}

	minSpeed, maxSpeed := c.rules.MinFallSpeed, c.rules.MaxFallSpeed
	if c.pacer != nil {
		minSpeed, maxSpeed = c.pacer.FallSpeedRange(minSpeed, maxSpeed, c.session.Score, c.ticks)
	}
	vy := float64(c.rng.Between(minSpeed, maxSpeed))

	h := c.engine.CreateEntity(KindCat, x, 0)
	c.engine.SetVelocity(h, 0, vy)
	c.cats[h] = true
	return h
}

// OnOverlap handles the player touching a cat: the cat is destroyed and the
// score goes up by one. Reaching the win score ends the round.
func (c *Controller) OnOverlap(player, cat Handle) {
	if c.session.GameOver || player != c.player || !c.cats[cat] {
		return
	}

	delete(c.cats, cat)
	c.engine.DestroyEntity(cat)
	c.session.Score++
	c.displayScore()

	if c.session.Score >= c.rules.WinScore && !c.session.GameOver {
		c.session.GameOver = true
		c.engine.PauseSimulation()
		c.engine.Display(SlotBanner, WinBanner)
		c.choices = []Choice{ChoiceRestart, ChoiceMenu}
	}
}

// OnBoundaryExit destroys a cat that reached the bottom of the world.
// Events for other edges or for cats already gone are ignored.
func (c *Controller) OnBoundaryExit(h Handle, edge Edge) {
	if edge != EdgeBottom || !c.cats[h] {
		return
	}
	delete(c.cats, h)
	c.engine.DestroyEntity(h)
}

// Choose applies a win screen choice. Both choices reset the session before
// leaving the scene.
func (c *Controller) Choose(choice Choice) error {
	if !c.session.GameOver {
		return ErrNotWon
	}

	switch choice {
	case ChoiceRestart:
		c.session.Reset()
		c.choices = nil
		c.engine.RestartScene()
	case ChoiceMenu:
		c.session.Reset()
		c.choices = nil
		c.engine.TransitionScene(SceneMenu)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownChoice, choice)
	}
	return nil
}

// Choices returns the options offered on the win screen, or nil while playing.
func (c *Controller) Choices() []Choice {
	return c.choices
}

// Session returns a copy of the current session.
func (c *Controller) Session() Session {
	return c.session
}

// Player returns the player handle.
func (c *Controller) Player() Handle {
	return c.player
}

// Cats returns the number of live cats.
func (c *Controller) Cats() int {
	return len(c.cats)
}

// Tracked reports whether h is a live cat.
func (c *Controller) Tracked(h Handle) bool {
	return c.cats[h]
}

// Ticks returns the number of played ticks since Start.
func (c *Controller) Ticks() int {
	return c.ticks
}

func (c *Controller) displayScore() {
	c.engine.Display(SlotScore, fmt.Sprintf("Score: %d", c.session.Score))
}
