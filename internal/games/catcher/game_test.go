package catcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/cat-catcher/internal/config"
	"github.com/vovakirdan/cat-catcher/internal/core"
	"github.com/vovakirdan/cat-catcher/internal/registry"
)

func runtimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// newTestGame returns a responsive game with no random spawns beyond the
// initial cat.
func newTestGame(t *testing.T, mutate func(*config.CatcherConfig)) *Game {
	t.Helper()
	cfg := config.DefaultCatcherConfig()
	cfg.Cats.SpawnChance = 0
	if mutate != nil {
		mutate(&cfg)
	}
	require.NoError(t, cfg.Validate())

	g := NewWithConfig(VariantResponsive, cfg)
	g.Reset(runtimeConfig(42))
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func steps(g *Game, n int, actions ...core.Action) core.StepResult {
	var res core.StepResult
	for i := 0; i < n; i++ {
		res = g.Step(frame(actions...))
	}
	return res
}

// catchOne drops the first live cat onto the player.
func catchOne(t *testing.T, g *Game) {
	t.Helper()
	snap := g.Snapshot()
	require.NotEmpty(t, snap.Cats)
	g.SetPosition(snap.Cats[0].Handle, snap.Player.X, snap.Player.Y-20)
	g.Step(frame())
}

func TestGameIDs(t *testing.T) {
	assert.Equal(t, "catcher", New().ID())
	assert.Equal(t, "catcher_classic", NewClassic().ID())
	assert.Equal(t, "Cat Catcher", New().Title())
	assert.Equal(t, "Cat Catcher (Classic)", NewClassic().Title())

	assert.True(t, registry.Exists("catcher"))
	assert.True(t, registry.Exists("catcher_classic"))
}

func TestWorldSize(t *testing.T) {
	tests := []struct {
		name         string
		variant      Variant
		screenW      int
		screenH      int
		wantW, wantH float64
	}{
		{"responsive 80x24", VariantResponsive, 80, 24, 800, 600},
		{"responsive 120x40", VariantResponsive, 120, 40, 1200, 1000},
		{"classic 80x24", VariantClassic, 80, 24, 800, 600},
		{"classic 120x40", VariantClassic, 120, 40, 800, 600},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithConfig(tc.variant, config.DefaultCatcherConfig())
			g.Reset(core.RuntimeConfig{ScreenW: tc.screenW, ScreenH: tc.screenH, Seed: 1})

			w, h := g.WorldSize()
			assert.Equal(t, tc.wantW, w)
			assert.Equal(t, tc.wantH, h)
			assert.Equal(t, tc.wantH-50, g.FloorY())
		})
	}
}

func TestResetStartsRound(t *testing.T) {
	g := newTestGame(t, nil)
	snap := g.Snapshot()

	assert.Equal(t, PhasePlaying, snap.Phase)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, "Score: 0", snap.ScoreText)
	assert.Equal(t, 400.0, snap.Player.X)
	assert.Equal(t, 550.0, snap.Player.Y)
	require.Len(t, snap.Cats, 1, "one cat on start")
	assert.Equal(t, 0.0, snap.Cats[0].Y)
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultCatcherConfig()
	g1 := NewWithConfig(VariantResponsive, cfg)
	g2 := NewWithConfig(VariantResponsive, cfg)
	g1.Reset(runtimeConfig(12345))
	g2.Reset(runtimeConfig(12345))

	for i := 0; i < 600; i++ {
		var actions []core.Action
		switch {
		case i%120 < 40:
			actions = append(actions, core.ActionLeft)
		case i%120 < 80:
			actions = append(actions, core.ActionRight)
		}
		g1.Step(frame(actions...))
		g2.Step(frame(actions...))
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestPlayerRunsWithInput(t *testing.T) {
	g := newTestGame(t, nil)

	steps(g, 30, core.ActionRight)
	snap := g.Snapshot()
	assert.InDelta(t, 550.0, snap.Player.X, 1e-6)
	assert.Equal(t, AnimRight, snap.Animation)
	assert.Equal(t, 526.0, snap.Player.Y, "player rests on the floor")

	steps(g, 1)
	snap = g.Snapshot()
	assert.Equal(t, 0.0, snap.Player.VX)
	assert.Equal(t, AnimTurn, snap.Animation)

	steps(g, 1, core.ActionLeft, core.ActionRight)
	assert.Equal(t, AnimLeft, g.Snapshot().Animation, "left wins when both are held")
}

func TestPlayerStopsAtWall(t *testing.T) {
	g := newTestGame(t, nil)

	steps(g, 120, core.ActionLeft)
	assert.Equal(t, 16.0, g.Snapshot().Player.X)
}

func TestCatFallsOutOfWorld(t *testing.T) {
	g := newTestGame(t, nil)

	// Run away from the cat so it is never caught
	away := core.ActionLeft
	if g.Snapshot().Cats[0].X < 400 {
		away = core.ActionRight
	}
	steps(g, 300, away)

	snap := g.Snapshot()
	assert.Empty(t, snap.Cats)
	assert.Equal(t, 0, snap.Score)
	assert.Zero(t, g.ctrl.Cats())
	assert.Equal(t, 1, g.world.Len(), "only the player is left")
}

func TestCatchScores(t *testing.T) {
	g := newTestGame(t, nil)
	steps(g, 1)

	catchOne(t, g)

	snap := g.Snapshot()
	assert.Equal(t, 1, snap.Score)
	assert.Equal(t, "Score: 1", snap.ScoreText)
	assert.Empty(t, snap.Cats)
	assert.Equal(t, PhasePlaying, snap.Phase)
}

func TestTenCatchesWin(t *testing.T) {
	g := newTestGame(t, func(cfg *config.CatcherConfig) {
		cfg.Cats.SpawnChance = cfg.Cats.SpawnRollMax + 1 // A cat every tick
	})
	steps(g, 1)

	for i := 0; i < 50 && !g.State().GameOver; i++ {
		catchOne(t, g)
	}

	state := g.State()
	require.True(t, state.GameOver)
	assert.True(t, state.Won)
	assert.Equal(t, 10, state.Score)
	assert.True(t, g.world.Paused())

	snap := g.Snapshot()
	assert.Equal(t, PhaseWon, snap.Phase)
	assert.Equal(t, WinBanner, snap.Banner)
	assert.Equal(t, []Choice{ChoiceRestart, ChoiceMenu}, snap.Choices)

	// The world is frozen: nothing moves, nothing spawns, no more points
	steps(g, 60, core.ActionRight)
	after := g.Snapshot()
	assert.Equal(t, snap.Cats, after.Cats)
	assert.Equal(t, snap.Player, after.Player)
	assert.Equal(t, 10, after.Score)
	assert.Equal(t, state.Ticks, g.State().Ticks)
}

func winRound(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t, func(cfg *config.CatcherConfig) {
		cfg.Rules.WinScore = 1
	})
	steps(g, 1)
	catchOne(t, g)
	require.True(t, g.State().GameOver)
	return g
}

func TestRestartKey(t *testing.T) {
	g := winRound(t)

	res := g.Step(frame(core.ActionRestart))

	assert.Equal(t, core.TransitionNone, res.Transition)
	assert.Equal(t, core.GameState{}, res.State)

	snap := g.Snapshot()
	assert.Equal(t, PhasePlaying, snap.Phase)
	assert.Empty(t, snap.Banner)
	assert.Equal(t, "Score: 0", snap.ScoreText)
	assert.Len(t, snap.Cats, 1, "fresh scene spawns its initial cat")
	assert.False(t, g.world.Paused())

	// Ticks run again
	steps(g, 10, core.ActionRight)
	assert.Equal(t, 10, g.State().Ticks)
	assert.Greater(t, g.Snapshot().Player.X, 400.0)
}

func TestMenuKey(t *testing.T) {
	g := winRound(t)

	res := g.Step(frame(core.ActionBack))
	assert.Equal(t, core.TransitionMenu, res.Transition)
	assert.Equal(t, 0, res.State.Score)
	assert.False(t, res.State.GameOver)

	res = g.Step(frame())
	assert.Equal(t, core.TransitionNone, res.Transition, "transition is reported once")
}

func TestWinCursor(t *testing.T) {
	g := winRound(t)

	g.Step(frame(core.ActionUp))
	assert.Equal(t, 0, g.Cursor())
	g.Step(frame(core.ActionDown))
	g.Step(frame(core.ActionDown))
	assert.Equal(t, 1, g.Cursor(), "cursor stops at the last choice")

	res := g.Step(frame(core.ActionConfirm))
	assert.Equal(t, core.TransitionMenu, res.Transition)
}

func TestChooseDirectly(t *testing.T) {
	g := newTestGame(t, nil)
	assert.ErrorIs(t, g.Choose(ChoiceRestart), ErrNotWon)

	g = winRound(t)
	require.NoError(t, g.Choose(ChoiceRestart))
	assert.Equal(t, PhasePlaying, g.Snapshot().Phase)
	assert.Len(t, g.Snapshot().Cats, 1)
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, nil)
	steps(g, 5)

	res := g.Step(frame(core.ActionPause))
	require.True(t, res.State.Paused)
	assert.True(t, g.world.Paused())
	before := g.Snapshot()

	steps(g, 30, core.ActionRight)
	after := g.Snapshot()
	assert.Equal(t, before.Player, after.Player)
	assert.Equal(t, before.Cats, after.Cats)
	assert.Equal(t, before.Tick, after.Tick)

	res = g.Step(frame(core.ActionPause))
	assert.False(t, res.State.Paused)
	assert.False(t, g.world.Paused())
	assert.Greater(t, g.Snapshot().Tick, before.Tick)
}

func TestWindowTooSmall(t *testing.T) {
	g := NewWithConfig(VariantResponsive, config.DefaultCatcherConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, Seed: 1})

	assert.True(t, g.TooSmall())
	res := g.Step(frame(core.ActionRight))
	assert.Equal(t, 0, res.State.Ticks)

	screen := core.NewScreen(10, 5)
	g.Render(screen)
	assert.Contains(t, screen.String(), "too")
}

func TestResizeKeepsSession(t *testing.T) {
	g := newTestGame(t, nil)
	catchOne(t, g)
	require.Equal(t, 1, g.State().Score)

	g.Resize(core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 60})
	snap := g.Snapshot()
	assert.Equal(t, 1, snap.Score)
	assert.Equal(t, "Score: 1", snap.ScoreText)
	assert.Equal(t, 1200.0, snap.WorldW)
	assert.Equal(t, 950.0, snap.FloorY)

	steps(g, 10)
	assert.Equal(t, 1, g.State().Score)
	assert.Greater(t, g.State().Ticks, 0)
}

func TestResizeShrinkKeepsPlayerInside(t *testing.T) {
	g := newTestGame(t, nil)
	cat := g.Snapshot().Cats[0]
	g.SetPosition(cat.Handle, 100, 540)

	g.Resize(core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60})
	snap := g.Snapshot()
	assert.Equal(t, 400.0, snap.WorldW)
	assert.Equal(t, 250.0, snap.FloorY)
	assert.LessOrEqual(t, snap.Player.X+snap.Player.W/2, 400.0)
	assert.LessOrEqual(t, snap.Player.Y+snap.Player.H/2, snap.FloorY)

	// The cat is below the new floor, so it falls out on the next step
	g.Step(frame())
	assert.Empty(t, g.Snapshot().Cats)
	assert.Equal(t, 0, g.State().Score)
}

func TestResizeClassicKeepsWorld(t *testing.T) {
	g := NewWithConfig(VariantClassic, config.DefaultCatcherConfig())
	g.Reset(runtimeConfig(3))

	g.Resize(core.RuntimeConfig{ScreenW: 120, ScreenH: 40})
	w, h := g.WorldSize()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 600.0, h)
	assert.False(t, g.TooSmall())

	g.Resize(core.RuntimeConfig{ScreenW: 10, ScreenH: 5})
	assert.True(t, g.TooSmall())
	g.Resize(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	assert.False(t, g.TooSmall())
}

func TestResizeBeforeResetStartsRound(t *testing.T) {
	g := NewWithConfig(VariantResponsive, config.DefaultCatcherConfig())
	g.Resize(runtimeConfig(9))

	snap := g.Snapshot()
	assert.Equal(t, PhasePlaying, snap.Phase)
	assert.Equal(t, 800.0, snap.WorldW)
}

func TestRender(t *testing.T) {
	g := newTestGame(t, nil)
	steps(g, 20) // Let the cat fall below the HUD row

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, string(GroundChar))
	assert.Contains(t, out, string(CatChar))
	assert.Contains(t, out, "/|\\")
	assert.Equal(t, core.ColorOrange, findCell(screen, CatChar).Color)

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")
}

func TestRenderWinScreen(t *testing.T) {
	g := winRound(t)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "YOU WIN!")
	assert.Contains(t, out, "> Restart")
	assert.Contains(t, out, "  Main Menu")

	g.Step(frame(core.ActionDown))
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "> Main Menu"))
}

func findCell(s *core.Screen, r rune) core.Cell {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune == r {
				return c
			}
		}
	}
	return core.Cell{}
}
