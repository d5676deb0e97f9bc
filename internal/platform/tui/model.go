package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cat-catcher/internal/config"
	"github.com/vovakirdan/cat-catcher/internal/core"
	"github.com/vovakirdan/cat-catcher/internal/registry"
	"github.com/vovakirdan/cat-catcher/internal/storage"
)

// Options carries settings shared by the terminal models.
type Options struct {
	Hold          time.Duration // How long a direction key press counts as held
	Credits       []string      // Lines shown on the credits screen
	ScreenshotDir string        // Defaults to ~/.catcher/screenshots
	Logger        *log.Logger
}

// OptionsFromConfig builds Options from the game configuration.
func OptionsFromConfig(cfg config.CatcherConfig, logger *log.Logger) Options {
	return Options{
		Hold:    time.Duration(cfg.Input.HoldMS) * time.Millisecond,
		Credits: append([]string(nil), cfg.Credits...),
		Logger:  logger,
	}
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// GameModel is the Bubble Tea model for one running game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keyMapper  *KeyMapper
	latch      DirectionLatch
	inputFrame core.InputFrame
	gameState  core.GameState
	now        func() time.Time

	standalone bool // Quit the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score has been saved for the current win
}

// NewGameModel creates a new game model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		latch:      NewDirectionLatch(opts.Hold),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		path, err := m.saveScreenshot()
		if err != nil {
			m.opts.logger().Warn("could not save screenshot", "error", err)
		} else {
			m.opts.logger().Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if dir, ok := directionFor(action); ok {
		m.latch.Press(dir, m.now())
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config)
		m.gameState = m.game.State()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.latch.Apply(&m.inputFrame, m.now())

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else if m.gameState.Won && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
		m.latch.Release()
	}

	if result.Transition == core.TransitionMenu {
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		// Stop ticking; the session switches to the menu
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished round. Saving is best-effort.
func (m GameModel) saveScore() {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveScore(m.game.ID(), m.config.Player, m.gameState.Score, m.gameState.Ticks)
	if err != nil {
		m.opts.logger().Warn("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	m.opts.logger().Debug("score saved",
		"game", m.game.ID(),
		"player", m.config.Player,
		"score", m.gameState.Score,
		"ticks", m.gameState.Ticks,
	)
}

// saveScreenshot saves the current screen to a text file and returns its path.
func (m *GameModel) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".catcher", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the game asked to return to the main menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal. Returning to the main menu from
// the win screen ends the program.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, store, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
