package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-catcher/internal/platform/tui"
	"github.com/vovakirdan/cat-catcher/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game variant",
	Long: `Start playing immediately, skipping the main menu.
The game defaults to "catcher".

Controls:
  Left/A/H, Right/D/L  - Run
  P                    - Pause
  R                    - Restart (after winning)
  M/B/Esc              - Main menu (after winning; ends the program)
  Up/Down + Enter      - Pick a choice (after winning)
  Ctrl+S               - Save a text screenshot
  Q/Ctrl+C             - Quit

Difficulty options:
  easy   - Win at 5, faster runner, cats speed up with score
  normal - Reference rules
  hard   - Win at 15, smaller cats, starts at 70% pace
  fixed  - No progression

Examples:
  catcher play
  catcher play catcher_classic
  catcher play --difficulty hard
  catcher play --config ./my-catcher.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fatal("unknown game %q (run 'catcher list')", gameID)
	}

	logger := newLogger()
	cfg := loadGameConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fatal("creating game: %v", err)
	}

	store := openStore(logger)
	runErr := tui.Run(game, store, runtimeConfig(), tui.OptionsFromConfig(cfg, logger))
	closeStore(logger, store)

	if runErr != nil {
		fatal("running game: %v", runErr)
	}
}
