package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-catcher/internal/platform/tui"
	"github.com/vovakirdan/cat-catcher/internal/registry"
)

var flagMenuGame string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the main menu",
	Long: `Start Cat Catcher at the main menu.

Menu:
  Play         - Start a round
  High Scores  - Browse the leaderboard
  Credits      - Show the credits
  Close        - Quit (asks for confirmation)

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Close

Examples:
  catcher menu
  catcher menu --game catcher_classic
  catcher menu --fps 30 --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuGame, "game", defaultGame, "Game variant started by Play")
}

func runMenu(_ *cobra.Command, _ []string) {
	gameID := flagMenuGame
	if gameID == "" {
		gameID = defaultGame
	}
	if !registry.Exists(gameID) {
		fatal("unknown game %q (run 'catcher list')", gameID)
	}

	logger := newLogger()
	cfg := loadGameConfig()
	store := openStore(logger)

	err := tui.RunSession(store, runtimeConfig(), gameID, tui.OptionsFromConfig(cfg, logger))
	closeStore(logger, store)
	if err != nil {
		fatal("running menu: %v", err)
	}
}
