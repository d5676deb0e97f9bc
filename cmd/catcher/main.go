// catcher is Cat Catcher for the terminal: catch ten falling cats to win.
//
// Usage:
//
//	catcher                  - Start the main menu (same as "catcher menu")
//	catcher play [game]      - Play a game variant directly
//	catcher list             - List available game variants
//	catcher scores [game]    - Show high scores
//	catcher serve            - Start SSH server for remote play
//	catcher config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.catcher/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--player <name>       - Name recorded with saved scores
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cat-catcher/internal/config"
	"github.com/vovakirdan/cat-catcher/internal/core"
	"github.com/vovakirdan/cat-catcher/internal/games/catcher"
	"github.com/vovakirdan/cat-catcher/internal/storage"
)

const defaultGame = "catcher"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catcher",
	Short: "Cat Catcher - catch falling cats in your terminal",
	Long: `Cat Catcher is a small arcade game: run left and right to catch
falling cats. Catch ten to win, then restart or return to the menu.

Available commands:
  menu     - Main menu (default)
  play     - Play a game variant directly
  list     - Show all game variants
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  catcher
  catcher play
  catcher play catcher_classic --difficulty hard
  catcher serve --ssh :2222
  catcher scores`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.catcher/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name recorded with scores (default: $USER)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger creates the process logger at the --log-level level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "catcher",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadGameConfig loads and validates the configuration the game will use,
// and hands --config and --difficulty to the game package.
func loadGameConfig() config.CatcherConfig {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fatal("%v", err)
	}

	cfg, err := config.LoadCatcher(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	config.ApplyCatcherPreset(&cfg, preset)

	catcher.SetConfigPath(flagConfig)
	catcher.SetDifficultyPreset(flagDifficulty)
	return cfg
}

// runtimeConfig builds the runtime config from the terminal and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Player:   player,
	}
}

// openStore opens the score database. The game still works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func closeStore(logger *log.Logger, store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "error", err)
	}
}
