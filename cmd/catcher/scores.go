package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-catcher/internal/registry"
	"github.com/vovakirdan/cat-catcher/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Without a game, shows a summary of every game that has been won.
With a game, shows its top 10 wins; equal scores rank by time taken.

Examples:
  catcher scores
  catcher scores catcher
  catcher scores catcher_classic --all
  catcher scores catcher --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded round")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the game's scores")
}

func runScores(_ *cobra.Command, args []string) {
	logger := newLogger()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer closeStore(logger, store)

	if len(args) == 0 {
		printSummary(store)
		return
	}

	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		closeStore(logger, store)
		fatal("%v (run 'catcher list')", err)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			closeStore(logger, store)
			fatal("%v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		closeStore(logger, store)
		fatal("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'catcher play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-16s  %-6s  %-8s  %s\n", "Rank", "Player", "Score", "Time", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %-8s  %s\n", "----", "------", "-----", "----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-16s  %-6d  %-8s  %s\n",
			i+1, playerName(entry.Player), entry.Score, seconds(entry.Ticks), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	cfg := loadGameConfig()
	if fastest, ok, err := store.FastestWin(gameID, cfg.Rules.WinScore); err == nil && ok {
		fmt.Println()
		fmt.Printf("Fastest win: %s in %s\n", playerName(fastest.Player), seconds(fastest.Ticks))
	}
}

// printSummary prints one line per game that has recorded rounds.
func printSummary(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		fatal("retrieving stats: %v", err)
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %-6s  %-6s  %-8s  %s\n", "Game", "Rounds", "Best", "Fastest", "Last played")
	fmt.Printf("  %-16s  %-6s  %-6s  %-8s  %s\n", "----", "------", "----", "-------", "-----------")
	for _, id := range ids {
		s := all[id]
		last := "-"
		if !s.LastPlayed.IsZero() {
			last = s.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-16s  %-6d  %-6d  %-8s  %s\n", id, s.GamesCount, s.HighScore, seconds(s.BestTicks), last)
	}
}

func playerName(p string) string {
	if p == "" {
		return "-"
	}
	return p
}

// seconds renders a tick count at the --fps rate.
func seconds(ticks int) string {
	if ticks <= 0 || flagFPS <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fs", float64(ticks)/float64(flagFPS))
}
