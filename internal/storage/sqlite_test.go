package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, store *Store, gameID, player string, score, ticks int) {
	t.Helper()
	if _, err := store.SaveScore(gameID, player, score, ticks); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, "catcher", "alice", 10, 900)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("catcher", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Player != "alice" {
		t.Errorf("Expected alice's score after reopen, got %v", scores)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "catcher", "alice", 10, 1200)
	mustSave(t, store, "catcher", "bob", 10, 800)
	mustSave(t, store, "catcher", "carol", 7, 300)
	mustSave(t, store, "catcher_classic", "dave", 10, 500)

	scores, err := store.TopScores("catcher", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Score descending, then fewer ticks first
	want := []string{"bob", "alice", "carol"}
	for i, name := range want {
		if scores[i].Player != name {
			t.Errorf("scores[%d].Player = %q, expected %q", i, scores[i].Player, name)
		}
	}
	if scores[0].Ticks != 800 || scores[0].Score != 10 || scores[0].GameID != "catcher" {
		t.Errorf("Unexpected first entry: %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	classic, err := store.TopScores("catcher_classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Errorf("Expected 1 classic score, got %d", len(classic))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, "test", "p", 10, (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Ticks != 100 || scores[1].Ticks != 200 || scores[2].Ticks != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("catcher")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, "catcher", "p", 5, 100)
	mustSave(t, store, "catcher", "p", 10, 900)
	mustSave(t, store, "catcher", "p", 8, 300)

	high, err = store.HighScore("catcher")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 10 {
		t.Errorf("Expected high score of 10, got %d", high)
	}
}

func TestStoreFastestWin(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.FastestWin("catcher", 10); err != nil || ok {
		t.Fatalf("FastestWin() on empty store = ok %v, err %v", ok, err)
	}

	mustSave(t, store, "catcher", "slow", 10, 2000)
	mustSave(t, store, "catcher", "short", 4, 100) // Did not reach the win score
	mustSave(t, store, "catcher", "fast", 10, 700)
	mustSave(t, store, "catcher", "zero", 10, 0) // Unknown duration

	entry, ok, err := store.FastestWin("catcher", 10)
	if err != nil {
		t.Fatalf("FastestWin() failed: %v", err)
	}
	if !ok {
		t.Fatal("FastestWin() found nothing")
	}
	if entry.Player != "fast" || entry.Ticks != 700 {
		t.Errorf("FastestWin() = %+v, expected fast/700", entry)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "catcher", "p", 10, 100)
	mustSave(t, store, "catcher", "p", 10, 200)
	mustSave(t, store, "catcher_classic", "p", 10, 300)

	if err := store.ClearScores("catcher"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("catcher", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	classic, _ := store.TopScores("catcher_classic", 10)
	if len(classic) != 1 {
		t.Errorf("Classic scores should not be affected by clearing catcher")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		mustSave(t, store, "test", "p", 10, i*10+1)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("catcher")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.BestTicks != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	mustSave(t, store, "catcher", "p", 10, 900)
	mustSave(t, store, "catcher", "p", 6, 0)
	mustSave(t, store, "catcher", "p", 8, 400)
	mustSave(t, store, "catcher_classic", "p", 10, 1000)

	stats, err := store.GetGameStats("catcher")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.HighScore != 10 {
		t.Errorf("HighScore = %d, expected 10", stats.HighScore)
	}
	if stats.TotalScore != 24 {
		t.Errorf("TotalScore = %d, expected 24", stats.TotalScore)
	}
	if stats.AvgScore != 8 {
		t.Errorf("AvgScore = %f, expected 8", stats.AvgScore)
	}
	if stats.BestTicks != 400 {
		t.Errorf("BestTicks = %d, expected 400", stats.BestTicks)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["catcher_classic"].BestTicks != 1000 || all["catcher"].GamesCount != 3 {
		t.Errorf("Unexpected aggregate stats: catcher=%+v classic=%+v", all["catcher"], all["catcher_classic"])
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := Open("~/nested/deep/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, "nested", "deep", "test.db")); os.IsNotExist(err) {
		t.Error("Database file was not created under the home directory")
	}
}
