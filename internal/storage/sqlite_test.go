package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/games/runner"
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []ScoreEntry{
		{Player: "ana", Outcome: "run-ended", Score: 100, Distance: 100},
		{Player: "ana", Outcome: "boss-won", Score: 4000, Distance: 3000},
		{Player: "bo", Outcome: "boss-lost", Score: 3000, Distance: 3000},
		{Player: "bo", Outcome: "run-ended", Score: 50, Distance: 50},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 entries with limit, got %d", len(top))
	}

	want := []int{4000, 3000, 100}
	for i, score := range want {
		if top[i].Score != score {
			t.Errorf("entry %d score = %d, expected %d", i, top[i].Score, score)
		}
	}
	if top[0].Player != "ana" || top[0].Outcome != "boss-won" || top[0].Distance != 3000 {
		t.Errorf("top entry = %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("created_at should be parsed")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("ana")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 without runs, got %d", high)
	}

	store.SaveRun(ScoreEntry{Player: "ana", Outcome: "run-ended", Score: 100})
	store.SaveRun(ScoreEntry{Player: "ana", Outcome: "run-ended", Score: 300})
	store.SaveRun(ScoreEntry{Player: "bo", Outcome: "run-ended", Score: 900})

	high, err = store.HighScore("ana")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("nobody")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(ScoreEntry{Player: "ana", Outcome: "run-ended", Score: 200})
	store.SaveRun(ScoreEntry{Player: "ana", Outcome: "boss-won", Score: 4000})
	store.SaveRun(ScoreEntry{Player: "ana", Outcome: "boss-lost", Score: 3000})

	stats, err := store.Stats("ana")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.BossWins != 1 || stats.BestScore != 4000 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 2400 {
		t.Errorf("AvgScore = %v, expected 2400", stats.AvgScore)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(ScoreEntry{Player: "ana", Outcome: "run-ended", Score: 100})
	store.SaveRun(ScoreEntry{Player: "bo", Outcome: "run-ended", Score: 300})

	if err := store.ClearRuns("ana"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, _ := store.TopScores(10)
	if len(top) != 1 || top[0].Player != "bo" {
		t.Errorf("only bo's run should remain, got %+v", top)
	}
}

func TestStoreProfileRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.LoadProfile("ana"); err != nil || ok {
		t.Fatalf("LoadProfile() of unknown player = ok %v, err %v", ok, err)
	}

	first := runner.Profile{
		BestScore: 4000,
		Currency:  80,
		Levels:    map[string]int{"speed": 2, "shield": 1},
	}
	if err := store.SaveProfile("ana", first); err != nil {
		t.Fatalf("SaveProfile() failed: %v", err)
	}

	// Spending currency and a lower best score in a later save
	second := runner.Profile{
		BestScore: 150,
		Currency:  52,
		Levels:    map[string]int{"speed": 3},
	}
	if err := store.SaveProfile("ana", second); err != nil {
		t.Fatalf("SaveProfile() failed: %v", err)
	}

	got, ok, err := store.LoadProfile("ana")
	if err != nil || !ok {
		t.Fatalf("LoadProfile() = ok %v, err %v", ok, err)
	}
	if got.BestScore != 4000 {
		t.Errorf("BestScore = %d, best score must never shrink", got.BestScore)
	}
	if got.Currency != 52 {
		t.Errorf("Currency = %d, expected 52", got.Currency)
	}
	if len(got.Levels) != 1 || got.Levels["speed"] != 3 {
		t.Errorf("Levels = %v, expected only speed at 3", got.Levels)
	}
}
