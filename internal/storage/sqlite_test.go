package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "dir", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := expandHome("~/.arcade/shmup.db")
	if err != nil {
		t.Fatal(err)
	}
	if expected := filepath.Join(home, ".arcade", "shmup.db"); got != expected {
		t.Errorf("expandHome() = %q, expected %q", got, expected)
	}
	if got, _ := expandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Mode: "normal", Score: 100, Wave: 2},
		{Mode: "normal", Score: 50, Wave: 1},
		{Mode: "hard", Score: 200, Wave: 3},
	}
	for _, r := range runs {
		if _, err := store.SaveRun("shmup", r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun("other", Run{Score: 999, Wave: 9}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	scores, err := store.TopScores("shmup", "", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].Wave != 3 || scores[0].Mode != "hard" {
		t.Errorf("Top run = %+v", scores[0])
	}
	if scores[0].RunID == "" || scores[0].RunID == scores[1].RunID {
		t.Errorf("Run IDs not generated: %q %q", scores[0].RunID, scores[1].RunID)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}

	normal, err := store.TopScores("shmup", "normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(normal) != 2 || normal[0].Score != 100 {
		t.Errorf("Mode filter returned %v", normal)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 5 {
		store.SaveRun("shmup", Run{Score: (i + 1) * 100, Wave: i + 1}) //nolint:errcheck
	}

	scores, err := store.TopScores("shmup", "", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun("shmup", Run{RunID: "run-1", Score: 42, Wave: 2}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun("shmup", Run{RunID: "run-1", Score: 1}); err == nil {
		t.Error("duplicate run ID accepted")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun("shmup", Run{Score: 100}) //nolint:errcheck
	store.SaveRun("other", Run{Score: 300}) //nolint:errcheck

	if err := store.ClearScores("shmup"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if all, _ := store.AllScores("shmup"); len(all) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(all))
	}
	if all, _ := store.AllScores("other"); len(all) != 1 {
		t.Error("Other game's scores should not be affected")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("shmup")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats for empty game = %+v", empty)
	}

	store.SaveRun("shmup", Run{Score: 100, Wave: 2}) //nolint:errcheck
	store.SaveRun("shmup", Run{Score: 300, Wave: 6}) //nolint:errcheck

	stats, err := store.GetGameStats("shmup")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestWave != 6 {
		t.Errorf("Stats = %+v", stats)
	}
	if stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("Avg=%g total=%d", stats.AvgScore, stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.SaveRun("shmup", Run{Score: i, Wave: 1}); err != nil {
				t.Errorf("SaveRun() failed: %v", err)
			}
		}()
	}
	wg.Wait()

	all, err := store.AllScores("shmup")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 8 {
		t.Errorf("Expected 8 runs, got %d", len(all))
	}
}
