package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// openTestManager returns a gdata manager in a throwaway app directory, or
// nil when the environment has no usable data directory.
func openTestManager(t *testing.T) (*gdata.Manager, string) {
	t.Helper()
	appName := fmt.Sprintf("tui_shmup_test_%d", time.Now().UnixNano())
	mgr, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, appName
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return mgr, appName
}

func TestBestScoreMemoryOnly(t *testing.T) {
	b := NewBestScore(nil)
	if err := b.Load(); err != nil {
		t.Fatalf("Load() without a store failed: %v", err)
	}
	if b.Best() != 0 {
		t.Errorf("Best() = %d, expected 0", b.Best())
	}

	if err := b.Record(500); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if err := b.Record(300); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if b.Best() != 500 {
		t.Errorf("Best() = %d, expected 500", b.Best())
	}
}

func TestBestScorePersists(t *testing.T) {
	mgr, _ := openTestManager(t)
	if mgr == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	b := NewBestScore(mgr)
	if err := b.Load(); err != nil {
		t.Fatalf("Load() on an empty store failed: %v", err)
	}
	if err := b.Record(1200); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if !mgr.ObjectPropExists(bestObject, bestProperty) {
		t.Fatal("best score not written under highscore/best")
	}

	again := NewBestScore(mgr)
	if err := again.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if again.Best() != 1200 {
		t.Errorf("reloaded Best() = %d, expected 1200", again.Best())
	}
}

func TestBestScoreRejectsCorruptData(t *testing.T) {
	mgr, _ := openTestManager(t)
	if mgr == nil {
		t.Skip("Cannot create gdata manager for testing")
	}
	if err := mgr.SaveObjectProp(bestObject, bestProperty, []byte("best: [oops")); err != nil {
		t.Fatal(err)
	}

	b := NewBestScore(mgr)
	if err := b.Load(); err == nil {
		t.Error("Load() accepted corrupt data")
	}
	if b.Best() != 0 {
		t.Errorf("Best() = %d after failed load", b.Best())
	}
}

func TestBestScoreConcurrentRecords(t *testing.T) {
	b := NewBestScore(nil)

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Record(i * 10) //nolint:errcheck
		}()
	}
	wg.Wait()

	if b.Best() != 500 {
		t.Errorf("Best() = %d, expected 500", b.Best())
	}
}
