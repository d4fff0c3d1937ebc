package storage

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Best score location inside the gdata store.
const (
	bestObject   = "highscore"
	bestProperty = "best"
)

// DefaultAppName names the per-user data directory used by gdata.
const DefaultAppName = "tui-shmup"

type bestRecord struct {
	Best int `yaml:"best"`
}

// BestScore keeps the best score under highscore/best in the per-user data
// directory. Without a gdata manager it only remembers the score in memory.
// It is safe for concurrent use, so SSH sessions can share one.
type BestScore struct {
	mu   sync.Mutex
	mgr  *gdata.Manager
	best int
}

// OpenBestScore opens the gdata store for appName and loads the stored best.
// When the store cannot be opened the returned keeper works in memory and
// the error says why.
func OpenBestScore(appName string) (*BestScore, error) {
	mgr, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewBestScore(nil), fmt.Errorf("storage: open best score store: %w", err)
	}
	b := NewBestScore(mgr)
	return b, b.Load()
}

// NewBestScore wraps a gdata manager, which may be nil. The stored value is
// not read until Load.
func NewBestScore(mgr *gdata.Manager) *BestScore {
	return &BestScore{mgr: mgr}
}

// Load reads the stored best score. The in-memory best never decreases.
func (b *BestScore) Load() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.mgr == nil || !b.mgr.ObjectPropExists(bestObject, bestProperty) {
		return nil
	}
	data, err := b.mgr.LoadObjectProp(bestObject, bestProperty)
	if err != nil {
		return fmt.Errorf("storage: load best score: %w", err)
	}
	var rec bestRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("storage: decode best score: %w", err)
	}
	b.best = max(b.best, rec.Best)
	return nil
}

// Best returns the best score known, or 0.
func (b *BestScore) Best() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.best
}

// Record stores score if it beats the current best. A lower score from a
// concurrent session never overwrites a higher one.
func (b *BestScore) Record(score int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if score <= b.best {
		return nil
	}
	b.best = score
	if b.mgr == nil {
		return nil
	}

	data, err := yaml.Marshal(bestRecord{Best: score})
	if err != nil {
		return fmt.Errorf("storage: encode best score: %w", err)
	}
	if err := b.mgr.SaveObjectProp(bestObject, bestProperty, data); err != nil {
		return fmt.Errorf("storage: save best score: %w", err)
	}
	return nil
}
