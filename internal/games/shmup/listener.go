package shmup

import (
	"time"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

//go:generate go tool mockgen -destination=./mocks/listener_mock.go -package=mocks . Listener

// Listener receives game events for presentation: sound, logging, HUDs.
// Callbacks run synchronously inside Step after the state they report has
// been updated, and must not call back into the game.
type Listener interface {
	ScoreChanged(score int)
	LivesChanged(lives int)
	WaveChanged(wave int)
	// PowerUpStatusChanged is sent every tick while a power-up is active and
	// once when it stops.
	PowerUpStatusChanged(t PowerUpType, active bool, remaining time.Duration)
	WaveComplete(wave int)
	GameOver(score, highScore int)
	EntitySpawned(kind EntityKind, id uint64, pos core.Vec2)
	EntityDestroyed(kind EntityKind, id uint64, pos core.Vec2)
	Impact(kind ImpactKind, pos core.Vec2)
	StateChanged(from, to State)
	LoadFailed(err error)
}

// NopListener ignores every event. Embed it to implement only some callbacks.
type NopListener struct{}

func (NopListener) ScoreChanged(int)                                      {}
func (NopListener) LivesChanged(int)                                      {}
func (NopListener) WaveChanged(int)                                       {}
func (NopListener) PowerUpStatusChanged(PowerUpType, bool, time.Duration) {}
func (NopListener) WaveComplete(int)                                      {}
func (NopListener) GameOver(int, int)                                     {}
func (NopListener) EntitySpawned(EntityKind, uint64, core.Vec2)           {}
func (NopListener) EntityDestroyed(EntityKind, uint64, core.Vec2)         {}
func (NopListener) Impact(ImpactKind, core.Vec2)                          {}
func (NopListener) StateChanged(State, State)                             {}
func (NopListener) LoadFailed(error)                                      {}

// Listeners fans events out to several listeners in order.
type Listeners []Listener

func (ls Listeners) ScoreChanged(score int) {
	for _, l := range ls {
		l.ScoreChanged(score)
	}
}

func (ls Listeners) LivesChanged(lives int) {
	for _, l := range ls {
		l.LivesChanged(lives)
	}
}

func (ls Listeners) WaveChanged(wave int) {
	for _, l := range ls {
		l.WaveChanged(wave)
	}
}

func (ls Listeners) PowerUpStatusChanged(t PowerUpType, active bool, remaining time.Duration) {
	for _, l := range ls {
		l.PowerUpStatusChanged(t, active, remaining)
	}
}

func (ls Listeners) WaveComplete(wave int) {
	for _, l := range ls {
		l.WaveComplete(wave)
	}
}

func (ls Listeners) GameOver(score, highScore int) {
	for _, l := range ls {
		l.GameOver(score, highScore)
	}
}

func (ls Listeners) EntitySpawned(kind EntityKind, id uint64, pos core.Vec2) {
	for _, l := range ls {
		l.EntitySpawned(kind, id, pos)
	}
}

func (ls Listeners) EntityDestroyed(kind EntityKind, id uint64, pos core.Vec2) {
	for _, l := range ls {
		l.EntityDestroyed(kind, id, pos)
	}
}

func (ls Listeners) Impact(kind ImpactKind, pos core.Vec2) {
	for _, l := range ls {
		l.Impact(kind, pos)
	}
}

func (ls Listeners) StateChanged(from, to State) {
	for _, l := range ls {
		l.StateChanged(from, to)
	}
}

func (ls Listeners) LoadFailed(err error) {
	for _, l := range ls {
		l.LoadFailed(err)
	}
}

// HighScoreKeeper persists the best score across runs.
type HighScoreKeeper interface {
	// Best returns the stored best score, or 0 when there is none.
	Best() int
	// Record stores score as the new best.
	Record(score int) error
}

// memoryBest keeps the best score for the lifetime of the process.
type memoryBest struct {
	best int
}

func (m *memoryBest) Best() int { return m.best }

func (m *memoryBest) Record(score int) error {
	m.best = score
	return nil
}
