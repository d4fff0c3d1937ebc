package shmup

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
)

var testBounds = core.Bounds{W: 960, H: 720}

func newTestPlayer(t *testing.T) *Player {
	t.Helper()
	p, err := NewPlayer(config.DefaultShmupConfig().Player, testBounds)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return p
}

func newTestEnemies(t *testing.T) *EnemyManager {
	t.Helper()
	cfg := config.DefaultShmupConfig()
	m, err := NewEnemyManager(testBounds, cfg.Enemies, cfg.Waves.TransitionGuard, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewEnemyManager: %v", err)
	}
	return m
}

func newTestPowerUps(t *testing.T) *PowerUpManager {
	t.Helper()
	cfg := config.DefaultShmupConfig()
	m, err := NewPowerUpManager(testBounds, cfg.PowerUps, cfg.Player.RapidFireRate, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewPowerUpManager: %v", err)
	}
	return m
}

func defaultLoader() (config.ShmupConfig, error) {
	return config.DefaultShmupConfig(), nil
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// newTestGame returns a loaded game on the title screen.
func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g := New(append([]Option{WithLoader(defaultLoader)}, opts...)...)
	g.Reset(testRuntime(42))
	g.Step(core.NewInputFrame())
	if g.Phase() != StateStart {
		t.Fatalf("phase after load = %v, want start (load error: %v)", g.Phase(), g.LoadError())
	}
	return g
}

// newPlayingGame returns a game that has just left the title screen.
func newPlayingGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g := newTestGame(t, opts...)
	g.Step(input(core.ActionStart))
	if g.Phase() != StatePlaying {
		t.Fatalf("phase = %v, want playing", g.Phase())
	}
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// recorder counts listener calls.
type recorder struct {
	NopListener

	states    []State
	waves     []int
	completed []int
	lives     []int
	gameOvers [][2]int
	spawned   map[EntityKind]int
	destroyed map[EntityKind]int
	impacts   map[ImpactKind]int
	shield    []bool
	loadErrs  []error
}

func newRecorder() *recorder {
	return &recorder{
		spawned:   make(map[EntityKind]int),
		destroyed: make(map[EntityKind]int),
		impacts:   make(map[ImpactKind]int),
	}
}

func (r *recorder) StateChanged(_, to State) { r.states = append(r.states, to) }
func (r *recorder) WaveChanged(wave int)     { r.waves = append(r.waves, wave) }
func (r *recorder) WaveComplete(wave int)    { r.completed = append(r.completed, wave) }
func (r *recorder) LivesChanged(lives int)   { r.lives = append(r.lives, lives) }
func (r *recorder) LoadFailed(err error)     { r.loadErrs = append(r.loadErrs, err) }

func (r *recorder) Impact(k ImpactKind, _ core.Vec2) {
	r.impacts[k]++
}

func (r *recorder) GameOver(score, best int) {
	r.gameOvers = append(r.gameOvers, [2]int{score, best})
}

func (r *recorder) EntitySpawned(k EntityKind, _ uint64, _ core.Vec2) {
	r.spawned[k]++
}

func (r *recorder) EntityDestroyed(k EntityKind, _ uint64, _ core.Vec2) {
	r.destroyed[k]++
}

func (r *recorder) PowerUpStatusChanged(t PowerUpType, active bool, _ time.Duration) {
	if t == PowerUpShield {
		r.shield = append(r.shield, active)
	}
}

// fakeBest is a HighScoreKeeper that remembers what was recorded.
type fakeBest struct {
	best     int
	recorded []int
	err      error
}

func (f *fakeBest) Best() int { return f.best }

func (f *fakeBest) Record(score int) error {
	f.recorded = append(f.recorded, score)
	if f.err != nil {
		return f.err
	}
	f.best = score
	return nil
}
