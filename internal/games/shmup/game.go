package shmup

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
	"github.com/vovakirdan/tui-shmup/internal/registry"
)

// ErrInvalidBounds is returned when a component is built for a playfield
// without a positive width and height.
var ErrInvalidBounds = errors.New("playfield bounds must be positive")

// State is the top-level game state.
type State int

const (
	StateLoading  State = iota // Waiting for configuration
	StateStart                 // Title screen
	StatePlaying               // Simulation running
	StatePaused                // Simulation frozen
	StateGameOver              // No lives left
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// AssetLoader provides the configuration the game is built from.
type AssetLoader func() (config.ShmupConfig, error)

type options struct {
	loader     AssetLoader
	listener   Listener
	highScores HighScoreKeeper
	logger     *log.Logger
	configPath string
	preset     config.DifficultyPreset
}

// Option customizes a Game.
type Option func(*options)

// WithLoader replaces the configuration loader.
func WithLoader(l AssetLoader) Option {
	return func(o *options) { o.loader = l }
}

// WithListener sets the receiver of game events.
func WithListener(l Listener) Option {
	return func(o *options) { o.listener = l }
}

// WithHighScores sets where the best score is kept.
func WithHighScores(k HighScoreKeeper) Option {
	return func(o *options) { o.highScores = k }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithConfigPath makes the default loader read this file first.
func WithConfigPath(path string) Option {
	return func(o *options) { o.configPath = path }
}

// WithDifficulty applies a difficulty preset over the loaded configuration.
func WithDifficulty(p config.DifficultyPreset) Option {
	return func(o *options) { o.preset = p }
}

var (
	defaultsMu sync.RWMutex
	defaults   []Option
)

// Configure sets the options used by games created through the registry.
// Each call replaces the previous set.
func Configure(opts ...Option) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = append([]Option(nil), opts...)
}

func init() {
	registry.Register("shmup", func() registry.Game {
		defaultsMu.RLock()
		defer defaultsMu.RUnlock()
		return New(defaults...)
	})
}

// shown is what the listener was last told.
type shown struct {
	score, lives, wave int
	powerUps           [powerUpTypeCount]bool
}

// Game is the shoot-'em-up. It implements registry.Game.
type Game struct {
	opts options
	log  *log.Logger

	runtime core.RuntimeConfig
	tick    time.Duration
	rng     *rand.Rand

	cfg      config.ShmupConfig
	bounds   core.Bounds
	state    State
	attempts int
	loadErr  error

	tracker  *tracker
	sched    Scheduler
	player   *Player
	enemies  *EnemyManager
	powerups *PowerUpManager
	effects  []*Effect
	stars    *Starfield

	score  int
	best   int
	banner int // Wave whose completion is being announced, 0 when none
	ticks  uint64
	shown  shown
}

// New creates a game in the loading state. Reset must be called before Step.
func New(opts ...Option) *Game {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.listener == nil {
		o.listener = NopListener{}
	}
	if o.highScores == nil {
		o.highScores = &memoryBest{}
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.loader == nil {
		path := o.configPath
		o.loader = func() (config.ShmupConfig, error) {
			return config.LoadShmup(path)
		}
	}

	g := &Game{opts: o, log: o.logger}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shmup"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Shoot 'em Up"
}

// Reset fully re-initializes the game. Configuration is loaded again on the
// next Step. Restarting after game over does not go through Reset.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.tick = tickDuration(runtime.TickRate)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.sched.Reset()
	g.tracker = newTracker(g.opts.listener)
	g.player = nil
	g.enemies = nil
	g.powerups = nil
	g.effects = nil
	g.stars = nil
	g.attempts = 0
	g.loadErr = nil
	g.score = 0
	g.banner = 0
	g.ticks = 0

	g.setState(StateLoading)
}

// tickDuration is one step at rate steps per second, rounded to the nearest
// nanosecond so whole-second timers end on a whole tick.
func tickDuration(rate int) time.Duration {
	r := time.Duration(rate)
	return (time.Second + r/2) / r
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ticks++
	if g.stars != nil {
		g.stars.Scroll()
	}

	switch g.state {
	case StateLoading:
		if g.attempts == 0 || in.Has(core.ActionStart) {
			g.load()
		}
	case StateStart:
		if in.Has(core.ActionStart) {
			g.setState(StatePlaying)
			g.emit()
		}
	case StatePlaying:
		if in.Has(core.ActionPause) {
			g.setState(StatePaused)
			break
		}
		g.update(in)
	case StatePaused:
		if in.Has(core.ActionPause) {
			g.setState(StatePlaying)
		}
	case StateGameOver:
		if in.Has(core.ActionRestart) {
			g.restart()
		}
	}

	return core.StepResult{State: g.State()}
}

// load builds the world from configuration. On failure the game stays in
// the loading state and retries on the next start input.
func (g *Game) load() {
	g.attempts++
	if err := g.build(); err != nil {
		g.loadErr = err
		g.log.Warn("could not load game", "attempt", g.attempts, "error", err)
		g.opts.listener.LoadFailed(err)
		return
	}
	g.loadErr = nil
	g.best = g.opts.highScores.Best()
	g.log.Debug("game loaded", "playfield", fmt.Sprintf("%gx%g", g.bounds.W, g.bounds.H), "preset", g.cfg.Difficulty.Preset, "best", g.best)
	g.setState(StateStart)
}

func (g *Game) build() error {
	cfg, err := g.opts.loader()
	if err != nil {
		return fmt.Errorf("shmup: load config: %w", err)
	}

	preset := g.opts.preset
	if preset == "" {
		if preset, err = config.ParseDifficultyPreset(cfg.Difficulty.Preset); err != nil {
			return fmt.Errorf("shmup: %w", err)
		}
	}
	config.ApplyShmupPreset(&cfg, preset)

	bounds := core.Bounds{W: cfg.Playfield.Width, H: cfg.Playfield.Height}
	player, err := NewPlayer(cfg.Player, bounds)
	if err != nil {
		return err
	}
	enemies, err := NewEnemyManager(bounds, cfg.Enemies, cfg.Waves.TransitionGuard, g.rng)
	if err != nil {
		return err
	}
	powerups, err := NewPowerUpManager(bounds, cfg.PowerUps, cfg.Player.RapidFireRate, g.rng)
	if err != nil {
		return err
	}

	player.tracker = g.tracker
	enemies.tracker = g.tracker
	powerups.tracker = g.tracker

	g.cfg = cfg
	g.bounds = bounds
	g.player = player
	g.enemies = enemies
	g.powerups = powerups
	g.stars = NewStarfield(bounds, g.runtime.Seed)
	g.resetShown()
	return nil
}

// update runs one simulation tick while playing.
func (g *Game) update(in core.InputFrame) {
	g.sched.Advance(g.tick)
	g.effects = pruneEffects(g.effects)

	g.score += g.player.Update(in, g.sched.Now(), g.enemies.Enemies)

	if g.enemies.CheckPlayerCollision(g.player) && g.player.Hit() {
		g.log.Debug("ship hit", "lives", g.player.Lives)
		if g.player.Lives == 0 {
			g.spawnEffects()
			g.emit()
			g.gameOver()
			return
		}
	}

	g.enemies.Update(g.tick)
	g.score += g.enemies.CheckCollisions(g.player.Bullets)

	if g.enemies.CompleteWave() {
		g.announceWave()
	}

	for _, t := range g.powerups.Update(g.tick, g.player) {
		g.log.Debug("power-up collected", "type", t)
	}

	g.spawnEffects()
	g.emit()
}

// announceWave shows the completion banner and starts the next wave after
// the announcement delay.
func (g *Game) announceWave() {
	wave := g.enemies.Wave()
	g.banner = wave
	g.log.Info("wave complete", "wave", wave, "score", g.score)
	g.opts.listener.WaveComplete(wave)

	g.sched.After(g.cfg.Waves.AnnounceDelay, func() {
		if !g.enemies.StartNextWave() {
			return
		}
		g.banner = 0
		g.log.Debug("wave started", "wave", g.enemies.Wave(), "boss", g.enemies.IsBossWave())
	})
}

func (g *Game) gameOver() {
	g.setState(StateGameOver)
	// The keeper may be shared with other sessions.
	g.best = max(g.best, g.opts.highScores.Best())
	if g.score > g.best {
		if err := g.opts.highScores.Record(g.score); err != nil {
			g.log.Warn("could not save best score", "error", err)
		}
		g.best = max(g.score, g.opts.highScores.Best())
	}
	g.log.Info("game over", "score", g.score, "wave", g.enemies.Wave(), "best", g.best)
	g.opts.listener.GameOver(g.score, g.best)
}

// restart starts a new run in place, keeping the loaded configuration.
func (g *Game) restart() {
	g.sched.Reset()
	g.tracker.drain()
	g.effects = nil
	g.player.Reset()
	g.enemies.Reset()
	g.powerups.ClearPowerUps()
	g.score = 0
	g.banner = 0
	g.best = max(g.best, g.opts.highScores.Best())
	g.resetShown()

	g.setState(StatePlaying)
	g.emit()
}

func (g *Game) setState(s State) {
	from := g.state
	g.state = s
	if from != s {
		g.opts.listener.StateChanged(from, s)
	}
}

func (g *Game) resetShown() {
	g.shown = shown{score: -1, lives: -1, wave: -1}
}

// emit tells the listener what changed since the last emission.
func (g *Game) emit() {
	l := g.opts.listener
	if g.score != g.shown.score {
		g.shown.score = g.score
		l.ScoreChanged(g.score)
	}
	if g.player.Lives != g.shown.lives {
		g.shown.lives = g.player.Lives
		l.LivesChanged(g.player.Lives)
	}
	if w := g.enemies.Wave(); w != g.shown.wave {
		g.shown.wave = w
		l.WaveChanged(w)
	}
	for t := range powerUpTypeCount {
		active := g.powerups.IsPowerUpActive(t)
		if active || g.shown.powerUps[t] {
			l.PowerUpStatusChanged(t, active, g.powerups.Remaining(t))
		}
		g.shown.powerUps[t] = active
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
	if g.player != nil {
		st.Lives = g.player.Lives
	}
	if g.enemies != nil {
		st.Wave = g.enemies.Wave()
	}
	return st
}

// Phase returns the top-level state.
func (g *Game) Phase() State {
	return g.state
}

// LoadError returns the last load failure, or nil.
func (g *Game) LoadError() error {
	return g.loadErr
}

// Player returns the ship, or nil before loading.
func (g *Game) Player() *Player {
	return g.player
}

// Enemies returns the enemy manager, or nil before loading.
func (g *Game) Enemies() *EnemyManager {
	return g.enemies
}

// PowerUps returns the power-up manager, or nil before loading.
func (g *Game) PowerUps() *PowerUpManager {
	return g.powerups
}

// Best returns the best score known to the game.
func (g *Game) Best() int {
	return g.best
}

// Banner returns the wave whose completion is being announced, or 0.
func (g *Game) Banner() int {
	return g.banner
}

// Now returns the simulation clock. It only advances while playing.
func (g *Game) Now() time.Duration {
	return g.sched.Now()
}
