package shmup

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
)

const (
	bossEvery         = 5  // Every fifth wave is a boss wave
	baseWaveSize      = 10 // Enemies in the first waves
	waveSizeStep      = 5  // Added every bossEvery waves
	maxWaveSize       = 30
	firstSpawnDelay   = 60 // Ticks between spawns in wave 1
	minSpawnDelay     = 20
	spawnDelayPerWave = 2
)

// WavePhase is where the enemy manager is within the current wave.
type WavePhase int

const (
	PhaseSpawning      WavePhase = iota // Enemies still to spawn
	PhaseClearing                       // All spawned, waiting for the field to clear
	PhaseComplete                       // Completion reported, next wave not started
	PhaseTransitioning                  // Next wave started, first enemy not spawned yet
)

// String returns the name of the phase.
func (p WavePhase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseClearing:
		return "clearing"
	case PhaseComplete:
		return "complete"
	case PhaseTransitioning:
		return "transitioning"
	default:
		return "unknown"
	}
}

// enemyWeights are cumulative thresholds for regular waves.
var enemyWeights = []struct {
	below float64
	typ   EnemyType
}{
	{0.4, EnemyStandard},
	{0.6, EnemyBomber},
	{0.8, EnemyFeather},
	{1.0, EnemyUFO},
}

// EnemiesForWave returns how many enemies spawn in a wave.
func EnemiesForWave(wave int) int {
	if IsBossWave(wave) {
		return 1
	}
	return min(baseWaveSize+((wave-1)/bossEvery)*waveSizeStep, maxWaveSize)
}

// SpawnDelayForWave returns the ticks between spawns in a wave after the first.
func SpawnDelayForWave(wave int) int {
	return max(firstSpawnDelay-spawnDelayPerWave*wave, minSpawnDelay)
}

// IsBossWave reports whether the wave consists of a single boss.
func IsBossWave(wave int) bool {
	return wave%bossEvery == 0
}

// waveSpeed returns the speed multiplier applied to enemies of a wave.
func waveSpeed(wave int) float64 {
	if IsBossWave(wave) {
		return 1.0
	}
	switch wave {
	case 2:
		return 1.25
	case 3:
		return 1.75
	case 4:
		return 2.0
	default:
		return 1.0
	}
}

// EnemyManager owns the enemies and runs the wave state machine.
type EnemyManager struct {
	Enemies []*Enemy

	wave       int
	bossWave   bool
	perWave    int
	spawned    int
	spawnTimer int
	spawnDelay int
	phase      WavePhase
	guardLeft  time.Duration

	bounds  core.Bounds
	cfg     config.EnemyConfig
	guard   time.Duration
	rng     *rand.Rand
	tracker *tracker
}

// NewEnemyManager creates a manager at the start of wave 1.
// guard bounds how long the transitioning phase may last.
func NewEnemyManager(bounds core.Bounds, cfg config.EnemyConfig, guard time.Duration, rng *rand.Rand) (*EnemyManager, error) {
	if !bounds.Valid() {
		return nil, fmt.Errorf("shmup: enemy manager: %w", ErrInvalidBounds)
	}
	m := &EnemyManager{
		bounds: bounds,
		cfg:    cfg,
		guard:  guard,
		rng:    rng,
	}
	m.Reset()
	return m, nil
}

// Reset removes every enemy and returns to wave 1.
func (m *EnemyManager) Reset() {
	m.ClearEnemies()
	m.wave = 1
	m.bossWave = false
	m.perWave = baseWaveSize
	m.spawnDelay = firstSpawnDelay
	m.phase = PhaseSpawning
	m.guardLeft = 0
}

// ClearEnemies removes every enemy and restarts spawning of the current wave.
// The wave number is kept.
func (m *EnemyManager) ClearEnemies() {
	for _, e := range m.Enemies {
		e.Destroy()
	}
	m.Enemies = prune(m.Enemies, m.tracker)
	m.spawned = 0
	m.spawnTimer = 0
	m.phase = PhaseSpawning
	m.guardLeft = 0
}

// Wave returns the current wave number, starting at 1.
func (m *EnemyManager) Wave() int { return m.wave }

// IsBossWave reports whether the current wave is a boss wave.
func (m *EnemyManager) IsBossWave() bool { return m.bossWave }

// EnemiesPerWave returns the size of the current wave.
func (m *EnemyManager) EnemiesPerWave() int { return m.perWave }

// EnemiesSpawned returns how many enemies of the current wave have spawned.
func (m *EnemyManager) EnemiesSpawned() int { return m.spawned }

// SpawnDelay returns the ticks between spawns in the current wave.
func (m *EnemyManager) SpawnDelay() int { return m.spawnDelay }

// Phase returns the wave phase.
func (m *EnemyManager) Phase() WavePhase { return m.phase }

// ActiveCount returns the number of live enemies.
func (m *EnemyManager) ActiveCount() int {
	n := 0
	for _, e := range m.Enemies {
		if e.Active {
			n++
		}
	}
	return n
}

// WaveComplete reports whether every enemy of the wave has spawned and
// none is left alive. It is false once completion has been taken.
func (m *EnemyManager) WaveComplete() bool {
	return m.phase == PhaseClearing && m.spawned >= m.perWave && m.ActiveCount() == 0
}

// CompleteWave takes the completion of the current wave. It returns true at
// most once per wave, so callers can poll it every tick.
func (m *EnemyManager) CompleteWave() bool {
	if !m.WaveComplete() {
		return false
	}
	m.phase = PhaseComplete
	return true
}

// StartNextWave advances to the next wave. It does nothing and returns false
// while a transition is already in progress.
func (m *EnemyManager) StartNextWave() bool {
	if m.phase == PhaseTransitioning {
		return false
	}
	m.wave++
	m.bossWave = IsBossWave(m.wave)
	m.perWave = EnemiesForWave(m.wave)
	m.spawnDelay = SpawnDelayForWave(m.wave)
	m.spawned = 0
	m.spawnTimer = 0
	m.phase = PhaseTransitioning
	m.guardLeft = m.guard
	return true
}

// SpawnEnemy adds one enemy of the current wave above the playfield.
// It returns nil when the whole wave has already spawned.
func (m *EnemyManager) SpawnEnemy() *Enemy {
	if m.spawned >= m.perWave {
		return nil
	}

	margin := m.cfg.SpawnMargin
	x := margin + m.rng.Float64()*max(m.bounds.W-2*margin, 0)

	typ := EnemyBoss
	if !m.bossWave {
		typ = pickEnemyType(m.rng.Float64())
	}

	e := NewEnemy(typ, core.V(x, -enemyMargin), waveSpeed(m.wave)*m.cfg.SpeedScale)
	m.tracker.spawned(KindEnemy, &e.Entity)
	m.Enemies = append(m.Enemies, e)
	m.spawned++

	if m.phase == PhaseTransitioning {
		m.phase = PhaseSpawning
		m.guardLeft = 0
	}
	if m.spawned >= m.perWave {
		m.phase = PhaseClearing
	}
	return e
}

func pickEnemyType(r float64) EnemyType {
	for _, w := range enemyWeights {
		if r < w.below {
			return w.typ
		}
	}
	return enemyWeights[len(enemyWeights)-1].typ
}

// Update runs one tick: spawns on schedule, moves enemies and drops the
// inactive ones. elapsed is the simulated time of the tick.
func (m *EnemyManager) Update(elapsed time.Duration) {
	m.spawnTimer++
	if m.spawnTimer >= m.spawnDelay {
		m.SpawnEnemy()
		m.spawnTimer = 0
	}

	for _, e := range m.Enemies {
		e.Update(m.bounds)
	}
	m.Enemies = prune(m.Enemies, m.tracker)

	if m.phase == PhaseTransitioning {
		m.guardLeft -= elapsed
		if m.guardLeft <= 0 {
			m.guardLeft = 0
			m.phase = PhaseSpawning
		}
	}
}

// CheckCollisions resolves player shots against enemies and returns the score
// earned. Each bullet hits at most the first enemy within range and is spent.
func (m *EnemyManager) CheckCollisions(bullets []*Bullet) int {
	score := 0
	for i := len(bullets) - 1; i >= 0; i-- {
		b := bullets[i]
		if !b.Active {
			continue
		}
		for _, e := range m.Enemies {
			if !e.Active || !core.Within(b.Pos, e.Pos, e.BulletRadius()) {
				continue
			}
			score += damageEnemy(e, b.Damage, m.tracker)
			b.Destroy()
			break
		}
	}
	return score
}

// CheckPlayerCollision destroys the first enemy touching the ship and reports
// whether there was one. The caller decides what the hit costs the player.
func (m *EnemyManager) CheckPlayerCollision(p *Player) bool {
	for _, e := range m.Enemies {
		if !e.Active || !core.Within(p.Pos, e.Pos, e.PlayerRadius()) {
			continue
		}
		e.Destroy()
		m.tracker.impact(ImpactExplosion, e.Pos)
		return true
	}
	return false
}
