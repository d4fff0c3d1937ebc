package shmup

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
)

// PowerUpManager spawns power-ups, applies them to the ship and expires them.
type PowerUpManager struct {
	PowerUps []*PowerUp

	timers     [powerUpTypeCount]time.Duration
	durations  [powerUpTypeCount]time.Duration
	spawnTimer time.Duration

	bounds        core.Bounds
	cfg           config.PowerUpConfig
	rapidFireRate time.Duration
	rng           *rand.Rand
	tracker       *tracker
}

// NewPowerUpManager creates a manager with no power-ups in play.
// rapidFireRate is the fire rate while rapid fire is active.
func NewPowerUpManager(bounds core.Bounds, cfg config.PowerUpConfig, rapidFireRate time.Duration, rng *rand.Rand) (*PowerUpManager, error) {
	if !bounds.Valid() {
		return nil, fmt.Errorf("shmup: power-up manager: %w", ErrInvalidBounds)
	}
	return &PowerUpManager{
		durations:     durationTable(cfg.Durations),
		bounds:        bounds,
		cfg:           cfg,
		rapidFireRate: rapidFireRate,
		rng:           rng,
	}, nil
}

// Update runs one tick of elapsed time: spawns on the interval, expires
// timers and moves power-ups, activating those the ship touches. It returns
// the types collected this tick.
func (m *PowerUpManager) Update(elapsed time.Duration, p *Player) []PowerUpType {
	m.spawnTimer += elapsed
	if m.spawnTimer >= m.cfg.SpawnInterval {
		m.spawnRandom()
		m.spawnTimer = 0
	}

	for t := range powerUpTypeCount {
		if m.timers[t] <= 0 {
			continue
		}
		m.timers[t] -= elapsed
		if m.timers[t] <= 0 {
			m.DeactivatePowerUp(t, p)
		}
	}

	var collected []PowerUpType
	for _, pu := range m.PowerUps {
		pu.Update(m.bounds)
		if !pu.Active || !core.Within(pu.Pos, p.Pos, m.cfg.PickupRadius) {
			continue
		}
		pu.Destroy()
		m.ActivatePowerUp(pu.Type, p)
		collected = append(collected, pu.Type)
	}
	m.PowerUps = prune(m.PowerUps, m.tracker)
	return collected
}

func (m *PowerUpManager) spawnRandom() {
	t := PowerUpType(m.rng.Intn(int(powerUpTypeCount)))
	x := powerUpMargin + m.rng.Float64()*max(m.bounds.W-2*powerUpMargin, 0)
	m.Spawn(t, core.V(x, -powerUpMargin))
}

// Spawn puts a power-up of the given type into play.
func (m *PowerUpManager) Spawn(t PowerUpType, pos core.Vec2) *PowerUp {
	pu := NewPowerUp(t, pos, m.cfg.FallSpeed)
	m.tracker.spawned(KindPowerUp, &pu.Entity)
	m.PowerUps = append(m.PowerUps, pu)
	return pu
}

// ActivatePowerUp starts or refreshes the power-up's timer and applies it to
// the ship. Weapons are exclusive: activating one cancels the other.
func (m *PowerUpManager) ActivatePowerUp(t PowerUpType, p *Player) {
	m.timers[t] = m.durations[t]

	switch t {
	case PowerUpRapidFire:
		p.FireRate = m.rapidFireRate
	case PowerUpShield:
		p.ShieldActive = true
	case PowerUpLaser:
		m.timers[PowerUpMissile] = 0
		p.Weapon = WeaponLaser
	case PowerUpMissile:
		m.timers[PowerUpLaser] = 0
		p.Weapon = WeaponMissile
	}
}

// DeactivatePowerUp stops the power-up and reverts what it changed on the ship.
// A weapon only reverts to normal if it is still the active weapon.
func (m *PowerUpManager) DeactivatePowerUp(t PowerUpType, p *Player) {
	m.timers[t] = 0

	switch t {
	case PowerUpRapidFire:
		p.FireRate = p.cfg.FireRate
	case PowerUpShield:
		p.ShieldActive = false
	case PowerUpLaser:
		if p.Weapon == WeaponLaser {
			p.Weapon = WeaponNormal
		}
	case PowerUpMissile:
		if p.Weapon == WeaponMissile {
			p.Weapon = WeaponNormal
		}
	}
}

// IsPowerUpActive reports whether the power-up's timer is running.
func (m *PowerUpManager) IsPowerUpActive(t PowerUpType) bool {
	return m.timers[t] > 0
}

// Remaining returns the time left on the power-up, or 0 when inactive.
func (m *PowerUpManager) Remaining(t PowerUpType) time.Duration {
	return max(m.timers[t], 0)
}

// ClearPowerUps removes every power-up in play and zeroes all timers.
// Ship stats are not touched; Player.Reset restores them.
func (m *PowerUpManager) ClearPowerUps() {
	for _, pu := range m.PowerUps {
		pu.Destroy()
	}
	m.PowerUps = prune(m.PowerUps, m.tracker)
	m.timers = [powerUpTypeCount]time.Duration{}
	m.spawnTimer = 0
}
