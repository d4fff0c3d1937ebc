package shmup

import (
	"time"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
)

const powerUpMargin = 20

// PowerUpType is the closed set of power-ups.
type PowerUpType int

const (
	PowerUpRapidFire PowerUpType = iota
	PowerUpLaser
	PowerUpMissile
	PowerUpShield
	powerUpTypeCount
)

var powerUpNames = [...]string{"rapidFire", "laser", "missile", "shield"}

// Fails to compile when powerUpNames and the PowerUpType constants disagree.
var _ = [1]struct{}{}[len(powerUpNames)-int(powerUpTypeCount)]

// PowerUpTypes lists every power-up type in a stable order.
func PowerUpTypes() []PowerUpType {
	types := make([]PowerUpType, 0, powerUpTypeCount)
	for t := range powerUpTypeCount {
		types = append(types, t)
	}
	return types
}

// String returns the name of the power-up type.
func (t PowerUpType) String() string {
	if t < 0 || t >= powerUpTypeCount {
		return "unknown"
	}
	return powerUpNames[t]
}

// IsWeapon reports whether the power-up changes the weapon mode.
func (t PowerUpType) IsWeapon() bool {
	return t == PowerUpLaser || t == PowerUpMissile
}

// durationTable maps every power-up type to its active time.
// The array length makes a missing type a compile error.
func durationTable(d config.PowerUpDurations) [powerUpTypeCount]time.Duration {
	return [...]time.Duration{d.RapidFire, d.Laser, d.Missile, d.Shield}
}

// PowerUp is a pickup falling toward the ship.
type PowerUp struct {
	Entity
	Type  PowerUpType
	Speed float64 // Units per tick, downward
}

// NewPowerUp creates an active power-up.
func NewPowerUp(t PowerUpType, pos core.Vec2, speed float64) *PowerUp {
	return &PowerUp{
		Entity: Entity{Pos: pos, Active: true},
		Type:   t,
		Speed:  speed,
	}
}

func (p *PowerUp) kind() EntityKind {
	return KindPowerUp
}

// Update moves the power-up down and removes it below the playfield.
func (p *PowerUp) Update(b core.Bounds) {
	if !p.Active {
		return
	}
	p.Pos.Y += p.Speed
	if p.Pos.Y > b.H+powerUpMargin {
		p.Destroy()
	}
}
