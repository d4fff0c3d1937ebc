package shmup

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
)

const (
	// StartingLives is the number of lives at the start of every run.
	StartingLives = 3

	muzzleOffset   = 20 // Shots leave this far above the ship
	spawnOffset    = 50 // Ship starts this far above the bottom edge
	laserHalfWidth = 20
)

// WeaponMode is the weapon the ship currently fires.
type WeaponMode int

const (
	WeaponNormal WeaponMode = iota
	WeaponLaser
	WeaponMissile
)

// String returns the name of the weapon mode.
func (w WeaponMode) String() string {
	switch w {
	case WeaponNormal:
		return "normal"
	case WeaponLaser:
		return "laser"
	case WeaponMissile:
		return "missile"
	default:
		return "unknown"
	}
}

// Player is the ship controlled by the user. It owns its bullets.
type Player struct {
	Pos          core.Vec2
	Lives        int
	Invincible   bool
	Bullets      []*Bullet
	FireRate     time.Duration
	BulletSpeed  float64
	BulletDamage int
	Weapon       WeaponMode
	ShieldActive bool

	invincibleTicks int
	lastShot        time.Duration
	hasShot         bool

	cfg     config.PlayerConfig
	bounds  core.Bounds
	tracker *tracker
}

// NewPlayer creates a ship at its starting position with default stats.
func NewPlayer(cfg config.PlayerConfig, bounds core.Bounds) (*Player, error) {
	if !bounds.Valid() {
		return nil, fmt.Errorf("shmup: player: %w", ErrInvalidBounds)
	}
	p := &Player{cfg: cfg, bounds: bounds}
	p.Reset()
	return p, nil
}

// Reset restores lives, stats and position and discards every bullet.
func (p *Player) Reset() {
	for _, b := range p.Bullets {
		b.Destroy()
	}
	p.Bullets = prune(p.Bullets, p.tracker)

	p.Pos = core.V(p.bounds.W/2, p.bounds.H-spawnOffset)
	p.clamp()
	p.Lives = StartingLives
	p.Invincible = false
	p.invincibleTicks = 0
	p.FireRate = p.cfg.FireRate
	p.BulletSpeed = p.cfg.BulletSpeed
	p.BulletDamage = p.cfg.BulletDamage
	p.Weapon = WeaponNormal
	p.ShieldActive = false
	p.lastShot = 0
	p.hasShot = false
}

// InvincibleTicks returns the ticks left in the invincibility window.
func (p *Player) InvincibleTicks() int {
	return p.invincibleTicks
}

// Update applies one tick of input. now is the simulation clock used for the
// fire rate. targets are the enemies the laser and missiles can hit. It
// returns the score earned by those weapons during this tick.
func (p *Player) Update(in core.InputFrame, now time.Duration, targets []*Enemy) int {
	p.move(in)

	if p.Invincible {
		p.invincibleTicks--
		if p.invincibleTicks <= 0 {
			p.invincibleTicks = 0
			p.Invincible = false
		}
	}

	score := 0
	if in.Has(core.ActionFire) && (!p.hasShot || now-p.lastShot >= p.FireRate) {
		score += p.Shoot(targets)
		p.lastShot = now
		p.hasShot = true
	}

	for _, b := range p.Bullets {
		score += b.Update(p.bounds, targets, p.tracker)
	}
	p.Bullets = prune(p.Bullets, p.tracker)
	return score
}

func (p *Player) move(in core.InputFrame) {
	speed := p.cfg.Speed
	if in.Has(core.ActionLeft) {
		p.Pos.X -= speed
	}
	if in.Has(core.ActionRight) {
		p.Pos.X += speed
	}
	if in.Has(core.ActionUp) {
		p.Pos.Y -= speed
	}
	if in.Has(core.ActionDown) {
		p.Pos.Y += speed
	}
	p.clamp()
}

func (p *Player) clamp() {
	m := p.cfg.Margin
	p.Pos.X = core.ClampF(p.Pos.X, m, p.bounds.W-m)
	p.Pos.Y = core.ClampF(p.Pos.Y, m, p.bounds.H-m)
}

func (p *Player) muzzle() core.Vec2 {
	return core.V(p.Pos.X, p.Pos.Y-muzzleOffset)
}

// Shoot fires the current weapon once, ignoring the fire rate.
// Only the laser scores immediately.
func (p *Player) Shoot(targets []*Enemy) int {
	switch p.Weapon {
	case WeaponLaser:
		return p.fireLaser(targets)
	case WeaponMissile:
		p.addBullet(newMissile(p.muzzle(), p.BulletDamage*2))
	default:
		p.addBullet(newBullet(p.muzzle(), p.BulletSpeed, p.BulletDamage))
	}
	return 0
}

func (p *Player) addBullet(b *Bullet) {
	p.tracker.spawned(b.kind(), &b.Entity)
	p.Bullets = append(p.Bullets, b)
}

// fireLaser damages every active enemy in the band straight ahead of the ship.
func (p *Player) fireLaser(targets []*Enemy) int {
	p.tracker.impact(ImpactLaser, p.Pos)

	score := 0
	for _, e := range targets {
		if !e.Active {
			continue
		}
		dx := e.Pos.X - p.Pos.X
		if dx < -laserHalfWidth || dx > laserHalfWidth {
			continue
		}
		if e.Pos.Y < 0 || e.Pos.Y > p.Pos.Y {
			continue
		}
		score += damageEnemy(e, p.BulletDamage*2, p.tracker)
	}
	return score
}

// Hit applies a collision with an enemy and reports whether a life was lost.
// The shield absorbs every hit; during the invincibility window hits are ignored.
func (p *Player) Hit() bool {
	if p.ShieldActive || p.Invincible || p.Lives == 0 {
		return false
	}
	p.Lives--
	p.Invincible = true
	p.invincibleTicks = p.cfg.InvincibleTicks
	return true
}
