package shmup

import "github.com/vovakirdan/tui-shmup/internal/core"

const (
	bulletMargin     = 20
	missileSpeed     = 5
	missileHitRadius = 20
)

// BulletKind distinguishes straight shots from homing missiles.
type BulletKind int

const (
	BulletNormal BulletKind = iota
	BulletMissile
)

// Bullet is a projectile fired by the ship.
type Bullet struct {
	Entity
	Kind   BulletKind
	Speed  float64 // Units per tick, upward
	Damage int
}

func newBullet(pos core.Vec2, speed float64, damage int) *Bullet {
	return &Bullet{
		Entity: Entity{Pos: pos, Active: true},
		Kind:   BulletNormal,
		Speed:  speed,
		Damage: damage,
	}
}

func newMissile(pos core.Vec2, damage int) *Bullet {
	return &Bullet{
		Entity: Entity{Pos: pos, Active: true},
		Kind:   BulletMissile,
		Speed:  missileSpeed,
		Damage: damage,
	}
}

func (b *Bullet) kind() EntityKind {
	if b.Kind == BulletMissile {
		return KindMissile
	}
	return KindBullet
}

// Update moves the bullet one tick. A missile steers toward the nearest active
// target and detonates on contact; the returned score is what that hit earned.
func (b *Bullet) Update(bounds core.Bounds, targets []*Enemy, t *tracker) int {
	if !b.Active {
		return 0
	}
	if b.Kind == BulletMissile {
		return b.steer(bounds, targets, t)
	}

	b.Pos.Y -= b.Speed
	if b.Pos.Y < -bulletMargin {
		b.Destroy()
	}
	return 0
}

func (b *Bullet) steer(bounds core.Bounds, targets []*Enemy, t *tracker) int {
	target := nearestEnemy(b.Pos, targets)
	if target == nil {
		b.Pos.Y -= b.Speed
	} else {
		dir := target.Pos.Sub(b.Pos).Normalize()
		b.Pos = b.Pos.Add(dir.Scale(b.Speed))
		if core.Within(b.Pos, target.Pos, missileHitRadius) {
			score := damageEnemy(target, b.Damage, t)
			t.impact(ImpactExplosion, b.Pos)
			b.Destroy()
			return score
		}
	}

	if bounds.Outside(b.Pos, bulletMargin) {
		b.Destroy()
	}
	return 0
}
