package shmup

import (
	"errors"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/core"
)

func TestNewPlayerRejectsBadBounds(t *testing.T) {
	_, err := NewPlayer(config.DefaultShmupConfig().Player, core.Bounds{W: 0, H: 720})
	if !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("err = %v, want ErrInvalidBounds", err)
	}
}

func TestPlayerDefaults(t *testing.T) {
	p := newTestPlayer(t)
	if p.Pos != core.V(480, 670) {
		t.Errorf("start position = %v, want (480, 670)", p.Pos)
	}
	if p.Lives != StartingLives || p.Weapon != WeaponNormal || p.FireRate != 250*time.Millisecond {
		t.Errorf("defaults: lives=%d weapon=%v rate=%v", p.Lives, p.Weapon, p.FireRate)
	}
	if p.BulletSpeed != 10 || p.BulletDamage != 1 {
		t.Errorf("bullet stats = %g/%d", p.BulletSpeed, p.BulletDamage)
	}
}

func TestPlayerMovementClamped(t *testing.T) {
	p := newTestPlayer(t)

	p.Update(input(core.ActionRight), 0, nil)
	if p.Pos.X != 485 {
		t.Fatalf("x after one step right = %g, want 485", p.Pos.X)
	}

	for range 500 {
		p.Update(input(core.ActionLeft, core.ActionUp), 0, nil)
	}
	if p.Pos != core.V(15, 15) {
		t.Errorf("position = %v, want clamped to the margin", p.Pos)
	}

	for range 500 {
		p.Update(input(core.ActionRight, core.ActionDown), 0, nil)
	}
	if p.Pos != core.V(testBounds.W-15, testBounds.H-15) {
		t.Errorf("position = %v, want clamped to the far margin", p.Pos)
	}
}

func TestPlayerFireRate(t *testing.T) {
	p := newTestPlayer(t)
	fire := input(core.ActionFire)

	p.Update(fire, 0, nil)
	if len(p.Bullets) != 1 {
		t.Fatalf("bullets after first shot = %d, want 1", len(p.Bullets))
	}
	p.Update(fire, 100*time.Millisecond, nil)
	if len(p.Bullets) != 1 {
		t.Errorf("fired before the rate allowed: %d bullets", len(p.Bullets))
	}
	p.Update(fire, 250*time.Millisecond, nil)
	if len(p.Bullets) != 2 {
		t.Errorf("bullets after rate elapsed = %d, want 2", len(p.Bullets))
	}

	b := p.Bullets[1]
	if b.Pos.X != p.Pos.X || b.Damage != 1 || b.Kind != BulletNormal {
		t.Errorf("bullet = %+v", b)
	}
}

func TestPlayerHit(t *testing.T) {
	p := newTestPlayer(t)

	if !p.Hit() {
		t.Fatal("first hit should cost a life")
	}
	if p.Lives != 2 || !p.Invincible || p.InvincibleTicks() != 120 {
		t.Fatalf("after hit: lives=%d invincible=%v ticks=%d", p.Lives, p.Invincible, p.InvincibleTicks())
	}
	if p.Hit() {
		t.Error("hit during invincibility should be ignored")
	}

	for range 119 {
		p.Update(core.NewInputFrame(), 0, nil)
	}
	if !p.Invincible {
		t.Fatal("invincibility ended early")
	}
	p.Update(core.NewInputFrame(), 0, nil)
	if p.Invincible {
		t.Fatal("invincibility should end after 120 ticks")
	}

	p.ShieldActive = true
	if p.Hit() || p.Lives != 2 {
		t.Errorf("shield should absorb the hit, lives=%d", p.Lives)
	}
}

func TestPlayerLivesNeverIncrease(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p, err := NewPlayer(config.DefaultShmupConfig().Player, testBounds)
		if err != nil {
			t.Fatal(err)
		}
		ops := rapid.SliceOfN(rapid.IntRange(0, 3), 1, 200).Draw(t, "ops")

		prev := p.Lives
		for _, op := range ops {
			switch op {
			case 0:
				p.Hit()
			case 1:
				for range 60 {
					p.Update(core.NewInputFrame(), 0, nil)
				}
			case 2:
				p.ShieldActive = !p.ShieldActive
			case 3:
				p.Update(input(core.ActionFire, core.ActionLeft), 0, nil)
			}
			if p.Lives > prev || p.Lives < 0 {
				t.Fatalf("lives went from %d to %d", prev, p.Lives)
			}
			prev = p.Lives
		}
	})
}

func TestLaserBand(t *testing.T) {
	p := newTestPlayer(t)
	tr := newTracker(nil)
	p.tracker = tr
	p.Weapon = WeaponLaser

	ahead := NewEnemy(EnemyStandard, core.V(p.Pos.X+10, 300), 1)
	aside := NewEnemy(EnemyStandard, core.V(p.Pos.X+50, 300), 1)
	behind := NewEnemy(EnemyStandard, core.V(p.Pos.X, p.Pos.Y+20), 1)
	tough := NewEnemy(EnemyUFO, core.V(p.Pos.X-20, 100), 1)
	targets := []*Enemy{ahead, aside, behind, tough}

	if got := p.Shoot(targets); got != 100 {
		t.Errorf("laser score = %d, want 100", got)
	}
	if ahead.Active || !aside.Active || !behind.Active {
		t.Errorf("active: ahead=%v aside=%v behind=%v", ahead.Active, aside.Active, behind.Active)
	}
	if tough.Health != 1 {
		t.Errorf("ufo health = %d, want 1 after double damage", tough.Health)
	}
	if len(p.Bullets) != 0 {
		t.Error("laser should not create bullets")
	}

	kinds := map[ImpactKind]int{}
	for _, im := range tr.drain() {
		kinds[im.Kind]++
	}
	if kinds[ImpactLaser] != 1 || kinds[ImpactKill] != 1 || kinds[ImpactHit] != 1 {
		t.Errorf("impacts = %v", kinds)
	}
}

func TestMissileWeapon(t *testing.T) {
	p := newTestPlayer(t)
	p.Weapon = WeaponMissile
	p.Shoot(nil)
	if len(p.Bullets) != 1 || p.Bullets[0].Kind != BulletMissile || p.Bullets[0].Damage != 2 {
		t.Errorf("bullets = %+v", p.Bullets)
	}
}

func TestPlayerReset(t *testing.T) {
	p := newTestPlayer(t)
	p.Update(input(core.ActionFire, core.ActionLeft), 0, nil)
	p.Hit()
	p.Weapon = WeaponLaser
	p.FireRate = time.Millisecond
	p.ShieldActive = true
	b := p.Bullets[0]

	p.Reset()

	if len(p.Bullets) != 0 || b.Active {
		t.Error("Reset should destroy every bullet")
	}
	if p.Lives != StartingLives || p.Invincible || p.ShieldActive || p.Weapon != WeaponNormal {
		t.Errorf("after Reset: %+v", p)
	}
	if p.FireRate != 250*time.Millisecond || p.Pos != core.V(480, 670) {
		t.Errorf("rate=%v pos=%v", p.FireRate, p.Pos)
	}
}
