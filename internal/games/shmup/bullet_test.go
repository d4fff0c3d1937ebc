package shmup

import (
	"testing"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

func TestBulletMovesUp(t *testing.T) {
	b := newBullet(core.V(100, 0), 10, 1)

	b.Update(testBounds, nil, nil)
	if !b.Active || b.Pos.Y != -10 {
		t.Fatalf("after one tick: active=%v y=%g", b.Active, b.Pos.Y)
	}
	b.Update(testBounds, nil, nil)
	if !b.Active {
		t.Fatal("bullet exactly at the top margin should survive")
	}
	b.Update(testBounds, nil, nil)
	if b.Active {
		t.Error("bullet past the top margin should be destroyed")
	}
}

func TestMissileWithoutTargets(t *testing.T) {
	m := newMissile(core.V(100, 300), 2)
	m.Update(testBounds, nil, nil)
	if m.Pos != core.V(100, 300-missileSpeed) {
		t.Errorf("missile moved to %v, want straight up", m.Pos)
	}
	if m.kind() != KindMissile {
		t.Errorf("kind = %v, want missile", m.kind())
	}
}

func TestMissileHoming(t *testing.T) {
	tr := newTracker(nil)
	target := NewEnemy(EnemyStandard, core.V(200, 100), 1)
	decoy := NewEnemy(EnemyStandard, core.V(900, 100), 1)
	m := newMissile(core.V(100, 100), 2)

	m.Update(testBounds, []*Enemy{decoy, target}, tr)
	if m.Pos != core.V(100+missileSpeed, 100) {
		t.Fatalf("missile at %v, want steering toward the nearest enemy", m.Pos)
	}

	score := 0
	for range 100 {
		if !m.Active {
			break
		}
		score += m.Update(testBounds, []*Enemy{decoy, target}, tr)
	}
	if m.Active {
		t.Fatal("missile never detonated")
	}
	if score != 100 || target.Active || !decoy.Active {
		t.Errorf("score=%d target=%v decoy=%v", score, target.Active, decoy.Active)
	}

	kinds := map[ImpactKind]int{}
	for _, im := range tr.drain() {
		kinds[im.Kind]++
	}
	if kinds[ImpactKill] != 1 || kinds[ImpactExplosion] != 1 {
		t.Errorf("impacts = %v, want one kill and one explosion", kinds)
	}
}

func TestMissileLeavesPlayfield(t *testing.T) {
	m := newMissile(core.V(-bulletMargin-5, 100), 2)
	m.Update(testBounds, nil, nil)
	if m.Active {
		t.Error("missile beyond the side margin should be destroyed")
	}
}

func TestInactiveBulletIgnored(t *testing.T) {
	b := newBullet(core.V(100, 100), 10, 1)
	b.Destroy()
	if got := b.Update(testBounds, nil, nil); got != 0 || b.Pos.Y != 100 {
		t.Errorf("inactive bullet moved or scored: %d %v", got, b.Pos)
	}
}
