package shmup

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

func TestEnemyStats(t *testing.T) {
	tests := []struct {
		typ    EnemyType
		name   string
		health int
		speed  float64
		score  int
	}{
		{EnemyStandard, "standard", 1, 1.0, 100},
		{EnemyBomber, "bomber", 2, 0.7, 200},
		{EnemyFeather, "feather", 1, 1.5, 150},
		{EnemyUFO, "ufo", 3, 0.5, 300},
		{EnemyBoss, "boss", 20, 0.3, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnemy(tt.typ, core.V(0, 0), 1)
			if e.Type.String() != tt.name {
				t.Errorf("String() = %q, want %q", e.Type.String(), tt.name)
			}
			if e.Health != tt.health || e.Speed != tt.speed || e.ScoreValue != tt.score {
				t.Errorf("stats = %d/%g/%d, want %d/%g/%d",
					e.Health, e.Speed, e.ScoreValue, tt.health, tt.speed, tt.score)
			}
			if !e.Active {
				t.Error("new enemy should be active")
			}
			if e.PlayerRadius() <= e.BulletRadius() {
				t.Error("ramming radius should exceed the shot radius")
			}
		})
	}

	if got := len(EnemyTypes()); got != len(tests) {
		t.Errorf("EnemyTypes() has %d entries, want %d", got, len(tests))
	}
}

func TestEnemySpeedScale(t *testing.T) {
	e := NewEnemy(EnemyBomber, core.V(0, 0), 2)
	if e.Speed != 1.4 {
		t.Errorf("Speed = %g, want 1.4", e.Speed)
	}
}

func TestTakeDamage(t *testing.T) {
	std := NewEnemy(EnemyStandard, core.V(0, 0), 1)
	if got := std.TakeDamage(1); got != 100 {
		t.Errorf("standard TakeDamage(1) = %d, want 100", got)
	}
	if got := std.TakeDamage(1); got != 0 {
		t.Errorf("TakeDamage on destroyed enemy = %d, want 0", got)
	}

	ufo := NewEnemy(EnemyUFO, core.V(0, 0), 1)
	for i, want := range []int{0, 0, 300} {
		if got := ufo.TakeDamage(1); got != want {
			t.Errorf("ufo hit %d = %d, want %d", i+1, got, want)
		}
	}
	if ufo.Active {
		t.Error("ufo should be destroyed after three hits")
	}
}

func TestTakeDamageScoresOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		typ := rapid.SampledFrom(EnemyTypes()).Draw(t, "type")
		hits := rapid.SliceOfN(rapid.IntRange(1, 5), 1, 30).Draw(t, "hits")

		e := NewEnemy(typ, core.V(0, 0), 1)
		health := e.Health
		total, dealt, awards := 0, 0, 0
		for _, h := range hits {
			if got := e.TakeDamage(h); got != 0 {
				total += got
				awards++
			}
			dealt += h
		}

		if awards > 1 {
			t.Fatalf("score awarded %d times", awards)
		}
		if killed := dealt >= health; killed != !e.Active {
			t.Fatalf("dealt %d of %d health but active=%v", dealt, health, e.Active)
		}
		if !e.Active && total != e.ScoreValue {
			t.Fatalf("total score %d, want %d", total, e.ScoreValue)
		}
	})
}

func TestEnemyLeavesPlayfield(t *testing.T) {
	e := NewEnemy(EnemyStandard, core.V(100, testBounds.H+enemyMargin-0.5), 1)
	e.Update(testBounds)
	if e.Active {
		t.Fatal("enemy below the bottom margin should be destroyed")
	}

	e = NewEnemy(EnemyStandard, core.V(100, -enemyMargin), 1)
	e.Update(testBounds)
	if !e.Active || e.Pos.Y != -enemyMargin+1 {
		t.Errorf("enemy at spawn height: active=%v y=%g", e.Active, e.Pos.Y)
	}

	e = NewEnemy(EnemyStandard, core.V(-enemyMargin-1, 100), 1)
	e.Update(testBounds)
	if e.Active {
		t.Error("enemy past the left margin should be destroyed")
	}
}

func TestNearestEnemy(t *testing.T) {
	far := NewEnemy(EnemyStandard, core.V(500, 500), 1)
	near := NewEnemy(EnemyStandard, core.V(110, 100), 1)
	dead := NewEnemy(EnemyStandard, core.V(100, 100), 1)
	dead.Destroy()

	if got := nearestEnemy(core.V(100, 100), []*Enemy{far, dead, near}); got != near {
		t.Errorf("nearestEnemy picked %+v", got)
	}
	if got := nearestEnemy(core.V(0, 0), []*Enemy{dead}); got != nil {
		t.Errorf("nearestEnemy with no active enemies = %+v, want nil", got)
	}
}

func TestDamageEnemyImpacts(t *testing.T) {
	tr := newTracker(nil)
	ufo := NewEnemy(EnemyUFO, core.V(0, 0), 1)

	damageEnemy(ufo, 2, tr)
	damageEnemy(ufo, 2, tr)
	damageEnemy(ufo, 2, tr)

	got := tr.drain()
	if len(got) != 2 || got[0].Kind != ImpactHit || got[1].Kind != ImpactKill {
		t.Errorf("impacts = %v, want hit then kill", got)
	}
}
