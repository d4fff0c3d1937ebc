package shmup

import (
	"testing"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

func TestEntityDestroyOnce(t *testing.T) {
	e := Entity{Active: true}
	if !e.Destroy() {
		t.Fatal("first Destroy should report true")
	}
	if e.Destroy() {
		t.Error("second Destroy should be a no-op")
	}
	if e.Active {
		t.Error("entity should stay inactive")
	}
}

func TestPruneReportsRemovals(t *testing.T) {
	rec := newRecorder()
	tr := newTracker(rec)

	var enemies []*Enemy
	for i := range 5 {
		e := NewEnemy(EnemyStandard, core.V(float64(i*10), 0), 1)
		tr.spawned(KindEnemy, &e.Entity)
		enemies = append(enemies, e)
	}
	enemies[1].Destroy()
	enemies[3].Destroy()

	kept := prune(enemies, tr)
	if len(kept) != 3 {
		t.Fatalf("kept %d enemies, want 3", len(kept))
	}
	for _, e := range kept {
		if !e.Active {
			t.Errorf("inactive enemy %d survived prune", e.ID)
		}
	}
	if rec.spawned[KindEnemy] != 5 || rec.destroyed[KindEnemy] != 2 {
		t.Errorf("spawned=%d destroyed=%d, want 5 and 2", rec.spawned[KindEnemy], rec.destroyed[KindEnemy])
	}
}

func TestTrackerAssignsUniqueIDs(t *testing.T) {
	tr := newTracker(nil)
	seen := make(map[uint64]bool)
	for range 100 {
		b := newBullet(core.V(0, 0), 10, 1)
		tr.spawned(KindBullet, &b.Entity)
		if b.ID == 0 || seen[b.ID] {
			t.Fatalf("duplicate or zero id %d", b.ID)
		}
		seen[b.ID] = true
	}
}

func TestNilTracker(t *testing.T) {
	var tr *tracker
	e := NewEnemy(EnemyStandard, core.V(0, 0), 1)
	tr.spawned(KindEnemy, &e.Entity)
	tr.removed(KindEnemy, &e.Entity)
	tr.impact(ImpactHit, e.Pos)
	if got := tr.drain(); got != nil {
		t.Errorf("drain on nil tracker = %v, want nil", got)
	}
}

func TestTrackerDrain(t *testing.T) {
	tr := newTracker(nil)
	tr.impact(ImpactHit, core.V(1, 2))
	tr.impact(ImpactKill, core.V(3, 4))

	got := tr.drain()
	if len(got) != 2 || got[0].Kind != ImpactHit || got[1].Kind != ImpactKill {
		t.Fatalf("drain = %v", got)
	}
	if again := tr.drain(); again != nil {
		t.Errorf("second drain = %v, want nil", again)
	}
}
