// Package shmup implements a vertical shoot-'em-up: a ship fights waves of
// enemies, picks up timed power-ups and scores points until its lives run out.
//
// The simulation runs in continuous playfield units at a fixed tick rate.
// Rendering maps the playfield onto whatever terminal grid is available.
package shmup

import "github.com/vovakirdan/tui-shmup/internal/core"

// EntityKind identifies what an entity is in lifecycle notifications.
type EntityKind int

const (
	KindBullet EntityKind = iota
	KindMissile
	KindEnemy
	KindPowerUp
)

// String returns the name of the entity kind.
func (k EntityKind) String() string {
	switch k {
	case KindBullet:
		return "bullet"
	case KindMissile:
		return "missile"
	case KindEnemy:
		return "enemy"
	case KindPowerUp:
		return "powerup"
	default:
		return "unknown"
	}
}

// Entity is the state shared by everything that moves on the playfield.
// An entity is owned by exactly one collection and never reactivates.
type Entity struct {
	ID     uint64
	Pos    core.Vec2
	Active bool
}

// Destroy deactivates the entity and reports whether this call did it.
// Destroying an inactive entity is a no-op.
func (e *Entity) Destroy() bool {
	if !e.Active {
		return false
	}
	e.Active = false
	return true
}

func (e *Entity) base() *Entity {
	return e
}

// entity is implemented by every collection element.
type entity interface {
	base() *Entity
	kind() EntityKind
}

// prune drops inactive entities in place and reports each removal.
func prune[T entity](items []T, t *tracker) []T {
	kept := items[:0]
	for _, it := range items {
		if it.base().Active {
			kept = append(kept, it)
			continue
		}
		t.removed(it.kind(), it.base())
	}
	clear(items[len(kept):])
	return kept
}

// ImpactKind classifies a cosmetic event in the world.
type ImpactKind int

const (
	ImpactHit       ImpactKind = iota // Enemy damaged but alive
	ImpactKill                        // Enemy destroyed by damage
	ImpactExplosion                   // Missile detonation or ship collision
	ImpactLaser                       // Laser fired from the ship
)

// String returns the name of the impact kind.
func (k ImpactKind) String() string {
	switch k {
	case ImpactHit:
		return "hit"
	case ImpactKill:
		return "kill"
	case ImpactExplosion:
		return "explosion"
	case ImpactLaser:
		return "laser"
	default:
		return "unknown"
	}
}

// Impact is a position where something cosmetic happened this tick.
type Impact struct {
	Kind ImpactKind
	Pos  core.Vec2
}

// tracker numbers entities, reports their lifecycle to the listener and
// collects impacts for the effects layer. All methods accept a nil tracker.
type tracker struct {
	nextID   uint64
	listener Listener
	impacts  []Impact
}

func newTracker(l Listener) *tracker {
	if l == nil {
		l = NopListener{}
	}
	return &tracker{listener: l}
}

func (t *tracker) spawned(kind EntityKind, e *Entity) {
	if t == nil {
		return
	}
	t.nextID++
	e.ID = t.nextID
	t.listener.EntitySpawned(kind, e.ID, e.Pos)
}

func (t *tracker) removed(kind EntityKind, e *Entity) {
	if t == nil {
		return
	}
	t.listener.EntityDestroyed(kind, e.ID, e.Pos)
}

func (t *tracker) impact(kind ImpactKind, pos core.Vec2) {
	if t == nil {
		return
	}
	t.impacts = append(t.impacts, Impact{Kind: kind, Pos: pos})
}

// drain returns the impacts collected since the last call.
func (t *tracker) drain() []Impact {
	if t == nil || len(t.impacts) == 0 {
		return nil
	}
	out := t.impacts
	t.impacts = nil
	return out
}
