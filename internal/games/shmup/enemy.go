package shmup

import "github.com/vovakirdan/tui-shmup/internal/core"

// enemyMargin is how far past the sides or bottom an enemy may drift before
// it is removed. Enemies spawn this far above the top edge.
const enemyMargin = 30

// EnemyType is the closed set of enemy variants.
type EnemyType int

const (
	EnemyStandard EnemyType = iota
	EnemyBomber
	EnemyFeather
	EnemyUFO
	EnemyBoss
	enemyTypeCount
)

type enemySpec struct {
	name         string
	health       int
	speed        float64 // Units per tick before wave scaling
	score        int
	bulletRadius float64 // Hit distance for player shots
	playerRadius float64 // Hit distance for ramming the ship
}

// enemyTable is indexed by EnemyType. Rows are unkeyed so every field must be given.
var enemyTable = [...]enemySpec{
	{"standard", 1, 1.0, 100, 20, 30},
	{"bomber", 2, 0.7, 200, 24, 34},
	{"feather", 1, 1.5, 150, 14, 24},
	{"ufo", 3, 0.5, 300, 26, 36},
	{"boss", 20, 0.3, 1000, 45, 55},
}

// Fails to compile when enemyTable and the EnemyType constants disagree.
var _ = [1]struct{}{}[len(enemyTable)-int(enemyTypeCount)]

// EnemyTypes lists every enemy type in table order.
func EnemyTypes() []EnemyType {
	types := make([]EnemyType, 0, enemyTypeCount)
	for t := range enemyTypeCount {
		types = append(types, t)
	}
	return types
}

// String returns the name of the enemy type.
func (t EnemyType) String() string {
	if t < 0 || t >= enemyTypeCount {
		return "unknown"
	}
	return enemyTable[t].name
}

// Enemy is a hostile ship descending the playfield.
type Enemy struct {
	Entity
	Type       EnemyType
	Health     int
	Speed      float64
	ScoreValue int
}

// NewEnemy creates an active enemy with its type's stats.
// speedScale multiplies the base speed.
func NewEnemy(t EnemyType, pos core.Vec2, speedScale float64) *Enemy {
	spec := enemyTable[t]
	return &Enemy{
		Entity:     Entity{Pos: pos, Active: true},
		Type:       t,
		Health:     spec.health,
		Speed:      spec.speed * speedScale,
		ScoreValue: spec.score,
	}
}

func (e *Enemy) kind() EntityKind {
	return KindEnemy
}

// Update moves the enemy down one tick and removes it once it leaves the playfield.
func (e *Enemy) Update(b core.Bounds) {
	if !e.Active {
		return
	}
	e.Pos.Y += e.Speed
	if e.Pos.Y > b.H+enemyMargin || e.Pos.X < -enemyMargin || e.Pos.X > b.W+enemyMargin {
		e.Destroy()
	}
}

// TakeDamage subtracts amount from health. It returns the score value when
// this damage destroys the enemy and 0 otherwise, including for enemies that
// are already inactive.
func (e *Enemy) TakeDamage(amount int) int {
	if !e.Active {
		return 0
	}
	e.Health -= amount
	if e.Health <= 0 {
		e.Destroy()
		return e.ScoreValue
	}
	return 0
}

// BulletRadius is the distance below which a player shot hits this enemy.
func (e *Enemy) BulletRadius() float64 {
	return enemyTable[e.Type].bulletRadius
}

// PlayerRadius is the distance below which this enemy rams the ship.
func (e *Enemy) PlayerRadius() float64 {
	return enemyTable[e.Type].playerRadius
}

// damageEnemy applies damage and records the matching impact.
func damageEnemy(e *Enemy, amount int, t *tracker) int {
	if !e.Active {
		return 0
	}
	score := e.TakeDamage(amount)
	if e.Active {
		t.impact(ImpactHit, e.Pos)
	} else {
		t.impact(ImpactKill, e.Pos)
	}
	return score
}

// nearestEnemy returns the closest active enemy to p, or nil if there is none.
func nearestEnemy(p core.Vec2, enemies []*Enemy) *Enemy {
	var best *Enemy
	bestDist := 0.0
	for _, e := range enemies {
		if !e.Active {
			continue
		}
		d := core.Dist(p, e.Pos)
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}
