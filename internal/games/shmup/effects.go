package shmup

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

// EffectKind is a short-lived cosmetic drawn over the playfield.
type EffectKind int

const (
	EffectHitFlash EffectKind = iota
	EffectExplosion
	EffectLaserBeam
)

// Effect is a cosmetic that disappears when its scheduled removal runs.
type Effect struct {
	Kind EffectKind
	Pos  core.Vec2
	done bool
}

// Effects returns the cosmetics currently on screen.
func (g *Game) Effects() []*Effect {
	return g.effects
}

func (g *Game) effectFor(k ImpactKind) (EffectKind, time.Duration) {
	switch k {
	case ImpactHit:
		return EffectHitFlash, g.cfg.Timing.HitFlash
	case ImpactLaser:
		return EffectLaserBeam, g.cfg.Timing.LaserBeam
	default:
		return EffectExplosion, g.cfg.Timing.Explosion
	}
}

// spawnEffects turns this tick's impacts into timed cosmetics and reports
// them to the listener. It runs after score and lives have been updated.
func (g *Game) spawnEffects() {
	for _, im := range g.tracker.drain() {
		g.opts.listener.Impact(im.Kind, im.Pos)

		kind, life := g.effectFor(im.Kind)
		fx := &Effect{Kind: kind, Pos: im.Pos}
		g.effects = append(g.effects, fx)
		g.sched.After(life, func() { fx.done = true })
	}
}

func pruneEffects(fx []*Effect) []*Effect {
	return slices.DeleteFunc(fx, func(e *Effect) bool { return e.done })
}
