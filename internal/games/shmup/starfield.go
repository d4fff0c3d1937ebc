package shmup

import (
	"math/rand"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

// starLayers are scrolled at different speeds for parallax.
var starLayers = []struct {
	count int
	speed float64
	color core.Color
}{
	{100, 1, core.ColorWhite},
	{50, 2, core.ColorGray},
	{25, 3, core.ColorBlue},
}

// Star is one background point.
type Star struct {
	Pos   core.Vec2
	Speed float64
	Color core.Color
}

// Starfield is the scrolling background. It animates in every game state
// and has its own random source so it never disturbs the simulation.
type Starfield struct {
	Stars  []Star
	bounds core.Bounds
	rng    *rand.Rand
}

// NewStarfield scatters the stars of every layer over the playfield.
func NewStarfield(bounds core.Bounds, seed int64) *Starfield {
	sf := &Starfield{
		bounds: bounds,
		rng:    rand.New(rand.NewSource(seed ^ 0x5eed)),
	}
	for _, layer := range starLayers {
		for range layer.count {
			sf.Stars = append(sf.Stars, Star{
				Pos:   core.V(sf.rng.Float64()*bounds.W, sf.rng.Float64()*bounds.H),
				Speed: layer.speed,
				Color: layer.color,
			})
		}
	}
	return sf
}

// Scroll moves every star down, wrapping those that leave the bottom to the
// top at a new column.
func (sf *Starfield) Scroll() {
	for i := range sf.Stars {
		s := &sf.Stars[i]
		s.Pos.Y += s.Speed
		if s.Pos.Y > sf.bounds.H {
			s.Pos.Y = 0
			s.Pos.X = sf.rng.Float64() * sf.bounds.W
		}
	}
}
