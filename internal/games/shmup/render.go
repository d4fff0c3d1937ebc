package shmup

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

// Minimum terminal size the playfield can be drawn in.
const (
	minScreenW = 40
	minScreenH = 15
)

type sprite struct {
	text  string
	color core.Color
}

var enemySprites = [...]sprite{
	{`\o/`, core.ColorBrightYellow},
	{"<#>", core.ColorRed},
	{"~v~", core.ColorBrightWhite},
	{"(@)", core.ColorBrightBlue},
	{"<{@@@}>", core.ColorBrightRed},
}

var _ = [1]struct{}{}[len(enemySprites)-int(enemyTypeCount)]

var powerUpSprites = [...]sprite{
	{"[R]", core.ColorRed},
	{"[L]", core.ColorBlue},
	{"[M]", core.ColorOrange},
	{"[S]", core.ColorGreen},
}

var _ = [1]struct{}{}[len(powerUpSprites)-int(powerUpTypeCount)]

var powerUpLabels = [...]string{"RAPID", "LASER", "MISSILE", "SHIELD"}

var _ = [1]struct{}{}[len(powerUpLabels)-int(powerUpTypeCount)]

// viewport maps playfield units to screen cells below the HUD row.
type viewport struct {
	top    int
	sx, sy float64
}

func newViewport(dst *core.Screen, b core.Bounds) viewport {
	return viewport{
		top: 1,
		sx:  float64(dst.Width()) / b.W,
		sy:  float64(dst.Height()-1) / b.H,
	}
}

func (v viewport) cell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X * v.sx)), v.top + int(math.Floor(p.Y*v.sy))
}

func (v viewport) put(dst *core.Screen, x, y int, r rune, c core.Color) {
	if y < v.top {
		return
	}
	dst.SetColored(x, y, r, c)
}

// text draws s centered on the cell of p, kept inside the screen width.
func (v viewport) text(dst *core.Screen, p core.Vec2, s string, c core.Color) {
	runes := []rune(s)
	x, y := v.cell(p)
	x = core.Clamp(x-len(runes)/2, 0, max(dst.Width()-len(runes), 0))
	for i, r := range runes {
		v.put(dst, x+i, y, r, c)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	if g.state == StateLoading {
		g.renderLoading(dst)
		return
	}

	v := newViewport(dst, g.bounds)
	g.renderStars(dst, v)
	g.renderPowerUps(dst, v)
	g.renderEnemies(dst, v)
	g.renderEffects(dst, v)
	g.renderPlayer(dst, v)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderLoading(dst *core.Screen) {
	mid := dst.Height() / 2
	if g.loadErr == nil {
		dst.DrawTextCentered(mid, "Loading...")
		return
	}
	msg := g.loadErr.Error()
	if limit := dst.Width() - 4; len([]rune(msg)) > limit {
		msg = string([]rune(msg)[:limit-3]) + "..."
	}
	dst.DrawTextCenteredColored(mid-2, "Could not load the game", core.ColorBrightRed)
	dst.DrawTextCentered(mid, msg)
	dst.DrawTextCenteredColored(mid+2, "Press ENTER to retry", core.ColorGray)
}

func (g *Game) renderStars(dst *core.Screen, v viewport) {
	if g.stars == nil {
		return
	}
	for _, s := range g.stars.Stars {
		x, y := v.cell(s.Pos)
		v.put(dst, x, y, '.', s.Color)
	}
}

func (g *Game) renderPowerUps(dst *core.Screen, v viewport) {
	for _, pu := range g.powerups.PowerUps {
		if !pu.Active {
			continue
		}
		sp := powerUpSprites[pu.Type]
		v.text(dst, pu.Pos, sp.text, sp.color)
	}
}

func (g *Game) renderEnemies(dst *core.Screen, v viewport) {
	for _, e := range g.enemies.Enemies {
		if !e.Active {
			continue
		}
		sp := enemySprites[e.Type]
		v.text(dst, e.Pos, sp.text, sp.color)
	}
}

func (g *Game) renderEffects(dst *core.Screen, v viewport) {
	for _, fx := range g.effects {
		switch fx.Kind {
		case EffectHitFlash:
			v.text(dst, fx.Pos, "+", core.ColorBrightWhite)
		case EffectExplosion:
			v.text(dst, fx.Pos, "*#*", core.ColorOrange)
		case EffectLaserBeam:
			g.renderBeam(dst, v, fx.Pos)
		}
	}
}

// renderBeam draws the laser from just above the ship to the top edge.
func (g *Game) renderBeam(dst *core.Screen, v viewport, from core.Vec2) {
	x, y := v.cell(from)
	half := int(laserHalfWidth * v.sx)
	for row := v.top; row < y; row++ {
		for dx := -half; dx <= half; dx++ {
			r, c := '|', core.ColorCyan
			if dx == 0 {
				r, c = '║', core.ColorBrightCyan
			}
			v.put(dst, x+dx, row, r, c)
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen, v viewport) {
	p := g.player
	for _, b := range p.Bullets {
		if !b.Active {
			continue
		}
		if b.Kind == BulletMissile {
			v.text(dst, b.Pos, "!", core.ColorOrange)
		} else {
			v.text(dst, b.Pos, "|", core.ColorBrightWhite)
		}
	}

	// Blink while invincible
	if p.Invincible && (p.InvincibleTicks()/6)%2 == 1 {
		return
	}
	v.text(dst, p.Pos, `/^\`, core.ColorBrightGreen)
	if p.ShieldActive {
		x, y := v.cell(p.Pos)
		v.put(dst, x-3, y, '(', core.ColorBrightCyan)
		v.put(dst, x+3, y, ')', core.ColorBrightCyan)
	}
}

// renderHUD draws score, lives, wave and active power-ups on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf("SCORE %06d  LIVES %s  WAVE %d",
		g.score, strings.Repeat("♥", g.player.Lives), g.enemies.Wave())
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)
	if g.enemies.IsBossWave() {
		dst.DrawTextColored(len([]rune(left))+2, 0, "BOSS", core.ColorBrightRed)
	}

	x := dst.Width() - 1
	for t := powerUpTypeCount - 1; t >= 0; t-- {
		if !g.powerups.IsPowerUpActive(t) {
			continue
		}
		secs := int(math.Ceil(g.powerups.Remaining(t).Seconds()))
		label := fmt.Sprintf("%s %ds", powerUpLabels[t], secs)
		x -= len(label)
		dst.DrawTextColored(x, 0, label, powerUpSprites[t].color)
		x--
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	mid := dst.Height() / 2

	switch g.state {
	case StateStart:
		lines := []string{
			"SHOOT 'EM UP",
			"",
			"Arrows/WASD move   SPACE fire   P pause",
			"",
			"Press ENTER to start",
		}
		if g.best > 0 {
			lines = append(lines, "", fmt.Sprintf("Best: %d", g.best))
		}
		drawPanel(dst, lines)
	case StatePaused:
		drawPanel(dst, []string{"PAUSED", "", "Press P to resume"})
	case StateGameOver:
		lines := []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", g.score),
			fmt.Sprintf("Wave:  %d", g.enemies.Wave()),
			fmt.Sprintf("Best:  %d", g.best),
		}
		if g.score > 0 && g.score == g.best {
			lines = append(lines, "NEW BEST!")
		}
		lines = append(lines, "", "R restart   Q quit")
		drawPanel(dst, lines)
		return
	}

	if g.banner > 0 && g.state == StatePlaying {
		dst.DrawTextCenteredColored(mid, fmt.Sprintf("Wave %d Complete!", g.banner), core.ColorBrightYellow)
	}
}

// drawPanel draws lines centered in a bordered box in the middle of the screen.
func drawPanel(dst *core.Screen, lines []string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l)
	}
}
