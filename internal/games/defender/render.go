package defender

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/games/defender/entity"
	"github.com/vovakirdan/star-defender/internal/games/defender/session"
)

// Visual characters for rendering
const (
	PlayerChar      = '▲'
	PlayerBulletCh  = '|'
	EnemyBulletChar = '!'
	ExplosionChar   = '*'
	EmberChar       = '·'
	ShieldLeft      = '('
	ShieldRight     = ')'
	HeartChar       = '♥'
)

// Minimum playable terminal size.
const (
	minScreenW = 40
	minScreenH = 16
)

// blinkPeriod is the invincibility flicker half-period in milliseconds.
const blinkPeriod = 100.0

var enemyColors = [entity.EnemyKindCount]core.Color{
	entity.EnemyBasic:  core.ColorRed,
	entity.EnemyFast:   core.ColorYellow,
	entity.EnemyTank:   core.ColorMagenta,
	entity.EnemyZigzag: core.ColorBrightCyan,
	entity.EnemyBoss:   core.ColorBrightRed,
}

var powerUpColors = [entity.PowerUpKindCount]core.Color{
	entity.PowerUpTripleShot: core.ColorOrange,
	entity.PowerUpRapidFire:  core.ColorBrightYellow,
	entity.PowerUpShield:     core.ColorBrightBlue,
	entity.PowerUpBomb:       core.ColorBrightMagenta,
}

// Render draws the current game state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() != g.runtime.ScreenW || dst.Height() != g.runtime.ScreenH {
		g.Resize(dst.Width(), dst.Height())
	}
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}
	if g.sess == nil {
		return
	}

	st := g.sess.State()

	g.renderHUD(dst, st)
	dst.DrawBox(core.NewRect(0, 1, dst.Width(), dst.Height()-1), core.ColorGray)

	g.renderPowerUps(dst)
	g.renderEnemies(dst)
	g.renderBullets(dst)
	g.renderPlayer(dst)
	g.renderEffects(dst)
	g.renderOverlay(dst, st)
}

// cells maps a world box onto the field, returning a half-open cell range.
// Every visible entity covers at least one cell.
func (g *Game) cells(b core.Box) (x0, y0, x1, y1 int) {
	sx := float64(g.field.W) / g.cfg.Arena.Width
	sy := float64(g.field.H) / g.cfg.Arena.Height

	x0 = g.field.X + int(math.Floor(b.X*sx))
	y0 = g.field.Y + int(math.Floor(b.Y*sy))
	x1 = g.field.X + int(math.Ceil(b.Right()*sx))
	y1 = g.field.Y + int(math.Ceil(b.Bottom()*sy))
	x1 = core.Max(x1, x0+1)
	y1 = core.Max(y1, y0+1)
	return x0, y0, x1, y1
}

// point maps a world point onto a field cell.
func (g *Game) point(x, y float64) (int, int) {
	sx := float64(g.field.W) / g.cfg.Arena.Width
	sy := float64(g.field.H) / g.cfg.Arena.Height
	return g.field.X + int(math.Floor(x*sx)), g.field.Y + int(math.Floor(y*sy))
}

func (g *Game) inField(x, y int) bool {
	return x >= g.field.X && x < g.field.Right() && y >= g.field.Y && y < g.field.Bottom()
}

func (g *Game) set(dst *core.Screen, x, y int, r rune, c core.Color) {
	if g.inField(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

func (g *Game) fill(dst *core.Screen, b core.Box, r rune, c core.Color) {
	x0, y0, x1, y1 := g.cells(b)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			g.set(dst, x, y, r, c)
		}
	}
}

// renderHUD draws score, wave, combo, weapon, lives and buffs on row 0.
func (g *Game) renderHUD(dst *core.Screen, st session.State) {
	left := fmt.Sprintf("Score: %d  Wave: %d", st.Score, st.Wave)
	if st.Combo > 0 {
		left += fmt.Sprintf("  Combo: %d x%.1f", st.Combo, g.sess.Multiplier())
	}
	dst.DrawText(1, 0, left)

	x := 1 + len([]rune(left)) + 2
	if buffs := buffString(st); buffs != "" {
		dst.DrawTextColored(x, 0, buffs, core.ColorBrightCyan)
	}

	p := g.sess.World().Player()
	if p == nil {
		return
	}
	lives := strings.Repeat(string(HeartChar), core.Max(p.Health, 0))
	right := fmt.Sprintf("Lv%d ", p.WeaponLevel)
	rx := dst.Width() - len([]rune(right)) - len([]rune(lives)) - 1
	dst.DrawText(rx, 0, right)
	dst.DrawTextColored(rx+len([]rune(right)), 0, lives, core.ColorBrightRed)
}

// buffString lists active buffs with their remaining seconds.
func buffString(st session.State) string {
	var parts []string
	for _, k := range []session.BuffKind{session.BuffRapidFire, session.BuffShield} {
		if rem, ok := st.Buffs[k]; ok {
			parts = append(parts, fmt.Sprintf("%s(%d)", k, int(math.Ceil(rem/1000))))
		}
	}
	return strings.Join(parts, " ")
}

func (g *Game) renderEnemies(dst *core.Screen) {
	for _, e := range g.sess.World().ActiveEnemies() {
		g.fill(dst, e.Rect(), e.Kind.Glyph(), enemyColors[e.Kind])

		if !e.ShowHealthBar() {
			continue
		}
		x0, y0, x1, _ := g.cells(e.Rect())
		if !g.inField(x0, y0-1) {
			continue
		}
		w := core.Min(x1, g.field.Right()) - x0
		dst.DrawBar(x0, y0-1, w, e.Health, e.MaxHealth, core.ColorBrightGreen)
	}
}

func (g *Game) renderBullets(dst *core.Screen) {
	w := g.sess.World()
	for _, b := range w.ActivePlayerBullets() {
		x, y := g.point(b.Center())
		g.set(dst, x, y, PlayerBulletCh, core.ColorBrightYellow)
	}
	for _, b := range w.ActiveEnemyBullets() {
		x, y := g.point(b.Center())
		g.set(dst, x, y, EnemyBulletChar, core.ColorBrightRed)
	}
}

func (g *Game) renderPowerUps(dst *core.Screen) {
	for _, p := range g.sess.World().ActivePowerUps() {
		x, y := g.point(p.Center())
		g.set(dst, x, y, p.Kind.Glyph(), powerUpColors[p.Kind])
	}
}

func (g *Game) renderPlayer(dst *core.Screen) {
	p := g.sess.World().Player()
	if p == nil || !p.Active {
		return
	}
	// Flicker while invincible
	if p.Invincible && int(p.InvincibleRemaining/blinkPeriod)%2 == 1 {
		return
	}

	g.fill(dst, p.Rect(), PlayerChar, core.ColorBrightGreen)
	if p.Shielded {
		x0, y0, x1, y1 := g.cells(p.Rect())
		for y := y0; y < y1; y++ {
			g.set(dst, x0-1, y, ShieldLeft, core.ColorBrightBlue)
			g.set(dst, x1, y, ShieldRight, core.ColorBrightBlue)
		}
	}
}

func (g *Game) renderEffects(dst *core.Screen) {
	w := g.sess.World()
	for _, e := range w.Explosions() {
		r, c := ExplosionChar, core.ColorOrange
		if e.Progress() > 0.6 {
			r, c = EmberChar, core.ColorGray
		}
		g.fill(dst, core.Box{X: e.X - e.Radius, Y: e.Y - e.Radius, W: 2 * e.Radius, H: 2 * e.Radius}, r, c)
	}
	for _, t := range w.Texts() {
		c := core.ColorBrightWhite
		if t.Fade() < 0.4 {
			c = core.ColorGray
		}
		x, y := g.point(t.X, t.Y)
		x -= len([]rune(t.Text)) / 2
		for i, r := range t.Text {
			g.set(dst, x+i, y, r, c)
		}
	}
}

// renderOverlay draws wave banners and pause/game-over boxes.
func (g *Game) renderOverlay(dst *core.Screen, st session.State) {
	switch {
	case st.GameOver:
		r := g.sess.Result()
		subtitle := fmt.Sprintf("Score: %d  Wave: %d  Kills: %d", r.Score, r.Wave, r.Kills)
		g.drawCenteredBox(dst, "GAME OVER", subtitle, "R restart  Q quit")
	case st.Paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume", "")
	default:
		if banner, ok := g.sess.Banner(); ok {
			dst.DrawTextCentered(g.field.Y+g.field.H/3, banner, core.ColorBrightYellow)
		}
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle, hint string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), core.Max(len(subtitle), len(hint))) + 4
	boxH := 5
	if hint != "" {
		boxH = 6
	}
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
	if hint != "" {
		dst.DrawTextColored(boxX+(boxW-len(hint))/2, boxY+4, hint, core.ColorGray)
	}
}
