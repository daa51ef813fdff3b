package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"lastlight/assets"
	"lastlight/internal/component"
	"lastlight/internal/system"
)

// HUDInfo carries the orchestrator-level numbers the HUD shows alongside the
// world state.
type HUDInfo struct {
	Level  int
	Points int
	Score  int
}

// DrawHUD renders the status rows at the bottom of the screen.
func (r *Renderer) DrawHUD(w *system.World, info HUDInfo) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	p := w.Player
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	// Row 1: vitals, score, level timer.
	hpBar := healthBar(p.HP, p.MaxHP, 12)
	timer := fmt.Sprintf("%.0fs/%.0fs", w.Elapsed, w.Scale.ParTime)
	line1 := fmt.Sprintf("HP %s %.0f/%.0f   L%d   pts %d (score %d)   %s",
		hpBar, p.HP, p.MaxHP, info.Level, info.Points, info.Score, timer)
	r.drawText(0, hudY+1, line1, white)
	if w.Horde {
		warn := "⚠ THE FOG SURGES ⚠"
		sw, _ := r.screen.Size()
		r.drawText(sw-runewidth.StringWidth(warn)-1, hudY+1, warn, red)
	}

	// Row 2: consumables and active statuses.
	parts := []string{
		label(assets.GlyphLantern, p.Lanterns),
		label(assets.GlyphFlare, p.Flares),
		label(assets.GlyphLure, p.Lures),
		label("🌀", p.Teleports),
		label("🌊", p.Shockwaves),
	}
	if p.Shielded() {
		parts = append(parts, "🛡️")
	}
	if p.Invisible() {
		parts = append(parts, "🫥")
	}
	if p.DamageBoostTime > 0 {
		parts = append(parts, "💢")
	}
	if p.FireBoostTime > 0 {
		parts = append(parts, "⚡")
	}
	if p.RootedTime > 0 {
		parts = append(parts, "ROOTED")
	}
	r.drawText(0, hudY+2, strings.Join(parts, "  "), white)

	// Row 3: owned weapons, focus marked.
	var arms []string
	for k := component.WeaponKind(0); k < component.NumWeapons; k++ {
		if !p.Owned[k] {
			continue
		}
		name := component.Weapons[k].Name
		if k == p.Focus {
			name = "[" + name + "]"
		}
		arms = append(arms, name)
	}
	if p.HasBlade {
		arms = append(arms, assets.GlyphBlade)
	}
	r.drawText(0, hudY+3, strings.Join(arms, "  ")+"   (Tab: focus)", dim)
}

// healthBar renders a fixed-width block bar.
func healthBar(hp, maxHP float64, width int) string {
	if maxHP <= 0 {
		return strings.Repeat("░", width)
	}
	filled := int(hp / maxHP * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
