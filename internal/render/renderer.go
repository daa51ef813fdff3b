package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"lastlight/assets"
	"lastlight/internal/component"
	"lastlight/internal/config"
	"lastlight/internal/gamemap"
	"lastlight/internal/system"
)

// FloatLifetime is how long a floating damage number stays on screen.
const FloatLifetime = 0.8

// FloatText is a short-lived overlay string anchored to a world position.
type FloatText struct {
	Pos  gamemap.Vec2
	Text string
	Age  float64
}

// hudRows is reserved at the bottom of the screen.
const hudRows = 4

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer sized to the screen, reserving the HUD rows.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	viewH := h - hudRows
	if viewH < 1 {
		viewH = 1
	}
	return &Renderer{
		screen: screen,
		camera: NewCamera(gamemap.Vec2{}, w, viewH),
	}
}

// CenterOn recenters the camera on a world position.
func (r *Renderer) CenterOn(p gamemap.Vec2) { r.camera.Center(p) }

// ScreenToWorld exposes the camera transform for mouse aiming.
func (r *Renderer) ScreenToWorld(sx, sy int) gamemap.Vec2 {
	return r.camera.ScreenToWorld(sx, sy)
}

// DrawFrame renders the maze, lights, entities, and overlays. The HUD is
// drawn separately so modal screens can reuse the frame.
func (r *Renderer) DrawFrame(w *system.World, theme assets.Tiles, floats []FloatText) {
	r.screen.Clear()
	r.drawMap(w, theme)
	r.drawLights(w)
	r.drawEntities(w)
	r.drawFloats(floats)
	r.drawMinimap(w)
}

// drawMap shades tiles by visibility: never-seen tiles stay blank, lit tiles
// use the bright glyphs, remembered tiles fade through the dim set.
func (r *Renderer) drawMap(w *system.World, theme assets.Tiles) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for ty := 0; ty < w.Maze.Height; ty++ {
		for tx := 0; tx < w.Maze.Width; tx++ {
			vis := w.Fog.VisibilityAt(tx, ty)
			if vis <= 0 {
				continue
			}
			sx, sy, onScreen := r.camera.TileToScreen(tx, ty)
			if !onScreen {
				continue
			}

			wall := !w.Maze.At(tx, ty).Walkable()
			var glyph string
			switch {
			case vis > config.VisibleThreshold && wall:
				glyph = theme.Wall
			case vis > config.VisibleThreshold:
				glyph = theme.Floor
			case wall:
				glyph = theme.DimWall
			default:
				glyph = theme.DimFloor
			}
			r.putGlyph(sx, sy, glyph, style)
		}
	}

	// The exit door, when its tile has been seen at all.
	ex, ey := gamemap.WorldToTile(w.Maze.ExitCenter())
	if w.Fog.VisibilityAt(ex, ey) > 0 {
		if sx, sy, ok := r.camera.TileToScreen(ex, ey); ok {
			r.putGlyph(sx, sy, assets.GlyphExit, style)
		}
	}
}

// drawLights renders placed lanterns, active lures, and in-flight flares.
func (r *Renderer) drawLights(w *system.World) {
	style := tcell.StyleDefault
	for _, l := range w.Fog.Lights() {
		glyph := assets.GlyphLantern
		if l.Attracts {
			glyph = assets.GlyphLure
		}
		if sx, sy, ok := r.camera.WorldToScreen(l.Pos); ok {
			r.putGlyph(sx, sy, glyph, style)
		}
	}
	for _, f := range w.Fog.Flares() {
		if sx, sy, ok := r.camera.WorldToScreen(f.Pos); ok {
			r.putGlyph(sx, sy, assets.GlyphFlare, style)
		}
	}
}

// drawEntities renders puddles, pickups, enemies, projectiles, the blade,
// and the player, back to front.
func (r *Renderer) drawEntities(w *system.World) {
	style := tcell.StyleDefault

	for _, pd := range w.Puddles {
		if sx, sy, ok := r.camera.WorldToScreen(pd.Pos); ok {
			r.putGlyph(sx, sy, assets.GlyphPuddle, style)
		}
	}
	for _, pu := range w.Pickups {
		if sx, sy, ok := r.camera.WorldToScreen(pu.Pos); ok {
			r.putGlyph(sx, sy, pickupGlyph(pu.Kind), style)
		}
	}

	// Enemies only render on tiles the player can currently make out.
	for _, e := range w.Enemies {
		if !e.Alive {
			continue
		}
		tx, ty := gamemap.WorldToTile(e.Pos)
		if w.Fog.VisibilityAt(tx, ty) <= config.VisibleThreshold {
			continue
		}
		sx, sy, ok := r.camera.WorldToScreen(e.Pos)
		if !ok {
			continue
		}
		glyph := enemyGlyph(e.Kind)
		if e.FrozenTime > 0 {
			glyph = "🧊"
		}
		st := style
		if e.FlashTime > 0 {
			st = st.Background(tcell.ColorDarkRed)
		}
		r.putGlyph(sx, sy, glyph, st)

		// Spitter windup telegraph.
		if e.Kind == component.KindSpitter && e.Spitter.Windup > 0 {
			r.screen.SetContent(sx, sy-1, '!', nil, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
		}
	}

	bulletStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for _, b := range w.Bullets {
		if sx, sy, ok := r.camera.WorldToScreen(b.Pos); ok {
			r.screen.SetContent(sx, sy, '•', nil, bulletStyle)
		}
	}
	gooStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for _, gp := range w.Goo {
		if sx, sy, ok := r.camera.WorldToScreen(gp.Pos); ok {
			r.screen.SetContent(sx, sy, '*', nil, gooStyle)
		}
	}

	if w.Player.HasBlade {
		if sx, sy, ok := r.camera.WorldToScreen(w.BladePos()); ok {
			r.putGlyph(sx, sy, assets.GlyphBlade, style)
		}
	}

	glyph := assets.GlyphPlayer
	if w.Player.HitFlash > 0 {
		glyph = assets.GlyphPlayerHit
	}
	if sx, sy, ok := r.camera.WorldToScreen(w.Player.Pos); ok {
		r.putGlyph(sx, sy, glyph, style)
		if w.Player.TeleportTimer > 0 {
			r.screen.SetContent(sx, sy-1, '~', nil, tcell.StyleDefault.Foreground(tcell.ColorAqua))
		}
	}
}

// drawFloats renders damage numbers, rising one row as they age out.
func (r *Renderer) drawFloats(floats []FloatText) {
	style := tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	for _, f := range floats {
		sx, sy, ok := r.camera.WorldToScreen(f.Pos)
		if !ok {
			continue
		}
		rise := int(f.Age / FloatLifetime * 2)
		y := sy - 1 - rise
		if y < 0 {
			continue
		}
		for i, ch := range f.Text {
			r.screen.SetContent(sx+i, y, ch, nil, style)
		}
	}
}

// drawMinimap paints a downsampled visibility snapshot in the top-right
// corner: lit tiles bright, remembered tiles dim, never-seen blank.
func (r *Renderer) drawMinimap(w *system.World) {
	const maxSide = 16
	step := (w.Maze.Width + maxSide - 1) / maxSide
	if step < 1 {
		step = 1
	}
	mw := (w.Maze.Width + step - 1) / step
	mh := (w.Maze.Height + step - 1) / step
	sw, _ := r.screen.Size()
	x0 := sw - mw - 1
	if x0 < 0 {
		return
	}

	lit := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for my := 0; my < mh; my++ {
		for mx := 0; mx < mw; mx++ {
			best := 0.0
			for ty := my * step; ty < (my+1)*step && ty < w.Maze.Height; ty++ {
				for tx := mx * step; tx < (mx+1)*step && tx < w.Maze.Width; tx++ {
					if v := w.Fog.VisibilityAt(tx, ty); v > best {
						best = v
					}
				}
			}
			if best <= 0 {
				continue
			}
			ch, st := '▒', dim
			if best > config.VisibleThreshold {
				ch, st = '█', lit
			}
			r.screen.SetContent(x0+mx, 1+my, ch, nil, st)
		}
	}

	ptx, pty := gamemap.WorldToTile(w.Player.Pos)
	r.screen.SetContent(x0+ptx/step, 1+pty/step, '@', nil, tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true))
	ex, ey := gamemap.WorldToTile(w.Maze.ExitCenter())
	if w.Fog.VisibilityAt(ex, ey) > 0 {
		r.screen.SetContent(x0+ex/step, 1+ey/step, 'X', nil, tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
	}
}

// putGlyph writes an emoji (or any string) starting at screen cell (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	// Pad the second column of narrow glyphs so stale cells don't linger.
	if runewidth.StringWidth(glyph) < 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

func enemyGlyph(k component.EnemyKind) string {
	switch k {
	case component.KindSpitter:
		return assets.GlyphSpitter
	case component.KindBroodmother:
		return assets.GlyphBroodmother
	default:
		return assets.GlyphChaser
	}
}

func pickupGlyph(k component.PickupKind) string {
	switch k {
	case component.PickupDamage:
		return assets.GlyphPickupDamage
	case component.PickupFireRate:
		return assets.GlyphPickupFireRate
	case component.PickupShield:
		return assets.GlyphPickupShield
	case component.PickupInvis:
		return assets.GlyphPickupInvis
	default:
		return assets.GlyphPickupPoints
	}
}

// label formats a count with its glyph for the HUD consumable strip.
func label(glyph string, n int) string {
	return fmt.Sprintf("%s%d", glyph, n)
}
