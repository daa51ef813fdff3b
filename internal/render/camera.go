package render

import "lastlight/internal/gamemap"

// A terminal cell is half a tile wide and a full tile tall: emoji glyphs
// occupy 2 columns, so one map tile is 2 columns × 1 row on screen.
const (
	colWorld = gamemap.TileSize / 2 // world units per terminal column
	rowWorld = gamemap.TileSize     // world units per terminal row
)

// Camera translates between world coordinates and screen cells.
type Camera struct {
	OffsetX, OffsetY float64 // world position of the viewport's top-left
	ViewWidth        int     // in terminal columns
	ViewHeight       int     // in terminal rows
}

// NewCamera creates a camera centered on p.
func NewCamera(p gamemap.Vec2, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(p)
	return c
}

// Center repositions the camera so that world position p is in the middle.
func (c *Camera) Center(p gamemap.Vec2) {
	c.OffsetX = p.X - float64(c.ViewWidth)/2*colWorld
	c.OffsetY = p.Y - float64(c.ViewHeight)/2*rowWorld
}

// WorldToScreen converts a world position to screen cell coordinates.
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(p gamemap.Vec2) (sx, sy int, visible bool) {
	fx := (p.X - c.OffsetX) / colWorld
	fy := (p.Y - c.OffsetY) / rowWorld
	if fx < 0 || fy < 0 {
		return 0, 0, false
	}
	sx, sy = int(fx), int(fy)
	// Glyphs are 2 columns wide; align pairs to even columns.
	sx -= sx % 2
	visible = sx+1 < c.ViewWidth && sy < c.ViewHeight
	return
}

// TileToScreen converts tile indices to the screen cell of the tile's left
// column.
func (c *Camera) TileToScreen(tx, ty int) (sx, sy int, visible bool) {
	return c.WorldToScreen(gamemap.TileCenter(tx, ty))
}

// ScreenToWorld converts a screen cell to the world position at its center.
func (c *Camera) ScreenToWorld(sx, sy int) gamemap.Vec2 {
	return gamemap.Vec2{
		X: c.OffsetX + (float64(sx)+0.5)*colWorld,
		Y: c.OffsetY + (float64(sy)+0.5)*rowWorld,
	}
}
