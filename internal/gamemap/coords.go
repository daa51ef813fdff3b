package gamemap

import "math"

// TileSize is the width of one map tile in world units.
// Every tile↔world conversion in the repository goes through the functions
// below; nothing else may duplicate this transform.
const TileSize = 40.0

// Vec2 is a position or direction in continuous world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Normalized returns v scaled to unit length.
// The zero vector is returned unchanged to avoid dividing by zero.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l < 1e-9 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// WorldToTile converts a world position to the tile containing it.
func WorldToTile(p Vec2) (int, int) {
	return int(math.Floor(p.X / TileSize)), int(math.Floor(p.Y / TileSize))
}

// TileCenter converts tile coordinates to the world position of the tile center.
func TileCenter(tx, ty int) Vec2 {
	return Vec2{
		X: float64(tx)*TileSize + TileSize/2,
		Y: float64(ty)*TileSize + TileSize/2,
	}
}
