package gamemap

// Room is an axis-aligned rectangle of floor tiles, in tile coordinates.
// X2/Y2 are inclusive.
type Room struct {
	X1, Y1, X2, Y2 int
}

// Center returns the integer center tile of the room.
func (r Room) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Room) Intersects(other Room) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Expand returns the room grown by pad tiles on every side.
func (r Room) Expand(pad int) Room {
	return Room{X1: r.X1 - pad, Y1: r.Y1 - pad, X2: r.X2 + pad, Y2: r.Y2 + pad}
}

// Maze holds the tile grid and room list for one level.
// It is immutable once generated; a new level replaces it wholesale.
type Maze struct {
	Width, Height int
	Tiles         [][]Tile
	Rooms         []Room
	Start, Exit   Room
}

// New creates a Maze filled with walls and no rooms.
func New(width, height int) *Maze {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &Maze{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether tile (x, y) is within the map boundaries.
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at (x, y). Panics if out of bounds.
func (m *Maze) At(x, y int) Tile {
	return m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *Maze) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when tile (x, y) is in bounds and floor.
func (m *Maze) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable()
}

// IsWalkableWorld returns true when the tile under world position p is floor.
func (m *Maze) IsWalkableWorld(p Vec2) bool {
	tx, ty := WorldToTile(p)
	return m.IsWalkable(tx, ty)
}

// ExitCenter returns the world position of the exit room's center tile.
func (m *Maze) ExitCenter() Vec2 {
	return TileCenter(m.Exit.Center())
}

// StartCenter returns the world position of the start room's center tile.
func (m *Maze) StartCenter() Vec2 {
	return TileCenter(m.Start.Center())
}
