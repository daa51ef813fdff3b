package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
)

// Tile is one cell of the maze grid.
type Tile struct {
	Kind TileKind
}

// Walkable reports whether entities can occupy the tile.
func (t Tile) Walkable() bool { return t.Kind == TileFloor }

// MakeWall returns a blocking wall tile.
func MakeWall() Tile { return Tile{Kind: TileWall} }

// MakeFloor returns a passable floor tile.
func MakeFloor() Tile { return Tile{Kind: TileFloor} }
