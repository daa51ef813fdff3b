// Package spatial provides a uniform-grid index for broad-phase proximity
// queries, so enemy/bullet checks stay near O(1) instead of all-pairs.
package spatial

import "lastlight/internal/config"

// Grid buckets entity IDs by world-space cell.
// It is rebuilt from scratch every tick: Clear, Insert all, then query.
type Grid struct {
	cols  int
	rows  int
	cells [][]int
}

// NewGrid creates a grid covering a world of the given dimensions.
func NewGrid(worldW, worldH float64) *Grid {
	cols := int(worldW/config.SpatialCellSize) + 1
	rows := int(worldH/config.SpatialCellSize) + 1
	return &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([][]int, cols*rows),
	}
}

// Clear empties all cells, keeping allocated capacity.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// cellIndex clamps out-of-range positions to the edge cells so callers never
// have to bounds-check before inserting.
func (g *Grid) cellIndex(x, y float64) int {
	cx := int(x / config.SpatialCellSize)
	cy := int(y / config.SpatialCellSize)
	if cx < 0 {
		cx = 0
	} else if cx >= g.cols {
		cx = g.cols - 1
	}
	if cy < 0 {
		cy = 0
	} else if cy >= g.rows {
		cy = g.rows - 1
	}
	return cy*g.cols + cx
}

// Insert records an entity ID at the given world position.
func (g *Grid) Insert(id int, x, y float64) {
	idx := g.cellIndex(x, y)
	g.cells[idx] = append(g.cells[idx], id)
}

// QueryRadius appends to dst the IDs of all entities whose cell overlaps the
// circle at (x, y) with radius r, and returns the extended slice. The result
// is a superset of the true neighbours; callers do the exact distance check.
func (g *Grid) QueryRadius(dst []int, x, y, r float64) []int {
	minCX := int((x - r) / config.SpatialCellSize)
	maxCX := int((x + r) / config.SpatialCellSize)
	minCY := int((y - r) / config.SpatialCellSize)
	maxCY := int((y + r) / config.SpatialCellSize)
	if minCX < 0 {
		minCX = 0
	}
	if minCY < 0 {
		minCY = 0
	}
	if maxCX >= g.cols {
		maxCX = g.cols - 1
	}
	if maxCY >= g.rows {
		maxCY = g.rows - 1
	}
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			dst = append(dst, g.cells[cy*g.cols+cx]...)
		}
	}
	return dst
}
