package gamemap

// LineOfSight reports whether the straight segment from a to b crosses no
// wall tiles. The ray is sampled in half-tile increments, which cannot skip
// a full tile at any angle.
func LineOfSight(m *Maze, a, b Vec2) bool {
	d := b.Sub(a)
	dist := d.Len()
	if dist < 1 {
		return true
	}
	step := d.Scale((TileSize / 2) / dist)
	steps := int(dist / (TileSize / 2))

	p := a
	for i := 0; i < steps; i++ {
		p = p.Add(step)
		if !m.IsWalkableWorld(p) {
			return false
		}
	}
	return m.IsWalkableWorld(b)
}
