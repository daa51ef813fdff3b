package generate

import "lastlight/internal/gamemap"

// corridorWidth is the carved thickness of every tunnel, wide enough to kite
// enemies through.
const corridorWidth = 3

// carveCorridor digs an L-shaped tunnel between tile centers (x1,y1) and
// (x2,y2), choosing horizontal-first or vertical-first at random.
func carveCorridor(m *gamemap.Maze, x1, y1, x2, y2 int, cfg *Config) {
	if cfg.Rand.Intn(2) == 0 {
		carveH(m, x1, x2, y1)
		carveV(m, y1, y2, x2)
	} else {
		carveV(m, y1, y2, x1)
		carveH(m, x1, x2, y2)
	}
}

func carveH(m *gamemap.Maze, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	half := corridorWidth / 2
	for x := x1; x <= x2; x++ {
		for dy := -half; dy <= half; dy++ {
			if m.InBounds(x, y+dy) {
				m.Set(x, y+dy, gamemap.MakeFloor())
			}
		}
	}
}

func carveV(m *gamemap.Maze, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	half := corridorWidth / 2
	for y := y1; y <= y2; y++ {
		for dx := -half; dx <= half; dx++ {
			if m.InBounds(x+dx, y) {
				m.Set(x+dx, y, gamemap.MakeFloor())
			}
		}
	}
}
