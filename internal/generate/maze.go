package generate

import (
	"math"
	"math/rand"

	"lastlight/internal/gamemap"
)

// MinMapSize is the smallest accepted map dimension. Below this, room
// placement can degenerate to a single room and the start/exit pair loses
// meaning, so Generate enforces the floor instead of guessing.
const MinMapSize = 25

// roomPadding is the minimum wall thickness kept between rooms and between a
// room and the map edge.
const roomPadding = 2

// maxRetries bounds regeneration when a draw produces fewer than two rooms.
// Each retry relaxes the minimum room size by one tile.
const maxRetries = 8

// Config drives procedural generation for one level.
type Config struct {
	Width, Height int
	Rand          *rand.Rand
}

// Generate builds a maze: place non-overlapping rooms, connect them with
// corridors, add loop corridors, then pick start and exit rooms.
// Each call draws from cfg.Rand; tests inject a seeded source.
func Generate(cfg *Config) *gamemap.Maze {
	w, h := cfg.Width, cfg.Height
	if w < MinMapSize {
		w = MinMapSize
	}
	if h < MinMapSize {
		h = MinMapSize
	}

	scale := w
	if h < scale {
		scale = h
	}
	minRoom := int(float64(scale) * 0.15)
	maxRoom := int(float64(scale) * 0.35)

	for retry := 0; ; retry++ {
		m := placeRooms(w, h, minRoom, maxRoom, cfg.Rand)
		if len(m.Rooms) >= 2 {
			connectRooms(m, cfg)
			addLoops(m, cfg)
			selectStartExit(m)
			return m
		}
		if retry >= maxRetries {
			// Unreachable at MinMapSize; a draw that rejects every room
			// placement eight times in a row would indicate a broken RNG.
			panic("generate: could not place two rooms")
		}
		if minRoom > 3 {
			minRoom--
		}
	}
}

// placeRooms attempts max(10, 1.5·min(w,h)) random room placements, carving
// each accepted room immediately.
func placeRooms(w, h, minRoom, maxRoom int, rng *rand.Rand) *gamemap.Maze {
	m := gamemap.New(w, h)

	attempts := int(1.5 * float64(min(w, h)))
	if attempts < 10 {
		attempts = 10
	}

	for i := 0; i < attempts; i++ {
		rw := minRoom + rng.Intn(maxRoom-minRoom+1)
		rh := minRoom + rng.Intn(maxRoom-minRoom+1)
		maxX := w - rw - roomPadding
		maxY := h - rh - roomPadding
		if maxX <= roomPadding || maxY <= roomPadding {
			continue
		}
		x := roomPadding + rng.Intn(maxX-roomPadding)
		y := roomPadding + rng.Intn(maxY-roomPadding)
		room := gamemap.Room{X1: x, Y1: y, X2: x + rw - 1, Y2: y + rh - 1}

		overlaps := false
		for _, other := range m.Rooms {
			if room.Expand(roomPadding).Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		carveRoom(m, room)
		m.Rooms = append(m.Rooms, room)
	}
	return m
}

func carveRoom(m *gamemap.Maze, r gamemap.Room) {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			m.Set(x, y, gamemap.MakeFloor())
		}
	}
}

// connectRooms links room i to room i-1, guaranteeing full connectivity.
func connectRooms(m *gamemap.Maze, cfg *Config) {
	for i := 1; i < len(m.Rooms); i++ {
		x1, y1 := m.Rooms[i-1].Center()
		x2, y2 := m.Rooms[i].Center()
		carveCorridor(m, x1, y1, x2, y2, cfg)
	}
}

// addLoops carves roomCount/2 extra corridors between random room pairs so
// the maze has cycles instead of a single path.
func addLoops(m *gamemap.Maze, cfg *Config) {
	extra := len(m.Rooms) / 2
	for i := 0; i < extra; i++ {
		a := cfg.Rand.Intn(len(m.Rooms))
		b := cfg.Rand.Intn(len(m.Rooms))
		if a == b {
			continue
		}
		x1, y1 := m.Rooms[a].Center()
		x2, y2 := m.Rooms[b].Center()
		carveCorridor(m, x1, y1, x2, y2, cfg)
	}
}

// selectStartExit picks the room pair with the greatest center distance.
// If even the best pair is closer than 40% of the map diagonal, it falls back
// to corner bias: start nearest the top-left corner, exit nearest the
// bottom-right corner (excluding the start room).
func selectStartExit(m *gamemap.Maze) {
	diagonal := math.Hypot(float64(m.Width), float64(m.Height))
	minSeparation := 0.4 * diagonal

	bestDist := -1.0
	var bestA, bestB int
	for i := 0; i < len(m.Rooms); i++ {
		for j := i + 1; j < len(m.Rooms); j++ {
			d := roomDistance(m.Rooms[i], m.Rooms[j])
			if d > bestDist {
				bestDist = d
				bestA, bestB = i, j
			}
		}
	}

	if bestDist >= minSeparation {
		m.Start = m.Rooms[bestA]
		m.Exit = m.Rooms[bestB]
		return
	}

	startIdx := nearestToCorner(m.Rooms, 0, 0, -1)
	exitIdx := nearestToCorner(m.Rooms, m.Width-1, m.Height-1, startIdx)
	m.Start = m.Rooms[startIdx]
	m.Exit = m.Rooms[exitIdx]
}

func roomDistance(a, b gamemap.Room) float64 {
	ax, ay := a.Center()
	bx, by := b.Center()
	return math.Hypot(float64(ax-bx), float64(ay-by))
}

// nearestToCorner returns the index of the room whose center is closest to
// (cx, cy), skipping the exclude index.
func nearestToCorner(rooms []gamemap.Room, cx, cy, exclude int) int {
	best := -1
	bestDist := math.MaxFloat64
	for i, r := range rooms {
		if i == exclude {
			continue
		}
		x, y := r.Center()
		d := math.Hypot(float64(x-cx), float64(y-cy))
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
