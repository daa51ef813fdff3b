package gamemap

import "testing"

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIsWalkable(t *testing.T) {
	m := New(5, 5)
	// all walls initially
	if m.IsWalkable(2, 2) {
		t.Error("wall tile should not be walkable")
	}
	m.Set(2, 2, MakeFloor())
	if !m.IsWalkable(2, 2) {
		t.Error("floor tile should be walkable")
	}
	// out of bounds
	if m.IsWalkable(-1, 0) {
		t.Error("out-of-bounds should not be walkable")
	}
}

func TestRoomCenter(t *testing.T) {
	r := Room{X1: 0, Y1: 0, X2: 4, Y2: 4}
	cx, cy := r.Center()
	if cx != 2 || cy != 2 {
		t.Errorf("expected center (2,2), got (%d,%d)", cx, cy)
	}
}

func TestRoomIntersects(t *testing.T) {
	a := Room{0, 0, 4, 4}
	b := Room{3, 3, 7, 7}
	c := Room{5, 5, 9, 9}
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c should not intersect")
	}
	// Padding makes a and c touch.
	if !a.Expand(1).Intersects(c) {
		t.Error("a expanded by 1 should intersect c")
	}
}

func TestCoordRoundTrip(t *testing.T) {
	for _, tile := range [][2]int{{0, 0}, {3, 7}, {24, 24}, {59, 1}} {
		p := TileCenter(tile[0], tile[1])
		tx, ty := WorldToTile(p)
		if tx != tile[0] || ty != tile[1] {
			t.Errorf("TileCenter(%d,%d)=%v maps back to (%d,%d)", tile[0], tile[1], p, tx, ty)
		}
	}
}

func TestWorldToTileEdges(t *testing.T) {
	cases := []struct {
		p      Vec2
		tx, ty int
	}{
		{Vec2{0, 0}, 0, 0},
		{Vec2{39.9, 39.9}, 0, 0},
		{Vec2{40, 40}, 1, 1},
		{Vec2{-0.1, 5}, -1, 0},
	}
	for _, c := range cases {
		tx, ty := WorldToTile(c.p)
		if tx != c.tx || ty != c.ty {
			t.Errorf("WorldToTile(%v)=(%d,%d), want (%d,%d)", c.p, tx, ty, c.tx, c.ty)
		}
	}
}

func TestNormalizedZeroVector(t *testing.T) {
	v := Vec2{}.Normalized()
	if v.X != 0 || v.Y != 0 {
		t.Errorf("Normalized zero vector = %v, want zero", v)
	}
}

func TestLineOfSight(t *testing.T) {
	// 7x3 map: open corridor with one wall column in the middle of the top row.
	m := New(7, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 7; x++ {
			m.Set(x, y, MakeFloor())
		}
	}
	a := TileCenter(0, 0)
	b := TileCenter(6, 0)

	if !LineOfSight(m, a, b) {
		t.Fatal("clear corridor should have line of sight")
	}

	m.Set(3, 0, MakeWall())
	if LineOfSight(m, a, b) {
		t.Fatal("wall between endpoints should block line of sight")
	}

	// A detour row below the wall is irrelevant; rays are straight.
	if !LineOfSight(m, a, TileCenter(2, 0)) {
		t.Fatal("segment short of the wall should still pass")
	}

	// Degenerate zero-length ray.
	if !LineOfSight(m, a, a) {
		t.Fatal("zero-distance ray should always pass")
	}
}
