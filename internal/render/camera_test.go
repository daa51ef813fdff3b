package render

import (
	"testing"

	"lastlight/internal/gamemap"
)

func TestCameraCentersTarget(t *testing.T) {
	p := gamemap.Vec2{X: 800, Y: 800}
	c := NewCamera(p, 80, 24)

	sx, sy, visible := c.WorldToScreen(p)
	if !visible {
		t.Fatal("center position must be on screen")
	}
	if sx < 38 || sx > 42 || sy < 10 || sy > 13 {
		t.Errorf("center drawn at (%d,%d), want near (40,12)", sx, sy)
	}
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	c := NewCamera(gamemap.Vec2{X: 500, Y: 500}, 80, 24)

	w := c.ScreenToWorld(20, 10)
	sx, sy, visible := c.WorldToScreen(w)
	if !visible {
		t.Fatal("round-tripped cell must stay on screen")
	}
	if sy != 10 {
		t.Errorf("row = %d, want 10", sy)
	}
	// Column lands on the even-aligned cell pair containing the original.
	if sx != 20 {
		t.Errorf("col = %d, want 20", sx)
	}
}

func TestOffscreenPositionsReportInvisible(t *testing.T) {
	c := NewCamera(gamemap.Vec2{X: 800, Y: 800}, 80, 24)

	cases := []gamemap.Vec2{
		{X: -5000, Y: 800},
		{X: 800, Y: -5000},
		{X: 5000, Y: 800},
		{X: 800, Y: 5000},
	}
	for _, p := range cases {
		if _, _, visible := c.WorldToScreen(p); visible {
			t.Errorf("position %v should be off screen", p)
		}
	}
}
