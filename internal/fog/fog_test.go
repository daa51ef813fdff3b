package fog

import (
	"math"
	"testing"

	"lastlight/internal/config"
	"lastlight/internal/gamemap"
)

// openMaze returns an all-floor maze of the given tile dimensions.
func openMaze(w, h int) *gamemap.Maze {
	m := gamemap.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, gamemap.MakeFloor())
		}
	}
	return m
}

// farCorner is a position well outside any torch radius of the origin area.
func farCorner(m *gamemap.Maze) gamemap.Vec2 {
	return gamemap.TileCenter(m.Width-1, m.Height-1)
}

func TestFogMonotonicity(t *testing.T) {
	m := openMaze(40, 40)
	e := NewEngine(m)

	near := gamemap.TileCenter(2, 2)
	e.Update(0.1, near)
	if v := e.VisibilityAt(2, 2); v != 1 {
		t.Fatalf("tile under torch: visibility=%v, want 1", v)
	}

	// Walk away and let half the creep duration pass.
	e.Update(config.FogCreepDuration/2, farCorner(m))
	if v := e.VisibilityAt(2, 2); v <= 0 || v >= 1 {
		t.Fatalf("half-faded visibility=%v, want strictly in (0,1)", v)
	}

	// The full duration later the tile is dark but remembered.
	e.Update(config.FogCreepDuration/2, farCorner(m))
	if v := e.VisibilityAt(2, 2); v != 0 {
		t.Fatalf("fully faded visibility=%v, want 0", v)
	}
	if e.IsTileVisible(2, 2) {
		t.Fatal("fully faded tile should not read as visible")
	}

	// Clamping: repeated updates never push visibility outside [0,1].
	for i := 0; i < 10; i++ {
		e.Update(5, farCorner(m))
		if v := e.VisibilityAt(2, 2); v < 0 || v > 1 {
			t.Fatalf("visibility %v outside [0,1]", v)
		}
	}
}

func TestNeverSeenStaysDark(t *testing.T) {
	m := openMaze(40, 40)
	e := NewEngine(m)
	e.Update(0.1, gamemap.TileCenter(2, 2))
	if v := e.VisibilityAt(30, 30); v != 0 {
		t.Fatalf("never-seen tile visibility=%v, want 0", v)
	}
}

func TestPermanentLightIdempotence(t *testing.T) {
	m := openMaze(40, 40)
	e := NewEngine(m)

	lanternAt := gamemap.TileCenter(5, 5)
	e.AddLantern(lanternAt)
	e.Update(0.1, farCorner(m))

	for i := 0; i < 20; i++ {
		e.Update(30, farCorner(m))
		if v := e.VisibilityAt(5, 5); v != 1 {
			t.Fatalf("permanently lit tile visibility=%v after %d long ticks, want 1", v, i+1)
		}
	}
}

func TestTorchRadiusUpgrade(t *testing.T) {
	m := openMaze(40, 40)
	e := NewEngine(m)
	base := e.EffectiveTorchRadius()
	e.TorchMult = 1.5
	if got := e.EffectiveTorchRadius(); math.Abs(got-base*1.5) > 1e-9 {
		t.Errorf("EffectiveTorchRadius=%v, want %v", got, base*1.5)
	}
}

func TestFlareLandsAtTarget(t *testing.T) {
	m := openMaze(60, 60)
	e := NewEngine(m)

	from := gamemap.TileCenter(10, 10)
	aim := from.Add(gamemap.Vec2{X: 100}) // overshoot rule: flies max(400, 300)
	e.ThrowFlare(from, aim)

	for i := 0; i < 200 && len(e.Flares()) > 0; i++ {
		e.Update(config.FixedDt, from)
	}
	if len(e.Flares()) != 0 {
		t.Fatal("flare never landed")
	}

	want := from.Add(gamemap.Vec2{X: config.FlareMinDistance})
	found := false
	for _, l := range e.Lights() {
		if l.Permanent && l.Pos.Dist(want) < 2*config.FlareSpeed*config.FixedDt {
			found = true
		}
	}
	if !found {
		t.Fatalf("no permanent light near expected landing %v; lights=%v", want, e.Lights())
	}
}

func TestFlareClampsAtBoundary(t *testing.T) {
	m := openMaze(25, 25) // 1000x1000 world
	e := NewEngine(m)

	from := gamemap.TileCenter(23, 12)
	aim := from.Add(gamemap.Vec2{X: 500}) // target far outside the map
	e.ThrowFlare(from, aim)

	for i := 0; i < 200 && len(e.Flares()) > 0; i++ {
		e.Update(config.FixedDt, from)
	}
	if len(e.Flares()) != 0 {
		t.Fatal("flare never landed")
	}

	worldW := float64(m.Width) * gamemap.TileSize
	landed := e.Lights()[len(e.Lights())-1]
	if landed.Pos.X >= worldW || landed.Pos.X < worldW-config.FlareSpeed*config.FixedDt-1 {
		t.Fatalf("flare landed at X=%v, want clamped just inside %v", landed.Pos.X, worldW)
	}
}

func TestLureAttractionLifecycle(t *testing.T) {
	m := openMaze(40, 40)
	e := NewEngine(m)

	if _, ok := e.AttractionPoint(); ok {
		t.Fatal("no lure placed yet, attraction point should be absent")
	}

	lureAt := gamemap.TileCenter(8, 8)
	e.DropLure(lureAt)
	e.Update(0.1, farCorner(m))

	p, ok := e.AttractionPoint()
	if !ok || p != lureAt {
		t.Fatalf("attraction point = %v/%v, want %v", p, ok, lureAt)
	}

	e.Update(config.LureDuration+1, farCorner(m))
	if _, ok := e.AttractionPoint(); ok {
		t.Fatal("expired lure should clear the attraction point")
	}
}
