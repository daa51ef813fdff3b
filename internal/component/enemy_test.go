package component

import (
	"testing"

	"lastlight/internal/config"
	"lastlight/internal/gamemap"
)

func TestEnemyVariantPayloads(t *testing.T) {
	pos := gamemap.Vec2{X: 100, Y: 100}

	c := NewChaser(1, pos, 1, 1)
	if c.Kind != KindChaser || c.Chaser == nil || c.Spitter != nil || c.Brood != nil {
		t.Error("chaser must carry exactly the chaser payload")
	}
	s := NewSpitter(2, pos, 1)
	if s.Kind != KindSpitter || s.Spitter == nil || s.Chaser != nil || s.Brood != nil {
		t.Error("spitter must carry exactly the spitter payload")
	}
	b := NewBroodmother(3, pos, 1)
	if b.Kind != KindBroodmother || b.Brood == nil || b.Chaser != nil || b.Spitter != nil {
		t.Error("broodmother must carry exactly the brood payload")
	}
	if s.Speed != 0 || b.Speed != 0 {
		t.Error("spitter and broodmother are stationary")
	}
}

func TestScalingMultipliers(t *testing.T) {
	c := NewChaser(1, gamemap.Vec2{}, 2.0, 1.5)
	if c.HP != config.ChaserHP*2 || c.MaxHP != config.ChaserHP*2 {
		t.Errorf("HP = %v, want %v", c.HP, config.ChaserHP*2)
	}
	if c.Speed != config.ChaserSpeed*1.5 {
		t.Errorf("Speed = %v, want %v", c.Speed, config.ChaserSpeed*1.5)
	}
}

func TestApplyDamage(t *testing.T) {
	c := NewChaser(1, gamemap.Vec2{}, 1, 1)
	if killed := c.ApplyDamage(c.MaxHP / 2); killed {
		t.Fatal("half damage should not kill")
	}
	if c.FlashTime <= 0 {
		t.Error("damage must start the hit flash")
	}
	if !c.ApplyDamage(c.MaxHP) {
		t.Fatal("lethal damage must report a kill")
	}
	if c.Alive {
		t.Fatal("killed enemy still alive")
	}
	if c.ApplyDamage(10) {
		t.Fatal("dead enemy must not be killed again")
	}
}

func TestKillPoints(t *testing.T) {
	cases := []struct {
		e    *Enemy
		want int
	}{
		{NewChaser(1, gamemap.Vec2{}, 1, 1), config.PointsChaser},
		{NewSpitter(2, gamemap.Vec2{}, 1), config.PointsSpitter},
		{NewBroodmother(3, gamemap.Vec2{}, 1), config.PointsBroodmother},
	}
	for _, c := range cases {
		if got := c.e.Points(); got != c.want {
			t.Errorf("%v points = %d, want %d", c.e.Kind, got, c.want)
		}
	}
}
