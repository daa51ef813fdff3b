package game

import "testing"

func TestParTimeEndpoints(t *testing.T) {
	if got := parTime(25); got != 25 {
		t.Errorf("parTime(25) = %v, want 25", got)
	}
	if got := parTime(60); got != 54 {
		t.Errorf("parTime(60) = %v, want 54", got)
	}
}

func TestLevelSizeRange(t *testing.T) {
	if got := levelSize(1); got != 25 {
		t.Errorf("level 1 size = %d, want 25", got)
	}
	if got := levelSize(MaxScaleLevel); got != 60 {
		t.Errorf("level %d size = %d, want 60", MaxScaleLevel, got)
	}
	// Past the scaling ceiling nothing keeps growing.
	if levelSize(MaxScaleLevel+10) != 60 {
		t.Error("size must stop growing at the scaling ceiling")
	}
	for lvl := 2; lvl <= MaxScaleLevel; lvl++ {
		if levelSize(lvl) < levelSize(lvl-1) {
			t.Fatalf("size shrank from level %d to %d", lvl-1, lvl)
		}
	}
}

func TestLevelScaleMonotonic(t *testing.T) {
	prev := levelScale(1)
	if prev.HPMult != 1 || prev.SpeedMult != 1 {
		t.Errorf("level 1 multipliers = %v/%v, want 1/1", prev.HPMult, prev.SpeedMult)
	}
	for lvl := 2; lvl <= MaxScaleLevel+2; lvl++ {
		s := levelScale(lvl)
		if s.HPMult < prev.HPMult || s.SpeedMult < prev.SpeedMult ||
			s.SpawnRate < prev.SpawnRate || s.MaxAlive < prev.MaxAlive {
			t.Fatalf("difficulty dropped at level %d", lvl)
		}
		prev = s
	}
}
