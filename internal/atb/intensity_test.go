package atb

import (
	"math"
	"testing"
)

func TestBattleChancesDefaultIntensity(t *testing.T) {
	got := BattleChances(1.0)
	want := [4]int{40, 20, 60, 10}
	if got != want {
		t.Fatalf("BattleChances(1.0) = %v, want %v", got, want)
	}

	if i := BattleIntensity(want); i != 1.0 {
		t.Errorf("BattleIntensity(%v) = %v, want 1.0", want, i)
	}
}

func TestIntensityRoundTrip(t *testing.T) {
	for n := 1; n <= 15; n++ {
		intensity := float64(n) / 10
		chances := BattleChances(intensity)
		back := BattleIntensity(chances)
		if math.Abs(back-intensity) > 0.1+1e-9 {
			t.Errorf("intensity %.1f -> chances %v -> %.1f, outside tolerance", intensity, chances, back)
		}
	}
}

func TestBelowThresholdDisablesBattles(t *testing.T) {
	for _, intensity := range []float64{0, 0.005, -3} {
		if got := BattleChances(intensity); got != [4]int{} {
			t.Errorf("BattleChances(%v) = %v, want all zero", intensity, got)
		}
	}

	if got := BattleIntensity([4]int{}); got != 0 {
		t.Errorf("BattleIntensity(zero chances) = %v, want 0", got)
	}
}

func TestThresholdBoundary(t *testing.T) {
	chances := BattleChances(MinimumIntensity)
	for i, c := range chances {
		if c < 0 {
			t.Errorf("chance %d is negative: %d", i, c)
		}
	}
	if back := BattleIntensity(chances); math.Abs(back-MinimumIntensity) > 0.1 {
		t.Errorf("threshold round trip gave %v", back)
	}
}

func TestChanceExtremes(t *testing.T) {
	cases := [][4]int{
		{0, 0, 0, 0},
		{100, 100, 100, 100},
		{100, 0, 100, 0},
		{0, 100, 0, 100},
	}
	for _, chances := range cases {
		got := BattleIntensity(chances)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("BattleIntensity(%v) = %v", chances, got)
		}
		if got > MaximumIntensity {
			t.Errorf("BattleIntensity(%v) = %v exceeds maximum", chances, got)
		}
	}

	if got := BattleIntensity([4]int{100, 100, 100, 100}); got != MaximumIntensity {
		t.Errorf("all chances at 100 should clamp to %v, got %v", MaximumIntensity, got)
	}
}

func TestHighIntensityClampsChances(t *testing.T) {
	for _, c := range BattleChances(MaximumIntensity) {
		if c > 100 {
			t.Errorf("chance %d above 100", c)
		}
	}
}
