// Package atb converts between the single battle intensity setting and the
// four per-role weekly battle chances used by Against the Bot contracts.
package atb

import "math"

// MinimumIntensity is the lowest intensity that still generates battles
const MinimumIntensity = 0.01

// MaximumIntensity caps the derived intensity
const MaximumIntensity = 100.0

// calibration holds the per-role constants in Fighting, Defence, Scouting,
// Training order. k drives the chance to intensity curve; c and d drive
// the inverse. The values are fixed for compatibility with saved campaigns.
var calibration = [4]struct {
	k    float64
	c, d float64
}{
	{k: 3, c: 4, d: 6},
	{k: 8, c: 2, d: 8},
	{k: 4.0 / 3.0, c: 6, d: 4},
	{k: 18, c: 1, d: 9},
}

// BattleIntensity derives the intensity shown to the user from the four
// battle chances (percent, 0 to 100). The result is rounded to one decimal.
func BattleIntensity(chances [4]int) float64 {
	var intensity float64
	for i, chance := range chances {
		x := float64(chance)
		intensity += (-calibration[i].k / 2) * (2*x - 1) / (2*x - 201)
	}
	intensity /= 4

	// a zero chance contributes a tiny negative amount
	if intensity < 0 {
		intensity = 0
	}
	if intensity > MaximumIntensity {
		intensity = MaximumIntensity
	}
	return math.Round(intensity*10) / 10
}

// BattleChances derives the four battle chances from an intensity.
// Intensities below MinimumIntensity disable battles entirely.
func BattleChances(intensity float64) [4]int {
	var chances [4]int
	if intensity < MinimumIntensity {
		return chances
	}
	for i, cal := range calibration {
		v := math.Round(100 * intensity * cal.c / (cal.c*intensity + cal.d))
		chances[i] = int(math.Min(v, 100))
	}
	return chances
}
