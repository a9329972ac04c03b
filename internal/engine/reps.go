// ABOUTME: Rep extraction from logged sets.
// ABOUTME: Warm-ups are excluded; absent rep counts become zero-rep failures.
package engine

import "github.com/harperreed/lift/internal/models"

// ExtractReps pulls the per-set rep count sequence from logged sets, in
// original order. Warm-up sets are excluded unconditionally. A set
// logged without a rep count counts as 0 reps (logged but failed).
func ExtractReps(sets []models.LoggedSet) []int {
	reps := make([]int, 0, len(sets))
	for _, s := range sets {
		if s.Type == models.SetWarmup {
			continue
		}
		if s.Reps == nil {
			reps = append(reps, 0)
			continue
		}
		reps = append(reps, *s.Reps)
	}
	return reps
}

// WorkingWeight returns the representative weight of the non-warm-up
// sets: the most frequent value, earliest-seen winning ties. Returns 0
// when no working set carries a weight.
func WorkingWeight(sets []models.LoggedSet) float64 {
	counts := map[float64]int{}
	order := []float64{}
	for _, s := range sets {
		if s.Type == models.SetWarmup || s.Weight == 0 {
			continue
		}
		if counts[s.Weight] == 0 {
			order = append(order, s.Weight)
		}
		counts[s.Weight]++
	}

	best := 0.0
	bestCount := 0
	for _, w := range order {
		if counts[w] > bestCount {
			best = w
			bestCount = counts[w]
		}
	}
	return best
}
