// ABOUTME: Generic keep-latest-by-date deduplication for redundant signals.
// ABOUTME: One reducer serves discrepancy reports and pending changes.
package engine

import (
	"sort"
	"time"

	"github.com/harperreed/lift/internal/models"
)

// DedupLatestBy collapses items sharing a key to the single item with
// the latest date. An exact date tie keeps the first-encountered item.
// The output is sorted by key so any permutation of the same input
// yields the same sequence.
func DedupLatestBy[T any](items []T, key func(T) string, date func(T) time.Time) []T {
	latest := make(map[string]T, len(items))
	for _, item := range items {
		k := key(item)
		existing, ok := latest[k]
		if !ok || date(item).After(date(existing)) {
			latest[k] = item
		}
	}

	keys := make([]string, 0, len(latest))
	for k := range latest {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, latest[k])
	}
	return out
}

// DeduplicateDiscrepancies keeps the most recent report per
// (exercise id, tier) pair.
func DeduplicateDiscrepancies(reports []models.DiscrepancyInfo) []models.DiscrepancyInfo {
	return DedupLatestBy(reports,
		func(d models.DiscrepancyInfo) string { return d.ExerciseID.String() + "|" + string(d.Tier) },
		func(d models.DiscrepancyInfo) time.Time { return d.WorkoutDate },
	)
}

// DeduplicatePendingChanges keeps the most recent proposal per
// progression key.
func DeduplicatePendingChanges(changes []*models.PendingChange) []*models.PendingChange {
	return DedupLatestBy(changes,
		func(c *models.PendingChange) string { return string(c.Key) },
		func(c *models.PendingChange) time.Time { return c.WorkoutDate },
	)
}
