// ABOUTME: Fixed rep-scheme tables for the three tiers.
// ABOUTME: One table row per stage drives a single shared evaluator.
package engine

import (
	"fmt"

	"github.com/harperreed/lift/internal/models"
)

// StageScheme prescribes one stage of a tier's ladder.
type StageScheme struct {
	Sets  int
	Reps  int
	AMRAP bool // final set is as-many-reps-as-possible
}

// Label renders the scheme as "5x3" style shorthand.
func (s StageScheme) Label() string {
	if s.AMRAP {
		return fmt.Sprintf("%dx%d+", s.Sets, s.Reps)
	}
	return fmt.Sprintf("%dx%d", s.Sets, s.Reps)
}

// schemes is the fixed stage ladder per tier. T3 has a single scheme
// and no ladder to climb.
var schemes = map[models.Tier][]StageScheme{
	models.Tier1: {
		{Sets: 5, Reps: 3, AMRAP: true},
		{Sets: 6, Reps: 2, AMRAP: true},
		{Sets: 10, Reps: 1, AMRAP: true},
	},
	models.Tier2: {
		{Sets: 3, Reps: 10},
		{Sets: 3, Reps: 8},
		{Sets: 3, Reps: 6},
	},
	models.Tier3: {
		{Sets: 3, Reps: 15, AMRAP: true},
	},
}

// SchemeFor returns the prescription for a tier and stage. Unknown
// stages report false rather than guessing.
func SchemeFor(tier models.Tier, stage int) (StageScheme, bool) {
	ladder, ok := schemes[tier]
	if !ok || stage < 0 || stage >= len(ladder) {
		return StageScheme{}, false
	}
	return ladder[stage], true
}

// FinalStage returns the last stage index of a tier's ladder.
func FinalStage(tier models.Tier) int {
	return len(schemes[tier]) - 1
}
