package recipe

import (
	"math/rand/v2"
	"time"

	"github.com/matt-dz/cookingpuppy/internal/season"
)

// Rand picks an index in [0, n). *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

var _ Rand = (*rand.Rand)(nil)

// PickRandom selects, uniformly at random, one of the recipes offered during
// the season of now. ErrNotFound is returned when none qualify. A nil r uses
// the global source.
func PickRandom(now time.Time, recipes []Recipe, r Rand) (Recipe, error) {
	current := season.Current(now)

	eligible := make([]Recipe, 0, len(recipes))
	for _, rec := range recipes {
		if season.Matches(rec.Season, current) {
			eligible = append(eligible, rec)
		}
	}
	if len(eligible) == 0 {
		return Recipe{}, ErrNotFound
	}

	var idx int
	if r == nil {
		idx = rand.IntN(len(eligible))
	} else {
		idx = r.IntN(len(eligible))
	}
	return eligible[idx], nil
}
