package util

import (
	"math/rand"

	"quakerfm.dev/market-next/internal/model"
	"quakerfm.dev/market-next/internal/pkg/mkterr"
)

// PickWeighted returns the id of one entry chosen with probability
// weight/total, drawing from rng. A table whose weights all sum to zero
// deterministically yields the first entry, which also breaks exact-boundary
// ties in favor of earlier entries.
func PickWeighted(entries []model.DropEntry, rng *rand.Rand) (string, error) {
	if len(entries) == 0 {
		return "", mkterr.ErrInvalidConfiguration.Msg("cannot pick from an empty drop table")
	}

	total := 0
	for _, e := range entries {
		total += e.Weight
	}
	if total == 0 {
		return entries[0].ID, nil
	}

	r := rng.Float64() * float64(total)
	for _, e := range entries {
		r -= float64(e.Weight)
		if r <= 0 {
			return e.ID, nil
		}
	}

	// float rounding can leave a sliver above zero after the last subtraction
	return entries[len(entries)-1].ID, nil
}
