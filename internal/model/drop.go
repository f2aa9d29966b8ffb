package model

import (
	"quakerfm.dev/market-next/internal/pkg/mkterr"
)

// DropEntry pairs an item id with the integer weight governing its share of
// random drop odds.
type DropEntry struct {
	ID     string `json:"id"`
	Weight int    `json:"weight"`
}

// DropTable is an ordered sequence of DropEntry with unique ids. Insertion
// order is preserved for display; selection only depends on the weights.
// Table invariants are checked by Validate, not by struct tags, so that a
// malformed submitted table is always an invalid-configuration error.
type DropTable struct {
	Entries []DropEntry `json:"entries"`
}

// Validate enforces the table invariants: at least one entry, ids unique and
// non-empty, weights non-negative.
func (t *DropTable) Validate() error {
	if len(t.Entries) == 0 {
		return mkterr.ErrInvalidConfiguration.Msg("drop table must contain at least one entry")
	}
	seen := make(map[string]struct{}, len(t.Entries))
	for _, e := range t.Entries {
		if e.ID == "" {
			return mkterr.ErrInvalidConfiguration.Msg("drop entry id must not be empty")
		}
		if e.Weight < 0 {
			return mkterr.ErrInvalidConfiguration.Msg("drop entry %s has a negative weight", e.ID)
		}
		if _, ok := seen[e.ID]; ok {
			return mkterr.ErrInvalidConfiguration.Msg("duplicate drop entry id: %s", e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}
