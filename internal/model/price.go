package model

// PriceTable maps item ids to their current mock market price. LastUpdated is
// the unix-millisecond timestamp of the last drift step and the base for
// elapsed-time credit on the next one. No price history is kept; the walk only
// exists as the latest value.
type PriceTable struct {
	Prices      map[string]float64 `json:"prices"`
	LastUpdated int64              `json:"lastUpdated"`
}
