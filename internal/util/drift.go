package util

import (
	"math"
	"math/rand"
)

const (
	// driftMaxPct is the maximum percentage swing credited per elapsed second.
	driftMaxPct = 0.03

	// driftMinElapsed and driftMaxElapsed bound the elapsed-time credit of a
	// single drift step, capping per-call volatility.
	driftMinElapsed = 1.0
	driftMaxElapsed = 8.0

	// priceFloor is the minimum price a drift step may produce.
	priceFloor = 0.01
)

// Drift advances basePrice one step along a bounded random walk, drawing a
// uniform percentage change in [-0.03, +0.03] scaled by elapsedSeconds
// (clamped to [1, 8]). The result is floored at 0.01 and rounded to two
// decimals, half away from zero.
func Drift(basePrice, elapsedSeconds float64, rng *rand.Rand) float64 {
	elapsed := math.Min(math.Max(elapsedSeconds, driftMinElapsed), driftMaxElapsed)
	pct := (rng.Float64()*2 - 1) * driftMaxPct * elapsed

	price := basePrice * (1 + pct)
	if price < priceFloor {
		price = priceFloor
	}
	return math.Round(price*100) / 100
}
