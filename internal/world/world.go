// Package world holds cross-player global state. Today that is a single
// designation: the trending order template, which multiplies reward
// snapshots for everyone until it expires.
package world

import (
	"math/rand"
	"time"

	"clickstudio/internal/catalog"
	"clickstudio/internal/config"
)

// Trend marks one order template as trending
type Trend struct {
	OrderCode  string    `json:"orderCode"`
	RewardMul  float64   `json:"rewardMul"`
	ValidUntil time.Time `json:"validUntil"`
}

// Active reports whether the trend still applies
func (t Trend) Active(now time.Time) bool {
	return t.OrderCode != "" && t.ValidUntil.After(now)
}

// RollTrend picks a fresh trending template: special templates never
// trend, and the current trend is excluded so a roll always changes
// something. Returns false when no template qualifies.
func RollTrend(cat *catalog.Catalog, current Trend, bal config.Balance, now time.Time, rng *rand.Rand) (Trend, bool) {
	var candidates []catalog.OrderTemplate
	for _, tpl := range cat.Orders {
		if tpl.Special || tpl.Code == current.OrderCode {
			continue
		}
		candidates = append(candidates, tpl)
	}
	if len(candidates) == 0 {
		return Trend{}, false
	}

	pick := candidates[rng.Intn(len(candidates))]
	return Trend{
		OrderCode:  pick.Code,
		RewardMul:  bal.TrendRewardMul,
		ValidUntil: now.Add(time.Duration(bal.TrendDurationHours * float64(time.Hour))),
	}, true
}
