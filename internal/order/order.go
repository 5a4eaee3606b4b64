// Package order holds the commission lifecycle math: required effort
// scaling, acceptance-time reward snapshots, and finish payouts. The engine
// drives the lifecycle; everything here is pure.
package order

import (
	"math"
	"time"

	"clickstudio/internal/catalog"
	"clickstudio/internal/config"
	"clickstudio/internal/stats"
)

// ScaledEffort returns the level-scaled base effort of a template: every
// five player levels raise it by 15%
func ScaledEffort(baseEffort, level int) int64 {
	return int64(math.Round(float64(baseEffort) * (1 + 0.15*math.Floor(float64(level)/5))))
}

// SnapshotEffort applies the player's effort reduction to the scaled
// requirement, never dropping below one click
func SnapshotEffort(scaled int64, effortReduction float64) int64 {
	req := int64(math.Round(float64(scaled) * (1 - effortReduction)))
	if req < 1 {
		req = 1
	}
	return req
}

// RequiredEffort combines scaling and reduction for a template at
// acceptance time
func RequiredEffort(tpl catalog.OrderTemplate, level int, effortReduction float64) int64 {
	return SnapshotEffort(ScaledEffort(tpl.BaseEffort, level), effortReduction)
}

// SnapshotRewardMul fixes the reward multiplier at acceptance. trendMul is
// 1 unless the template currently holds the trend designation.
func SnapshotRewardMul(rewardMul float64, tpl catalog.OrderTemplate, trendMul float64, bal config.Balance) float64 {
	snapshot := rewardMul * tpl.RewardMultiplier()
	if tpl.Special {
		snapshot *= bal.SpecialOrderMul
	}
	if trendMul > 0 {
		snapshot *= trendMul
	}
	return snapshot
}

// FreeStartProgress returns the head start granted by a triggered free
// start: a tenth of the requirement, at least one click, never more than
// the requirement itself
func FreeStartProgress(required int64, bal config.Balance) int64 {
	progress := int64(math.Round(float64(required) * bal.FreeStartPct))
	if progress < 1 {
		progress = 1
	}
	if progress > required {
		progress = required
	}
	return progress
}

// Payout is the result of finishing an order
type Payout struct {
	Reward   int64
	XP       int64
	HighTier bool
	Rush     bool
}

// FinishPayout computes the money and XP for a completed order. The
// snapshot multiplier was fixed at acceptance; the high-tier and rush
// bonuses read the player's stats fresh at finish time.
func FinishPayout(required int64, snapshotMul float64, tpl catalog.OrderTemplate,
	d stats.Derived, elapsed time.Duration, bal config.Balance) Payout {

	reward := int64(math.Round(float64(required) * bal.RewardPerEffort * math.Max(1.0, snapshotMul)))

	out := Payout{}
	if tpl.MinLevel >= bal.HighTierMinLevel && d.HighTierRewardPct > 0 {
		reward = int64(math.Round(float64(reward) * (1 + d.HighTierRewardPct)))
		out.HighTier = true
	}
	if d.RushRewardPct > 0 && elapsed >= 0 && elapsed.Seconds() <= bal.RushWindowSeconds {
		reward = int64(math.Round(float64(reward) * (1 + d.RushRewardPct)))
		out.Rush = true
	}

	xpBase := int64(math.Round(float64(required) * bal.XPPerEffort))
	out.XP = int64(math.Round(float64(xpBase) * (1 + d.XPPct)))
	out.Reward = reward
	return out
}
