// Package prestige converts accumulated earnings into permanent reputation
// and performs the bounded progression reset.
package prestige

import (
	"math"
	"time"

	"clickstudio/internal/catalog"
	"clickstudio/internal/config"
	"clickstudio/internal/player"
)

// Gain returns the reputation earned for resetting now: a square root of
// earnings over the tuning divisor, floored, zero for zero earnings
func Gain(lifetimeEarned int64, bal config.Balance) int {
	if lifetimeEarned <= 0 {
		return 0
	}
	return int(math.Floor(math.Sqrt(float64(lifetimeEarned) / bal.PrestigeDivisor)))
}

// Preview reports the gain a reset would grant without mutating anything
func Preview(p *player.Player, bal config.Balance) int {
	return Gain(p.Counters.LifetimeEarned, bal)
}

// Reset executes the prestige reset: reputation goes up and never down,
// transient progression returns to its starting values. Unlocked
// achievements and the prestige record itself survive; earnings tracked
// toward the next gain start from zero.
func Reset(p *player.Player, bal config.Balance, now time.Time) int {
	gain := Gain(p.Counters.LifetimeEarned, bal)
	if gain > 0 {
		p.Prestige.Reputation += gain
	}
	p.Prestige.Resets++
	p.Prestige.LastResetAt = &now

	p.Balance = bal.StartBalance
	p.BasePower = bal.StartPower
	p.Level = bal.StartLevel
	p.XP = 0
	p.PermRewardMul = 0
	p.PermPassiveMul = 0
	p.Counters = player.Counters{}
	p.SkillChoices = 0

	p.Boosts = map[string]int{}
	p.Team = map[string]int{}
	p.Items = map[string]bool{}
	p.Skills = map[string]bool{}
	p.Quests = map[string]player.QuestProgress{}
	p.Buffs = nil
	p.ActiveOrder = nil
	p.PendingEvent = nil

	p.Equipment = map[catalog.Slot]string{}
	for _, slot := range catalog.Slots {
		p.Equipment[slot] = ""
	}

	p.LastSeen = now
	return gain
}
