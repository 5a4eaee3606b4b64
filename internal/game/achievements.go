package game

import (
	"clickstudio/internal/catalog"
	"clickstudio/internal/player"
)

// checkAchievements unlocks every achievement whose trigger counter crossed
// its threshold and returns the newly unlocked definitions. Unlocked codes
// survive prestige; the counters behind them do not.
func (e *Engine) checkAchievements(p *player.Player) []catalog.AchievementDef {
	var unlocked []catalog.AchievementDef
	for _, def := range e.Catalog.Achievements {
		if p.Achievements[def.Code] {
			continue
		}
		if achievementProgress(p, def.Trigger) < def.Threshold {
			continue
		}
		p.Achievements[def.Code] = true
		unlocked = append(unlocked, def)
		e.logJSON("achievement_unlocked", map[string]any{"player": p.ID, "achievement": def.Code})
	}
	return unlocked
}

func achievementProgress(p *player.Player, trigger string) int64 {
	switch trigger {
	case "clicks":
		return p.Counters.TotalClicks
	case "orders":
		return p.Counters.OrdersFinished
	case "level":
		return int64(p.Level)
	case "balance":
		return p.Balance
	case "passive_income":
		return p.Counters.PassiveEarned
	case "team":
		total := 0
		for _, lvl := range p.Team {
			total += lvl
		}
		return int64(total)
	case "items":
		count := 0
		for _, owned := range p.Items {
			if owned {
				count++
			}
		}
		return int64(count)
	default:
		return 0
	}
}
