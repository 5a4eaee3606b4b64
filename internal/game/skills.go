package game

import (
	"context"
	"fmt"
	"time"

	"clickstudio/internal/player"
	"clickstudio/internal/stats"
)

// SkillResult reports a spent skill choice
type SkillResult struct {
	Code         string `json:"code"`
	AlreadyOwned bool   `json:"alreadyOwned"`
	ChoicesLeft  int    `json:"choicesLeft"`
}

// ChooseSkill spends one pending skill choice on a skill. Picking a skill
// the player already owns consumes nothing.
func (e *Engine) ChooseSkill(ctx context.Context, playerID, skillCode string) (*SkillResult, error) {
	var result *SkillResult
	err := e.withPlayer(ctx, playerID, func(p *player.Player, d *stats.Derived, now time.Time, up Upkeep) error {
		def, ok := e.Catalog.Skill(skillCode)
		if !ok {
			return fmt.Errorf("skill %s: %w", skillCode, ErrUnknownSkill)
		}
		if p.Skills[def.Code] {
			result = &SkillResult{Code: def.Code, AlreadyOwned: true, ChoicesLeft: p.SkillChoices}
			return nil
		}
		if p.SkillChoices <= 0 {
			return ErrNoSkillChoice
		}
		if def.MinLevel > p.Level {
			return levelLocked(def.MinLevel)
		}

		p.Skills[def.Code] = true
		p.SkillChoices--

		e.logJSON("skill_chosen", map[string]any{"player": playerID, "skill": def.Code})
		result = &SkillResult{Code: def.Code, ChoicesLeft: p.SkillChoices}
		return nil
	})
	return result, err
}
