package game

import (
	"context"
	"fmt"
	"time"

	"clickstudio/internal/catalog"
	"clickstudio/internal/player"
	"clickstudio/internal/quest"
	"clickstudio/internal/stats"
	"clickstudio/internal/telemetry"
)

// QuestResult wraps the quest step outcome with engine-level additions
type QuestResult struct {
	quest.Result
	SkillChoices int                      `json:"skillChoices,omitempty"`
	Unlocked     []catalog.AchievementDef `json:"unlocked,omitempty"`
}

// StartQuest begins or resumes a quest and returns the current stage
func (e *Engine) StartQuest(ctx context.Context, playerID, questCode string) (*quest.View, error) {
	var view quest.View
	err := e.withPlayer(ctx, playerID, func(p *player.Player, d *stats.Derived, now time.Time, up Upkeep) error {
		def, ok := e.Catalog.Quest(questCode)
		if !ok {
			return fmt.Errorf("quest %s: %w", questCode, ErrUnknownQuest)
		}
		if def.MinLevel > p.Level {
			return levelLocked(def.MinLevel)
		}
		v, err := quest.Begin(def, p)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ChooseQuestOption applies the picked option at the current quest stage.
// Reaching the finale pays the dominant-trait reward.
func (e *Engine) ChooseQuestOption(ctx context.Context, playerID, questCode, choiceText string) (*QuestResult, error) {
	var result *QuestResult
	err := e.withPlayer(ctx, playerID, func(p *player.Player, d *stats.Derived, now time.Time, up Upkeep) error {
		def, ok := e.Catalog.Quest(questCode)
		if !ok {
			return fmt.Errorf("quest %s: %w", questCode, ErrUnknownQuest)
		}
		if def.MinLevel > p.Level {
			return levelLocked(def.MinLevel)
		}

		oldLevel := p.Level
		res, err := quest.Choose(def, p, choiceText, d.XPPct)
		if err != nil {
			return err
		}
		result = &QuestResult{Result: res}

		if res.Finished {
			result.SkillChoices = e.awardSkillChoices(p, oldLevel, res.LevelsGained)
			e.journal(telemetry.NewEntry(playerID, telemetry.EntryQuestReward, res.Money,
				telemetry.Metadata{"quest": def.Code, "reward_key": res.RewardKey, "xp": res.XP}, now))
			telemetry.Metrics().ObserveQuestFinished()
			telemetry.Metrics().ObserveMoneyEarned(string(telemetry.EntryQuestReward), res.Money)
			e.logJSON("quest_finished", map[string]any{
				"player":     playerID,
				"quest":      def.Code,
				"reward_key": res.RewardKey,
				"money":      res.Money,
			})
			result.Unlocked = e.checkAchievements(p)
		}
		return nil
	})
	return result, err
}
