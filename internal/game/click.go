package game

import (
	"context"
	"math"
	"time"

	"clickstudio/internal/catalog"
	"clickstudio/internal/order"
	"clickstudio/internal/player"
	"clickstudio/internal/stats"
	"clickstudio/internal/telemetry"
)

// ClickResult reports one unit of work applied to the active order
type ClickResult struct {
	Value    int64   `json:"value"`
	Crit     bool    `json:"crit"`
	ComboMul float64 `json:"comboMul"`

	Progress int64 `json:"progress"`
	Required int64 `json:"required"`

	Finished *FinishResult `json:"finished,omitempty"`
	Event    *EventOutcome `json:"event,omitempty"`

	Unlocked []catalog.AchievementDef `json:"unlocked,omitempty"`
}

// FinishResult reports the payout of a completed order
type FinishResult struct {
	TemplateCode string `json:"templateCode"`
	Reward       int64  `json:"reward"`
	XP           int64  `json:"xp"`
	HighTier     bool   `json:"highTier"`
	Rush         bool   `json:"rush"`
	LevelsGained int    `json:"levelsGained"`
	SkillChoices int    `json:"skillChoices"`
}

// Click applies one click of work to the active order. The admission check
// runs before anything is touched; a rejected click mutates nothing.
func (e *Engine) Click(ctx context.Context, playerID string) (*ClickResult, error) {
	var result *ClickResult
	err := e.withPlayer(ctx, playerID, func(p *player.Player, d *stats.Derived, now time.Time, up Upkeep) error {
		limit := e.Balance.BaseClickLimit + d.ClickCapBonus
		if limit > e.Balance.MaxClickLimit {
			limit = e.Balance.MaxClickLimit
		}
		if !e.limiter.Allow(playerID, now, limit) {
			telemetry.Metrics().ObserveRateLimited()
			return ErrRateLimited
		}

		if p.ActiveOrder == nil {
			return ErrNoActiveOrder
		}

		comboMul := e.bumpCombo(playerID, now, d.ComboStep, d.ComboCap)
		value := d.Power
		crit := d.CritChance > 0 && e.rollFloat() < d.CritChance
		if crit {
			value = int64(math.Round(float64(value) * d.CritMultiplier))
		}
		if comboMul > 1 {
			value = int64(math.Round(float64(value) * comboMul))
		}
		if value < 1 {
			value = 1
		}

		p.Counters.TotalClicks++

		ao := p.ActiveOrder
		ao.Progress += value
		if ao.Progress > ao.Required {
			ao.Progress = ao.Required
		}

		result = &ClickResult{
			Value:    value,
			Crit:     crit,
			ComboMul: comboMul,
			Progress: ao.Progress,
			Required: ao.Required,
		}
		outcome := "work"

		if ao.Progress >= ao.Required {
			result.Finished = e.finishOrder(p, d, now)
			result.Event = e.rollEvent(p, d, now, e.Balance.EventOrderProb)
			result.Progress = 0
			result.Required = 0
			outcome = "finish"
		} else if e.Balance.EventClickInterval > 0 &&
			p.Counters.TotalClicks%int64(e.Balance.EventClickInterval) == 0 {
			result.Event = e.rollEvent(p, d, now, e.Balance.EventClickProb)
		}

		telemetry.Metrics().ObserveClick(outcome)
		result.Unlocked = e.checkAchievements(p)
		return nil
	})
	return result, err
}

// finishOrder pays out and clears the active order. The reward multiplier
// was snapshotted at acceptance; high-tier and rush bonuses read the stat
// bundle fresh.
func (e *Engine) finishOrder(p *player.Player, d *stats.Derived, now time.Time) *FinishResult {
	ao := p.ActiveOrder
	tpl, _ := e.Catalog.Order(ao.TemplateCode)

	payout := order.FinishPayout(ao.Required, ao.SnapshotMul, tpl, *d, now.Sub(ao.AcceptedAt), e.Balance)

	p.Credit(payout.Reward)
	oldLevel := p.Level
	gained := p.GainXP(payout.XP)
	choices := e.awardSkillChoices(p, oldLevel, gained)
	p.Counters.OrdersFinished++
	p.ActiveOrder = nil

	e.journal(telemetry.NewEntry(p.ID, telemetry.EntryOrderFinish, payout.Reward,
		telemetry.Metadata{"template": ao.TemplateCode, "xp": payout.XP}, now))
	telemetry.Metrics().ObserveOrderFinished(ao.TemplateCode)
	telemetry.Metrics().ObserveMoneyEarned(string(telemetry.EntryOrderFinish), payout.Reward)
	e.logJSON("order_finished", map[string]any{
		"player":   p.ID,
		"template": ao.TemplateCode,
		"reward":   payout.Reward,
		"xp":       payout.XP,
	})

	return &FinishResult{
		TemplateCode: ao.TemplateCode,
		Reward:       payout.Reward,
		XP:           payout.XP,
		HighTier:     payout.HighTier,
		Rush:         payout.Rush,
		LevelsGained: gained,
		SkillChoices: choices,
	}
}

// bumpCombo advances the session streak and returns the click multiplier.
// An idle gap past the reset window starts the streak over.
func (e *Engine) bumpCombo(playerID string, now time.Time, step, ceiling float64) float64 {
	if step <= 0 || ceiling <= 1 {
		return 1
	}

	e.combosMu.Lock()
	defer e.combosMu.Unlock()

	cs, ok := e.combos[playerID]
	if !ok {
		cs = &comboState{}
		e.combos[playerID] = cs
	}

	reset := time.Duration(e.Balance.ComboResetSeconds * float64(time.Second))
	if cs.lastClick.IsZero() || now.Sub(cs.lastClick) > reset {
		cs.bonus = 0
	} else {
		cs.bonus += step
		if cs.bonus > ceiling-1 {
			cs.bonus = ceiling - 1
		}
	}
	cs.lastClick = now
	return 1 + cs.bonus
}

// resetCombo drops the session streak, used by prestige
func (e *Engine) resetCombo(playerID string) {
	e.combosMu.Lock()
	delete(e.combos, playerID)
	e.combosMu.Unlock()
}
