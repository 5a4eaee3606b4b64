package game

import (
	"context"
	"time"

	"clickstudio/internal/player"
	"clickstudio/internal/prestige"
	"clickstudio/internal/stats"
	"clickstudio/internal/telemetry"
)

// PrestigeView previews what a reset would grant right now
type PrestigeView struct {
	Eligible       bool  `json:"eligible"`
	RequiredLevel  int   `json:"requiredLevel"`
	Gain           int   `json:"gain"`
	Reputation     int   `json:"reputation"`
	Resets         int   `json:"resets"`
	LifetimeEarned int64 `json:"lifetimeEarned"`
}

// PrestigePreview reports the reset gain without mutating anything
func (e *Engine) PrestigePreview(ctx context.Context, playerID string) (*PrestigeView, error) {
	var view *PrestigeView
	err := e.withPlayer(ctx, playerID, func(p *player.Player, d *stats.Derived, now time.Time, up Upkeep) error {
		view = &PrestigeView{
			Eligible:       p.Level >= e.Balance.PrestigeMinLevel,
			RequiredLevel:  e.Balance.PrestigeMinLevel,
			Gain:           prestige.Preview(p, e.Balance),
			Reputation:     p.Prestige.Reputation,
			Resets:         p.Prestige.Resets,
			LifetimeEarned: p.Counters.LifetimeEarned,
		}
		return nil
	})
	return view, err
}

// PrestigeReset trades the current run for permanent reputation. The level
// gate keeps early runs from throwing themselves away.
func (e *Engine) PrestigeReset(ctx context.Context, playerID string) (*PrestigeView, error) {
	var view *PrestigeView
	err := e.withPlayer(ctx, playerID, func(p *player.Player, d *stats.Derived, now time.Time, up Upkeep) error {
		if p.Level < e.Balance.PrestigeMinLevel {
			return levelLocked(e.Balance.PrestigeMinLevel)
		}

		gain := prestige.Reset(p, e.Balance, now)
		e.limiter.Reset(playerID)
		e.resetCombo(playerID)

		e.journal(telemetry.NewEntry(playerID, telemetry.EntryPrestigeReset, 0,
			telemetry.Metadata{"gain": gain, "reputation": p.Prestige.Reputation}, now))
		telemetry.Metrics().ObservePrestigeReset()
		e.logJSON("prestige_reset", map[string]any{
			"player":     playerID,
			"gain":       gain,
			"reputation": p.Prestige.Reputation,
		})

		view = &PrestigeView{
			Eligible:      false,
			RequiredLevel: e.Balance.PrestigeMinLevel,
			Gain:          gain,
			Reputation:    p.Prestige.Reputation,
			Resets:        p.Prestige.Resets,
		}
		return nil
	})
	return view, err
}
