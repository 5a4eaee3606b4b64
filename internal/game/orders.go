package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clickstudio/internal/catalog"
	"clickstudio/internal/order"
	"clickstudio/internal/player"
	"clickstudio/internal/stats"
	"clickstudio/internal/world"
)

// OrderOffer is one template presented to the player, with effort already
// scaled to their level
type OrderOffer struct {
	Code             string `json:"code"`
	Title            string `json:"title"`
	Difficulty       string `json:"difficulty"`
	RequiredEffort   int64  `json:"requiredEffort"`
	EstimatedMinutes int    `json:"estimatedMinutes"`
	MinLevel         int    `json:"minLevel"`
	Special          bool   `json:"special"`
	Trending         bool   `json:"trending"`
}

// AcceptResult reports a freshly accepted order
type AcceptResult struct {
	TemplateCode string  `json:"templateCode"`
	Required     int64   `json:"required"`
	Progress     int64   `json:"progress"`
	SnapshotMul  float64 `json:"snapshotMul"`
	FreeStart    bool    `json:"freeStart"`
	Trending     bool    `json:"trending"`
}

// Offers draws up to n order templates the player can take right now,
// weighted by template appearance weight
func (e *Engine) Offers(ctx context.Context, playerID string, n int) ([]OrderOffer, error) {
	if n < 1 {
		n = 1
	}
	var offers []OrderOffer
	err := e.withPlayer(ctx, playerID, func(p *player.Player, d *stats.Derived, now time.Time, up Upkeep) error {
		trend := e.currentTrend(ctx, now)

		var pool []catalog.OrderTemplate
		for _, tpl := range e.Catalog.Orders {
			if tpl.MinLevel > p.Level {
				continue
			}
			pool = append(pool, tpl)
		}

		for len(pool) > 0 && len(offers) < n {
			idx := e.weightedIndex(pool)
			tpl := pool[idx]
			pool = append(pool[:idx], pool[idx+1:]...)
			offers = append(offers, OrderOffer{
				Code:             tpl.Code,
				Title:            tpl.Title,
				Difficulty:       tpl.Difficulty,
				RequiredEffort:   order.RequiredEffort(tpl, p.Level, d.EffortReduction),
				EstimatedMinutes: tpl.EstimatedMinutes,
				MinLevel:         tpl.MinLevel,
				Special:          tpl.Special,
				Trending:         trend.Active(now) && trend.OrderCode == tpl.Code,
			})
		}
		return nil
	})
	return offers, err
}

func (e *Engine) weightedIndex(pool []catalog.OrderTemplate) int {
	total := 0.0
	for _, tpl := range pool {
		total += appearanceWeight(tpl)
	}
	roll := e.rollFloat() * total
	acc := 0.0
	for i, tpl := range pool {
		acc += appearanceWeight(tpl)
		if roll < acc {
			return i
		}
	}
	return len(pool) - 1
}

func appearanceWeight(tpl catalog.OrderTemplate) float64 {
	if tpl.AppearanceWeight > 0 {
		return tpl.AppearanceWeight
	}
	return 1
}

// AcceptOrder snapshots a template into the player's active order slot
func (e *Engine) AcceptOrder(ctx context.Context, playerID, templateCode string) (*AcceptResult, error) {
	var result *AcceptResult
	err := e.withPlayer(ctx, playerID, func(p *player.Player, d *stats.Derived, now time.Time, up Upkeep) error {
		if p.ActiveOrder != nil {
			return ErrOrderAlreadyActive
		}
		tpl, ok := e.Catalog.Order(templateCode)
		if !ok {
			return fmt.Errorf("template %s: %w", templateCode, ErrUnknownOrder)
		}
		if tpl.MinLevel > p.Level {
			return levelLocked(tpl.MinLevel)
		}

		trend := e.currentTrend(ctx, now)
		trendMul := 0.0
		trending := trend.Active(now) && trend.OrderCode == tpl.Code
		if trending {
			trendMul = trend.RewardMul
		}

		required := order.RequiredEffort(tpl, p.Level, d.EffortReduction)
		snapshot := order.SnapshotRewardMul(d.RewardMul, tpl, trendMul, e.Balance)

		progress := int64(0)
		freeStart := d.FreeStartChance > 0 && e.rollFloat() < d.FreeStartChance
		if freeStart {
			progress = order.FreeStartProgress(required, e.Balance)
		}

		p.ActiveOrder = &player.ActiveOrder{
			TemplateCode: tpl.Code,
			Required:     required,
			Progress:     progress,
			SnapshotMul:  snapshot,
			AcceptedAt:   now,
		}

		e.logJSON("order_accepted", map[string]any{
			"player":   playerID,
			"template": tpl.Code,
			"required": required,
		})
		result = &AcceptResult{
			TemplateCode: tpl.Code,
			Required:     required,
			Progress:     progress,
			SnapshotMul:  snapshot,
			FreeStart:    freeStart,
			Trending:     trending,
		}
		return nil
	})
	return result, err
}

// CancelOrder abandons the active order; progress is lost
func (e *Engine) CancelOrder(ctx context.Context, playerID string) error {
	return e.withPlayer(ctx, playerID, func(p *player.Player, d *stats.Derived, now time.Time, up Upkeep) error {
		if p.ActiveOrder == nil {
			return ErrNoActiveOrder
		}
		e.logJSON("order_cancelled", map[string]any{
			"player":   playerID,
			"template": p.ActiveOrder.TemplateCode,
		})
		p.ActiveOrder = nil
		return nil
	})
}

// currentTrend reads the global trend, lazily clearing an expired one
func (e *Engine) currentTrend(ctx context.Context, now time.Time) world.Trend {
	if e.World == nil {
		return world.Trend{}
	}
	trend, found, err := e.World.GetTrend(ctx)
	if err != nil {
		e.logJSON("trend_read_error", map[string]any{"error": err.Error()})
		return world.Trend{}
	}
	if !found {
		return world.Trend{}
	}
	if !trend.Active(now) {
		if err := e.World.ClearTrend(ctx); err != nil {
			e.logJSON("trend_clear_error", map[string]any{"error": err.Error()})
		}
		return world.Trend{}
	}
	return trend
}

// RollTrend designates a fresh trending template, replacing the current one
func (e *Engine) RollTrend(ctx context.Context) (world.Trend, error) {
	now := e.now()
	current := e.currentTrend(ctx, now)

	e.rngMu.Lock()
	trend, ok := world.RollTrend(e.Catalog, current, e.Balance, now, e.rng)
	e.rngMu.Unlock()
	if !ok {
		return world.Trend{}, errors.New("no template eligible to trend")
	}
	if err := e.World.SetTrend(ctx, trend); err != nil {
		return world.Trend{}, fmt.Errorf("set trend: %w", err)
	}
	e.logJSON("trend_rolled", map[string]any{"template": trend.OrderCode})
	return trend, nil
}
