package game

import (
	"context"
	"fmt"
	"math"
	"time"

	"clickstudio/internal/catalog"
	"clickstudio/internal/player"
	"clickstudio/internal/stats"
	"clickstudio/internal/telemetry"
)

// PurchaseResult reports a completed purchase
type PurchaseResult struct {
	Code     string `json:"code"`
	Level    int    `json:"level,omitempty"`
	Cost     int64  `json:"cost"`
	Balance  int64  `json:"balance"`
	Equipped bool   `json:"equipped,omitempty"`

	Unlocked []catalog.AchievementDef `json:"unlocked,omitempty"`
}

// discounted applies a discount share to a cost, rounding to whole currency
func discounted(cost int64, discount float64) int64 {
	if discount <= 0 {
		return cost
	}
	out := int64(math.Round(float64(cost) * (1 - discount)))
	if out < 0 {
		out = 0
	}
	return out
}

// BuyBoost purchases the next level of a boost at its exponential cost,
// with the shop discount applied
func (e *Engine) BuyBoost(ctx context.Context, playerID, boostCode string) (*PurchaseResult, error) {
	var result *PurchaseResult
	err := e.withPlayer(ctx, playerID, func(p *player.Player, d *stats.Derived, now time.Time, up Upkeep) error {
		def, ok := e.Catalog.Boost(boostCode)
		if !ok {
			return fmt.Errorf("boost %s: %w", boostCode, ErrUnknownBoost)
		}
		if def.MinLevel > p.Level {
			return levelLocked(def.MinLevel)
		}

		growth := def.Growth
		if growth <= 0 {
			growth = e.Balance.BoostCostGrowth
		}
		nextLevel := p.Boosts[def.Code] + 1
		cost := discounted(stats.UpgradeCost(def.BaseCost, growth, nextLevel), d.ShopDiscount)
		if p.Balance < cost {
			return fmt.Errorf("boost %s costs %d: %w", def.Code, cost, ErrInsufficientFunds)
		}

		p.Debit(cost)
		p.Boosts[def.Code] = nextLevel

		e.journal(telemetry.NewEntry(playerID, telemetry.EntryBoostPurchase, -cost,
			telemetry.Metadata{"boost": def.Code, "level": nextLevel}, now))
		result = &PurchaseResult{
			Code:     def.Code,
			Level:    nextLevel,
			Cost:     cost,
			Balance:  p.Balance,
			Unlocked: e.checkAchievements(p),
		}
		return nil
	})
	return result, err
}

// BuyItem purchases a piece of equipment. Items granted by quests or
// achievements cannot be bought. A bought item auto-equips when its slot is
// empty.
func (e *Engine) BuyItem(ctx context.Context, playerID, itemCode string) (*PurchaseResult, error) {
	var result *PurchaseResult
	err := e.withPlayer(ctx, playerID, func(p *player.Player, d *stats.Derived, now time.Time, up Upkeep) error {
		item, ok := e.Catalog.Item(itemCode)
		if !ok {
			return fmt.Errorf("item %s: %w", itemCode, ErrUnknownItem)
		}
		if item.Obtain != "" {
			return fmt.Errorf("item %s: %w", itemCode, ErrItemNotForSale)
		}
		if p.Items[item.Code] {
			return fmt.Errorf("item %s: %w", itemCode, ErrItemAlreadyOwned)
		}
		if item.MinLevel > p.Level {
			return levelLocked(item.MinLevel)
		}

		cost := discounted(item.Price, d.ShopDiscount)
		if p.Balance < cost {
			return fmt.Errorf("item %s costs %d: %w", item.Code, cost, ErrInsufficientFunds)
		}

		p.Debit(cost)
		p.Items[item.Code] = true
		p.Counters.ItemsBought++

		equipped := false
		if p.Equipment[item.Slot] == "" {
			p.Equipment[item.Slot] = item.Code
			equipped = true
		}

		e.journal(telemetry.NewEntry(playerID, telemetry.EntryItemPurchase, -cost,
			telemetry.Metadata{"item": item.Code}, now))
		result = &PurchaseResult{
			Code:     item.Code,
			Cost:     cost,
			Balance:  p.Balance,
			Equipped: equipped,
			Unlocked: e.checkAchievements(p),
		}
		return nil
	})
	return result, err
}

// EquipItem puts an owned item into its slot, replacing whatever was there
func (e *Engine) EquipItem(ctx context.Context, playerID, itemCode string) error {
	return e.withPlayer(ctx, playerID, func(p *player.Player, d *stats.Derived, now time.Time, up Upkeep) error {
		item, ok := e.Catalog.Item(itemCode)
		if !ok {
			return fmt.Errorf("item %s: %w", itemCode, ErrUnknownItem)
		}
		if !p.Items[item.Code] {
			return fmt.Errorf("item %s: %w", itemCode, ErrNothingToEquip)
		}
		p.Equipment[item.Slot] = item.Code
		return nil
	})
}

// HireTeam hires or levels up a team role at exponential cost, with the
// team discount applied
func (e *Engine) HireTeam(ctx context.Context, playerID, roleCode string) (*PurchaseResult, error) {
	var result *PurchaseResult
	err := e.withPlayer(ctx, playerID, func(p *player.Player, d *stats.Derived, now time.Time, up Upkeep) error {
		role, ok := e.Catalog.TeamRole(roleCode)
		if !ok {
			return fmt.Errorf("role %s: %w", roleCode, ErrUnknownRole)
		}
		if role.MinLevel > p.Level {
			return levelLocked(role.MinLevel)
		}

		nextLevel := p.Team[role.Code] + 1
		cost := discounted(stats.UpgradeCost(role.BaseCost, e.Balance.TeamCostGrowth, nextLevel), d.TeamDiscount)
		if p.Balance < cost {
			return fmt.Errorf("role %s costs %d: %w", role.Code, cost, ErrInsufficientFunds)
		}

		p.Debit(cost)
		p.Team[role.Code] = nextLevel

		e.journal(telemetry.NewEntry(playerID, telemetry.EntryTeamUpgrade, -cost,
			telemetry.Metadata{"role": role.Code, "level": nextLevel}, now))
		result = &PurchaseResult{
			Code:     role.Code,
			Level:    nextLevel,
			Cost:     cost,
			Balance:  p.Balance,
			Unlocked: e.checkAchievements(p),
		}
		return nil
	})
	return result, err
}
