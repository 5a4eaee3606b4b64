// Package stats derives the effective stat bundle for a player from boosts,
// equipment, active buffs, skills and prestige. Compute is pure: it never
// mutates the player and never touches storage.
package stats

import (
	"math"
	"time"

	"clickstudio/internal/catalog"
	"clickstudio/internal/config"
	"clickstudio/internal/player"
)

// Derived is the capped stat bundle every action reads from
type Derived struct {
	Power      int64   // effective click power, at least 1
	RewardMul  float64 // total reward multiplier, floored at 0
	PassiveMul float64 // total passive multiplier, floored at 0

	XPPct           float64
	PrestigePct     float64
	EffortReduction float64 // share shaved off required effort, capped

	CritChance     float64
	CritMultiplier float64

	ComboStep float64
	ComboCap  float64

	EventResistance float64 // multiplier applied to negative event weights (0..1)
	ShieldCharges   int

	TeamIncomePct   float64
	TeamDiscount    float64
	ShopDiscount    float64
	FreeStartChance float64

	ClickCapBonus   int
	OfflineCapBonus float64 // extra offline accrual seconds

	RushRewardPct     float64
	HighTierRewardPct float64
	NightPassivePct   float64
	EquipmentEffPct   float64
}

// UpgradeCost returns the price of buying level n of an exponential-cost
// upgrade (n is 1-based)
func UpgradeCost(base int64, growth float64, n int) int64 {
	levelIndex := n - 1
	if levelIndex < 0 {
		levelIndex = 0
	}
	return int64(math.Round(float64(base) * math.Pow(growth, float64(levelIndex))))
}

// CumulativePowerAdd returns the total flat power granted by an additive
// power boost at the given level: each level's step grows geometrically and
// is rounded before summing
func CumulativePowerAdd(step, growth float64, level int) int64 {
	var total int64
	for i := 0; i < level; i++ {
		total += int64(math.Round(step * math.Pow(growth, float64(i))))
	}
	return total
}

// Compute derives the stat bundle. Expired buffs are skipped, not removed;
// the engine prunes them at load time.
func Compute(p *player.Player, cat *catalog.Catalog, bal config.Balance, now time.Time) Derived {
	var (
		powerAdd        int64
		rewardAdd       float64
		passiveAdd      float64
		xpPct           float64
		effortPctBoost  float64
		clickCapBonus   int
		critChance      float64
		critMultiplier  = 1.0
		teamIncomePct   float64
		freeStartChance float64
		teamDiscount    float64
		offlineCapBonus float64
		rushRewardPct   float64
		equipmentEffPct float64
		nightPassivePct float64
		shopDiscount    float64
		highTierPct     float64
		eventReduction  float64
		comboStep       float64
		comboCap        float64
		shieldCharges   int

		powerPct, passivePct, effortPct, rewardPct float64
	)

	for code, lvl := range p.Boosts {
		if lvl <= 0 {
			continue
		}
		def, ok := cat.Boost(code)
		if !ok || def.StepValue == 0 {
			continue
		}
		if def.Type == catalog.BoostPowerAdd {
			powerAdd += CumulativePowerAdd(def.StepValue, bal.PowerAddGrowth, lvl)
			continue
		}
		value := float64(lvl) * def.StepValue
		switch def.Type {
		case catalog.BoostPowerPct:
			powerPct += value
		case catalog.BoostReward:
			rewardAdd += value
		case catalog.BoostPassive:
			passiveAdd += value
		case catalog.BoostXP:
			xpPct += value
		case catalog.BoostCrit:
			critChance += value
			if def.CritMultiplier > critMultiplier {
				critMultiplier = def.CritMultiplier
			}
		case catalog.BoostEventProtection:
			eventReduction += value
		case catalog.BoostCombo:
			comboStep += value
			if def.ComboCap > comboCap {
				comboCap = def.ComboCap
			}
		case catalog.BoostTeamIncome:
			teamIncomePct += value
		case catalog.BoostClickCap:
			clickCapBonus += int(math.Round(value))
		case catalog.BoostEffortRelief:
			effortPctBoost += value
		case catalog.BoostFreeStart:
			freeStartChance += value
		case catalog.BoostTeamDiscount:
			teamDiscount += value
		case catalog.BoostOfflineCap:
			offlineCapBonus += value
		case catalog.BoostRushReward:
			rushRewardPct += value
		case catalog.BoostEquipmentEff:
			equipmentEffPct += value
		case catalog.BoostNightPassive:
			nightPassivePct += value
		case catalog.BoostShopDiscount:
			shopDiscount += value
		case catalog.BoostHighTierReward:
			highTierPct += value
		case catalog.BoostEventShield:
			shieldCharges += lvl
		}
	}

	// Equipment bonuses, scaled by studio tuning
	equipmentMul := 1.0 + equipmentEffPct
	for _, itemCode := range p.Equipment {
		if itemCode == "" {
			continue
		}
		item, ok := cat.Item(itemCode)
		if !ok {
			continue
		}
		boosted := item.BonusValue * equipmentMul
		switch item.BonusType {
		case catalog.ItemPowerPct:
			powerPct += boosted
		case catalog.ItemPassivePct:
			passivePct += boosted
		case catalog.ItemEffortPct:
			effortPct += boosted
		case catalog.ItemRewardPct:
			rewardPct += boosted
		case catalog.ItemClickCap:
			clickCapBonus += int(math.Round(boosted))
		}
	}

	// Active buffs
	for _, b := range p.Buffs {
		if !b.ExpiresAt.After(now) {
			continue
		}
		powerAdd += int64(b.Effect.PowerAdd)
		powerPct += b.Effect.PowerPct
		rewardPct += b.Effect.RewardPct
		passivePct += b.Effect.PassivePct
		effortPct += b.Effect.EffortPct
		xpPct += b.Effect.XPPct
	}

	// Skills
	for code, owned := range p.Skills {
		if !owned {
			continue
		}
		skill, ok := cat.Skill(code)
		if !ok {
			continue
		}
		powerAdd += int64(skill.Effect.PowerAdd)
		powerPct += skill.Effect.PowerPct
		rewardPct += skill.Effect.RewardPct
		passivePct += skill.Effect.PassivePct
		effortPct += skill.Effect.EffortPct
		xpPct += skill.Effect.XPPct
	}

	// Prestige reputation feeds reward, passive and power percentages
	prestigePct := math.Max(0, float64(p.Prestige.Reputation)*bal.ReputationPct)
	rewardPct += prestigePct
	passivePct += prestigePct
	powerPct += prestigePct

	critChance = clamp(critChance, 0, bal.CritChanceCap)
	resistance := clamp(1.0-math.Min(bal.EventResistanceCap, math.Max(0, eventReduction)), 0, 1)
	effortTotal := effortPct + math.Min(bal.EffortReductionBoostCap, math.Max(0, effortPctBoost))
	effortTotal = clamp(effortTotal, 0, bal.EffortReductionTotalCap)
	teamDiscount = clamp(teamDiscount, 0, bal.TeamDiscountCap)
	shopDiscount = clamp(shopDiscount, 0, bal.ShopDiscountCap)
	freeStartChance = clamp(freeStartChance, 0, bal.FreeStartChanceCap)

	power := int64(math.Round(float64(int64(p.BasePower)+powerAdd) * (1 + powerPct)))
	if power < 1 {
		power = 1
	}

	return Derived{
		Power:             power,
		RewardMul:         math.Max(0, 1.0+p.PermRewardMul+rewardAdd+rewardPct),
		PassiveMul:        math.Max(0, 1.0+p.PermPassiveMul+passiveAdd+passivePct),
		XPPct:             math.Max(0, xpPct),
		PrestigePct:       prestigePct,
		EffortReduction:   effortTotal,
		CritChance:        critChance,
		CritMultiplier:    math.Max(1.0, critMultiplier),
		ComboStep:         math.Max(0, comboStep),
		ComboCap:          math.Max(0, comboCap),
		EventResistance:   resistance,
		ShieldCharges:     shieldCharges,
		TeamIncomePct:     math.Max(0, teamIncomePct),
		TeamDiscount:      teamDiscount,
		ShopDiscount:      shopDiscount,
		FreeStartChance:   freeStartChance,
		ClickCapBonus:     clickCapBonus,
		OfflineCapBonus:   math.Max(0, offlineCapBonus),
		RushRewardPct:     math.Max(0, rushRewardPct),
		HighTierRewardPct: math.Max(0, highTierPct),
		NightPassivePct:   math.Max(0, nightPassivePct),
		EquipmentEffPct:   math.Max(0, equipmentEffPct),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
