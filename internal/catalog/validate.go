package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog wraps every validation failure
var ErrInvalidCatalog = errors.New("invalid catalog")

var validBoostTypes = map[BoostType]bool{
	BoostPowerAdd: true, BoostPowerPct: true, BoostReward: true,
	BoostPassive: true, BoostXP: true, BoostCrit: true,
	BoostEventProtection: true, BoostEventShield: true, BoostCombo: true,
	BoostTeamIncome: true, BoostClickCap: true, BoostEffortRelief: true,
	BoostFreeStart: true, BoostTeamDiscount: true, BoostOfflineCap: true,
	BoostRushReward: true, BoostEquipmentEff: true, BoostNightPassive: true,
	BoostShopDiscount: true, BoostHighTierReward: true,
}

var validItemBonusTypes = map[ItemBonusType]bool{
	ItemPowerPct: true, ItemPassivePct: true, ItemEffortPct: true,
	ItemRewardPct: true, ItemClickCap: true,
}

var validSlots = map[Slot]bool{
	SlotLaptop: true, SlotPhone: true, SlotTablet: true,
	SlotMonitor: true, SlotChair: true, SlotCharm: true,
}

var validEventKinds = map[EventKind]bool{
	EventBonus: true, EventPenalty: true, EventBuff: true,
}

// Validate checks catalog consistency: unique codes, sane numbers, closed
// enum values, and quest flow graphs that always reach the finale
func (c *Catalog) Validate() error {
	var errs []error

	seen := map[string]bool{}
	dup := func(kind, code string) {
		key := kind + ":" + code
		if code == "" {
			errs = append(errs, fmt.Errorf("%s with empty code", kind))
			return
		}
		if seen[key] {
			errs = append(errs, fmt.Errorf("duplicate %s code %q", kind, code))
		}
		seen[key] = true
	}

	for _, o := range c.Orders {
		dup("order", o.Code)
		if o.BaseEffort <= 0 {
			errs = append(errs, fmt.Errorf("order %s: base effort must be positive", o.Code))
		}
		if o.MinLevel < 1 {
			errs = append(errs, fmt.Errorf("order %s: min level must be at least 1", o.Code))
		}
	}

	for _, b := range c.Boosts {
		dup("boost", b.Code)
		if !validBoostTypes[b.Type] {
			errs = append(errs, fmt.Errorf("boost %s: unknown type %q", b.Code, b.Type))
		}
		if b.BaseCost <= 0 {
			errs = append(errs, fmt.Errorf("boost %s: base cost must be positive", b.Code))
		}
		if b.Growth < 1 {
			errs = append(errs, fmt.Errorf("boost %s: growth must be at least 1", b.Code))
		}
	}

	for _, t := range c.TeamRoles {
		dup("team role", t.Code)
		if t.BaseIncomePerMin <= 0 {
			errs = append(errs, fmt.Errorf("team role %s: income must be positive", t.Code))
		}
		if t.BaseCost <= 0 {
			errs = append(errs, fmt.Errorf("team role %s: base cost must be positive", t.Code))
		}
	}

	for _, it := range c.Items {
		dup("item", it.Code)
		if !validSlots[it.Slot] {
			errs = append(errs, fmt.Errorf("item %s: unknown slot %q", it.Code, it.Slot))
		}
		if !validItemBonusTypes[it.BonusType] {
			errs = append(errs, fmt.Errorf("item %s: unknown bonus type %q", it.Code, it.BonusType))
		}
		if it.Price < 0 {
			errs = append(errs, fmt.Errorf("item %s: negative price", it.Code))
		}
	}

	for _, a := range c.Achievements {
		dup("achievement", a.Code)
		if a.Threshold <= 0 {
			errs = append(errs, fmt.Errorf("achievement %s: threshold must be positive", a.Code))
		}
	}

	for _, e := range c.Events {
		dup("event", e.Code)
		if !validEventKinds[e.Kind] {
			errs = append(errs, fmt.Errorf("event %s: unknown kind %q", e.Code, e.Kind))
		}
		if e.Weight <= 0 {
			errs = append(errs, fmt.Errorf("event %s: weight must be positive", e.Code))
		}
		if e.Kind == EventBuff && !e.Interactive() {
			if e.Effect.Buff == nil || e.Effect.Buff.Zero() {
				errs = append(errs, fmt.Errorf("event %s: buff event without buff effect", e.Code))
			}
			if e.DurationSec <= 0 {
				errs = append(errs, fmt.Errorf("event %s: buff event without duration", e.Code))
			}
		}
		for i, ch := range e.Choices {
			if ch.Text == "" {
				errs = append(errs, fmt.Errorf("event %s: choice %d has empty text", e.Code, i))
			}
		}
	}

	for _, s := range c.Skills {
		dup("skill", s.Code)
		if s.Effect == (SkillEffect{}) {
			errs = append(errs, fmt.Errorf("skill %s: empty effect", s.Code))
		}
	}

	for _, q := range c.Quests {
		dup("quest", q.Code)
		errs = append(errs, c.validateQuest(q)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}
	return nil
}

func (c *Catalog) validateQuest(q QuestDef) []error {
	var errs []error

	if len(q.Stages) == 0 {
		return []error{fmt.Errorf("quest %s: no stages", q.Code)}
	}
	if len(q.Stages) != len(q.Flow) {
		errs = append(errs, fmt.Errorf("quest %s: stage order and flow disagree", q.Code))
	}

	traits := map[string]bool{}
	for _, t := range q.Traits {
		traits[t] = true
	}

	reachable := map[string]bool{q.Stages[0]: true}
	for _, name := range q.Stages {
		stage, ok := q.Flow[name]
		if !ok {
			errs = append(errs, fmt.Errorf("quest %s: stage %q missing from flow", q.Code, name))
			continue
		}
		if len(stage.Options) == 0 {
			errs = append(errs, fmt.Errorf("quest %s: stage %q has no options", q.Code, name))
		}
		for _, opt := range stage.Options {
			// An empty next means "following stage in declared order".
			next := opt.Next
			if next == "" {
				next = q.StageAfter(name)
			}
			if next != FinaleStage {
				if _, ok := q.Flow[next]; !ok {
					errs = append(errs, fmt.Errorf("quest %s: stage %q option %q points to unknown stage %q",
						q.Code, name, opt.Text, next))
				} else {
					reachable[next] = true
				}
			}
			for trait := range opt.Delta {
				if !traits[trait] {
					errs = append(errs, fmt.Errorf("quest %s: stage %q uses undeclared trait %q",
						q.Code, name, trait))
				}
			}
		}
	}
	for _, name := range q.Stages {
		if !reachable[name] {
			errs = append(errs, fmt.Errorf("quest %s: stage %q unreachable", q.Code, name))
		}
	}

	if _, ok := q.Rewards["default"]; !ok {
		errs = append(errs, fmt.Errorf("quest %s: missing default reward", q.Code))
	}
	for key, r := range q.Rewards {
		if key != "default" && !traits[key] {
			errs = append(errs, fmt.Errorf("quest %s: reward key %q is not a declared trait", q.Code, key))
		}
		if r.ItemCode != "" {
			if _, ok := c.itemIndex[r.ItemCode]; !ok {
				errs = append(errs, fmt.Errorf("quest %s: reward item %q not in catalog", q.Code, r.ItemCode))
			}
		}
	}

	return errs
}
