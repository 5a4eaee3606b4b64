package catalog

import "fmt"

// BoostType identifies what a purchasable boost improves
type BoostType string

const (
	BoostPowerAdd        BoostType = "power_add"
	BoostPowerPct        BoostType = "power_pct"
	BoostReward          BoostType = "reward"
	BoostPassive         BoostType = "passive"
	BoostXP              BoostType = "xp"
	BoostCrit            BoostType = "crit"
	BoostEventProtection BoostType = "event_protection"
	BoostEventShield     BoostType = "event_shield"
	BoostCombo           BoostType = "combo"
	BoostTeamIncome      BoostType = "team_income"
	BoostClickCap        BoostType = "click_cap"
	BoostEffortRelief    BoostType = "effort_relief"
	BoostFreeStart       BoostType = "free_start"
	BoostTeamDiscount    BoostType = "team_discount"
	BoostOfflineCap      BoostType = "offline_cap"
	BoostRushReward      BoostType = "rush_reward"
	BoostEquipmentEff    BoostType = "equipment_eff"
	BoostNightPassive    BoostType = "night_passive"
	BoostShopDiscount    BoostType = "shop_discount"
	BoostHighTierReward  BoostType = "high_tier_reward"
)

// ItemBonusType identifies what an equipment item improves while equipped
type ItemBonusType string

const (
	ItemPowerPct   ItemBonusType = "power_pct"
	ItemPassivePct ItemBonusType = "passive_pct"
	ItemEffortPct  ItemBonusType = "effort_pct"
	ItemRewardPct  ItemBonusType = "reward_pct"
	ItemClickCap   ItemBonusType = "click_cap"
)

// Slot is a named equipment slot on the player
type Slot string

const (
	SlotLaptop  Slot = "laptop"
	SlotPhone   Slot = "phone"
	SlotTablet  Slot = "tablet"
	SlotMonitor Slot = "monitor"
	SlotChair   Slot = "chair"
	SlotCharm   Slot = "charm"
)

// Slots lists every equipment slot in display order
var Slots = []Slot{SlotLaptop, SlotPhone, SlotTablet, SlotMonitor, SlotChair, SlotCharm}

// EventKind classifies a random event
type EventKind string

const (
	EventBonus   EventKind = "bonus"
	EventPenalty EventKind = "penalty"
	EventBuff    EventKind = "buff"
)

// OrderTemplate defines a commission players can take on
type OrderTemplate struct {
	Code             string  `yaml:"code" json:"code"`
	Title            string  `yaml:"title" json:"title"`
	BaseEffort       int     `yaml:"base_effort" json:"base_effort"`
	MinLevel         int     `yaml:"min_level" json:"min_level"`
	Difficulty       string  `yaml:"difficulty" json:"difficulty"`
	EstimatedMinutes int     `yaml:"estimated_minutes" json:"estimated_minutes"`
	RewardMul        float64 `yaml:"reward_mul" json:"reward_mul"`
	Rarity           string  `yaml:"rarity,omitempty" json:"rarity,omitempty"`
	AppearanceWeight float64 `yaml:"appearance_weight,omitempty" json:"appearance_weight,omitempty"`
	Special          bool    `yaml:"special,omitempty" json:"special,omitempty"`
}

// RewardMultiplier returns the template multiplier, defaulting to 1
func (o OrderTemplate) RewardMultiplier() float64 {
	if o.RewardMul <= 0 {
		return 1
	}
	return o.RewardMul
}

// BoostDef defines a repeat-purchase upgrade
type BoostDef struct {
	Code      string    `yaml:"code" json:"code"`
	Name      string    `yaml:"name" json:"name"`
	Type      BoostType `yaml:"type" json:"type"`
	BaseCost  int64     `yaml:"base_cost" json:"base_cost"`
	Growth    float64   `yaml:"growth" json:"growth"`
	StepValue float64   `yaml:"step_value" json:"step_value"`
	MinLevel  int       `yaml:"min_level" json:"min_level"`

	// Extra meta carried by a few boost types
	CritMultiplier float64 `yaml:"crit_multiplier,omitempty" json:"crit_multiplier,omitempty"`
	ComboCap       float64 `yaml:"combo_cap,omitempty" json:"combo_cap,omitempty"`
}

// TeamRoleDef defines a hireable team member role
type TeamRoleDef struct {
	Code             string  `yaml:"code" json:"code"`
	Name             string  `yaml:"name" json:"name"`
	BaseIncomePerMin float64 `yaml:"base_income_per_min" json:"base_income_per_min"`
	BaseCost         int64   `yaml:"base_cost" json:"base_cost"`
	MinLevel         int     `yaml:"min_level" json:"min_level"`
}

// ItemDef defines a purchasable or granted piece of equipment
type ItemDef struct {
	Code       string        `yaml:"code" json:"code"`
	Name       string        `yaml:"name" json:"name"`
	Slot       Slot          `yaml:"slot" json:"slot"`
	Tier       int           `yaml:"tier" json:"tier"`
	BonusType  ItemBonusType `yaml:"bonus_type" json:"bonus_type"`
	BonusValue float64       `yaml:"bonus_value" json:"bonus_value"`
	Price      int64         `yaml:"price" json:"price"`
	MinLevel   int           `yaml:"min_level" json:"min_level"`
	Obtain     string        `yaml:"obtain,omitempty" json:"obtain,omitempty"` // "", "achievement" or "quest"
}

// AchievementDef defines a threshold-triggered achievement
type AchievementDef struct {
	Code        string `yaml:"code" json:"code"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Trigger     string `yaml:"trigger" json:"trigger"`
	Threshold   int64  `yaml:"threshold" json:"threshold"`
	Icon        string `yaml:"icon" json:"icon"`
}

// BuffEffect is the closed set of modifiers a timed buff can carry
type BuffEffect struct {
	PowerAdd   int     `yaml:"power_add,omitempty" json:"power_add,omitempty"`
	PowerPct   float64 `yaml:"power_pct,omitempty" json:"power_pct,omitempty"`
	RewardPct  float64 `yaml:"reward_pct,omitempty" json:"reward_pct,omitempty"`
	PassivePct float64 `yaml:"passive_pct,omitempty" json:"passive_pct,omitempty"`
	EffortPct  float64 `yaml:"effort_pct,omitempty" json:"effort_pct,omitempty"`
	XPPct      float64 `yaml:"xp_pct,omitempty" json:"xp_pct,omitempty"`
}

// Zero reports whether the effect modifies nothing
func (b BuffEffect) Zero() bool {
	return b == BuffEffect{}
}

// Negative reports whether any component of the effect hurts the player
func (b BuffEffect) Negative() bool {
	return b.PowerAdd < 0 || b.PowerPct < 0 || b.RewardPct < 0 ||
		b.PassivePct < 0 || b.EffortPct < 0 || b.XPPct < 0
}

// EventEffect is what applying an event (or one of its choices) does
type EventEffect struct {
	Money    int64   `yaml:"money,omitempty" json:"money,omitempty"`
	MoneyPct float64 `yaml:"money_pct,omitempty" json:"money_pct,omitempty"`
	XP       int64   `yaml:"xp,omitempty" json:"xp,omitempty"`
	XPPct    float64 `yaml:"xp_pct,omitempty" json:"xp_pct,omitempty"`
	Buff     *BuffEffect `yaml:"buff,omitempty" json:"buff,omitempty"`
}

// Negative reports whether any component of the effect hurts the player
func (e EventEffect) Negative() bool {
	if e.Money < 0 || e.MoneyPct < 0 || e.XP < 0 || e.XPPct < 0 {
		return true
	}
	return e.Buff != nil && e.Buff.Negative()
}

// EventChoice is one option of an interactive event
type EventChoice struct {
	Text   string      `yaml:"text" json:"text"`
	Effect EventEffect `yaml:"effect" json:"effect"`
}

// EventDef defines a random event
type EventDef struct {
	Code        string        `yaml:"code" json:"code"`
	Title       string        `yaml:"title" json:"title"`
	Kind        EventKind     `yaml:"kind" json:"kind"`
	Weight      int           `yaml:"weight" json:"weight"`
	MinLevel    int           `yaml:"min_level" json:"min_level"`
	DurationSec float64       `yaml:"duration_sec,omitempty" json:"duration_sec,omitempty"`
	Effect      EventEffect   `yaml:"effect" json:"effect"`
	Choices     []EventChoice `yaml:"choices,omitempty" json:"choices,omitempty"`
}

// Interactive reports whether the event parks a pending choice
func (e EventDef) Interactive() bool {
	return len(e.Choices) > 0
}

// Negative reports whether the event counts against event resistance
func (e EventDef) Negative() bool {
	if e.Kind == EventPenalty {
		return true
	}
	if e.Effect.Negative() {
		return true
	}
	for _, c := range e.Choices {
		if c.Effect.Negative() {
			return true
		}
	}
	return false
}

// SkillEffect is the closed set of permanent modifiers a skill grants
type SkillEffect struct {
	PowerAdd   int     `yaml:"power_add,omitempty" json:"power_add,omitempty"`
	PowerPct   float64 `yaml:"power_pct,omitempty" json:"power_pct,omitempty"`
	RewardPct  float64 `yaml:"reward_pct,omitempty" json:"reward_pct,omitempty"`
	PassivePct float64 `yaml:"passive_pct,omitempty" json:"passive_pct,omitempty"`
	EffortPct  float64 `yaml:"effort_pct,omitempty" json:"effort_pct,omitempty"`
	XPPct      float64 `yaml:"xp_pct,omitempty" json:"xp_pct,omitempty"`
}

// SkillDef defines a skill the player may pick at level milestones
type SkillDef struct {
	Code     string      `yaml:"code" json:"code"`
	Name     string      `yaml:"name" json:"name"`
	Branch   string      `yaml:"branch" json:"branch"`
	Effect   SkillEffect `yaml:"effect" json:"effect"`
	MinLevel int         `yaml:"min_level" json:"min_level"`
}

// FinaleStage is the reserved next-pointer that finishes a quest
const FinaleStage = "finale"

// QuestOption is one choice inside a quest stage
type QuestOption struct {
	Text  string         `yaml:"text" json:"text"`
	Next  string         `yaml:"next" json:"next"`
	Delta map[string]int `yaml:"delta" json:"delta"`
}

// QuestStage is a single node of a quest flow graph
type QuestStage struct {
	Text    string        `yaml:"text" json:"text"`
	Options []QuestOption `yaml:"options" json:"options"`
}

// QuestReward is the payout of one reward branch
type QuestReward struct {
	Money    int64  `yaml:"money" json:"money"`
	XP       int64  `yaml:"xp" json:"xp"`
	ItemCode string `yaml:"item_code,omitempty" json:"item_code,omitempty"`
}

// QuestDef defines a branching story quest. Stages holds an ordered list of
// stage names; the first is the entry point.
type QuestDef struct {
	Code     string                 `yaml:"code" json:"code"`
	Name     string                 `yaml:"name" json:"name"`
	MinLevel int                    `yaml:"min_level" json:"min_level"`
	Traits   []string               `yaml:"traits" json:"traits"`
	Stages   []string               `yaml:"stages" json:"stages"`
	Flow     map[string]QuestStage  `yaml:"flow" json:"flow"`
	Rewards  map[string]QuestReward `yaml:"rewards" json:"rewards"` // keyed by trait plus "default"
}

// Catalog is the immutable definition set the engine runs against
type Catalog struct {
	Orders       []OrderTemplate
	Boosts       []BoostDef
	TeamRoles    []TeamRoleDef
	Items        []ItemDef
	Achievements []AchievementDef
	Events       []EventDef
	Skills       []SkillDef
	Quests       []QuestDef

	orderIndex map[string]int
	boostIndex map[string]int
	teamIndex  map[string]int
	itemIndex  map[string]int
	eventIndex map[string]int
	skillIndex map[string]int
	questIndex map[string]int
}

// New builds and validates a catalog from raw definition slices
func New(orders []OrderTemplate, boosts []BoostDef, team []TeamRoleDef,
	items []ItemDef, achievements []AchievementDef, events []EventDef,
	skills []SkillDef, quests []QuestDef) (*Catalog, error) {

	c := &Catalog{
		Orders:       orders,
		Boosts:       boosts,
		TeamRoles:    team,
		Items:        items,
		Achievements: achievements,
		Events:       events,
		Skills:       skills,
		Quests:       quests,
	}
	c.reindex()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) reindex() {
	c.orderIndex = indexByCode(c.Orders, func(o OrderTemplate) string { return o.Code })
	c.boostIndex = indexByCode(c.Boosts, func(b BoostDef) string { return b.Code })
	c.teamIndex = indexByCode(c.TeamRoles, func(t TeamRoleDef) string { return t.Code })
	c.itemIndex = indexByCode(c.Items, func(i ItemDef) string { return i.Code })
	c.eventIndex = indexByCode(c.Events, func(e EventDef) string { return e.Code })
	c.skillIndex = indexByCode(c.Skills, func(s SkillDef) string { return s.Code })
	c.questIndex = indexByCode(c.Quests, func(q QuestDef) string { return q.Code })
}

func indexByCode[T any](defs []T, code func(T) string) map[string]int {
	idx := make(map[string]int, len(defs))
	for i, d := range defs {
		idx[code(d)] = i
	}
	return idx
}

// Order looks up an order template by code
func (c *Catalog) Order(code string) (OrderTemplate, bool) {
	i, ok := c.orderIndex[code]
	if !ok {
		return OrderTemplate{}, false
	}
	return c.Orders[i], true
}

// Boost looks up a boost definition by code
func (c *Catalog) Boost(code string) (BoostDef, bool) {
	i, ok := c.boostIndex[code]
	if !ok {
		return BoostDef{}, false
	}
	return c.Boosts[i], true
}

// TeamRole looks up a team role definition by code
func (c *Catalog) TeamRole(code string) (TeamRoleDef, bool) {
	i, ok := c.teamIndex[code]
	if !ok {
		return TeamRoleDef{}, false
	}
	return c.TeamRoles[i], true
}

// Item looks up an equipment definition by code
func (c *Catalog) Item(code string) (ItemDef, bool) {
	i, ok := c.itemIndex[code]
	if !ok {
		return ItemDef{}, false
	}
	return c.Items[i], true
}

// Event looks up an event definition by code
func (c *Catalog) Event(code string) (EventDef, bool) {
	i, ok := c.eventIndex[code]
	if !ok {
		return EventDef{}, false
	}
	return c.Events[i], true
}

// Skill looks up a skill definition by code
func (c *Catalog) Skill(code string) (SkillDef, bool) {
	i, ok := c.skillIndex[code]
	if !ok {
		return SkillDef{}, false
	}
	return c.Skills[i], true
}

// Quest looks up a quest definition by code
func (c *Catalog) Quest(code string) (QuestDef, bool) {
	i, ok := c.questIndex[code]
	if !ok {
		return QuestDef{}, false
	}
	return c.Quests[i], true
}

// BoostsOfType returns every boost definition of the given type
func (c *Catalog) BoostsOfType(t BoostType) []BoostDef {
	var out []BoostDef
	for _, b := range c.Boosts {
		if b.Type == t {
			out = append(out, b)
		}
	}
	return out
}

// ShieldBoost returns the event shield boost, if the catalog carries one
func (c *Catalog) ShieldBoost() (BoostDef, bool) {
	for _, b := range c.Boosts {
		if b.Type == BoostEventShield {
			return b, true
		}
	}
	return BoostDef{}, false
}

// EntryStage returns the entry stage name of a quest flow
func (q QuestDef) EntryStage() (string, error) {
	if len(q.Stages) == 0 {
		return "", fmt.Errorf("quest %s has no stages", q.Code)
	}
	return q.Stages[0], nil
}

// StageAfter returns the stage name following the given one in flow order,
// or FinaleStage when the given stage is the last
func (q QuestDef) StageAfter(name string) string {
	for i, s := range q.Stages {
		if s == name && i+1 < len(q.Stages) {
			return q.Stages[i+1]
		}
	}
	return FinaleStage
}
