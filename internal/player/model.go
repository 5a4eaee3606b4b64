package player

import (
	"time"

	"clickstudio/internal/catalog"
	"clickstudio/internal/config"
)

// Buff is a timed modifier attached to the player by a random event
type Buff struct {
	ID        string             `json:"id"`
	Code      string             `json:"code"`
	Title     string             `json:"title"`
	ExpiresAt time.Time          `json:"expiresAt"`
	Effect    catalog.BuffEffect `json:"effect"`
}

// ActiveOrder is the commission currently in progress. The reward
// multiplier is snapshotted at acceptance and never recomputed.
type ActiveOrder struct {
	TemplateCode string    `json:"templateCode"`
	Required     int64     `json:"required"`
	Progress     int64     `json:"progress"`
	SnapshotMul  float64   `json:"snapshotMul"`
	AcceptedAt   time.Time `json:"acceptedAt"`
}

// PendingEvent parks an interactive event until the player picks a choice
type PendingEvent struct {
	EventCode string    `json:"eventCode"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// QuestProgress tracks a single quest run
type QuestProgress struct {
	Stage  string         `json:"stage"`
	Traits map[string]int `json:"traits"`
	Done   bool           `json:"done"`
}

// Counters are lifetime activity counters. They reset on prestige.
type Counters struct {
	TotalClicks    int64 `json:"totalClicks"`
	OrdersFinished int64 `json:"ordersFinished"`
	PassiveEarned  int64 `json:"passiveEarned"`
	LifetimeEarned int64 `json:"lifetimeEarned"`
	ItemsBought    int64 `json:"itemsBought"`
}

// PrestigeRecord survives resets
type PrestigeRecord struct {
	Reputation  int        `json:"reputation"`
	Resets      int        `json:"resets"`
	LastResetAt *time.Time `json:"lastResetAt,omitempty"`
}

// Player is the full aggregate of one player's owned state. Everything the
// engine mutates lives here; saves are whole-aggregate with a version check.
type Player struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	LastSeen  time.Time `json:"lastSeen"`

	Balance   int64 `json:"balance"`
	Level     int   `json:"level"`
	XP        int64 `json:"xp"`
	BasePower int   `json:"basePower"`

	// Permanent multiplier additions earned outside boosts
	PermRewardMul  float64 `json:"permRewardMul"`
	PermPassiveMul float64 `json:"permPassiveMul"`

	Counters Counters `json:"counters"`

	Boosts    map[string]int           `json:"boosts"`    // boost code -> level
	Team      map[string]int           `json:"team"`      // role code -> level
	Equipment map[catalog.Slot]string  `json:"equipment"` // slot -> equipped item code
	Items     map[string]bool          `json:"items"`     // owned item codes
	Skills    map[string]bool          `json:"skills"`
	Quests    map[string]QuestProgress `json:"quests"`

	Buffs        []Buff        `json:"buffs,omitempty"`
	ActiveOrder  *ActiveOrder  `json:"activeOrder,omitempty"`
	PendingEvent *PendingEvent `json:"pendingEvent,omitempty"`

	Achievements map[string]bool `json:"achievements"` // unlocked codes

	SkillChoices int `json:"skillChoices"` // earned, not yet spent

	Prestige PrestigeRecord `json:"prestige"`

	// Version guards optimistic saves, managed by the repository
	Version uint64 `json:"version"`
}

// New creates a fresh player with starting state from the balance preset
func New(id string, bal config.Balance, now time.Time) *Player {
	p := &Player{
		ID:           id,
		CreatedAt:    now,
		LastSeen:     now,
		Balance:      bal.StartBalance,
		Level:        bal.StartLevel,
		BasePower:    bal.StartPower,
		Boosts:       map[string]int{},
		Team:         map[string]int{},
		Equipment:    map[catalog.Slot]string{},
		Items:        map[string]bool{},
		Skills:       map[string]bool{},
		Quests:       map[string]QuestProgress{},
		Achievements: map[string]bool{},
	}
	for _, slot := range catalog.Slots {
		p.Equipment[slot] = ""
	}
	return p
}

// XPToLevel returns the XP threshold to clear the given level
func XPToLevel(level int) int64 {
	return int64(100 * level * level)
}

// GainXP adds experience and consumes level thresholds, returning how many
// levels were gained
func (p *Player) GainXP(xp int64) int {
	if xp <= 0 {
		return 0
	}
	p.XP += xp
	gained := 0
	for p.XP >= XPToLevel(p.Level) {
		p.XP -= XPToLevel(p.Level)
		p.Level++
		gained++
	}
	return gained
}

// LoseXP removes experience without ever dropping a level
func (p *Player) LoseXP(xp int64) {
	if xp <= 0 {
		return
	}
	p.XP -= xp
	if p.XP < 0 {
		p.XP = 0
	}
}

// Credit adds money to the balance and tracks lifetime earnings
func (p *Player) Credit(amount int64) {
	if amount <= 0 {
		return
	}
	p.Balance += amount
	p.Counters.LifetimeEarned += amount
}

// Debit removes money, flooring at zero
func (p *Player) Debit(amount int64) {
	if amount <= 0 {
		return
	}
	p.Balance -= amount
	if p.Balance < 0 {
		p.Balance = 0
	}
}

// PruneBuffs drops expired buffs, returning how many were removed
func (p *Player) PruneBuffs(now time.Time) int {
	if len(p.Buffs) == 0 {
		return 0
	}
	kept := p.Buffs[:0]
	removed := 0
	for _, b := range p.Buffs {
		if b.ExpiresAt.After(now) {
			kept = append(kept, b)
		} else {
			removed++
		}
	}
	p.Buffs = kept
	if len(p.Buffs) == 0 {
		p.Buffs = nil
	}
	return removed
}

// BoostLevel returns the owned level of a boost, zero if not owned
func (p *Player) BoostLevel(code string) int {
	return p.Boosts[code]
}

// normalize repairs nil maps after decoding
func (p *Player) normalize() {
	if p.Boosts == nil {
		p.Boosts = map[string]int{}
	}
	if p.Team == nil {
		p.Team = map[string]int{}
	}
	if p.Equipment == nil {
		p.Equipment = map[catalog.Slot]string{}
	}
	for _, slot := range catalog.Slots {
		if _, ok := p.Equipment[slot]; !ok {
			p.Equipment[slot] = ""
		}
	}
	if p.Items == nil {
		p.Items = map[string]bool{}
	}
	if p.Skills == nil {
		p.Skills = map[string]bool{}
	}
	if p.Quests == nil {
		p.Quests = map[string]QuestProgress{}
	}
	if p.Achievements == nil {
		p.Achievements = map[string]bool{}
	}
}
