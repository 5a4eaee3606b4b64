// Package telemetry records the economy journal (typed earn/spend entries
// per player) and exposes Prometheus metrics for engine activity.
package telemetry

import (
	"time"

	"github.com/google/uuid"
)

// EntryType classifies a journal entry
type EntryType string

const (
	EntryOrderFinish   EntryType = "order_finish"
	EntryQuestReward   EntryType = "quest_reward"
	EntryPassiveIncome EntryType = "passive_income"
	EntryEventBonus    EntryType = "event_bonus"
	EntryEventPenalty  EntryType = "event_penalty"
	EntryEventBuff     EntryType = "event_buff"
	EntryBoostPurchase EntryType = "boost_purchase"
	EntryItemPurchase  EntryType = "item_purchase"
	EntryTeamUpgrade   EntryType = "team_upgrade"
	EntryPrestigeReset EntryType = "prestige_reset"
)

// Metadata carries entry-specific detail
type Metadata map[string]any

// Entry is one journal line
type Entry struct {
	ID        string    `json:"id"`
	PlayerID  string    `json:"playerId"`
	Type      EntryType `json:"type"`
	Amount    int64     `json:"amount"`
	Metadata  Metadata  `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewEntry mints a journal entry with a fresh id
func NewEntry(playerID string, t EntryType, amount int64, meta Metadata, now time.Time) Entry {
	return Entry{
		ID:        uuid.NewString(),
		PlayerID:  playerID,
		Type:      t,
		Amount:    amount,
		Metadata:  meta,
		CreatedAt: now,
	}
}

// Journal stores entries. Implementations may cap retention; the journal is
// an audit surface, not engine state.
type Journal interface {
	Record(e Entry) error
	Entries(playerID string, since time.Time) ([]Entry, error)
}
