package game

import (
	"context"
	"fmt"
	"time"

	"clickstudio/internal/player"
	"clickstudio/internal/stats"
	"clickstudio/internal/telemetry"
	"clickstudio/internal/world"
)

// Profile is the full player snapshot the transport layer serves
type Profile struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Balance int64 `json:"balance"`
	Level   int   `json:"level"`
	XP      int64 `json:"xp"`
	XPToGo  int64 `json:"xpToGo"`

	Derived        stats.Derived `json:"derived"`
	PassivePerHour int64         `json:"passivePerHour"`

	Boosts    map[string]int         `json:"boosts"`
	Team      map[string]int         `json:"team"`
	Equipment map[string]string      `json:"equipment"`
	Skills    []string               `json:"skills"`
	Buffs     []player.Buff          `json:"buffs,omitempty"`
	Quests    map[string]QuestStatus `json:"quests,omitempty"`

	ActiveOrder  *player.ActiveOrder `json:"activeOrder,omitempty"`
	PendingEvent *PendingEventView   `json:"pendingEvent,omitempty"`
	Trend        *world.Trend        `json:"trend,omitempty"`

	SkillChoices int                   `json:"skillChoices"`
	Achievements []string              `json:"achievements"`
	Counters     player.Counters       `json:"counters"`
	Prestige     player.PrestigeRecord `json:"prestige"`
	PassiveToday int64                 `json:"accruedNow,omitempty"`
}

// QuestStatus summarizes one quest's progress in the profile
type QuestStatus struct {
	Stage string `json:"stage"`
	Done  bool   `json:"done"`
}

// Profile loads (or creates) the player and returns the full snapshot.
// Upkeep runs like any other action, so the snapshot reflects passive
// income up to this moment.
func (e *Engine) Profile(ctx context.Context, playerID string) (*Profile, error) {
	var profile *Profile
	err := e.withPlayer(ctx, playerID, func(p *player.Player, d *stats.Derived, now time.Time, up Upkeep) error {
		skills := make([]string, 0, len(p.Skills))
		for code, owned := range p.Skills {
			if owned {
				skills = append(skills, code)
			}
		}
		achievements := make([]string, 0, len(p.Achievements))
		for code, unlocked := range p.Achievements {
			if unlocked {
				achievements = append(achievements, code)
			}
		}
		equipment := make(map[string]string, len(p.Equipment))
		for slot, code := range p.Equipment {
			equipment[string(slot)] = code
		}
		quests := make(map[string]QuestStatus, len(p.Quests))
		for code, qp := range p.Quests {
			quests[code] = QuestStatus{Stage: qp.Stage, Done: qp.Done}
		}

		profile = &Profile{
			ID:             p.ID,
			CreatedAt:      p.CreatedAt,
			Balance:        p.Balance,
			Level:          p.Level,
			XP:             p.XP,
			XPToGo:         player.XPToLevel(p.Level) - p.XP,
			Derived:        *d,
			PassivePerHour: int64(e.passiveRate(p, *d, now) * 3600),
			Boosts:         p.Boosts,
			Team:           p.Team,
			Equipment:      equipment,
			Skills:         skills,
			Buffs:          p.Buffs,
			Quests:         quests,
			ActiveOrder:    p.ActiveOrder,
			SkillChoices:   p.SkillChoices,
			Achievements:   achievements,
			Counters:       p.Counters,
			Prestige:       p.Prestige,
			PassiveToday:   up.PassiveEarned,
		}

		if p.PendingEvent != nil {
			if def, ok := e.Catalog.Event(p.PendingEvent.EventCode); ok {
				profile.PendingEvent = pendingView(def, *p.PendingEvent)
			}
		}
		if trend := e.currentTrend(ctx, now); trend.Active(now) {
			profile.Trend = &trend
		}
		return nil
	})
	return profile, err
}

// GrantShield is an operator action: it adds charges to the event shield
// boost through the same purchase slot players use, so the stat pipeline
// picks them up unchanged.
// RefreshActivePlayers recounts players seen inside the window and
// publishes the count to the active-players gauge
func (e *Engine) RefreshActivePlayers(ctx context.Context, window time.Duration) (int, error) {
	ids, err := e.Players.List(ctx)
	if err != nil {
		return 0, err
	}
	cutoff := e.now().Add(-window)
	active := 0
	for _, id := range ids {
		p, err := e.Players.Get(ctx, id)
		if err != nil {
			continue
		}
		if p.LastSeen.After(cutoff) {
			active++
		}
	}
	telemetry.Metrics().SetActivePlayers(active)
	return active, nil
}

func (e *Engine) GrantShield(ctx context.Context, playerID string, charges int) (int, error) {
	if charges < 1 {
		charges = 1
	}
	total := 0
	err := e.withPlayer(ctx, playerID, func(p *player.Player, d *stats.Derived, now time.Time, up Upkeep) error {
		def, ok := e.Catalog.ShieldBoost()
		if !ok {
			return fmt.Errorf("catalog carries no shield boost: %w", ErrUnknownBoost)
		}
		p.Boosts[def.Code] += charges
		total = p.Boosts[def.Code]
		e.logJSON("shield_granted", map[string]any{"player": playerID, "charges": charges})
		return nil
	})
	return total, err
}
