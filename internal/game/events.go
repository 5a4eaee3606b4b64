package game

import (
	"context"
	"fmt"
	"time"

	"clickstudio/internal/catalog"
	"clickstudio/internal/event"
	"clickstudio/internal/player"
	"clickstudio/internal/stats"
	"clickstudio/internal/telemetry"
)

// EventOutcome is what a resolved event did, surfaced in action results
type EventOutcome struct {
	Code         string            `json:"code"`
	Title        string            `json:"title"`
	Kind         catalog.EventKind `json:"kind"`
	MoneyDelta   int64             `json:"moneyDelta"`
	XPDelta      int64             `json:"xpDelta"`
	LevelsGained int               `json:"levelsGained"`
	BuffApplied  *player.Buff      `json:"buffApplied,omitempty"`
	ShieldUsed   bool              `json:"shieldUsed"`
	Pending      *PendingEventView `json:"pending,omitempty"`

	Unlocked []catalog.AchievementDef `json:"unlocked,omitempty"`
}

// PendingEventView presents an interactive event waiting for a choice
type PendingEventView struct {
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	Choices   []string  `json:"choices"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// rollEvent draws and applies a random event in the middle of an action.
// While an interactive event waits for its choice no new event fires.
func (e *Engine) rollEvent(p *player.Player, d *stats.Derived, now time.Time, prob float64) *EventOutcome {
	if p.PendingEvent != nil {
		return nil
	}
	if e.rollFloat() >= prob {
		return nil
	}

	e.rngMu.Lock()
	def, ok := event.Pick(e.Catalog, p.Level, d.EventResistance, e.rng)
	e.rngMu.Unlock()
	if !ok {
		return nil
	}

	return e.fireEvent(p, d, def, now)
}

// fireEvent parks an interactive event, lets a shield absorb a negative
// one, or applies the effect outright
func (e *Engine) fireEvent(p *player.Player, d *stats.Derived, def catalog.EventDef, now time.Time) *EventOutcome {
	if def.Interactive() {
		ttl := time.Duration(e.Balance.PendingEventTTLSec * float64(time.Second))
		p.PendingEvent = &player.PendingEvent{
			EventCode: def.Code,
			CreatedAt: now,
			ExpiresAt: now.Add(ttl),
		}
		return &EventOutcome{
			Code:    def.Code,
			Title:   def.Title,
			Kind:    def.Kind,
			Pending: pendingView(def, *p.PendingEvent),
		}
	}

	if def.Negative() && d.ShieldCharges > 0 {
		e.consumeShield(p, d)
		telemetry.Metrics().ObserveEvent("shielded")
		e.logJSON("shield_used", map[string]any{"player": p.ID, "event": def.Code})
		return &EventOutcome{Code: def.Code, Title: def.Title, Kind: def.Kind, ShieldUsed: true}
	}

	return e.applyEvent(p, def, def.Effect, now)
}

// TriggerEvent forces a specific event onto a player, bypassing the random
// draw. Admin surface; shield and pending-choice rules still hold.
func (e *Engine) TriggerEvent(ctx context.Context, playerID, eventCode string) (*EventOutcome, error) {
	var result *EventOutcome
	err := e.withPlayer(ctx, playerID, func(p *player.Player, d *stats.Derived, now time.Time, up Upkeep) error {
		def, ok := e.Catalog.Event(eventCode)
		if !ok {
			return fmt.Errorf("event %s: %w", eventCode, ErrUnknownEvent)
		}
		if p.PendingEvent != nil {
			return ErrPendingEventExists
		}

		result = e.fireEvent(p, d, def, now)
		result.Unlocked = e.checkAchievements(p)
		e.logJSON("event_triggered", map[string]any{"player": p.ID, "event": def.Code})
		return nil
	})
	return result, err
}

func (e *Engine) applyEvent(p *player.Player, def catalog.EventDef, eff catalog.EventEffect, now time.Time) *EventOutcome {
	outcome := event.Apply(p, def, eff, now, newBuffID)

	entryType := telemetry.EntryEventBonus
	switch {
	case outcome.Buff != nil:
		entryType = telemetry.EntryEventBuff
	case outcome.MoneyDelta < 0 || outcome.XPDelta < 0:
		entryType = telemetry.EntryEventPenalty
	}
	e.journal(telemetry.NewEntry(p.ID, entryType, outcome.MoneyDelta,
		telemetry.Metadata{"event": def.Code, "xp": outcome.XPDelta}, now))
	telemetry.Metrics().ObserveEvent(string(def.Kind))

	return &EventOutcome{
		Code:         def.Code,
		Title:        def.Title,
		Kind:         def.Kind,
		MoneyDelta:   outcome.MoneyDelta,
		XPDelta:      outcome.XPDelta,
		LevelsGained: outcome.LevelsGained,
		BuffApplied:  outcome.Buff,
	}
}

// consumeShield spends one charge off the shield boost
func (e *Engine) consumeShield(p *player.Player, d *stats.Derived) {
	def, ok := e.Catalog.ShieldBoost()
	if !ok {
		return
	}
	if p.Boosts[def.Code] > 0 {
		p.Boosts[def.Code]--
		if p.Boosts[def.Code] == 0 {
			delete(p.Boosts, def.Code)
		}
	}
	if d.ShieldCharges > 0 {
		d.ShieldCharges--
	}
}

func pendingView(def catalog.EventDef, pe player.PendingEvent) *PendingEventView {
	choices := make([]string, 0, len(def.Choices))
	for _, c := range def.Choices {
		choices = append(choices, c.Text)
	}
	return &PendingEventView{
		Code:      def.Code,
		Title:     def.Title,
		Choices:   choices,
		ExpiresAt: pe.ExpiresAt,
	}
}

// PendingEvent returns the interactive event waiting for the player, if any
func (e *Engine) PendingEvent(ctx context.Context, playerID string) (*PendingEventView, error) {
	var view *PendingEventView
	err := e.withPlayer(ctx, playerID, func(p *player.Player, d *stats.Derived, now time.Time, up Upkeep) error {
		if p.PendingEvent == nil {
			return nil
		}
		def, ok := e.Catalog.Event(p.PendingEvent.EventCode)
		if !ok {
			p.PendingEvent = nil
			return nil
		}
		view = pendingView(def, *p.PendingEvent)
		return nil
	})
	return view, err
}

// ResolvePendingEvent applies the choice the player picked for the parked
// interactive event
func (e *Engine) ResolvePendingEvent(ctx context.Context, playerID, choiceText string) (*EventOutcome, error) {
	var result *EventOutcome
	err := e.withPlayer(ctx, playerID, func(p *player.Player, d *stats.Derived, now time.Time, up Upkeep) error {
		if p.PendingEvent == nil {
			return ErrNoPendingEvent
		}
		code := p.PendingEvent.EventCode
		def, ok := e.Catalog.Event(code)
		if !ok {
			p.PendingEvent = nil
			return fmt.Errorf("pending event %s: %w", code, ErrUnknownEvent)
		}

		var chosen *catalog.EventChoice
		for i := range def.Choices {
			if def.Choices[i].Text == choiceText {
				chosen = &def.Choices[i]
				break
			}
		}
		if chosen == nil {
			return fmt.Errorf("event %s: %w", def.Code, ErrUnrecognizedChoice)
		}

		p.PendingEvent = nil
		result = e.applyEvent(p, def, chosen.Effect, now)
		result.Unlocked = e.checkAchievements(p)
		return nil
	})
	return result, err
}
