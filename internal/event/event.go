// Package event resolves random events: weighted selection with negative
// events dampened by the player's resistance, and effect application with
// floor-computed percentage deltas.
package event

import (
	"math"
	"math/rand"
	"time"

	"clickstudio/internal/catalog"
	"clickstudio/internal/player"
)

const defaultBuffDuration = 600 * time.Second

// Pick draws one event for a player of the given level. Negative events get
// their weight multiplied by resistance (0..1, lower means better
// protected). Returns false when no event is eligible.
func Pick(cat *catalog.Catalog, level int, resistance float64, rng *rand.Rand) (catalog.EventDef, bool) {
	type weighted struct {
		def    catalog.EventDef
		weight float64
	}

	var candidates []weighted
	total := 0.0
	for _, def := range cat.Events {
		if def.MinLevel > level {
			continue
		}
		w := float64(def.Weight)
		if w < 1 {
			w = 1
		}
		if def.Negative() {
			w *= resistance
		}
		if w <= 0 {
			continue
		}
		candidates = append(candidates, weighted{def: def, weight: w})
		total += w
	}
	if total <= 0 {
		return catalog.EventDef{}, false
	}

	roll := rng.Float64() * total
	acc := 0.0
	for _, c := range candidates {
		acc += c.weight
		if roll < acc {
			return c.def, true
		}
	}
	return candidates[len(candidates)-1].def, true
}

// Outcome reports what applying an event did to the player
type Outcome struct {
	Event        catalog.EventDef
	MoneyDelta   int64
	XPDelta      int64
	LevelsGained int
	Buff         *player.Buff
}

// MoneyPctDelta converts a percentage into a concrete balance delta. The
// floor-computed delta is forced to at least one unit so small balances
// still feel the event; a negative delta needs a positive balance to bite.
func MoneyPctDelta(balance int64, pct float64) int64 {
	delta := int64(math.Floor(float64(balance) * pct))
	if pct < 0 && delta == 0 && balance > 0 {
		delta = -1
	} else if pct > 0 && delta == 0 && balance > 0 {
		delta = 1
	}
	return delta
}

// XPPctDelta converts a percentage into an XP delta against the current
// level threshold
func XPPctDelta(level int, xp int64, pct float64) int64 {
	base := player.XPToLevel(level)
	delta := int64(math.Floor(float64(base) * pct))
	if pct < 0 && delta == 0 && xp > 0 {
		delta = -1
	} else if pct > 0 && delta == 0 {
		delta = 1
	}
	return delta
}

// Apply mutates the player with the given effect. eff is passed separately
// from def because interactive events apply a chosen branch instead of the
// event's own effect. newID mints buff identifiers.
func Apply(p *player.Player, def catalog.EventDef, eff catalog.EventEffect, now time.Time, newID func() string) Outcome {
	out := Outcome{Event: def}

	var moneyDelta int64
	if eff.MoneyPct != 0 {
		moneyDelta += MoneyPctDelta(p.Balance, eff.MoneyPct)
	}
	moneyDelta += eff.Money
	if moneyDelta != 0 {
		next := p.Balance + moneyDelta
		if moneyDelta < 0 && next < 0 {
			next = 0
		}
		// Event winnings stay out of lifetime earnings, they are luck,
		// not work
		p.Balance = next
		out.MoneyDelta = moneyDelta
	}

	var xpDelta int64
	if eff.XPPct != 0 {
		xpDelta += XPPctDelta(p.Level, p.XP, eff.XPPct)
	}
	xpDelta += eff.XP
	if xpDelta != 0 {
		if xpDelta > 0 {
			out.LevelsGained = p.GainXP(xpDelta)
		} else {
			p.LoseXP(-xpDelta)
		}
		out.XPDelta = xpDelta
	}

	if eff.Buff != nil && !eff.Buff.Zero() {
		duration := defaultBuffDuration
		if def.DurationSec > 0 {
			duration = time.Duration(def.DurationSec * float64(time.Second))
		}
		buff := player.Buff{
			ID:        newID(),
			Code:      def.Code,
			Title:     def.Title,
			ExpiresAt: now.Add(duration),
			Effect:    *eff.Buff,
		}
		p.Buffs = append(p.Buffs, buff)
		out.Buff = &buff
	}

	return out
}
