// Package game drives the progression engine: every player-facing action
// runs through a per-player serialized pipeline of load, upkeep (buff
// pruning, pending-event expiry, passive accrual), stat derivation, the
// action itself, and a version-checked save.
package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"clickstudio/internal/catalog"
	"clickstudio/internal/config"
	"clickstudio/internal/player"
	"clickstudio/internal/ratelimit"
	"clickstudio/internal/stats"
	"clickstudio/internal/telemetry"
	"clickstudio/internal/world"
)

const saveRetries = 3

const clickWindow = time.Second

type Engine struct {
	Players player.Repository
	World   world.Repository
	Journal telemetry.Journal
	Catalog *catalog.Catalog
	Balance config.Balance
	Night   config.NightWindow
	Clock   Clock
	Logger  *log.Logger

	limiter *ratelimit.Limiter

	rngMu sync.Mutex
	rng   *rand.Rand

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	combosMu sync.Mutex
	combos   map[string]*comboState
}

// comboState is session-scoped: it tracks the rapid-click streak and is
// never persisted. A restart simply resets everyone's streak.
type comboState struct {
	lastClick time.Time
	bonus     float64
}

func NewEngine(players player.Repository, worldRepo world.Repository, journal telemetry.Journal,
	cat *catalog.Catalog, bal config.Balance, night config.NightWindow,
	clock Clock, logger *log.Logger) *Engine {

	if clock == nil {
		clock = RealClock{}
	}
	return &Engine{
		Players: players,
		World:   worldRepo,
		Journal: journal,
		Catalog: cat,
		Balance: bal,
		Night:   night,
		Clock:   clock,
		Logger:  logger,
		limiter: ratelimit.NewLimiter(clickWindow),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		locks:   make(map[string]*sync.Mutex),
		combos:  make(map[string]*comboState),
	}
}

// SeedRand replaces the random source, for deterministic tests
func (e *Engine) SeedRand(seed int64) {
	e.rngMu.Lock()
	e.rng = rand.New(rand.NewSource(seed))
	e.rngMu.Unlock()
}

func (e *Engine) now() time.Time {
	return e.Clock.Now()
}

func (e *Engine) rollFloat() float64 {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.rng.Float64()
}

func (e *Engine) playerLock(id string) *sync.Mutex {
	e.locksMu.Lock()
	defer e.locksMu.Unlock()
	mu, ok := e.locks[id]
	if !ok {
		mu = &sync.Mutex{}
		e.locks[id] = mu
	}
	return mu
}

// Upkeep is what the load pipeline did before the action ran
type Upkeep struct {
	PassiveEarned int64
	BuffsExpired  int
	EventExpired  bool
}

// withPlayer serializes an action for one player. The action mutates the
// player through fn; on a version conflict with an external writer the
// whole pipeline is retried from a fresh load. When fn fails nothing is
// saved: upkeep is recomputed on the next touch because LastSeen only
// advances on a successful save.
func (e *Engine) withPlayer(ctx context.Context, id string, fn func(p *player.Player, d *stats.Derived, now time.Time, up Upkeep) error) error {
	mu := e.playerLock(id)
	mu.Lock()
	defer mu.Unlock()

	var lastErr error
	for attempt := 0; attempt < saveRetries; attempt++ {
		p, err := e.loadOrCreate(ctx, id)
		if err != nil {
			return err
		}
		now := e.now()

		up := Upkeep{BuffsExpired: p.PruneBuffs(now)}
		if p.PendingEvent != nil && !p.PendingEvent.ExpiresAt.After(now) {
			p.PendingEvent = nil
			up.EventExpired = true
		}

		d := stats.Compute(p, e.Catalog, e.Balance, now)
		up.PassiveEarned = e.applyPassive(p, d, now)
		if up.PassiveEarned != 0 {
			e.journal(telemetry.NewEntry(id, telemetry.EntryPassiveIncome, up.PassiveEarned, nil, now))
		}

		if err := fn(p, &d, now, up); err != nil {
			return err
		}

		err = e.Players.Save(ctx, p)
		if err == nil {
			return nil
		}
		if !errors.Is(err, player.ErrConflict) {
			return fmt.Errorf("save player %s: %w", id, err)
		}
		lastErr = err
	}
	return fmt.Errorf("save player %s: retries exhausted: %w", id, lastErr)
}

func (e *Engine) loadOrCreate(ctx context.Context, id string) (*player.Player, error) {
	p, err := e.Players.Get(ctx, id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, player.ErrNotFound) {
		return nil, fmt.Errorf("load player %s: %w", id, err)
	}
	p = player.New(id, e.Balance, e.now())
	e.logJSON("player_created", map[string]any{"player": id})
	return p, nil
}

// applyPassive credits team income for the time since the last touch.
// Passive money does not count toward lifetime earnings.
func (e *Engine) applyPassive(p *player.Player, d stats.Derived, now time.Time) int64 {
	elapsed := now.Sub(p.LastSeen).Seconds()
	p.LastSeen = now
	if elapsed <= 0 {
		return 0
	}
	limit := e.Balance.MaxOfflineSeconds + d.OfflineCapBonus
	if elapsed > limit {
		elapsed = limit
	}

	rate := e.passiveRate(p, d, now)
	if rate <= 0 {
		return 0
	}
	amount := int64(math.Floor(rate * elapsed))
	if amount <= 0 {
		return 0
	}
	p.Balance += amount
	p.Counters.PassiveEarned += amount
	return amount
}

// passiveRate returns income per second from the hired team
func (e *Engine) passiveRate(p *player.Player, d stats.Derived, now time.Time) float64 {
	perMin := 0.0
	for code, lvl := range p.Team {
		if lvl <= 0 {
			continue
		}
		role, ok := e.Catalog.TeamRole(code)
		if !ok {
			continue
		}
		perMin += role.BaseIncomePerMin * (1 + e.Balance.TeamIncomeStep*float64(lvl-1))
	}
	if perMin <= 0 {
		return 0
	}
	rate := perMin / 60 * d.PassiveMul * (1 + d.TeamIncomePct)
	if d.NightPassivePct > 0 && e.Night.Contains(now.Hour()) {
		rate *= 1 + d.NightPassivePct
	}
	return rate
}

// awardSkillChoices grants one pending skill choice for every milestone
// level crossed by a level-up
func (e *Engine) awardSkillChoices(p *player.Player, oldLevel, gained int) int {
	if gained <= 0 || e.Balance.SkillLevelInterval <= 0 {
		return 0
	}
	earned := 0
	for lvl := oldLevel + 1; lvl <= oldLevel+gained; lvl++ {
		if lvl%e.Balance.SkillLevelInterval == 0 {
			earned++
		}
	}
	p.SkillChoices += earned
	return earned
}

func (e *Engine) journal(entry telemetry.Entry) {
	if e.Journal == nil {
		return
	}
	if err := e.Journal.Record(entry); err != nil {
		e.logJSON("journal_error", map[string]any{"error": err.Error()})
	}
}

func (e *Engine) logJSON(event string, fields map[string]any) {
	if e.Logger == nil {
		return
	}
	payload := map[string]any{
		"ts":    e.now().UTC().Format(time.RFC3339Nano),
		"level": "info",
		"msg":   event,
	}
	for k, v := range fields {
		payload[k] = v
	}
	b, err := json.Marshal(payload)
	if err != nil {
		e.Logger.Printf(`{"level":"error","msg":"log_marshal_failed","error":%q}`, err.Error())
		return
	}
	e.Logger.Print(string(b))
}

func newBuffID() string {
	return uuid.NewString()
}
