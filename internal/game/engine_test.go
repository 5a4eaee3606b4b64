package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clickstudio/internal/catalog"
	"clickstudio/internal/config"
	"clickstudio/internal/player"
	"clickstudio/internal/telemetry"
	"clickstudio/internal/world"
)

type testEnv struct {
	engine  *Engine
	players *player.MemoryRepo
	clock   *FakeClock
	bal     config.Balance
}

func newTestEngine(t *testing.T, mutate func(*config.Balance)) *testEnv {
	t.Helper()

	bal := config.Default()
	// Random events off by default so payouts stay deterministic; the
	// event tests opt back in.
	bal.EventClickProb = 0
	bal.EventOrderProb = 0
	if mutate != nil {
		mutate(&bal)
	}

	clock := NewFakeClock(time.Date(2026, 5, 12, 12, 0, 0, 0, time.UTC))
	players := player.NewMemoryRepo()
	eng := NewEngine(players, world.NewMemoryRepo(), telemetry.NewMemoryJournal(),
		catalog.Default(), bal, config.NightWindow{StartHour: 22, EndHour: 8}, clock, nil)
	eng.SeedRand(1)

	return &testEnv{engine: eng, players: players, clock: clock, bal: bal}
}

func (env *testEnv) seedPlayer(t *testing.T, id string, mutate func(*player.Player)) {
	t.Helper()
	p := player.New(id, env.bal, env.clock.Now())
	if mutate != nil {
		mutate(p)
	}
	require.NoError(t, env.players.Save(context.Background(), p))
}

func (env *testEnv) mustProfile(t *testing.T, id string) *Profile {
	t.Helper()
	profile, err := env.engine.Profile(context.Background(), id)
	require.NoError(t, err)
	return profile
}

func TestProfileCreatesPlayer(t *testing.T) {
	env := newTestEngine(t, nil)

	profile := env.mustProfile(t, "alice")
	assert.Equal(t, int64(200), profile.Balance)
	assert.Equal(t, 1, profile.Level)
	assert.Equal(t, int64(1), profile.Derived.Power)
	assert.Equal(t, int64(100), profile.XPToGo)

	ids, err := env.players.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, ids)
}

func TestAcceptOrderGates(t *testing.T) {
	env := newTestEngine(t, nil)
	ctx := context.Background()

	_, err := env.engine.AcceptOrder(ctx, "alice", "no_such_order")
	assert.ErrorIs(t, err, ErrUnknownOrder)

	// cafe_logo wants level 2, a fresh player is level 1
	_, err = env.engine.AcceptOrder(ctx, "alice", "cafe_logo")
	require.ErrorIs(t, err, ErrLevelLocked)
	var locked *LevelLockedError
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, 2, locked.Required)

	_, err = env.engine.AcceptOrder(ctx, "alice", "social_avatar")
	require.NoError(t, err)
	_, err = env.engine.AcceptOrder(ctx, "alice", "social_avatar")
	assert.ErrorIs(t, err, ErrOrderAlreadyActive)
}

func TestClickFinishesOrder(t *testing.T) {
	env := newTestEngine(t, nil)
	ctx := context.Background()
	env.seedPlayer(t, "alice", func(p *player.Player) {
		p.BasePower = 100
	})

	accepted, err := env.engine.AcceptOrder(ctx, "alice", "social_avatar")
	require.NoError(t, err)
	assert.Equal(t, int64(80), accepted.Required)
	assert.Equal(t, 1.0, accepted.SnapshotMul)
	assert.False(t, accepted.FreeStart)

	res, err := env.engine.Click(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, res.Finished)
	// 80 effort * 0.6 reward per effort at snapshot 1.0
	assert.Equal(t, int64(48), res.Finished.Reward)
	assert.Equal(t, int64(8), res.Finished.XP)
	assert.False(t, res.Finished.HighTier)

	profile := env.mustProfile(t, "alice")
	assert.Equal(t, int64(248), profile.Balance)
	assert.Equal(t, int64(8), profile.XP)
	assert.Nil(t, profile.ActiveOrder)
	assert.Equal(t, int64(1), profile.Counters.OrdersFinished)
	assert.Equal(t, int64(48), profile.Counters.LifetimeEarned)

	unlockedCodes := make([]string, 0, len(res.Unlocked))
	for _, a := range res.Unlocked {
		unlockedCodes = append(unlockedCodes, a.Code)
	}
	assert.Contains(t, unlockedCodes, "order_first")
}

func TestClickWithoutOrder(t *testing.T) {
	env := newTestEngine(t, nil)
	_, err := env.engine.Click(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrNoActiveOrder)
}

func TestClickRateLimit(t *testing.T) {
	env := newTestEngine(t, nil)
	ctx := context.Background()

	_, err := env.engine.AcceptOrder(ctx, "alice", "story_pack")
	require.NoError(t, err)

	for i := 0; i < env.bal.BaseClickLimit; i++ {
		_, err := env.engine.Click(ctx, "alice")
		require.NoError(t, err)
	}
	_, err = env.engine.Click(ctx, "alice")
	assert.ErrorIs(t, err, ErrRateLimited)

	env.clock.Advance(2 * time.Second)
	_, err = env.engine.Click(ctx, "alice")
	assert.NoError(t, err)
}

func TestCancelOrder(t *testing.T) {
	env := newTestEngine(t, nil)
	ctx := context.Background()

	require.ErrorIs(t, env.engine.CancelOrder(ctx, "alice"), ErrNoActiveOrder)

	_, err := env.engine.AcceptOrder(ctx, "alice", "social_avatar")
	require.NoError(t, err)
	require.NoError(t, env.engine.CancelOrder(ctx, "alice"))
	assert.ErrorIs(t, env.engine.CancelOrder(ctx, "alice"), ErrNoActiveOrder)
}

func TestFinishPayoutKeepsAcceptanceSnapshot(t *testing.T) {
	env := newTestEngine(t, nil)
	ctx := context.Background()
	env.seedPlayer(t, "alice", func(p *player.Player) {
		p.BasePower = 100
		p.Balance = 1000
	})

	_, err := env.engine.AcceptOrder(ctx, "alice", "social_avatar")
	require.NoError(t, err)

	// Raising the ambient reward multiplier mid-order must not move the
	// accepted snapshot.
	_, err = env.engine.BuyBoost(ctx, "alice", "reward_mastery") // +0.15 reward
	require.NoError(t, err)

	res, err := env.engine.Click(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, res.Finished)
	assert.Equal(t, int64(48), res.Finished.Reward) // 80 * 0.6 * 1.0

	// A fresh order snapshots the new multiplier.
	accepted, err := env.engine.AcceptOrder(ctx, "alice", "social_avatar")
	require.NoError(t, err)
	assert.InDelta(t, 1.15, accepted.SnapshotMul, 1e-9)
}

func TestPassiveAccrual(t *testing.T) {
	env := newTestEngine(t, nil)
	env.seedPlayer(t, "alice", func(p *player.Player) {
		p.Team["junior"] = 1 // 4 per minute
	})

	env.clock.Advance(time.Hour)
	profile := env.mustProfile(t, "alice")
	assert.Equal(t, int64(440), profile.Balance)
	assert.Equal(t, int64(240), profile.Counters.PassiveEarned)
	// Passive income is not lifetime earnings
	assert.Equal(t, int64(0), profile.Counters.LifetimeEarned)
	assert.Equal(t, int64(240), profile.PassivePerHour)
}

func TestPassiveAccrualNoElapsedTimePaysNothing(t *testing.T) {
	env := newTestEngine(t, nil)
	env.seedPlayer(t, "alice", func(p *player.Player) {
		p.Team["junior"] = 1
	})

	env.clock.Advance(time.Hour)
	profile := env.mustProfile(t, "alice")
	assert.Equal(t, int64(440), profile.Balance)

	// Upkeep repeated with no time passed accrues nothing more.
	profile = env.mustProfile(t, "alice")
	assert.Equal(t, int64(440), profile.Balance)
	assert.Equal(t, int64(240), profile.Counters.PassiveEarned)
}

func TestPassiveAccrualOfflineCap(t *testing.T) {
	env := newTestEngine(t, nil)
	env.seedPlayer(t, "alice", func(p *player.Player) {
		p.Team["junior"] = 1
	})

	env.clock.Advance(48 * time.Hour)
	profile := env.mustProfile(t, "alice")
	// Capped at 12 hours of accrual
	assert.Equal(t, int64(200+12*240), profile.Balance)
}

func TestTeamLevelScalesPassiveRate(t *testing.T) {
	env := newTestEngine(t, nil)
	env.seedPlayer(t, "alice", func(p *player.Player) {
		p.Team["junior"] = 3 // 4 * (1 + 0.25*2) = 6 per minute
	})

	env.clock.Advance(time.Hour)
	profile := env.mustProfile(t, "alice")
	assert.Equal(t, int64(200+360), profile.Balance)
}

func TestBuyBoost(t *testing.T) {
	env := newTestEngine(t, nil)
	ctx := context.Background()

	// inspiration costs 400, a fresh player holds 200
	_, err := env.engine.BuyBoost(ctx, "alice", "inspiration")
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	env.seedPlayer(t, "bob", func(p *player.Player) {
		p.Balance = 1100
	})
	res, err := env.engine.BuyBoost(ctx, "bob", "inspiration")
	require.NoError(t, err)
	assert.Equal(t, int64(400), res.Cost)
	assert.Equal(t, 1, res.Level)
	assert.Equal(t, int64(700), res.Balance)

	// Second level costs 400 * 1.6
	res, err = env.engine.BuyBoost(ctx, "bob", "inspiration")
	require.NoError(t, err)
	assert.Equal(t, int64(640), res.Cost)
	assert.Equal(t, 2, res.Level)

	profile := env.mustProfile(t, "bob")
	// Two inspiration levels add 10 + round(10*1.45) power
	assert.Equal(t, int64(1+10+15), profile.Derived.Power)
}

func TestBuyBoostLevelGate(t *testing.T) {
	env := newTestEngine(t, nil)
	env.seedPlayer(t, "alice", func(p *player.Player) {
		p.Balance = 100000
	})
	_, err := env.engine.BuyBoost(context.Background(), "alice", "crit_feedback")
	require.ErrorIs(t, err, ErrLevelLocked)
}

func TestBuyItemAndEquip(t *testing.T) {
	env := newTestEngine(t, nil)
	ctx := context.Background()
	env.seedPlayer(t, "alice", func(p *player.Player) {
		p.Balance = 1000
	})

	res, err := env.engine.BuyItem(ctx, "alice", "laptop_t1")
	require.NoError(t, err)
	assert.Equal(t, int64(250), res.Cost)
	assert.True(t, res.Equipped)

	_, err = env.engine.BuyItem(ctx, "alice", "laptop_t1")
	assert.ErrorIs(t, err, ErrItemAlreadyOwned)

	// Quest loot is not for sale
	_, err = env.engine.BuyItem(ctx, "alice", "client_contract")
	assert.ErrorIs(t, err, ErrItemNotForSale)

	err = env.engine.EquipItem(ctx, "alice", "phone_t1")
	assert.ErrorIs(t, err, ErrNothingToEquip)
	require.NoError(t, env.engine.EquipItem(ctx, "alice", "laptop_t1"))

	profile := env.mustProfile(t, "alice")
	assert.Equal(t, "laptop_t1", profile.Equipment["laptop"])
}

func TestHireTeam(t *testing.T) {
	env := newTestEngine(t, nil)
	ctx := context.Background()

	// junior wants level 2
	_, err := env.engine.HireTeam(ctx, "alice", "junior")
	require.ErrorIs(t, err, ErrLevelLocked)

	env.seedPlayer(t, "bob", func(p *player.Player) {
		p.Level = 2
		p.Balance = 500
	})
	res, err := env.engine.HireTeam(ctx, "bob", "junior")
	require.NoError(t, err)
	assert.Equal(t, int64(100), res.Cost)
	assert.Equal(t, 1, res.Level)

	// Next level costs 100 * 1.22
	res, err = env.engine.HireTeam(ctx, "bob", "junior")
	require.NoError(t, err)
	assert.Equal(t, int64(122), res.Cost)
}

func TestRefreshActivePlayers(t *testing.T) {
	env := newTestEngine(t, nil)
	ctx := context.Background()

	env.seedPlayer(t, "alice", nil)
	env.seedPlayer(t, "bob", nil)

	active, err := env.engine.RefreshActivePlayers(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, active)

	// Only alice touches the game again; bob ages out of the window.
	env.clock.Advance(2 * time.Hour)
	_ = env.mustProfile(t, "alice")

	active, err = env.engine.RefreshActivePlayers(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, active)
}

func TestTriggerEvent(t *testing.T) {
	env := newTestEngine(t, nil)
	ctx := context.Background()

	_, err := env.engine.TriggerEvent(ctx, "alice", "nonsense")
	assert.ErrorIs(t, err, ErrUnknownEvent)

	// Instant bonus applies straight to the balance.
	outcome, err := env.engine.TriggerEvent(ctx, "alice", "idea_spark")
	require.NoError(t, err)
	assert.Equal(t, int64(200), outcome.MoneyDelta)
	assert.Equal(t, int64(400), env.mustProfile(t, "alice").Balance)

	// Interactive events park a choice, and only one may wait at a time.
	outcome, err = env.engine.TriggerEvent(ctx, "alice", "spill_choice")
	require.NoError(t, err)
	require.NotNil(t, outcome.Pending)
	assert.Len(t, outcome.Pending.Choices, 2)

	_, err = env.engine.TriggerEvent(ctx, "alice", "idea_spark")
	assert.ErrorIs(t, err, ErrPendingEventExists)
}

func TestResolvePendingEvent(t *testing.T) {
	env := newTestEngine(t, nil)
	ctx := context.Background()

	_, err := env.engine.ResolvePendingEvent(ctx, "alice", "anything")
	assert.ErrorIs(t, err, ErrNoPendingEvent)

	env.seedPlayer(t, "bob", func(p *player.Player) {
		p.Balance = 1000
		p.PendingEvent = &player.PendingEvent{
			EventCode: "spill_choice",
			CreatedAt: env.clock.Now(),
			ExpiresAt: env.clock.Now().Add(12 * time.Hour),
		}
	})

	_, err = env.engine.ResolvePendingEvent(ctx, "bob", "Ignore it")
	require.ErrorIs(t, err, ErrUnrecognizedChoice)
	profile := env.mustProfile(t, "bob")
	require.NotNil(t, profile.PendingEvent)

	res, err := env.engine.ResolvePendingEvent(ctx, "bob", "Pay for repairs")
	require.NoError(t, err)
	// floor(1000 * -0.05) - 150
	assert.Equal(t, int64(-200), res.MoneyDelta)

	profile = env.mustProfile(t, "bob")
	assert.Equal(t, int64(800), profile.Balance)
	assert.Nil(t, profile.PendingEvent)
}

func TestPendingEventExpires(t *testing.T) {
	env := newTestEngine(t, nil)
	env.seedPlayer(t, "alice", func(p *player.Player) {
		p.PendingEvent = &player.PendingEvent{
			EventCode: "spill_choice",
			CreatedAt: env.clock.Now(),
			ExpiresAt: env.clock.Now().Add(12 * time.Hour),
		}
	})

	env.clock.Advance(13 * time.Hour)
	_, err := env.engine.ResolvePendingEvent(context.Background(), "alice", "Pay for repairs")
	assert.ErrorIs(t, err, ErrNoPendingEvent)
}

func TestShieldNegatesNegativeEvent(t *testing.T) {
	// A one-event catalog makes the post-order roll deterministic
	cat, err := catalog.New(
		[]catalog.OrderTemplate{{Code: "gig", Title: "Gig", BaseEffort: 10, MinLevel: 1, Difficulty: "easy", EstimatedMinutes: 1}},
		[]catalog.BoostDef{{Code: "insurance", Name: "Insurance", Type: catalog.BoostEventShield, BaseCost: 100, Growth: 1.6, StepValue: 1, MinLevel: 1}},
		nil, nil, nil,
		[]catalog.EventDef{{Code: "bad_luck", Title: "Bad luck", Kind: catalog.EventPenalty, Weight: 1, MinLevel: 1,
			Effect: catalog.EventEffect{Money: -100}}},
		nil, nil)
	require.NoError(t, err)

	bal := config.Default()
	bal.EventClickProb = 0
	bal.EventOrderProb = 1.0
	clock := NewFakeClock(time.Date(2026, 5, 12, 12, 0, 0, 0, time.UTC))
	players := player.NewMemoryRepo()
	eng := NewEngine(players, world.NewMemoryRepo(), telemetry.NewMemoryJournal(),
		cat, bal, config.NightWindow{StartHour: 22, EndHour: 8}, clock, nil)
	eng.SeedRand(1)

	ctx := context.Background()
	p := player.New("alice", bal, clock.Now())
	p.BasePower = 100
	p.Boosts["insurance"] = 1
	require.NoError(t, players.Save(ctx, p))

	_, err = eng.AcceptOrder(ctx, "alice", "gig")
	require.NoError(t, err)
	res, err := eng.Click(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, res.Finished)
	require.NotNil(t, res.Event)
	assert.True(t, res.Event.ShieldUsed)
	assert.Zero(t, res.Event.MoneyDelta)

	// The charge is spent: the next negative event lands
	_, err = eng.AcceptOrder(ctx, "alice", "gig")
	require.NoError(t, err)
	res, err = eng.Click(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, res.Event)
	assert.False(t, res.Event.ShieldUsed)
	assert.Equal(t, int64(-100), res.Event.MoneyDelta)
}

func TestQuestFlowThroughEngine(t *testing.T) {
	env := newTestEngine(t, nil)
	ctx := context.Background()

	// hell_client wants level 2
	_, err := env.engine.StartQuest(ctx, "alice", "hell_client")
	require.ErrorIs(t, err, ErrLevelLocked)

	env.seedPlayer(t, "bob", func(p *player.Player) {
		p.Level = 2
	})
	view, err := env.engine.StartQuest(ctx, "bob", "hell_client")
	require.NoError(t, err)
	assert.Equal(t, "intro", view.Stage)
	assert.Len(t, view.Options, 3)

	steps := []string{"Ask for extra budget", "Ask for an upfront payment", "Paid extra sprint"}
	var last *QuestResult
	for _, step := range steps {
		last, err = env.engine.ChooseQuestOption(ctx, "bob", "hell_client", step)
		require.NoError(t, err)
	}
	require.True(t, last.Finished)
	assert.Equal(t, "budget", last.RewardKey)
	assert.Equal(t, int64(800), last.Money)
	assert.Equal(t, int64(250), last.XP)
	assert.Equal(t, "client_contract", last.ItemGranted)

	profile := env.mustProfile(t, "bob")
	assert.Equal(t, int64(1000), profile.Balance)
	assert.Equal(t, int64(800), profile.Counters.LifetimeEarned)
	assert.True(t, profile.Quests["hell_client"].Done)

	_, err = env.engine.ChooseQuestOption(ctx, "bob", "hell_client", steps[0])
	assert.ErrorIs(t, err, ErrQuestAlreadyComplete)
}

func TestChooseSkill(t *testing.T) {
	env := newTestEngine(t, nil)
	ctx := context.Background()

	env.seedPlayer(t, "alice", func(p *player.Player) {
		p.Level = 5
	})
	_, err := env.engine.ChooseSkill(ctx, "alice", "web_master")
	assert.ErrorIs(t, err, ErrNoSkillChoice)

	env.seedPlayer(t, "bob", func(p *player.Player) {
		p.Level = 5
		p.SkillChoices = 1
	})
	res, err := env.engine.ChooseSkill(ctx, "bob", "web_master")
	require.NoError(t, err)
	assert.Equal(t, 0, res.ChoicesLeft)
	assert.False(t, res.AlreadyOwned)

	// Re-picking an owned skill consumes nothing
	res, err = env.engine.ChooseSkill(ctx, "bob", "web_master")
	require.NoError(t, err)
	assert.True(t, res.AlreadyOwned)

	profile := env.mustProfile(t, "bob")
	assert.Contains(t, profile.Skills, "web_master")
	assert.InDelta(t, 1.05, profile.Derived.RewardMul, 1e-9)
}

func TestSkillChoiceMilestones(t *testing.T) {
	env := newTestEngine(t, nil)
	p := player.New("x", env.bal, env.clock.Now())

	p.Level = 5
	assert.Equal(t, 1, env.engine.awardSkillChoices(p, 4, 1))
	assert.Equal(t, 1, p.SkillChoices)

	// Jumping from 9 to 15 crosses the 10 milestone and the 15 milestone
	p.Level = 15
	assert.Equal(t, 2, env.engine.awardSkillChoices(p, 9, 6))
	assert.Equal(t, 3, p.SkillChoices)

	assert.Equal(t, 0, env.engine.awardSkillChoices(p, 15, 0))
}

func TestPrestige(t *testing.T) {
	env := newTestEngine(t, nil)
	ctx := context.Background()

	_, err := env.engine.PrestigeReset(ctx, "alice")
	require.ErrorIs(t, err, ErrLevelLocked)

	env.seedPlayer(t, "bob", func(p *player.Player) {
		p.Level = 20
		p.Balance = 9999
		p.Boosts["inspiration"] = 3
		p.Counters.LifetimeEarned = 4000
	})

	view, err := env.engine.PrestigePreview(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, view.Eligible)
	assert.Equal(t, 2, view.Gain)

	out, err := env.engine.PrestigeReset(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Gain)
	assert.Equal(t, 2, out.Reputation)
	assert.Equal(t, 1, out.Resets)

	profile := env.mustProfile(t, "bob")
	assert.Equal(t, int64(200), profile.Balance)
	assert.Equal(t, 1, profile.Level)
	assert.Empty(t, profile.Boosts)
	assert.Equal(t, int64(0), profile.Counters.LifetimeEarned)
	// Reputation feeds the reward multiplier permanently
	assert.InDelta(t, 1.02, profile.Derived.RewardMul, 1e-9)
}

func TestTrendAffectsSnapshot(t *testing.T) {
	env := newTestEngine(t, nil)
	ctx := context.Background()

	trend, err := env.engine.RollTrend(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, trend.OrderCode)
	assert.Equal(t, 2.0, trend.RewardMul)

	env.seedPlayer(t, "alice", func(p *player.Player) {
		p.Level = 20
	})
	res, err := env.engine.AcceptOrder(ctx, "alice", trend.OrderCode)
	require.NoError(t, err)
	assert.True(t, res.Trending)

	tpl, ok := env.engine.Catalog.Order(trend.OrderCode)
	require.True(t, ok)
	assert.InDelta(t, tpl.RewardMultiplier()*2.0, res.SnapshotMul, 1e-9)
}

func TestTrendExpires(t *testing.T) {
	env := newTestEngine(t, nil)
	ctx := context.Background()

	_, err := env.engine.RollTrend(ctx)
	require.NoError(t, err)

	env.clock.Advance(25 * time.Hour)
	assert.False(t, env.engine.currentTrend(ctx, env.clock.Now()).Active(env.clock.Now()))
}

func TestOffers(t *testing.T) {
	env := newTestEngine(t, nil)
	offers, err := env.engine.Offers(context.Background(), "alice", 3)
	require.NoError(t, err)
	require.Len(t, offers, 3)
	seen := map[string]bool{}
	for _, o := range offers {
		assert.LessOrEqual(t, o.MinLevel, 1)
		assert.False(t, seen[o.Code])
		seen[o.Code] = true
	}
}

func TestComboRamp(t *testing.T) {
	env := newTestEngine(t, nil)
	now := env.clock.Now()

	// First click never carries a bonus
	assert.Equal(t, 1.0, env.engine.bumpCombo("a", now, 0.25, 2.0))
	assert.Equal(t, 1.25, env.engine.bumpCombo("a", now.Add(time.Second), 0.25, 2.0))
	assert.Equal(t, 1.5, env.engine.bumpCombo("a", now.Add(2*time.Second), 0.25, 2.0))

	// Ramp is capped at the combo ceiling
	mul := 1.0
	for i := 3; i < 10; i++ {
		mul = env.engine.bumpCombo("a", now.Add(time.Duration(i)*time.Second), 0.25, 2.0)
	}
	assert.Equal(t, 2.0, mul)

	// An idle gap resets the streak
	assert.Equal(t, 1.0, env.engine.bumpCombo("a", now.Add(time.Minute), 0.25, 2.0))

	// No combo boost, no multiplier
	assert.Equal(t, 1.0, env.engine.bumpCombo("b", now, 0, 0))
}

func TestGrantShield(t *testing.T) {
	env := newTestEngine(t, nil)
	total, err := env.engine.GrantShield(context.Background(), "alice", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	profile := env.mustProfile(t, "alice")
	assert.Equal(t, 3, profile.Derived.ShieldCharges)
}

func TestAchievementUnlocks(t *testing.T) {
	env := newTestEngine(t, nil)
	ctx := context.Background()
	env.seedPlayer(t, "alice", func(p *player.Player) {
		p.Counters.TotalClicks = 99
	})

	_, err := env.engine.AcceptOrder(ctx, "alice", "story_pack")
	require.NoError(t, err)
	res, err := env.engine.Click(ctx, "alice")
	require.NoError(t, err)

	codes := make([]string, 0, len(res.Unlocked))
	for _, a := range res.Unlocked {
		codes = append(codes, a.Code)
	}
	assert.Contains(t, codes, "click_100")

	// Already unlocked achievements stay unlocked and are not re-announced
	res, err = env.engine.Click(ctx, "alice")
	require.NoError(t, err)
	for _, a := range res.Unlocked {
		assert.NotEqual(t, "click_100", a.Code)
	}
}
