package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"clickstudio/internal/catalog"
	"clickstudio/internal/config"
)

func TestNewPlayerStartingState(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := New("u1", config.Default(), now)

	assert.Equal(t, int64(200), p.Balance)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 1, p.BasePower)
	assert.Equal(t, now, p.LastSeen)
	assert.Len(t, p.Equipment, len(catalog.Slots))
	for _, slot := range catalog.Slots {
		assert.Equal(t, "", p.Equipment[slot])
	}
}

func TestGainXPLevelsUp(t *testing.T) {
	p := New("u1", config.Default(), time.Now())

	// Level 1 needs 100, level 2 needs 400
	gained := p.GainXP(120)
	assert.Equal(t, 1, gained)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, int64(20), p.XP)

	gained = p.GainXP(379)
	assert.Equal(t, 0, gained)
	assert.Equal(t, int64(399), p.XP)

	gained = p.GainXP(1)
	assert.Equal(t, 1, gained)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, int64(0), p.XP)
}

func TestGainXPMultipleLevelsAtOnce(t *testing.T) {
	p := New("u1", config.Default(), time.Now())

	gained := p.GainXP(100 + 400 + 900)
	assert.Equal(t, 3, gained)
	assert.Equal(t, 4, p.Level)
	assert.Equal(t, int64(0), p.XP)
}

func TestLoseXPNeverDropsLevel(t *testing.T) {
	p := New("u1", config.Default(), time.Now())
	p.GainXP(150)
	assert.Equal(t, 2, p.Level)

	p.LoseXP(500)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, int64(0), p.XP)
}

func TestDebitFloorsAtZero(t *testing.T) {
	p := New("u1", config.Default(), time.Now())
	p.Debit(10_000)
	assert.Equal(t, int64(0), p.Balance)
}

func TestCreditTracksLifetime(t *testing.T) {
	p := New("u1", config.Default(), time.Now())
	p.Credit(500)
	p.Debit(300)
	p.Credit(100)

	assert.Equal(t, int64(500), p.Balance)
	assert.Equal(t, int64(600), p.Counters.LifetimeEarned)
}

func TestPruneBuffs(t *testing.T) {
	now := time.Now()
	p := New("u1", config.Default(), now)
	p.Buffs = []Buff{
		{ID: "a", Code: "old", ExpiresAt: now.Add(-time.Minute)},
		{ID: "b", Code: "fresh", ExpiresAt: now.Add(time.Minute)},
	}

	removed := p.PruneBuffs(now)
	assert.Equal(t, 1, removed)
	assert.Len(t, p.Buffs, 1)
	assert.Equal(t, "fresh", p.Buffs[0].Code)
}
