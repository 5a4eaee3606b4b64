package quest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clickstudio/internal/catalog"
	"clickstudio/internal/config"
	"clickstudio/internal/player"
)

func hellClient(t *testing.T) catalog.QuestDef {
	t.Helper()
	def, ok := catalog.Default().Quest("hell_client")
	require.True(t, ok)
	return def
}

func newTestPlayer() *player.Player {
	return player.New("u1", config.Default(), time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
}

func TestBeginStartsAtEntry(t *testing.T) {
	def := hellClient(t)
	p := newTestPlayer()

	view, err := Begin(def, p)
	require.NoError(t, err)
	assert.Equal(t, "intro", view.Stage)
	assert.Len(t, view.Options, 3)
	assert.Equal(t, "intro", p.Quests["hell_client"].Stage)
}

func TestChooseAdvancesAndAccumulatesTraits(t *testing.T) {
	def := hellClient(t)
	p := newTestPlayer()

	res, err := Choose(def, p, "Ask for extra budget", 0)
	require.NoError(t, err)
	require.NotNil(t, res.Next)
	assert.Equal(t, "step1", res.Next.Stage)
	assert.Equal(t, 1, p.Quests["hell_client"].Traits["budget"])
	assert.False(t, res.Finished)
}

func TestChooseEmptyNextFollowsStageOrder(t *testing.T) {
	def := catalog.QuestDef{
		Code:   "sequence",
		Name:   "Sequence",
		Traits: []string{"grit"},
		Stages: []string{"intro", "middle"},
		Flow: map[string]catalog.QuestStage{
			"intro":  {Text: "Start", Options: []catalog.QuestOption{{Text: "Go", Delta: map[string]int{"grit": 1}}}},
			"middle": {Text: "Middle", Options: []catalog.QuestOption{{Text: "Finish", Next: catalog.FinaleStage}}},
		},
		Rewards: map[string]catalog.QuestReward{"default": {Money: 10}},
	}
	p := newTestPlayer()

	res, err := Choose(def, p, "Go", 0)
	require.NoError(t, err)
	require.NotNil(t, res.Next)
	assert.Equal(t, "middle", res.Next.Stage)

	res, err = Choose(def, p, "Finish", 0)
	require.NoError(t, err)
	assert.True(t, res.Finished)
	assert.EqualValues(t, 10, res.Money)
}

func TestChooseUnknownOptionMutatesNothing(t *testing.T) {
	def := hellClient(t)
	p := newTestPlayer()
	_, err := Begin(def, p)
	require.NoError(t, err)

	_, err = Choose(def, p, "Flip the table", 0)
	assert.ErrorIs(t, err, ErrUnknownChoice)
	assert.Equal(t, "intro", p.Quests["hell_client"].Stage)
	assert.Empty(t, p.Quests["hell_client"].Traits)
}

func TestFullRunDominantTraitReward(t *testing.T) {
	def := hellClient(t)
	p := newTestPlayer()

	_, err := Choose(def, p, "Ask for extra budget", 0)
	require.NoError(t, err)
	_, err = Choose(def, p, "Ask for an upfront payment", 0)
	require.NoError(t, err)
	res, err := Choose(def, p, "Paid extra sprint", 0)
	require.NoError(t, err)

	require.True(t, res.Finished)
	assert.Equal(t, "budget", res.RewardKey)
	assert.Equal(t, int64(800), res.Money)
	assert.Equal(t, int64(250), res.XP)
	assert.Equal(t, "client_contract", res.ItemGranted)
	assert.True(t, p.Items["client_contract"])
	assert.Equal(t, int64(1000), p.Balance)
	assert.Equal(t, int64(800), p.Counters.LifetimeEarned)
	assert.True(t, p.Quests["hell_client"].Done)
}

func TestRewardXPScalesWithXPPct(t *testing.T) {
	def := hellClient(t)
	p := newTestPlayer()

	_, err := Choose(def, p, "Calmly apply the edits", 0.20)
	require.NoError(t, err)
	_, err = Choose(def, p, "Remind them politely", 0.20)
	require.NoError(t, err)
	res, err := Choose(def, p, "Schedule feedback rounds", 0.20)
	require.NoError(t, err)

	require.True(t, res.Finished)
	assert.Equal(t, "mood", res.RewardKey)
	assert.Equal(t, int64(384), res.XP) // round(320*1.2)
}

func TestItemGrantIdempotent(t *testing.T) {
	def := hellClient(t)
	p := newTestPlayer()
	p.Items["client_contract"] = true

	_, err := Choose(def, p, "Ask for extra budget", 0)
	require.NoError(t, err)
	_, err = Choose(def, p, "Ask for an upfront payment", 0)
	require.NoError(t, err)
	res, err := Choose(def, p, "Paid extra sprint", 0)
	require.NoError(t, err)

	assert.True(t, res.Finished)
	assert.Empty(t, res.ItemGranted)
}

func TestDoneQuestRejectsReentry(t *testing.T) {
	def := hellClient(t)
	p := newTestPlayer()
	p.Quests["hell_client"] = player.QuestProgress{Stage: catalog.FinaleStage, Done: true}

	_, err := Begin(def, p)
	assert.ErrorIs(t, err, ErrAlreadyComplete)

	_, err = Choose(def, p, "Ask for extra budget", 0)
	assert.ErrorIs(t, err, ErrAlreadyComplete)
}

func TestRewardKeyTiesAndNegatives(t *testing.T) {
	def := hellClient(t)

	// All zero falls back to default
	assert.Equal(t, "default", RewardKey(def, map[string]int{}))
	// Strictly negative totals fall back too
	assert.Equal(t, "default", RewardKey(def, map[string]int{"respect": -1}))
	// Ties resolve to the first declared trait
	assert.Equal(t, "mood", RewardKey(def, map[string]int{"mood": 2, "speed": 2}))
	assert.Equal(t, "speed", RewardKey(def, map[string]int{"mood": 1, "speed": 2}))
}
