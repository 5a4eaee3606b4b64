package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogValid(t *testing.T) {
	c := Default()

	assert.NotEmpty(t, c.Orders)
	assert.NotEmpty(t, c.Boosts)
	assert.NotEmpty(t, c.Events)
	assert.NotEmpty(t, c.Quests)

	shield, ok := c.ShieldBoost()
	assert.True(t, ok)
	assert.Equal(t, "project_insurance", shield.Code)

	crit, ok := c.Boost("crit_feedback")
	require.True(t, ok)
	assert.Equal(t, 1.5, crit.CritMultiplier)

	quest, ok := c.Quest("hell_client")
	require.True(t, ok)
	entry, err := quest.EntryStage()
	require.NoError(t, err)
	assert.Equal(t, "intro", entry)
}

func TestEventNegativity(t *testing.T) {
	c := Default()

	spill, ok := c.Event("coffee_spill")
	require.True(t, ok)
	assert.True(t, spill.Negative())

	spark, ok := c.Event("idea_spark")
	require.True(t, ok)
	assert.False(t, spark.Negative())

	// Interactive events are negative when any choice is
	choice, ok := c.Event("spill_choice")
	require.True(t, ok)
	assert.True(t, choice.Interactive())
	assert.True(t, choice.Negative())

	crunch, ok := c.Event("deadline_crunch")
	require.True(t, ok)
	assert.True(t, crunch.Negative())
}

func TestValidateRejectsBrokenQuest(t *testing.T) {
	q := QuestDef{
		Code:   "broken",
		Name:   "Broken",
		Traits: []string{"grit"},
		Stages: []string{"intro"},
		Flow: map[string]QuestStage{
			"intro": {
				Text: "Start",
				Options: []QuestOption{
					{Text: "Go", Next: "nowhere", Delta: map[string]int{"grit": 1}},
				},
			},
		},
		Rewards: map[string]QuestReward{"default": {Money: 10}},
	}

	_, err := New(nil, nil, nil, nil, nil, nil, nil, []QuestDef{q})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "unknown stage")
}

func TestValidateAcceptsImplicitNextStage(t *testing.T) {
	q := QuestDef{
		Code:   "sequence",
		Name:   "Sequence",
		Traits: []string{"grit"},
		Stages: []string{"intro", "middle"},
		Flow: map[string]QuestStage{
			"intro": {
				Text: "Start",
				Options: []QuestOption{
					// Empty next advances to the following declared stage.
					{Text: "Go", Delta: map[string]int{"grit": 1}},
				},
			},
			"middle": {
				Text: "Middle",
				Options: []QuestOption{
					{Text: "Finish", Next: FinaleStage},
				},
			},
		},
		Rewards: map[string]QuestReward{"default": {Money: 10}},
	}

	cat, err := New(nil, nil, nil, nil, nil, nil, nil, []QuestDef{q})
	require.NoError(t, err)
	require.NotNil(t, cat)
}

func TestValidateRejectsDuplicateCodes(t *testing.T) {
	orders := []OrderTemplate{
		{Code: "dup", Title: "One", BaseEffort: 10, MinLevel: 1},
		{Code: "dup", Title: "Two", BaseEffort: 20, MinLevel: 1},
	}

	_, err := New(orders, nil, nil, nil, nil, nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	doc := `
orders:
  - code: social_avatar
    title: Profile picture refresh
    base_effort: 90
    min_level: 1
    difficulty: easy
    estimated_minutes: 5
  - code: zine_layout
    title: Indie zine layout
    base_effort: 700
    min_level: 3
    difficulty: normal
    estimated_minutes: 30
    reward_mul: 1.1
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	base := Default()
	merged, err := LoadOverlay(base, path)
	require.NoError(t, err)

	replaced, ok := merged.Order("social_avatar")
	require.True(t, ok)
	assert.Equal(t, "Profile picture refresh", replaced.Title)
	assert.Equal(t, 90, replaced.BaseEffort)

	added, ok := merged.Order("zine_layout")
	require.True(t, ok)
	assert.Equal(t, 700, added.BaseEffort)

	assert.Len(t, merged.Orders, len(base.Orders)+1)

	// Base catalog untouched
	orig, _ := base.Order("social_avatar")
	assert.Equal(t, 80, orig.BaseEffort)
}

func TestLoadOverlayRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	doc := `
orders:
  - code: x
    title: X
    base_effort: 10
    min_level: 1
    mystery_field: true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := LoadOverlay(Default(), path)
	assert.Error(t, err)
}
