// Package quest walks branching story quests: stage graph traversal, trait
// payload accumulation, and dominant-trait reward resolution.
package quest

import (
	"errors"
	"fmt"
	"math"

	"clickstudio/internal/catalog"
	"clickstudio/internal/player"
)

var (
	// ErrAlreadyComplete is returned when re-entering a finished quest
	ErrAlreadyComplete = errors.New("quest already complete")
	// ErrUnknownChoice is returned for an option text no stage offers
	ErrUnknownChoice = errors.New("unrecognized choice")
)

// View presents the current stage to the player
type View struct {
	QuestCode string
	QuestName string
	Stage     string
	Text      string
	Options   []string
}

// Result reports what one choice did
type Result struct {
	Next         *View // nil once finished
	Finished     bool
	RewardKey    string
	Money        int64
	XP           int64
	LevelsGained int
	ItemGranted  string // item code on first completion grant
}

func viewOf(def catalog.QuestDef, stageName string) (View, error) {
	stage, ok := def.Flow[stageName]
	if !ok {
		return View{}, fmt.Errorf("quest %s: stage %q not in flow", def.Code, stageName)
	}
	opts := make([]string, 0, len(stage.Options))
	for _, o := range stage.Options {
		opts = append(opts, o.Text)
	}
	return View{
		QuestCode: def.Code,
		QuestName: def.Name,
		Stage:     stageName,
		Text:      stage.Text,
		Options:   opts,
	}, nil
}

// Begin starts the quest or resumes a run in progress. A finished quest
// rejects re-entry.
func Begin(def catalog.QuestDef, p *player.Player) (View, error) {
	progress, ok := p.Quests[def.Code]
	if ok && progress.Done {
		return View{}, fmt.Errorf("quest %s: %w", def.Code, ErrAlreadyComplete)
	}
	if !ok || progress.Stage == "" {
		entry, err := def.EntryStage()
		if err != nil {
			return View{}, err
		}
		progress = player.QuestProgress{Stage: entry, Traits: map[string]int{}}
		p.Quests[def.Code] = progress
	}
	return viewOf(def, progress.Stage)
}

// Choose applies the option matching choiceText at the current stage. An
// unknown option leaves the player untouched. xpPct scales the finale XP
// payout.
func Choose(def catalog.QuestDef, p *player.Player, choiceText string, xpPct float64) (Result, error) {
	progress, ok := p.Quests[def.Code]
	if !ok || progress.Stage == "" {
		if _, err := Begin(def, p); err != nil {
			return Result{}, err
		}
		progress = p.Quests[def.Code]
	}
	if progress.Done {
		return Result{}, fmt.Errorf("quest %s: %w", def.Code, ErrAlreadyComplete)
	}

	stage, ok := def.Flow[progress.Stage]
	if !ok {
		return Result{}, fmt.Errorf("quest %s: stage %q not in flow", def.Code, progress.Stage)
	}

	var chosen *catalog.QuestOption
	for i := range stage.Options {
		if stage.Options[i].Text == choiceText {
			chosen = &stage.Options[i]
			break
		}
	}
	if chosen == nil {
		return Result{}, fmt.Errorf("quest %s stage %s: %w", def.Code, progress.Stage, ErrUnknownChoice)
	}

	if progress.Traits == nil {
		progress.Traits = map[string]int{}
	}
	for trait, delta := range chosen.Delta {
		progress.Traits[trait] += delta
	}

	next := chosen.Next
	if next == "" {
		next = def.StageAfter(progress.Stage)
	}
	if next == catalog.FinaleStage {
		return finalize(def, p, progress, xpPct)
	}

	progress.Stage = next
	p.Quests[def.Code] = progress

	view, err := viewOf(def, next)
	if err != nil {
		return Result{}, err
	}
	return Result{Next: &view}, nil
}

func finalize(def catalog.QuestDef, p *player.Player, progress player.QuestProgress, xpPct float64) (Result, error) {
	key := RewardKey(def, progress.Traits)
	reward, ok := def.Rewards[key]
	if !ok {
		reward = def.Rewards["default"]
	}

	out := Result{Finished: true, RewardKey: key}

	out.Money = reward.Money
	p.Credit(reward.Money)

	out.XP = int64(math.Round(float64(reward.XP) * (1 + xpPct)))
	out.LevelsGained = p.GainXP(out.XP)

	if reward.ItemCode != "" && !p.Items[reward.ItemCode] {
		p.Items[reward.ItemCode] = true
		out.ItemGranted = reward.ItemCode
	}

	progress.Done = true
	progress.Stage = catalog.FinaleStage
	p.Quests[def.Code] = progress
	return out, nil
}

// RewardKey picks the reward branch: the first declared trait holding the
// strictly highest positive score, falling back to "default"
func RewardKey(def catalog.QuestDef, traits map[string]int) string {
	bestKey := "default"
	bestValue := math.MinInt32
	for _, trait := range def.Traits {
		if traits[trait] > bestValue {
			bestValue = traits[trait]
			bestKey = trait
		}
	}
	if bestValue <= 0 {
		return "default"
	}
	return bestKey
}
