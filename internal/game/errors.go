package game

import (
	"errors"
	"fmt"

	"clickstudio/internal/quest"
)

var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrNoActiveOrder      = errors.New("no active order")
	ErrOrderAlreadyActive = errors.New("an order is already active")
	ErrUnknownOrder       = errors.New("unknown order template")
	ErrUnknownBoost       = errors.New("unknown boost")
	ErrUnknownItem        = errors.New("unknown item")
	ErrUnknownRole        = errors.New("unknown team role")
	ErrUnknownSkill       = errors.New("unknown skill")
	ErrUnknownQuest       = errors.New("unknown quest")
	ErrUnknownEvent       = errors.New("unknown event")
	ErrItemNotForSale     = errors.New("item cannot be bought")
	ErrItemAlreadyOwned   = errors.New("item already owned")
	ErrNothingToEquip     = errors.New("item not owned")
	ErrRateLimited        = errors.New("click limit reached")
	ErrPendingEventExists = errors.New("an event is already waiting for a choice")
	ErrNoPendingEvent     = errors.New("no event is waiting for a choice")
	ErrNoSkillChoice      = errors.New("no skill choice available")

	// ErrQuestAlreadyComplete and ErrUnrecognizedChoice alias the quest
	// package sentinels so callers match one error regardless of which
	// surface produced it.
	ErrQuestAlreadyComplete = quest.ErrAlreadyComplete
	ErrUnrecognizedChoice   = quest.ErrUnknownChoice
)

// LevelLockedError reports an operation gated behind a level the player has
// not reached yet
type LevelLockedError struct {
	Required int
}

func (e *LevelLockedError) Error() string {
	return fmt.Sprintf("requires level %d", e.Required)
}

// ErrLevelLocked matches any LevelLockedError via errors.Is
var ErrLevelLocked = errors.New("level locked")

func (e *LevelLockedError) Is(target error) bool {
	return target == ErrLevelLocked
}

func levelLocked(required int) error {
	return &LevelLockedError{Required: required}
}
