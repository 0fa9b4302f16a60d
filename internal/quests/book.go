package quests

import (
	"fmt"
	"time"

	"github.com/2beens/gymquest/internal/clock"
)

// Book holds the active daily and weekly quest lists.
type Book struct {
	Daily     []Quest `json:"daily"`
	Weekly    []Quest `json:"weekly"`
	LastReset string  `json:"lastReset"`
}

// ResetIfNeeded regenerates both lists when the last reset happened on a
// different calendar day than today.
func (b *Book) ResetIfNeeded(today time.Time, gen *Generator) (bool, error) {
	day := clock.DayKey(today)
	if b.LastReset == day {
		return false, nil
	}

	daily, err := gen.Daily(today)
	if err != nil {
		return false, fmt.Errorf("generate daily quests: %w", err)
	}
	weekly, err := gen.Weekly(today)
	if err != nil {
		return false, fmt.Errorf("generate weekly quests: %w", err)
	}

	b.Daily = daily
	b.Weekly = weekly
	b.LastReset = day
	return true, nil
}

// Apply runs ApplyProgress over both lists and returns the newly completed quests.
func (b *Book) Apply(params ProgressParams, now time.Time) []Quest {
	var completedDaily, completedWeekly []Quest
	b.Daily, completedDaily = ApplyProgress(b.Daily, params, now)
	b.Weekly, completedWeekly = ApplyProgress(b.Weekly, params, now)
	return append(completedDaily, completedWeekly...)
}

// Repair self-heals both lists, see Repair.
func (b *Book) Repair() int {
	return Repair(b.Daily) + Repair(b.Weekly)
}
