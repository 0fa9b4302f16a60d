package progress

import (
	"github.com/2beens/gymquest/internal/quests"
	"github.com/2beens/gymquest/internal/streak"
)

// State is the whole persisted progression of the user.
type State struct {
	Streak         streak.State `json:"streak"`
	Quests         quests.Book  `json:"quests"`
	Diamonds       int          `json:"diamonds"`
	TotalWorkouts  int          `json:"totalWorkouts"`
	SelectedPlanID string       `json:"selectedPlanId,omitempty"`
	SelectedPathID string       `json:"selectedPathId,omitempty"`
}

func (s State) clone() State {
	out := s
	out.Quests.Daily = append([]quests.Quest(nil), s.Quests.Daily...)
	out.Quests.Weekly = append([]quests.Quest(nil), s.Quests.Weekly...)
	return out
}
