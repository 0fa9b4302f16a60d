package session

import (
	"fmt"
	"strings"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhasePreparing
	PhaseCountdown
	PhaseActive
	PhasePaused
	PhaseRest
	PhaseCompleted
)

var phaseNames = map[Phase]string{
	PhaseIdle:      "idle",
	PhasePreparing: "preparing",
	PhaseCountdown: "countdown",
	PhaseActive:    "active",
	PhasePaused:    "paused",
	PhaseRest:      "rest",
	PhaseCompleted: "completed",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for phase, name := range phaseNames {
		if strings.EqualFold(name, string(text)) {
			*p = phase
			return nil
		}
	}
	return fmt.Errorf("unknown phase: %s", text)
}

// HasTimer reports whether ticks advance the phase.
func (p Phase) HasTimer() bool {
	switch p {
	case PhasePreparing, PhaseCountdown, PhaseActive, PhaseRest:
		return true
	default:
		return false
	}
}
