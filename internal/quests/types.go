package quests

import "fmt"

type Type string

const (
	TypeWorkouts       Type = "workouts"
	TypeStreak         Type = "streak"
	TypeDuration       Type = "duration"
	TypePerfectForm    Type = "perfect_form"
	TypeMorningWorkout Type = "morning_workout"
	TypeEveningWorkout Type = "evening_workout"
)

// AllTypes is the default generation pool.
var AllTypes = []Type{
	TypeWorkouts,
	TypeStreak,
	TypeDuration,
	TypePerfectForm,
	TypeMorningWorkout,
	TypeEveningWorkout,
}

const (
	morningFromHour = 6
	morningToHour   = 12
	eveningFromHour = 18
	eveningToHour   = 22
)

type targetRange struct {
	min, max int
}

type rule struct {
	daily  targetRange
	weekly targetRange
	title  string
}

func (t Type) rule() (rule, error) {
	switch t {
	case TypeWorkouts:
		return rule{targetRange{1, 3}, targetRange{5, 12}, "Complete %d workouts"}, nil
	case TypeStreak:
		return rule{targetRange{1, 1}, targetRange{3, 7}, "Extend your streak by %d days"}, nil
	case TypeDuration:
		return rule{targetRange{5, 20}, targetRange{30, 120}, "Train for %d minutes"}, nil
	case TypePerfectForm:
		return rule{targetRange{1, 2}, targetRange{3, 8}, "Finish %d sessions with perfect form"}, nil
	case TypeMorningWorkout:
		return rule{targetRange{1, 1}, targetRange{2, 5}, "Work out %d times before noon"}, nil
	case TypeEveningWorkout:
		return rule{targetRange{1, 1}, targetRange{2, 5}, "Work out %d times in the evening"}, nil
	default:
		return rule{}, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
}

func (t Type) Valid() bool {
	_, err := t.rule()
	return err == nil
}

// increment is how far one progress event moves a quest of this type.
func (t Type) increment(p ProgressParams) int {
	switch t {
	case TypeWorkouts:
		return p.Workouts
	case TypeStreak:
		return p.StreakDelta
	case TypeDuration:
		return p.DurationMinutes
	case TypePerfectForm:
		return p.PerfectCount
	case TypeMorningWorkout:
		if p.Workouts > 0 && inWindow(p.CurrentHour, morningFromHour, morningToHour) {
			return 1
		}
		return 0
	case TypeEveningWorkout:
		if p.Workouts > 0 && inWindow(p.CurrentHour, eveningFromHour, eveningToHour) {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func inWindow(hour, from, to int) bool {
	return hour >= from && hour < to
}
