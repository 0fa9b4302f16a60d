package session

type Plan struct {
	ID                          string `json:"id" toml:"id" yaml:"id"`
	Title                       string `json:"title" toml:"title" yaml:"title"`
	DurationSeconds             int    `json:"durationSeconds" toml:"duration_seconds" yaml:"duration_seconds"`
	Sets                        int    `json:"sets" toml:"sets" yaml:"sets"`
	RestBetweenSetsSeconds      int    `json:"restBetweenSetsSeconds" toml:"rest_between_sets_seconds" yaml:"rest_between_sets_seconds"`
	RestBetweenExercisesSeconds int    `json:"restBetweenExercisesSeconds" toml:"rest_between_exercises_seconds" yaml:"rest_between_exercises_seconds"`
}

func (p Plan) Validate() error {
	if p.DurationSeconds <= 0 {
		return &ConfigError{PlanID: p.ID, Field: "duration", Value: p.DurationSeconds}
	}
	if p.Sets <= 0 {
		return &ConfigError{PlanID: p.ID, Field: "sets", Value: p.Sets}
	}
	if p.RestBetweenSetsSeconds < 0 {
		return &ConfigError{PlanID: p.ID, Field: "rest between sets", Value: p.RestBetweenSetsSeconds}
	}
	if p.RestBetweenExercisesSeconds < 0 {
		return &ConfigError{PlanID: p.ID, Field: "rest between exercises", Value: p.RestBetweenExercisesSeconds}
	}
	return nil
}

// PlannedSeconds is the total work time of the plan, rest excluded.
func (p Plan) PlannedSeconds() int {
	return p.DurationSeconds * p.Sets
}
