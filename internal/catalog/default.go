package catalog

import "github.com/2beens/gymquest/internal/session"

var defaultPlans = []session.Plan{
	{ID: "jumping_jacks", Title: "Jumping Jacks", DurationSeconds: 30, Sets: 2, RestBetweenSetsSeconds: 15, RestBetweenExercisesSeconds: 30},
	{ID: "squats", Title: "Squats", DurationSeconds: 40, Sets: 3, RestBetweenSetsSeconds: 20, RestBetweenExercisesSeconds: 45},
	{ID: "pushups", Title: "Push-ups", DurationSeconds: 30, Sets: 3, RestBetweenSetsSeconds: 30, RestBetweenExercisesSeconds: 60},
	{ID: "lunges", Title: "Lunges", DurationSeconds: 40, Sets: 3, RestBetweenSetsSeconds: 20, RestBetweenExercisesSeconds: 45},
	{ID: "plank", Title: "Plank", DurationSeconds: 45, Sets: 3, RestBetweenSetsSeconds: 20, RestBetweenExercisesSeconds: 45},
	{ID: "mountain_climbers", Title: "Mountain Climbers", DurationSeconds: 30, Sets: 3, RestBetweenSetsSeconds: 20, RestBetweenExercisesSeconds: 60},
	{ID: "wall_sit", Title: "Wall Sit", DurationSeconds: 60, Sets: 2, RestBetweenSetsSeconds: 30, RestBetweenExercisesSeconds: 60},
	{ID: "burpees", Title: "Burpees", DurationSeconds: 30, Sets: 4, RestBetweenSetsSeconds: 30, RestBetweenExercisesSeconds: 90},
}

var defaultPaths = []Path{
	{ID: "beginner", Title: "First Steps", Levels: []string{"jumping_jacks", "squats", "pushups", "lunges", "burpees"}},
	{ID: "core", Title: "Core Strength", Levels: []string{"plank", "mountain_climbers", "wall_sit"}},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultPlans, defaultPaths)
	if err != nil {
		panic(err)
	}
	return c
}
