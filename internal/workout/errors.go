package workout

import "errors"

var (
	ErrNoExercises             = errors.New("workout has no exercises")
	ErrDuplicateExercise       = errors.New("duplicate exercise in workout")
	ErrExerciseIndexOutOfRange = errors.New("exercise index out of range")
	ErrExerciseCompleted       = errors.New("exercise already completed")
	ErrNegativeDuration        = errors.New("negative set duration")
	ErrWorkoutCompleted        = errors.New("workout already completed")
)
