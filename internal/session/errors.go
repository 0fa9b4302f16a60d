package session

import (
	"errors"
	"fmt"
)

var ErrInvalidPlan = errors.New("invalid exercise plan")

// ConfigError is returned when a plan can not be used to drive a session.
type ConfigError struct {
	PlanID string
	Field  string
	Value  int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s [%s]: %s must be positive, got %d", ErrInvalidPlan, e.PlanID, e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidPlan
}
