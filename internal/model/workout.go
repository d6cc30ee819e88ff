package model

import (
	"github.com/google/uuid"
)

// Workout represents a single workout and how much of it is done
type Workout struct {
	ID             uuid.UUID
	Name           string
	CompletionRate float64 // 0.0 to 1.0
	VideoURL       string  // optional link to an instruction video
}

// NewWorkout creates a workout with a fresh ID and a clamped completion rate
func NewWorkout(name string, rate float64) Workout {
	return Workout{
		ID:             uuid.New(),
		Name:           name,
		CompletionRate: ClampRate(rate),
	}
}

// Percent returns the completion rate as a whole percentage, truncated
func (w Workout) Percent() int {
	return int(w.CompletionRate * 100)
}

// Status returns the completion status derived from the rate
func (w Workout) Status() WorkoutStatus {
	return StatusForRate(w.CompletionRate)
}

// HasVideo reports whether the workout links an instruction video
func (w Workout) HasVideo() bool {
	return w.VideoURL != ""
}

// ClampRate limits a completion rate to [0, 1]
func ClampRate(rate float64) float64 {
	if rate < 0 {
		return 0
	}
	if rate > 1 {
		return 1
	}
	return rate
}

// Profile holds the personal information shown in settings
type Profile struct {
	Name  string
	Email string
}
