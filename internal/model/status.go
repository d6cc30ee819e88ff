package model

// WorkoutStatus represents how far a workout has been completed
type WorkoutStatus string

const (
	// WorkoutStatusNotStarted means no part of the workout is done
	WorkoutStatusNotStarted WorkoutStatus = "not_started"

	// WorkoutStatusInProgress means the workout is partly done
	WorkoutStatusInProgress WorkoutStatus = "in_progress"

	// WorkoutStatusCompleted means the workout is fully done
	WorkoutStatusCompleted WorkoutStatus = "completed"
)

// String returns the string representation of WorkoutStatus
func (ws WorkoutStatus) String() string {
	return string(ws)
}

// IsFinished returns true if nothing is left to do
func (ws WorkoutStatus) IsFinished() bool {
	return ws == WorkoutStatusCompleted
}

// IsStarted returns true once any progress has been made
func (ws WorkoutStatus) IsStarted() bool {
	return ws == WorkoutStatusInProgress || ws == WorkoutStatusCompleted
}

// StatusForRate maps a completion rate in [0,1] to a status
func StatusForRate(rate float64) WorkoutStatus {
	switch {
	case rate >= 1:
		return WorkoutStatusCompleted
	case rate <= 0:
		return WorkoutStatusNotStarted
	default:
		return WorkoutStatusInProgress
	}
}
