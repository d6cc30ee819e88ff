package model

import "testing"

func TestWorkoutStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   WorkoutStatus
		expected bool
	}{
		{WorkoutStatusNotStarted, false},
		{WorkoutStatusInProgress, false},
		{WorkoutStatusCompleted, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("WorkoutStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestWorkoutStatus_IsStarted(t *testing.T) {
	tests := []struct {
		status   WorkoutStatus
		expected bool
	}{
		{WorkoutStatusNotStarted, false},
		{WorkoutStatusInProgress, true},
		{WorkoutStatusCompleted, true},
	}

	for _, test := range tests {
		result := test.status.IsStarted()
		if result != test.expected {
			t.Errorf("WorkoutStatus(%s).IsStarted() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestStatusForRate(t *testing.T) {
	tests := []struct {
		rate     float64
		expected WorkoutStatus
	}{
		{-0.5, WorkoutStatusNotStarted},
		{0, WorkoutStatusNotStarted},
		{0.01, WorkoutStatusInProgress},
		{0.6, WorkoutStatusInProgress},
		{0.999, WorkoutStatusInProgress},
		{1, WorkoutStatusCompleted},
		{1.2, WorkoutStatusCompleted},
	}

	for _, test := range tests {
		result := StatusForRate(test.rate)
		if result != test.expected {
			t.Errorf("StatusForRate(%v) = %s, expected %s", test.rate, result, test.expected)
		}
	}
}

func TestWorkoutStatus_String(t *testing.T) {
	status := WorkoutStatusInProgress
	expected := "in_progress"
	result := status.String()

	if result != expected {
		t.Errorf("WorkoutStatus.String() = %s, expected %s", result, expected)
	}
}
