package model

// Package model defines the workout data shown by the app: workouts, their
// completion status, the user's profile, and the bundled sample catalog.
// Everything here lives in memory; nothing is written back.
