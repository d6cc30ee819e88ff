package video

// Package video resolves pasted video-sharing URLs into video identifiers and
// builds embeddable playback locators from them. Resolution is a pure
// function: a missing identifier is an ordinary result, not an error.
