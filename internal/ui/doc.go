package ui

// Package ui contains the Fyne-based user interface: a tab bar (bottom on
// phones) with the workout list and video panel, the progress chart, and the
// settings form. Horizontal swipes switch tabs. All UI strings are localized
// via Localization.
