package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	PercentFormat   = "%d%%"
	DashPlaceholder = "—"
)

// Layout sizing (workout rows / lists)
const (
	RowMinHeight float32 = 56
)

// Progress chart sizing
const (
	ChartMaxBarHeight float32 = 200
	ChartBarWidth     float32 = 30
	ChartBarSpacing   float32 = 15
	ChartBarRadius    float32 = 5
	ChartLabelGap     float32 = 4
)

// Animation
const (
	ChartGrowDuration = 1 * time.Second
)

// Tab indexes in the root tab bar
const (
	TabWorkouts = iota
	TabProgress
	TabSettings
)
