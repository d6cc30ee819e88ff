package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "patchwork-sports.png"
)

// LoadAppIcon loads the app icon from the working directory.
// Packaged builds get their icon from the bundle instead.
func LoadAppIcon() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
