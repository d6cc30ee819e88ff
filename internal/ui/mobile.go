package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI adjustments
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a new mobile UI helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{device: fyne.CurrentDevice()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device != nil && m.device.IsMobile()
}

// TabLocation returns where the root tab bar goes: the bottom on phones,
// the top on desktop where a bottom bar looks out of place.
func (m *MobileUI) TabLocation() container.TabLocation {
	if m.IsMobileDevice() {
		return container.TabLocationBottom
	}
	return container.TabLocationTop
}

// CreateMobileEntry creates an entry field sized for touch input
func (m *MobileUI) CreateMobileEntry(placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	entry.Wrapping = fyne.TextWrapOff
	return entry
}

// GetMobileSpacing returns appropriate spacing for the device
func (m *MobileUI) GetMobileSpacing() float32 {
	if m.IsMobileDevice() {
		return 16 // Larger spacing for mobile
	}
	return 8 // Standard spacing for desktop
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	if m.device == nil {
		return false
	}
	orientation := m.device.Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}
