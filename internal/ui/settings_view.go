package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/patchworksports/patchwork-sports/internal/config"
	"github.com/patchworksports/patchwork-sports/internal/logger"
	"github.com/patchworksports/patchwork-sports/internal/model"
)

// SettingsView represents the settings form
type SettingsView struct {
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	profile      model.Profile

	// UI components
	notificationsCheck *widget.Check
	darkModeCheck      *widget.Check
	languageSelect     *widget.Select
	languageCodes      map[string]string // display name -> code
	content            fyne.CanvasObject

	onLanguageChanged func(code string)
}

// NewSettingsView creates the settings tab content
func NewSettingsView(app fyne.App, settings *config.Settings, localization *Localization, profile model.Profile) *SettingsView {
	sv := &SettingsView{
		app:          app,
		settings:     settings,
		localization: localization,
		profile:      profile,
	}

	sv.createUI()
	return sv
}

// Content returns the tab content
func (sv *SettingsView) Content() fyne.CanvasObject {
	return sv.content
}

// SetOnLanguageChanged registers the callback fired after the language is saved
func (sv *SettingsView) SetOnLanguageChanged(fn func(code string)) {
	sv.onLanguageChanged = fn
}

// createUI creates the settings form UI
func (sv *SettingsView) createUI() {
	l := sv.localization

	personal := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyName), secondaryLabel(sv.profile.Name)),
		widget.NewFormItem(l.GetText(KeyEmail), secondaryLabel(sv.profile.Email)),
	)

	// Load current values before wiring callbacks so loading does not save
	sv.notificationsCheck = widget.NewCheck(l.GetText(KeyEnableNotifications), nil)
	sv.notificationsCheck.SetChecked(sv.settings.GetNotificationsEnabled())
	sv.notificationsCheck.OnChanged = sv.onNotificationsChanged

	sv.darkModeCheck = widget.NewCheck(l.GetText(KeyDarkMode), nil)
	sv.darkModeCheck.SetChecked(sv.settings.GetDarkMode())
	sv.darkModeCheck.OnChanged = sv.onDarkModeChanged

	options := sv.settings.GetLanguageOptions()
	codes := make([]string, 0, len(options))
	for code := range options {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	sv.languageCodes = make(map[string]string, len(codes))
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		sv.languageCodes[options[code]] = code
		names = append(names, options[code])
	}
	sv.languageSelect = widget.NewSelect(names, nil)
	sv.languageSelect.SetSelected(options[sv.settings.GetLanguage()])
	sv.languageSelect.OnChanged = sv.onLanguageSelected

	sv.content = container.NewVScroll(container.NewVBox(
		heading(l.GetText(KeyTabSettings)),
		widget.NewCard(l.GetText(KeyPersonalInformation), "", personal),
		widget.NewCard(l.GetText(KeyNotifications), "", sv.notificationsCheck),
		widget.NewCard(l.GetText(KeyAppearance), "", sv.darkModeCheck),
		widget.NewCard(l.GetText(KeyLanguage), "", sv.languageSelect),
	))
}

// onNotificationsChanged saves the notifications flag
func (sv *SettingsView) onNotificationsChanged(enabled bool) {
	sv.settings.SetNotificationsEnabled(enabled)
	logger.Log.Infow("notifications toggled", "enabled", enabled)

	if enabled {
		sv.app.SendNotification(fyne.NewNotification(
			sv.localization.GetText(KeyAppTitle),
			sv.localization.GetText(KeyNotificationsEnabled),
		))
	}
}

// onDarkModeChanged saves the appearance flag and applies it at once
func (sv *SettingsView) onDarkModeChanged(dark bool) {
	sv.settings.SetDarkMode(dark)
	ApplyAppearance(sv.app, dark)
	logger.Log.Infow("appearance changed", "dark", dark)
}

// onLanguageSelected saves the chosen language
func (sv *SettingsView) onLanguageSelected(name string) {
	code, ok := sv.languageCodes[name]
	if !ok {
		return
	}

	sv.settings.SetLanguage(code)
	logger.Log.Infow("language changed", "language", code)
	if sv.onLanguageChanged != nil {
		sv.onLanguageChanged(code)
	}
}

// ApplyAppearance installs the light or dark app theme
func ApplyAppearance(app fyne.App, dark bool) {
	app.Settings().SetTheme(NewAppTheme(dark))
}

// secondaryLabel creates a read-only value label
func secondaryLabel(text string) *widget.Label {
	label := widget.NewLabel(text)
	label.Importance = widget.LowImportance
	label.Alignment = fyne.TextAlignTrailing
	return label
}
