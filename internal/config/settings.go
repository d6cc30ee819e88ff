package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyDarkMode             = "dark_mode"
	KeyNotificationsEnabled = "notifications_enabled"
	KeyLanguage             = "app_language"
	KeyLastVideoURL         = "last_video_url"
)

// Default values
const (
	DefaultDarkMode             = false
	DefaultNotificationsEnabled = true
	DefaultLanguage             = "system"
)

// Settings manages user preferences. Only UI flags are stored here;
// workout data is never persisted.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDarkMode returns whether the dark appearance is selected
func (s *Settings) GetDarkMode() bool {
	return s.boolWithDefault(KeyDarkMode, DefaultDarkMode)
}

// SetDarkMode sets the appearance flag
func (s *Settings) SetDarkMode(dark bool) {
	s.app.Preferences().SetBool(KeyDarkMode, dark)
}

// GetNotificationsEnabled returns whether notifications are enabled
func (s *Settings) GetNotificationsEnabled() bool {
	return s.boolWithDefault(KeyNotificationsEnabled, DefaultNotificationsEnabled)
}

// SetNotificationsEnabled enables or disables notifications
func (s *Settings) SetNotificationsEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyNotificationsEnabled, enabled)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLastVideoURL returns the last URL pasted into the video panel
func (s *Settings) GetLastVideoURL() string {
	return s.app.Preferences().String(KeyLastVideoURL)
}

// SetLastVideoURL remembers the URL pasted into the video panel
func (s *Settings) SetLastVideoURL(url string) {
	s.app.Preferences().SetString(KeyLastVideoURL, url)
}

// boolWithDefault reads a flag, storing def first if the key is unset.
// Preferences has no existence check, so an unset key is one that reads
// back as each fallback.
func (s *Settings) boolWithDefault(key string, def bool) bool {
	prefs := s.app.Preferences()
	if prefs.BoolWithFallback(key, true) != prefs.BoolWithFallback(key, false) {
		prefs.SetBool(key, def)
		return def
	}
	return prefs.Bool(key)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
