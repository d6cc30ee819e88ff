package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDarkMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetDarkMode() != DefaultDarkMode {
		t.Errorf("Expected default dark mode %v, got %v", DefaultDarkMode, settings.GetDarkMode())
	}

	// Test setting custom value
	settings.SetDarkMode(true)
	if !settings.GetDarkMode() {
		t.Error("Expected dark mode to be enabled")
	}

	settings.SetDarkMode(false)
	if settings.GetDarkMode() {
		t.Error("Expected dark mode to be disabled")
	}
}

func TestNotificationsEnabled(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetNotificationsEnabled() != DefaultNotificationsEnabled {
		t.Errorf("Expected default notifications %v, got %v", DefaultNotificationsEnabled, settings.GetNotificationsEnabled())
	}

	// Test setting custom value
	settings.SetNotificationsEnabled(false)
	if settings.GetNotificationsEnabled() {
		t.Error("Expected notifications to be disabled")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}

	// Test empty language defaults back
	settings.SetLanguage("")
	if settings.GetLanguage() != DefaultLanguage {
		t.Errorf("Empty language should default to %s, got %s", DefaultLanguage, settings.GetLanguage())
	}
}

func TestLastVideoURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLastVideoURL() != "" {
		t.Errorf("Expected empty last video URL, got %s", settings.GetLastVideoURL())
	}

	url := "https://youtu.be/dQw4w9WgXcQ"
	settings.SetLastVideoURL(url)
	if settings.GetLastVideoURL() != url {
		t.Errorf("Expected last video URL %s, got %s", url, settings.GetLastVideoURL())
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestFlagDefaultsWrittenBack(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	prefs := app.Preferences()

	// Reading an unset flag stores its default, so the opposite fallback
	// no longer applies
	settings.GetDarkMode()
	if prefs.BoolWithFallback(KeyDarkMode, !DefaultDarkMode) != DefaultDarkMode {
		t.Error("Expected dark mode default to be stored")
	}

	settings.GetNotificationsEnabled()
	if prefs.BoolWithFallback(KeyNotificationsEnabled, !DefaultNotificationsEnabled) != DefaultNotificationsEnabled {
		t.Error("Expected notifications default to be stored")
	}

	// Stored values are not overwritten by later reads
	settings.SetNotificationsEnabled(false)
	if settings.GetNotificationsEnabled() {
		t.Error("Expected stored notifications flag to be kept")
	}
	if prefs.Bool(KeyNotificationsEnabled) {
		t.Error("Expected notifications to stay disabled in preferences")
	}
}
