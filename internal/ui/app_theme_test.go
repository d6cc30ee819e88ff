package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

func TestAppTheme_ForcesVariant(t *testing.T) {
	light := NewAppTheme(false)
	dark := NewAppTheme(true)

	// The requested variant is ignored in favour of the flag
	if light.Color(theme.ColorNameBackground, theme.VariantDark) != light.Color(theme.ColorNameBackground, theme.VariantLight) {
		t.Error("Light theme background should not depend on requested variant")
	}
	if dark.Color(theme.ColorNameBackground, theme.VariantLight) != dark.Color(theme.ColorNameBackground, theme.VariantDark) {
		t.Error("Dark theme background should not depend on requested variant")
	}
	if light.Color(theme.ColorNameBackground, theme.VariantLight) == dark.Color(theme.ColorNameBackground, theme.VariantLight) {
		t.Error("Light and dark backgrounds should differ")
	}
	if light.Color(theme.ColorNameForeground, theme.VariantLight) == dark.Color(theme.ColorNameForeground, theme.VariantLight) {
		t.Error("Light and dark foregrounds should differ")
	}
}

func TestAppTheme_IsDark(t *testing.T) {
	if NewAppTheme(false).(*AppTheme).IsDark() {
		t.Error("Expected light theme")
	}
	if !NewAppTheme(true).(*AppTheme).IsDark() {
		t.Error("Expected dark theme")
	}
}

func TestAppTheme_Fallbacks(t *testing.T) {
	th := NewAppTheme(false)

	if th.Size(theme.SizeNamePadding) != theme.DefaultTheme().Size(theme.SizeNamePadding) {
		t.Error("Padding should fall back to the default theme")
	}
	if th.Icon(theme.IconNameSettings) == nil {
		t.Error("Settings icon should resolve")
	}
	if th.Font(fyne.TextStyle{}) == nil {
		t.Error("Regular font should resolve")
	}
}
