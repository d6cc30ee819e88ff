package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"github.com/patchworksports/patchwork-sports/internal/config"
	"github.com/patchworksports/patchwork-sports/internal/logger"
	"github.com/patchworksports/patchwork-sports/internal/model"
	"github.com/patchworksports/patchwork-sports/internal/video"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	catalog  *model.Catalog
	resolver *video.Resolver
	locator  video.Locator

	tabs         *container.AppTabs
	videoPanel   *VideoPanel
	workoutsView *WorkoutsView
	progressView *ProgressView
	settingsView *SettingsView
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, catalog *model.Catalog, locator video.Locator) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(),
		catalog:      catalog,
		resolver:     video.NewResolver(),
		locator:      locator,
	}

	ApplyAppearance(app, settings.GetDarkMode())

	ui.setupUI(TabWorkouts)
	logger.Log.Infow("root UI initialized",
		"workouts", len(catalog.Workouts),
		"language", localization.GetCurrentLanguage(),
		"video_host", locator.Host(),
	)
	return ui
}

// setupUI creates and arranges all UI components, selecting tab selected
func (ui *RootUI) setupUI(selected int) {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.videoPanel = NewVideoPanel(ui.resolver, ui.locator, ui.localization, ui.mobile)
	ui.videoPanel.SetURL(ui.settings.GetLastVideoURL())
	ui.videoPanel.SetOnChanged(func(ref video.Reference) {
		ui.settings.SetLastVideoURL(ref.Raw())
	})

	ui.workoutsView = NewWorkoutsView(ui.catalog, ui.localization, ui.videoPanel)
	ui.progressView = NewProgressView(ui.catalog, ui.localization, ui.mobile)
	ui.settingsView = NewSettingsView(ui.app, ui.settings, ui.localization, ui.catalog.Profile)
	ui.settingsView.SetOnLanguageChanged(ui.onLanguageChange)

	ui.tabs = container.NewAppTabs(
		container.NewTabItemWithIcon(ui.localization.GetText(KeyTabWorkouts), theme.ListIcon(), ui.workoutsView.Content()),
		container.NewTabItemWithIcon(ui.localization.GetText(KeyTabProgress), theme.HistoryIcon(), ui.progressView.Content()),
		container.NewTabItemWithIcon(ui.localization.GetText(KeyTabSettings), theme.SettingsIcon(), ui.settingsView.Content()),
	)
	ui.tabs.SetTabLocation(ui.mobile.TabLocation())
	ui.tabs.OnSelected = ui.onTabSelected
	ui.tabs.SelectIndex(selected)

	ui.window.SetContent(NewSwipeArea(ui.tabs, ui.onGesture))
}

// onGesture moves between tabs on horizontal swipes
func (ui *RootUI) onGesture(g Gesture) {
	current := ui.tabs.SelectedIndex()
	switch g {
	case GestureSwipeLeft:
		if current < len(ui.tabs.Items)-1 {
			ui.tabs.SelectIndex(current + 1)
		}
	case GestureSwipeRight:
		if current > 0 {
			ui.tabs.SelectIndex(current - 1)
		}
	}
}

// onTabSelected runs per-tab appearance hooks
func (ui *RootUI) onTabSelected(item *container.TabItem) {
	if item == nil {
		return
	}
	if ui.tabs.SelectedIndex() == TabProgress {
		ui.progressView.OnShow()
	}
}

// onLanguageChange rebuilds the UI with the new language and returns to settings
func (ui *RootUI) onLanguageChange(code string) {
	ui.localization.SetLanguage(code)

	fyne.Do(func() {
		ui.setupUI(TabSettings)
	})
}

// Tabs returns the root tab container
func (ui *RootUI) Tabs() *container.AppTabs {
	return ui.tabs
}

// VideoPanel returns the video panel on the workouts tab
func (ui *RootUI) VideoPanel() *VideoPanel {
	return ui.videoPanel
}
