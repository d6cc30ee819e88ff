package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/patchworksports/patchwork-sports/internal/logger"
	"github.com/patchworksports/patchwork-sports/internal/model"
)

// WorkoutsView lists the catalog workouts above the video panel
type WorkoutsView struct {
	catalog      *model.Catalog
	localization *Localization
	videoPanel   *VideoPanel

	list    *widget.List
	content fyne.CanvasObject
}

// NewWorkoutsView creates the workouts tab content
func NewWorkoutsView(catalog *model.Catalog, localization *Localization, videoPanel *VideoPanel) *WorkoutsView {
	v := &WorkoutsView{
		catalog:      catalog,
		localization: localization,
		videoPanel:   videoPanel,
	}

	v.list = widget.NewList(
		func() int {
			return len(v.catalog.Workouts)
		},
		func() fyne.CanvasObject { return NewWorkoutRow(v.localization) },
		func(id widget.ListItemID, obj fyne.CanvasObject) { v.updateItem(id, obj) },
	)
	v.list.OnSelected = v.onSelected

	videoCard := widget.NewCard(localization.GetText(KeyVideo), "", videoPanel.Container())

	v.content = container.NewBorder(
		heading(localization.GetText(KeyWorkouts)), // top
		videoCard, // bottom
		nil,       // left
		nil,       // right
		v.list,    // center
	)
	return v
}

// Content returns the tab content
func (v *WorkoutsView) Content() fyne.CanvasObject {
	return v.content
}

// updateItem fills a recycled row with workout id
func (v *WorkoutsView) updateItem(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(v.catalog.Workouts) {
		return
	}
	if row, ok := obj.(*WorkoutRow); ok {
		row.SetWorkout(v.catalog.Workouts[id])
	}
}

// onSelected loads the selected workout's video, if it has one
func (v *WorkoutsView) onSelected(id widget.ListItemID) {
	if id < 0 || id >= len(v.catalog.Workouts) {
		return
	}

	w := v.catalog.Workouts[id]
	logger.Log.Debugw("workout selected", "id", w.ID, "name", w.Name)
	if w.HasVideo() {
		v.videoPanel.SetURL(w.VideoURL)
	}
}

// heading creates a large title label
func heading(text string) *widget.RichText {
	return widget.NewRichText(&widget.TextSegment{
		Text:  text,
		Style: widget.RichTextStyleHeading,
	})
}
