package ui

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/patchworksports/patchwork-sports/internal/model"
)

// ProgressView shows per-workout completion as a list and as a bar chart
type ProgressView struct {
	catalog      *model.Catalog
	localization *Localization

	chart        *BarChart
	summaryLabel *widget.Label
	content      fyne.CanvasObject
}

// NewProgressView creates the progress tab content
func NewProgressView(catalog *model.Catalog, localization *Localization, mobile *MobileUI) *ProgressView {
	v := &ProgressView{
		catalog:      catalog,
		localization: localization,
		chart:        NewBarChart(catalog.Workouts),
	}

	rows := container.NewVBox()
	for _, w := range catalog.Workouts {
		rows.Add(container.NewBorder(nil, nil, widget.NewLabel(w.Name), widget.NewLabel(fmt.Sprintf(PercentFormat, w.Percent()))))
	}

	completed := container.NewVBox(
		heading(localization.GetText(KeyCompletedWorkouts)),
		widget.NewCard("", "", rows),
	)
	v.summaryLabel = widget.NewLabel(v.summary())
	v.summaryLabel.Importance = widget.LowImportance

	overview := container.NewVBox(
		heading(localization.GetText(KeyProgressOverview)),
		v.summaryLabel,
		container.NewPadded(container.NewCenter(v.chart)),
	)

	var body fyne.CanvasObject
	if mobile.IsLandscape() {
		body = container.NewGridWithColumns(2, completed, overview)
	} else {
		gap := canvas.NewRectangle(color.Transparent)
		gap.SetMinSize(fyne.NewSize(0, mobile.GetMobileSpacing()))
		body = container.NewVBox(completed, gap, overview)
	}

	v.content = container.NewVScroll(body)
	return v
}

// Content returns the tab content
func (v *ProgressView) Content() fyne.CanvasObject {
	return v.content
}

// Chart returns the progress chart
func (v *ProgressView) Chart() *BarChart {
	return v.chart
}

// Summary returns the text shown under the overview heading
func (v *ProgressView) Summary() string {
	return v.summaryLabel.Text
}

// summary describes how many workouts are done and the mean completion
func (v *ProgressView) summary() string {
	l := v.localization
	completed := fmt.Sprintf(l.GetText(KeyCompletedCount), len(v.catalog.Completed()), len(v.catalog.Workouts))
	average := fmt.Sprintf(l.GetText(KeyAverageCompletion), int(math.Round(v.catalog.AverageCompletion()*100)))
	return completed + "\n" + average
}

// OnShow grows the chart bars the first time the tab appears
func (v *ProgressView) OnShow() {
	v.chart.GrowIn()
}
