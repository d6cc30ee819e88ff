package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/patchworksports/patchwork-sports/internal/model"
)

// WorkoutRow represents a compact workout row widget
type WorkoutRow struct {
	widget.BaseWidget

	workout      model.Workout
	localization *Localization

	// UI components
	nameLabel    *widget.Label
	statusLabel  *widget.Label
	percentLabel *widget.Label
	progress     *widget.ProgressBar
	videoIcon    *widget.Icon
	content      *fyne.Container
}

// NewWorkoutRow creates an empty workout row; call SetWorkout to fill it
func NewWorkoutRow(localization *Localization) *WorkoutRow {
	wr := &WorkoutRow{localization: localization}
	wr.ExtendBaseWidget(wr)
	wr.createUI()
	return wr
}

// createUI builds the row layout
func (wr *WorkoutRow) createUI() {
	wr.nameLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	wr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	wr.statusLabel = widget.NewLabel("")
	wr.statusLabel.Importance = widget.LowImportance

	wr.percentLabel = widget.NewLabel(DashPlaceholder)

	wr.progress = widget.NewProgressBar()
	wr.progress.TextFormatter = func() string { return "" }

	wr.videoIcon = widget.NewIcon(theme.MediaVideoIcon())
	wr.videoIcon.Hide()

	header := container.NewBorder(nil, nil, wr.videoIcon, wr.percentLabel, wr.nameLabel)
	wr.content = container.NewVBox(header, container.NewBorder(nil, nil, wr.statusLabel, nil, wr.progress))
}

// SetWorkout updates the row to show w
func (wr *WorkoutRow) SetWorkout(w model.Workout) {
	wr.workout = w

	wr.nameLabel.SetText(w.Name)
	wr.statusLabel.SetText(statusText(wr.localization, w.Status()))
	if w.Status().IsStarted() {
		wr.percentLabel.SetText(fmt.Sprintf(PercentFormat, w.Percent()))
	} else {
		wr.percentLabel.SetText(DashPlaceholder)
	}
	wr.progress.SetValue(w.CompletionRate)

	if w.Status().IsFinished() {
		wr.statusLabel.Importance = widget.SuccessImportance
	} else {
		wr.statusLabel.Importance = widget.LowImportance
	}

	if w.HasVideo() {
		wr.videoIcon.Show()
	} else {
		wr.videoIcon.Hide()
	}
	wr.Refresh()
}

// Workout returns the workout currently shown
func (wr *WorkoutRow) Workout() model.Workout {
	return wr.workout
}

// MinSize keeps rows tall enough for touch
func (wr *WorkoutRow) MinSize() fyne.Size {
	size := wr.BaseWidget.MinSize()
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}

// CreateRenderer returns the row renderer
func (wr *WorkoutRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(wr.content)
}

// statusText returns the localized label for a workout status
func statusText(l *Localization, status model.WorkoutStatus) string {
	switch status {
	case model.WorkoutStatusCompleted:
		return l.GetText(KeyStatusCompleted)
	case model.WorkoutStatusInProgress:
		return l.GetText(KeyStatusInProgress)
	default:
		return l.GetText(KeyStatusNotStarted)
	}
}
