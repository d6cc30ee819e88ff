package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/patchworksports/patchwork-sports/internal/model"
)

// BarChart draws one bottom-aligned bar per workout with its percentage above
// and its name below. Bar heights scale with fraction, which GrowIn animates
// from 0 to 1 the first time the chart is shown.
type BarChart struct {
	widget.BaseWidget

	workouts []model.Workout
	fraction float32
	grown    bool
}

// NewBarChart creates a chart for the given workouts with all bars collapsed
func NewBarChart(workouts []model.Workout) *BarChart {
	c := &BarChart{workouts: workouts}
	c.ExtendBaseWidget(c)
	return c
}

// SetFraction sets how far the bars are grown, clamped to [0, 1]
func (c *BarChart) SetFraction(f float32) {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	c.fraction = f
	c.Refresh()
}

// Fraction returns how far the bars are grown
func (c *BarChart) Fraction() float32 {
	return c.fraction
}

// BarHeight returns the current height of bar i
func (c *BarChart) BarHeight(i int) float32 {
	if i < 0 || i >= len(c.workouts) {
		return 0
	}
	return float32(c.workouts[i].CompletionRate) * ChartMaxBarHeight * c.fraction
}

// GrowIn animates the bars from empty to full height. Only the first call
// animates; later calls are no-ops so switching tabs does not replay it.
func (c *BarChart) GrowIn() *fyne.Animation {
	if c.grown {
		return nil
	}
	c.grown = true

	anim := fyne.NewAnimation(ChartGrowDuration, func(progress float32) {
		c.SetFraction(progress)
	})
	anim.Curve = fyne.AnimationEaseInOut
	anim.Start()
	return anim
}

// CreateRenderer builds the chart renderer
func (c *BarChart) CreateRenderer() fyne.WidgetRenderer {
	r := &barChartRenderer{chart: c}
	for _, w := range c.workouts {
		percent := canvas.NewText(fmt.Sprintf(PercentFormat, w.Percent()), theme.Color(theme.ColorNameForeground))
		percent.Alignment = fyne.TextAlignCenter

		bar := canvas.NewRectangle(theme.Color(theme.ColorNamePrimary))
		bar.CornerRadius = ChartBarRadius

		name := canvas.NewText(w.Name, theme.Color(theme.ColorNameForeground))
		name.Alignment = fyne.TextAlignCenter

		r.percents = append(r.percents, percent)
		r.bars = append(r.bars, bar)
		r.names = append(r.names, name)
		r.objects = append(r.objects, percent, bar, name)
	}
	return r
}

type barChartRenderer struct {
	chart    *BarChart
	percents []*canvas.Text
	bars     []*canvas.Rectangle
	names    []*canvas.Text
	objects  []fyne.CanvasObject
}

// columnWidth is the widest of the bar and its two labels
func (r *barChartRenderer) columnWidth(i int) float32 {
	w := ChartBarWidth
	if pw := r.percents[i].MinSize().Width; pw > w {
		w = pw
	}
	if nw := r.names[i].MinSize().Width; nw > w {
		w = nw
	}
	return w
}

func (r *barChartRenderer) labelHeight() float32 {
	if len(r.names) == 0 {
		return 0
	}
	return r.names[0].MinSize().Height
}

func (r *barChartRenderer) Layout(size fyne.Size) {
	textH := r.labelHeight()
	baseline := size.Height - textH - ChartLabelGap

	x := float32(0)
	for i := range r.bars {
		colW := r.columnWidth(i)
		barH := r.chart.BarHeight(i)
		barTop := baseline - barH

		r.bars[i].Resize(fyne.NewSize(ChartBarWidth, barH))
		r.bars[i].Move(fyne.NewPos(x+(colW-ChartBarWidth)/2, barTop))

		r.percents[i].Resize(fyne.NewSize(colW, textH))
		r.percents[i].Move(fyne.NewPos(x, barTop-ChartLabelGap-textH))

		r.names[i].Resize(fyne.NewSize(colW, textH))
		r.names[i].Move(fyne.NewPos(x, size.Height-textH))

		x += colW + ChartBarSpacing
	}
}

func (r *barChartRenderer) MinSize() fyne.Size {
	if len(r.bars) == 0 {
		return fyne.NewSize(0, 0)
	}

	width := ChartBarSpacing * float32(len(r.bars)-1)
	for i := range r.bars {
		width += r.columnWidth(i)
	}
	height := 2*r.labelHeight() + 2*ChartLabelGap + ChartMaxBarHeight
	return fyne.NewSize(width, height)
}

func (r *barChartRenderer) Refresh() {
	fg := theme.Color(theme.ColorNameForeground)
	bar := theme.Color(theme.ColorNamePrimary)
	for i := range r.bars {
		r.bars[i].FillColor = bar
		r.percents[i].Color = fg
		r.names[i].Color = fg
	}

	r.Layout(r.chart.Size())
	for _, o := range r.objects {
		canvas.Refresh(o)
	}
}

func (r *barChartRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *barChartRenderer) Destroy() {}

var _ fyne.WidgetRenderer = (*barChartRenderer)(nil)
