package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// Gesture is a classified touch gesture
type Gesture int

const (
	GestureNone Gesture = iota
	GestureTap
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// Gesture thresholds
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// SwipeDetector classifies a touch from its start and end points
type SwipeDetector struct {
	threshold float32
	longPress time.Duration
	now       func() time.Time

	tracking bool
	startPos fyne.Position
	startAt  time.Time
}

// NewSwipeDetector creates a detector with the default thresholds
func NewSwipeDetector() *SwipeDetector {
	return &SwipeDetector{
		threshold: DefaultSwipeThreshold,
		longPress: DefaultLongPressDuration,
		now:       time.Now,
	}
}

// Begin starts tracking a touch at pos
func (d *SwipeDetector) Begin(pos fyne.Position) {
	d.tracking = true
	d.startPos = pos
	d.startAt = d.now()
}

// End finishes the touch at pos and returns the gesture it made
func (d *SwipeDetector) End(pos fyne.Position) Gesture {
	if !d.tracking {
		return GestureNone
	}
	d.tracking = false

	dx := pos.X - d.startPos.X
	dy := pos.Y - d.startPos.Y
	if dx*dx+dy*dy >= d.threshold*d.threshold {
		return swipeDirection(dx, dy)
	}
	if d.now().Sub(d.startAt) >= d.longPress {
		return GestureLongPress
	}
	return GestureTap
}

// Cancel drops the touch in progress
func (d *SwipeDetector) Cancel() {
	d.tracking = false
}

// swipeDirection picks the dominant axis of a movement
func swipeDirection(dx, dy float32) Gesture {
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// SwipeArea wraps content and reports the gestures made on it.
// Touch events only arrive from mobile drivers.
type SwipeArea struct {
	widget.BaseWidget

	content   fyne.CanvasObject
	detector  *SwipeDetector
	onGesture func(Gesture)
}

var _ mobile.Touchable = (*SwipeArea)(nil)

// NewSwipeArea creates a swipe area around content
func NewSwipeArea(content fyne.CanvasObject, onGesture func(Gesture)) *SwipeArea {
	s := &SwipeArea{
		content:   content,
		detector:  NewSwipeDetector(),
		onGesture: onGesture,
	}
	s.ExtendBaseWidget(s)
	return s
}

// Content returns the wrapped object
func (s *SwipeArea) Content() fyne.CanvasObject {
	return s.content
}

// CreateRenderer returns the area renderer
func (s *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

// TouchDown handles touch down events
func (s *SwipeArea) TouchDown(event *mobile.TouchEvent) {
	s.detector.Begin(event.Position)
}

// TouchUp handles touch up events
func (s *SwipeArea) TouchUp(event *mobile.TouchEvent) {
	g := s.detector.End(event.Position)
	if g != GestureNone && s.onGesture != nil {
		s.onGesture(g)
	}
}

// TouchCancel handles touch cancel events
func (s *SwipeArea) TouchCancel(*mobile.TouchEvent) {
	s.detector.Cancel()
}
