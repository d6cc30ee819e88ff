package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

// fakeClock advances only when told to
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestDetector() (*SwipeDetector, *fakeClock) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	d := NewSwipeDetector()
	d.now = clock.now
	return d, clock
}

func TestSwipeDetector_Classify(t *testing.T) {
	tests := []struct {
		name string
		end  fyne.Position
		held time.Duration
		want Gesture
	}{
		{name: "tap", end: fyne.NewPos(102, 101), held: 50 * time.Millisecond, want: GestureTap},
		{name: "long press", end: fyne.NewPos(103, 100), held: time.Second, want: GestureLongPress},
		{name: "swipe left", end: fyne.NewPos(20, 110), want: GestureSwipeLeft},
		{name: "swipe right", end: fyne.NewPos(180, 90), want: GestureSwipeRight},
		{name: "swipe up", end: fyne.NewPos(110, 20), want: GestureSwipeUp},
		{name: "swipe down", end: fyne.NewPos(90, 180), want: GestureSwipeDown},
		{name: "slow swipe is still a swipe", end: fyne.NewPos(20, 100), held: time.Second, want: GestureSwipeLeft},
		{name: "just under threshold", end: fyne.NewPos(139, 100), want: GestureTap},
		{name: "at threshold", end: fyne.NewPos(150, 100), want: GestureSwipeRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, clock := newTestDetector()
			d.Begin(fyne.NewPos(100, 100))
			clock.t = clock.t.Add(tt.held)

			if got := d.End(tt.end); got != tt.want {
				t.Errorf("Expected gesture %d, got %d", tt.want, got)
			}
		})
	}
}

func TestSwipeDetector_EndWithoutBegin(t *testing.T) {
	d, _ := newTestDetector()

	if got := d.End(fyne.NewPos(10, 10)); got != GestureNone {
		t.Errorf("Expected no gesture, got %d", got)
	}

	d.Begin(fyne.NewPos(0, 0))
	d.Cancel()
	if got := d.End(fyne.NewPos(200, 0)); got != GestureNone {
		t.Errorf("Cancelled touch should not produce a gesture, got %d", got)
	}

	d.Begin(fyne.NewPos(0, 0))
	d.End(fyne.NewPos(0, 0))
	if got := d.End(fyne.NewPos(0, 0)); got != GestureNone {
		t.Errorf("A touch should end only once, got %d", got)
	}
}

func TestSwipeArea_ReportsGestures(t *testing.T) {
	test.NewApp()

	var got []Gesture
	label := widget.NewLabel("content")
	area := NewSwipeArea(label, func(g Gesture) {
		got = append(got, g)
	})

	if area.Content() != label {
		t.Error("Swipe area should keep its content")
	}

	area.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(200, 50)}})
	area.TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(40, 55)}})

	area.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(40, 50)}})
	area.TouchCancel(&mobile.TouchEvent{})
	area.TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(200, 50)}})

	if len(got) != 1 || got[0] != GestureSwipeLeft {
		t.Errorf("Expected a single left swipe, got %v", got)
	}
}
