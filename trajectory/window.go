package trajectory

import (
	"math"

	"github.com/pkg/errors"
)

// TimeWindow is the [initial, final] time interval of a generator. It is meant to be embedded by
// concrete generators that own their timing.
type TimeWindow struct {
	initialTime float64
	finalTime   float64
}

// NewTimeWindow returns a window of the given duration starting at initialTime.
func NewTimeWindow(duration, initialTime float64) (TimeWindow, error) {
	// written this way so that a NaN duration is rejected too
	if !(duration > 0) {
		return TimeWindow{}, errors.Wrapf(ErrNonPositiveDuration, "got %v", duration)
	}
	return TimeWindow{initialTime: initialTime, finalTime: initialTime + duration}, nil
}

// Hull returns the smallest window containing both a and b.
func Hull(a, b TimeWindowed) TimeWindow {
	return TimeWindow{
		initialTime: math.Min(a.InitialTime(), b.InitialTime()),
		finalTime:   math.Max(a.FinalTime(), b.FinalTime()),
	}
}

// InitialTime returns the start of the window.
func (w TimeWindow) InitialTime() float64 {
	return w.initialTime
}

// FinalTime returns the end of the window.
func (w TimeWindow) FinalTime() float64 {
	return w.finalTime
}

// Duration returns FinalTime - InitialTime.
func (w TimeWindow) Duration() float64 {
	return w.finalTime - w.initialTime
}

// Contains reports whether t lies within the closed window.
func (w TimeWindow) Contains(t float64) bool {
	return t >= w.initialTime && t <= w.finalTime
}

// ChangeInitialTime shifts the window to start at initialTime, preserving its duration.
func (w *TimeWindow) ChangeInitialTime(initialTime float64) {
	duration := w.Duration()
	w.initialTime = initialTime
	w.finalTime = initialTime + duration
}
