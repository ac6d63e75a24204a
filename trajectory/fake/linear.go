// Package fake implements simple scalar time laws for testing and sampling tools.
package fake

import (
	"github.com/sun-robotics/trajgen/trajectory"
)

// Linear moves from an initial to a final value at a constant rate over its window. Before the
// window it holds the initial value and after it the final one, with zero velocity.
type Linear struct {
	trajectory.TimeWindow
	initialPosition float64
	finalPosition   float64
}

var _ trajectory.Scalar = (*Linear)(nil)

// NewLinear returns a Linear law going from initialPosition to finalPosition over
// [initialTime, initialTime+duration].
func NewLinear(initialPosition, finalPosition, duration, initialTime float64) (*Linear, error) {
	window, err := trajectory.NewTimeWindow(duration, initialTime)
	if err != nil {
		return nil, err
	}
	return &Linear{TimeWindow: window, initialPosition: initialPosition, finalPosition: finalPosition}, nil
}

// Clone returns a copy.
func (l *Linear) Clone() trajectory.Scalar {
	cp := *l
	return &cp
}

func (l *Linear) rate() float64 {
	return (l.finalPosition - l.initialPosition) / l.Duration()
}

// Position returns the value at t.
func (l *Linear) Position(t float64) float64 {
	switch {
	case t <= l.InitialTime():
		return l.initialPosition
	case t >= l.FinalTime():
		return l.finalPosition
	default:
		return l.initialPosition + l.rate()*(t-l.InitialTime())
	}
}

// Velocity returns the constant rate inside the window and zero outside.
func (l *Linear) Velocity(t float64) float64 {
	if !l.Contains(t) {
		return 0
	}
	return l.rate()
}

// Acceleration is always zero.
func (l *Linear) Acceleration(t float64) float64 {
	return 0
}
