package fake

import (
	"github.com/sun-robotics/trajgen/trajectory"
)

// Quadratic starts at rest and moves from an initial to a final value with constant acceleration.
// Outside its window it holds the end values with zero velocity and acceleration.
type Quadratic struct {
	trajectory.TimeWindow
	initialPosition float64
	finalPosition   float64
}

var _ trajectory.Scalar = (*Quadratic)(nil)

// NewQuadratic returns a Quadratic law going from initialPosition to finalPosition over
// [initialTime, initialTime+duration].
func NewQuadratic(initialPosition, finalPosition, duration, initialTime float64) (*Quadratic, error) {
	window, err := trajectory.NewTimeWindow(duration, initialTime)
	if err != nil {
		return nil, err
	}
	return &Quadratic{TimeWindow: window, initialPosition: initialPosition, finalPosition: finalPosition}, nil
}

// Clone returns a copy.
func (q *Quadratic) Clone() trajectory.Scalar {
	cp := *q
	return &cp
}

func (q *Quadratic) acceleration() float64 {
	d := q.Duration()
	return 2 * (q.finalPosition - q.initialPosition) / (d * d)
}

// Position returns the value at t.
func (q *Quadratic) Position(t float64) float64 {
	switch {
	case t <= q.InitialTime():
		return q.initialPosition
	case t >= q.FinalTime():
		return q.finalPosition
	default:
		dt := t - q.InitialTime()
		return q.initialPosition + 0.5*q.acceleration()*dt*dt
	}
}

// Velocity returns the value's rate of change at t.
func (q *Quadratic) Velocity(t float64) float64 {
	if !q.Contains(t) {
		return 0
	}
	return q.acceleration() * (t - q.InitialTime())
}

// Acceleration returns the constant acceleration inside the window and zero outside.
func (q *Quadratic) Acceleration(t float64) float64 {
	if !q.Contains(t) {
		return 0
	}
	return q.acceleration()
}
