package trajectory

import (
	"github.com/golang/geo/r3"

	"github.com/sun-robotics/trajgen/logging"
	"github.com/sun-robotics/trajgen/spatialmath"
)

// LineSegment moves along the straight line from an initial to a final position:
//
//	p(t) = initialPosition + s(t) * direction
//
// where direction is the unit vector from the initial to the final position and s(t) is an owned
// Scalar giving the travelled distance, from 0 to Length().
type LineSegment struct {
	initialPosition r3.Vector
	finalPosition   r3.Vector
	direction       r3.Vector
	sTraj           Scalar
	logger          logging.Logger
}

var _ Position = (*LineSegment)(nil)

// NewLineSegment returns a line segment driven by a clone of sTraj. A segment shorter than
// spatialmath.ZeroAxisTolerance, or one with a non-finite length, has a zero direction and never
// leaves the initial position.
func NewLineSegment(initialPosition, finalPosition r3.Vector, sTraj Scalar, logger logging.Logger) *LineSegment {
	seg := &LineSegment{
		initialPosition: initialPosition,
		finalPosition:   finalPosition,
		sTraj:           sTraj.Clone(),
		logger:          logging.OrGlobal(logger),
	}
	seg.updateDirection()
	return seg
}

func (seg *LineSegment) updateDirection() {
	delta := seg.finalPosition.Sub(seg.initialPosition)
	if spatialmath.IsZeroAxis(delta) {
		seg.logger.Warnw("line segment has zero length, trajectory will not move", "position", seg.initialPosition)
		seg.direction = r3.Vector{}
		return
	}
	seg.direction = delta.Normalize()
}

// Clone returns a deep copy.
func (seg *LineSegment) Clone() Position {
	cp := *seg
	cp.sTraj = seg.sTraj.Clone()
	return &cp
}

// InitialPosition returns the start of the segment.
func (seg *LineSegment) InitialPosition() r3.Vector {
	return seg.initialPosition
}

// FinalPosition returns the end of the segment.
func (seg *LineSegment) FinalPosition() r3.Vector {
	return seg.finalPosition
}

// Direction returns the unit direction of travel, or zero for a degenerate segment.
func (seg *LineSegment) Direction() r3.Vector {
	return seg.direction
}

// Length returns the distance between the end points.
func (seg *LineSegment) Length() float64 {
	return seg.finalPosition.Sub(seg.initialPosition).Norm()
}

// ScalarTraj returns a copy of the distance time law.
func (seg *LineSegment) ScalarTraj() Scalar {
	return seg.sTraj.Clone()
}

// SetScalarTraj replaces the distance time law with a clone of sTraj.
func (seg *LineSegment) SetScalarTraj(sTraj Scalar) {
	seg.sTraj = sTraj.Clone()
}

// InitialTime is the initial time of the distance time law.
func (seg *LineSegment) InitialTime() float64 {
	return seg.sTraj.InitialTime()
}

// FinalTime is the final time of the distance time law.
func (seg *LineSegment) FinalTime() float64 {
	return seg.sTraj.FinalTime()
}

// Duration is the duration of the distance time law.
func (seg *LineSegment) Duration() float64 {
	return seg.sTraj.Duration()
}

// ChangeInitialTime translates the distance time law.
func (seg *LineSegment) ChangeInitialTime(initialTime float64) {
	seg.sTraj.ChangeInitialTime(initialTime)
}

// ChangeFrame maps both end points and the direction into the new frame.
func (seg *LineSegment) ChangeFrame(newTCurr *spatialmath.Transform) {
	seg.initialPosition = newTCurr.TransformPoint(seg.initialPosition)
	seg.finalPosition = newTCurr.TransformPoint(seg.finalPosition)
	seg.direction = newTCurr.TransformVector(seg.direction)
}

// Position returns the position at t.
func (seg *LineSegment) Position(t float64) r3.Vector {
	return seg.initialPosition.Add(seg.direction.Mul(seg.sTraj.Position(t)))
}

// LinearVelocity returns s'(t) * direction.
func (seg *LineSegment) LinearVelocity(t float64) r3.Vector {
	return seg.direction.Mul(seg.sTraj.Velocity(t))
}

// LinearAcceleration returns s''(t) * direction.
func (seg *LineSegment) LinearAcceleration(t float64) r3.Vector {
	return seg.direction.Mul(seg.sTraj.Acceleration(t))
}
