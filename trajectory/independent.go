package trajectory

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/sun-robotics/trajgen/spatialmath"
)

// Independent is a Cartesian trajectory whose position and orientation are generated separately
// by two owned sub-generators. Its time window is the smallest one covering both.
type Independent struct {
	MaskHolder
	position    Position
	orientation Quaternion
}

var _ Cartesian = (*Independent)(nil)

// NewIndependent composes clones of position and orientation. The mask starts fully active.
func NewIndependent(position Position, orientation Quaternion) *Independent {
	return &Independent{
		MaskHolder:  NewMaskHolder(),
		position:    position.Clone(),
		orientation: orientation.Clone(),
	}
}

// Clone returns a deep copy, including the mask.
func (ind *Independent) Clone() Cartesian {
	return &Independent{
		MaskHolder:  ind.MaskHolder,
		position:    ind.position.Clone(),
		orientation: ind.orientation.Clone(),
	}
}

// PositionTraj returns a copy of the position sub-generator.
func (ind *Independent) PositionTraj() Position {
	return ind.position.Clone()
}

// OrientationTraj returns a copy of the orientation sub-generator.
func (ind *Independent) OrientationTraj() Quaternion {
	return ind.orientation.Clone()
}

// InitialTime is the earliest initial time of the two sub-generators.
func (ind *Independent) InitialTime() float64 {
	return Hull(ind.position, ind.orientation).InitialTime()
}

// FinalTime is the latest final time of the two sub-generators.
func (ind *Independent) FinalTime() float64 {
	return Hull(ind.position, ind.orientation).FinalTime()
}

// Duration returns FinalTime - InitialTime.
func (ind *Independent) Duration() float64 {
	return Hull(ind.position, ind.orientation).Duration()
}

// ChangeInitialTime shifts both sub-generators by the same amount, keeping their relative offset.
func (ind *Independent) ChangeInitialTime(initialTime float64) {
	shift := initialTime - ind.InitialTime()
	ind.position.ChangeInitialTime(ind.position.InitialTime() + shift)
	ind.orientation.ChangeInitialTime(ind.orientation.InitialTime() + shift)
}

// ChangeFrame forwards the transform to the position part and its rotation to the orientation
// part.
func (ind *Independent) ChangeFrame(newTCurr *spatialmath.Transform) {
	ind.position.ChangeFrame(newTCurr)
	ind.orientation.ChangeFrameRotation(newTCurr.Rotation())
}

// Position returns the position at t.
func (ind *Independent) Position(t float64) r3.Vector {
	return ind.position.Position(t)
}

// LinearVelocity returns the linear velocity at t.
func (ind *Independent) LinearVelocity(t float64) r3.Vector {
	return ind.position.LinearVelocity(t)
}

// LinearAcceleration returns the linear acceleration at t.
func (ind *Independent) LinearAcceleration(t float64) r3.Vector {
	return ind.position.LinearAcceleration(t)
}

// Quaternion returns the orientation at t.
func (ind *Independent) Quaternion(t float64) quat.Number {
	return ind.orientation.Quaternion(t)
}

// AngularVelocity returns the angular velocity at t.
func (ind *Independent) AngularVelocity(t float64) r3.Vector {
	return ind.orientation.AngularVelocity(t)
}

// AngularAcceleration returns the angular acceleration at t.
func (ind *Independent) AngularAcceleration(t float64) r3.Vector {
	return ind.orientation.AngularAcceleration(t)
}

// Twist returns [LinearVelocity(t); AngularVelocity(t)].
func (ind *Independent) Twist(t float64) Twist {
	return TwistOf(ind, ind, t)
}

// ConstantPosition stays at a fixed point for the length of its window.
type ConstantPosition struct {
	TimeWindow
	position r3.Vector
}

var _ Position = (*ConstantPosition)(nil)

// NewConstantPosition returns a generator holding position over [initialTime, initialTime+duration].
func NewConstantPosition(position r3.Vector, duration, initialTime float64) (*ConstantPosition, error) {
	window, err := NewTimeWindow(duration, initialTime)
	if err != nil {
		return nil, err
	}
	return &ConstantPosition{TimeWindow: window, position: position}, nil
}

// Clone returns a copy.
func (cp *ConstantPosition) Clone() Position {
	cpy := *cp
	return &cpy
}

// ChangeFrame maps the point into the new frame.
func (cp *ConstantPosition) ChangeFrame(newTCurr *spatialmath.Transform) {
	cp.position = newTCurr.TransformPoint(cp.position)
}

// Position returns the fixed point.
func (cp *ConstantPosition) Position(t float64) r3.Vector {
	return cp.position
}

// LinearVelocity is always zero.
func (cp *ConstantPosition) LinearVelocity(t float64) r3.Vector {
	return r3.Vector{}
}

// LinearAcceleration is always zero.
func (cp *ConstantPosition) LinearAcceleration(t float64) r3.Vector {
	return r3.Vector{}
}
