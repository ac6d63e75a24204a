package trajectory

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/sun-robotics/trajgen/logging"
	"github.com/sun-robotics/trajgen/spatialmath"
)

// FixedAxisRotation rotates by an angle theta(t) about a constant axis, starting from an initial
// orientation:
//
//	Q(t) = DeltaQuat(t) * initialQuat,  DeltaQuat(t) = axis-angle quaternion of (theta(t), axis)
//
// The increment multiplies on the left, so the axis is expressed in the same frame as the initial
// orientation. theta(t) and its derivatives come from an owned Scalar, which also defines the time
// window. The zero axis means "no rotation".
type FixedAxisRotation struct {
	initialQuat quat.Number
	axis        r3.Vector
	thetaTraj   Scalar
	logger      logging.Logger
}

var _ Quaternion = (*FixedAxisRotation)(nil)

// NewFixedAxisRotation returns a rotation about axis starting at initialQuat, driven by a clone of
// thetaTraj. The axis is normalized; an axis that spatialmath.IsZeroAxis rejects is replaced by
// the zero axis and a warning is logged.
func NewFixedAxisRotation(
	initialQuat quat.Number,
	axis r3.Vector,
	thetaTraj Scalar,
	logger logging.Logger,
) *FixedAxisRotation {
	rot := &FixedAxisRotation{
		initialQuat: initialQuat,
		thetaTraj:   thetaTraj.Clone(),
		logger:      logging.OrGlobal(logger),
	}
	rot.SetAxis(axis)
	return rot
}

// NewFixedAxisRotationBetween returns the rotation taking initialQuat to finalQuat about a fixed
// axis. The axis and the total angle come from finalQuat * initialQuat^-1, taking the shortest
// way round, so the angle is in [0, pi]. The angle is returned so the caller can build a
// thetaTraj going from 0 to it; thetaTraj is used as given and is not rescaled.
func NewFixedAxisRotationBetween(
	initialQuat, finalQuat quat.Number,
	thetaTraj Scalar,
	logger logging.Logger,
) (*FixedAxisRotation, float64) {
	r4 := spatialmath.QuatToR4AA(spatialmath.OrientationBetween(initialQuat, finalQuat))
	return NewFixedAxisRotation(initialQuat, r4.Axis(), thetaTraj, logger), r4.Theta
}

// Clone returns a deep copy; the owned time law is cloned too.
func (rot *FixedAxisRotation) Clone() Quaternion {
	return &FixedAxisRotation{
		initialQuat: rot.initialQuat,
		axis:        rot.axis,
		thetaTraj:   rot.thetaTraj.Clone(),
		logger:      rot.logger,
	}
}

// Axis returns the unit rotation axis, or the zero vector for no rotation.
func (rot *FixedAxisRotation) Axis() r3.Vector {
	return rot.axis
}

// InitialQuat returns the orientation before any angle is swept.
func (rot *FixedAxisRotation) InitialQuat() quat.Number {
	return rot.initialQuat
}

// ScalarTraj returns a copy of the time law driving the angle.
func (rot *FixedAxisRotation) ScalarTraj() Scalar {
	return rot.thetaTraj.Clone()
}

// InitialTime is the initial time of the angle time law.
func (rot *FixedAxisRotation) InitialTime() float64 {
	return rot.thetaTraj.InitialTime()
}

// FinalTime is the final time of the angle time law.
func (rot *FixedAxisRotation) FinalTime() float64 {
	return rot.thetaTraj.FinalTime()
}

// Duration is the duration of the angle time law.
func (rot *FixedAxisRotation) Duration() float64 {
	return rot.thetaTraj.Duration()
}

// SetAxis replaces the rotation axis, normalizing it. A (near) zero axis, or one with a NaN or
// infinite component, becomes the zero axis.
func (rot *FixedAxisRotation) SetAxis(axis r3.Vector) {
	if spatialmath.IsZeroAxis(axis) {
		rot.logger.Warnw("rotation axis is zero, trajectory will not rotate", "axis", axis)
		rot.axis = r3.Vector{}
		return
	}
	rot.axis = axis.Normalize()
}

// SetInitialQuat replaces the initial orientation.
func (rot *FixedAxisRotation) SetInitialQuat(initialQuat quat.Number) {
	rot.initialQuat = initialQuat
}

// ChangeInitialTime translates the angle time law.
func (rot *FixedAxisRotation) ChangeInitialTime(initialTime float64) {
	rot.thetaTraj.ChangeInitialTime(initialTime)
}

// SetScalarTraj replaces the angle time law with a clone of thetaTraj. The new law must sweep the
// same angles as the old one, from the initial to the final angle; only the timing may differ.
func (rot *FixedAxisRotation) SetScalarTraj(thetaTraj Scalar) {
	rot.thetaTraj = thetaTraj.Clone()
}

// ChangeFrameQuat re-expresses the trajectory in a new frame, newQCurr being the orientation of
// the current frame in the new one. The physical motion is unchanged.
func (rot *FixedAxisRotation) ChangeFrameQuat(newQCurr quat.Number) {
	rot.initialQuat = quat.Mul(newQCurr, rot.initialQuat)
	rot.axis = spatialmath.RotateVector(newQCurr, rot.axis)
}

// ChangeFrameRotation is ChangeFrameQuat for a rotation matrix.
func (rot *FixedAxisRotation) ChangeFrameRotation(newRCurr *spatialmath.RotationMatrix) {
	rot.ChangeFrameQuat(newRCurr.Quaternion())
}

func (rot *FixedAxisRotation) noRotation() bool {
	return rot.axis == (r3.Vector{})
}

// DeltaQuat returns the rotation swept so far, i.e. the orientation at t relative to the initial
// one expressed in the trajectory frame.
func (rot *FixedAxisRotation) DeltaQuat(t float64) quat.Number {
	if rot.noRotation() {
		return spatialmath.IdentityQuat()
	}
	return spatialmath.QuatFromAxisAngle(rot.thetaTraj.Position(t), rot.axis)
}

// Quaternion returns the orientation at t.
func (rot *FixedAxisRotation) Quaternion(t float64) quat.Number {
	return quat.Mul(rot.DeltaQuat(t), rot.initialQuat)
}

// AngularVelocity returns theta'(t) * axis.
func (rot *FixedAxisRotation) AngularVelocity(t float64) r3.Vector {
	if rot.noRotation() {
		return r3.Vector{}
	}
	return rot.axis.Mul(rot.thetaTraj.Velocity(t))
}

// AngularAcceleration returns theta''(t) * axis.
func (rot *FixedAxisRotation) AngularAcceleration(t float64) r3.Vector {
	if rot.noRotation() {
		return r3.Vector{}
	}
	return rot.axis.Mul(rot.thetaTraj.Acceleration(t))
}
