package trajectory

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/sun-robotics/trajgen/spatialmath"
)

// PositionSampled samples a 3D position with its linear velocity and acceleration.
type PositionSampled interface {
	Position(t float64) r3.Vector
	LinearVelocity(t float64) r3.Vector
	LinearAcceleration(t float64) r3.Vector
}

// FrameTransformable re-expresses a trajectory with a position component in another frame.
// newTCurr is the homogeneous transform of the current frame with respect to the new frame.
// There is no generic implementation; every Cartesian generator supplies its own.
type FrameTransformable interface {
	ChangeFrame(newTCurr *spatialmath.Transform)
}

// Position is a position-only trajectory; combined with a Quaternion it forms a Cartesian one
// (see Independent).
type Position interface {
	Generator
	PositionSampled
	FrameTransformable
	Cloner[Position]
}

// Cartesian is a full end-effector trajectory: position, orientation, their velocities and a mask
// telling consumers which error components to track.
type Cartesian interface {
	Generator
	PositionSampled
	OrientationSampled
	Maskable
	FrameTransformable
	// Twist returns the stacked [linear; angular] velocity at t.
	Twist(t float64) Twist
	Cloner[Cartesian]
}

// ChangeFrameRotation applies a pure rotation frame change, treated as a transform with zero
// translation.
func ChangeFrameRotation(g FrameTransformable, newRCurr *spatialmath.RotationMatrix) {
	g.ChangeFrame(spatialmath.R2T(newRCurr))
}

// ChangeFrameQuat applies a pure rotation frame change given as a unit quaternion.
func ChangeFrameQuat(g FrameTransformable, newQCurr quat.Number) {
	ChangeFrameRotation(g, spatialmath.QuatToRotationMatrix(newQCurr))
}
