package trajectory

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/sun-robotics/trajgen/spatialmath"
)

// OrientationSampled samples an orientation as a unit quaternion together with its angular
// velocity and acceleration, all expressed in the trajectory's reference frame.
type OrientationSampled interface {
	Quaternion(t float64) quat.Number
	AngularVelocity(t float64) r3.Vector
	AngularAcceleration(t float64) r3.Vector
}

// OrientationTransformable re-expresses an orientation trajectory in another frame. The argument
// is the orientation of the current frame with respect to the new one.
type OrientationTransformable interface {
	ChangeFrameQuat(newQCurr quat.Number)
	ChangeFrameRotation(newRCurr *spatialmath.RotationMatrix)
}

// Quaternion is an orientation-only trajectory.
type Quaternion interface {
	Generator
	OrientationSampled
	OrientationTransformable
	Cloner[Quaternion]
}
