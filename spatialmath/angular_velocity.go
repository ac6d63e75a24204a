package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// AngularVelocityBetween estimates the angular velocity, expressed in the fixed frame, that takes
// orientation from to orientation to in dt seconds. It is the finite-difference counterpart of an
// analytic angular velocity and is exact when the rotation between the two is about a constant axis
// at a constant rate.
func AngularVelocityBetween(from, to quat.Number, dt float64) r3.Vector {
	r4 := QuatToR4AA(OrientationBetween(from, to))
	return r4.ToR3().Mul(1 / dt)
}

// QuatDerivativeToAngularVelocity returns the fixed-frame angular velocity w = 2 * dq/dt * q^-1 of a
// unit quaternion q with time derivative dqdt.
func QuatDerivativeToAngularVelocity(q, dqdt quat.Number) r3.Vector {
	w := quat.Scale(2, quat.Mul(dqdt, quat.Conj(q)))
	return quatImag(w)
}
