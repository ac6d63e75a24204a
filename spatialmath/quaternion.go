package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

// IdentityQuat returns the quaternion representing no rotation.
func IdentityQuat() quat.Number {
	return quat.Number{Real: 1}
}

// QuatFromAxisAngle returns the unit quaternion for a rotation of theta radians about axis.
// The axis must be non-zero; it does not need to be normalized.
func QuatFromAxisAngle(theta float64, axis r3.Vector) quat.Number {
	return NewR4AAFromVector(theta, axis).ToQuat()
}

// QuatToR4AA converts a unit quaternion to the shortest equivalent axis angle, with theta in [0, pi].
// When the rotation is (numerically) the identity the returned axis is the zero vector and theta is 0.
func QuatToR4AA(q quat.Number) *R4AA {
	if q.Real < 0 {
		q = Flip(q)
	}
	denom := quatImag(q).Norm()
	if denom < ZeroAxisTolerance {
		return &R4AA{}
	}
	return &R4AA{
		Theta: 2 * math.Atan2(denom, q.Real),
		RX:    q.Imag / denom,
		RY:    q.Jmag / denom,
		RZ:    q.Kmag / denom,
	}
}

// RotateVector rotates v by the unit quaternion q, i.e. computes q * (0, v) * q^-1.
func RotateVector(q quat.Number, v r3.Vector) r3.Vector {
	rotated := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))
	return quatImag(rotated)
}

// NormalizeQuat scales q to unit norm. The zero quaternion is returned as the identity.
func NormalizeQuat(q quat.Number) quat.Number {
	norm := quat.Abs(q)
	if norm == 0 {
		return IdentityQuat()
	}
	return quat.Scale(1/norm, q)
}

// Flip will multiply a quaternion by -1, returning a quaternion representing the same orientation but
// in the opposing octant.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

// QuaternionAlmostEqual checks whether two quaternions represent the same rotation to within tol.
// q and -q are considered equal.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	return quatWithin(a, b, tol) || quatWithin(a, Flip(b), tol)
}

// OrientationBetween returns the quaternion rotating from into to, expressed in the fixed frame:
// to = OrientationBetween(from, to) * from.
func OrientationBetween(from, to quat.Number) quat.Number {
	return quat.Mul(to, quat.Inv(from))
}

func quatWithin(a, b quat.Number, tol float64) bool {
	return scalar.EqualWithinAbs(a.Real, b.Real, tol) &&
		scalar.EqualWithinAbs(a.Imag, b.Imag, tol) &&
		scalar.EqualWithinAbs(a.Jmag, b.Jmag, tol) &&
		scalar.EqualWithinAbs(a.Kmag, b.Kmag, tol)
}

func quatImag(q quat.Number) r3.Vector {
	return r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
}
