package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

const (
	radToDeg = 180 / math.Pi
	degToRad = math.Pi / 180

	// machineEpsilon is the difference between 1 and the next representable float64.
	machineEpsilon = 2.220446049250313e-16

	// ZeroAxisTolerance is the norm below which a rotation axis is treated as the zero vector.
	ZeroAxisTolerance = 10 * machineEpsilon
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * degToRad
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * radToDeg
}

// IsZeroAxis reports whether v cannot be normalized into a direction: its norm is below
// ZeroAxisTolerance, infinite or NaN.
func IsZeroAxis(v r3.Vector) bool {
	norm := v.Norm()
	return !(norm >= ZeroAxisTolerance) || math.IsInf(norm, 0)
}
