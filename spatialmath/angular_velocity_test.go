package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func TestAngularVelocityBetween(t *testing.T) {
	start := QuatFromAxisAngle(0.3, r3.Vector{X: 1, Y: 1, Z: 0})
	dt := 2.0

	for _, rate := range []struct {
		TestName    string
		AngularRate r3.Vector
	}{
		{"unitary roll", r3.Vector{X: 1, Y: 0, Z: 0}},
		{"unitary pitch", r3.Vector{X: 0, Y: 1, Z: 0}},
		{"unitary yaw", r3.Vector{X: 0, Y: 0, Z: 1}},
		{"roll", r3.Vector{X: 0.2, Y: 0, Z: 0}},
		{"pitch", r3.Vector{X: 0, Y: 0.4, Z: 0}},
		{"oblique", r3.Vector{X: 0.3, Y: -0.4, Z: 0.5}},
	} {
		t.Run(rate.TestName, func(t *testing.T) {
			delta := R3ToR4(rate.AngularRate.Mul(dt)).ToQuat()
			end := quat.Mul(delta, start)

			w := AngularVelocityBetween(start, end, dt)
			test.That(t, w.X, test.ShouldAlmostEqual, rate.AngularRate.X)
			test.That(t, w.Y, test.ShouldAlmostEqual, rate.AngularRate.Y)
			test.That(t, w.Z, test.ShouldAlmostEqual, rate.AngularRate.Z)
		})
	}
}

func TestQuatDerivativeToAngularVelocity(t *testing.T) {
	axis := r3.Vector{X: 0, Y: 0, Z: 1}
	rate := 0.7
	theta := 0.4
	q := QuatFromAxisAngle(theta, axis)
	// d/dt of (cos(th/2), sin(th/2) axis) with dth/dt = rate
	dqdt := quat.Number{
		Real: -math.Sin(theta/2) * rate / 2,
		Kmag: math.Cos(theta/2) * rate / 2,
	}
	w := QuatDerivativeToAngularVelocity(q, dqdt)
	test.That(t, w.X, test.ShouldAlmostEqual, 0)
	test.That(t, w.Y, test.ShouldAlmostEqual, 0)
	test.That(t, w.Z, test.ShouldAlmostEqual, rate)
}
