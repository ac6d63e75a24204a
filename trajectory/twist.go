package trajectory

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Twist is a linear and an angular velocity.
type Twist struct {
	Linear  r3.Vector
	Angular r3.Vector
}

// TwistOf samples the linear velocity of p and the angular velocity of o at t.
func TwistOf(p PositionSampled, o OrientationSampled, t float64) Twist {
	return Twist{Linear: p.LinearVelocity(t), Angular: o.AngularVelocity(t)}
}

// Vector stacks the twist as the 6-vector [linear; angular].
func (tw Twist) Vector() *mat.VecDense {
	return mat.NewVecDense(6, []float64{
		tw.Linear.X, tw.Linear.Y, tw.Linear.Z,
		tw.Angular.X, tw.Angular.Y, tw.Angular.Z,
	})
}
