// Package trajectory defines time-parametrised motion generators for a robot end-effector and the
// ways to compose them.
//
// A generator is described by small capability interfaces rather than a class hierarchy: every
// generator has a time window (Generator), and then samples a scalar (Scalar), an orientation
// (Quaternion), or a full pose with velocities (Cartesian). Geometric generators such as
// FixedAxisRotation own a Scalar time law that drives their geometric parameter, so any timing law
// can drive any geometry.
//
// Sampling methods are pure functions of the receiver's state and the time argument and may be
// called from a real-time loop. Mutators (Set*, ChangeInitialTime, ChangeFrame*) must not be called
// concurrently with any other method on the same generator.
package trajectory

// TimeWindowed is anything defined over a time interval [InitialTime, FinalTime].
type TimeWindowed interface {
	InitialTime() float64
	FinalTime() float64
	Duration() float64
}

// Generator is the base contract shared by all trajectory generators.
type Generator interface {
	TimeWindowed
	// ChangeInitialTime translates the trajectory in time so that it starts at initialTime. The
	// duration is preserved and the change propagates to any owned sub-generator.
	ChangeInitialTime(initialTime float64)
}

// Cloner is implemented by generators that can produce an independent deep copy of themselves.
// A clone never aliases the sub-generators owned by the receiver.
type Cloner[T any] interface {
	Clone() T
}
