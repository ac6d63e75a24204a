package trajectory

// ScalarSampled samples a single scalar quantity and its first two time derivatives.
type ScalarSampled interface {
	Position(t float64) float64
	Velocity(t float64) float64
	Acceleration(t float64) float64
}

// Scalar is a one dimensional trajectory, i.e. a time law. How it behaves outside its window is up
// to the implementation.
type Scalar interface {
	Generator
	ScalarSampled
	Cloner[Scalar]
}
