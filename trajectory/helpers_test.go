package trajectory_test

import (
	"testing"

	"go.viam.com/test"

	"github.com/sun-robotics/trajgen/trajectory"
	"github.com/sun-robotics/trajgen/trajectory/fake"
)

func newLinear(t *testing.T, initial, final, duration, initialTime float64) trajectory.Scalar {
	t.Helper()
	l, err := fake.NewLinear(initial, final, duration, initialTime)
	test.That(t, err, test.ShouldBeNil)
	return l
}

func newQuadratic(t *testing.T, initial, final, duration, initialTime float64) trajectory.Scalar {
	t.Helper()
	q, err := fake.NewQuadratic(initial, final, duration, initialTime)
	test.That(t, err, test.ShouldBeNil)
	return q
}

// sampleTimes returns n+1 evenly spaced times covering [from, to].
func sampleTimes(from, to float64, n int) []float64 {
	times := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		times = append(times, from+(to-from)*float64(i)/float64(n))
	}
	return times
}
