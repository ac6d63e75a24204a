package trajectory_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"

	"github.com/sun-robotics/trajgen/trajectory"
)

func TestNewTimeWindow(t *testing.T) {
	w, err := trajectory.NewTimeWindow(2, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, w.InitialTime(), test.ShouldEqual, 1.)
	test.That(t, w.FinalTime(), test.ShouldEqual, 3.)
	test.That(t, w.Duration(), test.ShouldEqual, 2.)
	test.That(t, w.Contains(1), test.ShouldBeTrue)
	test.That(t, w.Contains(3), test.ShouldBeTrue)
	test.That(t, w.Contains(3.1), test.ShouldBeFalse)

	for _, duration := range []float64{0, -1, math.NaN()} {
		_, err := trajectory.NewTimeWindow(duration, 0)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, errors.Is(err, trajectory.ErrNonPositiveDuration), test.ShouldBeTrue)
	}
}

func TestChangeInitialTime(t *testing.T) {
	w, err := trajectory.NewTimeWindow(0.5, 0)
	test.That(t, err, test.ShouldBeNil)
	w.ChangeInitialTime(10)
	test.That(t, w.InitialTime(), test.ShouldEqual, 10.)
	test.That(t, w.FinalTime(), test.ShouldEqual, 10.5)
	test.That(t, w.Duration(), test.ShouldAlmostEqual, 0.5)
}

func TestHull(t *testing.T) {
	a, err := trajectory.NewTimeWindow(1, 0)
	test.That(t, err, test.ShouldBeNil)
	b, err := trajectory.NewTimeWindow(1, 2)
	test.That(t, err, test.ShouldBeNil)
	h := trajectory.Hull(a, b)
	test.That(t, h.InitialTime(), test.ShouldEqual, 0.)
	test.That(t, h.FinalTime(), test.ShouldEqual, 3.)
}
