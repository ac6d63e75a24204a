package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.viam.com/test"

	"github.com/sun-robotics/trajgen/logging"
	"github.com/sun-robotics/trajgen/trajectory"
)

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rotation.json")
	test.That(t, os.WriteFile(path, []byte(doc), 0o600), test.ShouldBeNil)
	return path
}

func TestReadConfig(t *testing.T) {
	cfg, err := readConfig(writeConfig(t, `{"initial_quaternion": [1, 0, 0, 0], "axis": [0, 0, 1]}`))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Axis, test.ShouldResemble, []float64{0, 0, 1})

	_, err = readConfig(writeConfig(t, `{"initial_quaternion": [1, 0, 0, 0]`))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot parse config")

	_, err = readConfig(filepath.Join(t.TempDir(), "missing.json"))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestNewRotation(t *testing.T) {
	logger, logs := logging.NewObservedTestLogger(t)
	axisCfg := &trajectory.FixedAxisRotationConfig{
		InitialQuaternion: []float64{1, 0, 0, 0},
		Axis:              []float64{0, 0, 1},
	}

	_, err := newRotation(axisCfg, 2, nil, logger)
	test.That(t, err, test.ShouldNotBeNil)

	angle := math.Pi / 2
	rot, err := newRotation(axisCfg, 2, &angle, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rot.Duration(), test.ShouldEqual, 2.)
	test.That(t, rot.AngularVelocity(1).Z, test.ShouldAlmostEqual, math.Pi/4)

	finalCfg := &trajectory.FixedAxisRotationConfig{
		InitialQuaternion: []float64{1, 0, 0, 0},
		FinalQuaternion:   []float64{0, 1, 0, 0},
	}
	rot, err = newRotation(finalCfg, 1, nil, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rot.ScalarTraj().Position(1), test.ShouldAlmostEqual, math.Pi)
	test.That(t, logs.FilterLevelExact(zapcore.WarnLevel).Len(), test.ShouldEqual, 0)
	test.That(t, logs.FilterMessage("derived rotation").Len(), test.ShouldEqual, 1)

	_, err = newRotation(finalCfg, 1, &angle, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, logs.FilterMessage("ignoring angle, it is derived from final_quaternion").Len(), test.ShouldEqual, 1)

	_, err = newRotation(finalCfg, 0, nil, logger)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSampleRotation(t *testing.T) {
	angle := math.Pi
	rot, err := newRotation(&trajectory.FixedAxisRotationConfig{
		InitialQuaternion: []float64{1, 0, 0, 0},
		Axis:              []float64{1, 0, 0},
	}, 1, &angle, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)

	_, err = sampleRotation(rot, 0)
	test.That(t, err, test.ShouldNotBeNil)

	samples, err := sampleRotation(rot, 4)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, samples, test.ShouldHaveLength, 5)
	test.That(t, samples[0].T, test.ShouldEqual, 0.)
	test.That(t, samples[4].T, test.ShouldEqual, 1.)
	test.That(t, samples[0].Quaternion, test.ShouldResemble, []float64{1, 0, 0, 0})
	test.That(t, samples[4].Quaternion[0], test.ShouldAlmostEqual, 0)
	test.That(t, samples[4].Quaternion[1], test.ShouldAlmostEqual, 1)
	for _, s := range samples {
		test.That(t, s.AngularVelocity[0], test.ShouldAlmostEqual, math.Pi)
	}
}
