// Package main samples a fixed-axis rotation described by a JSON config and logs the samples.
package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/num/quat"

	"github.com/sun-robotics/trajgen/logging"
	"github.com/sun-robotics/trajgen/spatialmath"
	"github.com/sun-robotics/trajgen/trajectory"
	"github.com/sun-robotics/trajgen/trajectory/fake"
)

const (
	// Flags.
	flagConfig          = "config"
	flagDuration        = "duration"
	flagAngle           = "angle"
	flagDegrees         = "degrees"
	flagSteps           = "steps"
	flagFrameQuaternion = "frame-quaternion"
	flagDebug           = "debug"
)

func main() {
	var logger logging.Logger

	app := &cli.App{
		Name:  "trajsample",
		Usage: "sample a fixed-axis rotation trajectory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagConfig,
				Aliases:  []string{"c"},
				Required: true,
				Usage:    "load the rotation from JSON `FILE`",
			},
			&cli.Float64Flag{
				Name:  flagDuration,
				Value: 1,
				Usage: "duration of the rotation in seconds",
			},
			&cli.Float64Flag{
				Name:  flagAngle,
				Usage: "angle to sweep in radians, required when the config gives an axis",
			},
			&cli.BoolFlag{
				Name:  flagDegrees,
				Usage: "read --angle in degrees",
			},
			&cli.IntFlag{
				Name:  flagSteps,
				Value: 10,
				Usage: "number of intervals to sample",
			},
			&cli.Float64SliceFlag{
				Name:  flagFrameQuaternion,
				Usage: "re-express the rotation in a new frame, given as w,x,y,z",
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger = logging.NewDebugLogger("trajsample")
			} else {
				logger = logging.NewLogger("trajsample")
			}
			logging.ReplaceGlobal(logger)
			return nil
		},
		Action: func(c *cli.Context) error {
			return sampleAction(c, logger)
		},
	}

	if err := app.Run(os.Args); err != nil {
		logging.OrGlobal(logger).Error(err)
		os.Exit(1)
	}
}

func sampleAction(c *cli.Context, logger logging.Logger) error {
	cfg, err := readConfig(c.String(flagConfig))
	if err != nil {
		return err
	}
	logger.Debugw("loaded config", "config", cfg)

	var angle *float64
	if c.IsSet(flagAngle) {
		a := c.Float64(flagAngle)
		if c.Bool(flagDegrees) {
			a = spatialmath.DegToRad(a)
		}
		angle = &a
	}
	rot, err := newRotation(cfg, c.Float64(flagDuration), angle, logger)
	if err != nil {
		return err
	}

	if c.IsSet(flagFrameQuaternion) {
		q := c.Float64Slice(flagFrameQuaternion)
		if len(q) != 4 {
			return errors.Errorf("%s must have 4 elements [w, x, y, z], got %d", flagFrameQuaternion, len(q))
		}
		rot.ChangeFrameQuat(spatialmath.NormalizeQuat(quat.Number{Real: q[0], Imag: q[1], Jmag: q[2], Kmag: q[3]}))
	}

	samples, err := sampleRotation(rot, c.Int(flagSteps))
	if err != nil {
		return err
	}
	for _, s := range samples {
		logger.Infow("sample", "t", s.T, "quaternion", s.Quaternion, "angular_velocity", s.AngularVelocity)
	}
	return nil
}

func readConfig(path string) (*trajectory.FixedAxisRotationConfig, error) {
	//nolint:gosec
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read config %q", path)
	}
	attrs := map[string]interface{}{}
	if err := json.Unmarshal(data, &attrs); err != nil {
		return nil, errors.Wrapf(err, "cannot parse config %q", path)
	}
	return trajectory.DecodeFixedAxisRotationConfig(path, attrs)
}

// newRotation builds the rotation with a linear angle law over [0, duration]. angle must be given
// when cfg has an axis; with a final quaternion the angle comes from the config.
func newRotation(
	cfg *trajectory.FixedAxisRotationConfig,
	duration float64,
	angle *float64,
	logger logging.Logger,
) (*trajectory.FixedAxisRotation, error) {
	if cfg.Axis != nil {
		if angle == nil {
			return nil, errors.Errorf("--%s is required when the config gives an axis", flagAngle)
		}
		theta, err := fake.NewLinear(0, *angle, duration, 0)
		if err != nil {
			return nil, err
		}
		rot, _, err := trajectory.NewFixedAxisRotationFromConfig(cfg, theta, logger)
		return rot, err
	}

	placeholder, err := fake.NewLinear(0, 1, duration, 0)
	if err != nil {
		return nil, err
	}
	rot, derived, err := trajectory.NewFixedAxisRotationFromConfig(cfg, placeholder, logger)
	if err != nil {
		return nil, err
	}
	if angle != nil {
		logger.Warnw("ignoring angle, it is derived from final_quaternion", "angle", *angle, "derived", derived)
	}
	logger.Debugw("derived rotation", "axis", rot.Axis(), "angle_deg", spatialmath.RadToDeg(derived))
	theta, err := fake.NewLinear(0, derived, duration, 0)
	if err != nil {
		return nil, err
	}
	rot.SetScalarTraj(theta)
	return rot, nil
}

type sample struct {
	T               float64
	Quaternion      []float64
	AngularVelocity []float64
}

// sampleRotation samples rot at steps+1 evenly spaced times over its window.
func sampleRotation(rot trajectory.Quaternion, steps int) ([]sample, error) {
	if steps < 1 {
		return nil, errors.Errorf("--%s must be at least 1, got %d", flagSteps, steps)
	}
	samples := make([]sample, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := rot.InitialTime() + rot.Duration()*float64(i)/float64(steps)
		q := rot.Quaternion(t)
		w := rot.AngularVelocity(t)
		samples = append(samples, sample{
			T:               t,
			Quaternion:      []float64{q.Real, q.Imag, q.Jmag, q.Kmag},
			AngularVelocity: []float64{w.X, w.Y, w.Z},
		})
	}
	return samples, nil
}
