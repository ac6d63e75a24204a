package trajectory

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"
	"gonum.org/v1/gonum/num/quat"

	"github.com/sun-robotics/trajgen/logging"
	"github.com/sun-robotics/trajgen/spatialmath"
)

// FixedAxisRotationConfig describes a FixedAxisRotation. Exactly one of Axis and FinalQuaternion
// must be set. Quaternions are given as [w, x, y, z].
type FixedAxisRotationConfig struct {
	InitialQuaternion []float64 `json:"initial_quaternion"`
	Axis              []float64 `json:"axis,omitempty"`
	FinalQuaternion   []float64 `json:"final_quaternion,omitempty"`
}

// Validate checks the config, reporting every problem found. path locates the config in a larger
// document and is only used in error messages.
func (cfg *FixedAxisRotationConfig) Validate(path string) error {
	if cfg.InitialQuaternion == nil {
		return utils.NewConfigValidationFieldRequiredError(path, "initial_quaternion")
	}
	var errs error
	if err := validateQuaternion("initial_quaternion", cfg.InitialQuaternion); err != nil {
		errs = multierr.Append(errs, err)
	}
	hasAxis := cfg.Axis != nil
	hasFinal := cfg.FinalQuaternion != nil
	switch {
	case hasAxis && hasFinal:
		errs = multierr.Append(errs, errors.New("only one of axis and final_quaternion may be set"))
	case !hasAxis && !hasFinal:
		errs = multierr.Append(errs, errors.New("one of axis or final_quaternion must be set"))
	case hasAxis && len(cfg.Axis) != 3:
		errs = multierr.Append(errs, errors.Errorf("axis must have 3 elements, got %d", len(cfg.Axis)))
	case hasFinal:
		if err := validateQuaternion("final_quaternion", cfg.FinalQuaternion); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if errs != nil {
		return utils.NewConfigValidationError(path, errs)
	}
	return nil
}

func validateQuaternion(name string, q []float64) error {
	if len(q) != 4 {
		return errors.Errorf("%s must have 4 elements [w, x, y, z], got %d", name, len(q))
	}
	if quat.Abs(quatFromSlice(q)) == 0 {
		return errors.Errorf("%s must not be zero", name)
	}
	return nil
}

func quatFromSlice(q []float64) quat.Number {
	return quat.Number{Real: q[0], Imag: q[1], Jmag: q[2], Kmag: q[3]}
}

// DecodeFixedAxisRotationConfig converts an attribute map, e.g. from a JSON document, into a
// validated config. Unknown keys are an error. path is used in error messages.
func DecodeFixedAxisRotationConfig(path string, attributes map[string]interface{}) (*FixedAxisRotationConfig, error) {
	cfg := &FixedAxisRotationConfig{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, utils.NewConfigValidationError(path, err)
	}
	if err := cfg.Validate(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewFixedAxisRotationFromConfig builds the rotation described by cfg, driven by thetaTraj.
// Quaternions are normalized. The returned angle is the one thetaTraj has to sweep: the derived
// angle when cfg has a final quaternion, otherwise the excursion of thetaTraj over its window.
func NewFixedAxisRotationFromConfig(
	cfg *FixedAxisRotationConfig,
	thetaTraj Scalar,
	logger logging.Logger,
) (*FixedAxisRotation, float64, error) {
	if err := cfg.Validate(""); err != nil {
		return nil, 0, err
	}
	initial := spatialmath.NormalizeQuat(quatFromSlice(cfg.InitialQuaternion))
	if cfg.FinalQuaternion != nil {
		final := spatialmath.NormalizeQuat(quatFromSlice(cfg.FinalQuaternion))
		rot, angle := NewFixedAxisRotationBetween(initial, final, thetaTraj, logger)
		return rot, angle, nil
	}
	axis := r3.Vector{X: cfg.Axis[0], Y: cfg.Axis[1], Z: cfg.Axis[2]}
	excursion := thetaTraj.Position(thetaTraj.FinalTime()) - thetaTraj.Position(thetaTraj.InitialTime())
	return NewFixedAxisRotation(initial, axis, thetaTraj, logger), excursion, nil
}
