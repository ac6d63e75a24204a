package trajectory

import "github.com/pkg/errors"

// ErrNonPositiveDuration is returned when a time window would have a duration that is not > 0.
var ErrNonPositiveDuration = errors.New("trajectory duration must be positive")
