package ethics

// #region imports
import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danielpatrickdp/gaia-agent/internal/sense"
)

// #endregion imports

// #region errors

// ErrNoImperatives is returned when a core is constructed without imperative
// sensors.
var ErrNoImperatives = errors.New("ethics: imperative sensor set is empty")

// #endregion errors

// #region config

// Config holds observation tuning for the ethical core.
type Config struct {
	SensorTimeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{SensorTimeout: 2 * time.Second}
}

// #endregion config

// #region core-struct

// Core aggregates an ordered set of imperative sensors (e.g. a systemic-harm
// signal and a participant-wellbeing signal) into a single dissonance scalar.
type Core struct {
	imperatives []sense.Sensor
	config      Config
}

// #endregion core-struct

// #region constructor

// New validates and constructs a Core. The imperative set is fixed at
// construction; duplicate names are a configuration error.
func New(imperatives []sense.Sensor, config Config) (*Core, error) {
	if len(imperatives) == 0 {
		return nil, ErrNoImperatives
	}
	seen := make(map[string]struct{}, len(imperatives))
	for _, s := range imperatives {
		if _, dup := seen[s.Name()]; dup {
			return nil, fmt.Errorf("ethics: duplicate imperative sensor name %q", s.Name())
		}
		seen[s.Name()] = struct{}{}
	}
	return &Core{
		imperatives: append([]sense.Sensor(nil), imperatives...),
		config:      config,
	}, nil
}

// #endregion constructor

// #region observe

// Observe reads every imperative sensor exactly once, same contract as a
// domain observation pass.
func (c *Core) Observe(ctx context.Context) (sense.Observation, error) {
	return sense.ReadAll(ctx, c.imperatives, c.config.SensorTimeout)
}

// #endregion observe

// #region dissonance

// Dissonance reduces an imperative observation to a single imbalance scalar:
// the plain sum of all readings. Higher sum = more imbalance. Intentionally
// unweighted and unnormalized; this is a placeholder homeostasis metric, not
// a calibrated cost function.
func (c *Core) Dissonance(obs sense.Observation) float64 {
	var sum float64
	for _, r := range obs.Readings {
		sum += r.Value
	}
	return sum
}

// #endregion dissonance

// #region accessors

// ImperativeNames returns the imperative sensor names in observation order.
func (c *Core) ImperativeNames() []string {
	names := make([]string, len(c.imperatives))
	for i, s := range c.imperatives {
		names[i] = s.Name()
	}
	return names
}

// #endregion accessors
