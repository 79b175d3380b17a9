package domain

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

// ErrNoActions is returned when a domain is constructed with an empty action
// vocabulary. Arg-max over an empty set is undefined.
var ErrNoActions = errors.New("domain: action vocabulary is empty")

// ErrNoSensors is returned when a domain is constructed without sensors.
var ErrNoSensors = errors.New("domain: sensor set is empty")

// #endregion errors

// #region config

// Config holds observation tuning for a domain.
type Config struct {
	SensorTimeout time.Duration // per-read timeout; a timeout is a read failure
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{SensorTimeout: 2 * time.Second}
}

// #endregion config

// #region domain-struct

// Domain bundles an ordered sensor set with a fixed action vocabulary.
// Sensor order defines the observation-vector index and must match the row
// order of the decision engine's weight matrix; action order defines the
// index used for arg-max selection.
type Domain struct {
	name    string
	sensors []sense.Sensor
	actions []string
	config  Config
}

// #endregion domain-struct

// #region constructor

// New validates and constructs a Domain. Zero actions, zero sensors, or a
// duplicate sensor name is a configuration error, raised here and never
// retried.
func New(name string, sensors []sense.Sensor, actions []string, config Config) (*Domain, error) {
	if len(actions) == 0 {
		return nil, ErrNoActions
	}
	if len(sensors) == 0 {
		return nil, ErrNoSensors
	}
	seen := make(map[string]struct{}, len(sensors))
	for _, s := range sensors {
		if _, dup := seen[s.Name()]; dup {
			return nil, fmt.Errorf("domain %s: duplicate sensor name %q", name, s.Name())
		}
		seen[s.Name()] = struct{}{}
	}

	return &Domain{
		name:    name,
		sensors: append([]sense.Sensor(nil), sensors...),
		actions: append([]string(nil), actions...),
		config:  config,
	}, nil
}

// #endregion constructor

// #region observe

// Observe reads every sensor exactly once and returns the ordered
// observation. Sensors may be stateful; re-reading within a pass would change
// the value observed, so each underlying read is triggered once.
func (d *Domain) Observe(ctx context.Context) (sense.Observation, error) {
	return sense.ReadAll(ctx, d.sensors, d.config.SensorTimeout)
}

// #endregion observe

// #region accessors

// Name returns the domain name.
func (d *Domain) Name() string {
	return d.name
}

// Actions returns a copy of the action vocabulary in selection order.
func (d *Domain) Actions() []string {
	return append([]string(nil), d.actions...)
}

// Action returns the action at idx.
func (d *Domain) Action(idx int) (string, error) {
	if idx < 0 || idx >= len(d.actions) {
		return "", fmt.Errorf("domain %s: action index %d out of range [0,%d)", d.name, idx, len(d.actions))
	}
	return d.actions[idx], nil
}

// SensorCount returns the number of sensors.
func (d *Domain) SensorCount() int {
	return len(d.sensors)
}

// ActionCount returns the number of actions.
func (d *Domain) ActionCount() int {
	return len(d.actions)
}

// SensorNames returns the sensor names in observation order.
func (d *Domain) SensorNames() []string {
	names := make([]string, len(d.sensors))
	for i, s := range d.sensors {
		names[i] = s.Name()
	}
	return names
}

// #endregion accessors
