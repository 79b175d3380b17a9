package sense

// #region imports
import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

// #endregion imports

// #region sensor-interface

// Sensor is a named, on-demand scalar data source. Read may be
// non-deterministic but must return a finite value on every successful call.
type Sensor interface {
	Name() string
	Read(ctx context.Context) (float64, error)
}

// #endregion sensor-interface

// #region errors

// ErrNotFinite is returned when a sensor produces NaN or an infinity.
var ErrNotFinite = errors.New("sensor produced a non-finite value")

// ReadError reports a failed or timed-out read from a named sensor.
type ReadError struct {
	Sensor string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("sensor %s: read failed: %v", e.Sensor, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// #endregion errors

// #region func-sensor

// Func adapts a plain function into a Sensor.
type Func struct {
	name string
	fn   func(ctx context.Context) (float64, error)
}

// NewFunc wraps fn as a Sensor with the given name.
func NewFunc(name string, fn func(ctx context.Context) (float64, error)) *Func {
	return &Func{name: name, fn: fn}
}

// Fixed returns a Sensor that always reads the same value. Used in tests and
// replay fixtures.
func Fixed(name string, value float64) *Func {
	return &Func{name: name, fn: func(context.Context) (float64, error) {
		return value, nil
	}}
}

// Name returns the sensor name.
func (f *Func) Name() string {
	return f.name
}

// Read invokes the wrapped function.
func (f *Func) Read(ctx context.Context) (float64, error) {
	return f.fn(ctx)
}

// #endregion func-sensor

// #region reading

// Reading is one sensor's value within an observation pass.
type Reading struct {
	Name  string
	Value float64
}

// #endregion reading

// #region observation

// Observation holds one read pass over an ordered sensor set. Readings
// preserve sensor order; the order defines the observation-vector index.
type Observation struct {
	Readings []Reading
}

// Vector returns the readings as a dense vector in sensor order.
func (o Observation) Vector() []float64 {
	vec := make([]float64, len(o.Readings))
	for i, r := range o.Readings {
		vec[i] = r.Value
	}
	return vec
}

// Map returns the readings keyed by sensor name.
func (o Observation) Map() map[string]float64 {
	m := make(map[string]float64, len(o.Readings))
	for _, r := range o.Readings {
		m[r.Name] = r.Value
	}
	return m
}

// Strongest returns the reading with the largest value. The second return is
// false for an empty observation.
func (o Observation) Strongest() (Reading, bool) {
	if len(o.Readings) == 0 {
		return Reading{}, false
	}
	best := o.Readings[0]
	for _, r := range o.Readings[1:] {
		if r.Value > best.Value {
			best = r
		}
	}
	return best, true
}

// #endregion observation

// #region read-timed

// ReadTimed reads one sensor with an enforced timeout. A timeout or a
// non-finite value is reported as a ReadError; there is no silent default.
func ReadTimed(ctx context.Context, s Sensor, timeout time.Duration) (float64, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		value float64
		err   error
	}
	done := make(chan result, 1)
	go func() {
		v, err := s.Read(ctx)
		done <- result{value: v, err: err}
	}()

	select {
	case <-ctx.Done():
		return 0, &ReadError{Sensor: s.Name(), Err: ctx.Err()}
	case res := <-done:
		if res.err != nil {
			return 0, &ReadError{Sensor: s.Name(), Err: res.err}
		}
		if math.IsNaN(res.value) || math.IsInf(res.value, 0) {
			return 0, &ReadError{Sensor: s.Name(), Err: ErrNotFinite}
		}
		return res.value, nil
	}
}

// #endregion read-timed

// #region read-all

// ReadAll reads every sensor exactly once, concurrently, and waits for all
// reads to finish before returning. Results preserve sensor order. Any failed
// read fails the whole pass; partial observations are never returned.
func ReadAll(ctx context.Context, sensors []Sensor, timeout time.Duration) (Observation, error) {
	readings := make([]Reading, len(sensors))
	errs := make([]error, len(sensors))

	done := make(chan int, len(sensors))
	for i, s := range sensors {
		go func(i int, s Sensor) {
			v, err := ReadTimed(ctx, s, timeout)
			readings[i] = Reading{Name: s.Name(), Value: v}
			errs[i] = err
			done <- i
		}(i, s)
	}

	// Barrier: every read completes before the pass is judged.
	for range sensors {
		<-done
	}

	for _, err := range errs {
		if err != nil {
			return Observation{}, err
		}
	}
	return Observation{Readings: readings}, nil
}

// #endregion read-all
