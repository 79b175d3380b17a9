package engine

// #region imports
import (
	"fmt"
	"math/rand"
	"time"
)

// #endregion imports

// #region constants

// DefaultMutationRate is the perturbation span applied by Mutate when the
// caller passes no explicit rate.
const DefaultMutationRate = 0.01

// #endregion constants

// #region errors

// DimensionError reports an observation vector whose length does not match
// the weight matrix row count. This is a programmer error, not a runtime data
// error; it is never silently truncated or padded.
type DimensionError struct {
	Got  int
	Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("engine: observation vector length %d does not match weight rows %d", e.Got, e.Want)
}

// #endregion errors

// #region engine-struct

// Engine owns the weight matrix, the agent's entire learned state. Rows map
// to sensors, columns to actions.
type Engine struct {
	rows    int
	cols    int
	weights [][]float64
	rng     *rand.Rand
}

// #endregion engine-struct

// #region constructor

// New creates an engine sized to the given sensor and action counts, with
// weights drawn independently from uniform [0, 1). rng may be nil, in which
// case a time-seeded source is used.
func New(sensors, actions int, rng *rand.Rand) (*Engine, error) {
	if sensors <= 0 {
		return nil, fmt.Errorf("engine: sensor count must be positive, got %d", sensors)
	}
	if actions <= 0 {
		return nil, fmt.Errorf("engine: action count must be positive, got %d", actions)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	weights := make([][]float64, sensors)
	for s := range weights {
		row := make([]float64, actions)
		for a := range row {
			row[a] = rng.Float64()
		}
		weights[s] = row
	}

	return &Engine{rows: sensors, cols: actions, weights: weights, rng: rng}, nil
}

// #endregion constructor

// #region score

// Score computes the raw preference vector: result[a] = Σ_s obs[s] * W[s][a].
// Pure function of the current weights; no side effects.
func (e *Engine) Score(obs []float64) ([]float64, error) {
	if len(obs) != e.rows {
		return nil, &DimensionError{Got: len(obs), Want: e.rows}
	}

	pref := make([]float64, e.cols)
	for s, row := range e.weights {
		for a, w := range row {
			pref[a] += obs[s] * w
		}
	}
	return pref, nil
}

// #endregion score

// #region mutate

// Mutate adds an independent perturbation drawn from uniform
// [-rate/2, +rate/2] to every weight. This is the entire learning mechanism:
// an unconditional random walk with no feedback from outcomes. rate <= 0
// falls back to DefaultMutationRate.
func (e *Engine) Mutate(rate float64) {
	if rate <= 0 {
		rate = DefaultMutationRate
	}
	for _, row := range e.weights {
		for a := range row {
			row[a] += (e.rng.Float64() - 0.5) * rate
		}
	}
}

// #endregion mutate

// #region weights-access

// Rows returns the sensor dimension of the weight matrix.
func (e *Engine) Rows() int {
	return e.rows
}

// Cols returns the action dimension of the weight matrix.
func (e *Engine) Cols() int {
	return e.cols
}

// Weights returns a deep copy of the weight matrix. Hosts use this for
// checkpointing; the engine's own state cannot be mutated through the copy.
func (e *Engine) Weights() [][]float64 {
	return CopyMatrix(e.weights)
}

// SetWeights replaces the weight matrix with a copy of w. Shape must match
// the engine's dimensions. Used by hosts restoring a checkpoint.
func (e *Engine) SetWeights(w [][]float64) error {
	if len(w) != e.rows {
		return fmt.Errorf("engine: weight rows %d do not match engine rows %d", len(w), e.rows)
	}
	for s, row := range w {
		if len(row) != e.cols {
			return fmt.Errorf("engine: weight row %d has %d cols, want %d", s, len(row), e.cols)
		}
	}
	e.weights = CopyMatrix(w)
	return nil
}

// #endregion weights-access

// #region matrix-helpers

// CopyMatrix deep-copies a weight matrix.
func CopyMatrix(w [][]float64) [][]float64 {
	out := make([][]float64, len(w))
	for i, row := range w {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// #endregion matrix-helpers
