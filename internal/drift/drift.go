package drift

// #region imports
import (
	"fmt"
	"math"
)

// #endregion imports

// #region config

// Config holds thresholds for checkpoint drift decisions.
type Config struct {
	MaxStepNorm   float64 // max L2 norm of a single-cycle weight delta
	MaxMatrixNorm float64 // max L2 norm of the full weight matrix
}

// DefaultConfig returns sensible defaults. The mutation step perturbs each
// weight by at most rate/2, so a step norm anywhere near 1.0 means something
// other than normal drift wrote the weights.
func DefaultConfig() Config {
	return Config{
		MaxStepNorm:   1.0,
		MaxMatrixNorm: 50.0,
	}
}

// #endregion config

// #region assessment

// Assessment is the output of evaluating a proposed checkpoint.
type Assessment struct {
	Action     string // "commit" | "reject"
	Reason     string
	Vetoed     bool
	StepNorm   float64
	MatrixNorm float64
}

// #endregion assessment

// #region guard

// Guard decides whether a mutated weight matrix should be persisted. The
// in-memory engine is never touched either way; core mutation stays
// unconditional, the guard only vetoes the host's checkpoint write.
type Guard struct {
	config Config
}

// NewGuard creates a guard with the given configuration.
func NewGuard(config Config) *Guard {
	return &Guard{config: config}
}

// Evaluate checks the proposed weights against the previous checkpoint.
func (g *Guard) Evaluate(old, proposed [][]float64) Assessment {
	if !sameShape(old, proposed) {
		return Assessment{
			Action: "reject",
			Reason: "weight matrix shape changed between checkpoints",
			Vetoed: true,
		}
	}

	stepNorm := deltaNorm(old, proposed)
	matrixNorm := matrixNorm(proposed)

	if stepNorm > g.config.MaxStepNorm {
		return Assessment{
			Action:     "reject",
			Reason:     fmt.Sprintf("step norm %.4f exceeds cap %.4f", stepNorm, g.config.MaxStepNorm),
			Vetoed:     true,
			StepNorm:   stepNorm,
			MatrixNorm: matrixNorm,
		}
	}
	if matrixNorm > g.config.MaxMatrixNorm {
		return Assessment{
			Action:     "reject",
			Reason:     fmt.Sprintf("matrix norm %.4f exceeds cap %.4f", matrixNorm, g.config.MaxMatrixNorm),
			Vetoed:     true,
			StepNorm:   stepNorm,
			MatrixNorm: matrixNorm,
		}
	}

	return Assessment{
		Action:     "commit",
		Reason:     fmt.Sprintf("within bounds: step=%.4f matrix=%.4f", stepNorm, matrixNorm),
		StepNorm:   stepNorm,
		MatrixNorm: matrixNorm,
	}
}

// #endregion guard

// #region helpers
func sameShape(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
	}
	return true
}

// deltaNorm computes the L2 norm of proposed - old element-wise.
func deltaNorm(old, proposed [][]float64) float64 {
	var sum float64
	for i := range old {
		for j := range old[i] {
			d := proposed[i][j] - old[i][j]
			sum += d * d
		}
	}
	return math.Sqrt(sum)
}

// matrixNorm computes the L2 norm of the full weight matrix.
func matrixNorm(w [][]float64) float64 {
	var sum float64
	for _, row := range w {
		for _, v := range row {
			sum += v * v
		}
	}
	return math.Sqrt(sum)
}

// #endregion helpers
