package agent

// #region imports
import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/danielpatrickdp/gaia-agent/internal/domain"
	"github.com/danielpatrickdp/gaia-agent/internal/engine"
	"github.com/danielpatrickdp/gaia-agent/internal/ethics"
	"github.com/danielpatrickdp/gaia-agent/internal/sense"
	"github.com/google/uuid"
)

// #endregion imports

// #region config

// Config holds cycle tuning for an agent.
type Config struct {
	MutationRate float64 // perturbation span passed to the engine each cycle
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{MutationRate: engine.DefaultMutationRate}
}

// #endregion config

// #region cycle-result

// CycleResult captures everything one cycle produced, so a host can explain
// the decision without reaching into the core.
type CycleResult struct {
	CycleID     string
	Action      string
	ActionIndex int
	Observation sense.Observation
	Ethics      sense.Observation
	Raw         []float64
	Final       []float64
	Dissonance  float64
	Elapsed     time.Duration
}

// #endregion cycle-result

// #region agent-struct

// Agent composes one domain, one decision engine, and one ethical core, and
// runs the perceive → score → temper → select → mutate cycle. At most one
// cycle may be in flight per agent; the mutex covers the whole cycle so the
// weight matrix is never read and mutated concurrently.
type Agent struct {
	mu     sync.Mutex
	domain *domain.Domain
	engine *engine.Engine
	core   *ethics.Core
	config Config
}

// #endregion agent-struct

// #region constructor

// New wires an agent. The engine must be sized to the domain's sensor and
// action counts; a mismatch is a configuration error, raised here and never
// retried.
func New(d *domain.Domain, e *engine.Engine, core *ethics.Core, config Config) (*Agent, error) {
	if d == nil || e == nil || core == nil {
		return nil, fmt.Errorf("agent: domain, engine, and ethical core are all required")
	}
	if e.Rows() != d.SensorCount() {
		return nil, fmt.Errorf("agent: engine rows %d do not match domain sensor count %d", e.Rows(), d.SensorCount())
	}
	if e.Cols() != d.ActionCount() {
		return nil, fmt.Errorf("agent: engine cols %d do not match domain action count %d", e.Cols(), d.ActionCount())
	}
	return &Agent{domain: d, engine: e, core: core, config: config}, nil
}

// #endregion constructor

// #region run-cycle

// RunCycle performs one full cycle and returns the selected action. The cycle
// is atomic with respect to the weight matrix: any sensor failure aborts
// before mutation, leaving the weights unchanged, and the error is surfaced
// so the caller can retry the whole cycle on the next tick.
func (a *Agent) RunCycle(ctx context.Context) (CycleResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	start := time.Now()
	cycleID := uuid.New().String()

	// 1. Observe: every domain sensor exactly once.
	obs, err := a.domain.Observe(ctx)
	if err != nil {
		return CycleResult{}, fmt.Errorf("cycle %s: observe: %w", cycleID, err)
	}

	// 2. Score: raw preference from the weight matrix.
	raw, err := a.engine.Score(obs.Vector())
	if err != nil {
		return CycleResult{}, fmt.Errorf("cycle %s: score: %w", cycleID, err)
	}

	// 3. Temper: imperative pass, then a mean-proportional global shift.
	ethObs, err := a.core.Observe(ctx)
	if err != nil {
		return CycleResult{}, fmt.Errorf("cycle %s: imperative observe: %w", cycleID, err)
	}
	dissonance := a.core.Dissonance(ethObs)
	final := Temper(raw, dissonance)

	// 4. Select: arg-max, lowest index wins ties.
	idx := ArgMax(final)
	action, err := a.domain.Action(idx)
	if err != nil {
		return CycleResult{}, fmt.Errorf("cycle %s: select: %w", cycleID, err)
	}

	// 5. Adapt: unconditional random drift, only after a complete selection.
	a.engine.Mutate(a.config.MutationRate)

	result := CycleResult{
		CycleID:     cycleID,
		Action:      action,
		ActionIndex: idx,
		Observation: obs,
		Ethics:      ethObs,
		Raw:         raw,
		Final:       final,
		Dissonance:  dissonance,
		Elapsed:     time.Since(start),
	}

	log.Printf("[AGENT] cycle %s: action=%s dissonance=%.4f elapsed=%s",
		cycleID, action, dissonance, result.Elapsed)

	return result, nil
}

// #endregion run-cycle

// #region accessors

// Domain returns the agent's domain, exposed so a host can explain decisions
// (e.g. report which sensor currently holds the largest value).
func (a *Agent) Domain() *domain.Domain {
	return a.domain
}

// Engine returns the agent's decision engine. Hosts use it for checkpointing.
func (a *Agent) Engine() *engine.Engine {
	return a.engine
}

// #endregion accessors

// #region pure-helpers

// Temper applies the dissonance penalty to a raw preference vector:
// final[a] = raw[a] - dissonance * mean(raw). A single global scalar shift,
// not a per-action cost, so it changes rankings only when dissonance is large
// relative to the spread of raw scores.
func Temper(raw []float64, dissonance float64) []float64 {
	shift := dissonance * Mean(raw)
	final := make([]float64, len(raw))
	for i, v := range raw {
		final[i] = v - shift
	}
	return final
}

// Mean returns the arithmetic mean of v, 0 for an empty slice.
func Mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// ArgMax returns the index of the largest value. Ties resolve to the lowest
// index, so selection is deterministic given identical inputs.
func ArgMax(v []float64) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}

// #endregion pure-helpers
