package replay

// #region imports
import (
	"fmt"
	"math/rand"

	"github.com/danielpatrickdp/gaia-agent/internal/agent"
	"github.com/danielpatrickdp/gaia-agent/internal/engine"
)

// #endregion imports

// #region result

// Result captures the outcome of replaying one scripted cycle through the
// score → temper → select pipeline.
type Result struct {
	CycleID    string
	Action     string
	Expected   string
	Pass       bool
	Dissonance float64
	Raw        []float64
	Final      []float64
}

// #endregion result

// #region run

// Run replays every scripted cycle against the fixture's weight matrix. The
// pipeline is the live one minus mutation, so a fixture pins exact selection
// behavior across refactors.
func Run(fix Fixture) ([]Result, error) {
	if err := fix.Validate(); err != nil {
		return nil, err
	}

	eng, err := engine.New(len(fix.SensorNames), len(fix.Actions), rand.New(rand.NewSource(0)))
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	if err := eng.SetWeights(fix.Weights); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	results := make([]Result, 0, len(fix.Cycles))
	for _, c := range fix.Cycles {
		raw, err := eng.Score(c.Readings)
		if err != nil {
			return nil, fmt.Errorf("replay cycle %s: %w", c.CycleID, err)
		}

		var dissonance float64
		for _, v := range c.Ethics {
			dissonance += v
		}

		final := agent.Temper(raw, dissonance)
		idx := agent.ArgMax(final)
		action := fix.Actions[idx]

		results = append(results, Result{
			CycleID:    c.CycleID,
			Action:     action,
			Expected:   c.Expected,
			Pass:       c.Expected == "" || c.Expected == action,
			Dissonance: dissonance,
			Raw:        raw,
			Final:      final,
		})
	}
	return results, nil
}

// #endregion run

// #region summarize

// Summarize counts passing cycles. Cycles without an expectation count as
// passing.
func Summarize(results []Result) (passed, total int) {
	for _, r := range results {
		if r.Pass {
			passed++
		}
	}
	return passed, len(results)
}

// #endregion summarize
