package dialogue

// #region imports
import (
	"context"
	"fmt"

	"github.com/danielpatrickdp/gaia-agent/internal/agent"
)

// #endregion imports

// #region config

// ResponderConfig holds tuning for the canned-response front end.
type ResponderConfig struct {
	ForecastCycles int // cycles run per forecast question
}

// DefaultResponderConfig returns sensible defaults.
func DefaultResponderConfig() ResponderConfig {
	return ResponderConfig{ForecastCycles: 5}
}

// #endregion config

// #region reply

// Reply is the front end's answer to one prompt. Cycles carries any cycle
// results produced while answering, so the host can checkpoint and journal
// them.
type Reply struct {
	Intent Intent
	Text   string
	Cycles []agent.CycleResult
}

// #endregion reply

// #region responder

// Responder renders canned answers from live agent state. It owns no state of
// its own; conversation history is not persisted.
type Responder struct {
	agent  *agent.Agent
	config ResponderConfig
}

// NewResponder creates a responder over the given agent.
func NewResponder(a *agent.Agent, config ResponderConfig) *Responder {
	if config.ForecastCycles <= 0 {
		config.ForecastCycles = DefaultResponderConfig().ForecastCycles
	}
	return &Responder{agent: a, config: config}
}

// #endregion responder

// #region respond

// Respond classifies the prompt and produces a reply. Forecasts run cycles;
// explanations only observe, so they leave the weight matrix untouched.
func (r *Responder) Respond(ctx context.Context, prompt string) (Reply, error) {
	switch Classify(prompt) {
	case IntentForecast:
		return r.forecast(ctx)
	case IntentExplain:
		return r.explain(ctx)
	default:
		return Reply{
			Intent: IntentUnknown,
			Text: "I need a more specific question. Are you trying to understand " +
				"the current state, predict where it is heading, or analyze the cause of a problem?",
		}, nil
	}
}

// #endregion respond

// #region forecast

// forecast runs a burst of cycles and reports the dominant action.
func (r *Responder) forecast(ctx context.Context) (Reply, error) {
	counts := make(map[string]int)
	var cycles []agent.CycleResult

	for i := 0; i < r.config.ForecastCycles; i++ {
		res, err := r.agent.RunCycle(ctx)
		if err != nil {
			return Reply{}, fmt.Errorf("forecast: %w", err)
		}
		cycles = append(cycles, res)
		counts[res.Action]++
	}

	// Dominant action; action order breaks count ties deterministically.
	dominant := ""
	best := -1
	for _, action := range r.agent.Domain().Actions() {
		if counts[action] > best {
			dominant = action
			best = counts[action]
		}
	}

	text := fmt.Sprintf(
		"Simulated %d decision cycles. The dominant strategy is %q (%d of %d cycles): "+
			"the system is currently optimizing toward it over the alternatives.",
		len(cycles), dominant, best, len(cycles))

	return Reply{Intent: IntentForecast, Text: text, Cycles: cycles}, nil
}

// #endregion forecast

// #region explain

// explain reports the sensor with the largest current reading, the host-level
// answer to "why is the agent deciding this way".
func (r *Responder) explain(ctx context.Context) (Reply, error) {
	obs, err := r.agent.Domain().Observe(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("explain: %w", err)
	}

	strongest, ok := obs.Strongest()
	if !ok {
		return Reply{}, fmt.Errorf("explain: empty observation")
	}

	text := fmt.Sprintf(
		"The most critical factor in the current system state is %q (%.4f). "+
			"Fluctuations in this signal are steering most strategic decisions.",
		strongest.Name, strongest.Value)

	return Reply{Intent: IntentExplain, Text: text}, nil
}

// #endregion explain
