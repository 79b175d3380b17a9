package ethics

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/danielpatrickdp/gaia-agent/internal/sense"
)

func TestNewRejectsEmptyImperatives(t *testing.T) {
	_, err := New(nil, DefaultConfig())
	if !errors.Is(err, ErrNoImperatives) {
		t.Fatalf("expected ErrNoImperatives, got %v", err)
	}
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	imperatives := []sense.Sensor{
		sense.Fixed("systemic_harm", 0.1),
		sense.Fixed("systemic_harm", 0.2),
	}
	if _, err := New(imperatives, DefaultConfig()); err == nil {
		t.Fatal("expected duplicate-name error")
	}
}

func TestDissonanceIsPlainSum(t *testing.T) {
	core, err := New([]sense.Sensor{
		sense.Fixed("systemic_harm", 0.05),
		sense.Fixed("participant_wellbeing", 0.65),
	}, DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	obs, err := core.Observe(context.Background())
	if err != nil {
		t.Fatalf("Observe: %v", err)
	}

	d := core.Dissonance(obs)
	if math.Abs(d-0.7) > 1e-12 {
		t.Fatalf("expected dissonance 0.7, got %f", d)
	}
}

func TestDissonanceRecomputedPerObservation(t *testing.T) {
	values := []float64{0.1, 0.9}
	i := 0
	varying := sense.NewFunc("varying", func(context.Context) (float64, error) {
		v := values[i%len(values)]
		i++
		return v, nil
	})

	core, err := New([]sense.Sensor{varying}, DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	obs1, err := core.Observe(context.Background())
	if err != nil {
		t.Fatalf("Observe: %v", err)
	}
	obs2, err := core.Observe(context.Background())
	if err != nil {
		t.Fatalf("Observe: %v", err)
	}

	if core.Dissonance(obs1) == core.Dissonance(obs2) {
		t.Fatal("dissonance must track fresh readings, not a cached value")
	}
}

func TestImperativeNames(t *testing.T) {
	core, err := New([]sense.Sensor{
		sense.Fixed("systemic_harm", 0),
		sense.Fixed("participant_wellbeing", 0),
	}, DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	names := core.ImperativeNames()
	if len(names) != 2 || names[0] != "systemic_harm" || names[1] != "participant_wellbeing" {
		t.Fatalf("unexpected names %v", names)
	}
}
