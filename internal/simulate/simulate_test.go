package simulate

import (
	"context"
	"math/rand"
	"testing"

	"github.com/danielpatrickdp/gaia-agent/internal/domain"
	"github.com/danielpatrickdp/gaia-agent/internal/ethics"
)

func TestMarketSensorNames(t *testing.T) {
	sensors := MarketSensors(rand.New(rand.NewSource(1)))
	want := []string{"market_competition", "customer_satisfaction"}
	if len(sensors) != len(want) {
		t.Fatalf("expected %d sensors, got %d", len(want), len(sensors))
	}
	for i, s := range sensors {
		if s.Name() != want[i] {
			t.Fatalf("sensor %d = %q, want %q", i, s.Name(), want[i])
		}
	}
}

func TestMarketSensorRange(t *testing.T) {
	sensors := MarketSensors(rand.New(rand.NewSource(2)))
	for i := 0; i < 100; i++ {
		for _, s := range sensors {
			v, err := s.Read(context.Background())
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if v < 0 || v >= 1 {
				t.Fatalf("%s read %f outside [0,1)", s.Name(), v)
			}
		}
	}
}

func TestSystemicHarmIsLowAmplitude(t *testing.T) {
	sensors := ImperativeSensors(rand.New(rand.NewSource(3)))
	if sensors[0].Name() != "systemic_harm" {
		t.Fatalf("unexpected sensor order: %s", sensors[0].Name())
	}
	for i := 0; i < 100; i++ {
		v, err := sensors[0].Read(context.Background())
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if v < 0 || v >= 0.1 {
			t.Fatalf("systemic_harm read %f outside [0,0.1)", v)
		}
	}
}

func TestDemoDomain(t *testing.T) {
	d, err := DemoDomain(rand.New(rand.NewSource(4)), domain.DefaultConfig())
	if err != nil {
		t.Fatalf("DemoDomain: %v", err)
	}
	if d.Name() != DemoDomainName {
		t.Fatalf("unexpected domain name %q", d.Name())
	}
	if d.SensorCount() != 2 || d.ActionCount() != 3 {
		t.Fatalf("unexpected shape (%d,%d)", d.SensorCount(), d.ActionCount())
	}

	obs, err := d.Observe(context.Background())
	if err != nil {
		t.Fatalf("Observe: %v", err)
	}
	if len(obs.Readings) != 2 {
		t.Fatalf("expected 2 readings, got %d", len(obs.Readings))
	}
}

func TestDemoEthics(t *testing.T) {
	core, err := DemoEthics(rand.New(rand.NewSource(5)), ethics.DefaultConfig())
	if err != nil {
		t.Fatalf("DemoEthics: %v", err)
	}

	obs, err := core.Observe(context.Background())
	if err != nil {
		t.Fatalf("Observe: %v", err)
	}
	d := core.Dissonance(obs)
	if d < 0 || d >= 1.1 {
		t.Fatalf("dissonance %f outside demo range", d)
	}
}
