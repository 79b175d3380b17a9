// Package simulate provides the seeded demo environment: simulated market
// sensors and imperative sensors for the business-strategy domain.
package simulate

// #region imports
import (
	"context"
	"math/rand"
	"sync"

	"github.com/danielpatrickdp/gaia-agent/internal/domain"
	"github.com/danielpatrickdp/gaia-agent/internal/ethics"
	"github.com/danielpatrickdp/gaia-agent/internal/sense"
)

// #endregion imports

// #region demo-vocabulary

// DemoDomainName is the name of the built-in demo domain.
const DemoDomainName = "business-strategy"

// DemoActions returns the demo action vocabulary in selection order.
func DemoActions() []string {
	return []string{
		"LAUNCH_NEW_PRODUCT",
		"FOCUS_ON_RETENTION",
		"EXPAND_TO_NEW_MARKET",
	}
}

// #endregion demo-vocabulary

// #region uniform-sensor

// uniformSensor samples scale * U[0,1) on every read. A shared rand.Rand is
// not safe for concurrent use, so reads are serialized with a mutex; the
// observation barrier already bounds the contention to one pass.
type uniformSensor struct {
	name  string
	scale float64
	mu    *sync.Mutex
	rng   *rand.Rand
}

func (s *uniformSensor) Name() string {
	return s.name
}

func (s *uniformSensor) Read(context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() * s.scale, nil
}

// #endregion uniform-sensor

// #region market-sensors

// MarketSensors returns the demo market sensors: competitive pressure and
// customer satisfaction, both U[0,1).
func MarketSensors(rng *rand.Rand) []sense.Sensor {
	mu := &sync.Mutex{}
	return []sense.Sensor{
		&uniformSensor{name: "market_competition", scale: 1.0, mu: mu, rng: rng},
		&uniformSensor{name: "customer_satisfaction", scale: 1.0, mu: mu, rng: rng},
	}
}

// #endregion market-sensors

// #region imperative-sensors

// ImperativeSensors returns the demo imperative sensors: a low-amplitude
// systemic-harm signal (pollution, burnout) and a participant-wellbeing
// signal (satisfaction, health).
func ImperativeSensors(rng *rand.Rand) []sense.Sensor {
	mu := &sync.Mutex{}
	return []sense.Sensor{
		&uniformSensor{name: "systemic_harm", scale: 0.1, mu: mu, rng: rng},
		&uniformSensor{name: "participant_wellbeing", scale: 1.0, mu: mu, rng: rng},
	}
}

// #endregion imperative-sensors

// #region demo-constructors

// DemoDomain builds the business-strategy demo domain over simulated market
// sensors.
func DemoDomain(rng *rand.Rand, config domain.Config) (*domain.Domain, error) {
	return domain.New(DemoDomainName, MarketSensors(rng), DemoActions(), config)
}

// DemoEthics builds the demo ethical core over simulated imperative sensors.
func DemoEthics(rng *rand.Rand, config ethics.Config) (*ethics.Core, error) {
	return ethics.New(ImperativeSensors(rng), config)
}

// #endregion demo-constructors
