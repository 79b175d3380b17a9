package main

// #region imports
import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/danielpatrickdp/gaia-agent/internal/agent"
	"github.com/danielpatrickdp/gaia-agent/internal/checkpoint"
	"github.com/danielpatrickdp/gaia-agent/internal/dialogue"
	"github.com/danielpatrickdp/gaia-agent/internal/domain"
	"github.com/danielpatrickdp/gaia-agent/internal/drift"
	"github.com/danielpatrickdp/gaia-agent/internal/engine"
	"github.com/danielpatrickdp/gaia-agent/internal/ethics"
	"github.com/danielpatrickdp/gaia-agent/internal/journal"
	"github.com/danielpatrickdp/gaia-agent/internal/sense"
	"github.com/danielpatrickdp/gaia-agent/internal/simulate"
	"github.com/danielpatrickdp/gaia-agent/internal/telemetry"
	"github.com/google/uuid"
)

// #endregion imports

// #region config

type config struct {
	DBPath         string        `env:"GAIA_DB" envDefault:"gaia_agent.db"`
	TelemetryAddr  string        `env:"TELEMETRY_ADDR"`
	Seed           int64         `env:"GAIA_SEED" envDefault:"0"`
	MutationRate   float64       `env:"GAIA_MUTATION_RATE" envDefault:"0.01"`
	SensorTimeout  time.Duration `env:"GAIA_SENSOR_TIMEOUT" envDefault:"2s"`
	ForecastCycles int           `env:"GAIA_FORECAST_CYCLES" envDefault:"5"`
	CycleTimeout   time.Duration `env:"GAIA_CYCLE_TIMEOUT" envDefault:"30s"`
}

// #endregion config

// #region main
func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse config: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	store, err := checkpoint.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	// Domain sensors: live telemetry when an address is configured, otherwise
	// the seeded simulation.
	var sensors []sense.Sensor
	var telemetryClient *telemetry.Client
	if cfg.TelemetryAddr != "" {
		telemetryClient, err = telemetry.NewClient(cfg.TelemetryAddr)
		if err != nil {
			log.Fatalf("failed to connect to telemetry at %s: %v", cfg.TelemetryAddr, err)
		}
		defer telemetryClient.Close()
		sensors = []sense.Sensor{
			telemetry.NewRemoteSensor("market_competition", "market_competition", telemetryClient),
			telemetry.NewRemoteSensor("customer_satisfaction", "customer_satisfaction", telemetryClient),
		}
	} else {
		sensors = simulate.MarketSensors(rng)
	}

	dom, err := domain.New(simulate.DemoDomainName, sensors, simulate.DemoActions(),
		domain.Config{SensorTimeout: cfg.SensorTimeout})
	if err != nil {
		log.Fatalf("failed to build domain: %v", err)
	}

	core, err := simulate.DemoEthics(rng, ethics.Config{SensorTimeout: cfg.SensorTimeout})
	if err != nil {
		log.Fatalf("failed to build ethical core: %v", err)
	}

	eng, err := engine.New(dom.SensorCount(), dom.ActionCount(), rng)
	if err != nil {
		log.Fatalf("failed to build engine: %v", err)
	}

	// Restore the active checkpoint, or create the initial one.
	active, err := store.GetActive()
	if err == nil && active.Rows == eng.Rows() && active.Cols == eng.Cols() {
		if err := eng.SetWeights(active.Weights); err != nil {
			log.Fatalf("failed to restore weights: %v", err)
		}
		log.Printf("[HOST] restored weight version %s", active.VersionID)
	} else {
		active, err = store.CreateInitial(dom.Name(), eng.Weights())
		if err != nil {
			log.Fatalf("failed to create initial checkpoint: %v", err)
		}
		log.Printf("[HOST] created initial weight version %s", active.VersionID)
	}

	ag, err := agent.New(dom, eng, core, agent.Config{MutationRate: cfg.MutationRate})
	if err != nil {
		log.Fatalf("failed to build agent: %v", err)
	}

	responder := dialogue.NewResponder(ag, dialogue.ResponderConfig{ForecastCycles: cfg.ForecastCycles})
	guard := drift.NewGuard(drift.DefaultConfig())

	fmt.Println("Gaia agent ready.")
	fmt.Printf("  DB: %s | Domain: %s | Sensors: %s\n",
		cfg.DBPath, dom.Name(), strings.Join(dom.SensorNames(), ", "))
	fmt.Println("Ask for a forecast or an analysis (or 'quit' to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		prompt := strings.TrimSpace(scanner.Text())
		if prompt == "" {
			continue
		}
		if prompt == "quit" || prompt == "exit" {
			break
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.CycleTimeout)
		reply, err := responder.Respond(ctx, prompt)
		cancel()
		if err != nil {
			log.Printf("respond error: %v", err)
			continue
		}

		fmt.Printf("\n%s\n\n", reply.Text)

		if len(reply.Cycles) > 0 {
			active = persistTurn(store, guard, eng, dom.Name(), active, reply.Cycles)
		}
	}
}

// #endregion main

// #region persist-turn

// persistTurn checkpoints the post-turn weights through the drift guard and
// journals every cycle the turn produced. Returns the new active record, or
// the previous one when the guard vetoes.
func persistTurn(
	store *checkpoint.Store,
	guard *drift.Guard,
	eng *engine.Engine,
	domainName string,
	prev checkpoint.WeightRecord,
	cycles []agent.CycleResult,
) checkpoint.WeightRecord {
	proposed := eng.Weights()
	assessment := guard.Evaluate(prev.Weights, proposed)

	rec := prev
	if assessment.Vetoed {
		log.Printf("[DRIFT] checkpoint vetoed: %s", assessment.Reason)
	} else {
		rec = checkpoint.WeightRecord{
			VersionID:  uuid.New().String(),
			ParentID:   prev.VersionID,
			DomainName: domainName,
			Rows:       len(proposed),
			Cols:       len(proposed[0]),
			Weights:    proposed,
			CreatedAt:  time.Now().UTC(),
		}
		if err := store.Commit(rec); err != nil {
			log.Printf("commit error: %v", err)
			rec = prev
		}
	}

	for _, c := range cycles {
		rawJSON, _ := json.Marshal(c.Raw)
		finalJSON, _ := json.Marshal(c.Final)
		err := journal.LogCycle(store.DB(), journal.CycleEntry{
			VersionID:      rec.VersionID,
			CycleID:        c.CycleID,
			SelectedAction: c.Action,
			Dissonance:     c.Dissonance,
			RawJSON:        string(rawJSON),
			FinalJSON:      string(finalJSON),
			Decision:       assessment.Action,
			Reason:         assessment.Reason,
			CreatedAt:      time.Now().UTC(),
		})
		if err != nil {
			log.Printf("journal error: %v", err)
		}
	}

	return rec
}

// #endregion persist-turn
