package replay

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"
)

// #endregion imports

// #region fixture-types

// Fixture is the top-level JSON structure for a deterministic replay run:
// a fixed weight matrix plus scripted sensor readings and expected
// selections. Mutation is disabled during replay, so results are exactly
// reproducible.
type Fixture struct {
	Description string         `json:"description"`
	SensorNames []string       `json:"sensor_names"`
	Actions     []string       `json:"actions"`
	Weights     [][]float64    `json:"weights"`
	Cycles      []FixtureCycle `json:"cycles"`
}

// FixtureCycle scripts one cycle's inputs and the expected selection.
type FixtureCycle struct {
	CycleID  string    `json:"cycle_id"`
	Readings []float64 `json:"readings"`        // domain sensor values, sensor order
	Ethics   []float64 `json:"ethics_readings"` // imperative sensor values
	Expected string    `json:"expected_action"`
}

// #endregion fixture-types

// #region load

// LoadFixture reads and validates a fixture file.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	var fix Fixture
	if err := json.Unmarshal(data, &fix); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	if err := fix.Validate(); err != nil {
		return Fixture{}, err
	}
	return fix, nil
}

// #endregion load

// #region validate

// Validate checks internal consistency of the fixture shapes.
func (f Fixture) Validate() error {
	if len(f.Actions) == 0 {
		return fmt.Errorf("fixture: action vocabulary is empty")
	}
	if len(f.Weights) != len(f.SensorNames) {
		return fmt.Errorf("fixture: %d weight rows for %d sensors", len(f.Weights), len(f.SensorNames))
	}
	for i, row := range f.Weights {
		if len(row) != len(f.Actions) {
			return fmt.Errorf("fixture: weight row %d has %d cols for %d actions", i, len(row), len(f.Actions))
		}
	}
	for i, c := range f.Cycles {
		if len(c.Readings) != len(f.SensorNames) {
			return fmt.Errorf("fixture: cycle %d has %d readings for %d sensors", i, len(c.Readings), len(f.SensorNames))
		}
	}
	return nil
}

// #endregion validate
