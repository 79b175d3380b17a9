package replay

import (
	"os"
	"path/filepath"
	"testing"
)

func baseFixture() Fixture {
	return Fixture{
		Description: "scoring pin",
		SensorNames: []string{"s0", "s1"},
		Actions:     []string{"A", "B", "C"},
		Weights:     [][]float64{{2, 0, 1}, {0, 1, 3}},
		Cycles: []FixtureCycle{
			{CycleID: "c1", Readings: []float64{1, 0}, Ethics: []float64{0}, Expected: "A"},
			{CycleID: "c2", Readings: []float64{1, 0}, Ethics: []float64{1}, Expected: "A"},
			{CycleID: "c3", Readings: []float64{0, 1}, Ethics: []float64{0}, Expected: "C"},
		},
	}
}

func TestRunScriptedCycles(t *testing.T) {
	results, err := Run(baseFixture())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Pass {
			t.Fatalf("cycle %s selected %q, expected %q", r.CycleID, r.Action, r.Expected)
		}
	}

	// c1: readings [1,0] → raw [2,0,1], zero dissonance leaves it untouched.
	if results[0].Raw[0] != 2 || results[0].Raw[1] != 0 || results[0].Raw[2] != 1 {
		t.Fatalf("unexpected raw preferences %v", results[0].Raw)
	}
	// c2: dissonance 1 shifts every preference by mean(raw) = 1.
	if results[1].Dissonance != 1 {
		t.Fatalf("expected dissonance 1, got %f", results[1].Dissonance)
	}
	if results[1].Final[0] != 1 {
		t.Fatalf("expected tempered leader 1, got %f", results[1].Final[0])
	}
}

func TestRunReportsMismatch(t *testing.T) {
	fix := baseFixture()
	fix.Cycles = []FixtureCycle{
		{CycleID: "wrong", Readings: []float64{1, 0}, Expected: "C"},
	}

	results, err := Run(fix)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if results[0].Pass {
		t.Fatal("expected a selection mismatch")
	}
	passed, total := Summarize(results)
	if passed != 0 || total != 1 {
		t.Fatalf("Summarize = (%d, %d), want (0, 1)", passed, total)
	}
}

func TestRunWithoutExpectationPasses(t *testing.T) {
	fix := baseFixture()
	fix.Cycles = []FixtureCycle{
		{CycleID: "open", Readings: []float64{0.5, 0.5}},
	}

	results, err := Run(fix)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !results[0].Pass {
		t.Fatal("cycle without an expectation must count as passing")
	}
}

func TestValidate(t *testing.T) {
	fix := baseFixture()
	fix.Actions = nil
	if err := fix.Validate(); err == nil {
		t.Fatal("expected error for empty action vocabulary")
	}

	fix = baseFixture()
	fix.Weights = [][]float64{{1, 2, 3}}
	if err := fix.Validate(); err == nil {
		t.Fatal("expected error for row/sensor mismatch")
	}

	fix = baseFixture()
	fix.Weights[1] = []float64{1, 2}
	if err := fix.Validate(); err == nil {
		t.Fatal("expected error for col/action mismatch")
	}

	fix = baseFixture()
	fix.Cycles[0].Readings = []float64{1}
	if err := fix.Validate(); err == nil {
		t.Fatal("expected error for reading/sensor mismatch")
	}
}

func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.json")
	data := `{
  "description": "round trip",
  "sensor_names": ["s0", "s1"],
  "actions": ["A", "B"],
  "weights": [[1, 0], [0, 1]],
  "cycles": [
    {"cycle_id": "c1", "readings": [1, 0], "ethics_readings": [0.2], "expected_action": "A"}
  ]
}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fix, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if fix.Description != "round trip" {
		t.Fatalf("unexpected description %q", fix.Description)
	}
	if len(fix.Cycles) != 1 || fix.Cycles[0].Ethics[0] != 0.2 {
		t.Fatalf("unexpected cycles %+v", fix.Cycles)
	}
}

func TestLoadFixtureErrors(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected error for malformed json")
	}
}
