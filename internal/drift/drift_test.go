package drift

import (
	"strings"
	"testing"
)

func TestCommitWithinBounds(t *testing.T) {
	g := NewGuard(DefaultConfig())
	old := [][]float64{{0.1, 0.2}, {0.3, 0.4}}
	proposed := [][]float64{{0.105, 0.195}, {0.305, 0.395}}

	a := g.Evaluate(old, proposed)
	if a.Action != "commit" {
		t.Fatalf("expected commit, got %s: %s", a.Action, a.Reason)
	}
	if a.Vetoed {
		t.Fatal("should not be vetoed")
	}
	if a.StepNorm <= 0 {
		t.Fatalf("expected positive step norm, got %f", a.StepNorm)
	}
}

func TestRejectOnStepNorm(t *testing.T) {
	g := NewGuard(Config{MaxStepNorm: 0.01, MaxMatrixNorm: 100})
	old := [][]float64{{0, 0}}
	proposed := [][]float64{{1, 1}}

	a := g.Evaluate(old, proposed)
	if a.Action != "reject" || !a.Vetoed {
		t.Fatalf("expected reject, got %s", a.Action)
	}
	if !strings.Contains(a.Reason, "step norm") {
		t.Fatalf("unexpected reason %q", a.Reason)
	}
}

func TestRejectOnMatrixNorm(t *testing.T) {
	g := NewGuard(Config{MaxStepNorm: 100, MaxMatrixNorm: 1})
	old := [][]float64{{2, 2}}
	proposed := [][]float64{{2.001, 2.001}}

	a := g.Evaluate(old, proposed)
	if a.Action != "reject" || !a.Vetoed {
		t.Fatalf("expected reject, got %s", a.Action)
	}
	if !strings.Contains(a.Reason, "matrix norm") {
		t.Fatalf("unexpected reason %q", a.Reason)
	}
}

func TestRejectOnShapeChange(t *testing.T) {
	g := NewGuard(DefaultConfig())
	old := [][]float64{{1, 2}}
	proposed := [][]float64{{1, 2}, {3, 4}}

	a := g.Evaluate(old, proposed)
	if a.Action != "reject" || !a.Vetoed {
		t.Fatalf("expected reject on shape change, got %s", a.Action)
	}
}

func TestNoChangeCommits(t *testing.T) {
	g := NewGuard(DefaultConfig())
	w := [][]float64{{0.5, 0.5}, {0.5, 0.5}}

	a := g.Evaluate(w, w)
	if a.Action != "commit" {
		t.Fatalf("expected commit, got %s", a.Action)
	}
	if a.StepNorm != 0 {
		t.Fatalf("expected zero step norm, got %f", a.StepNorm)
	}
}
