package sense

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"testing"
	"time"
)

func TestFixedSensorRead(t *testing.T) {
	s := Fixed("temperature", 0.42)
	v, err := s.Read(context.Background())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if v != 0.42 {
		t.Fatalf("expected 0.42, got %f", v)
	}
	if s.Name() != "temperature" {
		t.Fatalf("expected name temperature, got %s", s.Name())
	}
}

func TestReadTimedRejectsNonFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		s := Fixed("broken", bad)
		_, err := ReadTimed(context.Background(), s, time.Second)
		if err == nil {
			t.Fatalf("expected error for value %f", bad)
		}
		if !errors.Is(err, ErrNotFinite) {
			t.Fatalf("expected ErrNotFinite, got %v", err)
		}
		var readErr *ReadError
		if !errors.As(err, &readErr) {
			t.Fatalf("expected *ReadError, got %T", err)
		}
		if readErr.Sensor != "broken" {
			t.Fatalf("expected sensor name in error, got %s", readErr.Sensor)
		}
	}
}

func TestReadTimedTimeout(t *testing.T) {
	s := NewFunc("slow", func(ctx context.Context) (float64, error) {
		select {
		case <-time.After(5 * time.Second):
			return 1, nil
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	})

	start := time.Now()
	_, err := ReadTimed(context.Background(), s, 20*time.Millisecond)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("timeout was not enforced")
	}
}

func TestReadAllPreservesOrder(t *testing.T) {
	sensors := []Sensor{
		Fixed("a", 1.0),
		Fixed("b", 2.0),
		Fixed("c", 3.0),
	}
	obs, err := ReadAll(context.Background(), sensors, time.Second)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	want := []Reading{{"a", 1.0}, {"b", 2.0}, {"c", 3.0}}
	for i, r := range obs.Readings {
		if r != want[i] {
			t.Fatalf("reading %d: expected %v, got %v", i, want[i], r)
		}
	}
	vec := obs.Vector()
	if len(vec) != 3 || vec[0] != 1.0 || vec[1] != 2.0 || vec[2] != 3.0 {
		t.Fatalf("unexpected vector %v", vec)
	}
}

func TestReadAllReadsEachSensorOnce(t *testing.T) {
	var count int64
	counting := NewFunc("counting", func(context.Context) (float64, error) {
		return float64(atomic.AddInt64(&count, 1)), nil
	})

	_, err := ReadAll(context.Background(), []Sensor{counting, Fixed("other", 0)}, time.Second)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one read, got %d", count)
	}
}

func TestReadAllFailsOnAnySensor(t *testing.T) {
	failing := NewFunc("dead", func(context.Context) (float64, error) {
		return 0, fmt.Errorf("source unavailable")
	})
	_, err := ReadAll(context.Background(), []Sensor{Fixed("ok", 1), failing}, time.Second)
	if err == nil {
		t.Fatal("expected error from failing sensor")
	}
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected *ReadError, got %T", err)
	}
	if readErr.Sensor != "dead" {
		t.Fatalf("expected failing sensor name, got %s", readErr.Sensor)
	}
}

func TestObservationStrongest(t *testing.T) {
	obs := Observation{Readings: []Reading{{"a", 0.2}, {"b", 0.9}, {"c", 0.5}}}
	r, ok := obs.Strongest()
	if !ok {
		t.Fatal("expected a strongest reading")
	}
	if r.Name != "b" {
		t.Fatalf("expected b, got %s", r.Name)
	}

	if _, ok := (Observation{}).Strongest(); ok {
		t.Fatal("empty observation should report no strongest reading")
	}
}
