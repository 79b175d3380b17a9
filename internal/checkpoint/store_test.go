package checkpoint

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testWeights() [][]float64 {
	return [][]float64{{0.1, 0.2, 0.3}, {0.4, 0.5, 0.6}}
}

func TestCreateInitialAndGetActive(t *testing.T) {
	s := tempStore(t)

	rec, err := s.CreateInitial("business-strategy", testWeights())
	if err != nil {
		t.Fatalf("CreateInitial: %v", err)
	}
	if rec.VersionID == "" {
		t.Fatal("expected non-empty version ID")
	}
	if rec.ParentID != "" {
		t.Fatalf("expected empty parent, got %s", rec.ParentID)
	}
	if rec.Rows != 2 || rec.Cols != 3 {
		t.Fatalf("unexpected shape (%d,%d)", rec.Rows, rec.Cols)
	}

	active, err := s.GetActive()
	if err != nil {
		t.Fatalf("GetActive: %v", err)
	}
	if active.VersionID != rec.VersionID {
		t.Fatalf("expected %s, got %s", rec.VersionID, active.VersionID)
	}
	for i, row := range testWeights() {
		for j, w := range row {
			if active.Weights[i][j] != w {
				t.Fatalf("weight (%d,%d) = %f, want %f", i, j, active.Weights[i][j], w)
			}
		}
	}
}

func TestCreateInitialRejectsRaggedMatrix(t *testing.T) {
	s := tempStore(t)
	if _, err := s.CreateInitial("bad", [][]float64{{1, 2}, {3}}); err == nil {
		t.Fatal("expected ragged-matrix error")
	}
	if _, err := s.CreateInitial("empty", nil); err == nil {
		t.Fatal("expected empty-matrix error")
	}
}

func TestCommitAndRollback(t *testing.T) {
	s := tempStore(t)

	v1, err := s.CreateInitial("business-strategy", testWeights())
	if err != nil {
		t.Fatalf("CreateInitial: %v", err)
	}

	w2 := testWeights()
	w2[0][0] = 0.99
	v2 := WeightRecord{
		VersionID:  uuid.New().String(),
		ParentID:   v1.VersionID,
		DomainName: "business-strategy",
		Rows:       2,
		Cols:       3,
		Weights:    w2,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Commit(v2); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	active, err := s.GetActive()
	if err != nil {
		t.Fatalf("GetActive: %v", err)
	}
	if active.VersionID != v2.VersionID {
		t.Fatalf("expected active %s, got %s", v2.VersionID, active.VersionID)
	}
	if active.Weights[0][0] != 0.99 {
		t.Fatalf("expected updated weight, got %f", active.Weights[0][0])
	}
	if active.ParentID != v1.VersionID {
		t.Fatalf("expected parent %s, got %s", v1.VersionID, active.ParentID)
	}

	if err := s.Rollback(v1.VersionID); err != nil {
		t.Fatalf("Rollback: %v", err)
	}
	active, err = s.GetActive()
	if err != nil {
		t.Fatalf("GetActive after rollback: %v", err)
	}
	if active.VersionID != v1.VersionID {
		t.Fatalf("expected active %s after rollback, got %s", v1.VersionID, active.VersionID)
	}
}

func TestRollbackUnknownVersion(t *testing.T) {
	s := tempStore(t)
	if _, err := s.CreateInitial("d", testWeights()); err != nil {
		t.Fatalf("CreateInitial: %v", err)
	}
	if err := s.Rollback("no-such-version"); err == nil {
		t.Fatal("expected error for unknown version")
	}
}

func TestCommitShapeMismatch(t *testing.T) {
	s := tempStore(t)
	rec := WeightRecord{
		VersionID: uuid.New().String(),
		Rows:      3, // lies about the shape
		Cols:      3,
		Weights:   testWeights(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Commit(rec); err == nil {
		t.Fatal("expected shape mismatch error")
	}
}

func TestListVersions(t *testing.T) {
	s := tempStore(t)

	v1, err := s.CreateInitial("d", testWeights())
	if err != nil {
		t.Fatalf("CreateInitial: %v", err)
	}
	v2 := WeightRecord{
		VersionID:  uuid.New().String(),
		ParentID:   v1.VersionID,
		DomainName: "d",
		Rows:       2,
		Cols:       3,
		Weights:    testWeights(),
		CreatedAt:  time.Now().UTC().Add(time.Second),
	}
	if err := s.Commit(v2); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	records, err := s.ListVersions(10)
	if err != nil {
		t.Fatalf("ListVersions: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 versions, got %d", len(records))
	}
	if records[0].VersionID != v2.VersionID {
		t.Fatal("expected newest version first")
	}
}

func TestGetVersionUnknown(t *testing.T) {
	s := tempStore(t)
	if _, err := s.GetVersion("missing"); err == nil {
		t.Fatal("expected error for missing version")
	}
}
