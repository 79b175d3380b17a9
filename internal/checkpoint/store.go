package checkpoint

// #region imports
import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #endregion imports

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS weight_versions (
	version_id   TEXT PRIMARY KEY,
	parent_id    TEXT,
	domain_name  TEXT NOT NULL,
	rows         INTEGER NOT NULL,
	cols         INTEGER NOT NULL,
	weights      BLOB NOT NULL,
	created_at   TEXT NOT NULL,
	FOREIGN KEY (parent_id) REFERENCES weight_versions(version_id)
);

CREATE TABLE IF NOT EXISTS active_weights (
	id           INTEGER PRIMARY KEY CHECK (id = 1),
	version_id   TEXT NOT NULL,
	FOREIGN KEY (version_id) REFERENCES weight_versions(version_id)
);

CREATE TABLE IF NOT EXISTS cycle_log (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	version_id      TEXT NOT NULL,
	cycle_id        TEXT NOT NULL,
	selected_action TEXT NOT NULL,
	dissonance      REAL NOT NULL,
	raw_json        TEXT,
	final_json      TEXT,
	decision        TEXT NOT NULL,
	reason          TEXT,
	created_at      TEXT NOT NULL,
	FOREIGN KEY (version_id) REFERENCES weight_versions(version_id)
);
`

// #endregion schema

// #region store-struct
// Store manages versioned weight checkpoints in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. journal).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region create-initial
// CreateInitial stores the first weight version for a domain and points the
// active row at it.
func (s *Store) CreateInitial(domainName string, weights [][]float64) (WeightRecord, error) {
	rows, cols, err := matrixShape(weights)
	if err != nil {
		return WeightRecord{}, err
	}

	rec := WeightRecord{
		VersionID:  uuid.New().String(),
		ParentID:   "",
		DomainName: domainName,
		Rows:       rows,
		Cols:       cols,
		Weights:    weights,
		CreatedAt:  time.Now().UTC(),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return WeightRecord{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO weight_versions (version_id, parent_id, domain_name, rows, cols, weights, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.VersionID, nil, domainName, rows, cols, encodeWeights(weights),
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return WeightRecord{}, fmt.Errorf("insert version: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO active_weights (id, version_id) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET version_id = excluded.version_id`,
		rec.VersionID,
	)
	if err != nil {
		return WeightRecord{}, fmt.Errorf("set active: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return WeightRecord{}, fmt.Errorf("commit: %w", err)
	}
	return rec, nil
}

// #endregion create-initial

// #region commit
// Commit inserts a new weight version and updates the active pointer
// atomically.
func (s *Store) Commit(rec WeightRecord) error {
	rows, cols, err := matrixShape(rec.Weights)
	if err != nil {
		return err
	}
	if rows != rec.Rows || cols != rec.Cols {
		return fmt.Errorf("checkpoint: record shape (%d,%d) does not match weights (%d,%d)",
			rec.Rows, rec.Cols, rows, cols)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var parentPtr interface{}
	if rec.ParentID != "" {
		parentPtr = rec.ParentID
	}

	_, err = tx.Exec(
		`INSERT INTO weight_versions (version_id, parent_id, domain_name, rows, cols, weights, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.VersionID, parentPtr, rec.DomainName, rec.Rows, rec.Cols,
		encodeWeights(rec.Weights), rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert version: %w", err)
	}

	_, err = tx.Exec(`UPDATE active_weights SET version_id = ? WHERE id = 1`, rec.VersionID)
	if err != nil {
		return fmt.Errorf("update active: %w", err)
	}

	return tx.Commit()
}

// #endregion commit

// #region get-active
// GetActive reads the active weight version.
func (s *Store) GetActive() (WeightRecord, error) {
	var versionID string
	err := s.db.QueryRow(`SELECT version_id FROM active_weights WHERE id = 1`).Scan(&versionID)
	if err != nil {
		return WeightRecord{}, fmt.Errorf("get active: %w", err)
	}
	return s.GetVersion(versionID)
}

// #endregion get-active

// #region get-version
// GetVersion retrieves a specific weight version by ID.
func (s *Store) GetVersion(id string) (WeightRecord, error) {
	var rec WeightRecord
	var parentID sql.NullString
	var blob []byte
	var createdStr string

	err := s.db.QueryRow(
		`SELECT version_id, parent_id, domain_name, rows, cols, weights, created_at
		 FROM weight_versions WHERE version_id = ?`, id,
	).Scan(&rec.VersionID, &parentID, &rec.DomainName, &rec.Rows, &rec.Cols, &blob, &createdStr)
	if err != nil {
		return WeightRecord{}, fmt.Errorf("get version %s: %w", id, err)
	}

	if parentID.Valid {
		rec.ParentID = parentID.String
	}
	rec.Weights, err = decodeWeights(blob, rec.Rows, rec.Cols)
	if err != nil {
		return WeightRecord{}, fmt.Errorf("get version %s: %w", id, err)
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return rec, nil
}

// #endregion get-version

// #region rollback
// Rollback sets the active pointer to a previous version.
func (s *Store) Rollback(targetVersionID string) error {
	var exists int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM weight_versions WHERE version_id = ?`, targetVersionID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check version: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("version %s not found", targetVersionID)
	}

	_, err = s.db.Exec(`UPDATE active_weights SET version_id = ? WHERE id = 1`, targetVersionID)
	if err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}

// #endregion rollback

// #region list-versions
// ListVersions returns the most recent weight versions, newest first.
func (s *Store) ListVersions(limit int) ([]WeightRecord, error) {
	rows, err := s.db.Query(
		`SELECT version_id, parent_id, domain_name, rows, cols, weights, created_at
		 FROM weight_versions ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var records []WeightRecord
	for rows.Next() {
		var rec WeightRecord
		var parentID sql.NullString
		var blob []byte
		var createdStr string

		if err := rows.Scan(&rec.VersionID, &parentID, &rec.DomainName, &rec.Rows, &rec.Cols, &blob, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if parentID.Valid {
			rec.ParentID = parentID.String
		}
		rec.Weights, err = decodeWeights(blob, rec.Rows, rec.Cols)
		if err != nil {
			return nil, fmt.Errorf("decode version %s: %w", rec.VersionID, err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion list-versions

// #region weight-encoding
func matrixShape(w [][]float64) (rows, cols int, err error) {
	rows = len(w)
	if rows == 0 {
		return 0, 0, fmt.Errorf("checkpoint: empty weight matrix")
	}
	cols = len(w[0])
	for i, row := range w {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("checkpoint: ragged weight matrix at row %d", i)
		}
	}
	return rows, cols, nil
}

func encodeWeights(w [][]float64) []byte {
	rows := len(w)
	cols := 0
	if rows > 0 {
		cols = len(w[0])
	}
	buf := make([]byte, rows*cols*8)
	i := 0
	for _, row := range w {
		for _, f := range row {
			binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
			i++
		}
	}
	return buf
}

func decodeWeights(b []byte, rows, cols int) ([][]float64, error) {
	if len(b) != rows*cols*8 {
		return nil, fmt.Errorf("weight blob is %d bytes, want %d for (%d,%d)", len(b), rows*cols*8, rows, cols)
	}
	w := make([][]float64, rows)
	i := 0
	for r := range w {
		row := make([]float64, cols)
		for c := range row {
			row[c] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
			i++
		}
		w[r] = row
	}
	return w, nil
}

// #endregion weight-encoding
