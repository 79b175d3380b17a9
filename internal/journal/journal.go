package journal

// #region imports
import (
	"database/sql"
	"fmt"
	"time"
)

// #endregion imports

// #region cycle-entry

// CycleEntry is one row in the cycle_log table, linking a weight version to
// the decision it produced.
type CycleEntry struct {
	VersionID      string
	CycleID        string
	SelectedAction string
	Dissonance     float64
	RawJSON        string
	FinalJSON      string
	Decision       string // "commit" | "reject"
	Reason         string
	CreatedAt      time.Time
}

// #endregion cycle-entry

// #region log-cycle

// LogCycle writes one cycle's provenance to the cycle_log table.
func LogCycle(db *sql.DB, entry CycleEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO cycle_log (version_id, cycle_id, selected_action, dissonance, raw_json, final_json, decision, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.VersionID,
		entry.CycleID,
		entry.SelectedAction,
		entry.Dissonance,
		nullIfEmpty(entry.RawJSON),
		nullIfEmpty(entry.FinalJSON),
		entry.Decision,
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log cycle: %w", err)
	}
	return nil
}

// #endregion log-cycle

// #region recent

// Recent returns the most recent cycle entries, newest first.
func Recent(db *sql.DB, limit int) ([]CycleEntry, error) {
	rows, err := db.Query(
		`SELECT version_id, cycle_id, selected_action, dissonance, raw_json, final_json, decision, reason, created_at
		 FROM cycle_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list cycle log: %w", err)
	}
	defer rows.Close()

	var entries []CycleEntry
	for rows.Next() {
		var e CycleEntry
		var rawJSON, finalJSON, reason sql.NullString
		var createdStr string
		if err := rows.Scan(&e.VersionID, &e.CycleID, &e.SelectedAction, &e.Dissonance,
			&rawJSON, &finalJSON, &e.Decision, &reason, &createdStr); err != nil {
			return nil, fmt.Errorf("scan cycle log: %w", err)
		}
		e.RawJSON = rawJSON.String
		e.FinalJSON = finalJSON.String
		e.Reason = reason.String
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion recent

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
