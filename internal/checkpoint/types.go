package checkpoint

import "time"

// #region weight-record
// WeightRecord is a versioned snapshot of a decision engine's weight matrix.
// The core keeps weights in memory only; this record is the host's defined
// serialization of them.
type WeightRecord struct {
	VersionID  string
	ParentID   string
	DomainName string
	Rows       int
	Cols       int
	Weights    [][]float64
	CreatedAt  time.Time
}

// #endregion weight-record
