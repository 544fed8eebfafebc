package storage

import (
	"time"

	"github.com/revelaction/annodiff/compare"
)

// Run is one persisted comparison of two annotation files.
type Run struct {
	Id        int       `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	NameA     string    `json:"nameA"`
	NameB     string    `json:"nameB"`
	Truncated int       `json:"truncated,omitempty"`

	// NumRecords survives listing, where Records is not loaded.
	NumRecords int `json:"numRecords"`

	Records []compare.Record `json:"records,omitempty"`
}

// NewRun wraps a comparison result for persistence. The id is assigned
// by the repository on write.
func NewRun(res *compare.Result) Run {
	return Run{
		CreatedAt:  time.Now().UTC(),
		NameA:      res.NameA,
		NameB:      res.NameB,
		Truncated:  res.Truncated,
		NumRecords: len(res.Records),
		Records:    res.Records,
	}
}

// Result restores the comparison result of a fully loaded run.
func (r Run) Result() *compare.Result {
	return &compare.Result{
		NameA:     r.NameA,
		NameB:     r.NameB,
		Truncated: r.Truncated,
		Records:   r.Records,
	}
}

// RunReader defines read operations for run storage
type RunReader interface {
	// List returns all runs in id order, metadata only: Records is not
	// loaded.
	List() ([]Run, error)

	// Read returns a single run by id, records included.
	Read(id int) (Run, error)
}

// RunWriter defines write operations for run storage
type RunWriter interface {
	// Write persists a run and returns its assigned id.
	Write(run Run) (int, error)
}

// RunRepository combines read and write operations
type RunRepository interface {
	RunReader
	RunWriter

	Close() error
}
