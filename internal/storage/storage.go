// Package storage defines the Storage interface: the ordered, append-only
// collection of admitted records.
//
// The console depends only on this interface. Two backends satisfy it:
//
//   - storage/memory: a plain slice (the default)
//   - storage/sqlite: an in-memory SQLite database
//
// Both live exactly as long as the process. Neither writes to disk.
package storage

import (
	"fmt"

	"github.com/aanand-mishra/student-records/internal/config"
	"github.com/aanand-mishra/student-records/internal/storage/memory"
	"github.com/aanand-mishra/student-records/internal/storage/sqlite"
	"github.com/aanand-mishra/student-records/internal/student"
)

// Storage is the record collection contract.
// There is no lookup by id and no deduplication: the same student id may be
// added any number of times.
type Storage interface {
	// AddRecord appends rec and returns its 1-based position.
	AddRecord(rec student.Record) (int, error)

	// GetRecords returns every record in insertion order.
	// Returns an empty slice (not nil) when the collection is empty.
	GetRecords() ([]student.Record, error)

	// CountRecords returns the number of stored records.
	CountRecords() (int, error)
}

// New returns the backend selected by cfg.Storage.Driver.
func New(cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverSQLite:
		db, err := sqlite.New()
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("storage.New: unknown driver %q", cfg.Storage.Driver)
	}
}
