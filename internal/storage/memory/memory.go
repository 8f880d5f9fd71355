// Package memory keeps records in a slice owned by the console loop.
package memory

import "github.com/aanand-mishra/student-records/internal/student"

// Memory is a slice-backed record collection. It is not safe for concurrent
// use; the console loop is its only user.
type Memory struct {
	records []student.Record
}

// New returns an empty collection.
func New() *Memory {
	return &Memory{records: make([]student.Record, 0)}
}

// AddRecord appends rec and returns its 1-based position.
func (m *Memory) AddRecord(rec student.Record) (int, error) {
	m.records = append(m.records, rec)
	return len(m.records), nil
}

// GetRecords returns a copy so callers cannot reorder the collection.
func (m *Memory) GetRecords() ([]student.Record, error) {
	out := make([]student.Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

// CountRecords returns the number of stored records.
func (m *Memory) CountRecords() (int, error) {
	return len(m.records), nil
}
