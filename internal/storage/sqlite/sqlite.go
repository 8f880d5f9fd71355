// Package sqlite provides a SQLite-backed record collection using Go's
// standard database/sql package.
//
// WHY AN IN-MEMORY DATABASE?
// ──────────────────────────
// Records live only for the lifetime of the process. The ":memory:" DSN
// gives us a real SQL table (ordered by an AUTOINCREMENT key) without ever
// touching disk. Every connection to ":memory:" opens a fresh, empty
// database, so the pool is pinned to a single connection.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/aanand-mishra/student-records/internal/student"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// DSN is the data source name for a private in-memory database.
const DSN = ":memory:"

// SQLite holds a *sql.DB limited to one open connection.
type SQLite struct {
	Db *sql.DB
}

// New opens the in-memory database and creates the records table.
//
// Schema:
//
//	seq         — insertion order, assigned by SQLite
//	kind        — "student" or "scholar"
//	student_id  — the opaque id typed by the user (not unique)
//	name, email, age
//	scholarship — NULL for plain students
func New() (*SQLite, error) {
	db, err := sql.Open("sqlite3", DSN)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// One connection, never recycled: closing it would drop the database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			seq         INTEGER PRIMARY KEY AUTOINCREMENT,
			kind        TEXT    NOT NULL,
			student_id  TEXT    NOT NULL,
			name        TEXT    NOT NULL,
			email       TEXT    NOT NULL,
			age         INTEGER NOT NULL,
			scholarship TEXT
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Close releases the connection and with it the database.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// AddRecord inserts rec with a prepared statement and returns its position.
func (s *SQLite) AddRecord(rec student.Record) (int, error) {
	base := rec.Base()
	email, _ := base.Email()

	var scholarship sql.NullString
	if sc, ok := rec.(*student.Scholar); ok {
		scholarship = sql.NullString{String: sc.ScholarshipType(), Valid: true}
	}

	stmt, err := s.Db.Prepare(
		"INSERT INTO records (kind, student_id, name, email, age, scholarship) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("AddRecord: prepare: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(string(rec.Kind()), base.ID(), base.Name(), email, base.Age(), scholarship)
	if err != nil {
		return 0, fmt.Errorf("AddRecord: exec: %w", err)
	}

	// Rows are never deleted, so the count is the new record's position.
	return s.CountRecords()
}

// GetRecords rebuilds every row through the student constructors, in
// insertion order. Stored values already passed validation, so the rebuilt
// records carry no Issues.
func (s *SQLite) GetRecords() ([]student.Record, error) {
	stmt, err := s.Db.Prepare(
		"SELECT kind, student_id, name, email, age, scholarship FROM records ORDER BY seq",
	)
	if err != nil {
		return nil, fmt.Errorf("GetRecords: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetRecords: query: %w", err)
	}
	defer rows.Close()

	records := make([]student.Record, 0)

	for rows.Next() {
		var (
			kind, id, name, email string
			age                   int
			scholarship           sql.NullString
		)
		if err := rows.Scan(&kind, &id, &name, &email, &age, &scholarship); err != nil {
			return nil, fmt.Errorf("GetRecords: scan row: %w", err)
		}

		switch student.Kind(kind) {
		case student.KindScholar:
			records = append(records,
				student.NewScholar(id, name, email, strconv.Itoa(age), scholarship.String))
		default:
			records = append(records, student.New(id, name, email, strconv.Itoa(age)))
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetRecords: rows iteration: %w", err)
	}

	return records, nil
}

// CountRecords returns the number of stored rows.
func (s *SQLite) CountRecords() (int, error) {
	var n int
	if err := s.Db.QueryRow("SELECT COUNT(*) FROM records").Scan(&n); err != nil {
		return 0, fmt.Errorf("CountRecords: scan: %w", err)
	}
	return n, nil
}
