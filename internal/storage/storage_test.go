package storage

import (
	"testing"

	"github.com/aanand-mishra/student-records/internal/config"
	"github.com/aanand-mishra/student-records/internal/storage/memory"
	"github.com/aanand-mishra/student-records/internal/storage/sqlite"
	"github.com/aanand-mishra/student-records/internal/student"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Storage = (*memory.Memory)(nil)
	_ Storage = (*sqlite.SQLite)(nil)
)

func backends(t *testing.T) map[string]Storage {
	t.Helper()

	mem, err := New(&config.Config{Storage: config.Storage{Driver: config.DriverMemory}})
	require.NoError(t, err)

	lite, err := New(&config.Config{Storage: config.Storage{Driver: config.DriverSQLite}})
	require.NoError(t, err)
	t.Cleanup(func() { lite.(*sqlite.SQLite).Close() })

	return map[string]Storage{"memory": mem, "sqlite": lite}
}

func TestStorage_EmptyCollection(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			records, err := store.GetRecords()
			require.NoError(t, err)
			assert.NotNil(t, records)
			assert.Empty(t, records)

			n, err := store.CountRecords()
			require.NoError(t, err)
			assert.Equal(t, 0, n)
		})
	}
}

func TestStorage_PreservesOrderAndVariants(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			pos, err := store.AddRecord(student.New("2025-001", "Juan Dela Cruz", "juan@test.com", "20"))
			require.NoError(t, err)
			assert.Equal(t, 1, pos)

			pos, err = store.AddRecord(student.NewScholar("2025-002", "Ana Reyes", "ana@uni.edu", "19", "Academic"))
			require.NoError(t, err)
			assert.Equal(t, 2, pos)

			// Same id again: no deduplication.
			pos, err = store.AddRecord(student.New("2025-001", "Juan Dela Cruz", "juan@test.com", "20"))
			require.NoError(t, err)
			assert.Equal(t, 3, pos)

			records, err := store.GetRecords()
			require.NoError(t, err)
			require.Len(t, records, 3)

			assert.Equal(t, student.KindStudent, records[0].Kind())
			assert.Equal(t, "2025-001", records[0].Base().ID())
			assert.Equal(t, 20, records[0].Base().Age())

			require.Equal(t, student.KindScholar, records[1].Kind())
			sc, ok := records[1].(*student.Scholar)
			require.True(t, ok)
			assert.Equal(t, "Academic", sc.ScholarshipType())
			assert.Equal(t, "Ana Reyes", sc.Name())
			email, _ := sc.Email()
			assert.Equal(t, "ana@uni.edu", email)

			assert.Equal(t, "2025-001", records[2].Base().ID())

			n, err := store.CountRecords()
			require.NoError(t, err)
			assert.Equal(t, 3, n)
		})
	}
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(&config.Config{Storage: config.Storage{Driver: "postgres"}})
	assert.Error(t, err)
}
