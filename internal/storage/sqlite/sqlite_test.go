package sqlite

import (
	"testing"

	"github.com/aanand-mishra/student-records/internal/student"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EachDatabaseStartsEmpty(t *testing.T) {
	first, err := New()
	require.NoError(t, err)
	defer first.Close()

	pos, err := first.AddRecord(student.New("2025-001", "Juan", "juan@test.com", "20"))
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	second, err := New()
	require.NoError(t, err)
	defer second.Close()

	n, err := second.CountRecords()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestGetRecords_RebuildsWithoutIssues(t *testing.T) {
	db, err := New()
	require.NoError(t, err)
	defer db.Close()

	_, err = db.AddRecord(student.NewScholar("2025-002", "Ana Reyes", "ana@uni.edu", "19", "Academic"))
	require.NoError(t, err)

	records, err := db.GetRecords()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Base().Issues())
	assert.True(t, records[0].Base().Valid())
}
