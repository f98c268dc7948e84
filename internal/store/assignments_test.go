package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssignments(t *testing.T) *AssignmentStore {
	t.Helper()
	s, err := NewAssignmentStore(filepath.Join(t.TempDir(), "assignments.json"))
	require.NoError(t, err)
	return s
}

func TestGetDefaultsToEmpty(t *testing.T) {
	s := newTestAssignments(t)
	ids, err := s.Get("employee1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestReplaceAllIsIdempotent(t *testing.T) {
	s := newTestAssignments(t)
	mapping := map[string][]int{
		"employee1": {0, 2},
		"employee2": {},
	}

	require.NoError(t, s.ReplaceAll(mapping))
	first, err := s.All()
	require.NoError(t, err)

	require.NoError(t, s.ReplaceAll(mapping))
	second, err := s.All()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []int{0, 2}, second["employee1"])
	assert.Empty(t, second["employee2"])
}

func TestReplaceAllOverwritesCompletely(t *testing.T) {
	s := newTestAssignments(t)
	require.NoError(t, s.ReplaceAll(map[string][]int{"employee1": {0, 1, 2}}))
	require.NoError(t, s.ReplaceAll(map[string][]int{"employee2": {1}}))

	all, err := s.All()
	require.NoError(t, err)
	assert.NotContains(t, all, "employee1")
	assert.Equal(t, []int{1}, all["employee2"])
}

func TestReconcileAfterDelete(t *testing.T) {
	s := newTestAssignments(t)
	require.NoError(t, s.ReplaceAll(map[string][]int{
		"employee1": {0, 2},
		"employee2": {1},
	}))

	// Item 1 was deleted: ids above it shift down, the id itself goes.
	require.NoError(t, s.ReconcileAfterDelete(1))

	all, err := s.All()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, all["employee1"])
	assert.Empty(t, all["employee2"])
}

func TestReconcileAfterDeleteFirstItem(t *testing.T) {
	s := newTestAssignments(t)
	require.NoError(t, s.ReplaceAll(map[string][]int{"employee1": {0, 1, 2}}))

	require.NoError(t, s.ReconcileAfterDelete(0))

	ids, err := s.Get("employee1")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, ids)
}
