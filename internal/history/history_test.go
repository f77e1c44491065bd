package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jare20895/MSProjectXMLValidator/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)

	res := types.Result{
		Success:         false,
		ErrorCategories: []string{types.CategoryBrokenReferences},
		Errors: map[string][]string{
			types.CategoryBrokenReferences: {"Assignment <UID>21</UID> points to non-existent TaskUID: 7"},
		},
		RepairCategories: []string{types.CategoryZeroWorkTasks},
		Repairs: map[string][]string{
			types.CategoryZeroWorkTasks: {"Assigned default 8-hour duration/work to zeroed-out task: 'A' (UID 2)"},
		},
	}
	runID, err := store.Record(Run{
		InputPath:  "in.xml",
		OutputPath: "out.xml",
		RepairMode: true,
		StartedAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}, res)
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	runs, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].RunID)
	assert.Equal(t, "in.xml", runs[0].InputPath)
	assert.Equal(t, "out.xml", runs[0].OutputPath)
	assert.True(t, runs[0].RepairMode)
	assert.False(t, runs[0].Success)
	assert.Equal(t, 1, runs[0].ErrorCount)
	assert.Equal(t, 1, runs[0].RepairCount)
	assert.Equal(t, 2026, runs[0].StartedAt.Year())
}

func TestEntriesOrdered(t *testing.T) {
	store := openTestStore(t)

	res := types.Result{
		Success:         false,
		ErrorCategories: []string{types.CategoryDuplicateUIDs},
		Errors: map[string][]string{
			types.CategoryDuplicateUIDs: {"first", "second"},
		},
		RepairCategories: []string{types.CategoryTaskFields},
		Repairs: map[string][]string{
			types.CategoryTaskFields: {"third"},
		},
	}
	runID, err := store.Record(Run{InputPath: "in.xml", StartedAt: time.Now()}, res)
	require.NoError(t, err)

	entries, err := store.Entries(runID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, KindError, entries[0].Kind)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, "second", entries[1].Message)
	assert.Equal(t, KindRepair, entries[2].Kind)
	assert.Equal(t, types.CategoryTaskFields, entries[2].Category)
	assert.Equal(t, []int{0, 1, 2}, []int{entries[0].Seq, entries[1].Seq, entries[2].Seq})
}

func TestRecentOrdering(t *testing.T) {
	store := openTestStore(t)

	older := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	_, err := store.Record(Run{InputPath: "old.xml", StartedAt: older}, types.Result{Success: true})
	require.NoError(t, err)
	_, err = store.Record(Run{InputPath: "new.xml", StartedAt: newer}, types.Result{Success: true})
	require.NoError(t, err)

	runs, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "new.xml", runs[0].InputPath)
	assert.Equal(t, "old.xml", runs[1].InputPath)

	limited, err := store.Recent(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestEntriesUnknownRun(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.Entries("no-such-run")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
