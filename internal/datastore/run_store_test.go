package datastore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/kademeqms/altscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunStore(t *testing.T) *RunStoreImpl {
	t.Helper()
	store, err := NewRunStore(schema.SQLiteBackend, filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRunStore_NoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	runID, err := store.BeginRun(1, time.Now(), map[string]any{"test": "value"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	assert.NoError(t, store.EndRun(1, time.Now(), 10))
	assert.NoError(t, store.RecordResult(1, schema.EvaluationResultRecord{AlternativeID: 1}))

	runs, err := store.ListRuns()
	assert.NoError(t, err)
	assert.Empty(t, runs)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.Equal(t, string(schema.NoneBackend), status.Backend)

	assert.NoError(t, store.Close())
}

func TestRunStore_Lifecycle(t *testing.T) {
	store := newTestRunStore(t)

	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	runID, err := store.BeginRun(42, start, map[string]any{"weight_policy": "reject", "result_limit": 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), runID)

	runs, err := store.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Nil(t, runs[0].EndTime)
	assert.Nil(t, runs[0].RunDurationMs)

	for i, name := range []string{"Acme", "Globex"} {
		err := store.RecordResult(runID, schema.EvaluationResultRecord{
			AlternativeID:    int64(i + 1),
			AlternativeName:  name,
			EvaluatedAt:      start,
			Rank:             int32(i + 1),
			Total:            80 - float64(i*10),
			Average:          80 - float64(i*10),
			MaxWeight:        100,
			IsAutoCalculated: false,
			ScoreLabel:       "High",
		})
		require.NoError(t, err)
	}
	require.NoError(t, store.EndRun(runID, start.Add(1500*time.Millisecond), 2))

	runs, err = store.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	run := runs[0]
	assert.Equal(t, int64(42), run.BenchmarkID)
	assert.True(t, start.Equal(run.StartTime))
	require.NotNil(t, run.EndTime)
	require.NotNil(t, run.RunDurationMs)
	assert.Equal(t, int32(1500), *run.RunDurationMs)
	assert.Equal(t, int32(2), run.TotalAlternatives)
	require.NotNil(t, run.ConfigParams)
	assert.JSONEq(t, `{"weight_policy":"reject","result_limit":10}`, *run.ConfigParams)

	results, err := store.ListResults()
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Acme", results[0].AlternativeName)
	assert.Equal(t, int32(1), results[0].Rank)
	assert.Equal(t, 70.0, results[1].Total)
	assert.Equal(t, "High", results[1].ScoreLabel)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalRuns)
	assert.Equal(t, runID, status.LastRunID)
	assert.Equal(t, 2, status.TotalResults)
	assert.True(t, start.Equal(status.OldestRunTime))
	assert.Equal(t, int64(2), status.TableSizes[resultsTable])
}

func TestRunStore_EndRunUnknown(t *testing.T) {
	store := newTestRunStore(t)
	err := store.EndRun(99, time.Now(), 0)
	assert.Error(t, err)
}

func TestRunStore_DuplicateResult(t *testing.T) {
	store := newTestRunStore(t)
	runID, err := store.BeginRun(1, time.Now(), nil)
	require.NoError(t, err)

	record := schema.EvaluationResultRecord{AlternativeID: 5, AlternativeName: "x", EvaluatedAt: time.Now(), Rank: 1, ScoreLabel: "Low"}
	require.NoError(t, store.RecordResult(runID, record))
	assert.Error(t, store.RecordResult(runID, record))
}
