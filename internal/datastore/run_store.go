package datastore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/schema"
)

// RunStoreImpl implements the RunStore interface.
type RunStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.RunStore = &RunStoreImpl{} // Compile-time check

// NewRunStore creates a new RunStore with the specified backend.
// NoneBackend yields a store that records nothing.
func NewRunStore(backend schema.DatabaseBackend, connStr string) (*RunStoreImpl, error) {
	if backend == schema.NoneBackend {
		return &RunStoreImpl{backend: backend}, nil
	}
	db, err := openDB(backend, connStr, GetRunsDBFilePath())
	if err != nil {
		return nil, err
	}
	if err := migrateUp(db, backend, RunsScope); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &RunStoreImpl{db: db, backend: backend}, nil
}

func (rs *RunStoreImpl) disabled() bool {
	return rs.backend == schema.NoneBackend || rs.db == nil
}

func (rs *RunStoreImpl) table(name string) string {
	return quoteTableName(name, rs.backend)
}

// BeginRun creates a new evaluation run and returns its unique ID.
// A zero ID means tracking is disabled.
func (rs *RunStoreImpl) BeginRun(benchmarkID int64, startTime time.Time, configParams map[string]any) (int64, error) {
	if rs.disabled() {
		return 0, nil
	}

	configJSON, err := json.Marshal(configParams)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal config params: %w", err)
	}

	var runID int64
	switch rs.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (benchmark_id, start_time, config_params) VALUES ($1, $2, $3) RETURNING run_id`, rs.table(runsTable))
		err = rs.db.QueryRow(query, benchmarkID, formatTime(startTime, rs.backend), string(configJSON)).Scan(&runID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (benchmark_id, start_time, config_params) VALUES (?, ?, ?)`, rs.table(runsTable))
		var result sql.Result
		result, err = rs.db.Exec(query, benchmarkID, formatTime(startTime, rs.backend), string(configJSON))
		if err == nil {
			runID, err = result.LastInsertId()
		}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert evaluation run: %w", err)
	}
	return runID, nil
}

// EndRun updates the evaluation run with completion data.
func (rs *RunStoreImpl) EndRun(runID int64, endTime time.Time, totalAlternatives int) error {
	if rs.disabled() {
		return nil
	}

	var start timeScanner
	query := fmt.Sprintf(`SELECT start_time FROM %s WHERE run_id = ?`, rs.table(runsTable))
	if err := rs.db.QueryRow(rebind(query, rs.backend), runID).Scan(&start); err != nil {
		return fmt.Errorf("failed to get start_time for run %d: %w", runID, err)
	}
	durationMs := endTime.Sub(start.Time).Milliseconds()

	update := fmt.Sprintf(`UPDATE %s SET end_time = ?, run_duration_ms = ?, total_alternatives = ? WHERE run_id = ?`, rs.table(runsTable))
	if _, err := rs.db.Exec(rebind(update, rs.backend), formatTime(endTime, rs.backend), durationMs, totalAlternatives, runID); err != nil {
		return fmt.Errorf("failed to update evaluation run: %w", err)
	}
	return nil
}

// RecordResult stores one ranked composite of a run.
func (rs *RunStoreImpl) RecordResult(runID int64, r schema.EvaluationResultRecord) error {
	if rs.disabled() {
		return nil
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (run_id, alternative_id, alternative_name, evaluated_at, rank_position,
		                total_score, average_score, max_weight, is_auto_calculated, score_label)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rs.table(resultsTable))
	_, err := rs.db.Exec(rebind(query, rs.backend),
		runID, r.AlternativeID, r.AlternativeName, formatTime(r.EvaluatedAt, rs.backend), r.Rank,
		r.Total, r.Average, r.MaxWeight, r.IsAutoCalculated, r.ScoreLabel)
	if err != nil {
		return fmt.Errorf("failed to insert evaluation result: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (rs *RunStoreImpl) Close() error {
	if rs.db != nil {
		return rs.db.Close()
	}
	return nil
}

// GetStatus returns status information about the run store.
func (rs *RunStoreImpl) GetStatus() (schema.RunsStatus, error) {
	status := schema.RunsStatus{
		Backend:    string(rs.backend),
		Connected:  rs.db != nil,
		TableSizes: make(map[string]int64),
	}
	if rs.disabled() {
		return status, nil
	}

	if err := rs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", rs.table(runsTable))).Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}

	if status.TotalRuns > 0 {
		var last, oldest timeScanner
		lastQuery := fmt.Sprintf("SELECT run_id, start_time FROM %s ORDER BY run_id DESC LIMIT 1", rs.table(runsTable))
		if err := rs.db.QueryRow(lastQuery).Scan(&status.LastRunID, &last); err != nil {
			return status, fmt.Errorf("failed to get last run info: %w", err)
		}
		status.LastRunTime = last.Time

		oldestQuery := fmt.Sprintf("SELECT start_time FROM %s ORDER BY run_id ASC LIMIT 1", rs.table(runsTable))
		if err := rs.db.QueryRow(oldestQuery).Scan(&oldest); err != nil {
			return status, fmt.Errorf("failed to get oldest run time: %w", err)
		}
		status.OldestRunTime = oldest.Time
	}

	for _, table := range runTables {
		var count int64
		if err := rs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", rs.table(table))).Scan(&count); err != nil {
			return status, fmt.Errorf("failed to get count for table %s: %w", table, err)
		}
		status.TableSizes[table] = count
	}
	status.TotalResults = int(status.TableSizes[resultsTable])
	return status, nil
}

// ListRuns retrieves all evaluation runs from the store.
func (rs *RunStoreImpl) ListRuns() ([]schema.EvaluationRunRecord, error) {
	if rs.disabled() {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT run_id, benchmark_id, start_time, end_time, run_duration_ms, total_alternatives, config_params
		FROM %s ORDER BY run_id`, rs.table(runsTable))
	rows, err := rs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluation runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.EvaluationRunRecord
	for rows.Next() {
		var record schema.EvaluationRunRecord
		var start, end timeScanner
		if err := rows.Scan(&record.RunID, &record.BenchmarkID, &start, &end, &record.RunDurationMs, &record.TotalAlternatives, &record.ConfigParams); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation run: %w", err)
		}
		record.StartTime = start.Time
		if end.Valid {
			endTime := end.Time
			record.EndTime = &endTime
		}
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating evaluation runs: %w", err)
	}
	return results, nil
}

// ListResults retrieves all evaluation results from the store.
func (rs *RunStoreImpl) ListResults() ([]schema.EvaluationResultRecord, error) {
	if rs.disabled() {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT run_id, alternative_id, alternative_name, evaluated_at, rank_position,
		total_score, average_score, max_weight, is_auto_calculated, score_label
		FROM %s ORDER BY run_id, rank_position`, rs.table(resultsTable))
	rows, err := rs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluation results: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.EvaluationResultRecord
	for rows.Next() {
		var record schema.EvaluationResultRecord
		var evaluated timeScanner
		if err := rows.Scan(&record.RunID, &record.AlternativeID, &record.AlternativeName, &evaluated, &record.Rank,
			&record.Total, &record.Average, &record.MaxWeight, &record.IsAutoCalculated, &record.ScoreLabel); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation result: %w", err)
		}
		record.EvaluatedAt = evaluated.Time
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating evaluation results: %w", err)
	}
	return results, nil
}
