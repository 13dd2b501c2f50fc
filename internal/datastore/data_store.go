package datastore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/schema"
)

// DataStoreImpl implements the DataStore interface on a SQL database.
type DataStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	now     func() time.Time
}

var _ contract.DataStore = &DataStoreImpl{} // Compile-time check

// alternativeColumns lists the alternative columns after id, in scan order.
var alternativeColumns = func() []string {
	cols := []string{"benchmark_id", "name", "code", "description", "currency", "support_availability", "rank_order"}
	for _, f := range (&schema.Alternative{}).AttributeFields() {
		cols = append(cols, string(f.Key))
	}
	return append(cols, string(schema.RiskLevel))
}()

// NewDataStore opens the data store for the backend and migrates its schema.
func NewDataStore(backend schema.DatabaseBackend, connStr string) (*DataStoreImpl, error) {
	if backend == schema.NoneBackend {
		return nil, fmt.Errorf("data backend cannot be %s", backend)
	}
	db, err := openDB(backend, connStr, GetDataDBFilePath())
	if err != nil {
		return nil, err
	}
	if err := migrateUp(db, backend, DataScope); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &DataStoreImpl{db: db, backend: backend, now: time.Now}, nil
}

// table returns the quoted name of a table.
func (ds *DataStoreImpl) table(name string) string {
	return quoteTableName(name, ds.backend)
}

// insert runs an INSERT and returns the generated id.
func (ds *DataStoreImpl) insert(ctx context.Context, q querier, query string, args ...any) (int64, error) {
	if ds.backend == schema.PostgreSQLBackend {
		var id int64
		err := q.QueryRowContext(ctx, rebind(query+" RETURNING id", ds.backend), args...).Scan(&id)
		return id, err
	}
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// inTx runs fn in a transaction, rolling back on error.
func (ds *DataStoreImpl) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := ds.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// deleteRows deletes matching rows and reports whether any existed.
func (ds *DataStoreImpl) deleteRows(ctx context.Context, q querier, table, column string, id int64) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", ds.table(table), column)
	result, err := q.ExecContext(ctx, rebind(query, ds.backend), id)
	if err != nil {
		return false, fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// --- Benchmarks ---

// CreateBenchmark stores a new benchmark.
func (ds *DataStoreImpl) CreateBenchmark(ctx context.Context, b schema.Benchmark) (schema.Benchmark, error) {
	b.Title = strings.TrimSpace(b.Title)
	if b.Title == "" {
		return schema.Benchmark{}, errors.New("benchmark title is required")
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = ds.now()
	}
	query := fmt.Sprintf("INSERT INTO %s (title, category, status, created_at) VALUES (?, ?, ?, ?)", ds.table(benchmarksTable))
	id, err := ds.insert(ctx, ds.db, query, b.Title, nullString(b.Category), nullString(b.Status), formatTime(b.CreatedAt, ds.backend))
	if err != nil {
		return schema.Benchmark{}, fmt.Errorf("failed to insert benchmark: %w", err)
	}
	b.ID = id
	return b, nil
}

func (ds *DataStoreImpl) benchmarkQuery(where string) string {
	return fmt.Sprintf("SELECT id, title, category, status, created_at FROM %s %s", ds.table(benchmarksTable), where)
}

func scanBenchmark(row interface{ Scan(...any) error }) (schema.Benchmark, error) {
	var b schema.Benchmark
	var category, status sql.NullString
	var created timeScanner
	if err := row.Scan(&b.ID, &b.Title, &category, &status, &created); err != nil {
		return schema.Benchmark{}, err
	}
	b.Category, b.Status, b.CreatedAt = category.String, status.String, created.Time
	return b, nil
}

// GetBenchmark returns one benchmark or ErrBenchmarkNotFound.
func (ds *DataStoreImpl) GetBenchmark(ctx context.Context, id int64) (schema.Benchmark, error) {
	row := ds.db.QueryRowContext(ctx, rebind(ds.benchmarkQuery("WHERE id = ?"), ds.backend), id)
	b, err := scanBenchmark(row)
	if errors.Is(err, sql.ErrNoRows) {
		return schema.Benchmark{}, fmt.Errorf("%w: %d", contract.ErrBenchmarkNotFound, id)
	}
	if err != nil {
		return schema.Benchmark{}, fmt.Errorf("failed to get benchmark %d: %w", id, err)
	}
	return b, nil
}

// ListBenchmarks returns all benchmarks by id.
func (ds *DataStoreImpl) ListBenchmarks(ctx context.Context) ([]schema.Benchmark, error) {
	rows, err := ds.db.QueryContext(ctx, ds.benchmarkQuery("ORDER BY id"))
	if err != nil {
		return nil, fmt.Errorf("failed to query benchmarks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.Benchmark
	for rows.Next() {
		b, err := scanBenchmark(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan benchmark: %w", err)
		}
		results = append(results, b)
	}
	return results, rows.Err()
}

// DeleteBenchmark removes a benchmark with everything it owns.
func (ds *DataStoreImpl) DeleteBenchmark(ctx context.Context, id int64) error {
	return ds.inTx(ctx, func(tx *sql.Tx) error {
		alts := fmt.Sprintf("SELECT id FROM %s WHERE benchmark_id = ?", ds.table(alternativesTable))
		for _, table := range []string{prosConsTable, scoresTable} {
			query := fmt.Sprintf("DELETE FROM %s WHERE alternative_id IN (%s)", ds.table(table), alts)
			if _, err := tx.ExecContext(ctx, rebind(query, ds.backend), id); err != nil {
				return fmt.Errorf("failed to delete from %s: %w", table, err)
			}
		}
		for _, table := range []string{criteriaTable, alternativesTable} {
			if _, err := ds.deleteRows(ctx, tx, table, "benchmark_id", id); err != nil {
				return err
			}
		}
		found, err := ds.deleteRows(ctx, tx, benchmarksTable, "id", id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %d", contract.ErrBenchmarkNotFound, id)
		}
		return nil
	})
}

// --- Alternatives ---

// AddAlternative stores a new alternative under an existing benchmark.
func (ds *DataStoreImpl) AddAlternative(ctx context.Context, alt schema.Alternative) (schema.Alternative, error) {
	alt.Name = strings.TrimSpace(alt.Name)
	if alt.Name == "" {
		return schema.Alternative{}, errors.New("alternative name is required")
	}
	if _, err := ds.GetBenchmark(ctx, alt.BenchmarkID); err != nil {
		return schema.Alternative{}, err
	}
	if alt.RiskLevel != nil && strings.TrimSpace(*alt.RiskLevel) == "" {
		alt.RiskLevel = nil
	}

	args := []any{alt.BenchmarkID, alt.Name, nullString(alt.Code), nullString(alt.Description),
		nullString(alt.Currency), nullString(alt.SupportAvailability), alt.RankOrder}
	for _, f := range alt.AttributeFields() {
		if v := *f.Value; v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return schema.Alternative{}, fmt.Errorf("attribute %s must be a finite number", f.Key)
		}
		args = append(args, *f.Value)
	}
	args = append(args, alt.RiskLevel)

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(alternativeColumns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		ds.table(alternativesTable), strings.Join(alternativeColumns, ", "), placeholders)
	id, err := ds.insert(ctx, ds.db, query, args...)
	if err != nil {
		return schema.Alternative{}, fmt.Errorf("failed to insert alternative: %w", err)
	}
	alt.ID = id
	return alt, nil
}

func (ds *DataStoreImpl) alternativeQuery(where string) string {
	return fmt.Sprintf("SELECT id, %s FROM %s %s", strings.Join(alternativeColumns, ", "), ds.table(alternativesTable), where)
}

func scanAlternative(row interface{ Scan(...any) error }) (schema.Alternative, error) {
	var a schema.Alternative
	var code, description, currency, support, risk sql.NullString
	dest := []any{&a.ID, &a.BenchmarkID, &a.Name, &code, &description, &currency, &support, &a.RankOrder}
	for _, f := range a.AttributeFields() {
		dest = append(dest, f.Value)
	}
	dest = append(dest, &risk)
	if err := row.Scan(dest...); err != nil {
		return schema.Alternative{}, err
	}
	a.Code, a.Description, a.Currency, a.SupportAvailability = code.String, description.String, currency.String, support.String
	if risk.Valid {
		a.RiskLevel = &risk.String
	}
	return a, nil
}

// GetAlternative returns one alternative or ErrAlternativeNotFound.
func (ds *DataStoreImpl) GetAlternative(ctx context.Context, id int64) (schema.Alternative, error) {
	row := ds.db.QueryRowContext(ctx, rebind(ds.alternativeQuery("WHERE id = ?"), ds.backend), id)
	a, err := scanAlternative(row)
	if errors.Is(err, sql.ErrNoRows) {
		return schema.Alternative{}, fmt.Errorf("%w: %d", contract.ErrAlternativeNotFound, id)
	}
	if err != nil {
		return schema.Alternative{}, fmt.Errorf("failed to get alternative %d: %w", id, err)
	}
	return a, nil
}

// ListAlternatives returns the alternatives of a benchmark by rank_order, then id.
func (ds *DataStoreImpl) ListAlternatives(ctx context.Context, benchmarkID int64) ([]schema.Alternative, error) {
	query := rebind(ds.alternativeQuery("WHERE benchmark_id = ? ORDER BY rank_order, id"), ds.backend)
	rows, err := ds.db.QueryContext(ctx, query, benchmarkID)
	if err != nil {
		return nil, fmt.Errorf("failed to query alternatives: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.Alternative
	for rows.Next() {
		a, err := scanAlternative(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alternative: %w", err)
		}
		results = append(results, a)
	}
	return results, rows.Err()
}

// DeleteAlternative removes an alternative with its scores and pros/cons.
func (ds *DataStoreImpl) DeleteAlternative(ctx context.Context, id int64) error {
	return ds.inTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{prosConsTable, scoresTable} {
			if _, err := ds.deleteRows(ctx, tx, table, "alternative_id", id); err != nil {
				return err
			}
		}
		found, err := ds.deleteRows(ctx, tx, alternativesTable, "id", id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %d", contract.ErrAlternativeNotFound, id)
		}
		return nil
	})
}

// --- Criteria ---

// AddCriterion stores a new criterion under an existing benchmark.
func (ds *DataStoreImpl) AddCriterion(ctx context.Context, c schema.Criterion) (schema.Criterion, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return schema.Criterion{}, errors.New("criterion name is required")
	}
	if c.Weight < 0 || math.IsNaN(c.Weight) || math.IsInf(c.Weight, 0) {
		return schema.Criterion{}, fmt.Errorf("criterion weight must be a non-negative number, got %v", c.Weight)
	}
	if _, err := ds.GetBenchmark(ctx, c.BenchmarkID); err != nil {
		return schema.Criterion{}, err
	}
	query := fmt.Sprintf("INSERT INTO %s (benchmark_id, name, weight, category, unit, order_index) VALUES (?, ?, ?, ?, ?, ?)", ds.table(criteriaTable))
	id, err := ds.insert(ctx, ds.db, query, c.BenchmarkID, c.Name, c.Weight, nullString(c.Category), nullString(c.Unit), c.OrderIndex)
	if err != nil {
		return schema.Criterion{}, fmt.Errorf("failed to insert criterion: %w", err)
	}
	c.ID = id
	return c, nil
}

func (ds *DataStoreImpl) criterionQuery(where string) string {
	return fmt.Sprintf("SELECT id, benchmark_id, name, weight, category, unit, order_index FROM %s %s", ds.table(criteriaTable), where)
}

func scanCriterion(row interface{ Scan(...any) error }) (schema.Criterion, error) {
	var c schema.Criterion
	var category, unit sql.NullString
	if err := row.Scan(&c.ID, &c.BenchmarkID, &c.Name, &c.Weight, &category, &unit, &c.OrderIndex); err != nil {
		return schema.Criterion{}, err
	}
	c.Category, c.Unit = category.String, unit.String
	return c, nil
}

// GetCriterion returns one criterion or ErrCriterionNotFound.
func (ds *DataStoreImpl) GetCriterion(ctx context.Context, id int64) (schema.Criterion, error) {
	row := ds.db.QueryRowContext(ctx, rebind(ds.criterionQuery("WHERE id = ?"), ds.backend), id)
	c, err := scanCriterion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return schema.Criterion{}, fmt.Errorf("%w: %d", contract.ErrCriterionNotFound, id)
	}
	if err != nil {
		return schema.Criterion{}, fmt.Errorf("failed to get criterion %d: %w", id, err)
	}
	return c, nil
}

// ListCriteria returns the criteria of a benchmark by order_index, then id.
func (ds *DataStoreImpl) ListCriteria(ctx context.Context, benchmarkID int64) ([]schema.Criterion, error) {
	query := rebind(ds.criterionQuery("WHERE benchmark_id = ? ORDER BY order_index, id"), ds.backend)
	rows, err := ds.db.QueryContext(ctx, query, benchmarkID)
	if err != nil {
		return nil, fmt.Errorf("failed to query criteria: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.Criterion
	for rows.Next() {
		c, err := scanCriterion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan criterion: %w", err)
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

// DeleteCriterion removes a criterion with its scores.
func (ds *DataStoreImpl) DeleteCriterion(ctx context.Context, id int64) error {
	return ds.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := ds.deleteRows(ctx, tx, scoresTable, "criterion_id", id); err != nil {
			return err
		}
		found, err := ds.deleteRows(ctx, tx, criteriaTable, "id", id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %d", contract.ErrCriterionNotFound, id)
		}
		return nil
	})
}

// --- Scores ---

// upsertScoreQuery returns the dialect's insert-or-update statement for a score.
func (ds *DataStoreImpl) upsertScoreQuery() string {
	insert := fmt.Sprintf("INSERT INTO %s (alternative_id, criterion_id, raw_value, normalized_score, weighted_score, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		ds.table(scoresTable))
	if ds.backend == schema.MySQLBackend {
		return insert + " ON DUPLICATE KEY UPDATE raw_value = VALUES(raw_value), normalized_score = VALUES(normalized_score)," +
			" weighted_score = VALUES(weighted_score), updated_at = VALUES(updated_at)"
	}
	return insert + " ON CONFLICT (alternative_id, criterion_id) DO UPDATE SET raw_value = excluded.raw_value," +
		" normalized_score = excluded.normalized_score, weighted_score = excluded.weighted_score, updated_at = excluded.updated_at"
}

// UpsertScore writes the single score of an (alternative, criterion) pair.
func (ds *DataStoreImpl) UpsertScore(ctx context.Context, s schema.Score) (schema.Score, error) {
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = ds.now()
	}
	err := ds.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, rebind(ds.upsertScoreQuery(), ds.backend),
			s.AlternativeID, s.CriterionID, s.RawValue, s.NormalizedScore, s.WeightedScore, formatTime(s.UpdatedAt, ds.backend))
		if err != nil {
			return fmt.Errorf("failed to upsert score: %w", err)
		}
		query := fmt.Sprintf("SELECT id FROM %s WHERE alternative_id = ? AND criterion_id = ?", ds.table(scoresTable))
		if err := tx.QueryRowContext(ctx, rebind(query, ds.backend), s.AlternativeID, s.CriterionID).Scan(&s.ID); err != nil {
			return fmt.Errorf("failed to read back score: %w", err)
		}
		return nil
	})
	if err != nil {
		return schema.Score{}, err
	}
	return s, nil
}

// ListScores returns every score of a benchmark's alternatives.
func (ds *DataStoreImpl) ListScores(ctx context.Context, benchmarkID int64) ([]schema.Score, error) {
	query := fmt.Sprintf(`SELECT s.id, s.alternative_id, s.criterion_id, s.raw_value, s.normalized_score, s.weighted_score, s.updated_at
		FROM %s s JOIN %s a ON a.id = s.alternative_id
		WHERE a.benchmark_id = ? ORDER BY s.alternative_id, s.criterion_id`,
		ds.table(scoresTable), ds.table(alternativesTable))
	rows, err := ds.db.QueryContext(ctx, rebind(query, ds.backend), benchmarkID)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.Score
	for rows.Next() {
		var s schema.Score
		var updated timeScanner
		if err := rows.Scan(&s.ID, &s.AlternativeID, &s.CriterionID, &s.RawValue, &s.NormalizedScore, &s.WeightedScore, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		s.UpdatedAt = updated.Time
		results = append(results, s)
	}
	return results, rows.Err()
}

// --- Pros and cons ---

// AddProCon stores an advantage or disadvantage of an existing alternative.
func (ds *DataStoreImpl) AddProCon(ctx context.Context, pc schema.ProCon) (schema.ProCon, error) {
	pc.Description = strings.TrimSpace(pc.Description)
	if pc.Description == "" {
		return schema.ProCon{}, errors.New("description is required")
	}
	if pc.Kind != schema.ProKind && pc.Kind != schema.ConKind {
		return schema.ProCon{}, fmt.Errorf("invalid kind %q, expected pro or con", pc.Kind)
	}
	if _, err := ds.GetAlternative(ctx, pc.AlternativeID); err != nil {
		return schema.ProCon{}, err
	}
	query := fmt.Sprintf("INSERT INTO %s (alternative_id, kind, description) VALUES (?, ?, ?)", ds.table(prosConsTable))
	id, err := ds.insert(ctx, ds.db, query, pc.AlternativeID, string(pc.Kind), pc.Description)
	if err != nil {
		return schema.ProCon{}, fmt.Errorf("failed to insert pro/con: %w", err)
	}
	pc.ID = id
	return pc, nil
}

// ListProsCons returns the pros and cons of a benchmark's alternatives in insertion order.
func (ds *DataStoreImpl) ListProsCons(ctx context.Context, benchmarkID int64) ([]schema.ProCon, error) {
	query := fmt.Sprintf(`SELECT p.id, p.alternative_id, p.kind, p.description
		FROM %s p JOIN %s a ON a.id = p.alternative_id
		WHERE a.benchmark_id = ? ORDER BY p.id`,
		ds.table(prosConsTable), ds.table(alternativesTable))
	rows, err := ds.db.QueryContext(ctx, rebind(query, ds.backend), benchmarkID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pros and cons: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.ProCon
	for rows.Next() {
		var pc schema.ProCon
		var kind string
		if err := rows.Scan(&pc.ID, &pc.AlternativeID, &kind, &pc.Description); err != nil {
			return nil, fmt.Errorf("failed to scan pro/con: %w", err)
		}
		pc.Kind = schema.ProConKind(kind)
		results = append(results, pc)
	}
	return results, rows.Err()
}

// LoadSnapshot reads a benchmark with everything the scoring engine needs.
func (ds *DataStoreImpl) LoadSnapshot(ctx context.Context, benchmarkID int64) (*schema.Snapshot, error) {
	b, err := ds.GetBenchmark(ctx, benchmarkID)
	if err != nil {
		return nil, err
	}
	alts, err := ds.ListAlternatives(ctx, benchmarkID)
	if err != nil {
		return nil, err
	}
	criteria, err := ds.ListCriteria(ctx, benchmarkID)
	if err != nil {
		return nil, err
	}
	scores, err := ds.ListScores(ctx, benchmarkID)
	if err != nil {
		return nil, err
	}
	prosCons, err := ds.ListProsCons(ctx, benchmarkID)
	if err != nil {
		return nil, err
	}
	return BuildSnapshot(b, alts, criteria, scores, prosCons), nil
}

// BuildSnapshot assembles a snapshot from already loaded rows.
func BuildSnapshot(b schema.Benchmark, alts []schema.Alternative, criteria []schema.Criterion, scores []schema.Score, prosCons []schema.ProCon) *schema.Snapshot {
	snap := &schema.Snapshot{
		Benchmark:    b,
		Alternatives: alts,
		Criteria:     criteria,
		Scores:       make(map[schema.ScoreKey]schema.Score, len(scores)),
		ProsCons:     make(map[int64][]schema.ProCon),
	}
	for _, s := range scores {
		snap.Scores[s.Key()] = s
	}
	for _, pc := range prosCons {
		snap.ProsCons[pc.AlternativeID] = append(snap.ProsCons[pc.AlternativeID], pc)
	}
	return snap
}

// Close closes the underlying connection.
func (ds *DataStoreImpl) Close() error {
	if ds.db != nil {
		return ds.db.Close()
	}
	return nil
}

// GetStatus returns status information about the data store.
func (ds *DataStoreImpl) GetStatus() (schema.DataStatus, error) {
	status := schema.DataStatus{
		Backend:    string(ds.backend),
		Connected:  ds.db != nil,
		TableSizes: make(map[string]int64),
	}
	if ds.db == nil {
		return status, nil
	}

	for _, table := range dataTables {
		var count int64
		if err := ds.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", ds.table(table))).Scan(&count); err != nil {
			return status, fmt.Errorf("failed to get count for table %s: %w", table, err)
		}
		status.TableSizes[table] = count
	}
	status.Benchmarks = int(status.TableSizes[benchmarksTable])
	status.Alternatives = int(status.TableSizes[alternativesTable])
	status.Criteria = int(status.TableSizes[criteriaTable])
	status.Scores = int(status.TableSizes[scoresTable])

	if status.Scores > 0 {
		var last timeScanner
		if err := ds.db.QueryRow(fmt.Sprintf("SELECT MAX(updated_at) FROM %s", ds.table(scoresTable))).Scan(&last); err != nil {
			return status, fmt.Errorf("failed to get last score time: %w", err)
		}
		status.LastScoreAt = last.Time
	}
	return status, nil
}
