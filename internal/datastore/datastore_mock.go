package datastore

import (
	"context"
	"time"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetDataStore implements the StoreManager interface.
func (m *MockStoreManager) GetDataStore() contract.DataStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.DataStore)
	return store
}

// GetRunStore implements the StoreManager interface.
func (m *MockStoreManager) GetRunStore() contract.RunStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RunStore)
	return store
}

// MockDataStore is a mock implementation of DataStore for testing.
type MockDataStore struct {
	mock.Mock
}

var _ contract.DataStore = &MockDataStore{} // Compile-time check

// CreateBenchmark implements the DataStore interface.
func (m *MockDataStore) CreateBenchmark(ctx context.Context, b schema.Benchmark) (schema.Benchmark, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(schema.Benchmark), args.Error(1)
}

// GetBenchmark implements the DataStore interface.
func (m *MockDataStore) GetBenchmark(ctx context.Context, id int64) (schema.Benchmark, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(schema.Benchmark), args.Error(1)
}

// ListBenchmarks implements the DataStore interface.
func (m *MockDataStore) ListBenchmarks(ctx context.Context) ([]schema.Benchmark, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]schema.Benchmark)
	return out, args.Error(1)
}

// DeleteBenchmark implements the DataStore interface.
func (m *MockDataStore) DeleteBenchmark(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// AddAlternative implements the DataStore interface.
func (m *MockDataStore) AddAlternative(ctx context.Context, alt schema.Alternative) (schema.Alternative, error) {
	args := m.Called(ctx, alt)
	return args.Get(0).(schema.Alternative), args.Error(1)
}

// GetAlternative implements the DataStore interface.
func (m *MockDataStore) GetAlternative(ctx context.Context, id int64) (schema.Alternative, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(schema.Alternative), args.Error(1)
}

// ListAlternatives implements the DataStore interface.
func (m *MockDataStore) ListAlternatives(ctx context.Context, benchmarkID int64) ([]schema.Alternative, error) {
	args := m.Called(ctx, benchmarkID)
	out, _ := args.Get(0).([]schema.Alternative)
	return out, args.Error(1)
}

// DeleteAlternative implements the DataStore interface.
func (m *MockDataStore) DeleteAlternative(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// AddCriterion implements the DataStore interface.
func (m *MockDataStore) AddCriterion(ctx context.Context, c schema.Criterion) (schema.Criterion, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(schema.Criterion), args.Error(1)
}

// GetCriterion implements the DataStore interface.
func (m *MockDataStore) GetCriterion(ctx context.Context, id int64) (schema.Criterion, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(schema.Criterion), args.Error(1)
}

// ListCriteria implements the DataStore interface.
func (m *MockDataStore) ListCriteria(ctx context.Context, benchmarkID int64) ([]schema.Criterion, error) {
	args := m.Called(ctx, benchmarkID)
	out, _ := args.Get(0).([]schema.Criterion)
	return out, args.Error(1)
}

// DeleteCriterion implements the DataStore interface.
func (m *MockDataStore) DeleteCriterion(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// UpsertScore implements the DataStore interface.
func (m *MockDataStore) UpsertScore(ctx context.Context, s schema.Score) (schema.Score, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(schema.Score), args.Error(1)
}

// ListScores implements the DataStore interface.
func (m *MockDataStore) ListScores(ctx context.Context, benchmarkID int64) ([]schema.Score, error) {
	args := m.Called(ctx, benchmarkID)
	out, _ := args.Get(0).([]schema.Score)
	return out, args.Error(1)
}

// AddProCon implements the DataStore interface.
func (m *MockDataStore) AddProCon(ctx context.Context, pc schema.ProCon) (schema.ProCon, error) {
	args := m.Called(ctx, pc)
	return args.Get(0).(schema.ProCon), args.Error(1)
}

// ListProsCons implements the DataStore interface.
func (m *MockDataStore) ListProsCons(ctx context.Context, benchmarkID int64) ([]schema.ProCon, error) {
	args := m.Called(ctx, benchmarkID)
	out, _ := args.Get(0).([]schema.ProCon)
	return out, args.Error(1)
}

// LoadSnapshot implements the DataStore interface.
func (m *MockDataStore) LoadSnapshot(ctx context.Context, benchmarkID int64) (*schema.Snapshot, error) {
	args := m.Called(ctx, benchmarkID)
	snap, _ := args.Get(0).(*schema.Snapshot)
	return snap, args.Error(1)
}

// GetStatus implements the DataStore interface.
func (m *MockDataStore) GetStatus() (schema.DataStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.DataStatus), args.Error(1)
}

// Close implements the DataStore interface.
func (m *MockDataStore) Close() error {
	return m.Called().Error(0)
}

// MockRunStore is a mock implementation of RunStore for testing.
type MockRunStore struct {
	mock.Mock
}

var _ contract.RunStore = &MockRunStore{} // Compile-time check

// BeginRun implements the RunStore interface.
func (m *MockRunStore) BeginRun(benchmarkID int64, startTime time.Time, configParams map[string]any) (int64, error) {
	args := m.Called(benchmarkID, startTime, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the RunStore interface.
func (m *MockRunStore) EndRun(runID int64, endTime time.Time, totalAlternatives int) error {
	return m.Called(runID, endTime, totalAlternatives).Error(0)
}

// RecordResult implements the RunStore interface.
func (m *MockRunStore) RecordResult(runID int64, result schema.EvaluationResultRecord) error {
	return m.Called(runID, result).Error(0)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus() (schema.RunsStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.RunsStatus), args.Error(1)
}

// ListRuns implements the RunStore interface.
func (m *MockRunStore) ListRuns() ([]schema.EvaluationRunRecord, error) {
	args := m.Called()
	out, _ := args.Get(0).([]schema.EvaluationRunRecord)
	return out, args.Error(1)
}

// ListResults implements the RunStore interface.
func (m *MockRunStore) ListResults() ([]schema.EvaluationResultRecord, error) {
	args := m.Called()
	out, _ := args.Get(0).([]schema.EvaluationResultRecord)
	return out, args.Error(1)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	return m.Called().Error(0)
}
