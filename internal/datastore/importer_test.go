package datastore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const suppliersYAML = `
benchmark:
  title: Office chairs
  category: furniture
alternatives:
  - name: ErgoMax
    unit_price: 320
    quality_score: 88
    risk_level: low
  - name: BudgetSeat
    unit_price: 95
criteria:
  - name: Comfort
    weight: 60
  - name: Price
    weight: 40
scores:
  - alternative: ergomax
    criterion: Comfort
    raw: "90"
  - alternative: BudgetSeat
    criterion: price
    raw: "75"
pros_cons:
  - alternative: ErgoMax
    kind: pro
    description: Adjustable lumbar support
  - alternative: BudgetSeat
    kind: disadvantage
    description: Thin padding
`

const extraJSON = `{
  "alternatives": [{"name": "MidRange", "unit_price": 180}],
  "criteria": [{"name": "Warranty", "weight": 20}]
}`

type recordedScore struct {
	alternativeID, criterionID int64
	raw                        string
}

func recordingSetter(calls *[]recordedScore) ScoreSetter {
	return func(_ context.Context, alternativeID, criterionID int64, raw string) error {
		*calls = append(*calls, recordedScore{alternativeID, criterionID, raw})
		return nil
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDecodeImportDocument(t *testing.T) {
	doc, err := DecodeImportDocument([]byte(suppliersYAML))
	require.NoError(t, err)
	require.NotNil(t, doc.Benchmark)
	assert.Equal(t, "Office chairs", doc.Benchmark.Title)
	require.Len(t, doc.Alternatives, 2)
	require.NotNil(t, doc.Alternatives[0].UnitPrice)
	assert.Equal(t, 320.0, *doc.Alternatives[0].UnitPrice)
	assert.Nil(t, doc.Alternatives[1].QualityScore)
	assert.Len(t, doc.Scores, 2)
	assert.Len(t, doc.ProsCons, 2)

	jsonDoc, err := DecodeImportDocument([]byte(extraJSON))
	require.NoError(t, err)
	assert.Nil(t, jsonDoc.Benchmark)
	assert.Len(t, jsonDoc.Alternatives, 1)

	empty, err := DecodeImportDocument(nil)
	require.NoError(t, err)
	assert.Empty(t, empty.Alternatives)

	_, err = DecodeImportDocument([]byte("alternatives:\n  - name: x\n    colour: red\n"))
	assert.Error(t, err)
}

func TestImportFiles_CreatesBenchmark(t *testing.T) {
	store := newTestDataStore(t)
	ctx := context.Background()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "chairs.yaml"), suppliersYAML)

	var calls []recordedScore
	summary, err := ImportFiles(ctx, store, root, "*.yaml", 0, recordingSetter(&calls))
	require.NoError(t, err)
	assert.Equal(t, ImportSummary{Files: 1, Benchmarks: 1, Alternatives: 2, Criteria: 2, Scores: 2, ProsCons: 2}, summary)

	benchmarks, err := store.ListBenchmarks(ctx)
	require.NoError(t, err)
	require.Len(t, benchmarks, 1)

	alts, err := store.ListAlternatives(ctx, benchmarks[0].ID)
	require.NoError(t, err)
	require.Len(t, alts, 2)
	require.NotNil(t, alts[0].RiskLevel)
	assert.Equal(t, "low", *alts[0].RiskLevel)

	criteria, err := store.ListCriteria(ctx, benchmarks[0].ID)
	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, recordedScore{alts[0].ID, criteria[0].ID, "90"}, calls[0])
	assert.Equal(t, recordedScore{alts[1].ID, criteria[1].ID, "75"}, calls[1])

	prosCons, err := store.ListProsCons(ctx, benchmarks[0].ID)
	require.NoError(t, err)
	require.Len(t, prosCons, 2)
	assert.Equal(t, "Thin padding", prosCons[1].Description)
}

func TestImportFiles_IntoExistingBenchmark(t *testing.T) {
	store := newTestDataStore(t)
	ctx := context.Background()
	b, _, _ := seedBenchmark(t, store)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "nested", "deep", "extra.json"), extraJSON)
	writeFile(t, filepath.Join(root, "notes.txt"), "ignored")

	summary, err := ImportFiles(ctx, store, root, "**/*.json", b.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Files)
	assert.Zero(t, summary.Benchmarks)
	assert.Equal(t, 1, summary.Alternatives)

	alts, err := store.ListAlternatives(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, alts, 3)
}

func TestImportFiles_Errors(t *testing.T) {
	store := newTestDataStore(t)
	ctx := context.Background()

	t.Run("no matches", func(t *testing.T) {
		_, err := ImportFiles(ctx, store, t.TempDir(), "*.yaml", 0, nil)
		assert.ErrorContains(t, err, "no files match")
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, err := ImportFiles(ctx, store, t.TempDir(), "[", 0, nil)
		assert.Error(t, err)
	})

	t.Run("no benchmark", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "extra.json"), extraJSON)
		_, err := ImportFiles(ctx, store, root, "*.json", 0, nil)
		assert.ErrorContains(t, err, "no target benchmark")
	})

	t.Run("unknown benchmark", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "extra.json"), extraJSON)
		_, err := ImportFiles(ctx, store, root, "*.json", 999, nil)
		assert.ErrorIs(t, err, contract.ErrBenchmarkNotFound)
	})

	t.Run("scores without setter", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "chairs.yaml"), suppliersYAML)
		_, err := ImportFiles(ctx, store, root, "*.yaml", 0, nil)
		assert.ErrorContains(t, err, "no score setter")
	})

	t.Run("unknown alternative in score", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "bad.yaml"), "benchmark:\n  title: t\nscores:\n  - alternative: ghost\n    criterion: c\n    raw: \"1\"\n")
		var calls []recordedScore
		_, err := ImportFiles(ctx, store, root, "*.yaml", 0, recordingSetter(&calls))
		assert.ErrorIs(t, err, contract.ErrAlternativeNotFound)
	})

	t.Run("invalid kind", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "bad.yaml"), "benchmark:\n  title: t\nalternatives:\n  - name: a\npros_cons:\n  - alternative: a\n    kind: meh\n    description: d\n")
		_, err := ImportFiles(ctx, store, root, "*.yaml", 0, nil)
		assert.ErrorContains(t, err, "invalid pro/con kind")
	})

	t.Run("setter failure", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "chairs.yaml"), suppliersYAML)
		failing := func(context.Context, int64, int64, string) error { return errors.New("boom") }
		_, err := ImportFiles(ctx, store, root, "*.yaml", 0, failing)
		assert.ErrorContains(t, err, "boom")
	})
}

func TestImportFiles_WithMockStore(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "extra.json"), extraJSON)

	store := &MockDataStore{}
	store.On("GetBenchmark", ctx, int64(3)).Return(schema.Benchmark{ID: 3, Title: "Existing"}, nil)
	store.On("AddAlternative", ctx, mock.Anything).Return(schema.Alternative{ID: 10, BenchmarkID: 3, Name: "MidRange"}, nil)
	store.On("AddCriterion", ctx, mock.Anything).Return(schema.Criterion{ID: 20, BenchmarkID: 3, Name: "Warranty", Weight: 20}, nil)

	summary, err := ImportFiles(ctx, store, root, "*.json", 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Alternatives)
	assert.Equal(t, 1, summary.Criteria)
	store.AssertExpectations(t)
}
