package datastore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/schema"
	"gopkg.in/yaml.v3"
)

// ImportDocument is the YAML/JSON layout of an import file. Scores and
// pros/cons refer to alternatives and criteria by name.
type ImportDocument struct {
	Benchmark    *schema.Benchmark    `yaml:"benchmark"`
	Alternatives []schema.Alternative `yaml:"alternatives"`
	Criteria     []schema.Criterion   `yaml:"criteria"`
	Scores       []ImportScore        `yaml:"scores"`
	ProsCons     []ImportProCon       `yaml:"pros_cons"`
}

// ImportScore is one raw score of an import file.
type ImportScore struct {
	Alternative string `yaml:"alternative"`
	Criterion   string `yaml:"criterion"`
	Raw         string `yaml:"raw"`
}

// ImportProCon is one advantage or disadvantage of an import file.
type ImportProCon struct {
	Alternative string `yaml:"alternative"`
	Kind        string `yaml:"kind"`
	Description string `yaml:"description"`
}

// ImportSummary counts what an import created.
type ImportSummary struct {
	Files        int
	Benchmarks   int
	Alternatives int
	Criteria     int
	Scores       int
	ProsCons     int
}

// ScoreSetter writes one raw score, the same way an interactive edit does.
type ScoreSetter func(ctx context.Context, alternativeID, criterionID int64, raw string) error

// DecodeImportDocument parses one YAML or JSON document, rejecting unknown keys.
func DecodeImportDocument(data []byte) (ImportDocument, error) {
	var doc ImportDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return ImportDocument{}, err
	}
	return doc, nil
}

// ImportFiles imports every file under root matching the doublestar pattern.
// With benchmarkID > 0 all files go into that benchmark; otherwise each
// file must declare its own benchmark, which is created.
func ImportFiles(ctx context.Context, store contract.DataStore, root, pattern string, benchmarkID int64, setScore ScoreSetter) (ImportSummary, error) {
	var summary ImportSummary
	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return summary, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return summary, fmt.Errorf("no files match %s in %s", pattern, root)
	}

	for _, match := range matches {
		fullPath := filepath.Join(root, match)
		info, err := os.Stat(fullPath)
		if err != nil || info.IsDir() {
			continue
		}
		data, err := os.ReadFile(fullPath)
		if err != nil {
			return summary, fmt.Errorf("reading %s: %w", fullPath, err)
		}
		doc, err := DecodeImportDocument(data)
		if err != nil {
			return summary, fmt.Errorf("parsing %s: %w", fullPath, err)
		}
		if err := importDocument(ctx, store, doc, benchmarkID, setScore, &summary); err != nil {
			return summary, fmt.Errorf("importing %s: %w", fullPath, err)
		}
		summary.Files++
	}
	return summary, nil
}

// importDocument stores one decoded document.
func importDocument(ctx context.Context, store contract.DataStore, doc ImportDocument, benchmarkID int64, setScore ScoreSetter, summary *ImportSummary) error {
	if benchmarkID <= 0 {
		if doc.Benchmark == nil {
			return errors.New("no target benchmark: pass one or declare 'benchmark' in the file")
		}
		b, err := store.CreateBenchmark(ctx, *doc.Benchmark)
		if err != nil {
			return err
		}
		benchmarkID = b.ID
		summary.Benchmarks++
	} else if _, err := store.GetBenchmark(ctx, benchmarkID); err != nil {
		return err
	}

	altIDs := make(map[string]int64)
	for _, alt := range doc.Alternatives {
		alt.BenchmarkID = benchmarkID
		created, err := store.AddAlternative(ctx, alt)
		if err != nil {
			return err
		}
		altIDs[nameKey(created.Name)] = created.ID
		summary.Alternatives++
	}

	critIDs := make(map[string]int64)
	for _, c := range doc.Criteria {
		c.BenchmarkID = benchmarkID
		created, err := store.AddCriterion(ctx, c)
		if err != nil {
			return err
		}
		critIDs[nameKey(created.Name)] = created.ID
		summary.Criteria++
	}

	if len(doc.Scores) > 0 && setScore == nil {
		return errors.New("scores present but no score setter configured")
	}
	for _, s := range doc.Scores {
		altID, ok := altIDs[nameKey(s.Alternative)]
		if !ok {
			return fmt.Errorf("%w: %q", contract.ErrAlternativeNotFound, s.Alternative)
		}
		critID, ok := critIDs[nameKey(s.Criterion)]
		if !ok {
			return fmt.Errorf("%w: %q", contract.ErrCriterionNotFound, s.Criterion)
		}
		if err := setScore(ctx, altID, critID, s.Raw); err != nil {
			return err
		}
		summary.Scores++
	}

	for _, pc := range doc.ProsCons {
		altID, ok := altIDs[nameKey(pc.Alternative)]
		if !ok {
			return fmt.Errorf("%w: %q", contract.ErrAlternativeNotFound, pc.Alternative)
		}
		kind, ok := schema.ParseProConKind(pc.Kind)
		if !ok {
			return fmt.Errorf("invalid pro/con kind %q", pc.Kind)
		}
		if _, err := store.AddProCon(ctx, schema.ProCon{AlternativeID: altID, Kind: kind, Description: pc.Description}); err != nil {
			return err
		}
		summary.ProsCons++
	}
	return nil
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
