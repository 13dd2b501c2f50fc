package core

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/schema"
)

// leadingNumber matches the decimal number at the start of evaluator input.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseRawScore reads the leading decimal number of evaluator input, so
// "85%" and "85,5" both give 85. Input without a leading number, including
// empty input, becomes 0, and so does anything that overflows to ±Inf.
func ParseRawScore(raw string) float64 {
	prefix := leadingNumber.FindString(strings.TrimSpace(raw))
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// DeriveScore returns the normalized and weighted forms of a raw score.
// A criterion without weight counts as weight 1.
func DeriveScore(raw, weight float64) (normalized, weighted float64) {
	normalized = math.Min(math.Max(raw, 0), 100)
	if weight == 0 {
		weight = 1
	}
	return normalized, normalized * weight / 100
}

// MutationService validates and persists manual scores.
type MutationService struct {
	store  contract.DataStore
	events contract.EventPublisher
	now    func() time.Time
}

// NewMutationService creates a MutationService. A nil publisher disables events.
func NewMutationService(store contract.DataStore, events contract.EventPublisher) *MutationService {
	return &MutationService{store: store, events: events, now: time.Now}
}

// SetScore records one evaluator input for an (alternative, criterion) pair,
// updating the existing score or inserting a new one. Nothing is published
// unless the write succeeds.
func (s *MutationService) SetScore(ctx context.Context, alternativeID, criterionID int64, rawInput string) (schema.Score, error) {
	alt, err := s.store.GetAlternative(ctx, alternativeID)
	if err != nil {
		return schema.Score{}, fmt.Errorf("set score: %w", err)
	}
	crit, err := s.store.GetCriterion(ctx, criterionID)
	if err != nil {
		return schema.Score{}, fmt.Errorf("set score: %w", err)
	}
	if alt.BenchmarkID != crit.BenchmarkID {
		return schema.Score{}, fmt.Errorf("set score: criterion %d is not part of benchmark %d: %w", criterionID, alt.BenchmarkID, contract.ErrCriterionNotFound)
	}

	raw := ParseRawScore(rawInput)
	normalized, weighted := DeriveScore(raw, crit.Weight)

	saved, err := s.store.UpsertScore(ctx, schema.Score{
		AlternativeID:   alternativeID,
		CriterionID:     criterionID,
		RawValue:        raw,
		NormalizedScore: normalized,
		WeightedScore:   weighted,
		UpdatedAt:       s.now(),
	})
	if err != nil {
		return schema.Score{}, fmt.Errorf("failed to save score for alternative %d, criterion %d: %w", alternativeID, criterionID, err)
	}

	if s.events != nil {
		if err := s.events.PublishScoreChanged(ctx, saved); err != nil {
			contract.LogWarn("Score event publishing failed", err)
		}
	}
	return saved, nil
}
