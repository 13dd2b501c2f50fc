// Package events publishes score changes to Kafka so other consumers can
// recompute rankings.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/kademeqms/altscore/internal/contract"
	"github.com/kademeqms/altscore/schema"
	"github.com/segmentio/kafka-go"
)

// ScoreChangedType is the type field of every score event.
const ScoreChangedType = "score.changed"

// ScoreChangedEvent is the JSON value of a score event message.
type ScoreChangedEvent struct {
	EventID         string    `json:"event_id"`
	Type            string    `json:"type"`
	AlternativeID   int64     `json:"alternative_id"`
	CriterionID     int64     `json:"criterion_id"`
	NormalizedScore float64   `json:"normalized_score"`
	WeightedScore   float64   `json:"weighted_score"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// NewScoreChangedEvent builds the event of a saved score. The score's
// update time is the event time when it has one.
func NewScoreChangedEvent(s schema.Score, eventID string, now time.Time) ScoreChangedEvent {
	occurred := s.UpdatedAt
	if occurred.IsZero() {
		occurred = now
	}
	return ScoreChangedEvent{
		EventID:         eventID,
		Type:            ScoreChangedType,
		AlternativeID:   s.AlternativeID,
		CriterionID:     s.CriterionID,
		NormalizedScore: s.NormalizedScore,
		WeightedScore:   s.WeightedScore,
		OccurredAt:      occurred.UTC(),
	}
}

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes score events to one topic, keyed by alternative id
// so the events of an alternative stay ordered within a partition.
type KafkaPublisher struct {
	writer messageWriter
	newID  func() string
	now    func() time.Time
}

var _ contract.EventPublisher = &KafkaPublisher{} // Compile-time check

// NewKafkaPublisher creates a synchronous publisher for the brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	}
	return newPublisher(w)
}

func newPublisher(w messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w, newID: uuid.NewString, now: time.Now}
}

// PublishScoreChanged implements the EventPublisher interface.
func (p *KafkaPublisher) PublishScoreChanged(ctx context.Context, s schema.Score) error {
	event := NewScoreChangedEvent(s, p.newID(), p.now())
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode score event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(s.AlternativeID, 10)),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(ScoreChangedType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish score event for alternative %d: %w", s.AlternativeID, err)
	}
	return nil
}

// Close flushes and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

var _ contract.EventPublisher = NoopPublisher{} // Compile-time check

// PublishScoreChanged implements the EventPublisher interface.
func (NoopPublisher) PublishScoreChanged(context.Context, schema.Score) error { return nil }

// Close implements the EventPublisher interface.
func (NoopPublisher) Close() error { return nil }

// NewPublisher returns a Kafka publisher when brokers are configured and a
// NoopPublisher otherwise.
func NewPublisher(cfg *contract.Config) contract.EventPublisher {
	if !cfg.EventsEnabled() {
		return NoopPublisher{}
	}
	topic := cfg.EventTopic
	if topic == "" {
		topic = contract.DefaultEventsTopic
	}
	return NewKafkaPublisher(cfg.EventBrokers, topic)
}
