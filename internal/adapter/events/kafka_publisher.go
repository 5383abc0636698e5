package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"sem-planner/internal/core/domain"
)

// PlanCreatedEvent is the event type of a committed plan.
const PlanCreatedEvent = "sem.plan.created"

const schemaVersion = "1.0"

// batchTimeout bounds how long a publish waits for its batch to fill. Plans
// are published one at a time from the request path.
const batchTimeout = 10 * time.Millisecond

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes plan events to Kafka, keyed by plan id.
type KafkaPublisher struct {
	writer  messageWriter
	topic   string
	source  string
	nowFn   func() time.Time
	eventID func() string
}

func NewKafkaPublisher(brokers []string, topic, source string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	if topic == "" {
		topic = PlanCreatedEvent
	}
	return newKafkaPublisher(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.Hash{},
		BatchTimeout: batchTimeout,
	}, topic, source), nil
}

func newKafkaPublisher(w messageWriter, topic, source string) *KafkaPublisher {
	return &KafkaPublisher{
		writer:  w,
		topic:   topic,
		source:  source,
		nowFn:   func() time.Time { return time.Now().UTC() },
		eventID: uuid.NewString,
	}
}

type envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	OccurredAt    string          `json:"occurred_at"`
	SourceService string          `json:"source_service"`
	SchemaVersion string          `json:"schema_version"`
	PartitionKey  string          `json:"partition_key"`
	Data          planCreatedData `json:"data"`
}

type planCreatedData struct {
	PlanID              string         `json:"plan_id"`
	BrandWebsite        string         `json:"brand_website"`
	CompetitorWebsite   string         `json:"competitor_website"`
	Budgets             domain.Budgets `json:"budgets"`
	KeywordCount        int            `json:"keyword_count"`
	AdGroupCount        int            `json:"ad_group_count"`
	TotalEstimatedCost  float64        `json:"total_estimated_cost"`
	ExpectedConversions float64        `json:"expected_conversions"`
	CreatedAt           string         `json:"created_at"`
}

func (p *KafkaPublisher) PublishPlanCreated(ctx context.Context, plan *domain.Plan) error {
	msg, err := p.planCreatedMessage(plan)
	if err != nil {
		return err
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s: %w", PlanCreatedEvent, err)
	}
	return nil
}

func (p *KafkaPublisher) planCreatedMessage(plan *domain.Plan) (kafka.Message, error) {
	now := p.nowFn()
	payload, err := json.Marshal(envelope{
		EventID:       p.eventID(),
		EventType:     PlanCreatedEvent,
		OccurredAt:    now.Format(time.RFC3339),
		SourceService: p.source,
		SchemaVersion: schemaVersion,
		PartitionKey:  plan.ID,
		Data: planCreatedData{
			PlanID:              plan.ID,
			BrandWebsite:        plan.Inputs.BrandWebsite,
			CompetitorWebsite:   plan.Inputs.CompetitorWebsite,
			Budgets:             plan.Inputs.Budgets,
			KeywordCount:        len(plan.Keywords),
			AdGroupCount:        len(plan.AdGroups),
			TotalEstimatedCost:  plan.TotalEstimatedCost,
			ExpectedConversions: plan.ExpectedConversions,
			CreatedAt:           plan.CreatedAt.UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Topic: p.topic,
		Key:   []byte(plan.ID),
		Value: payload,
		Time:  now,
	}, nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
