package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sem-planner/internal/core/domain"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func testPlan() *domain.Plan {
	return &domain.Plan{
		ID: "sem_123",
		Inputs: domain.Inputs{
			BrandWebsite:      "https://brand.example",
			CompetitorWebsite: "https://rival.example",
			Budgets:           domain.Budgets{Shopping: 1, Search: 2, PMax: 3},
		},
		Keywords:            make([]domain.Keyword, 4),
		AdGroups:            make([]domain.AdGroup, 2),
		TotalEstimatedCost:  6,
		ExpectedConversions: 0.04,
		CreatedAt:           time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC),
	}
}

func TestPublishPlanCreated(t *testing.T) {
	w := &recordingWriter{}
	p := newKafkaPublisher(w, "plans", "sem-planner")
	p.nowFn = func() time.Time { return time.Date(2025, 5, 6, 7, 8, 10, 0, time.UTC) }
	p.eventID = func() string { return "evt-1" }

	require.NoError(t, p.PublishPlanCreated(context.Background(), testPlan()))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "plans", msg.Topic)
	assert.Equal(t, []byte("sem_123"), msg.Key)

	var got map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, "evt-1", got["event_id"])
	assert.Equal(t, PlanCreatedEvent, got["event_type"])
	assert.Equal(t, "2025-05-06T07:08:10Z", got["occurred_at"])
	assert.Equal(t, "sem-planner", got["source_service"])

	data := got["data"].(map[string]any)
	assert.Equal(t, "sem_123", data["plan_id"])
	assert.EqualValues(t, 4, data["keyword_count"])
	assert.EqualValues(t, 2, data["ad_group_count"])
	assert.EqualValues(t, 6, data["total_estimated_cost"])
	assert.Equal(t, "2025-05-06T07:08:09Z", data["created_at"])

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublishPlanCreatedWrapsWriterError(t *testing.T) {
	boom := errors.New("broker down")
	p := newKafkaPublisher(&recordingWriter{err: boom}, "plans", "sem-planner")

	err := p.PublishPlanCreated(context.Background(), testPlan())
	require.ErrorIs(t, err, boom)
}

func TestNewKafkaPublisherRequiresBrokers(t *testing.T) {
	_, err := NewKafkaPublisher(nil, "plans", "sem-planner")
	require.Error(t, err)

	p, err := NewKafkaPublisher([]string{"localhost:9092"}, "", "sem-planner")
	require.NoError(t, err)
	assert.Equal(t, PlanCreatedEvent, p.topic)
	require.NoError(t, p.Close())
}

func TestKafkaWriterFlushesSingleMessagesQuickly(t *testing.T) {
	p, err := NewKafkaPublisher([]string{"localhost:9092"}, "plans", "sem-planner")
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })

	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, 10*time.Millisecond, w.BatchTimeout)
	assert.Less(t, w.BatchTimeout, time.Second)
}

func TestLoggingPublisher(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	require.NoError(t, NewLoggingPublisher(logger).PublishPlanCreated(context.Background(), testPlan()))
	assert.Contains(t, buf.String(), "plan_id=sem_123")
	assert.Contains(t, buf.String(), "event_type="+PlanCreatedEvent)
}
