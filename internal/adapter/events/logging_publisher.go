package events

import (
	"context"
	"log/slog"

	"sem-planner/internal/core/domain"
)

// LoggingPublisher stands in for Kafka when no brokers are configured.
type LoggingPublisher struct {
	logger *slog.Logger
}

func NewLoggingPublisher(logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{logger: logger}
}

func (p *LoggingPublisher) PublishPlanCreated(ctx context.Context, plan *domain.Plan) error {
	p.logger.DebugContext(ctx, "event published",
		slog.String("event_type", PlanCreatedEvent),
		slog.String("plan_id", plan.ID),
		slog.Int("keywords", len(plan.Keywords)),
	)
	return nil
}
