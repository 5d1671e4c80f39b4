package events

import (
	"context"

	"go.uber.org/zap"
)

// LogPublisher writes events to the log. It is used when no broker is
// configured.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, ev Event) error {
	p.logger.Info("Event",
		zap.String("event", string(ev.Name)),
		zap.String("event_id", ev.ID.String()),
		zap.String("tenant_id", ev.TenantID.String()),
		zap.Any("data", ev.Data),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
