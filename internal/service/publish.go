package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/events"
)

// emitter publishes analytics events. Publishing never fails the caller.
type emitter struct {
	publisher events.Publisher
	logger    *zap.Logger
}

func (e emitter) emit(ctx context.Context, name events.Name, tenantID uuid.UUID, data map[string]any) {
	ev := events.New(name, tenantID, time.Now(), data)
	if err := e.publisher.Publish(ctx, ev); err != nil {
		e.logger.Warn("Failed to publish event",
			zap.String("event", string(name)),
			zap.String("tenant_id", tenantID.String()),
			zap.Error(err))
	}
}
