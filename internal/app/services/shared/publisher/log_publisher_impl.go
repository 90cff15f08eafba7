package publisher

import (
	"arena-scheduler-service/internal/app/contracts"
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type logPublisher struct {
	Log *zap.Logger
}

// NewLogPublisher records events in the log instead of a broker. The CLI uses
// it when it runs without RabbitMQ.
func NewLogPublisher(logger *zap.Logger) contracts.EventPublisher {
	return &logPublisher{Log: logger}
}

func (p *logPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	p.Log.Info("logPublisher.Publish event",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingEventKey, eventType),
		zap.Any(constvars.LoggingRequestKey, payload),
	)
	return nil
}

func (p *logPublisher) Close() error {
	return nil
}
