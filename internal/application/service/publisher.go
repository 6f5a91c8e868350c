package service

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
	"github.com/khoahotran/portfolio-cms/pkg/metrics"
)

type EventPublisher interface {
	Publish(ctx context.Context, evt content.Event) error
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, content.Event) error { return nil }

// Notifier reports successful writes. A failed publish is logged and never fails the write.
type Notifier struct {
	publisher EventPublisher
	metrics   metrics.Recorder
	logger    logger.Logger
}

func NewNotifier(pub EventPublisher, rec metrics.Recorder, log logger.Logger) *Notifier {
	if pub == nil {
		pub = NopPublisher{}
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Notifier{publisher: pub, metrics: rec, logger: log}
}

func (n *Notifier) ContentChanged(ctx context.Context, section content.Section, action, itemID string) {
	n.metrics.RecordContentWrite(string(section), action)

	evt := content.NewEvent(section, action, itemID)
	if err := n.publisher.Publish(ctx, evt); err != nil {
		fields := []zap.Field{
			zap.String("section", string(section)),
			zap.String("action", action),
			zap.String("item_id", itemID),
		}
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
		}
		n.logger.Error("Failed to publish content event", err, fields...)
	}
}
