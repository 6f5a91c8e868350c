package main

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

const (
	retryInitial = time.Second
	retryMax     = time.Minute
)

// supersededInPartition reports whether a later event already sits in the
// message's partition. Its backup will contain this change.
func supersededInPartition(msg kafka.Message) bool {
	return msg.HighWaterMark > msg.Offset+1
}

// backupWithRetry runs backup until it succeeds or ctx ends. The message is not
// committed in between, so a later offset never commits past a failed backup.
func backupWithRetry(ctx context.Context, log logger.Logger, backup func(context.Context) error, initial, maxWait time.Duration) error {
	wait := initial
	for attempt := 1; ; attempt++ {
		err := backup(ctx)
		if err == nil {
			return nil
		}
		log.Error("Failed to back up content, retrying", err,
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
		if wait > maxWait {
			wait = maxWait
		}
	}
}
