package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

func TestSupersededInPartition(t *testing.T) {
	tests := []struct {
		name   string
		msg    kafka.Message
		expect bool
	}{
		{"last message", kafka.Message{Offset: 4, HighWaterMark: 5}, false},
		{"later message pending", kafka.Message{Offset: 4, HighWaterMark: 7}, true},
		{"watermark unknown", kafka.Message{Offset: 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, supersededInPartition(tt.msg))
		})
	}
}

func TestBackupWithRetry_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := backupWithRetry(context.Background(), logger.NewNopLogger(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("cloudinary down")
		}
		return nil
	}, time.Millisecond, 2*time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestBackupWithRetry_StopsWhenCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := backupWithRetry(ctx, logger.NewNopLogger(), func(context.Context) error {
		calls++
		cancel()
		return errors.New("cloudinary down")
	}, time.Hour, time.Hour)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
