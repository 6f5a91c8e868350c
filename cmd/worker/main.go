package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-cms/adapters/event"
	"github.com/khoahotran/portfolio-cms/adapters/media_storage"
	"github.com/khoahotran/portfolio-cms/adapters/persistence"
	backupUC "github.com/khoahotran/portfolio-cms/internal/application/usecase/backup"
	"github.com/khoahotran/portfolio-cms/internal/config"
	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
	"github.com/khoahotran/portfolio-cms/pkg/metrics"
	"github.com/khoahotran/portfolio-cms/pkg/tracing"
)

func main() {
	fmt.Println("Starting Portfolio CMS Backup Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}
	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("Worker needs kafka.brokers", nil)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-cms-worker")
	if err != nil {
		appLogger.Fatal("Cannot init tracer provider", err)
	}
	defer tracing.Shutdown(context.Background(), tp)

	// Store
	store, closeStore, err := persistence.OpenStore(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot open content store", err)
	}
	defer closeStore()
	repo := persistence.NewDocumentRepo(store, appLogger, metrics.Nop{})

	// Cloudinary Uploader
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	backupUseCase := backupUC.NewBackupUseCase(repo, uploader, appLogger)

	topic := cfg.Kafka.Topic
	if topic == "" {
		topic = event.TopicContentEvents
	}

	// Kafka Consumer
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    topic,
		GroupID:  cfg.Kafka.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})
	defer consumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", topic), zap.String("group_id", cfg.Kafka.GroupID))

	for {
		msg, err := consumer.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				appLogger.Info("Worker stopped")
				return
			}
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		var evt content.Event
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			appLogger.Warn("Skipping malformed content event", zap.Error(err), zap.Int64("offset", msg.Offset))
			commitMessage(appLogger, consumer, msg)
			continue
		}

		appLogger.Info("Processing content event",
			zap.String("section", string(evt.Section)),
			zap.String("action", evt.Action),
			zap.String("item_id", evt.ItemID),
			zap.Int64("offset", msg.Offset),
		)

		if supersededInPartition(msg) {
			appLogger.Debug("Later event pending, backup deferred to it",
				zap.Int64("offset", msg.Offset),
				zap.Int64("high_water_mark", msg.HighWaterMark),
			)
			commitMessage(appLogger, consumer, msg)
			continue
		}

		err = backupWithRetry(ctx, appLogger, func(ctx context.Context) error {
			_, err := backupUseCase.Execute(ctx)
			return err
		}, retryInitial, retryMax)
		if err != nil {
			appLogger.Info("Worker stopped before backup completed", zap.Int64("offset", msg.Offset))
			return
		}

		commitMessage(appLogger, consumer, msg)
	}
}

func commitMessage(log logger.Logger, consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
