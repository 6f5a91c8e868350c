package persistence

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-cms/internal/config"
	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

// InitStore is a Store that can prepare its backing storage.
type InitStore interface {
	content.Store
	Init(ctx context.Context) error
}

// OpenStore connects the driver named in cfg.Store.Driver and seeds an empty document
// when none exists. The returned func releases the driver's connections.
func OpenStore(ctx context.Context, cfg config.Config, log logger.Logger) (content.Store, func(), error) {
	var (
		store   InitStore
		cleanup = func() {}
	)

	switch cfg.Store.Driver {
	case config.StoreDriverFile, "":
		fs := NewFileStore(cfg.Store.Path, log)
		log = log.With(zap.String("path", fs.Path()))
		store = fs
	case config.StoreDriverRedis:
		rdb, err := NewRedisClient(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { rdb.Close() }
		store = NewRedisStore(rdb, cfg.Store.Key, log)
	case config.StoreDriverPostgres:
		pool, err := NewPostgresPool(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		cleanup = pool.Close
		store = NewPostgresStore(pool, cfg.Store.Key, log)
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	if err := store.Init(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("init %s store: %w", cfg.Store.Driver, err)
	}

	log.Info("Content store ready", zap.String("driver", cfg.Store.Driver))
	return store, cleanup, nil
}
