package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-cms/internal/config"
	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/pkg/logger"
)

func NewRedisClient(cfg config.Config, log logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("can not connect Redis: %w", err)
	}

	log.Info("Connect Redis successfully.", zap.String("addr", cfg.Redis.Addr))
	return rdb, nil
}

// RedisStore keeps the encoded document under a single key.
type RedisStore struct {
	rdb    redis.UniversalClient
	key    string
	logger logger.Logger
}

func NewRedisStore(rdb redis.UniversalClient, key string, log logger.Logger) *RedisStore {
	return &RedisStore{rdb: rdb, key: key, logger: log}
}

// Init seeds an empty document unless the key already holds one.
func (s *RedisStore) Init(ctx context.Context) error {
	data, err := content.Encode(content.NewDocument())
	if err != nil {
		return err
	}
	created, err := s.rdb.SetNX(ctx, s.key, data, 0).Result()
	if err != nil {
		return fmt.Errorf("seed content key: %w", err)
	}
	if created {
		s.logger.Info("Seeded empty content document", zap.String("key", s.key))
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) (*content.Document, error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("content key %q does not exist", s.key)
		}
		return nil, fmt.Errorf("get content key: %w", err)
	}
	return content.Decode(data)
}

func (s *RedisStore) Save(ctx context.Context, doc *content.Document) error {
	data, err := content.Encode(doc)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("set content key: %w", err)
	}
	return nil
}
