package storage

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	myErr "socialsh-front/internal/types/errors"
)

// RedisStorage - боевая реализация Storage поверх Redis.
// Корзины живут без TTL: профиль покупателя переживает перезапуски и рестарты.
type RedisStorage struct {
	RedisClient *redis.Client
	Logger      *zap.SugaredLogger
}

func NewRedisStorage(redisClient *redis.Client, logger *zap.SugaredLogger) *RedisStorage {
	return &RedisStorage{
		RedisClient: redisClient,
		Logger:      logger,
	}
}

func (rs *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	value, err := rs.RedisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", myErr.ErrNotFound
		}

		rs.Logger.Errorw("Failed to get key from Redis", "key", key, "err", err)
		return "", myErr.ErrStorageInternal
	}

	return value, nil
}

func (rs *RedisStorage) Set(ctx context.Context, key string, value string) error {
	if err := rs.RedisClient.Set(ctx, key, value, 0).Err(); err != nil {
		rs.Logger.Errorw("Failed to set key in Redis", "key", key, "err", err)
		return myErr.ErrStorageInternal
	}

	return nil
}
